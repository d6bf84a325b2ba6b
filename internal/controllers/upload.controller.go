package controllers

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".gif":  true,
}

type UploadController struct{}

func NewUploadController() *UploadController {
	return &UploadController{}
}

// UploadImage godoc
// @Summary Upload placeholder (admin)
// @Description Validates the file and returns a generated name; bytes are not stored yet. TODO: persist to object storage once a bucket is provisioned.
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Image file"
// @Success 200 {object} map[string]interface{} "Upload accepted"
// @Failure 400 {object} map[string]interface{} "Invalid file"
// @Router /admin/upload [post]
func (uc *UploadController) UploadImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid upload",
			"error":   "An image file is required",
		})
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExtensions[ext] {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid file type",
			"error":   "Allowed extensions: jpg, jpeg, png, webp, gif",
		})
		return
	}

	filename := uuid.New().String() + ext
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Upload accepted",
		"data": gin.H{
			"filename": filename,
			"url":      "/uploads/" + filename,
			"size":     file.Size,
		},
	})
}

package controllers

import (
	"net/http"

	"bizsite/internal/models"

	"github.com/gin-gonic/gin"
)

type CategoryController struct{}

func NewCategoryController() *CategoryController {
	return &CategoryController{}
}

// GetCategories godoc
// @Summary List the static content categories
// @Tags category
// @Produce json
// @Success 200 {object} map[string]interface{} "Categories retrieved successfully"
// @Router /categories [get]
func (cc *CategoryController) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Categories retrieved successfully",
		"data":    models.Categories(),
	})
}

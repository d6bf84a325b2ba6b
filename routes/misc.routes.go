package routes

import (
	"bizsite/internal/controllers"
	"bizsite/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterCategoryRoutes(router *gin.Engine, categoryController *controllers.CategoryController) {
	router.GET("/categories", categoryController.GetCategories)
}

func RegisterUploadRoutes(router *gin.Engine, uploadController *controllers.UploadController) {
	router.POST("/admin/upload", middleware.AuthMiddleware(), uploadController.UploadImage)
}

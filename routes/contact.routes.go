package routes

import (
	"bizsite/internal/controllers"
	"bizsite/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterContactRoutes(router *gin.Engine, contactController *controllers.ContactController) {
	router.POST("/contact", contactController.CreateContact)

	admin := router.Group("/admin/contacts", middleware.AuthMiddleware())
	{
		admin.GET("/", contactController.GetContacts)
		admin.GET("/stats", contactController.GetContactStats)
		admin.PATCH("/:id/read", contactController.MarkContactRead)
		admin.DELETE("/:id", contactController.DeleteContact)
	}
}

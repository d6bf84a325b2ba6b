package routes

import (
	"bizsite/internal/controllers"
	"bizsite/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterAuthRoutes(router *gin.Engine, authController *controllers.AuthController) {
	auth := router.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.GET("/verify", middleware.AuthMiddleware(), authController.Verify)
		auth.PUT("/credentials", middleware.AuthMiddleware(), authController.UpdateCredentials)
	}
}

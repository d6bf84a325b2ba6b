package routes

import (
	"bizsite/internal/controllers"
	"bizsite/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterProjectRoutes(router *gin.Engine, projectController *controllers.ProjectController) {
	projects := router.Group("/projects")
	{
		projects.GET("/", projectController.GetProjects)
		projects.GET("/:id", projectController.GetProjectByID)

		projects.POST("/", middleware.AuthMiddleware(), projectController.CreateProject)
		projects.PUT("/:id", middleware.AuthMiddleware(), projectController.UpdateProject)
		projects.DELETE("/:id", middleware.AuthMiddleware(), projectController.DeleteProject)
	}
}

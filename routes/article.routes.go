package routes

import (
	"bizsite/internal/controllers"
	"bizsite/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterArticleRoutes(router *gin.Engine, articleController *controllers.ArticleController) {
	articles := router.Group("/articles")
	{
		articles.GET("/", articleController.GetArticles)
		articles.GET("/featured", articleController.GetFeaturedArticles)
		articles.GET("/recent", articleController.GetRecentArticles)
		articles.GET("/category/:category", articleController.GetArticlesByCategory)
		articles.GET("/search", articleController.SearchArticles)
		articles.GET("/:slug", articleController.GetArticleBySlug)

		articles.POST("/", middleware.AuthMiddleware(), articleController.CreateArticle)
		articles.PUT("/:id", middleware.AuthMiddleware(), articleController.UpdateArticle)
		articles.DELETE("/:id", middleware.AuthMiddleware(), articleController.DeleteArticle)
		articles.PATCH("/:id/publish", middleware.AuthMiddleware(), articleController.PublishArticle)
		articles.PATCH("/:id/unpublish", middleware.AuthMiddleware(), articleController.UnpublishArticle)
	}

	admin := router.Group("/admin/articles", middleware.AuthMiddleware())
	{
		admin.GET("/", articleController.GetAllArticles)
		admin.GET("/stats", articleController.GetArticleStats)
		admin.GET("/:id", articleController.GetArticleByID)
	}
}

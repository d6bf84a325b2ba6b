package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"bizsite/database"
	"bizsite/internal/cache"
	"bizsite/internal/controllers"
	"bizsite/internal/middleware"
	"bizsite/internal/models"
	"bizsite/internal/repository"
	"bizsite/internal/utils"
	"bizsite/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	database.ConnectDatabase()
	if err := database.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}
	database.MonitorDBConnections()

	// Initialize repositories
	var articleRepo repository.ArticleRepository
	if os.Getenv("REDIS_URL") != "" {
		redisClient, err := cache.Connect()
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		articleRepo = repository.NewCachedArticleRepository(database.DB, redisClient)
		log.Println("Article cache enabled (redis)")
	} else {
		articleRepo = repository.NewArticleRepository(database.DB)
	}
	projectRepo := repository.NewProjectRepository(database.DB)
	contactRepo := repository.NewContactRepository(database.DB)
	adminRepo := repository.NewAdminRepository(database.DB)

	if err := ensureAdminUser(adminRepo); err != nil {
		log.Fatalf("Failed to bootstrap admin account: %v", err)
	}

	// Initialize controllers
	articleController := controllers.NewArticleController(articleRepo)
	projectController := controllers.NewProjectController(projectRepo)
	contactController := controllers.NewContactController(contactRepo)
	authController := controllers.NewAuthController(adminRepo)
	categoryController := controllers.NewCategoryController()
	uploadController := controllers.NewUploadController()

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()
	router.Use(middleware.CORSMiddleware())

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "Bizsite API is running",
			"version": "1.0.0",
			"status":  "healthy",
		})
	})

	routes.RegisterArticleRoutes(router, articleController)
	routes.RegisterProjectRoutes(router, projectController)
	routes.RegisterContactRoutes(router, contactController)
	routes.RegisterAuthRoutes(router, authController)
	routes.RegisterCategoryRoutes(router, categoryController)
	routes.RegisterUploadRoutes(router, uploadController)

	router.GET("/debug/database", func(c *gin.Context) {
		sqlDB, err := database.DB.DB()
		if err != nil {
			c.JSON(500, gin.H{"database_health": false, "error": err.Error()})
			return
		}

		var result int
		row := sqlDB.QueryRowContext(c.Request.Context(), "SELECT 1")
		err = row.Scan(&result)
		c.JSON(200, gin.H{"database_health": err == nil && result == 1})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	server := &http.Server{
		Addr:           ":" + port,
		Handler:        router,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	log.Printf("Server starting on port %s", port)
	if err := server.ListenAndServe(); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

// ensureAdminUser seeds the admin credential row from the environment when
// the table is empty, so a fresh deployment can log in.
func ensureAdminUser(repo repository.AdminRepository) error {
	if _, err := repo.First(); err == nil {
		return nil
	}

	username := os.Getenv("ADMIN_USERNAME")
	password := os.Getenv("ADMIN_PASSWORD")
	if username == "" || password == "" {
		log.Println("ADMIN_USERNAME/ADMIN_PASSWORD not set, skipping admin bootstrap")
		return nil
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return err
	}
	if err := repo.Create(&models.AdminUser{Username: username, PasswordHash: hash}); err != nil {
		return err
	}
	log.Printf("Bootstrapped admin account %q", username)
	return nil
}

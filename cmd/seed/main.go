package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"bizsite/database"
	"bizsite/internal/models"
	"bizsite/internal/repository"
	"bizsite/internal/services"

	"github.com/joho/godotenv"
	"github.com/lib/pq"
)

func init() {
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../../.env"); err != nil {
			log.Printf("Warning: No .env file found: %v", err)
		}
	}
}

var sampleTitles = []string{
	"Five Signs Your Warehouse Needs a Logistics Overhaul",
	"Choosing the Right Foundation for Clay-Heavy Soil",
	"Why We Migrated Our Client Portals to Server-Side Rendering",
	"A Season in Review: Fleet Utilization Numbers",
	"Renovation or Rebuild? A Cost Breakdown",
}

var sampleCategories = []string{
	models.CategoryTransport,
	models.CategoryConstruction,
	models.CategoryWebDev,
	models.CategoryTransport,
	models.CategoryConstruction,
}

func main() {
	articleCount := flag.Int("articles", len(sampleTitles), "Number of sample articles to create")
	projectCount := flag.Int("projects", 3, "Number of sample projects to create")
	publish := flag.Bool("publish", true, "Publish the seeded articles")
	flag.Parse()

	database.ConnectDatabase()
	if err := database.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	articleRepo := repository.NewArticleRepository(database.DB)
	lifecycle := services.NewArticleLifecycle(articleRepo)

	for i := 0; i < *articleCount; i++ {
		title := sampleTitles[i%len(sampleTitles)]
		if i >= len(sampleTitles) {
			title = fmt.Sprintf("%s (%d)", title, i/len(sampleTitles)+1)
		}

		status := models.StatusDraft
		if *publish {
			status = models.StatusPublished
		}
		article := &models.Article{
			Title:    title,
			Excerpt:  "A short look at " + strings.ToLower(title) + " from our team on the ground.",
			Content:  strings.Repeat("Practical notes from recent client work, with the numbers that drove each decision. ", 20),
			Author:   "Site Team",
			Category: sampleCategories[i%len(sampleCategories)],
			Status:   status,
			Featured: i == 0,
		}
		if err := lifecycle.CreateArticle(article); err != nil {
			log.Fatalf("Error seeding article %q: %v", title, err)
		}
		log.Printf("Seeded article %q as %s", article.Slug, article.Status)
	}

	projectRepo := repository.NewProjectRepository(database.DB)
	for i := 0; i < *projectCount; i++ {
		project := &models.Project{
			Title:        fmt.Sprintf("Sample Project %d", i+1),
			Description:  "Turnkey delivery covering design, permits and execution.",
			Category:     sampleCategories[i%len(sampleCategories)],
			Client:       "Acme Oy",
			Location:     "Tampere",
			Year:         2024,
			Status:       models.ProjectCompleted,
			Gallery:      pq.StringArray{},
			DisplayOrder: i,
		}
		if err := projectRepo.Create(project); err != nil {
			log.Fatalf("Error seeding project %d: %v", i+1, err)
		}
		log.Printf("Seeded project %q", project.Title)
	}

	log.Println("Seeding completed")
	os.Exit(0)
}

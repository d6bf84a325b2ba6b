package controllers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"bizsite/internal/models"
	"bizsite/internal/repository"
	"bizsite/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
)

type ArticleController struct {
	repo      repository.ArticleRepository
	lifecycle *services.ArticleLifecycle
}

func NewArticleController(repo repository.ArticleRepository) *ArticleController {
	return &ArticleController{
		repo:      repo,
		lifecycle: services.NewArticleLifecycle(repo),
	}
}

type CreateArticleRequest struct {
	Title           string   `json:"title" binding:"required,min=3,max=255"`
	Slug            string   `json:"slug" binding:"omitempty,lowercase"`
	Excerpt         string   `json:"excerpt" binding:"required,min=10,max=500"`
	Content         string   `json:"content" binding:"required,min=50,max=50000"`
	FeaturedImage   *string  `json:"featured_image" binding:"omitempty,http_url"`
	Gallery         []string `json:"gallery" binding:"omitempty,dive,http_url"`
	Category        string   `json:"category" binding:"omitempty,oneof=web-dev transport construction general"`
	Tags            []string `json:"tags"`
	Author          string   `json:"author" binding:"required,min=2,max=100"`
	Status          string   `json:"status" binding:"omitempty,oneof=draft published archived"`
	ReadTime        *int     `json:"read_time" binding:"omitempty,min=1,max=120"`
	MetaTitle       string   `json:"meta_title" binding:"omitempty,max=60"`
	MetaDescription string   `json:"meta_description" binding:"omitempty,max=160"`
	Featured        bool     `json:"featured"`
}

func (req *CreateArticleRequest) toModel() *models.Article {
	return &models.Article{
		Title:           req.Title,
		Slug:            req.Slug,
		Excerpt:         req.Excerpt,
		Content:         req.Content,
		FeaturedImage:   req.FeaturedImage,
		Gallery:         pq.StringArray(req.Gallery),
		Category:        req.Category,
		Tags:            pq.StringArray(req.Tags),
		Author:          req.Author,
		Status:          req.Status,
		ReadTime:        req.ReadTime,
		MetaTitle:       req.MetaTitle,
		MetaDescription: req.MetaDescription,
		Featured:        req.Featured,
	}
}

// GetArticles godoc
// @Summary List published articles
// @Description Paginated list of published articles; the content field is excluded from list views
// @Tags article
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Param category query string false "Category filter"
// @Param search query string false "Substring search over title, excerpt and content"
// @Param featured query string false "Pass true to list featured articles only"
// @Param sortBy query string false "Sort field"
// @Param sortOrder query string false "ASC or DESC"
// @Success 200 {object} map[string]interface{} "Articles retrieved successfully"
// @Failure 500 {object} map[string]interface{} "Failed to retrieve articles"
// @Router /articles [get]
func (ac *ArticleController) GetArticles(c *gin.Context) {
	query := services.ArticleQuery{
		Page:          queryInt(c, "page", 1),
		Limit:         queryInt(c, "limit", 10),
		Category:      c.Query("category"),
		Search:        c.Query("search"),
		SortBy:        c.DefaultQuery("sortBy", "publishedAt"),
		SortOrder:     c.Query("sortOrder"),
		PublishedOnly: true,
	}
	if c.Query("featured") == "true" {
		featured := true
		query.Featured = &featured
	}
	query.Normalize()

	articles, total, err := ac.repo.FindMany(query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve articles",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Articles retrieved successfully",
		"data": gin.H{
			"articles":   articles,
			"pagination": query.Paginate(total),
		},
	})
}

// GetFeaturedArticles godoc
// @Summary List featured published articles
// @Tags article
// @Produce json
// @Param limit query int false "Maximum number of articles"
// @Success 200 {object} map[string]interface{} "Articles retrieved successfully"
// @Router /articles/featured [get]
func (ac *ArticleController) GetFeaturedArticles(c *gin.Context) {
	featured := true
	query := services.ArticleQuery{
		Limit:         queryInt(c, "limit", 3),
		Featured:      &featured,
		SortBy:        "publishedAt",
		PublishedOnly: true,
	}
	query.Normalize()

	articles, _, err := ac.repo.FindMany(query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve articles",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Articles retrieved successfully",
		"data":    articles,
	})
}

// GetRecentArticles godoc
// @Summary List the most recently published articles
// @Tags article
// @Produce json
// @Param limit query int false "Maximum number of articles"
// @Success 200 {object} map[string]interface{} "Articles retrieved successfully"
// @Router /articles/recent [get]
func (ac *ArticleController) GetRecentArticles(c *gin.Context) {
	query := services.ArticleQuery{
		Limit:         queryInt(c, "limit", 5),
		SortBy:        "publishedAt",
		PublishedOnly: true,
	}
	query.Normalize()

	articles, _, err := ac.repo.FindMany(query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve articles",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Articles retrieved successfully",
		"data":    articles,
	})
}

// GetArticlesByCategory godoc
// @Summary List published articles in a category
// @Tags article
// @Produce json
// @Param category path string true "Category slug"
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} map[string]interface{} "Articles retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Unknown category"
// @Router /articles/category/{category} [get]
func (ac *ArticleController) GetArticlesByCategory(c *gin.Context) {
	category := c.Param("category")
	if !models.IsValidCategory(category) {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Unknown category",
			"error":   "Category must be one of web-dev, transport, construction, general",
		})
		return
	}

	query := services.ArticleQuery{
		Page:          queryInt(c, "page", 1),
		Limit:         queryInt(c, "limit", 10),
		Category:      category,
		SortBy:        "publishedAt",
		PublishedOnly: true,
	}
	query.Normalize()

	articles, total, err := ac.repo.FindMany(query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve articles",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Articles retrieved successfully",
		"data": gin.H{
			"articles":   articles,
			"pagination": query.Paginate(total),
		},
	})
}

// SearchArticles godoc
// @Summary Search published articles
// @Description Case-sensitive substring search over title, excerpt and content
// @Tags article
// @Produce json
// @Param q query string true "Search query, at least 2 characters"
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} map[string]interface{} "Articles retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Query too short"
// @Router /articles/search [get]
func (ac *ArticleController) SearchArticles(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if len(q) < services.MinSearchLength {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid search query",
			"error":   "Search query must be at least 2 characters",
		})
		return
	}

	query := services.ArticleQuery{
		Page:          queryInt(c, "page", 1),
		Limit:         queryInt(c, "limit", 10),
		Search:        q,
		SortBy:        "publishedAt",
		PublishedOnly: true,
	}
	query.Normalize()

	articles, total, err := ac.repo.FindMany(query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to search articles",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Articles retrieved successfully",
		"data": gin.H{
			"articles":   articles,
			"pagination": query.Paginate(total),
		},
	})
}

// GetArticleBySlug godoc
// @Summary Get a published article by slug
// @Description Returns the full article and increments its view counter
// @Tags article
// @Produce json
// @Param slug path string true "Article slug"
// @Success 200 {object} map[string]interface{} "Article retrieved successfully"
// @Failure 404 {object} map[string]interface{} "Article not found"
// @Router /articles/{slug} [get]
func (ac *ArticleController) GetArticleBySlug(c *gin.Context) {
	slug := c.Param("slug")

	article, err := ac.repo.FindBySlug(slug)
	if err != nil || !article.IsLive() {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Article not found",
			"error":   "No published article exists with the provided slug",
		})
		return
	}

	if err := ac.repo.IncrementViews(article.ID); err != nil {
		log.Printf("Failed to increment views for article %d: %v", article.ID, err)
	} else {
		article.Views++
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Article retrieved successfully",
		"data":    article,
	})
}

// GetAllArticles godoc
// @Summary List articles of all statuses (admin)
// @Description Draft-inclusive listing; search additionally matches the author field
// @Tags admin
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Param category query string false "Category filter"
// @Param status query string false "Status filter, or all"
// @Param search query string false "Substring search"
// @Param sortBy query string false "Sort field"
// @Param sortOrder query string false "ASC or DESC"
// @Success 200 {object} map[string]interface{} "Articles retrieved successfully"
// @Router /admin/articles [get]
func (ac *ArticleController) GetAllArticles(c *gin.Context) {
	query := services.ArticleQuery{
		Page:         queryInt(c, "page", 1),
		Limit:        queryInt(c, "limit", 10),
		Category:     c.Query("category"),
		Status:       c.DefaultQuery("status", "all"),
		Search:       c.Query("search"),
		SortBy:       c.DefaultQuery("sortBy", "createdAt"),
		SortOrder:    c.Query("sortOrder"),
		SearchAuthor: true,
	}
	if featured := c.Query("featured"); featured == "true" || featured == "false" {
		value := featured == "true"
		query.Featured = &value
	}
	query.Normalize()

	articles, total, err := ac.repo.FindMany(query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve articles",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Articles retrieved successfully",
		"data": gin.H{
			"articles":   articles,
			"pagination": query.Paginate(total),
		},
	})
}

// GetArticleByID godoc
// @Summary Get an article by ID, any status (admin)
// @Tags admin
// @Produce json
// @Param id path int true "Article ID"
// @Success 200 {object} map[string]interface{} "Article retrieved successfully"
// @Failure 404 {object} map[string]interface{} "Article not found"
// @Router /admin/articles/{id} [get]
func (ac *ArticleController) GetArticleByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	article, err := ac.repo.FindByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Article not found",
			"error":   "No article exists with the provided ID",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Article retrieved successfully",
		"data":    article,
	})
}

// GetArticleStats godoc
// @Summary Article statistics (admin)
// @Description Totals per status, accumulated views and per-category distribution
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]interface{} "Stats retrieved successfully"
// @Router /admin/articles/stats [get]
func (ac *ArticleController) GetArticleStats(c *gin.Context) {
	counts := map[string]int64{}
	var err error
	for _, status := range []string{"", models.StatusPublished, models.StatusDraft, models.StatusArchived} {
		key := status
		if key == "" {
			key = "total"
		}
		if counts[key], err = ac.repo.CountByStatus(status); err != nil {
			statsError(c, err)
			return
		}
	}

	views, err := ac.repo.SumViews()
	if err != nil {
		statsError(c, err)
		return
	}
	byCategory, err := ac.repo.CountByCategory()
	if err != nil {
		statsError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Stats retrieved successfully",
		"data": gin.H{
			"total":       counts["total"],
			"published":   counts[models.StatusPublished],
			"draft":       counts[models.StatusDraft],
			"archived":    counts[models.StatusArchived],
			"total_views": views,
			"by_category": byCategory,
		},
	})
}

func statsError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{
		"status":  "error",
		"message": "Failed to retrieve stats",
		"error":   err.Error(),
	})
}

// CreateArticle godoc
// @Summary Create a new article
// @Description Title, excerpt, content and author are required; slug and read time are derived when absent
// @Tags admin
// @Accept json
// @Produce json
// @Param article body CreateArticleRequest true "Article data"
// @Success 201 {object} map[string]interface{} "Article created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 409 {object} map[string]interface{} "Slug conflict"
// @Router /articles [post]
func (ac *ArticleController) CreateArticle(c *gin.Context) {
	var req CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	article := req.toModel()
	if err := ac.lifecycle.CreateArticle(article); err != nil {
		serviceErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Article created successfully",
		"data":    article,
	})
}

// UpdateArticle godoc
// @Summary Update an article
// @Description Whitelisted partial update; unknown fields are rejected
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "Article ID"
// @Param article body models.ArticlePatch true "Fields to update"
// @Success 200 {object} map[string]interface{} "Article updated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 404 {object} map[string]interface{} "Article not found"
// @Router /articles/{id} [put]
func (ac *ArticleController) UpdateArticle(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	existing, err := ac.repo.FindByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Article not found",
			"error":   "No article exists with the provided ID",
		})
		return
	}

	decoder := json.NewDecoder(c.Request.Body)
	decoder.DisallowUnknownFields()
	var patch models.ArticlePatch
	if err := decoder.Decode(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if err := ac.lifecycle.UpdateArticle(existing, &patch); err != nil {
		serviceErrorResponse(c, err)
		return
	}

	updated, err := ac.repo.FindByID(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to reload article",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Article updated successfully",
		"data":    updated,
	})
}

// DeleteArticle godoc
// @Summary Delete an article
// @Description Hard delete, no tombstone
// @Tags admin
// @Produce json
// @Param id path int true "Article ID"
// @Success 200 {object} map[string]interface{} "Article deleted successfully"
// @Failure 404 {object} map[string]interface{} "Article not found"
// @Router /articles/{id} [delete]
func (ac *ArticleController) DeleteArticle(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if _, err := ac.repo.FindByID(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Article not found",
			"error":   "No article exists with the provided ID",
		})
		return
	}

	if err := ac.repo.Delete(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete article",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Article deleted successfully",
		"data":    nil,
	})
}

// PublishArticle godoc
// @Summary Publish an article
// @Description Forces status=published and refreshes the publish timestamp
// @Tags admin
// @Produce json
// @Param id path int true "Article ID"
// @Success 200 {object} map[string]interface{} "Article published successfully"
// @Failure 404 {object} map[string]interface{} "Article not found"
// @Router /articles/{id}/publish [patch]
func (ac *ArticleController) PublishArticle(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	article, err := ac.repo.FindByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Article not found",
			"error":   "No article exists with the provided ID",
		})
		return
	}

	if err := ac.lifecycle.Publish(article); err != nil {
		serviceErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Article published successfully",
		"data":    article,
	})
}

// UnpublishArticle godoc
// @Summary Unpublish an article
// @Description Forces status=draft and clears the publish timestamp
// @Tags admin
// @Produce json
// @Param id path int true "Article ID"
// @Success 200 {object} map[string]interface{} "Article unpublished successfully"
// @Failure 404 {object} map[string]interface{} "Article not found"
// @Router /articles/{id}/unpublish [patch]
func (ac *ArticleController) UnpublishArticle(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	article, err := ac.repo.FindByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Article not found",
			"error":   "No article exists with the provided ID",
		})
		return
	}

	if err := ac.lifecycle.Unpublish(article); err != nil {
		serviceErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Article unpublished successfully",
		"data":    article,
	})
}

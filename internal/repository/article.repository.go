package repository

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"bizsite/internal/models"
	"bizsite/internal/services"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const (
	articleCacheKeyPrefix = "article:slug:"
	articleCacheTTL       = 30 * time.Minute
)

type ArticleRepository interface {
	Create(article *models.Article) error
	FindByID(id uint) (*models.Article, error)
	FindBySlug(slug string) (*models.Article, error)
	FindMany(query services.ArticleQuery) ([]models.Article, int64, error)
	Update(id uint, updates map[string]interface{}) error
	Delete(id uint) error
	SlugExists(slug string, excludeID uint) (bool, error)
	CountByStatus(status string) (int64, error)
	SumViews() (int64, error)
	CountByCategory() ([]models.CategoryCount, error)
	IncrementViews(id uint) error
}

type articleRepository struct {
	db    *gorm.DB
	redis *redis.Client
	ctx   context.Context
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{
		db:    db,
		redis: nil,
		ctx:   context.Background(),
	}
}

// NewCachedArticleRepository caches single-article slug lookups in redis.
// Every write invalidates the cached entry.
func NewCachedArticleRepository(db *gorm.DB, redisClient *redis.Client) ArticleRepository {
	return &articleRepository{
		db:    db,
		redis: redisClient,
		ctx:   context.Background(),
	}
}

func slugCacheKey(slug string) string {
	return articleCacheKeyPrefix + slug
}

func (r *articleRepository) Create(article *models.Article) error {
	if err := r.db.Create(article).Error; err != nil {
		log.Printf("Error creating article: %v", err)
		return err
	}
	return nil
}

func (r *articleRepository) FindByID(id uint) (*models.Article, error) {
	var article models.Article
	if err := r.db.First(&article, id).Error; err != nil {
		return nil, err
	}
	return &article, nil
}

func (r *articleRepository) FindBySlug(slug string) (*models.Article, error) {
	if r.redis != nil {
		cached, err := r.redis.Get(r.ctx, slugCacheKey(slug)).Result()
		if err == nil {
			var article models.Article
			if err := json.Unmarshal([]byte(cached), &article); err == nil {
				return &article, nil
			}
			log.Printf("Failed to unmarshal cached article %q: %v", slug, err)
		}
	}

	var article models.Article
	if err := r.db.Where("slug = ?", slug).First(&article).Error; err != nil {
		return nil, err
	}

	if r.redis != nil {
		if data, err := json.Marshal(article); err == nil {
			if err := r.redis.Set(r.ctx, slugCacheKey(slug), data, articleCacheTTL).Err(); err != nil {
				log.Printf("Failed to cache article %q: %v", slug, err)
			}
		}
	}
	return &article, nil
}

// FindMany translates a normalized ArticleQuery into WHERE clauses and
// returns one bounded page plus the total row count for the criteria.
func (r *articleRepository) FindMany(query services.ArticleQuery) ([]models.Article, int64, error) {
	query.Normalize()

	tx := r.db.Model(&models.Article{})
	if query.PublishedOnly {
		tx = tx.Where("status = ? AND published_at <= ?", models.StatusPublished, time.Now())
	} else if query.Status != "" {
		tx = tx.Where("status = ?", query.Status)
	}
	if query.Category != "" {
		tx = tx.Where("category = ?", query.Category)
	}
	if query.Featured != nil {
		tx = tx.Where("featured = ?", *query.Featured)
	}
	if query.Search != "" {
		// LIKE is case-sensitive on postgres, which is the intended match.
		pattern := "%" + query.Search + "%"
		if query.SearchAuthor {
			tx = tx.Where("title LIKE ? OR excerpt LIKE ? OR content LIKE ? OR author LIKE ?",
				pattern, pattern, pattern, pattern)
		} else {
			tx = tx.Where("title LIKE ? OR excerpt LIKE ? OR content LIKE ?",
				pattern, pattern, pattern)
		}
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		log.Printf("Error counting articles: %v", err)
		return nil, 0, err
	}

	var articles []models.Article
	page := tx.Order(query.Order()).Limit(query.Limit).Offset(query.Offset())
	if !query.WithContent {
		page = page.Omit("content")
	}
	if err := page.Find(&articles).Error; err != nil {
		log.Printf("Error listing articles: %v", err)
		return nil, 0, err
	}
	return articles, total, nil
}

func (r *articleRepository) Update(id uint, updates map[string]interface{}) error {
	var article models.Article
	if err := r.db.First(&article, id).Error; err != nil {
		return err
	}
	if err := r.db.Model(&article).Updates(updates).Error; err != nil {
		log.Printf("Error updating article %d: %v", id, err)
		return err
	}
	r.invalidate(article.Slug)
	if slug, ok := updates["slug"].(string); ok {
		r.invalidate(slug)
	}
	return nil
}

func (r *articleRepository) Delete(id uint) error {
	var article models.Article
	if err := r.db.First(&article, id).Error; err != nil {
		return err
	}
	if err := r.db.Delete(&models.Article{}, id).Error; err != nil {
		return err
	}
	r.invalidate(article.Slug)
	return nil
}

func (r *articleRepository) SlugExists(slug string, excludeID uint) (bool, error) {
	var count int64
	tx := r.db.Model(&models.Article{}).Where("slug = ?", slug)
	if excludeID != 0 {
		tx = tx.Where("id <> ?", excludeID)
	}
	if err := tx.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// CountByStatus counts articles with the given status; an empty status
// counts everything.
func (r *articleRepository) CountByStatus(status string) (int64, error) {
	var count int64
	tx := r.db.Model(&models.Article{})
	if status != "" {
		tx = tx.Where("status = ?", status)
	}
	err := tx.Count(&count).Error
	return count, err
}

func (r *articleRepository) SumViews() (int64, error) {
	var total int64
	err := r.db.Model(&models.Article{}).
		Select("COALESCE(SUM(views), 0)").
		Scan(&total).Error
	return total, err
}

func (r *articleRepository) CountByCategory() ([]models.CategoryCount, error) {
	var counts []models.CategoryCount
	err := r.db.Model(&models.Article{}).
		Select("category, COUNT(*) AS count").
		Group("category").
		Scan(&counts).Error
	return counts, err
}

// IncrementViews bumps the view counter atomically in the database; the
// counter is never written any other way.
func (r *articleRepository) IncrementViews(id uint) error {
	result := r.db.Model(&models.Article{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	if r.redis != nil {
		var article models.Article
		if err := r.db.Select("slug").First(&article, id).Error; err == nil {
			r.invalidate(article.Slug)
		}
	}
	return nil
}

func (r *articleRepository) invalidate(slug string) {
	if r.redis == nil || slug == "" {
		return
	}
	if err := r.redis.Del(r.ctx, slugCacheKey(slug)).Err(); err != nil {
		log.Printf("Failed to invalidate article cache %q: %v", slug, err)
	}
}

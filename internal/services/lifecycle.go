package services

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"bizsite/internal/models"
	"bizsite/internal/utils"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

const (
	wordsPerMinute = 200
	maxReadTime    = 120
)

var slugPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// ArticleStore is the slice of the article repository the lifecycle engine
// needs: slug collision checks and the two write paths.
type ArticleStore interface {
	SlugExists(slug string, excludeID uint) (bool, error)
	Create(article *models.Article) error
	Update(id uint, updates map[string]interface{}) error
}

// ArticleLifecycle computes derived fields and applies status transitions
// before a write reaches storage. It holds no state of its own.
type ArticleLifecycle struct {
	store ArticleStore
}

func NewArticleLifecycle(store ArticleStore) *ArticleLifecycle {
	return &ArticleLifecycle{store: store}
}

// EstimateReadTime derives minutes to read at 200 words per minute, rounded
// up, clamped to [1, 120].
func EstimateReadTime(content string) int {
	words := len(strings.Fields(content))
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	if minutes > maxReadTime {
		minutes = maxReadTime
	}
	return minutes
}

// ResolveSlug returns base if free, otherwise base-N for the smallest N >= 1
// with no collision. excludeID skips the article being updated; pass 0 on
// create. The check is a pre-check only; the unique index on slug remains
// the ground truth for races between check and insert.
func (l *ArticleLifecycle) ResolveSlug(base string, excludeID uint) (string, error) {
	slug := base
	for n := 1; ; n++ {
		taken, err := l.store.SlugExists(slug, excludeID)
		if err != nil {
			return "", &StorageError{Op: "slug lookup", Err: err}
		}
		if !taken {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, n)
	}
}

// PrepareForCreate fills derived fields on a new article: slug generation
// and uniqueness resolution, read time from content, published_at when the
// article is created already published.
func (l *ArticleLifecycle) PrepareForCreate(article *models.Article) error {
	if article.Status == "" {
		article.Status = models.StatusDraft
	}
	if !isValidStatus(article.Status) {
		return &ValidationError{Field: "status", Message: "must be one of draft, published, archived"}
	}
	if article.Category == "" {
		article.Category = models.CategoryGeneral
	}
	if !models.IsValidCategory(article.Category) {
		return &ValidationError{Field: "category", Message: "unknown category"}
	}

	base := article.Slug
	if base == "" {
		base = utils.GenerateSlug(article.Title)
	}
	if base == "" {
		return &ValidationError{Field: "title", Message: "cannot be reduced to a slug"}
	}
	if !slugPattern.MatchString(base) {
		return &ValidationError{Field: "slug", Message: "must match [a-z0-9-]+"}
	}
	slug, err := l.ResolveSlug(base, 0)
	if err != nil {
		return err
	}
	article.Slug = slug

	if article.Content != "" && article.ReadTime == nil {
		minutes := EstimateReadTime(article.Content)
		article.ReadTime = &minutes
	}

	if article.Status == models.StatusPublished {
		if article.PublishedAt == nil {
			now := time.Now()
			article.PublishedAt = &now
		}
	} else {
		article.PublishedAt = nil
	}
	return nil
}

// CreateArticle prepares and persists a new article. Losing the slug race at
// the unique index triggers exactly one regeneration and retry; a second
// collision surfaces as a ConflictError.
func (l *ArticleLifecycle) CreateArticle(article *models.Article) error {
	if err := l.PrepareForCreate(article); err != nil {
		return err
	}

	err := l.store.Create(article)
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		return &StorageError{Op: "create article", Err: err}
	}

	retry, rerr := l.ResolveSlug(article.Slug, 0)
	if rerr != nil {
		return rerr
	}
	article.Slug = retry
	if err := l.store.Create(article); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return &ConflictError{Resource: "article", Key: article.Slug}
		}
		return &StorageError{Op: "create article", Err: err}
	}
	return nil
}

// PrepareForUpdate turns a whitelisted patch into the column updates to
// persist. A title change without an explicit slug regenerates the slug; a
// content change recomputes read time unless the patch overrides it; status
// transitions maintain status == published <=> published_at set. Archiving
// clears published_at like any other non-published transition.
func (l *ArticleLifecycle) PrepareForUpdate(existing *models.Article, patch *models.ArticlePatch) (map[string]interface{}, error) {
	if err := validatePatch(patch); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}

	if patch.Title != nil && *patch.Title != existing.Title {
		updates["title"] = *patch.Title
		if patch.Slug == nil {
			base := utils.GenerateSlug(*patch.Title)
			if base == "" {
				return nil, &ValidationError{Field: "title", Message: "cannot be reduced to a slug"}
			}
			slug, err := l.ResolveSlug(base, existing.ID)
			if err != nil {
				return nil, err
			}
			updates["slug"] = slug
		}
	}
	if patch.Slug != nil && *patch.Slug != existing.Slug {
		slug, err := l.ResolveSlug(*patch.Slug, existing.ID)
		if err != nil {
			return nil, err
		}
		updates["slug"] = slug
	}

	if patch.Excerpt != nil {
		updates["excerpt"] = *patch.Excerpt
	}
	if patch.Content != nil {
		updates["content"] = *patch.Content
		updates["read_time"] = EstimateReadTime(*patch.Content)
	}
	if patch.ReadTime != nil {
		updates["read_time"] = *patch.ReadTime
	}
	if patch.FeaturedImage != nil {
		if *patch.FeaturedImage == "" {
			updates["featured_image"] = nil
		} else {
			updates["featured_image"] = *patch.FeaturedImage
		}
	}
	if patch.Gallery != nil {
		updates["gallery"] = pq.StringArray(*patch.Gallery)
	}
	if patch.Tags != nil {
		updates["tags"] = pq.StringArray(*patch.Tags)
	}
	if patch.Category != nil {
		updates["category"] = *patch.Category
	}
	if patch.Author != nil {
		updates["author"] = *patch.Author
	}
	if patch.MetaTitle != nil {
		updates["meta_title"] = *patch.MetaTitle
	}
	if patch.MetaDescription != nil {
		updates["meta_description"] = *patch.MetaDescription
	}
	if patch.Featured != nil {
		updates["featured"] = *patch.Featured
	}

	if patch.Status != nil && *patch.Status != existing.Status {
		updates["status"] = *patch.Status
		if *patch.Status == models.StatusPublished {
			if existing.PublishedAt == nil {
				updates["published_at"] = time.Now()
			}
		} else {
			updates["published_at"] = nil
		}
	}

	return updates, nil
}

// UpdateArticle applies a patch through PrepareForUpdate and persists it.
func (l *ArticleLifecycle) UpdateArticle(existing *models.Article, patch *models.ArticlePatch) error {
	updates, err := l.PrepareForUpdate(existing, patch)
	if err != nil {
		return err
	}
	if len(updates) == 0 {
		return nil
	}
	if err := l.store.Update(existing.ID, updates); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return &ConflictError{Resource: "article", Key: existing.Slug}
		}
		return &StorageError{Op: "update article", Err: err}
	}
	return nil
}

// Publish forces status=published and refreshes published_at, even when the
// article is already published.
func (l *ArticleLifecycle) Publish(article *models.Article) error {
	now := time.Now()
	updates := map[string]interface{}{
		"status":       models.StatusPublished,
		"published_at": now,
	}
	if err := l.store.Update(article.ID, updates); err != nil {
		return &StorageError{Op: "publish article", Err: err}
	}
	article.Status = models.StatusPublished
	article.PublishedAt = &now
	return nil
}

// Unpublish forces the article back to draft and clears published_at.
func (l *ArticleLifecycle) Unpublish(article *models.Article) error {
	updates := map[string]interface{}{
		"status":       models.StatusDraft,
		"published_at": nil,
	}
	if err := l.store.Update(article.ID, updates); err != nil {
		return &StorageError{Op: "unpublish article", Err: err}
	}
	article.Status = models.StatusDraft
	article.PublishedAt = nil
	return nil
}

func isValidStatus(s string) bool {
	return s == models.StatusDraft || s == models.StatusPublished || s == models.StatusArchived
}

func validatePatch(patch *models.ArticlePatch) error {
	if patch.Title != nil && (len(*patch.Title) < 3 || len(*patch.Title) > 255) {
		return &ValidationError{Field: "title", Message: "must be 3-255 characters"}
	}
	if patch.Slug != nil && !slugPattern.MatchString(*patch.Slug) {
		return &ValidationError{Field: "slug", Message: "must match [a-z0-9-]+"}
	}
	if patch.Excerpt != nil && (len(*patch.Excerpt) < 10 || len(*patch.Excerpt) > 500) {
		return &ValidationError{Field: "excerpt", Message: "must be 10-500 characters"}
	}
	if patch.Content != nil && (len(*patch.Content) < 50 || len(*patch.Content) > 50000) {
		return &ValidationError{Field: "content", Message: "must be 50-50000 characters"}
	}
	if patch.FeaturedImage != nil && *patch.FeaturedImage != "" && !isHTTPURL(*patch.FeaturedImage) {
		return &ValidationError{Field: "featured_image", Message: "must be an absolute http(s) URL"}
	}
	if patch.Category != nil && !models.IsValidCategory(*patch.Category) {
		return &ValidationError{Field: "category", Message: "unknown category"}
	}
	if patch.Author != nil && (len(*patch.Author) < 2 || len(*patch.Author) > 100) {
		return &ValidationError{Field: "author", Message: "must be 2-100 characters"}
	}
	if patch.Status != nil && !isValidStatus(*patch.Status) {
		return &ValidationError{Field: "status", Message: "must be one of draft, published, archived"}
	}
	if patch.ReadTime != nil && (*patch.ReadTime < 1 || *patch.ReadTime > maxReadTime) {
		return &ValidationError{Field: "read_time", Message: "must be 1-120 minutes"}
	}
	if patch.MetaTitle != nil && len(*patch.MetaTitle) > 60 {
		return &ValidationError{Field: "meta_title", Message: "must be at most 60 characters"}
	}
	if patch.MetaDescription != nil && len(*patch.MetaDescription) > 160 {
		return &ValidationError{Field: "meta_description", Message: "must be at most 160 characters"}
	}
	return nil
}

func isHTTPURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

package services

import (
	"strings"
	"testing"
	"time"

	"bizsite/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeArticleStore is an in-memory ArticleStore. createFn, when set,
// intercepts Create calls to simulate storage-level failures.
type fakeArticleStore struct {
	slugs    map[string]uint
	nextID   uint
	updates  []map[string]interface{}
	createFn func(*models.Article) error
}

func newFakeStore(existing ...string) *fakeArticleStore {
	store := &fakeArticleStore{slugs: map[string]uint{}, nextID: 100}
	for _, slug := range existing {
		store.nextID++
		store.slugs[slug] = store.nextID
	}
	return store
}

func (s *fakeArticleStore) SlugExists(slug string, excludeID uint) (bool, error) {
	id, ok := s.slugs[slug]
	if !ok {
		return false, nil
	}
	if excludeID != 0 && id == excludeID {
		return false, nil
	}
	return true, nil
}

func (s *fakeArticleStore) Create(article *models.Article) error {
	if s.createFn != nil {
		if err := s.createFn(article); err != nil {
			return err
		}
	}
	s.nextID++
	article.ID = s.nextID
	s.slugs[article.Slug] = article.ID
	return nil
}

func (s *fakeArticleStore) Update(id uint, updates map[string]interface{}) error {
	s.updates = append(s.updates, updates)
	return nil
}

func words(n int) string {
	return strings.TrimSpace(strings.Repeat("word ", n))
}

func TestEstimateReadTime(t *testing.T) {
	assert.Equal(t, 1, EstimateReadTime("just a few words"))
	assert.Equal(t, 1, EstimateReadTime(words(200)))
	assert.Equal(t, 2, EstimateReadTime(words(201)))
	assert.Equal(t, 2, EstimateReadTime(words(400)))
	assert.Equal(t, 3, EstimateReadTime(words(401)))
	assert.Equal(t, 120, EstimateReadTime(words(200*500)))
}

func TestResolveSlug(t *testing.T) {
	lifecycle := NewArticleLifecycle(newFakeStore("taken", "taken-1"))

	slug, err := lifecycle.ResolveSlug("free", 0)
	require.NoError(t, err)
	assert.Equal(t, "free", slug)

	// Smallest free suffix wins.
	slug, err = lifecycle.ResolveSlug("taken", 0)
	require.NoError(t, err)
	assert.Equal(t, "taken-2", slug)
}

func TestResolveSlugExcludesOwner(t *testing.T) {
	store := newFakeStore("mine")
	lifecycle := NewArticleLifecycle(store)

	slug, err := lifecycle.ResolveSlug("mine", store.slugs["mine"])
	require.NoError(t, err)
	assert.Equal(t, "mine", slug)
}

func TestPrepareForCreateDerivesFields(t *testing.T) {
	lifecycle := NewArticleLifecycle(newFakeStore())

	article := &models.Article{
		Title:   "Café Élégant!!",
		Excerpt: "An excerpt of sufficient length.",
		Content: words(401),
		Author:  "Maija",
	}
	require.NoError(t, lifecycle.PrepareForCreate(article))

	assert.Equal(t, "cafe-elegant", article.Slug)
	assert.Equal(t, models.StatusDraft, article.Status)
	assert.Nil(t, article.PublishedAt)
	require.NotNil(t, article.ReadTime)
	assert.Equal(t, 3, *article.ReadTime)
	assert.Equal(t, models.CategoryGeneral, article.Category)
}

func TestPrepareForCreatePublished(t *testing.T) {
	lifecycle := NewArticleLifecycle(newFakeStore())

	article := &models.Article{
		Title:   "Launch Notes",
		Content: words(10),
		Status:  models.StatusPublished,
	}
	require.NoError(t, lifecycle.PrepareForCreate(article))

	require.NotNil(t, article.PublishedAt)
	assert.WithinDuration(t, time.Now(), *article.PublishedAt, 2*time.Second)
}

func TestCreateArticleDuplicateTitle(t *testing.T) {
	store := newFakeStore()
	lifecycle := NewArticleLifecycle(store)

	first := &models.Article{Title: "Café Élégant!!", Content: words(60)}
	require.NoError(t, lifecycle.CreateArticle(first))
	assert.Equal(t, "cafe-elegant", first.Slug)

	second := &models.Article{Title: "Café Élégant!!", Content: words(60)}
	require.NoError(t, lifecycle.CreateArticle(second))
	assert.Equal(t, "cafe-elegant-1", second.Slug)
}

func TestCreateArticleRetriesLostSlugRace(t *testing.T) {
	store := newFakeStore()
	lifecycle := NewArticleLifecycle(store)

	// First insert loses the race: a concurrent writer claimed the slug
	// after the pre-check. The unique index rejects, the lifecycle
	// regenerates once and retries.
	calls := 0
	store.createFn = func(article *models.Article) error {
		calls++
		if calls == 1 {
			store.slugs[article.Slug] = 999
			return gorm.ErrDuplicatedKey
		}
		return nil
	}

	article := &models.Article{Title: "Race Me", Content: words(60)}
	require.NoError(t, lifecycle.CreateArticle(article))
	assert.Equal(t, 2, calls)
	assert.Equal(t, "race-me-1", article.Slug)
}

func TestCreateArticleSecondConflictSurfaces(t *testing.T) {
	store := newFakeStore()
	lifecycle := NewArticleLifecycle(store)
	store.createFn = func(article *models.Article) error {
		store.slugs[article.Slug] = 999
		return gorm.ErrDuplicatedKey
	}

	err := lifecycle.CreateArticle(&models.Article{Title: "Race Me", Content: words(60)})
	require.Error(t, err)
	var conflict *ConflictError
	assert.ErrorAs(t, err, &conflict)
}

func TestPrepareForUpdateIdempotent(t *testing.T) {
	store := newFakeStore("existing-post")
	lifecycle := NewArticleLifecycle(store)

	readTime := 4
	publishedAt := time.Now().Add(-time.Hour)
	existing := &models.Article{
		ID:          store.slugs["existing-post"],
		Title:       "Existing Post",
		Slug:        "existing-post",
		Status:      models.StatusPublished,
		PublishedAt: &publishedAt,
		ReadTime:    &readTime,
	}

	sameTitle := "Existing Post"
	sameStatus := models.StatusPublished
	updates, err := lifecycle.PrepareForUpdate(existing, &models.ArticlePatch{
		Title:  &sameTitle,
		Status: &sameStatus,
	})
	require.NoError(t, err)
	assert.Empty(t, updates, "no-op patch must not touch slug, read_time or published_at")
}

func TestPrepareForUpdateTitleChangeRegeneratesSlug(t *testing.T) {
	store := newFakeStore("old-title", "new-title")
	lifecycle := NewArticleLifecycle(store)

	existing := &models.Article{ID: store.slugs["old-title"], Title: "Old Title", Slug: "old-title"}
	newTitle := "New Title"
	updates, err := lifecycle.PrepareForUpdate(existing, &models.ArticlePatch{Title: &newTitle})
	require.NoError(t, err)

	assert.Equal(t, "New Title", updates["title"])
	assert.Equal(t, "new-title-1", updates["slug"])
}

func TestPrepareForUpdateContentRecomputesReadTime(t *testing.T) {
	lifecycle := NewArticleLifecycle(newFakeStore())

	existing := &models.Article{ID: 1, Title: "Post", Slug: "post"}
	content := words(401)
	updates, err := lifecycle.PrepareForUpdate(existing, &models.ArticlePatch{Content: &content})
	require.NoError(t, err)

	assert.Equal(t, 3, updates["read_time"])
}

func TestPrepareForUpdateStatusTransitions(t *testing.T) {
	lifecycle := NewArticleLifecycle(newFakeStore())

	t.Run("draft to published sets published_at", func(t *testing.T) {
		existing := &models.Article{ID: 1, Status: models.StatusDraft}
		status := models.StatusPublished
		updates, err := lifecycle.PrepareForUpdate(existing, &models.ArticlePatch{Status: &status})
		require.NoError(t, err)

		assert.Equal(t, models.StatusPublished, updates["status"])
		assert.IsType(t, time.Time{}, updates["published_at"])
	})

	t.Run("published to archived clears published_at", func(t *testing.T) {
		now := time.Now()
		existing := &models.Article{ID: 1, Status: models.StatusPublished, PublishedAt: &now}
		status := models.StatusArchived
		updates, err := lifecycle.PrepareForUpdate(existing, &models.ArticlePatch{Status: &status})
		require.NoError(t, err)

		assert.Equal(t, models.StatusArchived, updates["status"])
		value, present := updates["published_at"]
		assert.True(t, present)
		assert.Nil(t, value)
	})
}

func TestPrepareForUpdateValidation(t *testing.T) {
	lifecycle := NewArticleLifecycle(newFakeStore())
	existing := &models.Article{ID: 1}

	badCategory := "gardening"
	_, err := lifecycle.PrepareForUpdate(existing, &models.ArticlePatch{Category: &badCategory})
	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "category", validation.Field)

	shortTitle := "ab"
	_, err = lifecycle.PrepareForUpdate(existing, &models.ArticlePatch{Title: &shortTitle})
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "title", validation.Field)
}

func TestPublishAndUnpublish(t *testing.T) {
	store := newFakeStore()
	lifecycle := NewArticleLifecycle(store)

	article := &models.Article{ID: 7, Status: models.StatusDraft}

	require.NoError(t, lifecycle.Publish(article))
	assert.Equal(t, models.StatusPublished, article.Status)
	require.NotNil(t, article.PublishedAt)
	assert.WithinDuration(t, time.Now(), *article.PublishedAt, 2*time.Second)

	require.NoError(t, lifecycle.Unpublish(article))
	assert.Equal(t, models.StatusDraft, article.Status)
	assert.Nil(t, article.PublishedAt)

	require.Len(t, store.updates, 2)
	assert.Equal(t, models.StatusPublished, store.updates[0]["status"])
	assert.Nil(t, store.updates[1]["published_at"])
}

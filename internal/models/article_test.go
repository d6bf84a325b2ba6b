package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestArticleIsLive(t *testing.T) {
	past := time.Now().Add(-time.Hour)
	future := time.Now().Add(time.Hour)

	tests := []struct {
		name    string
		article Article
		want    bool
	}{
		{
			name:    "published in the past",
			article: Article{Status: StatusPublished, PublishedAt: &past},
			want:    true,
		},
		{
			name:    "published but future-dated",
			article: Article{Status: StatusPublished, PublishedAt: &future},
			want:    false,
		},
		{
			name:    "published without timestamp",
			article: Article{Status: StatusPublished},
			want:    false,
		},
		{
			name:    "draft",
			article: Article{Status: StatusDraft, PublishedAt: &past},
			want:    false,
		},
		{
			name:    "archived",
			article: Article{Status: StatusArchived},
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.article.IsLive())
		})
	}
}

func TestNewPagination(t *testing.T) {
	p := NewPagination(2, 10, 25)
	assert.Equal(t, 2, p.CurrentPage)
	assert.Equal(t, 3, p.TotalPages)
	assert.Equal(t, int64(25), p.TotalItems)
	assert.True(t, p.HasNextPage)
	assert.True(t, p.HasPrevPage)
}

func TestIsValidCategory(t *testing.T) {
	for _, c := range Categories() {
		assert.True(t, IsValidCategory(c.Slug))
	}
	assert.False(t, IsValidCategory("gardening"))
	assert.False(t, IsValidCategory(""))
}

package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArticleQueryNormalizeDefaults(t *testing.T) {
	query := ArticleQuery{}
	query.Normalize()

	assert.Equal(t, 1, query.Page)
	assert.Equal(t, 10, query.Limit)
	assert.Equal(t, "created_at", query.SortBy)
	assert.Equal(t, "DESC", query.SortOrder)
	assert.Equal(t, "created_at DESC", query.Order())
	assert.Equal(t, 0, query.Offset())
}

func TestArticleQueryNormalize(t *testing.T) {
	tests := []struct {
		name      string
		query     ArticleQuery
		wantSort  string
		wantOrder string
	}{
		{
			name:      "camelCase sort field is mapped",
			query:     ArticleQuery{SortBy: "publishedAt", SortOrder: "asc"},
			wantSort:  "published_at",
			wantOrder: "ASC",
		},
		{
			name:      "snake_case sort field is accepted",
			query:     ArticleQuery{SortBy: "published_at"},
			wantSort:  "published_at",
			wantOrder: "DESC",
		},
		{
			name:      "unknown sort field falls back",
			query:     ArticleQuery{SortBy: "views; DROP TABLE articles"},
			wantSort:  "created_at",
			wantOrder: "DESC",
		},
		{
			name:      "views is sortable",
			query:     ArticleQuery{SortBy: "views", SortOrder: "ASC"},
			wantSort:  "views",
			wantOrder: "ASC",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.query.Normalize()
			assert.Equal(t, tt.wantSort, tt.query.SortBy)
			assert.Equal(t, tt.wantOrder, tt.query.SortOrder)
		})
	}
}

func TestArticleQueryNormalizeClearsAllFilters(t *testing.T) {
	query := ArticleQuery{Category: "all", Status: "all"}
	query.Normalize()
	assert.Empty(t, query.Category)
	assert.Empty(t, query.Status)
}

func TestArticleQueryOffset(t *testing.T) {
	query := ArticleQuery{Page: 3, Limit: 10}
	query.Normalize()
	assert.Equal(t, 20, query.Offset())
}

func TestPaginationContract(t *testing.T) {
	// 25 items at limit 10.
	tests := []struct {
		page        int
		wantPages   int
		wantHasNext bool
		wantHasPrev bool
	}{
		{page: 1, wantPages: 3, wantHasNext: true, wantHasPrev: false},
		{page: 2, wantPages: 3, wantHasNext: true, wantHasPrev: true},
		{page: 3, wantPages: 3, wantHasNext: false, wantHasPrev: true},
		// Out-of-range page is not an error; the metadata stays correct.
		{page: 4, wantPages: 3, wantHasNext: false, wantHasPrev: true},
	}

	for _, tt := range tests {
		query := ArticleQuery{Page: tt.page, Limit: 10}
		query.Normalize()
		p := query.Paginate(25)

		assert.Equal(t, tt.page, p.CurrentPage)
		assert.Equal(t, tt.wantPages, p.TotalPages)
		assert.Equal(t, int64(25), p.TotalItems)
		assert.Equal(t, 10, p.ItemsPerPage)
		assert.Equal(t, tt.wantHasNext, p.HasNextPage, "page %d", tt.page)
		assert.Equal(t, tt.wantHasPrev, p.HasPrevPage, "page %d", tt.page)
	}
}

func TestPaginationEmptyResult(t *testing.T) {
	query := ArticleQuery{}
	query.Normalize()
	p := query.Paginate(0)

	assert.Equal(t, 0, p.TotalPages)
	assert.False(t, p.HasNextPage)
	assert.False(t, p.HasPrevPage)
}

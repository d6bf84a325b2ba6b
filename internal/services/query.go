package services

import (
	"fmt"
	"strings"

	"bizsite/internal/models"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10

	// MinSearchLength is the minimum query length for the dedicated search
	// operation; shorter queries are rejected before reaching the repository.
	MinSearchLength = 2
)

// sortColumns whitelists the sortable fields and maps API names to columns.
var sortColumns = map[string]string{
	"createdAt":    "created_at",
	"created_at":   "created_at",
	"updatedAt":    "updated_at",
	"updated_at":   "updated_at",
	"publishedAt":  "published_at",
	"published_at": "published_at",
	"title":        "title",
	"views":        "views",
}

// ArticleQuery carries normalized pagination, filter and sort parameters for
// article listings. Zero values mean "no filter". The repository turns it
// into WHERE clauses; it never reaches storage un-normalized.
type ArticleQuery struct {
	Page      int
	Limit     int
	Category  string
	Status    string
	Featured  *bool
	Search    string
	SortBy    string
	SortOrder string

	// PublishedOnly forces the published window (status=published AND
	// published_at <= now) regardless of Status. Set on every public
	// endpoint.
	PublishedOnly bool

	// WithContent includes the content column. List views leave it false;
	// only single-item fetches carry full content.
	WithContent bool

	// SearchAuthor extends the search match to the author column. Admin
	// listings only.
	SearchAuthor bool
}

// Normalize applies defaults and clamps: page >= 1, limit > 0, sort column
// whitelisted, "all" treated as no filter. Safe to call more than once.
func (q *ArticleQuery) Normalize() {
	if q.Page < 1 {
		q.Page = DefaultPage
	}
	if q.Limit < 1 {
		q.Limit = DefaultLimit
	}
	if q.Category == "all" {
		q.Category = ""
	}
	if q.Status == "all" {
		q.Status = ""
	}
	if col, ok := sortColumns[q.SortBy]; ok {
		q.SortBy = col
	} else {
		q.SortBy = "created_at"
	}
	if strings.EqualFold(q.SortOrder, "ASC") {
		q.SortOrder = "ASC"
	} else {
		q.SortOrder = "DESC"
	}
}

// Offset returns the row offset for the current page. No upper bound: an
// out-of-range page yields an empty result, not an error.
func (q *ArticleQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

// Order returns the ORDER BY expression. Only meaningful after Normalize,
// which guarantees both parts come from a whitelist.
func (q *ArticleQuery) Order() string {
	return fmt.Sprintf("%s %s", q.SortBy, q.SortOrder)
}

// Paginate builds the pagination metadata for a result of totalItems rows.
func (q *ArticleQuery) Paginate(totalItems int64) models.Pagination {
	return models.NewPagination(q.Page, q.Limit, totalItems)
}

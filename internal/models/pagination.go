package models

// Pagination is the metadata block returned next to every paginated list.
type Pagination struct {
	CurrentPage  int   `json:"current_page" example:"1"`
	TotalPages   int   `json:"total_pages" example:"3"`
	TotalItems   int64 `json:"total_items" example:"25"`
	ItemsPerPage int   `json:"items_per_page" example:"10"`
	HasNextPage  bool  `json:"has_next_page"`
	HasPrevPage  bool  `json:"has_prev_page"`
}

// NewPagination computes the metadata for a page of a result set. A page
// beyond the last one is not an error; it simply has no items and
// HasNextPage=false.
func NewPagination(page, limit int, totalItems int64) Pagination {
	totalPages := int((totalItems + int64(limit) - 1) / int64(limit))
	return Pagination{
		CurrentPage:  page,
		TotalPages:   totalPages,
		TotalItems:   totalItems,
		ItemsPerPage: limit,
		HasNextPage:  page < totalPages,
		HasPrevPage:  page > 1,
	}
}

package models

// Category is one of the fixed content categories shared by articles and
// projects.
type Category struct {
	Slug  string `json:"slug" example:"web-dev"`
	Label string `json:"label" example:"Web Development"`
}

const (
	CategoryWebDev       = "web-dev"
	CategoryTransport    = "transport"
	CategoryConstruction = "construction"
	CategoryGeneral      = "general"
)

var categories = []Category{
	{Slug: CategoryWebDev, Label: "Web Development"},
	{Slug: CategoryTransport, Label: "Transport & Logistics"},
	{Slug: CategoryConstruction, Label: "Construction"},
	{Slug: CategoryGeneral, Label: "General"},
}

// Categories returns the static category list.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// IsValidCategory reports whether s is one of the known category slugs.
func IsValidCategory(s string) bool {
	for _, c := range categories {
		if c.Slug == s {
			return true
		}
	}
	return false
}

package models

import (
	"time"

	"github.com/lib/pq"
)

// Article statuses. Published articles additionally need published_at <= now
// to be visible on public endpoints.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusArchived  = "archived"
)

type Article struct {
	ID              uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt       time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt       time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	Title           string         `gorm:"size:255;not null" json:"title" example:"How We Rebuilt Our Fleet Tracking"`
	Slug            string         `gorm:"size:255;not null;uniqueIndex" json:"slug" example:"how-we-rebuilt-our-fleet-tracking"`
	Excerpt         string         `gorm:"size:500;not null" json:"excerpt"`
	Content         string         `gorm:"type:text" json:"content,omitempty"`
	FeaturedImage   *string        `gorm:"size:2048" json:"featured_image"`
	Gallery         pq.StringArray `gorm:"type:text[]" json:"gallery"`
	Category        string         `gorm:"size:32;index;not null;default:general" json:"category" example:"web-dev"`
	Tags            pq.StringArray `gorm:"type:text[]" json:"tags"`
	Author          string         `gorm:"size:100;not null" json:"author"`
	Status          string         `gorm:"size:16;index;not null;default:draft" json:"status" example:"draft"`
	PublishedAt     *time.Time     `gorm:"index" json:"published_at"`
	ReadTime        *int           `json:"read_time" example:"4"`
	Views           int64          `gorm:"not null;default:0" json:"views"`
	MetaTitle       string         `gorm:"size:60" json:"meta_title"`
	MetaDescription string         `gorm:"size:160" json:"meta_description"`
	Featured        bool           `gorm:"not null;default:false" json:"featured"`
}

// IsLive reports whether the article is inside the published window:
// status is published and published_at is set and not in the future.
func (a *Article) IsLive() bool {
	return a.Status == StatusPublished && a.PublishedAt != nil && !a.PublishedAt.After(time.Now())
}

// ArticlePatch is the whitelisted partial-update payload. One optional field
// per mutable attribute; unknown JSON keys are rejected at bind time.
type ArticlePatch struct {
	Title           *string   `json:"title"`
	Slug            *string   `json:"slug"`
	Excerpt         *string   `json:"excerpt"`
	Content         *string   `json:"content"`
	FeaturedImage   *string   `json:"featured_image"`
	Gallery         *[]string `json:"gallery"`
	Category        *string   `json:"category"`
	Tags            *[]string `json:"tags"`
	Author          *string   `json:"author"`
	Status          *string   `json:"status"`
	ReadTime        *int      `json:"read_time"`
	MetaTitle       *string   `json:"meta_title"`
	MetaDescription *string   `json:"meta_description"`
	Featured        *bool     `json:"featured"`
}

// CategoryCount is one row of the per-category article distribution.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

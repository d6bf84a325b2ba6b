package models

import (
	"time"

	"github.com/lib/pq"
)

// Project statuses.
const (
	ProjectOngoing   = "ongoing"
	ProjectCompleted = "completed"
)

type Project struct {
	ID           uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt    time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt    time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	Title        string         `gorm:"size:255;not null" json:"title" example:"Warehouse Extension, Pirkkala"`
	Description  string         `gorm:"type:text;not null" json:"description"`
	Category     string         `gorm:"size:32;index;not null;default:general" json:"category" example:"construction"`
	Image        *string        `gorm:"size:2048" json:"image"`
	Gallery      pq.StringArray `gorm:"type:text[]" json:"gallery"`
	Client       string         `gorm:"size:200" json:"client"`
	Location     string         `gorm:"size:200" json:"location"`
	Year         int            `json:"year" example:"2024"`
	Status       string         `gorm:"size:16;index;not null;default:ongoing" json:"status" example:"completed"`
	Featured     bool           `gorm:"not null;default:false" json:"featured"`
	DisplayOrder int            `gorm:"not null;default:0" json:"display_order"`
}

package repository

import (
	"log"

	"bizsite/internal/models"

	"gorm.io/gorm"
)

// ProjectFilter narrows the portfolio listing. Zero values mean no filter.
type ProjectFilter struct {
	Category string
	Status   string
	Featured *bool
	Page     int
	Limit    int
}

type ProjectRepository interface {
	Create(project *models.Project) error
	FindByID(id uint) (*models.Project, error)
	FindMany(filter ProjectFilter) ([]models.Project, int64, error)
	Update(id uint, updates map[string]interface{}) error
	Delete(id uint) error
}

type projectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepository{db}
}

func (r *projectRepository) Create(project *models.Project) error {
	if err := r.db.Create(project).Error; err != nil {
		log.Printf("Error creating project: %v", err)
		return err
	}
	return nil
}

func (r *projectRepository) FindByID(id uint) (*models.Project, error) {
	var project models.Project
	if err := r.db.First(&project, id).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *projectRepository) FindMany(filter ProjectFilter) ([]models.Project, int64, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 10
	}

	tx := r.db.Model(&models.Project{})
	if filter.Category != "" && filter.Category != "all" {
		tx = tx.Where("category = ?", filter.Category)
	}
	if filter.Status != "" && filter.Status != "all" {
		tx = tx.Where("status = ?", filter.Status)
	}
	if filter.Featured != nil {
		tx = tx.Where("featured = ?", *filter.Featured)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var projects []models.Project
	err := tx.Order("display_order ASC, year DESC, created_at DESC").
		Limit(filter.Limit).
		Offset((filter.Page - 1) * filter.Limit).
		Find(&projects).Error
	if err != nil {
		log.Printf("Error listing projects: %v", err)
		return nil, 0, err
	}
	return projects, total, nil
}

func (r *projectRepository) Update(id uint, updates map[string]interface{}) error {
	var project models.Project
	if err := r.db.First(&project, id).Error; err != nil {
		return err
	}
	return r.db.Model(&project).Updates(updates).Error
}

func (r *projectRepository) Delete(id uint) error {
	return r.db.Delete(&models.Project{}, id).Error
}

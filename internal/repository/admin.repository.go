package repository

import (
	"bizsite/internal/models"

	"gorm.io/gorm"
)

type AdminRepository interface {
	Create(admin *models.AdminUser) error
	FindByUsername(username string) (*models.AdminUser, error)
	First() (*models.AdminUser, error)
	UpdateCredentials(id uint, username, passwordHash string) error
}

type adminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db}
}

func (r *adminRepository) Create(admin *models.AdminUser) error {
	return r.db.Create(admin).Error
}

func (r *adminRepository) FindByUsername(username string) (*models.AdminUser, error) {
	var admin models.AdminUser
	if err := r.db.Where("username = ?", username).First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *adminRepository) First() (*models.AdminUser, error) {
	var admin models.AdminUser
	if err := r.db.Order("id ASC").First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *adminRepository) UpdateCredentials(id uint, username, passwordHash string) error {
	return r.db.Model(&models.AdminUser{}).Where("id = ?", id).Updates(map[string]interface{}{
		"username":      username,
		"password_hash": passwordHash,
	}).Error
}

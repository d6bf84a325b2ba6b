package repository

import (
	"log"

	"bizsite/internal/models"

	"gorm.io/gorm"
)

type ContactRepository interface {
	Create(contact *models.Contact) error
	FindByID(id uint) (*models.Contact, error)
	FindMany(unreadOnly bool, page, limit int) ([]models.Contact, int64, error)
	MarkRead(id uint) error
	Delete(id uint) error
	Count() (int64, error)
	CountUnread() (int64, error)
}

type contactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db}
}

func (r *contactRepository) Create(contact *models.Contact) error {
	if err := r.db.Create(contact).Error; err != nil {
		log.Printf("Error creating contact: %v", err)
		return err
	}
	return nil
}

func (r *contactRepository) FindByID(id uint) (*models.Contact, error) {
	var contact models.Contact
	if err := r.db.First(&contact, id).Error; err != nil {
		return nil, err
	}
	return &contact, nil
}

func (r *contactRepository) FindMany(unreadOnly bool, page, limit int) ([]models.Contact, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	tx := r.db.Model(&models.Contact{})
	if unreadOnly {
		tx = tx.Where("is_read = ?", false)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var contacts []models.Contact
	err := tx.Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&contacts).Error
	if err != nil {
		log.Printf("Error listing contacts: %v", err)
		return nil, 0, err
	}
	return contacts, total, nil
}

func (r *contactRepository) MarkRead(id uint) error {
	result := r.db.Model(&models.Contact{}).Where("id = ?", id).Update("is_read", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *contactRepository) Delete(id uint) error {
	return r.db.Delete(&models.Contact{}, id).Error
}

func (r *contactRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Contact{}).Count(&count).Error
	return count, err
}

func (r *contactRepository) CountUnread() (int64, error) {
	var count int64
	err := r.db.Model(&models.Contact{}).Where("is_read = ?", false).Count(&count).Error
	return count, err
}

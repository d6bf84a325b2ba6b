package controllers

import (
	"net/http"

	"bizsite/internal/models"
	"bizsite/internal/repository"

	"github.com/gin-gonic/gin"
)

type ContactController struct {
	repo repository.ContactRepository
}

func NewContactController(repo repository.ContactRepository) *ContactController {
	return &ContactController{repo: repo}
}

type ContactRequest struct {
	Name    string `json:"name" binding:"required,min=2,max=100"`
	Email   string `json:"email" binding:"required,email,max=255"`
	Phone   string `json:"phone" binding:"omitempty,max=32"`
	Subject string `json:"subject" binding:"omitempty,max=200"`
	Message string `json:"message" binding:"required,min=10,max=5000"`
}

// CreateContact godoc
// @Summary Submit the contact form
// @Tags contact
// @Accept json
// @Produce json
// @Param contact body ContactRequest true "Contact data"
// @Success 201 {object} map[string]interface{} "Message received"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /contact [post]
func (cc *ContactController) CreateContact(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	contact := &models.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	}
	if err := cc.repo.Create(contact); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to save message",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Message received, we will get back to you shortly",
		"data":    contact,
	})
}

// GetContacts godoc
// @Summary List contact submissions (admin)
// @Tags admin
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Param unread query string false "Pass true to list unread messages only"
// @Success 200 {object} map[string]interface{} "Contacts retrieved successfully"
// @Router /admin/contacts [get]
func (cc *ContactController) GetContacts(c *gin.Context) {
	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", 10)
	unreadOnly := c.Query("unread") == "true"

	contacts, total, err := cc.repo.FindMany(unreadOnly, page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve contacts",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Contacts retrieved successfully",
		"data": gin.H{
			"contacts":   contacts,
			"pagination": models.NewPagination(page, limit, total),
		},
	})
}

// MarkContactRead godoc
// @Summary Mark a contact submission as read (admin)
// @Tags admin
// @Produce json
// @Param id path int true "Contact ID"
// @Success 200 {object} map[string]interface{} "Contact marked as read"
// @Failure 404 {object} map[string]interface{} "Contact not found"
// @Router /admin/contacts/{id}/read [patch]
func (cc *ContactController) MarkContactRead(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := cc.repo.MarkRead(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Contact not found",
			"error":   "No contact exists with the provided ID",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Contact marked as read",
		"data":    nil,
	})
}

// DeleteContact godoc
// @Summary Delete a contact submission (admin)
// @Tags admin
// @Produce json
// @Param id path int true "Contact ID"
// @Success 200 {object} map[string]interface{} "Contact deleted successfully"
// @Failure 404 {object} map[string]interface{} "Contact not found"
// @Router /admin/contacts/{id} [delete]
func (cc *ContactController) DeleteContact(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if _, err := cc.repo.FindByID(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Contact not found",
			"error":   "No contact exists with the provided ID",
		})
		return
	}

	if err := cc.repo.Delete(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete contact",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Contact deleted successfully",
		"data":    nil,
	})
}

// GetContactStats godoc
// @Summary Contact statistics (admin)
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]interface{} "Stats retrieved successfully"
// @Router /admin/contacts/stats [get]
func (cc *ContactController) GetContactStats(c *gin.Context) {
	total, err := cc.repo.Count()
	if err != nil {
		statsError(c, err)
		return
	}
	unread, err := cc.repo.CountUnread()
	if err != nil {
		statsError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Stats retrieved successfully",
		"data": gin.H{
			"total":  total,
			"unread": unread,
			"read":   total - unread,
		},
	})
}

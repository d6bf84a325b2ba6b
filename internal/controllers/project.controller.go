package controllers

import (
	"net/http"

	"bizsite/internal/models"
	"bizsite/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
)

type ProjectController struct {
	repo repository.ProjectRepository
}

func NewProjectController(repo repository.ProjectRepository) *ProjectController {
	return &ProjectController{repo: repo}
}

type ProjectRequest struct {
	Title        string   `json:"title" binding:"required,min=3,max=255"`
	Description  string   `json:"description" binding:"required,min=10"`
	Category     string   `json:"category" binding:"omitempty,oneof=web-dev transport construction general"`
	Image        *string  `json:"image" binding:"omitempty,http_url"`
	Gallery      []string `json:"gallery" binding:"omitempty,dive,http_url"`
	Client       string   `json:"client" binding:"omitempty,max=200"`
	Location     string   `json:"location" binding:"omitempty,max=200"`
	Year         int      `json:"year" binding:"omitempty,min=1900,max=2100"`
	Status       string   `json:"status" binding:"omitempty,oneof=ongoing completed"`
	Featured     bool     `json:"featured"`
	DisplayOrder int      `json:"display_order"`
}

func (req *ProjectRequest) toModel() *models.Project {
	project := &models.Project{
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		Image:        req.Image,
		Gallery:      pq.StringArray(req.Gallery),
		Client:       req.Client,
		Location:     req.Location,
		Year:         req.Year,
		Status:       req.Status,
		Featured:     req.Featured,
		DisplayOrder: req.DisplayOrder,
	}
	if project.Category == "" {
		project.Category = models.CategoryGeneral
	}
	if project.Status == "" {
		project.Status = models.ProjectOngoing
	}
	return project
}

// GetProjects godoc
// @Summary List portfolio projects
// @Tags project
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Param category query string false "Category filter"
// @Param status query string false "Status filter (ongoing or completed)"
// @Param featured query string false "Pass true to list featured projects only"
// @Success 200 {object} map[string]interface{} "Projects retrieved successfully"
// @Router /projects [get]
func (pc *ProjectController) GetProjects(c *gin.Context) {
	filter := repository.ProjectFilter{
		Category: c.Query("category"),
		Status:   c.Query("status"),
		Page:     queryInt(c, "page", 1),
		Limit:    queryInt(c, "limit", 10),
	}
	if c.Query("featured") == "true" {
		featured := true
		filter.Featured = &featured
	}

	projects, total, err := pc.repo.FindMany(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve projects",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Projects retrieved successfully",
		"data": gin.H{
			"projects":   projects,
			"pagination": models.NewPagination(filter.Page, filter.Limit, total),
		},
	})
}

// GetProjectByID godoc
// @Summary Get a project by ID
// @Tags project
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {object} map[string]interface{} "Project retrieved successfully"
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Router /projects/{id} [get]
func (pc *ProjectController) GetProjectByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	project, err := pc.repo.FindByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Project not found",
			"error":   "No project exists with the provided ID",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Project retrieved successfully",
		"data":    project,
	})
}

// CreateProject godoc
// @Summary Create a project
// @Tags admin
// @Accept json
// @Produce json
// @Param project body ProjectRequest true "Project data"
// @Success 201 {object} map[string]interface{} "Project created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /projects [post]
func (pc *ProjectController) CreateProject(c *gin.Context) {
	var req ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	project := req.toModel()
	if err := pc.repo.Create(project); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create project",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Project created successfully",
		"data":    project,
	})
}

// UpdateProject godoc
// @Summary Update a project
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "Project ID"
// @Param project body ProjectRequest true "Project data"
// @Success 200 {object} map[string]interface{} "Project updated successfully"
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Router /projects/{id} [put]
func (pc *ProjectController) UpdateProject(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if _, err := pc.repo.FindByID(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Project not found",
			"error":   "No project exists with the provided ID",
		})
		return
	}

	var req ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	project := req.toModel()
	updates := map[string]interface{}{
		"title":         project.Title,
		"description":   project.Description,
		"category":      project.Category,
		"image":         project.Image,
		"gallery":       project.Gallery,
		"client":        project.Client,
		"location":      project.Location,
		"year":          project.Year,
		"status":        project.Status,
		"featured":      project.Featured,
		"display_order": project.DisplayOrder,
	}
	if err := pc.repo.Update(id, updates); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update project",
			"error":   err.Error(),
		})
		return
	}

	updated, err := pc.repo.FindByID(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to reload project",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Project updated successfully",
		"data":    updated,
	})
}

// DeleteProject godoc
// @Summary Delete a project
// @Tags admin
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {object} map[string]interface{} "Project deleted successfully"
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Router /projects/{id} [delete]
func (pc *ProjectController) DeleteProject(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if _, err := pc.repo.FindByID(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Project not found",
			"error":   "No project exists with the provided ID",
		})
		return
	}

	if err := pc.repo.Delete(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete project",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Project deleted successfully",
		"data":    nil,
	})
}

package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"bizsite/internal/services"

	"github.com/gin-gonic/gin"
)

// serviceErrorResponse maps the service error taxonomy onto HTTP statuses:
// validation 400, not found 404, conflict 409, everything else 500.
func serviceErrorResponse(c *gin.Context, err error) {
	var validationErr *services.ValidationError
	var notFoundErr *services.NotFoundError
	var conflictErr *services.ConflictError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Validation failed",
			"field":   validationErr.Field,
			"error":   validationErr.Message,
		})
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": notFoundErr.Resource + " not found",
			"error":   notFoundErr.Error(),
		})
	case errors.As(err, &conflictErr):
		c.JSON(http.StatusConflict, gin.H{
			"status":  "error",
			"message": "Conflict",
			"error":   conflictErr.Error(),
		})
	default:
		log.Printf("Unhandled service error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Internal server error",
			"error":   "The request could not be processed",
		})
	}
}

// queryInt reads an integer query parameter, falling back to def on absence
// or garbage.
func queryInt(c *gin.Context, name string, def int) int {
	raw := c.Query(name)
	if raw == "" {
		return def
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return value
}

// pathID parses the :id path parameter as a positive integer.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid ID",
			"error":   "ID must be a valid positive integer",
		})
		return 0, false
	}
	return uint(id), true
}

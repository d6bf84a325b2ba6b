package controllers

import (
	"net/http"
	"os"
	"time"

	"bizsite/internal/repository"
	"bizsite/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const tokenLifetime = 24 * time.Hour

type AuthController struct {
	repo repository.AdminRepository
}

func NewAuthController(repo repository.AdminRepository) *AuthController {
	return &AuthController{repo: repo}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UpdateCredentialsRequest struct {
	Username string `json:"username" binding:"required,min=3,max=100"`
	Password string `json:"password" binding:"required,min=8,max=128"`
}

// Login godoc
// @Summary Log in with the admin credentials
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Credentials"
// @Success 200 {object} map[string]interface{} "Login successful"
// @Failure 401 {object} map[string]interface{} "Invalid credentials"
// @Router /auth/login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	admin, err := ac.repo.FindByUsername(req.Username)
	if err != nil || !utils.CheckPassword(admin.PasswordHash, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Invalid credentials",
			"error":   "Username or password is incorrect",
		})
		return
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"username": admin.Username,
		"iat":      now.Unix(),
		"exp":      now.Add(tokenLifetime).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(os.Getenv("JWT_SECRET_KEY")))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to issue token",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Login successful",
		"data": gin.H{
			"token":      signed,
			"expires_at": now.Add(tokenLifetime).Unix(),
		},
	})
}

// Verify godoc
// @Summary Verify the current token
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]interface{} "Token is valid"
// @Failure 401 {object} map[string]interface{} "Invalid token"
// @Router /auth/verify [get]
func (ac *AuthController) Verify(c *gin.Context) {
	username, _ := c.Get("username")
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Token is valid",
		"data": gin.H{
			"username": username,
		},
	})
}

// UpdateCredentials godoc
// @Summary Replace the admin credentials
// @Description Stores the new username and a bcrypt hash of the new password
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body UpdateCredentialsRequest true "New credentials"
// @Success 200 {object} map[string]interface{} "Credentials updated"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /auth/credentials [put]
func (ac *AuthController) UpdateCredentials(c *gin.Context) {
	var req UpdateCredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	admin, err := ac.repo.First()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to load admin account",
			"error":   err.Error(),
		})
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to hash password",
			"error":   err.Error(),
		})
		return
	}

	if err := ac.repo.UpdateCredentials(admin.ID, req.Username, hash); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update credentials",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Credentials updated successfully",
		"data":    nil,
	})
}

package tests

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"bizsite/internal/controllers"
	"bizsite/internal/models"
	"bizsite/internal/utils"
	"bizsite/tests/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupAuthController(t *testing.T) (*controllers.AuthController, *mocks.MockAdminRepository) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")
	mockRepo := new(mocks.MockAdminRepository)
	controller := controllers.NewAuthController(mockRepo)
	return controller, mockRepo
}

func TestLogin(t *testing.T) {
	hash, err := utils.HashPassword("correct horse battery")
	require.NoError(t, err)
	admin := &models.AdminUser{ID: 1, Username: "admin", PasswordHash: hash}

	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		setupMock      func(*mocks.MockAdminRepository)
		expectedStatus int
	}{
		{
			name:        "valid credentials",
			requestBody: map[string]interface{}{"username": "admin", "password": "correct horse battery"},
			setupMock: func(m *mocks.MockAdminRepository) {
				m.On("FindByUsername", "admin").Return(admin, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:        "wrong password",
			requestBody: map[string]interface{}{"username": "admin", "password": "nope"},
			setupMock: func(m *mocks.MockAdminRepository) {
				m.On("FindByUsername", "admin").Return(admin, nil)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:        "unknown user",
			requestBody: map[string]interface{}{"username": "ghost", "password": "whatever"},
			setupMock: func(m *mocks.MockAdminRepository) {
				m.On("FindByUsername", "ghost").Return(nil, errors.New("record not found"))
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "missing password",
			requestBody:    map[string]interface{}{"username": "admin"},
			setupMock:      func(m *mocks.MockAdminRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, mockRepo := setupAuthController(t)
			tt.setupMock(mockRepo)

			router := setupTestRouter()
			router.POST("/auth/login", controller.Login)

			payload, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(payload))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				body := decodeBody(t, w)
				data := body["data"].(map[string]interface{})
				assert.NotEmpty(t, data["token"])
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestUpdateCredentials(t *testing.T) {
	controller, mockRepo := setupAuthController(t)
	mockRepo.On("First").Return(&models.AdminUser{ID: 1, Username: "admin"}, nil)
	mockRepo.On("UpdateCredentials", uint(1), "newadmin", mock.AnythingOfType("string")).Return(nil)

	router := setupTestRouter()
	router.PUT("/auth/credentials", controller.UpdateCredentials)

	payload, _ := json.Marshal(map[string]interface{}{
		"username": "newadmin",
		"password": "a-long-enough-password",
	})
	req := httptest.NewRequest(http.MethodPut, "/auth/credentials", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockRepo.AssertExpectations(t)
}

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
	"bizsite/tests/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func setupContactController() (*controllers.ContactController, *mocks.MockContactRepository) {
	mockRepo := new(mocks.MockContactRepository)
	controller := controllers.NewContactController(mockRepo)
	return controller, mockRepo
}

func TestCreateContact(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		setupMock      func(*mocks.MockContactRepository)
		expectedStatus int
	}{
		{
			name: "successful submission",
			requestBody: map[string]interface{}{
				"name":    "Pekka",
				"email":   "pekka@example.com",
				"message": "I would like a quote for a warehouse extension.",
			},
			setupMock: func(m *mocks.MockContactRepository) {
				m.On("Create", mock.AnythingOfType("*models.Contact")).Return(nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "invalid email",
			requestBody: map[string]interface{}{
				"name":    "Pekka",
				"email":   "not-an-email",
				"message": "I would like a quote for a warehouse extension.",
			},
			setupMock:      func(m *mocks.MockContactRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "missing message",
			requestBody: map[string]interface{}{
				"name":  "Pekka",
				"email": "pekka@example.com",
			},
			setupMock:      func(m *mocks.MockContactRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "repository error",
			requestBody: map[string]interface{}{
				"name":    "Pekka",
				"email":   "pekka@example.com",
				"message": "I would like a quote for a warehouse extension.",
			},
			setupMock: func(m *mocks.MockContactRepository) {
				m.On("Create", mock.AnythingOfType("*models.Contact")).Return(errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, mockRepo := setupContactController()
			tt.setupMock(mockRepo)

			router := setupTestRouter()
			router.POST("/contact", controller.CreateContact)

			payload, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest(http.MethodPost, "/contact", bytes.NewReader(payload))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestGetContacts(t *testing.T) {
	controller, mockRepo := setupContactController()
	mockRepo.On("FindMany", true, 1, 10).
		Return([]models.Contact{{ID: 1, Name: "Pekka"}}, int64(1), nil)

	router := setupTestRouter()
	router.GET("/admin/contacts", controller.GetContacts)

	req := httptest.NewRequest(http.MethodGet, "/admin/contacts?unread=true", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockRepo.AssertExpectations(t)
}

func TestMarkContactRead(t *testing.T) {
	t.Run("existing contact", func(t *testing.T) {
		controller, mockRepo := setupContactController()
		mockRepo.On("MarkRead", uint(1)).Return(nil)

		router := setupTestRouter()
		router.PATCH("/admin/contacts/:id/read", controller.MarkContactRead)

		req := httptest.NewRequest(http.MethodPatch, "/admin/contacts/1/read", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockRepo.AssertExpectations(t)
	})

	t.Run("missing contact", func(t *testing.T) {
		controller, mockRepo := setupContactController()
		mockRepo.On("MarkRead", uint(42)).Return(gorm.ErrRecordNotFound)

		router := setupTestRouter()
		router.PATCH("/admin/contacts/:id/read", controller.MarkContactRead)

		req := httptest.NewRequest(http.MethodPatch, "/admin/contacts/42/read", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestGetContactStats(t *testing.T) {
	controller, mockRepo := setupContactController()
	mockRepo.On("Count").Return(int64(12), nil)
	mockRepo.On("CountUnread").Return(int64(3), nil)

	router := setupTestRouter()
	router.GET("/admin/contacts/stats", controller.GetContactStats)

	req := httptest.NewRequest(http.MethodGet, "/admin/contacts/stats", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(12), data["total"])
	assert.Equal(t, float64(3), data["unread"])
	assert.Equal(t, float64(9), data["read"])
}

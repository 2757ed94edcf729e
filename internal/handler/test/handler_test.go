package test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"

	"unlinked/internal/config"
	handlers "unlinked/internal/handler"
	"unlinked/internal/logger"
	"unlinked/internal/models"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecretKey:  "test-secret-key",
		TokenDuration: 72 * time.Hour,
		ServerPort:    8080,
		MaxUploadSize: 10 * 1024 * 1024,
		ClientURL:     "http://localhost:5173",
	}
}

func createTestHandler() *handlers.Handlers {
	return &handlers.Handlers{
		AuthService:         &MockAuthService{},
		PostService:         &MockPostService{},
		UserService:         &MockUserService{},
		NotificationService: &MockNotificationService{},
		Cfg:                 testConfig(),
		Validate:            validator.New(),
		Log:                 logger.Nop(),
	}
}

func testIdentity() *models.User {
	return &models.User{
		UserID:      "user-123",
		Name:        "A",
		Username:    "a1",
		Email:       "a@x.com",
		Connections: []string{"friend-1"},
	}
}

// assertJSONError checks the JSON response with an error
func assertJSONError(t *testing.T, rr *httptest.ResponseRecorder, expectedStatus int, expectedError string) {
	assert.Equal(t, expectedStatus, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var response map[string]string
	err := json.Unmarshal(rr.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Contains(t, response["error"], expectedError)
}

// assertJSONSuccess checks the successful JSON response
func assertJSONSuccess(t *testing.T, rr *httptest.ResponseRecorder, expectedStatus int) {
	assert.Equal(t, expectedStatus, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
}

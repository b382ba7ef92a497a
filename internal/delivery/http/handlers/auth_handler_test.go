package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"content-platform-service/internal/custom_errors"
	"content-platform-service/internal/logger"
	"content-platform-service/internal/model"
	auth_service_mock "content-platform-service/mocks/auth"
)

func setupAuthRouter(t *testing.T) (*gin.Engine, *auth_service_mock.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	authService := auth_service_mock.NewService(t)
	handler := NewAuthHandler(authService, logger.New("test"))

	router := gin.New()
	router.POST("/api/v1/auth/register", handler.Register)
	router.POST("/api/v1/auth/login", handler.Login)
	router.POST("/api/v1/auth/refresh", handler.Refresh)
	router.POST("/api/v1/auth/logout", handler.Logout)
	router.GET("/api/v1/me", func(c *gin.Context) {
		c.Set("user_id", int64(1))
		handler.Me(c)
	})
	return router, authService
}

func postJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthHandler_Register(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		router, authService := setupAuthRouter(t)
		authService.On("Register", mock.Anything, "user@example.com", "secret123").
			Return(&model.User{ID: 1, Email: "user@example.com"}, nil)

		w := postJSON(t, router, "/api/v1/auth/register", gin.H{
			"email":            "user@example.com",
			"password":         "secret123",
			"password_confirm": "secret123",
		})

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "user@example.com")
	})

	t.Run("Invalid email", func(t *testing.T) {
		router, _ := setupAuthRouter(t)

		w := postJSON(t, router, "/api/v1/auth/register", gin.H{
			"email":            "not-an-email",
			"password":         "secret123",
			"password_confirm": "secret123",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid email format")
	})

	t.Run("Short password", func(t *testing.T) {
		router, _ := setupAuthRouter(t)

		w := postJSON(t, router, "/api/v1/auth/register", gin.H{
			"email":            "user@example.com",
			"password":         "123",
			"password_confirm": "123",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Password must be at least 6 characters")
	})

	t.Run("Password mismatch", func(t *testing.T) {
		router, _ := setupAuthRouter(t)

		w := postJSON(t, router, "/api/v1/auth/register", gin.H{
			"email":            "user@example.com",
			"password":         "secret123",
			"password_confirm": "secret124",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Passwords do not match")
	})

	t.Run("Email taken", func(t *testing.T) {
		router, authService := setupAuthRouter(t)
		authService.On("Register", mock.Anything, "user@example.com", "secret123").
			Return(nil, custom_errors.ErrEmailExists)

		w := postJSON(t, router, "/api/v1/auth/register", gin.H{
			"email":            "user@example.com",
			"password":         "secret123",
			"password_confirm": "secret123",
		})

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		router, authService := setupAuthRouter(t)
		authService.On("Login", mock.Anything, "user@example.com", "secret123").
			Return(&model.TokenPair{AccessToken: "access", RefreshToken: "refresh"}, nil)

		w := postJSON(t, router, "/api/v1/auth/login", gin.H{
			"email":    "user@example.com",
			"password": "secret123",
		})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "access_token")
		assert.Contains(t, w.Body.String(), "refresh_token")
	})

	t.Run("Wrong credentials", func(t *testing.T) {
		router, authService := setupAuthRouter(t)
		authService.On("Login", mock.Anything, "user@example.com", "wrong1").
			Return(nil, custom_errors.ErrInvalidCredentials)

		w := postJSON(t, router, "/api/v1/auth/login", gin.H{
			"email":    "user@example.com",
			"password": "wrong1",
		})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Missing email", func(t *testing.T) {
		router, _ := setupAuthRouter(t)

		w := postJSON(t, router, "/api/v1/auth/login", gin.H{
			"password": "secret123",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Email is required")
	})
}

func TestAuthHandler_Refresh(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		router, authService := setupAuthRouter(t)
		authService.On("Refresh", mock.Anything, "old-token").
			Return(&model.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh"}, nil)

		w := postJSON(t, router, "/api/v1/auth/refresh", gin.H{"refresh_token": "old-token"})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "new-refresh")
	})

	t.Run("Invalid token", func(t *testing.T) {
		router, authService := setupAuthRouter(t)
		authService.On("Refresh", mock.Anything, "bad-token").
			Return(nil, custom_errors.ErrInvalidToken)

		w := postJSON(t, router, "/api/v1/auth/refresh", gin.H{"refresh_token": "bad-token"})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Expired token", func(t *testing.T) {
		router, authService := setupAuthRouter(t)
		authService.On("Refresh", mock.Anything, "stale-token").
			Return(nil, custom_errors.ErrRefreshTokenExpired)

		w := postJSON(t, router, "/api/v1/auth/refresh", gin.H{"refresh_token": "stale-token"})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	router, authService := setupAuthRouter(t)
	authService.On("SignOut", mock.Anything, "token").Return(nil)

	w := postJSON(t, router, "/api/v1/auth/logout", gin.H{"refresh_token": "token"})

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestAuthHandler_Me(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		router, authService := setupAuthRouter(t)
		authService.On("CurrentUser", mock.Anything, int64(1)).
			Return(&model.User{ID: 1, Email: "user@example.com"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "user@example.com")
		assert.NotContains(t, w.Body.String(), "password")
	})

	t.Run("Unknown user", func(t *testing.T) {
		router, authService := setupAuthRouter(t)
		authService.On("CurrentUser", mock.Anything, int64(1)).
			Return(nil, custom_errors.ErrUserNotFound)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

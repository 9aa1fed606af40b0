package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"hirely-api/internal/models"
	"hirely-api/internal/services"
	"hirely-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRegisterEndpoint(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		router, mocks := setupRouter(t)
		userID := uuid.New()

		mocks.users.On("Register", mock.Anything, &dto.RegisterRequest{
			Name:     "User A",
			Email:    "a@x.com",
			Password: "password123",
		}).Return(&models.User{
			ID:    userID,
			Name:  "User A",
			Email: "a@x.com",
			Role:  models.RoleUser,
		}, &services.TokenPair{AccessToken: "access", RefreshToken: "refresh"}, nil).Once()

		body, _ := json.Marshal(gin.H{"name": "User A", "email": "a@x.com", "password": "password123"})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var resp dto.AuthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "access", resp.Token)
		assert.Equal(t, "refresh", resp.RefreshToken)
		assert.Equal(t, models.RoleUser, resp.User.Role)
		// The raw body never carries a password hash.
		assert.NotContains(t, w.Body.String(), "password")
		mocks.users.AssertExpectations(t)
	})

	t.Run("Duplicate Email - 400", func(t *testing.T) {
		router, mocks := setupRouter(t)

		mocks.users.On("Register", mock.Anything, mock.Anything).Return(nil, nil, services.ErrConflict).Once()

		body, _ := json.Marshal(gin.H{"name": "User A", "email": "a@x.com", "password": "password123"})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "User already exists")
		mocks.users.AssertExpectations(t)
	})

	t.Run("Missing Fields - 400", func(t *testing.T) {
		router, mocks := setupRouter(t)

		body, _ := json.Marshal(gin.H{"email": "a@x.com"})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Validation failed")
		mocks.users.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
	})

	t.Run("Short Password - 400", func(t *testing.T) {
		router, mocks := setupRouter(t)

		body, _ := json.Marshal(gin.H{"name": "User A", "email": "a@x.com", "password": "short"})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mocks.users.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
	})
}

func TestLoginEndpoint(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		router, mocks := setupRouter(t)
		userID := uuid.New()

		mocks.users.On("Login", mock.Anything, &dto.LoginRequest{
			Email:    "a@x.com",
			Password: "password123",
		}).Return(&models.User{
			ID:    userID,
			Name:  "User A",
			Email: "a@x.com",
			Role:  models.RoleUser,
		}, &services.TokenPair{AccessToken: "access", RefreshToken: "refresh"}, nil).Once()

		body, _ := json.Marshal(gin.H{"email": "a@x.com", "password": "password123"})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp dto.AuthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, userID, resp.User.ID)
		mocks.users.AssertExpectations(t)
	})

	t.Run("Invalid Credentials - 401", func(t *testing.T) {
		router, mocks := setupRouter(t)

		mocks.users.On("Login", mock.Anything, mock.Anything).Return(nil, nil, services.ErrInvalidCredentials).Once()

		body, _ := json.Marshal(gin.H{"email": "a@x.com", "password": "wrong-password"})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid credentials")
		mocks.users.AssertExpectations(t)
	})
}

func TestRefreshEndpoint(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		router, mocks := setupRouter(t)

		mocks.users.On("Refresh", mock.Anything, &dto.RefreshRequest{RefreshToken: "old-token"}).
			Return(&services.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh"}, nil).Once()

		body, _ := json.Marshal(gin.H{"refresh_token": "old-token"})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "new-access")
		assert.Contains(t, w.Body.String(), "new-refresh")
		mocks.users.AssertExpectations(t)
	})

	t.Run("Unknown Token - 401", func(t *testing.T) {
		router, mocks := setupRouter(t)

		mocks.users.On("Refresh", mock.Anything, mock.Anything).Return(nil, services.ErrInvalidCredentials).Once()

		body, _ := json.Marshal(gin.H{"refresh_token": "bogus"})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		mocks.users.AssertExpectations(t)
	})
}

func TestLogoutEndpoint(t *testing.T) {
	router, mocks := setupRouter(t)

	mocks.users.On("Logout", mock.Anything, &dto.LogoutRequest{RefreshToken: "some-token"}).Return(nil).Once()

	body, _ := json.Marshal(gin.H{"refresh_token": "some-token"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Logged out")
	mocks.users.AssertExpectations(t)
}

func TestUpdateProfileEndpoint(t *testing.T) {
	userID := uuid.New()
	newName := "Renamed"

	t.Run("Success - identity from token, not body", func(t *testing.T) {
		router, mocks := setupRouter(t)

		mocks.users.On("UpdateProfile", mock.Anything, mock.MatchedBy(func(req *dto.UpdateProfileRequest) bool {
			return req.UserID == userID && req.Name != nil && *req.Name == newName
		})).Return(&models.User{
			ID:    userID,
			Name:  newName,
			Email: "a@x.com",
			Role:  models.RoleUser,
		}, nil).Once()

		body, _ := json.Marshal(gin.H{"name": newName})
		req := httptest.NewRequest(http.MethodPut, "/api/v1/auth/profile", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+signTestToken(t, userID, models.RoleUser))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Profile updated successfully")
		mocks.users.AssertExpectations(t)
	})

	t.Run("No Token - 401", func(t *testing.T) {
		router, mocks := setupRouter(t)

		body, _ := json.Marshal(gin.H{"name": newName})
		req := httptest.NewRequest(http.MethodPut, "/api/v1/auth/profile", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		mocks.users.AssertNotCalled(t, "UpdateProfile", mock.Anything, mock.Anything)
	})

	t.Run("Email Conflict - 400", func(t *testing.T) {
		router, mocks := setupRouter(t)

		mocks.users.On("UpdateProfile", mock.Anything, mock.Anything).Return(nil, services.ErrConflict).Once()

		body, _ := json.Marshal(gin.H{"email": "taken@x.com"})
		req := httptest.NewRequest(http.MethodPut, "/api/v1/auth/profile", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+signTestToken(t, userID, models.RoleUser))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Email already in use")
		mocks.users.AssertExpectations(t)
	})
}

func TestDeleteProfileEndpoint(t *testing.T) {
	userID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		router, mocks := setupRouter(t)

		mocks.users.On("DeleteProfile", mock.Anything, &dto.DeleteProfileRequest{UserID: userID}).Return(nil).Once()

		req := httptest.NewRequest(http.MethodDelete, "/api/v1/auth/profile", nil)
		req.Header.Set("Authorization", "Bearer "+signTestToken(t, userID, models.RoleUser))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Profile deleted")
		mocks.users.AssertExpectations(t)
	})

	t.Run("No Token - 401", func(t *testing.T) {
		router, mocks := setupRouter(t)

		req := httptest.NewRequest(http.MethodDelete, "/api/v1/auth/profile", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		mocks.users.AssertNotCalled(t, "DeleteProfile", mock.Anything, mock.Anything)
	})
}

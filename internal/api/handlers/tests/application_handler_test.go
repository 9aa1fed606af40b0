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

func TestApplyEndpoint(t *testing.T) {
	userID := uuid.New()
	jobID := uuid.New()

	validBody := gin.H{
		"resume_link": "https://example.com/resume.pdf",
		"cover_note":  "Excited about this role.",
	}

	t.Run("Success - 201, status Applied", func(t *testing.T) {
		router, mocks := setupRouter(t)

		mocks.applications.On("Apply", mock.Anything, mock.MatchedBy(func(req *dto.ApplyRequest) bool {
			return req.UserID == userID && req.JobID == jobID && req.ResumeLink == "https://example.com/resume.pdf"
		})).Return(&models.Application{
			ID:         uuid.New(),
			UserID:     userID,
			JobID:      jobID,
			ResumeLink: "https://example.com/resume.pdf",
			Status:     models.StatusApplied,
		}, nil).Once()

		body, _ := json.Marshal(validBody)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/applications/"+jobID.String(), bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+signTestToken(t, userID, models.RoleUser))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var app models.Application
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &app))
		assert.Equal(t, models.StatusApplied, app.Status)
		mocks.applications.AssertExpectations(t)
	})

	t.Run("Duplicate - 400", func(t *testing.T) {
		router, mocks := setupRouter(t)

		mocks.applications.On("Apply", mock.Anything, mock.Anything).Return(nil, services.ErrConflict).Once()

		body, _ := json.Marshal(validBody)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/applications/"+jobID.String(), bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+signTestToken(t, userID, models.RoleUser))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Already applied to this job")
		mocks.applications.AssertExpectations(t)
	})

	t.Run("Job Not Found - 404", func(t *testing.T) {
		router, mocks := setupRouter(t)

		mocks.applications.On("Apply", mock.Anything, mock.Anything).Return(nil, services.ErrNotFound).Once()

		body, _ := json.Marshal(validBody)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/applications/"+uuid.NewString(), bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+signTestToken(t, userID, models.RoleUser))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Job not found")
		mocks.applications.AssertExpectations(t)
	})

	t.Run("No Token - 401, service never called", func(t *testing.T) {
		router, mocks := setupRouter(t)

		body, _ := json.Marshal(validBody)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/applications/"+jobID.String(), bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		mocks.applications.AssertNotCalled(t, "Apply", mock.Anything, mock.Anything)
	})

	t.Run("Expired Token - 401", func(t *testing.T) {
		router, mocks := setupRouter(t)

		body, _ := json.Marshal(validBody)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/applications/"+jobID.String(), bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+signExpiredToken(t, userID, models.RoleUser))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Token has expired")
		mocks.applications.AssertNotCalled(t, "Apply", mock.Anything, mock.Anything)
	})

	t.Run("Invalid Resume Link - 400", func(t *testing.T) {
		router, mocks := setupRouter(t)

		body, _ := json.Marshal(gin.H{"resume_link": "not-a-url"})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/applications/"+jobID.String(), bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+signTestToken(t, userID, models.RoleUser))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mocks.applications.AssertNotCalled(t, "Apply", mock.Anything, mock.Anything)
	})
}

func TestListMineEndpoint(t *testing.T) {
	userID := uuid.New()

	t.Run("Success - jobs expanded", func(t *testing.T) {
		router, mocks := setupRouter(t)

		mocks.applications.On("ListForUser", mock.Anything, &dto.ListApplicationsByUserRequest{UserID: userID}).
			Return([]dto.ApplicationWithJob{
				{
					Application: models.Application{ID: uuid.New(), UserID: userID, Status: models.StatusApplied},
					Job:         models.Job{Title: "Backend Intern"},
				},
			}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/applications/user", nil)
		req.Header.Set("Authorization", "Bearer "+signTestToken(t, userID, models.RoleUser))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Backend Intern")
		mocks.applications.AssertExpectations(t)
	})

	t.Run("No Token - 401", func(t *testing.T) {
		router, mocks := setupRouter(t)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/applications/user", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		mocks.applications.AssertNotCalled(t, "ListForUser", mock.Anything, mock.Anything)
	})
}

func TestListAllEndpoint(t *testing.T) {
	t.Run("Success - admin sees applicant details", func(t *testing.T) {
		router, mocks := setupRouter(t)

		mocks.applications.On("ListAll", mock.Anything).Return([]dto.ApplicationDetail{
			{
				Application: models.Application{ID: uuid.New(), Status: models.StatusShortlisted},
				Job:         models.Job{Title: "Backend Intern"},
				User:        dto.UserResponse{Name: "User A", Email: "a@x.com"},
			},
		}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/applications/admin", nil)
		req.Header.Set("Authorization", "Bearer "+signTestToken(t, uuid.New(), models.RoleAdmin))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "a@x.com")
		mocks.applications.AssertExpectations(t)
	})

	t.Run("Non-Admin - 403", func(t *testing.T) {
		router, mocks := setupRouter(t)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/applications/admin", nil)
		req.Header.Set("Authorization", "Bearer "+signTestToken(t, uuid.New(), models.RoleUser))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		mocks.applications.AssertNotCalled(t, "ListAll", mock.Anything)
	})
}

func TestUpdateStatusEndpoint(t *testing.T) {
	appID := uuid.New()
	adminID := uuid.New()

	t.Run("Success - Shortlisted", func(t *testing.T) {
		router, mocks := setupRouter(t)

		mocks.applications.On("UpdateStatus", mock.Anything, &dto.UpdateApplicationStatusRequest{
			ID:     appID,
			Status: models.StatusShortlisted,
		}).Return(&models.Application{ID: appID, Status: models.StatusShortlisted}, nil).Once()

		body, _ := json.Marshal(gin.H{"status": "Shortlisted"})
		req := httptest.NewRequest(http.MethodPatch, "/api/v1/applications/"+appID.String()+"/status", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+signTestToken(t, adminID, models.RoleAdmin))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var app models.Application
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &app))
		assert.Equal(t, models.StatusShortlisted, app.Status)
		mocks.applications.AssertExpectations(t)
	})

	t.Run("Backward Transition - Selected back to Applied", func(t *testing.T) {
		router, mocks := setupRouter(t)

		mocks.applications.On("UpdateStatus", mock.Anything, &dto.UpdateApplicationStatusRequest{
			ID:     appID,
			Status: models.StatusApplied,
		}).Return(&models.Application{ID: appID, Status: models.StatusApplied}, nil).Once()

		body, _ := json.Marshal(gin.H{"status": "Applied"})
		req := httptest.NewRequest(http.MethodPatch, "/api/v1/applications/"+appID.String()+"/status", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+signTestToken(t, adminID, models.RoleAdmin))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mocks.applications.AssertExpectations(t)
	})

	t.Run("Unknown Status - 400, service never called", func(t *testing.T) {
		router, mocks := setupRouter(t)

		body, _ := json.Marshal(gin.H{"status": "Hired"})
		req := httptest.NewRequest(http.MethodPatch, "/api/v1/applications/"+appID.String()+"/status", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+signTestToken(t, adminID, models.RoleAdmin))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mocks.applications.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)
	})

	t.Run("Not Found - 404", func(t *testing.T) {
		router, mocks := setupRouter(t)

		mocks.applications.On("UpdateStatus", mock.Anything, mock.Anything).Return(nil, services.ErrNotFound).Once()

		body, _ := json.Marshal(gin.H{"status": "Rejected"})
		req := httptest.NewRequest(http.MethodPatch, "/api/v1/applications/"+uuid.NewString()+"/status", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+signTestToken(t, adminID, models.RoleAdmin))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		mocks.applications.AssertExpectations(t)
	})

	t.Run("Non-Admin - 403", func(t *testing.T) {
		router, mocks := setupRouter(t)

		body, _ := json.Marshal(gin.H{"status": "Shortlisted"})
		req := httptest.NewRequest(http.MethodPatch, "/api/v1/applications/"+appID.String()+"/status", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+signTestToken(t, uuid.New(), models.RoleUser))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		mocks.applications.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)
	})
}

func TestHealthEndpoint(t *testing.T) {
	router, _ := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

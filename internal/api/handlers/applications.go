package handlers

import (
	"errors"
	"log"
	"net/http"

	"hirely-api/internal/api/middleware"
	"hirely-api/internal/services"
	"hirely-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ApplicationHandler holds the service dependency for the application ledger.
type ApplicationHandler struct {
	service   services.ApplicationService
	validator *validator.Validate
}

// NewApplicationHandler creates a new ApplicationHandler.
func NewApplicationHandler(service services.ApplicationService, validate *validator.Validate) *ApplicationHandler {
	return &ApplicationHandler{service: service, validator: validate}
}

var _ ApplicationHandlerInterface = (*ApplicationHandler)(nil)

// Apply godoc
// @Summary      Apply to a job
// @Description  Creates an application with status Applied. A user can hold at most one application per job.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        jobId path string           true "Job ID" Format(uuid)
// @Param        body  body dto.ApplyRequest true "Application payload"
// @Success      201 {object} models.Application
// @Failure      400 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Security     BearerAuth
// @Router       /applications/{jobId} [post]
func (h *ApplicationHandler) Apply(c *gin.Context) {
	identity, err := middleware.GetIdentity(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
		return
	}

	jobID, err := uuid.Parse(c.Param("jobId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid job ID"})
		return
	}

	var req dto.ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}
	req.UserID = identity.UserID
	req.JobID = jobID

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Validation failed", "details": formatValidationErrors(err)})
		return
	}

	app, err := h.service.Apply(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrConflict):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Already applied to this job"})
		case errors.Is(err, services.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Job not found"})
		default:
			log.Printf("Error creating application for user %s on job %s: %v", identity.UserID, jobID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create application"})
		}
		return
	}

	c.JSON(http.StatusCreated, app)
}

// ListMine godoc
// @Summary      List the caller's applications
// @Description  Returns the authenticated user's applications, each with its job expanded.
// @Tags         applications
// @Produce      json
// @Success      200 {array} dto.ApplicationWithJob
// @Security     BearerAuth
// @Router       /applications/user [get]
func (h *ApplicationHandler) ListMine(c *gin.Context) {
	identity, err := middleware.GetIdentity(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
		return
	}

	apps, err := h.service.ListForUser(c.Request.Context(), &dto.ListApplicationsByUserRequest{UserID: identity.UserID})
	if err != nil {
		log.Printf("Error listing applications for user %s: %v", identity.UserID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve applications"})
		return
	}
	c.JSON(http.StatusOK, apps)
}

// ListAll godoc
// @Summary      List all applications
// @Description  Admin view: every application with job and applicant expanded.
// @Tags         applications
// @Produce      json
// @Success      200 {array} dto.ApplicationDetail
// @Failure      403 {object} map[string]string
// @Security     BearerAuth
// @Router       /applications/admin [get]
func (h *ApplicationHandler) ListAll(c *gin.Context) {
	apps, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		log.Printf("Error listing all applications: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve applications"})
		return
	}
	c.JSON(http.StatusOK, apps)
}

// UpdateStatus godoc
// @Summary      Update an application's status
// @Description  Sets status to one of Applied, Shortlisted, Selected, Rejected. Any transition is allowed.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id   path string                             true "Application ID" Format(uuid)
// @Param        body body dto.UpdateApplicationStatusRequest true "New status"
// @Success      200 {object} models.Application
// @Failure      400 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Security     BearerAuth
// @Router       /applications/{id}/status [patch]
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid application ID"})
		return
	}

	var req dto.UpdateApplicationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}
	req.ID = id

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Validation failed", "details": formatValidationErrors(err)})
		return
	}

	app, err := h.service.UpdateStatus(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid application status"})
		case errors.Is(err, services.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Application not found"})
		default:
			log.Printf("Error updating status of application %s: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update application status"})
		}
		return
	}
	c.JSON(http.StatusOK, app)
}

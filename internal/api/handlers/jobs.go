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

// JobHandler holds the service dependency for job catalog operations.
type JobHandler struct {
	service   services.JobService
	validator *validator.Validate
}

// NewJobHandler creates a new JobHandler.
func NewJobHandler(service services.JobService, validate *validator.Validate) *JobHandler {
	return &JobHandler{service: service, validator: validate}
}

var _ JobHandlerInterface = (*JobHandler)(nil)

// ListJobs godoc
// @Summary      List active jobs
// @Description  Returns all active job postings, newest first. Public.
// @Tags         jobs
// @Produce      json
// @Success      200 {array} models.Job
// @Router       /jobs [get]
func (h *JobHandler) ListJobs(c *gin.Context) {
	jobs, err := h.service.ListActiveJobs(c.Request.Context())
	if err != nil {
		log.Printf("Error listing jobs: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve jobs"})
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// GetJobByID godoc
// @Summary      Get a job by ID
// @Description  Returns the job regardless of active state. Public.
// @Tags         jobs
// @Produce      json
// @Param        id path string true "Job ID" Format(uuid)
// @Success      200 {object} models.Job
// @Failure      404 {object} map[string]string
// @Router       /jobs/{id} [get]
func (h *JobHandler) GetJobByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid job ID"})
		return
	}

	job, err := h.service.GetJobByID(c.Request.Context(), &dto.GetJobByIDRequest{ID: id})
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Job not found"})
			return
		}
		log.Printf("Error fetching job %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve job"})
		return
	}
	c.JSON(http.StatusOK, job)
}

// CreateJob godoc
// @Summary      Create a job
// @Description  Persists a new posting owned by the calling admin. is_active defaults to true.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        body body dto.CreateJobRequest true "Job fields"
// @Success      201 {object} models.Job
// @Failure      400 {object} map[string]string
// @Failure      403 {object} map[string]string
// @Security     BearerAuth
// @Router       /jobs [post]
func (h *JobHandler) CreateJob(c *gin.Context) {
	identity, err := middleware.GetIdentity(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
		return
	}

	var req dto.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}
	req.CreatedBy = identity.UserID

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Validation failed", "details": formatValidationErrors(err)})
		return
	}

	job, err := h.service.CreateJob(c.Request.Context(), &req)
	if err != nil {
		// The creating account can vanish between token issue and this
		// insert; the FK violation surfaces as a conflict.
		if errors.Is(err, services.ErrConflict) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Creator account no longer exists"})
			return
		}
		log.Printf("Error creating job: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create job"})
		return
	}
	c.JSON(http.StatusCreated, job)
}

// UpdateJob godoc
// @Summary      Update a job
// @Description  Merges the provided fields, including is_active toggles, into an existing posting.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id   path string               true "Job ID" Format(uuid)
// @Param        body body dto.UpdateJobRequest true "Fields to update"
// @Success      200 {object} models.Job
// @Failure      404 {object} map[string]string
// @Security     BearerAuth
// @Router       /jobs/{id} [put]
func (h *JobHandler) UpdateJob(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid job ID"})
		return
	}

	var req dto.UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}
	req.ID = id

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Validation failed", "details": formatValidationErrors(err)})
		return
	}

	job, err := h.service.UpdateJob(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Job not found"})
			return
		}
		log.Printf("Error updating job %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update job"})
		return
	}
	c.JSON(http.StatusOK, job)
}

// DeleteJob godoc
// @Summary      Delete a job
// @Description  Removes the posting and, by cascade, its applications.
// @Tags         jobs
// @Produce      json
// @Param        id path string true "Job ID" Format(uuid)
// @Success      200 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Security     BearerAuth
// @Router       /jobs/{id} [delete]
func (h *JobHandler) DeleteJob(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid job ID"})
		return
	}

	if err := h.service.DeleteJob(c.Request.Context(), &dto.DeleteJobRequest{ID: id}); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Job not found"})
			return
		}
		log.Printf("Error deleting job %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete job"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job deleted"})
}

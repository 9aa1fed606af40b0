package dto

import (
	"hirely-api/internal/models"

	"github.com/google/uuid"
)

// CreateJobRequest defines the structure for creating a job posting.
// CreatedBy is set from the verified admin identity, never the body.
type CreateJobRequest struct {
	Title        string         `json:"title" validate:"required,max=200"`
	Company      string         `json:"company" validate:"required,max=200"`
	Location     string         `json:"location" validate:"required,max=200"`
	Type         models.JobType `json:"type" validate:"required,oneof=Internship Full-time"`
	Description  string         `json:"description" validate:"required"`
	Requirements string         `json:"requirements" validate:"required"`
	CreatedBy    uuid.UUID      `json:"-"`
}

// UpdateJobRequest defines a partial update. Nil fields are left untouched.
type UpdateJobRequest struct {
	ID           uuid.UUID       `json:"-" validate:"required"`
	Title        *string         `json:"title" validate:"omitempty,max=200"`
	Company      *string         `json:"company" validate:"omitempty,max=200"`
	Location     *string         `json:"location" validate:"omitempty,max=200"`
	Type         *models.JobType `json:"type" validate:"omitempty,oneof=Internship Full-time"`
	Description  *string         `json:"description"`
	Requirements *string         `json:"requirements"`
	IsActive     *bool           `json:"is_active"`
}

// GetJobByIDRequest defines the structure for fetching a single job.
type GetJobByIDRequest struct {
	ID uuid.UUID `json:"-" validate:"required"`
}

// DeleteJobRequest defines the structure for deleting a job.
type DeleteJobRequest struct {
	ID uuid.UUID `json:"-" validate:"required"`
}

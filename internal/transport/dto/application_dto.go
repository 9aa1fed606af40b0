package dto

import (
	"hirely-api/internal/models"

	"github.com/google/uuid"
)

// ApplyRequest defines the structure for applying to a job.
// UserID is set from the verified identity, JobID from the path.
type ApplyRequest struct {
	UserID     uuid.UUID `json:"-" validate:"required"`
	JobID      uuid.UUID `json:"-" validate:"required"`
	ResumeLink string    `json:"resume_link" validate:"required,url"`
	CoverNote  *string   `json:"cover_note" validate:"omitempty,max=2000"`
}

// ListApplicationsByUserRequest lists the caller's own applications.
type ListApplicationsByUserRequest struct {
	UserID uuid.UUID `json:"-" validate:"required"`
}

// UpdateApplicationStatusRequest sets an application's status. Any of the
// four statuses may be set regardless of the current one.
type UpdateApplicationStatusRequest struct {
	ID     uuid.UUID                `json:"-" validate:"required"`
	Status models.ApplicationStatus `json:"status" validate:"required,application_status"`
}

// GetApplicationByIDRequest fetches a single application.
type GetApplicationByIDRequest struct {
	ID uuid.UUID `json:"-" validate:"required"`
}

// ApplicationWithJob is a user-facing application with its job expanded.
type ApplicationWithJob struct {
	models.Application
	Job models.Job `json:"job"`
}

// ApplicationDetail is the admin view: application with job and applicant.
type ApplicationDetail struct {
	models.Application
	Job  models.Job   `json:"job"`
	User UserResponse `json:"user"`
}

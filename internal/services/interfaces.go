package services

import (
	"context"

	"hirely-api/internal/models"
	"hirely-api/internal/transport/dto"
)

// TokenPair is an access token plus the opaque refresh token that renews it.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// UserService defines the interface for account and credential logic.
type UserService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, *TokenPair, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*models.User, *TokenPair, error)
	Refresh(ctx context.Context, req *dto.RefreshRequest) (*TokenPair, error)
	Logout(ctx context.Context, req *dto.LogoutRequest) error
	UpdateProfile(ctx context.Context, req *dto.UpdateProfileRequest) (*models.User, error)
	DeleteProfile(ctx context.Context, req *dto.DeleteProfileRequest) error
}

// JobService defines the interface for job catalog logic.
type JobService interface {
	CreateJob(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error)
	GetJobByID(ctx context.Context, req *dto.GetJobByIDRequest) (*models.Job, error)
	ListActiveJobs(ctx context.Context) ([]models.Job, error)
	UpdateJob(ctx context.Context, req *dto.UpdateJobRequest) (*models.Job, error)
	DeleteJob(ctx context.Context, req *dto.DeleteJobRequest) error
}

// ApplicationService defines the interface for the application ledger.
type ApplicationService interface {
	Apply(ctx context.Context, req *dto.ApplyRequest) (*models.Application, error)
	ListForUser(ctx context.Context, req *dto.ListApplicationsByUserRequest) ([]dto.ApplicationWithJob, error)
	ListAll(ctx context.Context) ([]dto.ApplicationDetail, error)
	UpdateStatus(ctx context.Context, req *dto.UpdateApplicationStatusRequest) (*models.Application, error)
}

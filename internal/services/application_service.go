package services

import (
	"context"
	"fmt"

	"hirely-api/internal/models"
	"hirely-api/internal/storage"
	"hirely-api/internal/transport/dto"
)

type applicationService struct {
	repo storage.ApplicationRepository
}

// NewApplicationService creates a new instance of ApplicationService.
func NewApplicationService(repo storage.ApplicationRepository) ApplicationService {
	return &applicationService{repo: repo}
}

// Apply creates a new application with status Applied. The duplicate check is
// the unique index at write time, not a prior read, so concurrent duplicate
// submissions resolve to exactly one success.
func (s *applicationService) Apply(ctx context.Context, req *dto.ApplyRequest) (*models.Application, error) {
	app, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("applying to job %s", req.JobID))
	}
	return app, nil
}

// ListForUser returns the caller's applications with their jobs expanded.
func (s *applicationService) ListForUser(ctx context.Context, req *dto.ListApplicationsByUserRequest) ([]dto.ApplicationWithJob, error) {
	apps, err := s.repo.ListByUser(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("listing applications for user %s", req.UserID))
	}
	return apps, nil
}

// ListAll returns every application with job and applicant expanded.
func (s *applicationService) ListAll(ctx context.Context) ([]dto.ApplicationDetail, error) {
	apps, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, mapRepoError(err, "listing all applications")
	}
	return apps, nil
}

// UpdateStatus sets the status to one of the four known values. There is no
// transition graph: Selected can go back to Applied, and setting the current
// status again is a no-op that succeeds.
func (s *applicationService) UpdateStatus(ctx context.Context, req *dto.UpdateApplicationStatusRequest) (*models.Application, error) {
	if !models.ValidApplicationStatus(req.Status) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, req.Status)
	}

	app, err := s.repo.UpdateStatus(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("updating status of application %s", req.ID))
	}
	return app, nil
}

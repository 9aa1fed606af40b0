package services

import (
	"context"
	"fmt"

	"hirely-api/internal/models"
	"hirely-api/internal/storage"
	"hirely-api/internal/transport/dto"
)

type jobService struct {
	repo storage.JobRepository
}

// NewJobService creates a new instance of JobService.
func NewJobService(repo storage.JobRepository) JobService {
	return &jobService{repo: repo}
}

// CreateJob persists a new posting owned by the calling admin. Role checks
// happen in the route middleware; the service trusts CreatedBy.
func (s *jobService) CreateJob(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error) {
	job, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, "creating job")
	}
	return job, nil
}

// GetJobByID returns the job regardless of active state.
func (s *jobService) GetJobByID(ctx context.Context, req *dto.GetJobByIDRequest) (*models.Job, error) {
	job, err := s.repo.GetByID(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching job %s", req.ID))
	}
	return job, nil
}

// ListActiveJobs returns the public listing: active jobs, newest first.
func (s *jobService) ListActiveJobs(ctx context.Context) ([]models.Job, error) {
	jobs, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, mapRepoError(err, "listing active jobs")
	}
	return jobs, nil
}

// UpdateJob merges the provided fields, including is_active toggles.
func (s *jobService) UpdateJob(ctx context.Context, req *dto.UpdateJobRequest) (*models.Job, error) {
	job, err := s.repo.Update(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("updating job %s", req.ID))
	}
	return job, nil
}

// DeleteJob removes the posting and, by cascade, its applications.
func (s *jobService) DeleteJob(ctx context.Context, req *dto.DeleteJobRequest) error {
	if err := s.repo.Delete(ctx, req); err != nil {
		return mapRepoError(err, fmt.Sprintf("deleting job %s", req.ID))
	}
	return nil
}

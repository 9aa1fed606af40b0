package postgres

import (
	"context"
	"errors"
	"fmt"
	"log"

	"hirely-api/internal/models"
	"hirely-api/internal/storage"
	"hirely-api/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ApplicationRepo implements the storage.ApplicationRepository interface
// using PostgreSQL.
type ApplicationRepo struct {
	db Querier
}

// NewApplicationRepo creates a new ApplicationRepo.
func NewApplicationRepo(db *pgxpool.Pool) *ApplicationRepo {
	return &ApplicationRepo{db: db}
}

// Compile-time check to ensure ApplicationRepo implements ApplicationRepository
var _ storage.ApplicationRepository = (*ApplicationRepo)(nil)

const applicationColumns = "id, user_id, job_id, resume_link, cover_note, status, created_at, updated_at"

func scanApplication(row pgx.Row) (*models.Application, error) {
	var a models.Application
	err := row.Scan(&a.ID, &a.UserID, &a.JobID, &a.ResumeLink, &a.CoverNote, &a.Status, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Create inserts a new application with status Applied. The one-per-user-per-job
// invariant is enforced by the unique index at write time, so concurrent
// duplicate submissions resolve deterministically without a prior read.
func (r *ApplicationRepo) Create(ctx context.Context, req *dto.ApplyRequest) (*models.Application, error) {
	query := `
		INSERT INTO applications (id, user_id, job_id, resume_link, cover_note, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING ` + applicationColumns

	row := r.db.QueryRow(ctx, query,
		uuid.New(),
		req.UserID,
		req.JobID,
		req.ResumeLink,
		req.CoverNote,
		models.StatusApplied,
	)

	app, err := scanApplication(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgUniqueViolation:
				log.Printf("Duplicate application for user %s on job %s\n", req.UserID, req.JobID)
				return nil, storage.ErrDuplicateApplication
			case pgForeignKeyViolation:
				log.Printf("Error creating application: referenced user or job missing (user: %s, job: %s): %v\n", req.UserID, req.JobID, err)
				return nil, storage.ErrNotFound
			}
		}
		log.Printf("Error creating application: %v\n", err)
		return nil, fmt.Errorf("failed to create application: %w", err)
	}

	log.Printf("Application created successfully with ID: %s", app.ID)
	return app, nil
}

// GetByID retrieves a single application.
func (r *ApplicationRepo) GetByID(ctx context.Context, req *dto.GetApplicationByIDRequest) (*models.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE id = $1`

	app, err := scanApplication(r.db.QueryRow(ctx, query, req.ID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("Application not found with ID: %s\n", req.ID)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning application by ID %s: %v\n", req.ID, err)
		return nil, fmt.Errorf("failed to get application by ID %s: %w", req.ID, err)
	}

	return app, nil
}

// ListByUser retrieves the user's applications, each with its job expanded,
// newest first.
func (r *ApplicationRepo) ListByUser(ctx context.Context, req *dto.ListApplicationsByUserRequest) ([]dto.ApplicationWithJob, error) {
	query := `
		SELECT a.id, a.user_id, a.job_id, a.resume_link, a.cover_note, a.status, a.created_at, a.updated_at,
		       j.id, j.title, j.company, j.location, j.type, j.description, j.requirements, j.is_active, j.created_by, j.created_at, j.updated_at
		FROM applications a
		JOIN jobs j ON j.id = a.job_id
		WHERE a.user_id = $1
		ORDER BY a.created_at DESC
	`

	rows, err := r.db.Query(ctx, query, req.UserID)
	if err != nil {
		log.Printf("Error querying applications for user %s: %v\n", req.UserID, err)
		return nil, fmt.Errorf("failed to query applications by user: %w", err)
	}
	defer rows.Close()

	apps := []dto.ApplicationWithJob{}
	for rows.Next() {
		var item dto.ApplicationWithJob
		a := &item.Application
		j := &item.Job
		err := rows.Scan(
			&a.ID, &a.UserID, &a.JobID, &a.ResumeLink, &a.CoverNote, &a.Status, &a.CreatedAt, &a.UpdatedAt,
			&j.ID, &j.Title, &j.Company, &j.Location, &j.Type, &j.Description, &j.Requirements, &j.IsActive, &j.CreatedBy, &j.CreatedAt, &j.UpdatedAt,
		)
		if err != nil {
			log.Printf("Error scanning application row for user %s: %v\n", req.UserID, err)
			return nil, fmt.Errorf("failed to scan applications by user: %w", err)
		}
		apps = append(apps, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read applications by user: %w", err)
	}

	return apps, nil
}

// ListAll retrieves every application with both job and applicant expanded,
// newest first. Admin view.
func (r *ApplicationRepo) ListAll(ctx context.Context) ([]dto.ApplicationDetail, error) {
	query := `
		SELECT a.id, a.user_id, a.job_id, a.resume_link, a.cover_note, a.status, a.created_at, a.updated_at,
		       j.id, j.title, j.company, j.location, j.type, j.description, j.requirements, j.is_active, j.created_by, j.created_at, j.updated_at,
		       u.id, u.name, u.email, u.role, u.created_at, u.updated_at
		FROM applications a
		JOIN jobs j ON j.id = a.job_id
		JOIN users u ON u.id = a.user_id
		ORDER BY a.created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		log.Printf("Error querying all applications: %v\n", err)
		return nil, fmt.Errorf("failed to query all applications: %w", err)
	}
	defer rows.Close()

	apps := []dto.ApplicationDetail{}
	for rows.Next() {
		var item dto.ApplicationDetail
		a := &item.Application
		j := &item.Job
		u := &item.User
		err := rows.Scan(
			&a.ID, &a.UserID, &a.JobID, &a.ResumeLink, &a.CoverNote, &a.Status, &a.CreatedAt, &a.UpdatedAt,
			&j.ID, &j.Title, &j.Company, &j.Location, &j.Type, &j.Description, &j.Requirements, &j.IsActive, &j.CreatedBy, &j.CreatedAt, &j.UpdatedAt,
			&u.ID, &u.Name, &u.Email, &u.Role, &u.CreatedAt, &u.UpdatedAt,
		)
		if err != nil {
			log.Printf("Error scanning application detail row: %v\n", err)
			return nil, fmt.Errorf("failed to scan all applications: %w", err)
		}
		apps = append(apps, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read all applications: %w", err)
	}

	return apps, nil
}

// UpdateStatus sets the status field. No transition graph is enforced; any
// status may move to any other, including back to Applied.
func (r *ApplicationRepo) UpdateStatus(ctx context.Context, req *dto.UpdateApplicationStatusRequest) (*models.Application, error) {
	query := `
		UPDATE applications SET status = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING ` + applicationColumns

	app, err := scanApplication(r.db.QueryRow(ctx, query, req.Status, req.ID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("Application not found for status update with ID: %s\n", req.ID)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error updating application status for ID %s: %v\n", req.ID, err)
		return nil, fmt.Errorf("failed to update application status: %w", err)
	}

	return app, nil
}

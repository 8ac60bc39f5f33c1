package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// -----------------------------------------------------------------------------
// Application Store Adapter
// -----------------------------------------------------------------------------

const applicationColumns = `id, job_id, applicant_id, employer_id, cover_letter,
	        resume_url, status, applied_at, updated_at`

func scanApplication(row pgx.Row) (*Application, error) {
	var a Application
	err := row.Scan(&a.ID, &a.JobID, &a.ApplicantID, &a.EmployerID, &a.CoverLetter,
		&a.ResumeURL, &a.Status, &a.AppliedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (db *DB) queryApplications(ctx context.Context, query string, args ...any) ([]Application, error) {
	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	apps := []Application{}
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		apps = append(apps, *a)
	}
	return apps, rows.Err()
}

// optionalText trims s and returns nil when nothing remains, so that
// optional fields are persisted as NULL instead of empty strings.
func optionalText(s string) *string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// ApplicationCreateInput holds the fields for a new application.
// CoverLetter and ResumeURL are optional; blank values are dropped.
type ApplicationCreateInput struct {
	JobID       uuid.UUID
	ApplicantID uuid.UUID
	EmployerID  uuid.UUID
	CoverLetter string
	ResumeURL   string
	Status      string
}

// CreateApplication persists a new application, stamping both timestamps,
// and returns the new identifier. Optional fields that are empty after
// trimming are stored as NULL.
func (db *DB) CreateApplication(ctx context.Context, input *ApplicationCreateInput) (uuid.UUID, error) {
	status := input.Status
	if status == "" {
		status = ApplicationPending
	}

	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO applications (job_id, applicant_id, employer_id, cover_letter,
		                           resume_url, status, applied_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		 RETURNING id`,
		input.JobID, input.ApplicantID, input.EmployerID,
		optionalText(input.CoverLetter), optionalText(input.ResumeURL), status,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create application: %w", err)
	}
	return id, nil
}

// GetApplicationByID retrieves one application, or (nil, nil) when absent.
func (db *DB) GetApplicationByID(ctx context.Context, id uuid.UUID) (*Application, error) {
	a, err := scanApplication(db.pool.QueryRow(ctx,
		`SELECT `+applicationColumns+` FROM applications WHERE id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get application: %w", err)
	}
	return a, nil
}

// GetJobApplications returns every application for a job, newest first.
func (db *DB) GetJobApplications(ctx context.Context, jobID uuid.UUID) ([]Application, error) {
	apps, err := db.queryApplications(ctx,
		`SELECT `+applicationColumns+` FROM applications
		 WHERE job_id = $1 ORDER BY applied_at DESC`, jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to get job applications: %w", err)
	}
	return apps, nil
}

// GetUserApplications returns every application by an applicant, newest first.
// This is the authoritative source for a profile's "applied" list.
func (db *DB) GetUserApplications(ctx context.Context, userID uuid.UUID) ([]Application, error) {
	apps, err := db.queryApplications(ctx,
		`SELECT `+applicationColumns+` FROM applications
		 WHERE applicant_id = $1 ORDER BY applied_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user applications: %w", err)
	}
	return apps, nil
}

// ListApplications returns every application, for admin snapshots.
func (db *DB) ListApplications(ctx context.Context) ([]Application, error) {
	apps, err := db.queryApplications(ctx,
		`SELECT `+applicationColumns+` FROM applications`)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	return apps, nil
}

// HasUserApplied reports whether the user already has an application for
// the job. This is the pre-insert duplicate check; it is not atomic with
// the insert, so concurrent submissions can both pass it.
func (db *DB) HasUserApplied(ctx context.Context, userID, jobID uuid.UUID) (bool, error) {
	var exists bool
	err := db.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM applications WHERE applicant_id = $1 AND job_id = $2)`,
		userID, jobID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check application existence: %w", err)
	}
	return exists, nil
}

// UpdateApplicationStatus writes a new status and refreshes updated_at.
func (db *DB) UpdateApplicationStatus(ctx context.Context, id uuid.UUID, status string) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE applications SET status = $2, updated_at = NOW() WHERE id = $1`,
		id, status)
	if err != nil {
		return fmt.Errorf("failed to update application status: %w", err)
	}
	return nil
}

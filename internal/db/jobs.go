package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// -----------------------------------------------------------------------------
// Job Store Adapter
// -----------------------------------------------------------------------------

const jobColumns = `id, title, company, location, salary_amount, salary_period,
	        description, requirements, employment_type, category, posted_by,
	        posted_at, updated_at, is_active, status, view_count`

func scanJob(row pgx.Row) (*Job, error) {
	var j Job
	err := row.Scan(&j.ID, &j.Title, &j.Company, &j.Location, &j.SalaryAmount,
		&j.SalaryPeriod, &j.Description, &j.Requirements, &j.EmploymentType,
		&j.Category, &j.PostedBy, &j.PostedAt, &j.UpdatedAt, &j.IsActive,
		&j.Status, &j.ViewCount)
	if err != nil {
		return nil, err
	}
	return &j, nil
}

func (db *DB) queryJobs(ctx context.Context, query string, args ...any) ([]Job, error) {
	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	jobs := []Job{}
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, *j)
	}
	return jobs, rows.Err()
}

// JobCreateInput holds the fields for a new job posting.
type JobCreateInput struct {
	Title          string
	Company        string
	Location       string
	SalaryAmount   int64
	SalaryPeriod   string
	Description    string
	Requirements   StringArray
	EmploymentType string
	Category       string
	PostedBy       uuid.UUID
	IsActive       bool
	Status         string
}

// CreateJob persists a new job posting, stamping both timestamps, and
// returns the new identifier. Field validation is the caller's concern.
func (db *DB) CreateJob(ctx context.Context, input *JobCreateInput) (uuid.UUID, error) {
	status := input.Status
	if status == "" {
		status = JobStatusActive
	}

	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO jobs (title, company, location, salary_amount, salary_period,
		                   description, requirements, employment_type, category,
		                   posted_by, posted_at, updated_at, is_active, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW(), $11, $12)
		 RETURNING id`,
		input.Title, input.Company, input.Location, input.SalaryAmount,
		input.SalaryPeriod, input.Description, input.Requirements,
		input.EmploymentType, input.Category, input.PostedBy, input.IsActive, status,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create job: %w", err)
	}
	return id, nil
}

// GetAllJobs returns active jobs ordered by posting time, newest first.
// No matching rows yields an empty slice, not an error.
func (db *DB) GetAllJobs(ctx context.Context) ([]Job, error) {
	jobs, err := db.queryJobs(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE is_active = TRUE ORDER BY posted_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to get jobs: %w", err)
	}
	return jobs, nil
}

// ListJobs returns every job regardless of visibility, for admin snapshots.
func (db *DB) ListJobs(ctx context.Context) ([]Job, error) {
	jobs, err := db.queryJobs(ctx,
		`SELECT `+jobColumns+` FROM jobs ORDER BY posted_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	return jobs, nil
}

// GetJobByID retrieves one job, or (nil, nil) when absent.
func (db *DB) GetJobByID(ctx context.Context, id uuid.UUID) (*Job, error) {
	j, err := scanJob(db.pool.QueryRow(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return j, nil
}

// JobUpdate holds a partial update; nil fields are left unchanged.
type JobUpdate struct {
	Title          *string
	Company        *string
	Location       *string
	SalaryAmount   *int64
	SalaryPeriod   *string
	Description    *string
	Requirements   *StringArray
	EmploymentType *string
	Category       *string
	IsActive       *bool
	Status         *string
}

// UpdateJob merges the given fields into the job and refreshes updated_at.
func (db *DB) UpdateJob(ctx context.Context, id uuid.UUID, updates *JobUpdate) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE jobs SET
		     title           = COALESCE($2, title),
		     company         = COALESCE($3, company),
		     location        = COALESCE($4, location),
		     salary_amount   = COALESCE($5, salary_amount),
		     salary_period   = COALESCE($6, salary_period),
		     description     = COALESCE($7, description),
		     requirements    = COALESCE($8, requirements),
		     employment_type = COALESCE($9, employment_type),
		     category        = COALESCE($10, category),
		     is_active       = COALESCE($11, is_active),
		     status          = COALESCE($12, status),
		     updated_at      = NOW()
		 WHERE id = $1`,
		id, updates.Title, updates.Company, updates.Location, updates.SalaryAmount,
		updates.SalaryPeriod, updates.Description, updates.Requirements,
		updates.EmploymentType, updates.Category, updates.IsActive, updates.Status)
	if err != nil {
		return fmt.Errorf("failed to update job: %w", err)
	}
	return nil
}

// DeleteJob hard-deletes a job. Applications and saved-job references are
// not cascaded; orphaned references are tolerated.
func (db *DB) DeleteJob(ctx context.Context, id uuid.UUID) error {
	if _, err := db.pool.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}
	return nil
}

// ListJobsByOwner returns the jobs posted by one user, newest first.
// This is the authoritative source for a profile's "posted" list.
func (db *DB) ListJobsByOwner(ctx context.Context, userID uuid.UUID) ([]Job, error) {
	jobs, err := db.queryJobs(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE posted_by = $1 ORDER BY posted_at DESC`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs by owner: %w", err)
	}
	return jobs, nil
}

// GetJobsByIDs returns the jobs whose IDs appear in ids, preserving the
// default recency order. Missing IDs are silently skipped.
func (db *DB) GetJobsByIDs(ctx context.Context, ids []uuid.UUID) ([]Job, error) {
	if len(ids) == 0 {
		return []Job{}, nil
	}
	jobs, err := db.queryJobs(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE id = ANY($1) ORDER BY posted_at DESC`,
		ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get jobs by ids: %w", err)
	}
	return jobs, nil
}

// ListActiveJobs returns active listings ordered by recency, optionally
// restricted to one category. This is the equality-filter phase of
// search; term matching happens in memory on the caller's side.
func (db *DB) ListActiveJobs(ctx context.Context, category string) ([]Job, error) {
	var (
		jobs []Job
		err  error
	)
	if category != "" {
		jobs, err = db.queryJobs(ctx,
			`SELECT `+jobColumns+` FROM jobs
			 WHERE is_active = TRUE AND category = $1
			 ORDER BY posted_at DESC`, category)
	} else {
		jobs, err = db.queryJobs(ctx,
			`SELECT `+jobColumns+` FROM jobs
			 WHERE is_active = TRUE
			 ORDER BY posted_at DESC`)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list active jobs: %w", err)
	}
	return jobs, nil
}

// IncrementViewCount bumps a job's view counter. Best effort; a missing
// job is not an error.
func (db *DB) IncrementViewCount(ctx context.Context, id uuid.UUID) error {
	if _, err := db.pool.Exec(ctx,
		`UPDATE jobs SET view_count = view_count + 1 WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to increment view count: %w", err)
	}
	return nil
}

package server

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/jonathan/jobboard/internal/db"
	"github.com/jonathan/jobboard/internal/search"
	"github.com/jonathan/jobboard/internal/types"
)

// JobStore is the subset of the database layer the job service needs.
type JobStore interface {
	CreateJob(ctx context.Context, input *db.JobCreateInput) (uuid.UUID, error)
	GetAllJobs(ctx context.Context) ([]db.Job, error)
	GetJobByID(ctx context.Context, id uuid.UUID) (*db.Job, error)
	UpdateJob(ctx context.Context, id uuid.UUID, updates *db.JobUpdate) error
	DeleteJob(ctx context.Context, id uuid.UUID) error
	ListJobsByOwner(ctx context.Context, userID uuid.UUID) ([]db.Job, error)
	ListActiveJobs(ctx context.Context, category string) ([]db.Job, error)
	IncrementViewCount(ctx context.Context, id uuid.UUID) error
}

// JobService provides business logic for job listings.
type JobService struct {
	db JobStore
}

// NewJobService creates a new JobService backed by db.
func NewJobService(db JobStore) *JobService {
	return &JobService{db: db}
}

// Create posts a new job listing owned by ownerID. New listings are
// active immediately.
func (s *JobService) Create(ctx context.Context, ownerID uuid.UUID, req *types.CreateJobRequest) (*db.Job, error) {
	id, err := s.db.CreateJob(ctx, &db.JobCreateInput{
		Title:          req.Title,
		Company:        req.Company,
		Location:       req.Location,
		SalaryAmount:   req.SalaryAmount,
		SalaryPeriod:   req.SalaryPeriod,
		Description:    req.Description,
		Requirements:   db.StringArray(req.Requirements),
		EmploymentType: req.EmploymentType,
		Category:       req.Category,
		PostedBy:       ownerID,
		IsActive:       true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}

	job, err := s.db.GetJobByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve created job: %w", err)
	}
	if job == nil {
		return nil, fmt.Errorf("created job not found: %s", id)
	}
	return job, nil
}

// List returns active listings, or the search result when a term or
// category is given. Search runs in two phases: the store filters on
// equality (active flag, category), then the term is matched in memory
// against title, company and description.
func (s *JobService) List(ctx context.Context, term, category string) ([]db.Job, error) {
	if term == "" && category == "" {
		return s.db.GetAllJobs(ctx)
	}

	jobs, err := s.db.ListActiveJobs(ctx, category)
	if err != nil {
		return nil, err
	}
	if term != "" {
		jobs = search.FilterTerm(jobs, term)
	}
	return jobs, nil
}

// Get returns one listing and bumps its view counter. The counter bump
// is best effort and never fails the read.
func (s *JobService) Get(ctx context.Context, id uuid.UUID) (*db.Job, error) {
	job, err := s.db.GetJobByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	if job == nil {
		return nil, &ErrJobNotFound{JobID: id}
	}

	if err := s.db.IncrementViewCount(ctx, id); err != nil {
		log.Printf("failed to increment view count for job %s: %v", id, err)
	}
	return job, nil
}

// Update merges a partial update into a listing. Only the listing's
// owner may update it.
func (s *JobService) Update(ctx context.Context, callerID, jobID uuid.UUID, req *types.UpdateJobRequest) (*db.Job, error) {
	job, err := s.db.GetJobByID(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	if job == nil {
		return nil, &ErrJobNotFound{JobID: jobID}
	}
	if job.PostedBy != callerID {
		return nil, &ErrForbidden{Reason: "not the job owner"}
	}

	updates := &db.JobUpdate{
		Title:          req.Title,
		Company:        req.Company,
		Location:       req.Location,
		SalaryAmount:   req.SalaryAmount,
		SalaryPeriod:   req.SalaryPeriod,
		Description:    req.Description,
		EmploymentType: req.EmploymentType,
		Category:       req.Category,
		IsActive:       req.IsActive,
		Status:         req.Status,
	}
	if req.Requirements != nil {
		reqs := db.StringArray(*req.Requirements)
		updates.Requirements = &reqs
	}

	if err := s.db.UpdateJob(ctx, jobID, updates); err != nil {
		return nil, fmt.Errorf("failed to update job: %w", err)
	}

	job, err = s.db.GetJobByID(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve updated job: %w", err)
	}
	return job, nil
}

// Delete removes a listing. Only the listing's owner may delete it.
// Existing applications and saved references are left in place.
func (s *JobService) Delete(ctx context.Context, callerID, jobID uuid.UUID) error {
	job, err := s.db.GetJobByID(ctx, jobID)
	if err != nil {
		return fmt.Errorf("failed to get job: %w", err)
	}
	if job == nil {
		return &ErrJobNotFound{JobID: jobID}
	}
	if job.PostedBy != callerID {
		return &ErrForbidden{Reason: "not the job owner"}
	}

	if err := s.db.DeleteJob(ctx, jobID); err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}
	return nil
}

// ListOwned returns the caller's posted listings, newest first.
func (s *JobService) ListOwned(ctx context.Context, ownerID uuid.UUID) ([]db.Job, error) {
	return s.db.ListJobsByOwner(ctx, ownerID)
}

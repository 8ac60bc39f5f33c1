package server

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/jonathan/jobboard/internal/db"
	"github.com/jonathan/jobboard/internal/types"
)

// ApplicationStore is the subset of the database layer the application
// service needs.
type ApplicationStore interface {
	CreateApplication(ctx context.Context, input *db.ApplicationCreateInput) (uuid.UUID, error)
	GetApplicationByID(ctx context.Context, id uuid.UUID) (*db.Application, error)
	GetJobApplications(ctx context.Context, jobID uuid.UUID) ([]db.Application, error)
	GetUserApplications(ctx context.Context, userID uuid.UUID) ([]db.Application, error)
	HasUserApplied(ctx context.Context, userID, jobID uuid.UUID) (bool, error)
	UpdateApplicationStatus(ctx context.Context, id uuid.UUID, status string) error
	GetJobByID(ctx context.Context, id uuid.UUID) (*db.Job, error)
	GetUser(ctx context.Context, id uuid.UUID) (*db.User, error)
}

// Notifier sends best-effort notifications for application events.
type Notifier interface {
	ApplicationStatusChanged(ctx context.Context, app *db.Application, job *db.Job, status string)
	NewApplication(ctx context.Context, app *db.Application, job *db.Job, applicantName string)
}

// ApplicationService provides business logic for job applications.
type ApplicationService struct {
	db       ApplicationStore
	notifier Notifier
}

// NewApplicationService creates a new ApplicationService.
func NewApplicationService(db ApplicationStore, notifier Notifier) *ApplicationService {
	return &ApplicationService{db: db, notifier: notifier}
}

// Apply submits an application for a job. One application per user per
// job: a pre-insert existence check rejects repeats. The check and the
// insert are separate statements, so two truly simultaneous submissions
// can both land; that window is tolerated.
func (s *ApplicationService) Apply(ctx context.Context, applicantID, jobID uuid.UUID, req *types.ApplyRequest) (*db.Application, error) {
	job, err := s.db.GetJobByID(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	if job == nil {
		return nil, &ErrJobNotFound{JobID: jobID}
	}
	if job.PostedBy == applicantID {
		return nil, &ErrForbidden{Reason: "cannot apply to your own listing"}
	}

	applied, err := s.db.HasUserApplied(ctx, applicantID, jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing application: %w", err)
	}
	if applied {
		return nil, &ErrAlreadyApplied{JobID: jobID}
	}

	id, err := s.db.CreateApplication(ctx, &db.ApplicationCreateInput{
		JobID:       jobID,
		ApplicantID: applicantID,
		EmployerID:  job.PostedBy,
		CoverLetter: req.CoverLetter,
		ResumeURL:   req.ResumeURL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create application: %w", err)
	}

	app, err := s.db.GetApplicationByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve created application: %w", err)
	}
	if app == nil {
		return nil, fmt.Errorf("created application not found: %s", id)
	}

	s.notifier.NewApplication(ctx, app, job, s.applicantName(ctx, applicantID))
	return app, nil
}

func (s *ApplicationService) applicantName(ctx context.Context, applicantID uuid.UUID) string {
	user, err := s.db.GetUser(ctx, applicantID)
	if err != nil || user == nil {
		log.Printf("failed to resolve applicant name for %s: %v", applicantID, err)
		return ""
	}
	return user.Name
}

// ListForJob returns a job's applications, newest first. Only the job's
// owner may read them.
func (s *ApplicationService) ListForJob(ctx context.Context, callerID, jobID uuid.UUID) ([]db.Application, error) {
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

	return s.db.GetJobApplications(ctx, jobID)
}

// ListForUser returns the caller's own applications, newest first.
func (s *ApplicationService) ListForUser(ctx context.Context, userID uuid.UUID) ([]db.Application, error) {
	return s.db.GetUserApplications(ctx, userID)
}

// UpdateStatus moves an application to a new status and notifies the
// applicant. Only the employer the application was submitted to may
// change it. The status write and the notification insert are separate
// operations: a failed notification never rolls back the status change,
// it is logged and dropped.
func (s *ApplicationService) UpdateStatus(ctx context.Context, callerID, applicationID uuid.UUID, status string) (*db.Application, error) {
	if !db.ValidApplicationStatus(status) {
		return nil, &ErrValidation{Field: "status", Message: "unknown application status"}
	}

	app, err := s.db.GetApplicationByID(ctx, applicationID)
	if err != nil {
		return nil, fmt.Errorf("failed to get application: %w", err)
	}
	if app == nil {
		return nil, &ErrApplicationNotFound{ApplicationID: applicationID}
	}
	if app.EmployerID != callerID {
		return nil, &ErrForbidden{Reason: "not the receiving employer"}
	}

	if err := s.db.UpdateApplicationStatus(ctx, applicationID, status); err != nil {
		return nil, fmt.Errorf("failed to update application status: %w", err)
	}
	app.Status = status

	job, err := s.db.GetJobByID(ctx, app.JobID)
	if err != nil || job == nil {
		// The status change stands even if the job lookup for the
		// notification text fails.
		log.Printf("failed to load job %s for status notification: %v", app.JobID, err)
		return app, nil
	}

	s.notifier.ApplicationStatusChanged(ctx, app, job, status)
	return app, nil
}

// Package notify turns application events into persisted notifications.
// Notification delivery is best-effort: a failed insert is logged and
// swallowed so it never rolls back the event that triggered it.
package notify

import (
	"context"
	"log"

	"github.com/google/uuid"

	"github.com/jonathan/jobboard/internal/db"
)

// Store is the subset of the database layer the dispatcher writes to.
type Store interface {
	CreateNotification(ctx context.Context, input *db.NotificationCreateInput) (uuid.UUID, error)
}

// Dispatcher sends notifications for application events.
type Dispatcher struct {
	store Store
}

// NewDispatcher creates a Dispatcher backed by store.
func NewDispatcher(store Store) *Dispatcher {
	return &Dispatcher{store: store}
}

// StatusMessage maps an application status to the title and message of
// the notification sent to the applicant. ok is false for statuses that
// produce no notification (pending, or anything unrecognized).
func StatusMessage(status, jobTitle string) (title, message string, ok bool) {
	switch status {
	case db.ApplicationAccepted:
		return "Өргөдөл хүлээн авагдлаа!",
			"Таны \"" + jobTitle + "\" ажлын байранд илгээсэн өргөдөл хүлээн авагдлаа.",
			true
	case db.ApplicationRejected:
		return "Өргөдлийн хариу",
			"Таны \"" + jobTitle + "\" ажлын байранд илгээсэн өргөдөл татгалзагдлаа.",
			true
	case db.ApplicationReviewed:
		return "Өргөдөл шалгагдаж байна",
			"Таны \"" + jobTitle + "\" ажлын байранд илгээсэн өргөдөл шалгагдаж байна.",
			true
	}
	return "", "", false
}

// ApplicationStatusChanged notifies the applicant that their application
// moved to status. Statuses without a message are a no-op.
func (d *Dispatcher) ApplicationStatusChanged(ctx context.Context, app *db.Application, job *db.Job, status string) {
	title, message, ok := StatusMessage(status, job.Title)
	if !ok {
		return
	}

	_, err := d.store.CreateNotification(ctx, &db.NotificationCreateInput{
		UserID:        app.ApplicantID,
		Type:          db.NotificationApplicationStatus,
		Title:         title,
		Message:       message,
		JobID:         &app.JobID,
		ApplicationID: &app.ID,
		EmployerID:    &app.EmployerID,
	})
	if err != nil {
		log.Printf("failed to send status notification for application %s: %v", app.ID, err)
	}
}

// NewApplication notifies the job's owner that someone applied.
func (d *Dispatcher) NewApplication(ctx context.Context, app *db.Application, job *db.Job, applicantName string) {
	if applicantName == "" {
		applicantName = "Нэр байхгүй"
	}

	_, err := d.store.CreateNotification(ctx, &db.NotificationCreateInput{
		UserID:        job.PostedBy,
		Type:          db.NotificationNewApplication,
		Title:         "Шинэ өргөдөл ирлээ",
		Message:       applicantName + " таны \"" + job.Title + "\" ажлын байранд өргөдөл илгээлээ.",
		JobID:         &app.JobID,
		ApplicationID: &app.ID,
	})
	if err != nil {
		log.Printf("failed to send new-application notification for job %s: %v", job.ID, err)
	}
}

package db

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Role values for profiles.
const (
	RoleJobSeeker = "job_seeker"
	RoleEmployer  = "employer"
	RoleAdmin     = "admin"
)

// Employment types for jobs.
const (
	EmploymentFullTime  = "full-time"
	EmploymentPartTime  = "part-time"
	EmploymentContract  = "contract"
	EmploymentTemporary = "temporary"
)

// Salary pay periods.
const (
	SalaryHourly  = "hourly"
	SalaryMonthly = "monthly"
	SalaryYearly  = "yearly"
)

// Job lifecycle statuses.
const (
	JobStatusActive = "active"
	JobStatusClosed = "closed"
	JobStatusDraft  = "draft"
)

// Application statuses.
const (
	ApplicationPending  = "pending"
	ApplicationReviewed = "reviewed"
	ApplicationAccepted = "accepted"
	ApplicationRejected = "rejected"
)

// Notification types. Only application_status and new_application are
// produced today; the rest are reserved for future senders.
const (
	NotificationApplicationStatus = "application_status"
	NotificationNewJob            = "new_job"
	NotificationJobMatch          = "job_match"
	NotificationSystem            = "system"
	NotificationNewApplication    = "new_application"
)

// ValidApplicationStatus reports whether s is a known application status.
func ValidApplicationStatus(s string) bool {
	switch s {
	case ApplicationPending, ApplicationReviewed, ApplicationAccepted, ApplicationRejected:
		return true
	}
	return false
}

// ValidEmploymentType reports whether s is a known employment type.
func ValidEmploymentType(s string) bool {
	switch s {
	case EmploymentFullTime, EmploymentPartTime, EmploymentContract, EmploymentTemporary:
		return true
	}
	return false
}

// User represents an identity record: the login credential holder.
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	PasswordHash string    `json:"-" db:"password_hash"` // Never serialize to JSON
	PasswordSet  bool      `json:"password_set" db:"password_set"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Profile represents the durable user record distinct from the identity.
// It is created lazily on first login when absent.
type Profile struct {
	ID         uuid.UUID   `json:"id"`
	UserID     uuid.UUID   `json:"user_id"`
	Role       string      `json:"role"`
	Bio        string      `json:"bio,omitempty"`
	Skills     StringArray `json:"skills"`
	Experience string      `json:"experience,omitempty"`
	Education  string      `json:"education,omitempty"`
	Location   string      `json:"location,omitempty"`
	Company    string      `json:"company,omitempty"`  // employer only
	Position   string      `json:"position,omitempty"` // employer only
	Website    string      `json:"website,omitempty"`  // employer only
	SavedJobs  StringArray `json:"saved_jobs"`         // convenience list of job IDs
	IsVerified bool        `json:"is_verified"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

// Job represents a posted employment opportunity.
type Job struct {
	ID             uuid.UUID   `json:"id"`
	Title          string      `json:"title"`
	Company        string      `json:"company"`
	Location       string      `json:"location"`
	SalaryAmount   int64       `json:"salary_amount"`
	SalaryPeriod   string      `json:"salary_period"`
	Description    string      `json:"description"`
	Requirements   StringArray `json:"requirements"`
	EmploymentType string      `json:"employment_type"`
	Category       string      `json:"category"`
	PostedBy       uuid.UUID   `json:"posted_by"`
	PostedAt       time.Time   `json:"posted_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
	IsActive       bool        `json:"is_active"`
	Status         string      `json:"status"`
	ViewCount      int64       `json:"view_count"`
}

// Application represents a job seeker's submission for a job.
// EmployerID is a denormalized copy of the job's owner taken at creation time.
type Application struct {
	ID          uuid.UUID `json:"id"`
	JobID       uuid.UUID `json:"job_id"`
	ApplicantID uuid.UUID `json:"applicant_id"`
	EmployerID  uuid.UUID `json:"employer_id"`
	CoverLetter *string   `json:"cover_letter,omitempty"`
	ResumeURL   *string   `json:"resume_url,omitempty"`
	Status      string    `json:"status"`
	AppliedAt   time.Time `json:"applied_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Notification represents a user-facing message persisted for later reading.
type Notification struct {
	ID            uuid.UUID  `json:"id"`
	UserID        uuid.UUID  `json:"user_id"`
	Type          string     `json:"type"`
	Title         string     `json:"title"`
	Message       string     `json:"message"`
	IsRead        bool       `json:"is_read"`
	CreatedAt     time.Time  `json:"created_at"`
	JobID         *uuid.UUID `json:"job_id,omitempty"`
	ApplicationID *uuid.UUID `json:"application_id,omitempty"`
	EmployerID    *uuid.UUID `json:"employer_id,omitempty"`
}

// StringArray handles JSONB string arrays
type StringArray []string

// Scan implements the Scanner interface for StringArray
func (a *StringArray) Scan(src interface{}) error {
	if src == nil {
		*a = []string{}
		return nil
	}

	var source []byte
	switch v := src.(type) {
	case []byte:
		source = v
	case string:
		source = []byte(v)
	default:
		return errors.New("incompatible type for StringArray")
	}

	if len(source) == 0 {
		*a = []string{}
		return nil
	}
	return json.Unmarshal(source, a)
}

// Value implements the Valuer interface for StringArray
func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		return "[]", nil
	}
	b, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Contains reports whether the array holds s.
func (a StringArray) Contains(s string) bool {
	for _, v := range a {
		if v == s {
			return true
		}
	}
	return false
}

// Without returns a copy of the array with every occurrence of s removed.
func (a StringArray) Without(s string) StringArray {
	out := make(StringArray, 0, len(a))
	for _, v := range a {
		if v != s {
			out = append(out, v)
		}
	}
	return out
}

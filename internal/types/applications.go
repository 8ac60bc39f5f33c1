package types

import "github.com/go-playground/validator/v10"

// ApplyRequest represents a job seeker's application submission. Both
// fields are optional; blank values are stored as absent.
type ApplyRequest struct {
	CoverLetter string `json:"cover_letter,omitempty"`
	ResumeURL   string `json:"resume_url,omitempty" validate:"omitempty,url"`
}

// UpdateApplicationStatusRequest moves an application to a new status.
type UpdateApplicationStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending reviewed accepted rejected"`
}

// Validate validates the ApplyRequest using the validator.
func (r *ApplyRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the UpdateApplicationStatusRequest using the validator.
func (r *UpdateApplicationStatusRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

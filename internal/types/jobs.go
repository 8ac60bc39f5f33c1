package types

import "github.com/go-playground/validator/v10"

// CreateJobRequest represents the request to post a new job listing.
type CreateJobRequest struct {
	Title          string   `json:"title" validate:"required,min=1"`
	Company        string   `json:"company" validate:"required,min=1"`
	Location       string   `json:"location" validate:"required,min=1"`
	SalaryAmount   int64    `json:"salary_amount" validate:"required,gt=0"`
	SalaryPeriod   string   `json:"salary_period" validate:"required,oneof=hourly monthly yearly"`
	Description    string   `json:"description" validate:"required,min=1"`
	Requirements   []string `json:"requirements" validate:"required,min=1,dive,required"`
	EmploymentType string   `json:"employment_type" validate:"required,oneof=full-time part-time contract temporary"`
	Category       string   `json:"category,omitempty"`
}

// UpdateJobRequest represents a partial job update; nil fields are left
// unchanged.
type UpdateJobRequest struct {
	Title          *string   `json:"title,omitempty" validate:"omitempty,min=1"`
	Company        *string   `json:"company,omitempty" validate:"omitempty,min=1"`
	Location       *string   `json:"location,omitempty" validate:"omitempty,min=1"`
	SalaryAmount   *int64    `json:"salary_amount,omitempty" validate:"omitempty,gt=0"`
	SalaryPeriod   *string   `json:"salary_period,omitempty" validate:"omitempty,oneof=hourly monthly yearly"`
	Description    *string   `json:"description,omitempty" validate:"omitempty,min=1"`
	Requirements   *[]string `json:"requirements,omitempty"`
	EmploymentType *string   `json:"employment_type,omitempty" validate:"omitempty,oneof=full-time part-time contract temporary"`
	Category       *string   `json:"category,omitempty"`
	IsActive       *bool     `json:"is_active,omitempty"`
	Status         *string   `json:"status,omitempty" validate:"omitempty,oneof=active closed draft"`
}

// Validate validates the CreateJobRequest using the validator.
func (r *CreateJobRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the UpdateJobRequest using the validator.
func (r *UpdateJobRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

package types

import "github.com/go-playground/validator/v10"

// UpdateProfileRequest represents a partial profile update; nil fields
// are left unchanged.
type UpdateProfileRequest struct {
	Bio        *string   `json:"bio,omitempty"`
	Skills     *[]string `json:"skills,omitempty"`
	Experience *string   `json:"experience,omitempty"`
	Education  *string   `json:"education,omitempty"`
	Location   *string   `json:"location,omitempty"`
	Company    *string   `json:"company,omitempty"`
	Position   *string   `json:"position,omitempty"`
	Website    *string   `json:"website,omitempty" validate:"omitempty,url"`
}

// UpdateUserRequest updates the mutable identity fields.
type UpdateUserRequest struct {
	Name  *string `json:"name,omitempty" validate:"omitempty,min=1"`
	Phone *string `json:"phone,omitempty"`
}

// Validate validates the UpdateProfileRequest using the validator.
func (r *UpdateProfileRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the UpdateUserRequest using the validator.
func (r *UpdateUserRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

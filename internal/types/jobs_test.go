package types

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreateJobRequest() CreateJobRequest {
	return CreateJobRequest{
		Title:          "Тогооч",
		Company:        "Khan Foods",
		Location:       "Ulaanbaatar",
		SalaryAmount:   45000,
		SalaryPeriod:   "monthly",
		Description:    "Run the kitchen during evening service",
		Requirements:   []string{"3 years experience"},
		EmploymentType: "full-time",
		Category:       "chef",
	}
}

func TestCreateJobRequest_Validation(t *testing.T) {
	validate := validator.New()

	tests := []struct {
		name    string
		mutate  func(*CreateJobRequest)
		wantErr bool
		errMsg  string
	}{
		{name: "valid request", mutate: func(r *CreateJobRequest) {}, wantErr: false},
		{
			name:   "category optional",
			mutate: func(r *CreateJobRequest) { r.Category = "" },
		},
		{
			name:    "missing title",
			mutate:  func(r *CreateJobRequest) { r.Title = "" },
			wantErr: true,
			errMsg:  "required",
		},
		{
			name:    "missing company",
			mutate:  func(r *CreateJobRequest) { r.Company = "" },
			wantErr: true,
		},
		{
			name:    "missing location",
			mutate:  func(r *CreateJobRequest) { r.Location = "" },
			wantErr: true,
		},
		{
			name:    "zero salary",
			mutate:  func(r *CreateJobRequest) { r.SalaryAmount = 0 },
			wantErr: true,
		},
		{
			name:    "negative salary",
			mutate:  func(r *CreateJobRequest) { r.SalaryAmount = -100 },
			wantErr: true,
			errMsg:  "gt",
		},
		{
			name:    "unknown salary period",
			mutate:  func(r *CreateJobRequest) { r.SalaryPeriod = "weekly" },
			wantErr: true,
			errMsg:  "oneof",
		},
		{
			name:    "unknown employment type",
			mutate:  func(r *CreateJobRequest) { r.EmploymentType = "freelance" },
			wantErr: true,
			errMsg:  "oneof",
		},
		{
			name:    "empty requirements list",
			mutate:  func(r *CreateJobRequest) { r.Requirements = []string{} },
			wantErr: true,
		},
		{
			name:    "blank requirement entry",
			mutate:  func(r *CreateJobRequest) { r.Requirements = []string{"solid knife skills", ""} },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateJobRequest()
			tt.mutate(&req)

			err := validate.Struct(req)
			if tt.wantErr {
				require.Error(t, err)
				if tt.errMsg != "" {
					assert.Contains(t, err.Error(), tt.errMsg)
				}
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestUpdateJobRequest_Validation(t *testing.T) {
	strPtr := func(s string) *string { return &s }
	i64Ptr := func(v int64) *int64 { return &v }

	empty := UpdateJobRequest{}
	require.NoError(t, empty.Validate(), "all-nil update is valid")

	good := UpdateJobRequest{
		Title:        strPtr("Ахлах тогооч"),
		SalaryAmount: i64Ptr(60000),
		Status:       strPtr("closed"),
	}
	require.NoError(t, good.Validate())

	bad := UpdateJobRequest{SalaryAmount: i64Ptr(-5)}
	require.Error(t, bad.Validate())

	bad = UpdateJobRequest{Status: strPtr("archived")}
	require.Error(t, bad.Validate())

	bad = UpdateJobRequest{EmploymentType: strPtr("gig")}
	require.Error(t, bad.Validate())
}

package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUserRequest_Validation(t *testing.T) {
	validate := validator.New()

	tests := []struct {
		name    string
		request CreateUserRequest
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid job seeker",
			request: CreateUserRequest{
				Name:     "Bat Erdene",
				Email:    "bat@example.com",
				Password: "password123",
				Phone:    "9911-0100",
			},
			wantErr: false,
		},
		{
			name: "valid employer with company",
			request: CreateUserRequest{
				Name:     "Saraa",
				Email:    "saraa@example.com",
				Password: "password123",
				Role:     "employer",
				Company:  "Khan Foods",
			},
			wantErr: false,
		},
		{
			name: "role omitted defaults later",
			request: CreateUserRequest{
				Name:     "Bat Erdene",
				Email:    "bat@example.com",
				Password: "password123",
			},
			wantErr: false,
		},
		{
			name: "unknown role",
			request: CreateUserRequest{
				Name:     "Bat Erdene",
				Email:    "bat@example.com",
				Password: "password123",
				Role:     "superuser",
			},
			wantErr: true,
			errMsg:  "oneof",
		},
		{
			name: "missing name",
			request: CreateUserRequest{
				Email:    "bat@example.com",
				Password: "password123",
			},
			wantErr: true,
			errMsg:  "required",
		},
		{
			name: "invalid email format",
			request: CreateUserRequest{
				Name:     "Bat Erdene",
				Email:    "not-an-email",
				Password: "password123",
			},
			wantErr: true,
			errMsg:  "email",
		},
		{
			name: "password too short",
			request: CreateUserRequest{
				Name:     "Bat Erdene",
				Email:    "bat@example.com",
				Password: "short",
			},
			wantErr: true,
			errMsg:  "min",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate.Struct(tt.request)
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

func TestLoginRequest_Validation(t *testing.T) {
	validate := validator.New()

	tests := []struct {
		name    string
		request LoginRequest
		wantErr bool
	}{
		{
			name:    "valid request",
			request: LoginRequest{Email: "bat@example.com", Password: "password123"},
			wantErr: false,
		},
		{
			name:    "missing email",
			request: LoginRequest{Password: "password123"},
			wantErr: true,
		},
		{
			name:    "invalid email format",
			request: LoginRequest{Email: "not-an-email", Password: "password123"},
			wantErr: true,
		},
		{
			name:    "missing password",
			request: LoginRequest{Email: "bat@example.com"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate.Struct(tt.request)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestUpdatePasswordRequest_Validation(t *testing.T) {
	validate := validator.New()

	tests := []struct {
		name    string
		request UpdatePasswordRequest
		wantErr bool
	}{
		{
			name:    "valid request",
			request: UpdatePasswordRequest{CurrentPassword: "oldpassword123", NewPassword: "newpassword456"},
			wantErr: false,
		},
		{
			name:    "missing current password",
			request: UpdatePasswordRequest{NewPassword: "newpassword456"},
			wantErr: true,
		},
		{
			name:    "new password too short",
			request: UpdatePasswordRequest{CurrentPassword: "oldpassword123", NewPassword: "short"},
			wantErr: true,
		},
		{
			name:    "new password exactly 8 characters",
			request: UpdatePasswordRequest{CurrentPassword: "oldpassword123", NewPassword: "12345678"},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate.Struct(tt.request)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestConfirmResetRequest_Validation(t *testing.T) {
	req := ConfirmResetRequest{Token: "reset-token", NewPassword: "newpassword456"}
	require.NoError(t, req.Validate())

	req.NewPassword = "short"
	require.Error(t, req.Validate())

	req = ConfirmResetRequest{NewPassword: "newpassword456"}
	require.Error(t, req.Validate())
}

func TestLoginResponse_Serialization(t *testing.T) {
	userID := uuid.New()
	now := time.Now()
	user := &User{
		ID:          userID,
		Name:        "Bat Erdene",
		Email:       "bat@example.com",
		Role:        "job_seeker",
		PasswordSet: true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	token := "test-jwt-token-12345"

	response := LoginResponse{User: user, Token: token}

	jsonBytes, err := json.Marshal(response)
	require.NoError(t, err)

	jsonStr := string(jsonBytes)
	assert.Contains(t, jsonStr, "user")
	assert.Contains(t, jsonStr, "token")
	assert.Contains(t, jsonStr, userID.String())
	assert.Contains(t, jsonStr, "job_seeker")

	// Credential material never leaves the server.
	assert.NotContains(t, jsonStr, "password_hash")

	var unmarshaled LoginResponse
	require.NoError(t, json.Unmarshal(jsonBytes, &unmarshaled))
	assert.Equal(t, token, unmarshaled.Token)
	require.NotNil(t, unmarshaled.User)
	assert.Equal(t, userID, unmarshaled.User.ID)
}

// Package server provides the HTTP REST API for the job board.
package server

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/jonathan/jobboard/internal/config"
	"github.com/jonathan/jobboard/internal/db"
	"github.com/jonathan/jobboard/internal/types"
)

// UserStore is the subset of the database layer the user service needs.
type UserStore interface {
	CreateUser(ctx context.Context, name, email, phone string) (uuid.UUID, error)
	GetUser(ctx context.Context, id uuid.UUID) (*db.User, error)
	GetUserByEmail(ctx context.Context, email string) (*db.User, error)
	CheckEmailExists(ctx context.Context, email string) (bool, error)
	UpdateUser(ctx context.Context, u *db.User) error
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	CreateProfile(ctx context.Context, input *db.ProfileCreateInput) (uuid.UUID, error)
	GetProfileByUserID(ctx context.Context, userID uuid.UUID) (*db.Profile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, updates *db.ProfileUpdate) error
}

// UserService provides business logic for accounts and profiles.
type UserService struct {
	db             UserStore
	passwordConfig *config.PasswordConfig
}

// NewUserService creates a new UserService with the given dependencies
func NewUserService(db UserStore, passwordConfig *config.PasswordConfig) *UserService {
	return &UserService{
		db:             db,
		passwordConfig: passwordConfig,
	}
}

// convertDBUserToTypesUser converts db.User to types.User, excluding password hash
func convertDBUserToTypesUser(dbUser *db.User, role string) *types.User {
	if dbUser == nil {
		return nil
	}
	return &types.User{
		ID:          dbUser.ID,
		Name:        dbUser.Name,
		Email:       dbUser.Email,
		Phone:       dbUser.Phone,
		Role:        role,
		PasswordSet: dbUser.PasswordSet,
		CreatedAt:   dbUser.CreatedAt,
		UpdatedAt:   dbUser.UpdatedAt,
	}
}

// Register creates a new account: identity with password, plus a profile
// carrying the chosen role.
func (s *UserService) Register(ctx context.Context, req *types.CreateUserRequest) (*types.User, error) {
	exists, err := s.db.CheckEmailExists(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if exists {
		return nil, &ErrEmailAlreadyExists{Email: req.Email}
	}

	passwordHash, err := s.passwordConfig.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	// Two-step: create the identity, then set the password.
	userID, err := s.db.CreateUser(ctx, req.Name, req.Email, req.Phone)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if err := s.db.UpdatePassword(ctx, userID, passwordHash); err != nil {
		return nil, fmt.Errorf("failed to set password: %w", err)
	}

	role := req.Role
	if role == "" {
		role = db.RoleJobSeeker
	}
	if _, err := s.db.CreateProfile(ctx, &db.ProfileCreateInput{
		UserID:  userID,
		Role:    role,
		Company: req.Company,
	}); err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	dbUser, err := s.db.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve created user: %w", err)
	}
	if dbUser == nil {
		return nil, fmt.Errorf("created user not found: %s", userID)
	}

	return convertDBUserToTypesUser(dbUser, role), nil
}

// Login authenticates a user and returns the account with its role. An
// account that somehow has no profile yet gets one created on the spot,
// defaulting to job_seeker.
func (s *UserService) Login(ctx context.Context, req *types.LoginRequest) (*types.User, error) {
	dbUser, err := s.db.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	// Security: Always return generic error if user not found or password wrong
	if dbUser == nil {
		return nil, &ErrInvalidCredentials{}
	}

	if !s.passwordConfig.VerifyPassword(req.Password, dbUser.PasswordHash) {
		return nil, &ErrInvalidCredentials{}
	}

	if !dbUser.PasswordSet {
		return nil, &ErrInvalidCredentials{}
	}

	profile, err := s.ensureProfile(ctx, dbUser.ID)
	if err != nil {
		return nil, err
	}

	return convertDBUserToTypesUser(dbUser, profile.Role), nil
}

// ensureProfile returns the user's profile, creating a default one if
// the account predates the profile table.
func (s *UserService) ensureProfile(ctx context.Context, userID uuid.UUID) (*db.Profile, error) {
	profile, err := s.db.GetProfileByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	if profile != nil {
		return profile, nil
	}

	log.Printf("creating missing profile for user %s", userID)
	if _, err := s.db.CreateProfile(ctx, &db.ProfileCreateInput{UserID: userID}); err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}
	profile, err = s.db.GetProfileByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	if profile == nil {
		return nil, fmt.Errorf("profile not found after creation: %s", userID)
	}
	return profile, nil
}

// UpdatePassword updates a user's password
func (s *UserService) UpdatePassword(ctx context.Context, userID uuid.UUID, currentPassword, newPassword string) error {
	dbUser, err := s.db.GetUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}
	if dbUser == nil {
		return &ErrUserNotFound{UserID: userID}
	}

	if !s.passwordConfig.VerifyPassword(currentPassword, dbUser.PasswordHash) {
		return &ErrPasswordMismatch{}
	}

	newPasswordHash, err := s.passwordConfig.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}

	if err := s.db.UpdatePassword(ctx, userID, newPasswordHash); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}

// LookupUserIDByEmail resolves an email to a user ID for password reset
// issuance. Returns uuid.Nil without error when the email is unknown, so
// the caller can respond identically either way.
func (s *UserService) LookupUserIDByEmail(ctx context.Context, email string) (uuid.UUID, error) {
	dbUser, err := s.db.GetUserByEmail(ctx, email)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	if dbUser == nil {
		return uuid.Nil, nil
	}
	return dbUser.ID, nil
}

// ResetPassword sets a new password for a user identified by a validated
// reset token. Unlike UpdatePassword, no current password is required.
func (s *UserService) ResetPassword(ctx context.Context, userID uuid.UUID, newPassword string) error {
	dbUser, err := s.db.GetUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}
	if dbUser == nil {
		return &ErrUserNotFound{UserID: userID}
	}

	newPasswordHash, err := s.passwordConfig.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}

	if err := s.db.UpdatePassword(ctx, userID, newPasswordHash); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}

// GetMe returns the account and profile for the authenticated user.
func (s *UserService) GetMe(ctx context.Context, userID uuid.UUID) (*types.User, *db.Profile, error) {
	dbUser, err := s.db.GetUser(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get user: %w", err)
	}
	if dbUser == nil {
		return nil, nil, &ErrUserNotFound{UserID: userID}
	}

	profile, err := s.ensureProfile(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	return convertDBUserToTypesUser(dbUser, profile.Role), profile, nil
}

// UpdateMe updates the mutable identity fields.
func (s *UserService) UpdateMe(ctx context.Context, userID uuid.UUID, req *types.UpdateUserRequest) (*types.User, error) {
	dbUser, err := s.db.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if dbUser == nil {
		return nil, &ErrUserNotFound{UserID: userID}
	}

	if req.Name != nil {
		dbUser.Name = *req.Name
	}
	if req.Phone != nil {
		dbUser.Phone = *req.Phone
	}

	if err := s.db.UpdateUser(ctx, dbUser); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	profile, err := s.ensureProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	return convertDBUserToTypesUser(dbUser, profile.Role), nil
}

// UpdateProfile merges a partial profile update for the authenticated user.
func (s *UserService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *types.UpdateProfileRequest) (*db.Profile, error) {
	if _, err := s.ensureProfile(ctx, userID); err != nil {
		return nil, err
	}

	updates := &db.ProfileUpdate{
		Bio:        req.Bio,
		Experience: req.Experience,
		Education:  req.Education,
		Location:   req.Location,
		Company:    req.Company,
		Position:   req.Position,
		Website:    req.Website,
	}
	if req.Skills != nil {
		skills := db.StringArray(*req.Skills)
		updates.Skills = &skills
	}

	if err := s.db.UpdateProfile(ctx, userID, updates); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	profile, err := s.db.GetProfileByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return profile, nil
}

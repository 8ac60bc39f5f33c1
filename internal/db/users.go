package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// -----------------------------------------------------------------------------
// User (identity) Methods
// -----------------------------------------------------------------------------

// CreateUser creates a new identity record and returns its ID.
func (db *DB) CreateUser(ctx context.Context, name, email, phone string) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO users (name, email, phone) VALUES ($1, $2, $3) RETURNING id`,
		name, email, phone,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create user: %w", err)
	}
	return id, nil
}

// GetUser retrieves a user by ID, or (nil, nil) when absent.
func (db *DB) GetUser(ctx context.Context, id uuid.UUID) (*User, error) {
	var u User
	err := db.pool.QueryRow(ctx,
		`SELECT id, name, email, phone, password_hash, password_set, created_at, updated_at
		 FROM users WHERE id = $1`, id,
	).Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.PasswordHash, &u.PasswordSet,
		&u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &u, nil
}

// GetUserByEmail retrieves a user by email, or (nil, nil) when absent.
func (db *DB) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	err := db.pool.QueryRow(ctx,
		`SELECT id, name, email, phone, password_hash, password_set, created_at, updated_at
		 FROM users WHERE email = $1`, email,
	).Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.PasswordHash, &u.PasswordSet,
		&u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return &u, nil
}

// ListUsers returns every identity record, for admin snapshots.
func (db *DB) ListUsers(ctx context.Context) ([]User, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, name, email, phone, password_hash, password_set, created_at, updated_at
		 FROM users`)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := []User{}
	for rows.Next() {
		var u User
		err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.PasswordHash,
			&u.PasswordSet, &u.CreatedAt, &u.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to list users: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// CheckEmailExists reports whether an identity with the given email exists.
func (db *DB) CheckEmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := db.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`, email,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check email existence: %w", err)
	}
	return exists, nil
}

// UpdateUser updates the mutable identity fields (name, phone).
func (db *DB) UpdateUser(ctx context.Context, u *User) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE users SET name = $2, phone = $3, updated_at = NOW() WHERE id = $1`,
		u.ID, u.Name, u.Phone)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}

// UpdatePassword stores a new password hash and marks the password as set.
func (db *DB) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE users SET password_hash = $2, password_set = TRUE, updated_at = NOW()
		 WHERE id = $1`,
		id, passwordHash)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}

// -----------------------------------------------------------------------------
// Profile Store Adapter
// -----------------------------------------------------------------------------

const profileColumns = `id, user_id, role, bio, skills, experience, education,
	        location, company, position, website, saved_jobs, is_verified,
	        created_at, updated_at`

func scanProfile(row pgx.Row) (*Profile, error) {
	var p Profile
	err := row.Scan(&p.ID, &p.UserID, &p.Role, &p.Bio, &p.Skills, &p.Experience,
		&p.Education, &p.Location, &p.Company, &p.Position, &p.Website,
		&p.SavedJobs, &p.IsVerified, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ProfileCreateInput holds the fields for a new profile record.
type ProfileCreateInput struct {
	UserID   uuid.UUID
	Role     string
	Company  string
	Position string
	Website  string
}

// CreateProfile persists a new profile and returns its ID. Role defaults
// to job_seeker.
func (db *DB) CreateProfile(ctx context.Context, input *ProfileCreateInput) (uuid.UUID, error) {
	role := input.Role
	if role == "" {
		role = RoleJobSeeker
	}

	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO profiles (user_id, role, company, position, website)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		input.UserID, role, input.Company, input.Position, input.Website,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create profile: %w", err)
	}
	return id, nil
}

// GetProfileByUserID retrieves the profile owned by an identity, or
// (nil, nil) when absent.
func (db *DB) GetProfileByUserID(ctx context.Context, userID uuid.UUID) (*Profile, error) {
	p, err := scanProfile(db.pool.QueryRow(ctx,
		`SELECT `+profileColumns+` FROM profiles WHERE user_id = $1`, userID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return p, nil
}

// ListProfiles returns every profile, for admin snapshots.
func (db *DB) ListProfiles(ctx context.Context) ([]Profile, error) {
	rows, err := db.pool.Query(ctx, `SELECT `+profileColumns+` FROM profiles`)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	defer rows.Close()

	profiles := []Profile{}
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to list profiles: %w", err)
		}
		profiles = append(profiles, *p)
	}
	return profiles, rows.Err()
}

// ProfileUpdate holds a partial profile update; nil fields are left unchanged.
type ProfileUpdate struct {
	Role       *string
	Bio        *string
	Skills     *StringArray
	Experience *string
	Education  *string
	Location   *string
	Company    *string
	Position   *string
	Website    *string
	IsVerified *bool
}

// UpdateProfile merges the given fields into the profile and refreshes
// updated_at.
func (db *DB) UpdateProfile(ctx context.Context, userID uuid.UUID, updates *ProfileUpdate) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE profiles SET
		     role        = COALESCE($2, role),
		     bio         = COALESCE($3, bio),
		     skills      = COALESCE($4, skills),
		     experience  = COALESCE($5, experience),
		     education   = COALESCE($6, education),
		     location    = COALESCE($7, location),
		     company     = COALESCE($8, company),
		     position    = COALESCE($9, position),
		     website     = COALESCE($10, website),
		     is_verified = COALESCE($11, is_verified),
		     updated_at  = NOW()
		 WHERE user_id = $1`,
		userID, updates.Role, updates.Bio, updates.Skills, updates.Experience,
		updates.Education, updates.Location, updates.Company, updates.Position,
		updates.Website, updates.IsVerified)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	return nil
}

// SaveJob appends a job ID to the profile's saved list if not already
// present. Read-modify-write with no locking; concurrent saves can race,
// which is tolerated.
func (db *DB) SaveJob(ctx context.Context, userID, jobID uuid.UUID) error {
	profile, err := db.GetProfileByUserID(ctx, userID)
	if err != nil {
		return err
	}
	if profile == nil {
		return fmt.Errorf("profile not found for user: %s", userID)
	}

	if profile.SavedJobs.Contains(jobID.String()) {
		return nil
	}
	saved := append(profile.SavedJobs, jobID.String())
	return db.writeSavedJobs(ctx, userID, saved)
}

// UnsaveJob removes a job ID from the profile's saved list.
func (db *DB) UnsaveJob(ctx context.Context, userID, jobID uuid.UUID) error {
	profile, err := db.GetProfileByUserID(ctx, userID)
	if err != nil {
		return err
	}
	if profile == nil {
		return fmt.Errorf("profile not found for user: %s", userID)
	}

	return db.writeSavedJobs(ctx, userID, profile.SavedJobs.Without(jobID.String()))
}

func (db *DB) writeSavedJobs(ctx context.Context, userID uuid.UUID, saved StringArray) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE profiles SET saved_jobs = $2, updated_at = NOW() WHERE user_id = $1`,
		userID, saved)
	if err != nil {
		return fmt.Errorf("failed to update saved jobs: %w", err)
	}
	return nil
}

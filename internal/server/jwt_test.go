package server

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/jobboard/internal/config"
	"github.com/jonathan/jobboard/internal/db"
)

func testJWTService() *JWTService {
	return NewJWTService(&config.JWTConfig{
		Secret:            "test-secret-key-for-unit-tests",
		ExpirationHours:   24,
		ResetExpiryMinute: 30,
	})
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := testJWTService()
	userID := uuid.New()

	token, err := svc.GenerateToken(userID, db.RoleEmployer)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, db.RoleEmployer, claims.Role)
	assert.Equal(t, userID, claims.GetUserID())
	assert.Equal(t, db.RoleEmployer, claims.GetRole())
}

func TestJWTService_ValidateEmptyToken(t *testing.T) {
	svc := testJWTService()

	_, err := svc.ValidateToken("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")
}

func TestJWTService_ValidateMalformedToken(t *testing.T) {
	svc := testJWTService()

	_, err := svc.ValidateToken("not.a.jwt")
	require.Error(t, err)
}

func TestJWTService_WrongSecret(t *testing.T) {
	svc := testJWTService()
	other := NewJWTService(&config.JWTConfig{
		Secret:            "a-completely-different-secret",
		ExpirationHours:   24,
		ResetExpiryMinute: 30,
	})

	token, err := svc.GenerateToken(uuid.New(), db.RoleJobSeeker)
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	require.Error(t, err)
}

func TestJWTService_ResetToken(t *testing.T) {
	svc := testJWTService()
	userID := uuid.New()

	token, err := svc.GenerateResetToken(userID)
	require.NoError(t, err)

	got, err := svc.ValidateResetToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestJWTService_ResetTokenIsNotASessionToken(t *testing.T) {
	svc := testJWTService()

	token, err := svc.GenerateResetToken(uuid.New())
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	require.Error(t, err, "reset tokens must not authenticate requests")
}

func TestJWTService_SessionTokenIsNotAResetToken(t *testing.T) {
	svc := testJWTService()

	token, err := svc.GenerateToken(uuid.New(), db.RoleJobSeeker)
	require.NoError(t, err)

	_, err = svc.ValidateResetToken(token)
	require.Error(t, err, "session tokens must not reset passwords")
}

// Package config provides JWT configuration functionality.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// JWTConfig holds configuration for session and password-reset token handling.
type JWTConfig struct {
	Secret            string
	ExpirationHours   int
	ResetExpiryMinute int
}

// NewJWTConfig creates a new JWT configuration from environment variables.
// It reads JWT_SECRET (required), JWT_EXPIRATION_HOURS (default: 24) and
// JWT_RESET_EXPIRY_MINUTES (default: 30, used for password-reset tokens).
func NewJWTConfig() (*JWTConfig, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required but not set")
	}

	expirationStr := os.Getenv("JWT_EXPIRATION_HOURS")
	if expirationStr == "" {
		expirationStr = "24"
	}

	expirationHours, err := strconv.Atoi(expirationStr)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_EXPIRATION_HOURS: %v", err)
	}

	resetStr := os.Getenv("JWT_RESET_EXPIRY_MINUTES")
	if resetStr == "" {
		resetStr = "30"
	}

	resetExpiry, err := strconv.Atoi(resetStr)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_RESET_EXPIRY_MINUTES: %v", err)
	}

	config := &JWTConfig{
		Secret:            secret,
		ExpirationHours:   expirationHours,
		ResetExpiryMinute: resetExpiry,
	}

	if err := config.normalize(); err != nil {
		return nil, err
	}

	return config, nil
}

// normalize validates the configuration.
func (c *JWTConfig) normalize() error {
	if c.Secret == "" {
		return fmt.Errorf("JWT_SECRET cannot be empty")
	}
	if c.ExpirationHours < 1 {
		return fmt.Errorf("JWT_EXPIRATION_HOURS must be at least 1 hour, got: %d", c.ExpirationHours)
	}
	if c.ResetExpiryMinute < 1 {
		return fmt.Errorf("JWT_RESET_EXPIRY_MINUTES must be at least 1 minute, got: %d", c.ResetExpiryMinute)
	}
	return nil
}

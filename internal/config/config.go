// Package config provides environment-driven configuration for the job board service.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// ServerConfig holds configuration for the HTTP server and its backing store.
type ServerConfig struct {
	Port        int
	DatabaseURL string
}

// NewServerConfig creates a server configuration from environment variables.
// It reads PORT (default: 8080) and DATABASE_URL (required).
func NewServerConfig() (*ServerConfig, error) {
	portStr := os.Getenv("PORT")
	if portStr == "" {
		portStr = "8080"
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT: %v", err)
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required but not set")
	}

	config := &ServerConfig{
		Port:        port,
		DatabaseURL: databaseURL,
	}

	if err := config.normalize(); err != nil {
		return nil, err
	}

	return config, nil
}

// normalize validates the configuration.
func (c *ServerConfig) normalize() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port out of range: %d", c.Port)
	}
	return nil
}

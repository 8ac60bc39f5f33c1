package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServerConfig(t *testing.T) {
	tests := []struct {
		name        string
		port        string
		databaseURL string
		wantPort    int
		wantErr     bool
		description string
	}{
		{
			name:        "default port",
			port:        "",
			databaseURL: "postgres://localhost/jobboard",
			wantPort:    8080,
			wantErr:     false,
			description: "should use default port 8080 when PORT is not set",
		},
		{
			name:        "custom port",
			port:        "9090",
			databaseURL: "postgres://localhost/jobboard",
			wantPort:    9090,
			wantErr:     false,
			description: "should accept a custom port",
		},
		{
			name:        "missing database url",
			port:        "8080",
			databaseURL: "",
			wantErr:     true,
			description: "should fail when DATABASE_URL is not set",
		},
		{
			name:        "invalid port",
			port:        "not-a-port",
			databaseURL: "postgres://localhost/jobboard",
			wantErr:     true,
			description: "should reject a non-numeric port",
		},
		{
			name:        "port out of range",
			port:        "70000",
			databaseURL: "postgres://localhost/jobboard",
			wantErr:     true,
			description: "should reject a port above 65535",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("PORT", tt.port)
			t.Setenv("DATABASE_URL", tt.databaseURL)
			if tt.port == "" {
				os.Unsetenv("PORT")
			}
			if tt.databaseURL == "" {
				os.Unsetenv("DATABASE_URL")
			}

			cfg, err := NewServerConfig()
			if tt.wantErr {
				assert.Error(t, err, tt.description)
				return
			}
			require.NoError(t, err, tt.description)
			assert.Equal(t, tt.wantPort, cfg.Port, tt.description)
			assert.Equal(t, tt.databaseURL, cfg.DatabaseURL, tt.description)
		})
	}
}

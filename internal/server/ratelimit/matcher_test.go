package ratelimit

import (
	"testing"
	"time"
)

func TestMatchEndpoint_HealthUnlimited(t *testing.T) {
	config := MatchEndpoint("/health", "GET", DefaultEndpointConfigs())
	if config == nil {
		t.Fatal("Expected health endpoint to match")
	}
	if config.Limit != 0 {
		t.Errorf("Expected health endpoint to be unlimited, got limit %d", config.Limit)
	}
}

func TestMatchEndpoint_ExactMatch(t *testing.T) {
	configs := DefaultEndpointConfigs()

	config := MatchEndpoint("/auth/login", "POST", configs)
	if config == nil {
		t.Fatal("Expected /auth/login POST to match")
	}
	if config.Limit != 20 {
		t.Errorf("Expected login limit 20, got %d", config.Limit)
	}
}

func TestMatchEndpoint_PrefixMatch(t *testing.T) {
	configs := DefaultEndpointConfigs()

	// Application submission under a specific job matches the /jobs/ prefix.
	config := MatchEndpoint("/jobs/4f3a/applications", "POST", configs)
	if config == nil {
		t.Fatal("Expected application submission to match the /jobs/ prefix tier")
	}
	if config.Limit != 30 {
		t.Errorf("Expected application submission limit 30, got %d", config.Limit)
	}

	config = MatchEndpoint("/jobs/4f3a", "PUT", configs)
	if config == nil {
		t.Fatal("Expected job update to match the /jobs/ prefix tier")
	}
	if config.Limit != 60 {
		t.Errorf("Expected job update limit 60, got %d", config.Limit)
	}
}

func TestMatchEndpoint_NoMatch(t *testing.T) {
	configs := []EndpointConfig{
		{Path: "/auth/login", Method: "POST", Limit: 20, Window: time.Minute},
	}

	if config := MatchEndpoint("/jobs", "GET", configs); config != nil {
		t.Errorf("Expected no match for unlisted endpoint, got %+v", config)
	}
	// Method must match too.
	if config := MatchEndpoint("/auth/login", "GET", configs); config != nil {
		t.Errorf("Expected no match for wrong method, got %+v", config)
	}
}

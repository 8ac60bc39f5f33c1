package ratelimit

import (
	"fmt"
	"testing"
	"time"
)

func newDefaultTierLimiter() *Limiter {
	return NewLimiter(&Config{
		Enabled:         true,
		DefaultLimit:    1000,
		DefaultWindow:   time.Minute,
		Whitelist:       make(map[string]bool),
		Blacklist:       make(map[string]bool),
		EndpointConfigs: DefaultEndpointConfigs(),
	})
}

func TestLimiter_CredentialTierBurst(t *testing.T) {
	limiter := newDefaultTierLimiter()
	defer limiter.Stop()

	// Login allows a burst of 5, then throttles.
	for i := 0; i < 5; i++ {
		allowed, info := limiter.Allow("203.0.113.7", "/auth/login", "POST")
		if !allowed {
			t.Fatalf("Login attempt %d should be allowed within the burst", i+1)
		}
		if info.Limit != 20 {
			t.Errorf("Expected login limit 20, got %d", info.Limit)
		}
	}

	allowed, info := limiter.Allow("203.0.113.7", "/auth/login", "POST")
	if allowed {
		t.Error("Sixth rapid login attempt should be throttled")
	}
	if info.RetryAfter <= 0 {
		t.Error("Throttled response should carry a retry-after duration")
	}

	// Another client is unaffected.
	if allowed, _ := limiter.Allow("203.0.113.8", "/auth/login", "POST"); !allowed {
		t.Error("A different client should not share the exhausted bucket")
	}
}

func TestLimiter_ApplicationSubmissionTier(t *testing.T) {
	limiter := newDefaultTierLimiter()
	defer limiter.Stop()

	jobPath := "/jobs/4f3a/applications"

	// Submissions under a job match the /jobs/ POST prefix tier (burst 5).
	for i := 0; i < 5; i++ {
		allowed, info := limiter.Allow("client", jobPath, "POST")
		if !allowed {
			t.Fatalf("Submission %d should be allowed within the burst", i+1)
		}
		if info.Limit != 30 {
			t.Errorf("Expected submission limit 30, got %d", info.Limit)
		}
	}
	if allowed, _ := limiter.Allow("client", jobPath, "POST"); allowed {
		t.Error("Sixth rapid submission should be throttled")
	}

	// Job creation is an exact match on /jobs with its own bucket, so the
	// exhausted submission bucket must not block it.
	allowed, info := limiter.Allow("client", "/jobs", "POST")
	if !allowed {
		t.Error("Job creation should not share the submission bucket")
	}
	if info.Limit != 60 {
		t.Errorf("Expected job creation limit 60, got %d", info.Limit)
	}
}

func TestLimiter_AdminAndReadTiers(t *testing.T) {
	limiter := newDefaultTierLimiter()
	defer limiter.Stop()

	allowed, info := limiter.Allow("client", "/admin/stats", "GET")
	if !allowed {
		t.Error("Admin read should be allowed")
	}
	if info.Limit != 60 {
		t.Errorf("Expected admin tier limit 60, got %d", info.Limit)
	}

	// Unlisted reads fall back to the default limit.
	allowed, info = limiter.Allow("client", "/jobs", "GET")
	if !allowed {
		t.Error("Job browsing should be allowed")
	}
	if info.Limit != 1000 {
		t.Errorf("Expected default limit 1000 for reads, got %d", info.Limit)
	}
}

func TestLimiter_HealthNeverThrottled(t *testing.T) {
	limiter := newDefaultTierLimiter()
	defer limiter.Stop()

	for i := 0; i < 50; i++ {
		allowed, info := limiter.Allow("probe", "/health", "GET")
		if !allowed {
			t.Fatalf("Health check %d should never be throttled", i+1)
		}
		if info.Limit != 0 {
			t.Errorf("Health check should be unlimited, got limit %d", info.Limit)
		}
	}
}

func TestLimiter_WriteBucketsArePerEndpoint(t *testing.T) {
	limiter := newDefaultTierLimiter()
	defer limiter.Stop()

	// Exhaust the saved-jobs bucket; notification reads-marking shares the
	// /me/ POST tier but gets its own bucket per path.
	savePath := "/me/saved-jobs/4f3a"
	for i := 0; i < 20; i++ {
		if allowed, _ := limiter.Allow("client", savePath, "POST"); !allowed {
			break
		}
	}

	readPath := fmt.Sprintf("/me/notifications/%s/read", "9b1c")
	if allowed, _ := limiter.Allow("client", readPath, "POST"); !allowed {
		t.Error("Notification mark-read should not share the saved-jobs bucket")
	}
}

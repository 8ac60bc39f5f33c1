// Package stats computes the aggregate figures shown on the admin
// dashboard. The store is read once into an in-memory snapshot and every
// figure is derived from that snapshot, so the numbers on one page load
// are mutually consistent.
package stats

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/jobboard/internal/db"
)

// Store is the subset of the database layer the collector reads from.
type Store interface {
	ListUsers(ctx context.Context) ([]db.User, error)
	ListProfiles(ctx context.Context) ([]db.Profile, error)
	ListJobs(ctx context.Context) ([]db.Job, error)
	ListApplications(ctx context.Context) ([]db.Application, error)
}

// Snapshot holds one consistent read of the collections the dashboard
// aggregates over.
type Snapshot struct {
	Users        []db.User
	Profiles     []db.Profile
	Jobs         []db.Job
	Applications []db.Application
}

// Collector fetches dashboard snapshots.
type Collector struct {
	store Store
}

// NewCollector creates a Collector backed by store.
func NewCollector(store Store) *Collector {
	return &Collector{store: store}
}

// Collect fetches the three collections concurrently. Any fetch failure
// fails the whole snapshot.
func (c *Collector) Collect(ctx context.Context) (*Snapshot, error) {
	var snap Snapshot

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		snap.Users, err = c.store.ListUsers(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		snap.Profiles, err = c.store.ListProfiles(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		snap.Jobs, err = c.store.ListJobs(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		snap.Applications, err = c.store.ListApplications(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("collecting dashboard snapshot: %w", err)
	}
	return &snap, nil
}

// percent computes a rounded integer percentage, returning 0 when the
// whole is zero rather than dividing by it.
func percent(part, whole int) int {
	if whole == 0 {
		return 0
	}
	return (part*100 + whole/2) / whole
}

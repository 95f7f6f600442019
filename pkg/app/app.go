// Package app provides high-level operations over the session, the typed
// stores and the reconciler so CLIs and UIs can share logic.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/daypack/pkg/calsync"
	"tableflip.dev/daypack/pkg/event"
	"tableflip.dev/daypack/pkg/identity"
	"tableflip.dev/daypack/pkg/journal"
	"tableflip.dev/daypack/pkg/stats"
	"tableflip.dev/daypack/pkg/store"
	"tableflip.dev/daypack/pkg/task"
)

// Service wires the stores together around one session manager. All store
// operations resolve their partition from the active session; logged-out
// callers operate on the anonymous partition.
type Service struct {
	Sessions   *identity.Manager
	Provider   identity.Provider
	Tasks      task.Store
	Events     event.Store
	Journal    journal.Store
	Ledger     stats.Ledger
	Reconciler *calsync.Reconciler

	// Now is the clock; tests pin it.
	Now func() time.Time
}

// Load builds the full service from store configuration.
func Load(cfg store.Config) (*Service, error) {
	kv, err := store.Load(cfg)
	if err != nil {
		return nil, err
	}
	sessions, err := identity.NewManager(kv)
	if err != nil {
		return nil, err
	}
	events := event.Store{KV: kv}
	ledger := stats.Ledger{Store: kv}
	return &Service{
		Sessions: sessions,
		Provider: identity.SimulatedProvider{},
		Tasks:    task.Store{KV: kv},
		Events:   events,
		Journal:  journal.Store{KV: kv},
		Ledger:   ledger,
		Reconciler: &calsync.Reconciler{
			Events: events,
			Ledger: ledger,
			Remote: calsync.Simulated{},
		},
	}, nil
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *Service) partition() store.Partition {
	return s.Sessions.Partition()
}

// Session returns the active session, nil when logged out.
func (s *Service) Session() *identity.Session {
	return s.Sessions.Current()
}

// Login authenticates against the identity provider and establishes the
// session.
func (s *Service) Login(ctx context.Context) (*identity.Session, error) {
	if s.Provider == nil {
		return nil, errors.New("app: no identity provider configured")
	}
	id, err := s.Provider.Authenticate(ctx)
	if err != nil {
		return nil, fmt.Errorf("app: authenticate: %w", err)
	}
	return s.Sessions.Login(id)
}

// LoginGuest establishes a synthetic guest session.
func (s *Service) LoginGuest() (*identity.Session, error) {
	return s.Sessions.LoginGuest(s.now())
}

// Logout clears the session pointer; partitioned data survives.
func (s *Service) Logout() error {
	return s.Sessions.Logout()
}

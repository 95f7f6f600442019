// Package calsync reconciles local calendar events against a remote calendar
// source, tagging synced records and reporting new-event deltas to the stats
// ledger.
package calsync

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/daypack/pkg/event"
	"tableflip.dev/daypack/pkg/identity"
	"tableflip.dev/daypack/pkg/stats"
)

// State tracks reconciliation freshness, not a persistent flag on the
// collection: any local mutation drops a synced reconciler back to NotSynced.
type State int

const (
	StateNotSynced State = iota
	StateSyncing
	StateSynced
)

func (s State) String() string {
	switch s {
	case StateSyncing:
		return "syncing"
	case StateSynced:
		return "synced"
	default:
		return "not_synced"
	}
}

var (
	ErrNoSession    = errors.New("calsync: no active session")
	ErrGuestSession = errors.New("calsync: guest sessions cannot sync")
)

// DefaultTimeout bounds the remote exchange so a stalled provider cannot hold
// the reconciler in syncing forever.
const DefaultTimeout = 10 * time.Second

// Result reports what a successful pass produced.
type Result struct {
	Events []event.Event
	Added  int
	Stats  stats.Stats
}

// Reconciler merges local events with the remote calendar. Failures are
// all-or-nothing: the local collection is written only after the exchange
// succeeds, so an aborted pass leaves it exactly as it was.
type Reconciler struct {
	Events  event.Store
	Ledger  stats.Ledger
	Remote  Remote
	Timeout time.Duration

	state State
}

// State returns the current reconciliation state.
func (r *Reconciler) State() State {
	return r.state
}

// Invalidate marks local state as changed since the last pass. Callers invoke
// it after any event mutation; a synced reconciler drops back to NotSynced.
func (r *Reconciler) Invalidate() {
	if r.state == StateSynced {
		r.state = StateNotSynced
	}
}

// Sync runs one reconciliation pass for the session's partition. Guest and
// absent sessions fail the entry condition before anything is read or
// written. Every error lands the machine back in NotSynced.
func (r *Reconciler) Sync(ctx context.Context, sess *identity.Session) (*Result, error) {
	if sess == nil {
		return nil, ErrNoSession
	}
	if sess.Guest {
		return nil, ErrGuestSession
	}

	p := sess.Partition()
	r.state = StateSyncing

	local, err := r.Events.List(p)
	if err != nil {
		r.state = StateNotSynced
		return nil, err
	}

	timeout := r.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	merged, err := r.Remote.Exchange(ctx, local)
	if err != nil {
		r.state = StateNotSynced
		return nil, fmt.Errorf("calsync: remote exchange: %w", err)
	}

	// Read the counters before touching the collection so a ledger read
	// failure aborts with nothing persisted.
	cur, err := r.Ledger.Get(p)
	if err != nil {
		r.state = StateNotSynced
		return nil, err
	}

	if err := r.Events.SaveAll(p, merged); err != nil {
		r.state = StateNotSynced
		return nil, err
	}

	res := &Result{Events: merged, Added: len(merged) - len(local), Stats: cur}

	// The collection write above is the commit point. A counter write
	// failure past it reports the pass as failed while the merged
	// collection stands; the next pass sees it as already synced.
	if res.Added > 0 {
		res.Stats, err = r.Ledger.Update(p, stats.Patch{
			EventsCreated: stats.Set(cur.EventsCreated + uint64(res.Added)),
		})
		if err != nil {
			r.state = StateNotSynced
			return nil, err
		}
	}

	r.state = StateSynced
	return res, nil
}

// Package stats keeps the per-partition lifetime counters.
package stats

import (
	"tableflip.dev/daypack/pkg/store"
)

// Stats are the lifetime counters for one partition. All fields are
// non-negative and only ever grow under normal operation; there is no
// decrement operation.
type Stats struct {
	FocusMinutes   uint64 `json:"focusMinutes"`
	TasksCompleted uint64 `json:"tasksCompleted"`
	EventsCreated  uint64 `json:"eventsCreated"`
}

// Patch carries the fields an update replaces; nil fields keep their current
// value. Callers pass current + delta, never an absolute value they did not
// read first — the ledger itself does not enforce monotonicity.
type Patch struct {
	FocusMinutes   *uint64
	TasksCompleted *uint64
	EventsCreated  *uint64
}

// Set wraps a counter value for use in a Patch.
func Set(v uint64) *uint64 {
	return &v
}

// Ledger reads and updates the stats record for a partition.
type Ledger struct {
	Store *store.Store
}

// Get returns the partition's stats, zeroed when nothing was ever written.
func (l Ledger) Get(p store.Partition) (Stats, error) {
	var s Stats
	if _, err := l.Store.ReadJSON(store.KindStats, p, &s); err != nil {
		return Stats{}, err
	}
	return s, nil
}

// Ensure writes the zeroed default if the partition has no stats record yet.
// Login calls this so no other component has to special-case a first login.
func (l Ledger) Ensure(p store.Partition) error {
	ok, err := l.Store.ReadJSON(store.KindStats, p, &Stats{})
	if err != nil {
		return err
	}
	if ok {
		return nil
	}
	return l.Store.WriteJSON(store.KindStats, p, Stats{})
}

// Update shallow-merges the set fields of the patch over the current record,
// persists and returns the result.
func (l Ledger) Update(p store.Partition, patch Patch) (Stats, error) {
	s, err := l.Get(p)
	if err != nil {
		return Stats{}, err
	}
	if patch.FocusMinutes != nil {
		s.FocusMinutes = *patch.FocusMinutes
	}
	if patch.TasksCompleted != nil {
		s.TasksCompleted = *patch.TasksCompleted
	}
	if patch.EventsCreated != nil {
		s.EventsCreated = *patch.EventsCreated
	}
	if err := l.Store.WriteJSON(store.KindStats, p, s); err != nil {
		return Stats{}, err
	}
	return s, nil
}

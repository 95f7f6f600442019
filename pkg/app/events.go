package app

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/daypack/pkg/calsync"
	"tableflip.dev/daypack/pkg/event"
	"tableflip.dev/daypack/pkg/stats"
)

var ErrEventNotFound = errors.New("app: event not found")

// ListEvents returns the active partition's calendar events.
func (s *Service) ListEvents() ([]event.Event, error) {
	return s.Events.List(s.partition())
}

// AddEvent appends a calendar event, bumps the lifetime counter and
// invalidates sync freshness.
func (s *Service) AddEvent(title, date, at, description string) (event.Event, error) {
	if !event.ValidDate(date) {
		return event.Event{}, fmt.Errorf("app: invalid date %q, want YYYY-MM-DD", date)
	}
	p := s.partition()
	events, err := s.Events.List(p)
	if err != nil {
		return event.Event{}, err
	}
	e := event.New(title, date, s.now())
	e.Time = at
	e.Description = description
	events = append(events, e)
	if err := s.Events.SaveAll(p, events); err != nil {
		return event.Event{}, err
	}
	cur, err := s.Ledger.Get(p)
	if err != nil {
		return event.Event{}, err
	}
	if _, err := s.Ledger.Update(p, stats.Patch{
		EventsCreated: stats.Set(cur.EventsCreated + 1),
	}); err != nil {
		return event.Event{}, err
	}
	s.Reconciler.Invalidate()
	return e, nil
}

// RemoveEvent filters the event out of the collection and invalidates sync
// freshness.
func (s *Service) RemoveEvent(id uint64) ([]event.Event, error) {
	p := s.partition()
	events, err := s.Events.List(p)
	if err != nil {
		return nil, err
	}
	next := events[:0]
	found := false
	for _, e := range events {
		if e.ID == id {
			found = true
			continue
		}
		next = append(next, e)
	}
	if !found {
		return nil, ErrEventNotFound
	}
	if err := s.Events.SaveAll(p, next); err != nil {
		return nil, err
	}
	s.Reconciler.Invalidate()
	return next, nil
}

// ClearEvents replaces the collection with the empty one and invalidates sync
// freshness.
func (s *Service) ClearEvents() error {
	if err := s.Events.SaveAll(s.partition(), []event.Event{}); err != nil {
		return err
	}
	s.Reconciler.Invalidate()
	return nil
}

// Sync runs one reconciliation pass for the active session.
func (s *Service) Sync(ctx context.Context) (*calsync.Result, error) {
	return s.Reconciler.Sync(ctx, s.Sessions.Current())
}

// SyncState exposes the reconciler's freshness state.
func (s *Service) SyncState() calsync.State {
	return s.Reconciler.State()
}

// Package event stores the per-partition calendar event list.
package event

import (
	"time"

	"tableflip.dev/daypack/pkg/store"
)

const layoutISO = "2006-01-02"

// Event is one calendar entry. RemoteID is set only after a successful
// reconciliation pass; Synced implies RemoteID is present.
type Event struct {
	ID          uint64 `json:"id"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	Time        string `json:"time,omitempty"`
	Description string `json:"description,omitempty"`
	Synced      bool   `json:"synced,omitempty"`
	RemoteID    string `json:"remoteId,omitempty"`
}

// New mints an event for the ISO date. The id is the creation time in unix
// milliseconds, same collision caveat as tasks.
func New(title, date string, now time.Time) Event {
	return Event{
		ID:    uint64(now.UnixMilli()),
		Title: title,
		Date:  date,
	}
}

// ValidDate reports whether date parses as an ISO calendar date.
func ValidDate(date string) bool {
	_, err := time.Parse(layoutISO, date)
	return err == nil
}

// Store reads and replaces a partition's event collection; full replace only,
// callers construct the next collection themselves.
type Store struct {
	KV *store.Store
}

// List returns the collection in insertion order, empty when nothing was ever
// written.
func (s Store) List(p store.Partition) ([]Event, error) {
	events := make([]Event, 0)
	if _, err := s.KV.ReadJSON(store.KindEvents, p, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// SaveAll replaces the whole collection in a single write.
func (s Store) SaveAll(p store.Partition, events []Event) error {
	return s.KV.WriteJSON(store.KindEvents, p, events)
}

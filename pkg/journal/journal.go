// Package journal stores date-keyed journal entries and derives the monthly
// archive view.
package journal

import (
	"fmt"
	"time"

	"tableflip.dev/daypack/pkg/store"
)

const layoutISO = "2006-01-02"

// Entry is one journal entry. At most one entry exists per (partition, date);
// EntryID is the only id constructor, so date uniqueness follows from id
// uniqueness.
type Entry struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// EntryID derives the canonical id for a partition and ISO date.
func EntryID(p store.Partition, date string) string {
	return fmt.Sprintf("journal_%s_%s", p, date)
}

// New builds the entry for (partition, date) stamped with now for both
// timestamps. Upserting an existing date keeps the original CreatedAt; that is
// the caller's job (see app.WriteJournal).
func New(p store.Partition, date, content string, now time.Time) Entry {
	stamp := now.UTC().Format(time.RFC3339)
	return Entry{
		ID:        EntryID(p, date),
		Date:      date,
		Content:   content,
		CreatedAt: stamp,
		UpdatedAt: stamp,
	}
}

// Store reads and replaces a partition's journal collection.
type Store struct {
	KV *store.Store
}

// List returns every entry for the partition, empty when none exist.
func (s Store) List(p store.Partition) ([]Entry, error) {
	entries := make([]Entry, 0)
	if _, err := s.KV.ReadJSON(store.KindJournal, p, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Get returns the entry for the date, or nil when absent.
func (s Store) Get(p store.Partition, date string) (*Entry, error) {
	entries, err := s.List(p)
	if err != nil {
		return nil, err
	}
	id := EntryID(p, date)
	for i := range entries {
		if entries[i].ID == id {
			return &entries[i], nil
		}
	}
	return nil, nil
}

// Upsert replaces the entry with a matching id or appends it, then persists
// the full collection and returns the stored entry.
func (s Store) Upsert(p store.Partition, e Entry) (Entry, error) {
	entries, err := s.List(p)
	if err != nil {
		return Entry{}, err
	}
	replaced := false
	for i := range entries {
		if entries[i].ID == e.ID {
			entries[i] = e
			replaced = true
			break
		}
	}
	if !replaced {
		entries = append(entries, e)
	}
	if err := s.KV.WriteJSON(store.KindJournal, p, entries); err != nil {
		return Entry{}, err
	}
	return e, nil
}

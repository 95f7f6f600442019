package app

import (
	"fmt"

	"tableflip.dev/daypack/pkg/event"
	"tableflip.dev/daypack/pkg/journal"
)

// JournalEntry returns the entry for the date, nil when absent.
func (s *Service) JournalEntry(date string) (*journal.Entry, error) {
	return s.Journal.Get(s.partition(), date)
}

// JournalEntries lists every entry for the active partition.
func (s *Service) JournalEntries() ([]journal.Entry, error) {
	return s.Journal.List(s.partition())
}

// WriteJournal upserts the entry for the date. An existing entry keeps its
// CreatedAt; only UpdatedAt moves.
func (s *Service) WriteJournal(date, content string) (journal.Entry, error) {
	if !event.ValidDate(date) {
		return journal.Entry{}, fmt.Errorf("app: invalid date %q, want YYYY-MM-DD", date)
	}
	p := s.partition()
	existing, err := s.Journal.Get(p, date)
	if err != nil {
		return journal.Entry{}, err
	}
	e := journal.New(p, date, content, s.now())
	if existing != nil {
		e.CreatedAt = existing.CreatedAt
	}
	return s.Journal.Upsert(p, e)
}

// ArchivedJournal groups past-month entries into "YYYY-MM" buckets.
func (s *Service) ArchivedJournal() (map[string][]journal.Entry, error) {
	return s.Journal.Archived(s.partition(), s.now())
}

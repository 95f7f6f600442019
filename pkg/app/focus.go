package app

import (
	"time"

	"tableflip.dev/daypack/pkg/stats"
)

// Stats returns the active partition's lifetime counters.
func (s *Service) Stats() (stats.Stats, error) {
	return s.Ledger.Get(s.partition())
}

// AddFocusMinutes commits minutes to the lifetime counter, reading first so
// the write stays additive.
func (s *Service) AddFocusMinutes(minutes uint64) (stats.Stats, error) {
	p := s.partition()
	cur, err := s.Ledger.Get(p)
	if err != nil {
		return stats.Stats{}, err
	}
	return s.Ledger.Update(p, stats.Patch{
		FocusMinutes: stats.Set(cur.FocusMinutes + minutes),
	})
}

// LogFocusSession appends to the session log without touching the counters.
// The interactive timer commits its minutes as they elapse and logs the
// sitting once at the end.
func (s *Service) LogFocusSession(startedAt time.Time, minutes uint64) error {
	return s.Ledger.RecordSession(s.partition(), stats.NewFocusSession(startedAt, minutes))
}

// RecordFocus logs a finished focus sitting and commits its minutes in one
// call, for non-interactive use.
func (s *Service) RecordFocus(startedAt time.Time, minutes uint64) (stats.Stats, error) {
	if err := s.LogFocusSession(startedAt, minutes); err != nil {
		return stats.Stats{}, err
	}
	return s.AddFocusMinutes(minutes)
}

// FocusSessions lists the partition's focus session log.
func (s *Service) FocusSessions() ([]stats.FocusSession, error) {
	return s.Ledger.Sessions(s.partition())
}

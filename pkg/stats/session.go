package stats

import (
	"time"

	"tableflip.dev/daypack/pkg/store"
)

// FocusSession records one completed or logged focus sitting.
type FocusSession struct {
	ID        uint64 `json:"id"`
	StartedAt string `json:"startedAt"`
	Minutes   uint64 `json:"minutes"`
}

// NewFocusSession stamps a session with its start time; the id is the start
// in unix milliseconds, matching how tasks and events mint ids.
func NewFocusSession(startedAt time.Time, minutes uint64) FocusSession {
	return FocusSession{
		ID:        uint64(startedAt.UnixMilli()),
		StartedAt: startedAt.UTC().Format(time.RFC3339),
		Minutes:   minutes,
	}
}

// Sessions lists the partition's focus session log, oldest first.
func (l Ledger) Sessions(p store.Partition) ([]FocusSession, error) {
	sessions := make([]FocusSession, 0)
	if _, err := l.Store.ReadJSON(store.KindFocusSessions, p, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

// RecordSession appends one session to the log.
func (l Ledger) RecordSession(p store.Partition, s FocusSession) error {
	sessions, err := l.Sessions(p)
	if err != nil {
		return err
	}
	sessions = append(sessions, s)
	return l.Store.WriteJSON(store.KindFocusSessions, p, sessions)
}

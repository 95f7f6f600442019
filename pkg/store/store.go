package store

import (
	"encoding/json"
	"fmt"
	"io"
)

// Kind names an entity namespace in the durable medium. The string values are
// load-bearing: they must match the keys already written by earlier releases.
type Kind string

const (
	KindStats         Kind = "user_stats"
	KindTasks         Kind = "tasks"
	KindEvents        Kind = "calendar_events"
	KindJournal       Kind = "journal_entries"
	KindFocusSessions Kind = "focus_sessions"
	KindUser          Kind = "user"
)

// Partition is the identifier under which a user's entities are namespaced.
type Partition string

// Anonymous is the partition used when no session is active. It maps to the
// bare kind key so anonymous data shares a namespace with unpartitioned data
// written by earlier releases.
const Anonymous Partition = ""

// Key derives the medium key for a kind and partition.
func Key(kind Kind, p Partition) string {
	if p == Anonymous {
		return string(kind)
	}
	return fmt.Sprintf("%s_%s", kind, p)
}

// Store provides namespaced access to a flat keyed medium. Every value is a
// full serialized record or collection; a write replaces the previous value.
type Store struct {
	m Medium
}

// New wraps an existing medium.
func New(m Medium) *Store {
	return &Store{m: m}
}

// Load creates a Store backed by the configured medium.
func Load(cfg Config) (*Store, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	switch cfg.Backend() {
	case "", BackendDiskv:
		return New(NewDiskv(cfg.BasePath())), nil
	case BackendSQLite:
		m, err := NewSQLite(cfg.BasePath())
		if err != nil {
			return nil, err
		}
		return New(m), nil
	default:
		return nil, fmt.Errorf("store: unknown backend %q", cfg.Backend())
	}
}

// Read returns the raw value at (kind, partition). A missing key is reported
// through ok=false, never as an error.
func (s *Store) Read(kind Kind, p Partition) ([]byte, bool, error) {
	return s.m.Read(Key(kind, p))
}

// Write replaces the value at (kind, partition). The write is synchronous and
// durable when it returns.
func (s *Store) Write(kind Kind, p Partition, value []byte) error {
	return s.m.Write(Key(kind, p), value)
}

// Erase removes the key for (kind, partition). Erasing a missing key is not an
// error.
func (s *Store) Erase(kind Kind, p Partition) error {
	return s.m.Erase(Key(kind, p))
}

// ReadJSON decodes the value at (kind, partition) into out, reporting whether
// the key existed. Decode failures propagate so callers see corrupt records.
func (s *Store) ReadJSON(kind Kind, p Partition, out interface{}) (bool, error) {
	data, ok, err := s.Read(kind, p)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return true, fmt.Errorf("store: decode %s: %w", Key(kind, p), err)
	}
	return true, nil
}

// WriteJSON serializes v and replaces the value at (kind, partition).
func (s *Store) WriteJSON(kind Kind, p Partition, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", Key(kind, p), err)
	}
	return s.Write(kind, p, data)
}

// Close releases the underlying medium if it holds resources.
func (s *Store) Close() error {
	if c, ok := s.m.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

package event

import (
	"reflect"
	"testing"
	"time"

	"tableflip.dev/daypack/pkg/store"
)

type testConfig struct {
	path string
}

func (t testConfig) BasePath() string { return t.path }
func (t testConfig) Backend() string  { return store.BackendDiskv }

func newStore(t *testing.T) Store {
	t.Helper()
	s, err := store.Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load store: %v", err)
	}
	return Store{KV: s}
}

func TestListDefaultsToEmpty(t *testing.T) {
	s := newStore(t)
	events, err := s.List("u1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(events) != 0 {
		t.Fatalf("expected empty collection, got %v", events)
	}
}

func TestSaveAllListRoundTrip(t *testing.T) {
	s := newStore(t)
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	in := []Event{
		New("dentist", "2026-09-02", now),
		{ID: 42, Title: "standup", Date: "2026-09-01", Time: "09:00", Description: "daily"},
	}
	if err := s.SaveAll("u1", in); err != nil {
		t.Fatalf("save: %v", err)
	}

	out, err := s.List("u1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !reflect.DeepEqual(in, out) {
		t.Fatalf("round trip mismatch: %v != %v", in, out)
	}
}

func TestPartitionsDoNotShare(t *testing.T) {
	s := newStore(t)
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	if err := s.SaveAll("u1", []Event{New("mine", "2026-09-02", now)}); err != nil {
		t.Fatalf("save: %v", err)
	}

	other, err := s.List("u2")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(other) != 0 {
		t.Fatalf("partitions leaked: %v", other)
	}
}

func TestValidDate(t *testing.T) {
	good := []string{"2026-08-28", "2000-01-01", "1999-12-31"}
	for _, d := range good {
		if !ValidDate(d) {
			t.Errorf("expected %q to be valid", d)
		}
	}
	bad := []string{"", "today", "2026-13-01", "2026-8-28", "08/28/2026"}
	for _, d := range bad {
		if ValidDate(d) {
			t.Errorf("expected %q to be invalid", d)
		}
	}
}

func TestNewUsesTimestampID(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	e := New("dentist", "2026-09-02", now)
	if e.ID != uint64(now.UnixMilli()) {
		t.Fatalf("expected timestamp id, got %d", e.ID)
	}
	if e.Synced || e.RemoteID != "" {
		t.Fatalf("new events must start unsynced: %+v", e)
	}
}

package calsync

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"tableflip.dev/daypack/pkg/event"
	"tableflip.dev/daypack/pkg/identity"
	"tableflip.dev/daypack/pkg/stats"
	"tableflip.dev/daypack/pkg/store"
)

type testConfig struct {
	path string
}

func (t testConfig) BasePath() string { return t.path }
func (t testConfig) Backend() string  { return store.BackendDiskv }

func newFixture(t *testing.T) (*Reconciler, *store.Store) {
	t.Helper()
	s, err := store.Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load store: %v", err)
	}
	r := &Reconciler{
		Events: event.Store{KV: s},
		Ledger: stats.Ledger{Store: s},
		Remote: Simulated{Delay: time.Millisecond},
	}
	return r, s
}

func seedEvents(t *testing.T, s *store.Store, p store.Partition, n int) []event.Event {
	t.Helper()
	es := event.Store{KV: s}
	now := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)
	events := make([]event.Event, 0, n)
	for i := 0; i < n; i++ {
		e := event.New("local event", "2026-09-10", now.Add(time.Duration(i)*time.Second))
		events = append(events, e)
	}
	if err := es.SaveAll(p, events); err != nil {
		t.Fatalf("seed events: %v", err)
	}
	return events
}

func TestSyncPadsSparseCalendar(t *testing.T) {
	r, s := newFixture(t)
	sess := &identity.Session{ID: "u1", Name: "John Doe", Email: "johndoe@example.com"}
	seedEvents(t, s, sess.Partition(), 3)

	res, err := r.Sync(context.Background(), sess)
	if err != nil {
		t.Fatalf("sync: %v", err)
	}
	if len(res.Events) < 5 {
		t.Fatalf("expected at least 5 events, got %d", len(res.Events))
	}
	for _, e := range res.Events {
		if !e.Synced {
			t.Fatalf("event %d not marked synced", e.ID)
		}
		if !strings.HasPrefix(e.RemoteID, "remote_") {
			t.Fatalf("event %d has remote id %q", e.ID, e.RemoteID)
		}
	}
	if res.Added != len(res.Events)-3 {
		t.Fatalf("added = %d, want %d", res.Added, len(res.Events)-3)
	}
	got, err := r.Ledger.Get(sess.Partition())
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if got.EventsCreated != uint64(res.Added) {
		t.Fatalf("eventsCreated = %d, want exactly %d", got.EventsCreated, res.Added)
	}
	if r.State() != StateSynced {
		t.Fatalf("state = %v, want synced", r.State())
	}

	// The merged set was persisted.
	persisted, err := r.Events.List(sess.Partition())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(persisted) != len(res.Events) {
		t.Fatalf("persisted %d events, result had %d", len(persisted), len(res.Events))
	}
}

func TestSyncAlreadyRichCalendarAddsNothing(t *testing.T) {
	r, s := newFixture(t)
	sess := &identity.Session{ID: "u1"}
	seedEvents(t, s, sess.Partition(), 6)

	res, err := r.Sync(context.Background(), sess)
	if err != nil {
		t.Fatalf("sync: %v", err)
	}
	if res.Added != 0 {
		t.Fatalf("expected no fabricated events, got %d", res.Added)
	}
	if res.Stats.EventsCreated != 0 {
		t.Fatalf("stats must not move when nothing was added: %+v", res.Stats)
	}
}

func TestSyncAsGuestLeavesCollectionUntouched(t *testing.T) {
	r, s := newFixture(t)
	sess := &identity.Session{ID: "guest_123", Guest: true}
	seedEvents(t, s, sess.Partition(), 3)

	before, _, err := s.Read(store.KindEvents, sess.Partition())
	if err != nil {
		t.Fatalf("read before: %v", err)
	}

	if _, err := r.Sync(context.Background(), sess); !errors.Is(err, ErrGuestSession) {
		t.Fatalf("expected ErrGuestSession, got %v", err)
	}

	after, _, err := s.Read(store.KindEvents, sess.Partition())
	if err != nil {
		t.Fatalf("read after: %v", err)
	}
	if !bytes.Equal(before, after) {
		t.Fatal("guest sync mutated the stored collection")
	}
	if r.State() != StateNotSynced {
		t.Fatalf("state = %v, want not_synced", r.State())
	}
}

func TestSyncWithoutSession(t *testing.T) {
	r, _ := newFixture(t)
	if _, err := r.Sync(context.Background(), nil); !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected ErrNoSession, got %v", err)
	}
}

func TestSyncTimeoutFallsBackToNotSynced(t *testing.T) {
	r, s := newFixture(t)
	r.Remote = Simulated{Delay: time.Second}
	r.Timeout = 10 * time.Millisecond
	sess := &identity.Session{ID: "u1"}
	seedEvents(t, s, sess.Partition(), 2)

	before, _, err := s.Read(store.KindEvents, sess.Partition())
	if err != nil {
		t.Fatalf("read before: %v", err)
	}

	if _, err := r.Sync(context.Background(), sess); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
	if r.State() != StateNotSynced {
		t.Fatalf("state = %v, want not_synced", r.State())
	}

	after, _, err := s.Read(store.KindEvents, sess.Partition())
	if err != nil {
		t.Fatalf("read after: %v", err)
	}
	if !bytes.Equal(before, after) {
		t.Fatal("aborted sync mutated the stored collection")
	}
}

func TestInvalidateDropsSyncedState(t *testing.T) {
	r, s := newFixture(t)
	sess := &identity.Session{ID: "u1"}
	seedEvents(t, s, sess.Partition(), 3)

	if _, err := r.Sync(context.Background(), sess); err != nil {
		t.Fatalf("sync: %v", err)
	}
	if r.State() != StateSynced {
		t.Fatalf("state = %v, want synced", r.State())
	}
	r.Invalidate()
	if r.State() != StateNotSynced {
		t.Fatalf("state = %v, want not_synced after mutation", r.State())
	}
	// Invalidate is a no-op when already stale.
	r.Invalidate()
	if r.State() != StateNotSynced {
		t.Fatalf("state = %v", r.State())
	}
}

func TestSimulatedExchangeFabricatesFutureDates(t *testing.T) {
	now := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)
	remote := Simulated{Delay: time.Millisecond, Now: func() time.Time { return now }}
	merged, err := remote.Exchange(context.Background(), nil)
	if err != nil {
		t.Fatalf("exchange: %v", err)
	}
	if len(merged) != 5 {
		t.Fatalf("expected padding up to 5 events, got %d", len(merged))
	}
	for _, e := range merged {
		if e.Date <= "2026-08-28" {
			t.Fatalf("fabricated event not in the future: %q", e.Date)
		}
		if !e.Synced || e.RemoteID == "" {
			t.Fatalf("fabricated event missing sync markers: %+v", e)
		}
	}
}

// counterFailMedium rejects writes to the stats namespace, everything else
// passes through.
type counterFailMedium struct {
	store.Medium
}

func (m counterFailMedium) Write(key string, value []byte) error {
	if strings.HasPrefix(key, string(store.KindStats)) {
		return errors.New("counter write refused")
	}
	return m.Medium.Write(key, value)
}

func TestSyncCounterFailureKeepsMergedCollection(t *testing.T) {
	dir := t.TempDir()
	kv := store.New(counterFailMedium{Medium: store.NewDiskv(dir)})
	r := &Reconciler{
		Events: event.Store{KV: kv},
		Ledger: stats.Ledger{Store: kv},
		Remote: Simulated{Delay: time.Millisecond},
	}
	sess := &identity.Session{ID: "u1", Name: "John Doe", Email: "johndoe@example.com"}

	_, err := r.Sync(context.Background(), sess)
	if err == nil {
		t.Fatal("expected counter write failure to surface")
	}
	if r.State() != StateNotSynced {
		t.Fatalf("state = %v, want not_synced", r.State())
	}

	// The collection write is the commit point; the merged set stands even
	// though the pass reported failure.
	events, err := (event.Store{KV: kv}).List(sess.Partition())
	if err != nil {
		t.Fatalf("list events: %v", err)
	}
	if len(events) < 5 {
		t.Fatalf("expected merged collection persisted, got %d events", len(events))
	}
	for _, e := range events {
		if !e.Synced {
			t.Fatalf("event %d not marked synced", e.ID)
		}
	}
}

func TestStateString(t *testing.T) {
	if StateNotSynced.String() != "not_synced" ||
		StateSyncing.String() != "syncing" ||
		StateSynced.String() != "synced" {
		t.Fatal("unexpected state names")
	}
}

package task

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
	tasks, err := s.List("u1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(tasks) != 0 {
		t.Fatalf("expected empty collection, got %v", tasks)
	}
}

func TestSaveAllListRoundTrip(t *testing.T) {
	s := newStore(t)
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	tasks := []Task{
		New("write report", now),
		New("review pull request", now.Add(time.Second)),
	}
	tasks[1].Completed = true

	if err := s.SaveAll("u1", tasks); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := s.List("u1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !reflect.DeepEqual(got, tasks) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, tasks)
	}
}

func TestCollectionsIsolatedPerPartition(t *testing.T) {
	s := newStore(t)
	now := time.Now()
	if err := s.SaveAll("u1", []Task{New("mine", now)}); err != nil {
		t.Fatalf("save: %v", err)
	}
	other, err := s.List("u2")
	if err != nil {
		t.Fatalf("list u2: %v", err)
	}
	if len(other) != 0 {
		t.Fatalf("u2 saw u1's tasks: %v", other)
	}
}

func TestNewUsesCreationTimestampID(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	tk := New("anything", now)
	if tk.ID != uint64(now.UnixMilli()) {
		t.Fatalf("expected id %d, got %d", now.UnixMilli(), tk.ID)
	}
	if tk.Completed {
		t.Fatal("new tasks start incomplete")
	}
}

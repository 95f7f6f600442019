package info

import (
	"context"
	"testing"
	"time"

	"tableflip.dev/daypack/pkg/app"
	"tableflip.dev/daypack/pkg/store"
)

type testConfig struct {
	path string
}

func (t testConfig) BasePath() string { return t.path }
func (t testConfig) Backend() string  { return store.BackendDiskv }

func newService(t *testing.T) *app.Service {
	t.Helper()
	svc, err := app.Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load service: %v", err)
	}
	return svc
}

func TestInfoIncludesFocusSessions(t *testing.T) {
	svc := newService(t)

	started := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)
	if _, err := svc.RecordFocus(started, 25); err != nil {
		t.Fatalf("record focus: %v", err)
	}

	s := Info{Service: svc}
	if err := s.Do(context.Background()); err != nil {
		t.Fatalf("info: %v", err)
	}

	sessions, err := svc.FocusSessions()
	if err != nil {
		t.Fatalf("focus sessions: %v", err)
	}
	if len(sessions) != 1 || sessions[0].Minutes != 25 {
		t.Fatalf("unexpected session log: %v", sessions)
	}
}

func TestInfoWithoutService(t *testing.T) {
	s := Info{}
	if err := s.Do(context.Background()); err == nil {
		t.Fatal("expected error without a service")
	}
}

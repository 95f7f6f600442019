package focus

import (
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/timer"
	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/daypack/pkg/stats"
)

type fakeCommitter struct {
	minutes  uint64
	sessions []uint64
}

func (f *fakeCommitter) AddFocusMinutes(minutes uint64) (stats.Stats, error) {
	f.minutes += minutes
	return stats.Stats{FocusMinutes: f.minutes}, nil
}

func (f *fakeCommitter) LogFocusSession(_ time.Time, minutes uint64) error {
	f.sessions = append(f.sessions, minutes)
	return nil
}

func tick(t *testing.T, m tea.Model, id int, n int) tea.Model {
	t.Helper()
	for i := 0; i < n; i++ {
		m, _ = m.Update(timer.TickMsg{ID: id})
	}
	return m
}

func TestCommitsWholeMinutesAsTheyElapse(t *testing.T) {
	fc := &fakeCommitter{}
	m := New(3*time.Minute, time.Now(), fc)
	id := m.timer.ID()

	var model tea.Model = m
	model = tick(t, model, id, 59)
	if fc.minutes != 0 {
		t.Fatalf("committed %d minutes before one elapsed", fc.minutes)
	}
	model = tick(t, model, id, 1)
	if fc.minutes != 1 {
		t.Fatalf("expected 1 committed minute, got %d", fc.minutes)
	}
	model = tick(t, model, id, 60)
	if fc.minutes != 2 {
		t.Fatalf("expected 2 committed minutes, got %d", fc.minutes)
	}
	_ = model
}

func TestQuitLogsPartialSitting(t *testing.T) {
	fc := &fakeCommitter{}
	m := New(25*time.Minute, time.Now(), fc)
	id := m.timer.ID()

	var model tea.Model = m
	model = tick(t, model, id, 120) // two minutes in
	model, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if len(fc.sessions) != 1 || fc.sessions[0] != 2 {
		t.Fatalf("expected a 2-minute session logged, got %v", fc.sessions)
	}
	if fc.minutes != 2 {
		t.Fatalf("quit must not double-commit minutes, got %d", fc.minutes)
	}
	_ = model
}

func TestQuitWithNothingElapsedLogsNothing(t *testing.T) {
	fc := &fakeCommitter{}
	m := New(25*time.Minute, time.Now(), fc)

	var model tea.Model = m
	if _, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}); cmd == nil {
		t.Fatal("expected quit command")
	}
	if len(fc.sessions) != 0 {
		t.Fatalf("expected no session logged, got %v", fc.sessions)
	}
}

func TestTimeoutFinishesSitting(t *testing.T) {
	fc := &fakeCommitter{}
	m := New(2*time.Minute, time.Now(), fc)
	id := m.timer.ID()

	var model tea.Model = m
	model = tick(t, model, id, 120)
	model, cmd := model.Update(timer.TimeoutMsg{ID: id})
	if cmd == nil {
		t.Fatal("expected quit command on timeout")
	}
	if fc.minutes != 2 {
		t.Fatalf("expected 2 minutes committed, got %d", fc.minutes)
	}
	if len(fc.sessions) != 1 || fc.sessions[0] != 2 {
		t.Fatalf("expected a 2-minute session logged, got %v", fc.sessions)
	}
	_ = model
}

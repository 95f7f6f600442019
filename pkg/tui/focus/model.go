// Package focus is the interactive countdown timer. Whole elapsed minutes are
// committed to the stats ledger as they pass, so an interrupted sitting still
// counts the time that was actually spent.
package focus

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/timer"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/daypack/pkg/stats"
	"tableflip.dev/daypack/pkg/timeutil"
)

// Committer receives the timer's stat commits. *app.Service satisfies it.
type Committer interface {
	AddFocusMinutes(minutes uint64) (stats.Stats, error)
	LogFocusSession(startedAt time.Time, minutes uint64) error
}

var (
	clockStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	doneStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	helpStyle  = lipgloss.NewStyle().Faint(true)
)

type Model struct {
	timer     timer.Model
	committer Committer

	total     time.Duration
	startedAt time.Time
	committed uint64

	done     bool
	quitting bool
	err      error
}

// New builds a timer for one sitting of the given length.
func New(total time.Duration, startedAt time.Time, committer Committer) Model {
	return Model{
		timer:     timer.NewWithInterval(total, time.Second),
		committer: committer,
		total:     total,
		startedAt: startedAt,
	}
}

func (m Model) Init() tea.Cmd {
	return m.timer.Init()
}

// Err reports a failed commit; the program exits non-zero when set.
func (m Model) Err() error {
	return m.err
}

// elapsed is how much of the sitting has passed.
func (m Model) elapsed() time.Duration {
	return m.total - m.timer.Timeout
}

// commitElapsed pushes any uncommitted whole minutes to the ledger.
func (m *Model) commitElapsed() {
	whole := timeutil.WholeMinutes(m.elapsed())
	if whole <= m.committed {
		return
	}
	delta := whole - m.committed
	if _, err := m.committer.AddFocusMinutes(delta); err != nil {
		m.err = err
		return
	}
	m.committed = whole
}

// finish logs the sitting. Zero-minute sittings are not logged.
func (m *Model) finish() {
	if m.committed == 0 {
		return
	}
	if err := m.committer.LogFocusSession(m.startedAt, m.committed); err != nil {
		m.err = err
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case timer.TickMsg:
		var cmd tea.Cmd
		m.timer, cmd = m.timer.Update(msg)
		m.commitElapsed()
		if m.err != nil {
			m.quitting = true
			return m, tea.Quit
		}
		return m, cmd

	case timer.StartStopMsg:
		var cmd tea.Cmd
		m.timer, cmd = m.timer.Update(msg)
		return m, cmd

	case timer.TimeoutMsg:
		m.done = true
		m.commitElapsed()
		m.finish()
		return m, tea.Quit

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			m.finish()
			return m, tea.Quit
		case " ", "p":
			return m, m.timer.Toggle()
		}
	}
	return m, nil
}

func (m Model) View() string {
	if m.err != nil {
		return fmt.Sprintf("focus: %v\n", m.err)
	}
	if m.done {
		return doneStyle.Render("Focus session complete.") +
			helpStyle.Render(fmt.Sprintf("  %d minutes recorded.\n", m.committed))
	}
	if m.quitting {
		return helpStyle.Render(fmt.Sprintf("Stopped with %d minutes recorded.\n", m.committed))
	}

	remaining := m.timer.Timeout
	clock := fmt.Sprintf("%02d:%02d", int(remaining.Minutes()), int(remaining.Seconds())%60)

	state := "focusing"
	if !m.timer.Running() {
		state = "paused"
	}

	return clockStyle.Render(clock) +
		helpStyle.Render(fmt.Sprintf("  %s\n\nspace pause · q quit\n", state))
}

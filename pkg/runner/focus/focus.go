// Package focus provides the focus-timer runners.
package focus

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/daypack/pkg/app"
	"tableflip.dev/daypack/pkg/printers"
	focusui "tableflip.dev/daypack/pkg/tui/focus"
)

// Run starts the interactive countdown timer.
type Run struct {
	Duration time.Duration
	Service  *app.Service
}

func (n *Run) Do(_ context.Context) error {
	if n.Service == nil {
		return errors.New("can not focus, no service")
	}

	model := focusui.New(n.Duration, time.Now(), n.Service)
	out, err := tea.NewProgram(model).Run()
	if err != nil {
		return err
	}
	if m, ok := out.(focusui.Model); ok && m.Err() != nil {
		return m.Err()
	}

	s, err := n.Service.Stats()
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.Title("Lifetime Stats")
	pp.Stats(s)
	return nil
}

// Log records an already-finished sitting without running the timer.
type Log struct {
	Minutes uint64
	Service *app.Service
}

func (n *Log) Do(_ context.Context) error {
	if n.Service == nil {
		return errors.New("can not log, no service")
	}
	if n.Minutes == 0 {
		return errors.New("nothing to log, sitting was under a minute")
	}

	started := time.Now().Add(-time.Duration(n.Minutes) * time.Minute)
	s, err := n.Service.RecordFocus(started, n.Minutes)
	if err != nil {
		return err
	}
	fmt.Printf("Logged %d focus minutes.\n", n.Minutes)
	pp := printers.PrettyPrint{}
	pp.Title("Lifetime Stats")
	pp.Stats(s)
	return nil
}

// Package info provides the stats summary runner.
package info

import (
	"context"
	"errors"

	"tableflip.dev/daypack/pkg/app"
	"tableflip.dev/daypack/pkg/printers"
)

// Info prints the active session and its lifetime stats.
type Info struct {
	Service *app.Service
}

func (n *Info) Do(_ context.Context) error {
	if n.Service == nil {
		return errors.New("can not get info, no service")
	}

	pp := printers.PrettyPrint{}
	pp.Session(n.Service.Session())
	pp.NewLine()

	s, err := n.Service.Stats()
	if err != nil {
		return err
	}
	pp.Title("Lifetime Stats")
	pp.Stats(s)

	sessions, err := n.Service.FocusSessions()
	if err != nil {
		return err
	}
	pp.Title("Focus Sessions")
	pp.FocusSessions(sessions)
	return nil
}

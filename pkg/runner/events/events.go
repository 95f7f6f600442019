// Package events provides runners for the calendar, including the sync pass.
package events

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/daypack/pkg/app"
	"tableflip.dev/daypack/pkg/printers"
)

const layoutISO = "2006-01-02"

// today resolves an empty date argument to the current day.
func today(date string) string {
	if date == "" || date == "today" {
		return time.Now().Format(layoutISO)
	}
	return date
}

// Add appends a calendar event.
type Add struct {
	Title       string
	Date        string
	Time        string
	Description string
	ShowID      bool
	Service     *app.Service
}

func (n *Add) Do(_ context.Context) error {
	if n.Service == nil {
		return errors.New("can not add, no service")
	}
	if _, err := n.Service.AddEvent(n.Title, today(n.Date), n.Time, n.Description); err != nil {
		return err
	}
	all, err := n.Service.ListEvents()
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.Title("Calendar")
	pp.Events(all...)
	return nil
}

// List prints the collection.
type List struct {
	ShowID  bool
	Service *app.Service
}

func (n *List) Do(_ context.Context) error {
	if n.Service == nil {
		return errors.New("can not list, no service")
	}
	all, err := n.Service.ListEvents()
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.Title("Calendar")
	pp.Events(all...)
	return nil
}

// Remove filters an event out of the collection.
type Remove struct {
	ID      uint64
	Service *app.Service
}

func (n *Remove) Do(_ context.Context) error {
	if n.Service == nil {
		return errors.New("can not remove, no service")
	}
	all, err := n.Service.RemoveEvent(n.ID)
	if err != nil {
		return err
	}
	fmt.Println("Event removed.")
	pp := printers.PrettyPrint{}
	pp.Title("Calendar")
	pp.Events(all...)
	return nil
}

// Sync reconciles the local calendar with the remote source.
type Sync struct {
	Service *app.Service
}

func (n *Sync) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not sync, no service")
	}

	fmt.Println("Syncing calendar...")
	res, err := n.Service.Sync(ctx)
	if err != nil {
		return err
	}

	switch res.Added {
	case 0:
		fmt.Println("Calendar synced; nothing new from remote.")
	case 1:
		fmt.Println("Calendar synced; 1 event imported from remote.")
	default:
		fmt.Printf("Calendar synced; %d events imported from remote.\n", res.Added)
	}

	pp := printers.PrettyPrint{}
	pp.Title("Calendar")
	pp.Events(res.Events...)
	return nil
}

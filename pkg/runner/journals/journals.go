// Package journals provides runners for daily journal entries and the
// monthly archive.
package journals

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

// Write upserts the entry for a date.
type Write struct {
	Date    string
	Content string
	Service *app.Service
}

func (n *Write) Do(_ context.Context) error {
	if n.Service == nil {
		return errors.New("can not write, no service")
	}
	e, err := n.Service.WriteJournal(today(n.Date), n.Content)
	if err != nil {
		return err
	}
	fmt.Println("Journal entry saved.")
	pp := printers.PrettyPrint{}
	pp.Entry(&e)
	return nil
}

// Show prints the entry for a date.
type Show struct {
	Date    string
	Service *app.Service
}

func (n *Show) Do(_ context.Context) error {
	if n.Service == nil {
		return errors.New("can not show, no service")
	}
	e, err := n.Service.JournalEntry(today(n.Date))
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	if e == nil {
		pp.Title(today(n.Date))
	}
	pp.Entry(e)
	return nil
}

// List prints every entry for the active partition.
type List struct {
	Service *app.Service
}

func (n *List) Do(_ context.Context) error {
	if n.Service == nil {
		return errors.New("can not list, no service")
	}
	entries, err := n.Service.JournalEntries()
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.Title("Journal")
	if len(entries) == 0 {
		pp.Entry(nil)
		return nil
	}
	for i := range entries {
		pp.Entry(&entries[i])
	}
	return nil
}

// Archive prints past months' entries grouped by month.
type Archive struct {
	Service *app.Service
}

func (n *Archive) Do(_ context.Context) error {
	if n.Service == nil {
		return errors.New("can not archive, no service")
	}
	buckets, err := n.Service.ArchivedJournal()
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.Title("Journal Archives")
	pp.NewLine()
	pp.Archive(buckets)
	return nil
}

package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/daypack/pkg/event"
	"tableflip.dev/daypack/pkg/identity"
	"tableflip.dev/daypack/pkg/journal"
	"tableflip.dev/daypack/pkg/stats"
	"tableflip.dev/daypack/pkg/task"
)

type PrettyPrint struct {
	ShowID bool
}

var (
	spacing = strings.Repeat(" ", len("1787918400000  "))
)

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) none() {
	f := color.New(color.Faint, color.Italic)
	if pp.ShowID {
		_, _ = f.Print(spacing)
	}
	_, _ = f.Print(" none\n\n")
}

func (pp *PrettyPrint) id(id uint64) {
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	s := fmt.Sprintf("%d", id)
	pad := len(spacing) - len(s)
	if pad < 1 {
		pad = 1
	}
	_, _ = y.Print(s)
	_, _ = y.Print(strings.Repeat(" ", pad))
}

// Tasks prints the collection in insertion order, striking completed titles.
func (pp *PrettyPrint) Tasks(tasks ...task.Task) {
	if len(tasks) == 0 {
		pp.none()
		return
	}

	t := color.New()
	done := color.New(color.Faint, color.CrossedOut)

	for _, tk := range tasks {
		if pp.ShowID {
			pp.id(tk.ID)
		}
		if tk.Completed {
			_, _ = t.Print("✘ ")
			_, _ = done.Println(tk.Title)
		} else {
			_, _ = t.Printf("● %s\n", tk.Title)
		}
	}
	_, _ = t.Println("")
}

// Events prints the collection as a table, flagging synced records.
func (pp *PrettyPrint) Events(events ...event.Event) {
	if len(events) == 0 {
		pp.none()
		return
	}

	table := uitable.New()
	table.MaxColWidth = 50
	if pp.ShowID {
		table.AddRow("ID", "DATE", "TIME", "TITLE", "SYNCED")
	} else {
		table.AddRow("DATE", "TIME", "TITLE", "SYNCED")
	}
	for _, e := range events {
		synced := ""
		if e.Synced {
			synced = "✔"
		}
		if pp.ShowID {
			table.AddRow(e.ID, e.Date, e.Time, e.Title, synced)
		} else {
			table.AddRow(e.Date, e.Time, e.Title, synced)
		}
	}
	fmt.Println(table)
	fmt.Println("")
}

// Entry prints one journal entry with its date as the heading.
func (pp *PrettyPrint) Entry(e *journal.Entry) {
	if e == nil {
		pp.none()
		return
	}
	pp.Title(e.Date)
	fmt.Println(e.Content)
	fmt.Println("")
}

// Archive prints the month buckets newest first.
func (pp *PrettyPrint) Archive(buckets map[string][]journal.Entry) {
	if len(buckets) == 0 {
		pp.none()
		return
	}
	c := color.New(color.Faint)
	for _, month := range journal.MonthKeys(buckets) {
		entries := buckets[month]
		switch len(entries) {
		case 1:
			pp.Title(fmt.Sprintf("%s - 1 entry", month))
		default:
			pp.Title(fmt.Sprintf("%s - %d entries", month, len(entries)))
		}
		for _, e := range entries {
			preview := e.Content
			if len(preview) > 60 {
				preview = preview[:60] + "…"
			}
			_, _ = c.Printf("  %s  ", e.Date)
			fmt.Println(preview)
		}
		fmt.Println("")
	}
}

// Stats prints the lifetime counters.
func (pp *PrettyPrint) Stats(s stats.Stats) {
	table := uitable.New()
	table.AddRow("Focus minutes:", s.FocusMinutes)
	table.AddRow("Tasks completed:", s.TasksCompleted)
	table.AddRow("Events created:", s.EventsCreated)
	fmt.Println(table)
	fmt.Println("")
}

// FocusSessions prints the focus session log, newest first.
func (pp *PrettyPrint) FocusSessions(sessions []stats.FocusSession) {
	if len(sessions) == 0 {
		pp.none()
		return
	}
	table := uitable.New()
	table.AddRow("STARTED", "MINUTES")
	for i := len(sessions) - 1; i >= 0; i-- {
		table.AddRow(sessions[i].StartedAt, sessions[i].Minutes)
	}
	fmt.Println(table)
	fmt.Println("")
}

// Session prints who is logged in.
func (pp *PrettyPrint) Session(sess *identity.Session) {
	if sess == nil {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Println("not logged in")
		return
	}
	b := color.New(color.Bold)
	if sess.Guest {
		_, _ = b.Printf("%s (guest)\n", sess.Name)
		return
	}
	_, _ = b.Println(sess.Name)
	fmt.Println(sess.Email)
}

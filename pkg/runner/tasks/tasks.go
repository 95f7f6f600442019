// Package tasks provides runners for the task list.
package tasks

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/daypack/pkg/app"
	"tableflip.dev/daypack/pkg/printers"
)

// Add appends a task and reprints the collection.
type Add struct {
	Title   string
	ShowID  bool
	Service *app.Service
}

func (n *Add) Do(_ context.Context) error {
	if n.Service == nil {
		return errors.New("can not add, no service")
	}
	_, all, err := n.Service.AddTask(n.Title)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.Title("Tasks")
	pp.Tasks(all...)
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
	all, err := n.Service.ListTasks()
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.Title("Tasks")
	pp.Tasks(all...)
	return nil
}

// Done toggles completion for a task id.
type Done struct {
	ID      uint64
	Service *app.Service
}

func (n *Done) Do(_ context.Context) error {
	if n.Service == nil {
		return errors.New("can not complete, no service")
	}
	all, err := n.Service.ToggleTask(n.ID)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.Title("Tasks")
	pp.Tasks(all...)
	return nil
}

// Remove filters a task out of the collection.
type Remove struct {
	ID      uint64
	Service *app.Service
}

func (n *Remove) Do(_ context.Context) error {
	if n.Service == nil {
		return errors.New("can not remove, no service")
	}
	all, err := n.Service.RemoveTask(n.ID)
	if err != nil {
		return err
	}
	fmt.Println("Task removed.")
	pp := printers.PrettyPrint{}
	pp.Title("Tasks")
	pp.Tasks(all...)
	return nil
}

// Clear replaces the collection with the empty one.
type Clear struct {
	Service *app.Service
}

func (n *Clear) Do(_ context.Context) error {
	if n.Service == nil {
		return errors.New("can not clear, no service")
	}
	if err := n.Service.ClearTasks(); err != nil {
		return err
	}
	fmt.Println("All tasks cleared.")
	return nil
}

// Package task stores the per-partition task list.
package task

import (
	"time"

	"tableflip.dev/daypack/pkg/store"
)

type Task struct {
	ID        uint64 `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// New mints a task. The id is the creation time in unix milliseconds; two
// tasks minted in the same millisecond collide, a documented risk the caller
// accepts.
func New(title string, now time.Time) Task {
	return Task{
		ID:    uint64(now.UnixMilli()),
		Title: title,
	}
}

// Store reads and replaces a partition's task collection. It performs no
// diffing; callers build the complete next collection before calling SaveAll.
type Store struct {
	KV *store.Store
}

// List returns the collection in insertion order. A partition with no tasks
// yet yields an empty list, never an error.
func (s Store) List(p store.Partition) ([]Task, error) {
	tasks := make([]Task, 0)
	if _, err := s.KV.ReadJSON(store.KindTasks, p, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// SaveAll replaces the whole collection in a single write.
func (s Store) SaveAll(p store.Partition, tasks []Task) error {
	return s.KV.WriteJSON(store.KindTasks, p, tasks)
}

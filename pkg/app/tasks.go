package app

import (
	"errors"

	"tableflip.dev/daypack/pkg/stats"
	"tableflip.dev/daypack/pkg/task"
)

var ErrTaskNotFound = errors.New("app: task not found")

// ListTasks returns the active partition's tasks in insertion order.
func (s *Service) ListTasks() ([]task.Task, error) {
	return s.Tasks.List(s.partition())
}

// AddTask appends a new task and returns it with the updated collection.
func (s *Service) AddTask(title string) (task.Task, []task.Task, error) {
	p := s.partition()
	tasks, err := s.Tasks.List(p)
	if err != nil {
		return task.Task{}, nil, err
	}
	t := task.New(title, s.now())
	tasks = append(tasks, t)
	if err := s.Tasks.SaveAll(p, tasks); err != nil {
		return task.Task{}, nil, err
	}
	return t, tasks, nil
}

// ToggleTask flips the completed flag for the task id. Completing a task adds
// one to the lifetime counter; un-completing does not subtract, the ledger has
// no decrement.
func (s *Service) ToggleTask(id uint64) ([]task.Task, error) {
	p := s.partition()
	tasks, err := s.Tasks.List(p)
	if err != nil {
		return nil, err
	}
	completed := false
	found := false
	for i := range tasks {
		if tasks[i].ID == id {
			tasks[i].Completed = !tasks[i].Completed
			completed = tasks[i].Completed
			found = true
			break
		}
	}
	if !found {
		return nil, ErrTaskNotFound
	}
	if err := s.Tasks.SaveAll(p, tasks); err != nil {
		return nil, err
	}
	if completed {
		cur, err := s.Ledger.Get(p)
		if err != nil {
			return nil, err
		}
		if _, err := s.Ledger.Update(p, stats.Patch{
			TasksCompleted: stats.Set(cur.TasksCompleted + 1),
		}); err != nil {
			return nil, err
		}
	}
	return tasks, nil
}

// RemoveTask filters the task out of the collection.
func (s *Service) RemoveTask(id uint64) ([]task.Task, error) {
	p := s.partition()
	tasks, err := s.Tasks.List(p)
	if err != nil {
		return nil, err
	}
	next := tasks[:0]
	found := false
	for _, t := range tasks {
		if t.ID == id {
			found = true
			continue
		}
		next = append(next, t)
	}
	if !found {
		return nil, ErrTaskNotFound
	}
	if err := s.Tasks.SaveAll(p, next); err != nil {
		return nil, err
	}
	return next, nil
}

// ClearTasks replaces the collection with the empty one.
func (s *Service) ClearTasks() error {
	return s.Tasks.SaveAll(s.partition(), []task.Task{})
}

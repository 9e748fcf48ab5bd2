// Package memory implements an in-memory task Repository, used by tests
// and ephemeral sessions. Nothing is ever persisted.
package memory

import "github.com/dukaforge/tidy/pkg/types"

// Repository keeps tasks in a slice in insertion order.
type Repository struct {
	tasks []types.Task
}

// New returns an empty in-memory repository.
func New() *Repository {
	return &Repository{}
}

// NewWith returns a repository seeded with copies of the given tasks.
func NewWith(tasks []types.Task) *Repository {
	r := New()
	r.SetAll(tasks)
	return r
}

// Add appends a task.
func (r *Repository) Add(t types.Task) {
	r.tasks = append(r.tasks, t.Clone())
}

// List returns copies of all tasks in insertion order.
func (r *Repository) List() []types.Task {
	out := make([]types.Task, len(r.tasks))
	for i, t := range r.tasks {
		out[i] = t.Clone()
	}
	return out
}

// Get returns the task with exactly the given ID.
func (r *Repository) Get(id types.TaskID) (types.Task, bool) {
	for _, t := range r.tasks {
		if t.ID == id {
			return t.Clone(), true
		}
	}
	return types.Task{}, false
}

// Replace overwrites the task with the same ID. It never inserts.
func (r *Repository) Replace(t types.Task) bool {
	for i := range r.tasks {
		if r.tasks[i].ID == t.ID {
			r.tasks[i] = t.Clone()
			return true
		}
	}
	return false
}

// Remove deletes the task with the given ID.
func (r *Repository) Remove(id types.TaskID) bool {
	for i := range r.tasks {
		if r.tasks[i].ID == id {
			r.tasks = append(r.tasks[:i], r.tasks[i+1:]...)
			return true
		}
	}
	return false
}

// SetAll replaces the entire collection.
func (r *Repository) SetAll(tasks []types.Task) {
	r.tasks = make([]types.Task, len(tasks))
	for i, t := range tasks {
		r.tasks[i] = t.Clone()
	}
}

// Save is a no-op; the in-memory repository satisfies the Store contract
// so services under test can exercise explicit-persist flows.
func (r *Repository) Save() error {
	return nil
}

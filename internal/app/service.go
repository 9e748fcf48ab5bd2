// Package app composes a Repository with the task domain to expose the
// add/edit/complete/delete/list/import use-cases, the list query engine,
// and partial-identifier resolution.
//
// No use-case persists implicitly: callers invoke Store.Save themselves,
// which lets several mutations (seeding, bulk import) batch under one
// durable write.
package app

import "github.com/dukaforge/tidy/pkg/types"

// Service is the orchestration layer over an injected Repository. It
// never depends on a concrete backend.
type Service struct {
	repo types.Repository
}

// NewService wraps the given repository.
func NewService(repo types.Repository) *Service {
	return &Service{repo: repo}
}

// Add constructs a fresh task from the validated title and stores it.
func (s *Service) Add(title types.Title) types.Task {
	t := types.NewTask(title)
	s.repo.Add(t)
	return t
}

// Insert stores an already-built task, used by seeding and import paths.
func (s *Service) Insert(t types.Task) {
	s.repo.Add(t)
}

// InsertMany stores several pre-built tasks in order.
func (s *Service) InsertMany(tasks []types.Task) {
	for _, t := range tasks {
		s.repo.Add(t)
	}
}

// List returns all tasks in insertion order.
func (s *Service) List() []types.Task {
	return s.repo.List()
}

// Get returns the task with exactly the given ID.
func (s *Service) Get(id types.TaskID) (types.Task, bool) {
	return s.repo.Get(id)
}

// Resolve maps free-form identifier input to a TaskID against the current
// collection.
func (s *Service) Resolve(input string) (types.TaskID, error) {
	return ResolveID(input, s.repo.List())
}

// Edit fetches the task, applies the patch, and writes it back. Returns
// NotFoundError if no task has the ID, or if it vanished between the
// fetch and the replace.
func (s *Service) Edit(id types.TaskID, patch types.TaskPatch) (types.Task, error) {
	t, ok := s.repo.Get(id)
	if !ok {
		return types.Task{}, &NotFoundError{Input: id.Short()}
	}
	patch.Apply(&t)
	if !s.repo.Replace(t) {
		return types.Task{}, &NotFoundError{Input: id.Short()}
	}
	return t, nil
}

// MarkDone transitions the task to Done. A missing task yields
// NotFoundError; an already-done task yields ErrAlreadyDone with the
// stored completion instant untouched.
func (s *Service) MarkDone(id types.TaskID) (types.Task, error) {
	t, ok := s.repo.Get(id)
	if !ok {
		return types.Task{}, &NotFoundError{Input: id.Short()}
	}
	if err := t.MarkDone(); err != nil {
		return types.Task{}, err
	}
	if !s.repo.Replace(t) {
		return types.Task{}, &NotFoundError{Input: id.Short()}
	}
	return t, nil
}

// MarkOpen transitions the task back to Open. A missing task yields
// NotFoundError; an already-open task yields ErrAlreadyOpen.
func (s *Service) MarkOpen(id types.TaskID) (types.Task, error) {
	t, ok := s.repo.Get(id)
	if !ok {
		return types.Task{}, &NotFoundError{Input: id.Short()}
	}
	if err := t.MarkOpen(); err != nil {
		return types.Task{}, err
	}
	if !s.repo.Replace(t) {
		return types.Task{}, &NotFoundError{Input: id.Short()}
	}
	return t, nil
}

// Delete removes the task. Returns NotFoundError on a miss.
func (s *Service) Delete(id types.TaskID) error {
	if !s.repo.Remove(id) {
		return &NotFoundError{Input: id.Short()}
	}
	return nil
}

// SetAll wholesale-replaces the collection, used by bulk import.
func (s *Service) SetAll(tasks []types.Task) {
	s.repo.SetAll(tasks)
}

package types

import "time"

// Task is a single trackable unit of work.
//
// Invariant: UpdatedAt is never earlier than CreatedAt. A newly constructed
// task has both equal. Every mutation (status transition or patch
// application) refreshes UpdatedAt.
type Task struct {
	ID        TaskID
	Title     Title
	Notes     *Notes // optional
	Project   ProjectName
	Tags      []Tag // normalized set: sorted, deduplicated
	Status    Status
	Priority  Priority
	Due       *DueAt // optional
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewTask creates an open task with a fresh ID, the current instant for
// both timestamps, project Inbox, priority P3, and no notes, tags, or due
// date.
func NewTask(title Title) Task {
	now := time.Now().UTC()
	return Task{
		ID:        NewTaskID(),
		Title:     title,
		Project:   InboxProject(),
		Status:    StatusOpen(),
		Priority:  DefaultPriority,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// MarkDone transitions Open -> Done at the current instant and refreshes
// UpdatedAt. Returns ErrAlreadyDone, leaving the task unchanged, if the
// task is already done.
func (t *Task) MarkDone() error {
	if t.Status.IsDone() {
		return ErrAlreadyDone
	}
	now := time.Now().UTC()
	t.Status = StatusDone(now)
	t.UpdatedAt = now
	return nil
}

// MarkOpen transitions Done -> Open and refreshes UpdatedAt. Returns
// ErrAlreadyOpen, leaving the task unchanged, if the task is already open.
func (t *Task) MarkOpen() error {
	if !t.Status.IsDone() {
		return ErrAlreadyOpen
	}
	t.Status = StatusOpen()
	t.UpdatedAt = time.Now().UTC()
	return nil
}

// IsOverdue reports whether the task is open, has a due instant, and that
// instant is before now. Done tasks are never overdue.
func (t *Task) IsOverdue(now time.Time) bool {
	if t.Status.IsDone() || t.Due == nil {
		return false
	}
	return t.Due.Time().Before(now)
}

// Clone returns a deep copy. Repositories hand out clones so callers can
// never mutate backend-held state through aliasing.
func (t Task) Clone() Task {
	cp := t
	if t.Notes != nil {
		n := *t.Notes
		cp.Notes = &n
	}
	if t.Due != nil {
		d := *t.Due
		cp.Due = &d
	}
	if t.Tags != nil {
		cp.Tags = make([]Tag, len(t.Tags))
		copy(cp.Tags, t.Tags)
	}
	return cp
}

package types

import "time"

// changeOp discriminates the states of a patch field.
type changeOp int

const (
	opUnchanged changeOp = iota
	opSet
	opClear
)

// Change is a two-state update instruction for a required field: leave it
// untouched, or set a new value. The zero value means unchanged.
type Change[T any] struct {
	op  changeOp
	val T
}

// SetTo returns a Change that replaces the field with v.
func SetTo[T any](v T) Change[T] {
	return Change[T]{op: opSet, val: v}
}

// Get returns the new value and true when the field is being set.
func (c Change[T]) Get() (T, bool) {
	return c.val, c.op == opSet
}

// OptChange is a tri-state update instruction for an optional field:
// unchanged, clear (remove the value), or set. The three states keep
// "do not modify" distinct from "remove" distinct from "replace".
// The zero value means unchanged.
type OptChange[T any] struct {
	op  changeOp
	val T
}

// OptSetTo returns an OptChange that replaces the field with v.
func OptSetTo[T any](v T) OptChange[T] {
	return OptChange[T]{op: opSet, val: v}
}

// OptClear returns an OptChange that removes the field's value.
func OptClear[T any]() OptChange[T] {
	return OptChange[T]{op: opClear}
}

// IsUnchanged reports whether the field should be left untouched.
func (c OptChange[T]) IsUnchanged() bool { return c.op == opUnchanged }

// IsClear reports whether the field's value should be removed.
func (c OptChange[T]) IsClear() bool { return c.op == opClear }

// Get returns the new value and true when the field is being set.
func (c OptChange[T]) Get() (T, bool) {
	return c.val, c.op == opSet
}

// TaskPatch is a per-field update instruction for partial edits. Fields in
// the unchanged state are not touched; Clear applies only to the optional
// fields (notes, tags, due).
type TaskPatch struct {
	Title    Change[Title]
	Notes    OptChange[Notes]
	Project  Change[ProjectName]
	Tags     OptChange[[]Tag]
	Priority Change[Priority]
	Due      OptChange[DueAt]
}

// Apply replaces every field the patch sets or clears and refreshes
// UpdatedAt exactly once. It performs no cross-field validation beyond
// what each value type already enforced at construction.
func (p TaskPatch) Apply(t *Task) {
	if v, ok := p.Title.Get(); ok {
		t.Title = v
	}
	if v, ok := p.Notes.Get(); ok {
		t.Notes = &v
	} else if p.Notes.IsClear() {
		t.Notes = nil
	}
	if v, ok := p.Project.Get(); ok {
		t.Project = v
	}
	if v, ok := p.Tags.Get(); ok {
		t.Tags = NormalizeTags(v)
	} else if p.Tags.IsClear() {
		t.Tags = nil
	}
	if v, ok := p.Priority.Get(); ok {
		t.Priority = v
	}
	if v, ok := p.Due.Get(); ok {
		t.Due = &v
	} else if p.Due.IsClear() {
		t.Due = nil
	}
	t.UpdatedAt = time.Now().UTC()
}

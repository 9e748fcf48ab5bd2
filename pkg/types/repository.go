package types

// Repository is the storage capability contract consumed by the
// orchestration layer. All operations are synchronous and total: an
// identifier miss or hit is a normal outcome, never an error.
type Repository interface {
	// Add appends a task. The caller is responsible for ID uniqueness.
	Add(t Task)

	// List returns every task in insertion order. The returned slice and
	// its tasks are copies; callers must not assume aliasing with backend
	// state.
	List() []Task

	// Get returns the task with exactly the given ID, or false on a miss.
	// Prefix matching is never performed here.
	Get(id TaskID) (Task, bool)

	// Replace overwrites the task with the same ID. Returns true iff such
	// a task existed; it never inserts on a miss.
	Replace(t Task) bool

	// Remove deletes the task with the given ID. Returns true iff a task
	// existed and was removed.
	Remove(id TaskID) bool

	// SetAll replaces the entire collection, used by bulk import.
	SetAll(tasks []Task)
}

// Store is a Repository with explicit durability. Mutations touch only
// in-memory state; Save persists the whole collection. Keeping persistence
// explicit lets callers batch several mutations under one write.
type Store interface {
	Repository

	// Save durably persists the current collection. On failure the
	// previously persisted state is left intact.
	Save() error
}

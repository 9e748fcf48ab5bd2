package types

import "github.com/google/uuid"

// ShortIDLen is the number of leading hex characters of the canonical ID
// text used for compact display.
const ShortIDLen = 8

// TaskID identifies a task. It is a random 128-bit value, immutable once
// assigned, compared by value.
type TaskID struct {
	val uuid.UUID
}

// NewTaskID generates a fresh random TaskID.
func NewTaskID() TaskID {
	return TaskID{val: uuid.New()}
}

// ParseTaskID parses the canonical text form of a TaskID.
// Returns ErrInvalidTaskID if the input is not a full canonical ID.
func ParseTaskID(s string) (TaskID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return TaskID{}, ErrInvalidTaskID
	}
	return TaskID{val: u}, nil
}

// String returns the canonical lowercase hex form, e.g.
// "550e8400-e29b-41d4-a716-446655440000".
func (id TaskID) String() string {
	return id.val.String()
}

// Short returns the first ShortIDLen hex characters of the canonical form.
// Short forms are convenient for display but not guaranteed unique.
func (id TaskID) Short() string {
	return id.val.String()[:ShortIDLen]
}

// IsZero reports whether the ID is the zero value (never assigned).
func (id TaskID) IsZero() bool {
	return id.val == uuid.UUID{}
}

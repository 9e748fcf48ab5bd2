package types

import "strings"

// Priority is a four-level urgency ordinal. P1 is the most urgent and P4
// the least; the numeric values give the total order P1 < P2 < P3 < P4.
type Priority int

const (
	PriorityP1 Priority = iota + 1
	PriorityP2
	PriorityP3
	PriorityP4
)

// DefaultPriority is assigned to new tasks.
const DefaultPriority = PriorityP3

// ParsePriority parses "P1".."P4" case-insensitively, ignoring surrounding
// whitespace. Returns ErrInvalidPriority for anything else.
func ParsePriority(input string) (Priority, error) {
	switch strings.ToUpper(strings.TrimSpace(input)) {
	case "P1":
		return PriorityP1, nil
	case "P2":
		return PriorityP2, nil
	case "P3":
		return PriorityP3, nil
	case "P4":
		return PriorityP4, nil
	default:
		return 0, ErrInvalidPriority
	}
}

// String returns the display label, "P1".."P4".
func (p Priority) String() string {
	switch p {
	case PriorityP1:
		return "P1"
	case PriorityP2:
		return "P2"
	case PriorityP3:
		return "P3"
	case PriorityP4:
		return "P4"
	default:
		return "P?"
	}
}

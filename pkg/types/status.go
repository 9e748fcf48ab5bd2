package types

import "time"

// statusKind discriminates the Status variants.
type statusKind int

const (
	statusOpen statusKind = iota
	statusDone
)

// Status text tags used in serialized forms.
const (
	StatusLabelOpen = "open"
	StatusLabelDone = "done"
)

// Status is a tagged variant: Open, or Done carrying the completion
// instant. The zero value is Open.
type Status struct {
	kind        statusKind
	completedAt time.Time
}

// StatusOpen returns the Open status.
func StatusOpen() Status {
	return Status{kind: statusOpen}
}

// StatusDone returns a Done status completed at the given instant.
func StatusDone(completedAt time.Time) Status {
	return Status{kind: statusDone, completedAt: completedAt}
}

// IsDone reports whether the status is the Done variant.
func (s Status) IsDone() bool {
	return s.kind == statusDone
}

// CompletedAt returns the completion instant and true for Done, or the
// zero time and false for Open.
func (s Status) CompletedAt() (time.Time, bool) {
	if s.kind != statusDone {
		return time.Time{}, false
	}
	return s.completedAt, true
}

// Label returns the serialized tag for the status variant.
func (s Status) Label() string {
	if s.kind == statusDone {
		return StatusLabelDone
	}
	return StatusLabelOpen
}

package app

import "fmt"

// MaxAmbiguousCandidates caps how many matches an AmbiguousError carries
// for display.
const MaxAmbiguousCandidates = 10

// NotFoundError reports that no task matched the given identifier input.
type NotFoundError struct {
	Input string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no task matches %q", e.Input)
}

// Candidate is one (short id, title) pair shown when an identifier is
// ambiguous.
type Candidate struct {
	ShortID string
	Title   string
}

// AmbiguousError reports that an identifier prefix matched more than one
// task. Candidates holds at most MaxAmbiguousCandidates entries.
type AmbiguousError struct {
	Input      string
	Candidates []Candidate
}

func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("identifier %q is ambiguous (%d matches)", e.Input, len(e.Candidates))
}

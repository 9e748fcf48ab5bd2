package app

import (
	"strings"

	"github.com/dukaforge/tidy/pkg/types"
)

// MinPrefixLen is the shortest identifier prefix the resolver will scan
// for. Shorter input fails fast without touching the collection.
const MinPrefixLen = 4

// ResolveID maps free-form user input to exactly one TaskID against the
// given collection.
//
// A full canonical identifier is accepted directly, whether or not any
// task owns it; existence is the caller's concern. Otherwise the input
// must be at least MinPrefixLen characters and is matched against each
// task's short form (equality) and canonical form (prefix). Zero matches
// yield NotFoundError, more than one yield AmbiguousError.
func ResolveID(input string, tasks []types.Task) (types.TaskID, error) {
	needle := strings.ToLower(strings.TrimSpace(input))

	if id, err := types.ParseTaskID(needle); err == nil {
		return id, nil
	}

	if len(needle) < MinPrefixLen {
		return types.TaskID{}, &NotFoundError{Input: input}
	}

	var matches []types.Task
	for _, t := range tasks {
		if t.ID.Short() == needle || strings.HasPrefix(t.ID.String(), needle) {
			matches = append(matches, t)
		}
	}

	switch len(matches) {
	case 0:
		return types.TaskID{}, &NotFoundError{Input: input}
	case 1:
		return matches[0].ID, nil
	default:
		n := len(matches)
		if n > MaxAmbiguousCandidates {
			n = MaxAmbiguousCandidates
		}
		candidates := make([]Candidate, n)
		for i := 0; i < n; i++ {
			candidates[i] = Candidate{
				ShortID: matches[i].ID.Short(),
				Title:   matches[i].Title.String(),
			}
		}
		return types.TaskID{}, &AmbiguousError{Input: input, Candidates: candidates}
	}
}

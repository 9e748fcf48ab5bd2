package types

import (
	"sort"
	"strings"
	"time"
)

// Title is a validated, non-empty task title.
type Title struct {
	val string
}

// ParseTitle trims surrounding whitespace and validates the result.
// Returns ErrEmptyTitle if nothing remains after trimming.
func ParseTitle(input string) (Title, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return Title{}, ErrEmptyTitle
	}
	return Title{val: trimmed}, nil
}

func (t Title) String() string { return t.val }

// MaxNotesLen caps the length of task notes.
const MaxNotesLen = 10000

// Notes holds optional free-form text attached to a task.
type Notes struct {
	val string
}

// ParseNotes trims the input and enforces MaxNotesLen.
// Returns ErrNotesTooLong if the trimmed text exceeds the cap.
func ParseNotes(input string) (Notes, error) {
	trimmed := strings.TrimSpace(input)
	if len(trimmed) > MaxNotesLen {
		return Notes{}, ErrNotesTooLong
	}
	return Notes{val: trimmed}, nil
}

func (n Notes) String() string { return n.val }

// ProjectName groups tasks. Every task belongs to exactly one project.
type ProjectName struct {
	val string
}

// ParseProjectName trims the input and rejects empty names.
func ParseProjectName(input string) (ProjectName, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return ProjectName{}, ErrEmptyProjectName
	}
	return ProjectName{val: trimmed}, nil
}

// InboxProject is the default project for new tasks.
func InboxProject() ProjectName {
	return ProjectName{val: "Inbox"}
}

func (p ProjectName) String() string { return p.val }

// EqualsFold reports whether the project name matches other
// case-insensitively.
func (p ProjectName) EqualsFold(other string) bool {
	return strings.EqualFold(p.val, strings.TrimSpace(other))
}

// Tag is a normalized label: trimmed, lowercased, restricted to
// [a-z0-9_-].
type Tag struct {
	val string
}

// ParseTag normalizes and validates a tag. Returns ErrEmptyTag for blank
// input and ErrInvalidTag for characters outside [a-z0-9_-] after
// lowercasing.
func ParseTag(input string) (Tag, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return Tag{}, ErrEmptyTag
	}
	normalized := strings.ToLower(trimmed)
	for _, r := range normalized {
		ok := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' || r == '_'
		if !ok {
			return Tag{}, ErrInvalidTag
		}
	}
	return Tag{val: normalized}, nil
}

func (t Tag) String() string { return t.val }

// NormalizeTags returns the tags sorted and deduplicated. Tags on a task
// form a set with a stable display order.
func NormalizeTags(tags []Tag) []Tag {
	if len(tags) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(tags))
	out := make([]Tag, 0, len(tags))
	for _, t := range tags {
		if t.val == "" || seen[t.val] {
			continue
		}
		seen[t.val] = true
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].val < out[j].val })
	if len(out) == 0 {
		return nil
	}
	return out
}

// DueAt is an instant a task is due, carried with its timezone.
type DueAt struct {
	val time.Time
}

// ParseDueAt parses an RFC 3339 timestamp. Returns ErrInvalidDueAt on
// malformed input.
func ParseDueAt(input string) (DueAt, error) {
	t, err := time.Parse(time.RFC3339, strings.TrimSpace(input))
	if err != nil {
		return DueAt{}, ErrInvalidDueAt
	}
	return DueAt{val: t}, nil
}

// DueAtFrom wraps an already-known instant, for programmatic construction
// and seeding.
func DueAtFrom(t time.Time) DueAt {
	return DueAt{val: t}
}

// Time returns the underlying instant.
func (d DueAt) Time() time.Time { return d.val }

// String formats the instant as RFC 3339.
func (d DueAt) String() string {
	return d.val.Format(time.RFC3339)
}

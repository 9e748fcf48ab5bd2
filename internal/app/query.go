package app

import (
	"sort"
	"strings"
	"time"

	"github.com/dukaforge/tidy/pkg/types"
)

// StatusFilter restricts a listing to open or done tasks.
type StatusFilter int

const (
	StatusAny StatusFilter = iota
	StatusOpenOnly
	StatusDoneOnly
)

// SortKey selects the single ordering applied after filtering.
type SortKey int

const (
	// SortDue orders by due instant ascending; tasks without a due
	// instant sort after every dated task. That placement is a deliberate
	// UX choice.
	SortDue SortKey = iota
	// SortPriority orders P1 first.
	SortPriority
	// SortCreated orders by creation instant ascending.
	SortCreated
)

// ListQuery carries independently optional filters, one sort key, and an
// optional final reversal. All filters are conjunctive.
type ListQuery struct {
	Status   StatusFilter
	Project  string // case-insensitive exact match, trimmed; "" = no filter
	Tag      string // normalized like tag construction; "" = no filter
	Search   string // case-insensitive substring over title or notes; blank = no filter
	Priority *types.Priority
	Overdue  bool
	Sort     SortKey
	Desc     bool
}

// ApplyListQuery filters and sorts a task collection. It is a pure
// transformation: the input slice is not modified, and now is the single
// instant used for overdue checks.
func ApplyListQuery(tasks []types.Task, q ListQuery, now time.Time) []types.Task {
	out := make([]types.Task, 0, len(tasks))
	for _, t := range tasks {
		if matches(t, q, now) {
			out = append(out, t)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return lessBy(q.Sort, out[i], out[j])
	})

	if q.Desc {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out
}

func matches(t types.Task, q ListQuery, now time.Time) bool {
	switch q.Status {
	case StatusOpenOnly:
		if t.Status.IsDone() {
			return false
		}
	case StatusDoneOnly:
		if !t.Status.IsDone() {
			return false
		}
	}

	if project := strings.TrimSpace(q.Project); project != "" {
		if !t.Project.EqualsFold(project) {
			return false
		}
	}

	// Tags are stored normalized, so normalizing the needle the same way
	// makes membership a plain string comparison.
	if tag := strings.ToLower(strings.TrimSpace(q.Tag)); tag != "" {
		found := false
		for _, have := range t.Tags {
			if have.String() == tag {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if q.Priority != nil && t.Priority != *q.Priority {
		return false
	}

	if q.Overdue && !t.IsOverdue(now) {
		return false
	}

	if needle := strings.ToLower(strings.TrimSpace(q.Search)); needle != "" {
		title := strings.ToLower(t.Title.String())
		notes := ""
		if t.Notes != nil {
			notes = strings.ToLower(t.Notes.String())
		}
		if !strings.Contains(title, needle) && !strings.Contains(notes, needle) {
			return false
		}
	}

	return true
}

func lessBy(key SortKey, a, b types.Task) bool {
	switch key {
	case SortPriority:
		return a.Priority < b.Priority
	case SortCreated:
		return a.CreatedAt.Before(b.CreatedAt)
	default: // SortDue
		switch {
		case a.Due == nil:
			return false
		case b.Due == nil:
			return true
		default:
			return a.Due.Time().Before(b.Due.Time())
		}
	}
}

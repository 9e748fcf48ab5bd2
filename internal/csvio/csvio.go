// Package csvio is a thin CSV adapter over the task domain. CSV is a
// lossy subset of the store format: notes formatting and completion
// timestamps are not round-tripped, and a "done" row is re-derived as
// done-now on import.
package csvio

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dukaforge/tidy/pkg/types"
)

var header = []string{"id", "title", "status", "priority", "project", "due", "notes", "tags"}

// Export writes one row per task, creating parent directories as needed.
func Export(path string, tasks []types.Task) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating export dir %s: %w", dir, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating csv file %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, t := range tasks {
		if err := w.Write(encodeRow(t)); err != nil {
			return fmt.Errorf("writing csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing csv writer: %w", err)
	}
	return nil
}

// Import parses every row through the value-type constructors and returns
// the resulting tasks. The caller decides what to do with them; the usual
// path is a wholesale SetAll followed by one save.
func Import(path string) ([]types.Task, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening csv file %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading csv rows: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}
	if !isHeader(records[0]) {
		return nil, fmt.Errorf("unexpected csv header %v", records[0])
	}

	tasks := make([]types.Task, 0, len(records)-1)
	for i, rec := range records[1:] {
		t, err := decodeRow(rec)
		if err != nil {
			return nil, fmt.Errorf("csv row %d: %w", i+2, err)
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

func isHeader(rec []string) bool {
	if len(rec) != len(header) {
		return false
	}
	for i, col := range header {
		if !strings.EqualFold(strings.TrimSpace(rec[i]), col) {
			return false
		}
	}
	return true
}

func encodeRow(t types.Task) []string {
	notes := ""
	if t.Notes != nil {
		notes = t.Notes.String()
	}
	due := ""
	if t.Due != nil {
		due = t.Due.String()
	}
	tags := make([]string, len(t.Tags))
	for i, tag := range t.Tags {
		tags[i] = tag.String()
	}
	return []string{
		t.ID.String(),
		t.Title.String(),
		t.Status.Label(),
		t.Priority.String(),
		t.Project.String(),
		due,
		notes,
		strings.Join(tags, ","),
	}
}

func decodeRow(rec []string) (types.Task, error) {
	if len(rec) != len(header) {
		return types.Task{}, fmt.Errorf("expected %d columns, got %d", len(header), len(rec))
	}

	title, err := types.ParseTitle(rec[1])
	if err != nil {
		return types.Task{}, err
	}
	t := types.NewTask(title)

	t.ID, err = types.ParseTaskID(rec[0])
	if err != nil {
		return types.Task{}, err
	}

	// Completion timestamps are not carried in CSV; "done" becomes
	// done-now through the normal transition.
	if strings.EqualFold(strings.TrimSpace(rec[2]), types.StatusLabelDone) {
		if err := t.MarkDone(); err != nil {
			return types.Task{}, err
		}
	}

	t.Priority, err = types.ParsePriority(rec[3])
	if err != nil {
		return types.Task{}, err
	}
	t.Project, err = types.ParseProjectName(rec[4])
	if err != nil {
		return types.Task{}, err
	}

	if due := strings.TrimSpace(rec[5]); due != "" {
		d, err := types.ParseDueAt(due)
		if err != nil {
			return types.Task{}, err
		}
		t.Due = &d
	}
	if rec[6] != "" {
		notes, err := types.ParseNotes(rec[6])
		if err != nil {
			return types.Task{}, err
		}
		t.Notes = &notes
	}
	if raw := strings.TrimSpace(rec[7]); raw != "" {
		var tags []types.Tag
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			tag, err := types.ParseTag(part)
			if err != nil {
				return types.Task{}, err
			}
			tags = append(tags, tag)
		}
		t.Tags = types.NormalizeTags(tags)
	}
	return t, nil
}

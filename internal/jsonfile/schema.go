// Versioned on-disk document format for the JSON file store.
// The document carries an explicit schema_version tag so future versions
// can add a decode path translating older documents into the current
// in-memory shape without touching domain types.
package jsonfile

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dukaforge/tidy/pkg/types"
)

// CurrentSchemaVersion is written by every save. Only version 1 exists.
const CurrentSchemaVersion = 1

// document is the top-level on-disk shape.
type document struct {
	SchemaVersion int          `json:"schema_version"`
	Tasks         []taskRecord `json:"tasks"`
}

// taskRecord mirrors one serialized task. Optional fields use pointers so
// that "absent" and "empty string" survive a round trip unchanged.
type taskRecord struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Notes       *string  `json:"notes,omitempty"`
	Project     string   `json:"project"`
	Tags        []string `json:"tags,omitempty"`
	Status      string   `json:"status"`
	CompletedAt *string  `json:"completed_at,omitempty"`
	Priority    string   `json:"priority"`
	Due         *string  `json:"due,omitempty"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
}

// encodeDocument serializes the tasks under the current schema version.
func encodeDocument(tasks []types.Task) ([]byte, error) {
	doc := document{
		SchemaVersion: CurrentSchemaVersion,
		Tasks:         make([]taskRecord, len(tasks)),
	}
	for i, t := range tasks {
		doc.Tasks[i] = encodeTask(t)
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("serializing document: %w", err)
	}
	return append(data, '\n'), nil
}

// decodeDocument parses a persisted document, dispatching on its
// schema_version. Unrecognized versions fail with
// ErrUnsupportedSchemaVersion rather than silently coercing.
func decodeDocument(data []byte) ([]types.Task, error) {
	var probe struct {
		SchemaVersion int `json:"schema_version"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}

	switch probe.SchemaVersion {
	case 1:
		return decodeV1(data)
	default:
		return nil, fmt.Errorf("%w: %d (supported: %d)",
			types.ErrUnsupportedSchemaVersion, probe.SchemaVersion, CurrentSchemaVersion)
	}
}

// decodeV1 reads a version-1 document. Version 1 is the current shape, so
// no field translation is needed.
func decodeV1(data []byte) ([]types.Task, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding schema v1 document: %w", err)
	}
	tasks := make([]types.Task, len(doc.Tasks))
	for i, rec := range doc.Tasks {
		t, err := decodeTask(rec)
		if err != nil {
			return nil, fmt.Errorf("decoding task %d: %w", i, err)
		}
		tasks[i] = t
	}
	return tasks, nil
}

func encodeTask(t types.Task) taskRecord {
	rec := taskRecord{
		ID:        t.ID.String(),
		Title:     t.Title.String(),
		Project:   t.Project.String(),
		Status:    t.Status.Label(),
		Priority:  t.Priority.String(),
		CreatedAt: t.CreatedAt.Format(time.RFC3339Nano),
		UpdatedAt: t.UpdatedAt.Format(time.RFC3339Nano),
	}
	if t.Notes != nil {
		s := t.Notes.String()
		rec.Notes = &s
	}
	if len(t.Tags) > 0 {
		rec.Tags = make([]string, len(t.Tags))
		for i, tag := range t.Tags {
			rec.Tags[i] = tag.String()
		}
	}
	if completed, ok := t.Status.CompletedAt(); ok {
		s := completed.Format(time.RFC3339Nano)
		rec.CompletedAt = &s
	}
	if t.Due != nil {
		s := t.Due.Time().Format(time.RFC3339Nano)
		rec.Due = &s
	}
	return rec
}

// decodeTask rebuilds a task through the value-type constructors so a
// hand-edited file cannot smuggle in invalid values.
func decodeTask(rec taskRecord) (types.Task, error) {
	id, err := types.ParseTaskID(rec.ID)
	if err != nil {
		return types.Task{}, err
	}
	title, err := types.ParseTitle(rec.Title)
	if err != nil {
		return types.Task{}, err
	}
	project, err := types.ParseProjectName(rec.Project)
	if err != nil {
		return types.Task{}, err
	}
	priority, err := types.ParsePriority(rec.Priority)
	if err != nil {
		return types.Task{}, err
	}

	t := types.Task{
		ID:       id,
		Title:    title,
		Project:  project,
		Priority: priority,
	}

	switch rec.Status {
	case types.StatusLabelOpen:
		t.Status = types.StatusOpen()
	case types.StatusLabelDone:
		if rec.CompletedAt == nil {
			return types.Task{}, fmt.Errorf("done task %s has no completed_at", rec.ID)
		}
		completed, err := time.Parse(time.RFC3339Nano, *rec.CompletedAt)
		if err != nil {
			return types.Task{}, fmt.Errorf("parsing completed_at: %w", err)
		}
		t.Status = types.StatusDone(completed)
	default:
		return types.Task{}, fmt.Errorf("unknown status %q", rec.Status)
	}

	if rec.Notes != nil {
		notes, err := types.ParseNotes(*rec.Notes)
		if err != nil {
			return types.Task{}, err
		}
		t.Notes = &notes
	}
	if len(rec.Tags) > 0 {
		tags := make([]types.Tag, len(rec.Tags))
		for i, raw := range rec.Tags {
			tag, err := types.ParseTag(raw)
			if err != nil {
				return types.Task{}, err
			}
			tags[i] = tag
		}
		t.Tags = types.NormalizeTags(tags)
	}
	if rec.Due != nil {
		due, err := types.ParseDueAt(*rec.Due)
		if err != nil {
			return types.Task{}, err
		}
		t.Due = &due
	}

	t.CreatedAt, err = time.Parse(time.RFC3339Nano, rec.CreatedAt)
	if err != nil {
		return types.Task{}, fmt.Errorf("parsing created_at: %w", err)
	}
	t.UpdatedAt, err = time.Parse(time.RFC3339Nano, rec.UpdatedAt)
	if err != nil {
		return types.Task{}, fmt.Errorf("parsing updated_at: %w", err)
	}
	return t, nil
}

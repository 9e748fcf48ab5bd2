package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatchApplySetsFields(t *testing.T) {
	task := NewTask(mustTitle(t, "Old title"))
	task.UpdatedAt = task.UpdatedAt.Add(-time.Hour)
	before := task.UpdatedAt

	newTitle, err := ParseTitle("New title")
	require.NoError(t, err)
	notes, err := ParseNotes("some notes")
	require.NoError(t, err)
	project, err := ParseProjectName("Work")
	require.NoError(t, err)
	tag, err := ParseTag("urgent")
	require.NoError(t, err)
	due, err := ParseDueAt("2026-06-01T09:00:00Z")
	require.NoError(t, err)

	patch := TaskPatch{
		Title:    SetTo(newTitle),
		Notes:    OptSetTo(notes),
		Project:  SetTo(project),
		Tags:     OptSetTo([]Tag{tag, tag}),
		Priority: SetTo(PriorityP1),
		Due:      OptSetTo(due),
	}
	patch.Apply(&task)

	assert.Equal(t, "New title", task.Title.String())
	require.NotNil(t, task.Notes)
	assert.Equal(t, "some notes", task.Notes.String())
	assert.Equal(t, "Work", task.Project.String())
	require.Len(t, task.Tags, 1, "duplicate tags collapse into a set")
	assert.Equal(t, "urgent", task.Tags[0].String())
	assert.Equal(t, PriorityP1, task.Priority)
	require.NotNil(t, task.Due)
	assert.Equal(t, "2026-06-01T09:00:00Z", task.Due.String())
	assert.True(t, task.UpdatedAt.After(before), "UpdatedAt refreshed once per application")
}

func TestPatchApplyLeavesUnchangedFieldsAlone(t *testing.T) {
	task := NewTask(mustTitle(t, "Keep me"))
	notes, err := ParseNotes("keep these notes")
	require.NoError(t, err)
	task.Notes = &notes

	patch := TaskPatch{Priority: SetTo(PriorityP2)}
	patch.Apply(&task)

	assert.Equal(t, "Keep me", task.Title.String())
	require.NotNil(t, task.Notes, "unchanged is not clear")
	assert.Equal(t, "keep these notes", task.Notes.String())
	assert.Equal(t, PriorityP2, task.Priority)
}

func TestPatchApplyClearsOptionalFields(t *testing.T) {
	task := NewTask(mustTitle(t, "A"))
	notes, err := ParseNotes("to be removed")
	require.NoError(t, err)
	task.Notes = &notes
	due, err := ParseDueAt("2026-06-01T09:00:00Z")
	require.NoError(t, err)
	task.Due = &due
	tag, err := ParseTag("gone")
	require.NoError(t, err)
	task.Tags = []Tag{tag}

	patch := TaskPatch{
		Notes: OptClear[Notes](),
		Tags:  OptClear[[]Tag](),
		Due:   OptClear[DueAt](),
	}
	patch.Apply(&task)

	assert.Nil(t, task.Notes)
	assert.Nil(t, task.Due)
	assert.Empty(t, task.Tags)
}

func TestEmptyPatchStillRefreshesUpdatedAt(t *testing.T) {
	task := NewTask(mustTitle(t, "A"))
	task.UpdatedAt = task.UpdatedAt.Add(-time.Hour)
	before := task.UpdatedAt

	TaskPatch{}.Apply(&task)

	assert.True(t, task.UpdatedAt.After(before))
	assert.Equal(t, "A", task.Title.String())
}

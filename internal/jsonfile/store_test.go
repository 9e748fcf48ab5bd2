package jsonfile

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukaforge/tidy/pkg/types"
)

func newTask(t *testing.T, title string) types.Task {
	t.Helper()
	parsed, err := types.ParseTitle(title)
	require.NoError(t, err)
	return types.NewTask(parsed)
}

func fullTask(t *testing.T) types.Task {
	t.Helper()
	task := newTask(t, "Everything set")
	notes, err := types.ParseNotes("some notes\nwith a second line")
	require.NoError(t, err)
	task.Notes = &notes
	project, err := types.ParseProjectName("Work")
	require.NoError(t, err)
	task.Project = project
	a, err := types.ParseTag("build")
	require.NoError(t, err)
	b, err := types.ParseTag("rust-lang_2")
	require.NoError(t, err)
	task.Tags = types.NormalizeTags([]types.Tag{a, b})
	task.Priority = types.PriorityP1
	due, err := types.ParseDueAt("2026-09-01T09:00:00Z")
	require.NoError(t, err)
	task.Due = &due
	return task
}

func assertTaskEqual(t *testing.T, want, got types.Task) {
	t.Helper()
	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, want.Title.String(), got.Title.String())
	assert.Equal(t, want.Project.String(), got.Project.String())
	assert.Equal(t, want.Priority, got.Priority)
	assert.Equal(t, want.Status.IsDone(), got.Status.IsDone())
	wantDone, _ := want.Status.CompletedAt()
	gotDone, _ := got.Status.CompletedAt()
	assert.True(t, wantDone.Equal(gotDone), "completed_at must round-trip")
	if want.Notes == nil {
		assert.Nil(t, got.Notes)
	} else {
		require.NotNil(t, got.Notes)
		assert.Equal(t, want.Notes.String(), got.Notes.String())
	}
	if want.Due == nil {
		assert.Nil(t, got.Due)
	} else {
		require.NotNil(t, got.Due)
		assert.True(t, want.Due.Time().Equal(got.Due.Time()))
	}
	require.Equal(t, len(want.Tags), len(got.Tags))
	for i := range want.Tags {
		assert.Equal(t, want.Tags[i].String(), got.Tags[i].String())
	}
	assert.True(t, want.CreatedAt.Equal(got.CreatedAt))
	assert.True(t, want.UpdatedAt.Equal(got.UpdatedAt))
}

func TestLoadOrInitCreatesFileAndParents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "db.json")

	store, err := LoadOrInit(path)
	require.NoError(t, err)
	assert.Empty(t, store.List())

	// The empty document exists on disk immediately.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.EqualValues(t, 1, doc["schema_version"])
}

func TestSaveThenLoadRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	store, err := LoadOrInit(path)
	require.NoError(t, err)

	open := fullTask(t)
	done := newTask(t, "Finished already")
	require.NoError(t, done.MarkDone())
	bare := newTask(t, "Nothing optional")

	store.Add(open)
	store.Add(done)
	store.Add(bare)
	require.NoError(t, store.Save())

	reloaded, err := LoadOrInit(path)
	require.NoError(t, err)
	items := reloaded.List()
	require.Len(t, items, 3)
	assertTaskEqual(t, open, items[0])
	assertTaskEqual(t, done, items[1])
	assertTaskEqual(t, bare, items[2])
}

func TestEmptyNotesSurviveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	store, err := LoadOrInit(path)
	require.NoError(t, err)

	task := newTask(t, "Empty but present notes")
	notes, err := types.ParseNotes("")
	require.NoError(t, err)
	task.Notes = &notes
	store.Add(task)
	require.NoError(t, store.Save())

	reloaded, err := LoadOrInit(path)
	require.NoError(t, err)
	items := reloaded.List()
	require.Len(t, items, 1)
	require.NotNil(t, items[0].Notes, "set-but-empty notes are distinct from absent notes")
	assert.Equal(t, "", items[0].Notes.String())
}

func TestUnsupportedSchemaVersionFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"schema_version": 2, "tasks": []}`), 0o644))

	_, err := LoadOrInit(path)
	assert.ErrorIs(t, err, types.ErrUnsupportedSchemaVersion)
}

func TestMissingSchemaVersionFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"tasks": []}`), 0o644))

	_, err := LoadOrInit(path)
	assert.ErrorIs(t, err, types.ErrUnsupportedSchemaVersion)
}

func TestMalformedDocumentFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"schema_version": 1, "tasks": [`), 0o644))

	_, err := LoadOrInit(path)
	assert.Error(t, err)
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "db.json")
	store, err := LoadOrInit(path)
	require.NoError(t, err)

	store.Add(newTask(t, "A"))
	require.NoError(t, store.Save())
	store.Add(newTask(t, "B"))
	require.NoError(t, store.Save())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "db.json", entries[0].Name())
}

func TestSaveIsExplicit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	store, err := LoadOrInit(path)
	require.NoError(t, err)

	store.Add(newTask(t, "Unsaved"))

	// Without Save, a reload sees the last persisted state.
	reloaded, err := LoadOrInit(path)
	require.NoError(t, err)
	assert.Empty(t, reloaded.List())
}

func TestDueNanosecondsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	store, err := LoadOrInit(path)
	require.NoError(t, err)

	task := newTask(t, "Precise due")
	due := types.DueAtFrom(time.Date(2026, 3, 4, 5, 6, 7, 123456789, time.UTC))
	task.Due = &due
	store.Add(task)
	require.NoError(t, store.Save())

	reloaded, err := LoadOrInit(path)
	require.NoError(t, err)
	items := reloaded.List()
	require.Len(t, items, 1)
	require.NotNil(t, items[0].Due)
	assert.True(t, due.Time().Equal(items[0].Due.Time()))
}

package csvio

import (
	"os"
	"path/filepath"
	"testing"

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

func TestExportImportRoundTripsCoreFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export", "tasks.csv")

	full := newTask(t, "Everything")
	notes, err := types.ParseNotes("bring receipts, and a pen")
	require.NoError(t, err)
	full.Notes = &notes
	work, err := types.ParseProjectName("Work")
	require.NoError(t, err)
	full.Project = work
	a, err := types.ParseTag("go")
	require.NoError(t, err)
	b, err := types.ParseTag("build")
	require.NoError(t, err)
	full.Tags = types.NormalizeTags([]types.Tag{a, b})
	full.Priority = types.PriorityP2
	due, err := types.ParseDueAt("2026-09-01T09:00:00Z")
	require.NoError(t, err)
	full.Due = &due

	require.NoError(t, Export(path, []types.Task{full}))

	imported, err := Import(path)
	require.NoError(t, err)
	require.Len(t, imported, 1)

	got := imported[0]
	assert.Equal(t, full.ID, got.ID)
	assert.Equal(t, "Everything", got.Title.String())
	require.NotNil(t, got.Notes)
	assert.Equal(t, "bring receipts, and a pen", got.Notes.String())
	assert.Equal(t, "Work", got.Project.String())
	assert.Equal(t, types.PriorityP2, got.Priority)
	require.NotNil(t, got.Due)
	assert.True(t, full.Due.Time().Equal(got.Due.Time()))
	require.Len(t, got.Tags, 2)
	assert.Equal(t, "build", got.Tags[0].String())
	assert.Equal(t, "go", got.Tags[1].String())
	assert.False(t, got.Status.IsDone())
}

func TestDoneIsRederivedOnImport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.csv")

	done := newTask(t, "Finished")
	require.NoError(t, done.MarkDone())
	require.NoError(t, Export(path, []types.Task{done}))

	imported, err := Import(path)
	require.NoError(t, err)
	require.Len(t, imported, 1)
	assert.True(t, imported[0].Status.IsDone(),
		"done rows come back done, with a fresh completion instant")
}

func TestImportRejectsBadRows(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "bad priority",
			body: "id,title,status,priority,project,due,notes,tags\n" +
				"550e8400-e29b-41d4-a716-446655440000,Task,open,P9,Inbox,,,\n",
		},
		{
			name: "bad id",
			body: "id,title,status,priority,project,due,notes,tags\n" +
				"not-an-id,Task,open,P3,Inbox,,,\n",
		},
		{
			name: "bad due",
			body: "id,title,status,priority,project,due,notes,tags\n" +
				"550e8400-e29b-41d4-a716-446655440000,Task,open,P3,Inbox,yesterday,,\n",
		},
		{
			name: "bad tag",
			body: "id,title,status,priority,project,due,notes,tags\n" +
				"550e8400-e29b-41d4-a716-446655440000,Task,open,P3,Inbox,,,bad tag!\n",
		},
		{
			name: "wrong header",
			body: "foo,bar\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "tasks.csv")
			require.NoError(t, os.WriteFile(path, []byte(tt.body), 0o644))

			_, err := Import(path)
			assert.Error(t, err)
		})
	}
}

func TestImportEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.csv")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	tasks, err := Import(path)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

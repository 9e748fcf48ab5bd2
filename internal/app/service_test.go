package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukaforge/tidy/internal/memory"
	"github.com/dukaforge/tidy/pkg/types"
)

func mustTitle(t *testing.T, s string) types.Title {
	t.Helper()
	title, err := types.ParseTitle(s)
	require.NoError(t, err)
	return title
}

func TestServiceAddThenList(t *testing.T) {
	svc := NewService(memory.New())

	svc.Add(mustTitle(t, "Hello"))
	svc.Add(mustTitle(t, "World"))

	tasks := svc.List()
	require.Len(t, tasks, 2)
	assert.Equal(t, "Hello", tasks[0].Title.String())
	assert.Equal(t, "World", tasks[1].Title.String())
}

func TestServiceEdit(t *testing.T) {
	svc := NewService(memory.New())
	task := svc.Add(mustTitle(t, "Before"))

	patch := types.TaskPatch{Title: types.SetTo(mustTitle(t, "After"))}
	edited, err := svc.Edit(task.ID, patch)
	require.NoError(t, err)
	assert.Equal(t, "After", edited.Title.String())

	stored, ok := svc.Get(task.ID)
	require.True(t, ok)
	assert.Equal(t, "After", stored.Title.String())
}

func TestServiceEditMissingTask(t *testing.T) {
	svc := NewService(memory.New())

	_, err := svc.Edit(types.NewTaskID(), types.TaskPatch{})
	var notFound *NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestServiceMarkDoneOutcomes(t *testing.T) {
	svc := NewService(memory.New())
	task := svc.Add(mustTitle(t, "A"))

	done, err := svc.MarkDone(task.ID)
	require.NoError(t, err)
	assert.True(t, done.Status.IsDone())

	// Already done is a distinct outcome from missing.
	_, err = svc.MarkDone(task.ID)
	assert.ErrorIs(t, err, types.ErrAlreadyDone)

	var notFound *NotFoundError
	_, err = svc.MarkDone(types.NewTaskID())
	assert.ErrorAs(t, err, &notFound)
}

func TestServiceMarkOpenOutcomes(t *testing.T) {
	svc := NewService(memory.New())
	task := svc.Add(mustTitle(t, "A"))

	_, err := svc.MarkOpen(task.ID)
	assert.ErrorIs(t, err, types.ErrAlreadyOpen)

	_, err = svc.MarkDone(task.ID)
	require.NoError(t, err)

	reopened, err := svc.MarkOpen(task.ID)
	require.NoError(t, err)
	assert.False(t, reopened.Status.IsDone())

	var notFound *NotFoundError
	_, err = svc.MarkOpen(types.NewTaskID())
	assert.ErrorAs(t, err, &notFound)
}

func TestServiceDelete(t *testing.T) {
	svc := NewService(memory.New())
	task := svc.Add(mustTitle(t, "A"))

	require.NoError(t, svc.Delete(task.ID))
	assert.Empty(t, svc.List())

	var notFound *NotFoundError
	assert.ErrorAs(t, svc.Delete(task.ID), &notFound)
}

func TestServiceSetAll(t *testing.T) {
	svc := NewService(memory.New())
	svc.Add(mustTitle(t, "Old"))

	replacement := []types.Task{
		types.NewTask(mustTitle(t, "Imported 1")),
		types.NewTask(mustTitle(t, "Imported 2")),
	}
	svc.SetAll(replacement)

	tasks := svc.List()
	require.Len(t, tasks, 2)
	assert.Equal(t, "Imported 1", tasks[0].Title.String())
}

func TestServiceResolve(t *testing.T) {
	svc := NewService(memory.New())
	task := svc.Add(mustTitle(t, "A"))

	id, err := svc.Resolve(task.ID.Short())
	require.NoError(t, err)
	assert.Equal(t, task.ID, id)
}

func TestDefaultTasksSeed(t *testing.T) {
	svc := NewService(memory.New())
	svc.InsertMany(DefaultTasks())

	tasks := svc.List()
	require.Len(t, tasks, 3)
	assert.Equal(t, "Inbox", tasks[0].Project.String())
	assert.Equal(t, types.PriorityP2, tasks[0].Priority)
	assert.Equal(t, "Work", tasks[2].Project.String())
	require.NotNil(t, tasks[2].Due)
	require.Len(t, tasks[2].Tags, 2)
	assert.Equal(t, "build", tasks[2].Tags[0].String())
	assert.Equal(t, "go", tasks[2].Tags[1].String())
}

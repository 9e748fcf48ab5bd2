package app

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukaforge/tidy/pkg/types"
)

func taskWithID(t *testing.T, id, title string) types.Task {
	t.Helper()
	parsedID, err := types.ParseTaskID(id)
	require.NoError(t, err)
	parsedTitle, err := types.ParseTitle(title)
	require.NoError(t, err)
	task := types.NewTask(parsedTitle)
	task.ID = parsedID
	return task
}

func resolverFixture(t *testing.T) []types.Task {
	t.Helper()
	return []types.Task{
		taskWithID(t, "aaaa1111-0000-4000-8000-000000000001", "First"),
		taskWithID(t, "aaaa2222-0000-4000-8000-000000000002", "Second"),
		taskWithID(t, "bbbb3333-0000-4000-8000-000000000003", "Third"),
	}
}

func TestResolveIDUniquePrefix(t *testing.T) {
	tasks := resolverFixture(t)

	id, err := ResolveID("aaaa1111", tasks)
	require.NoError(t, err)
	assert.Equal(t, tasks[0].ID, id)

	id, err = ResolveID("bbbb", tasks)
	require.NoError(t, err)
	assert.Equal(t, tasks[2].ID, id)
}

func TestResolveIDAmbiguousPrefix(t *testing.T) {
	tasks := resolverFixture(t)

	_, err := ResolveID("aaaa", tasks)
	var ambiguous *AmbiguousError
	require.ErrorAs(t, err, &ambiguous)
	assert.Equal(t, "aaaa", ambiguous.Input)
	require.Len(t, ambiguous.Candidates, 2)
	assert.Equal(t, "aaaa1111", ambiguous.Candidates[0].ShortID)
	assert.Equal(t, "First", ambiguous.Candidates[0].Title)
	assert.Equal(t, "aaaa2222", ambiguous.Candidates[1].ShortID)
	assert.Equal(t, "Second", ambiguous.Candidates[1].Title)
}

func TestResolveIDCandidateListIsCapped(t *testing.T) {
	tasks := make([]types.Task, 0, 12)
	for i := 0; i < 12; i++ {
		id := fmt.Sprintf("cccc0000-0000-4000-8000-%012d", i)
		tasks = append(tasks, taskWithID(t, id, "Task"))
	}

	_, err := ResolveID("cccc", tasks)
	var ambiguous *AmbiguousError
	require.ErrorAs(t, err, &ambiguous)
	assert.Len(t, ambiguous.Candidates, MaxAmbiguousCandidates)
}

func TestResolveIDTooShortFailsFast(t *testing.T) {
	_, err := ResolveID("zz", resolverFixture(t))
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "zz", notFound.Input)
}

func TestResolveIDNoMatch(t *testing.T) {
	_, err := ResolveID("dddd9999", resolverFixture(t))
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "dddd9999", notFound.Input)
}

func TestResolveIDFullCanonicalFormSkipsExistenceCheck(t *testing.T) {
	// A full canonical ID resolves directly even when no task owns it;
	// existence is checked later by the caller.
	unknown := "99999999-9999-4999-8999-999999999999"
	id, err := ResolveID(unknown, resolverFixture(t))
	require.NoError(t, err)
	assert.Equal(t, unknown, id.String())
}

func TestResolveIDNormalizesCaseAndWhitespace(t *testing.T) {
	tasks := resolverFixture(t)

	id, err := ResolveID("  AAAA1111  ", tasks)
	require.NoError(t, err)
	assert.Equal(t, tasks[0].ID, id)
}

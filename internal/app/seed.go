package app

import (
	"time"

	"github.com/dukaforge/tidy/pkg/types"
)

// DefaultTasks builds the tasks seeded into a brand-new store so a first
// listing is not empty. All values go through the normal constructors.
func DefaultTasks() []types.Task {
	now := time.Now().UTC()

	mustTitle := func(s string) types.Title {
		t, err := types.ParseTitle(s)
		if err != nil {
			panic(err)
		}
		return t
	}
	mustNotes := func(s string) *types.Notes {
		n, err := types.ParseNotes(s)
		if err != nil {
			panic(err)
		}
		return &n
	}
	mustTag := func(s string) types.Tag {
		t, err := types.ParseTag(s)
		if err != nil {
			panic(err)
		}
		return t
	}

	welcome := types.NewTask(mustTitle("Welcome to tidy"))
	welcome.Priority = types.PriorityP2
	welcome.Notes = mustNotes("Tip: use `tidy add \"...\" --tag work`")

	hints := types.NewTask(mustTitle("Run `tidy list --help` to see filters"))
	hints.Priority = types.PriorityP4

	ci := types.NewTask(mustTitle("Fix CI flaky test"))
	work, err := types.ParseProjectName("Work")
	if err != nil {
		panic(err)
	}
	ci.Project = work
	ci.Priority = types.PriorityP1
	due := types.DueAtFrom(now.Add(72 * time.Hour))
	ci.Due = &due
	ci.Tags = types.NormalizeTags([]types.Tag{mustTag("go"), mustTag("build")})

	return []types.Task{welcome, hints, ci}
}

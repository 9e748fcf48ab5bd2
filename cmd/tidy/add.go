// Add command creates a new task.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dukaforge/tidy/internal/app"
	"github.com/dukaforge/tidy/pkg/types"
)

var (
	addNotes    string
	addProject  string
	addTags     string
	addPriority string
	addDue      string
)

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a new task",
	Long: `Add creates a task with the given title. The title may span several
arguments; they are joined with spaces.

Example:
  tidy add Buy milk
  tidy add "Fix CI flaky test" --project Work --priority P1 --tags go,build
  tidy add "Call dentist" --due 2026-09-01T09:00:00Z`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		title, err := types.ParseTitle(strings.Join(args, " "))
		if err != nil {
			fmt.Fprintln(os.Stderr, "add:", err)
			os.Exit(exitUserError)
		}

		task := types.NewTask(title)
		if err := applyAddFlags(&task); err != nil {
			fmt.Fprintln(os.Stderr, "add:", err)
			os.Exit(exitUserError)
		}

		store, closeStore, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "add:", err)
			os.Exit(exitSysError)
		}
		defer closeStore()

		svc := app.NewService(store)
		svc.Insert(task)
		saveStore(store)

		if flagJSON {
			printJSON(viewOf(task))
		} else {
			fmt.Printf("Added %s: %s\n", task.ID.Short(), task.Title)
		}
		return nil
	},
}

// applyAddFlags sets the optional fields on a freshly created task. Every
// value goes through its constructor, so a bad flag never produces a
// partially valid task.
func applyAddFlags(t *types.Task) error {
	if addNotes != "" {
		notes, err := types.ParseNotes(addNotes)
		if err != nil {
			return err
		}
		t.Notes = &notes
	}
	if addProject != "" {
		project, err := types.ParseProjectName(addProject)
		if err != nil {
			return err
		}
		t.Project = project
	}
	if addTags != "" {
		tags, err := parseTagList(addTags)
		if err != nil {
			return err
		}
		t.Tags = tags
	}
	if addPriority != "" {
		priority, err := types.ParsePriority(addPriority)
		if err != nil {
			return err
		}
		t.Priority = priority
	}
	if addDue != "" {
		due, err := types.ParseDueAt(addDue)
		if err != nil {
			return err
		}
		t.Due = &due
	}
	return nil
}

// parseTagList parses a comma-separated tag list into normalized tags.
func parseTagList(raw string) ([]types.Tag, error) {
	var tags []types.Tag
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		tag, err := types.ParseTag(part)
		if err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return types.NormalizeTags(tags), nil
}

func init() {
	addCmd.Flags().StringVar(&addNotes, "notes", "", "free-form notes")
	addCmd.Flags().StringVar(&addProject, "project", "", "project name (default: Inbox)")
	addCmd.Flags().StringVar(&addTags, "tags", "", "comma-separated tags")
	addCmd.Flags().StringVar(&addPriority, "priority", "", "priority P1-P4 (default: P3)")
	addCmd.Flags().StringVar(&addDue, "due", "", "due timestamp (RFC 3339)")
}

// Edit command applies a partial update to one task.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dukaforge/tidy/internal/app"
	"github.com/dukaforge/tidy/pkg/types"
)

var (
	editTitle      string
	editNotes      string
	editClearNotes bool
	editProject    string
	editTags       string
	editClearTags  bool
	editPriority   string
	editDue        string
	editClearDue   bool
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit fields of a task",
	Long: `Edit changes only the fields named by flags; everything else is left
alone. Optional fields can be cleared.

Example:
  tidy edit a1b2 --title "New title" --priority P1
  tidy edit a1b2 --clear-due --clear-notes
  tidy edit a1b2 --tags go,build`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		patch, err := buildPatch(cmd)
		if err != nil {
			fmt.Fprintln(os.Stderr, "edit:", err)
			os.Exit(exitUserError)
		}

		store, closeStore, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "edit:", err)
			os.Exit(exitSysError)
		}
		defer closeStore()

		svc := app.NewService(store)
		id := resolveTaskID(svc, args[0])

		task, err := svc.Edit(id, patch)
		if err != nil {
			var notFound *app.NotFoundError
			if errors.As(err, &notFound) {
				fmt.Fprintln(os.Stderr, "edit:", err)
				os.Exit(exitUserError)
			}
			fmt.Fprintln(os.Stderr, "edit:", err)
			os.Exit(exitSysError)
		}
		saveStore(store)

		if flagJSON {
			printJSON(viewOf(task))
		} else {
			fmt.Printf("Updated %s: %s\n", task.ID.Short(), task.Title)
		}
		return nil
	},
}

// buildPatch translates changed flags into a patch. A flag that was not
// passed leaves its field untouched, so cmd.Flags().Changed drives the
// distinction between "not given" and "given as empty".
func buildPatch(cmd *cobra.Command) (types.TaskPatch, error) {
	var patch types.TaskPatch
	flags := cmd.Flags()

	if flags.Changed("title") {
		title, err := types.ParseTitle(editTitle)
		if err != nil {
			return types.TaskPatch{}, err
		}
		patch.Title = types.SetTo(title)
	}

	switch {
	case editClearNotes && flags.Changed("notes"):
		return types.TaskPatch{}, fmt.Errorf("--notes and --clear-notes are mutually exclusive")
	case editClearNotes:
		patch.Notes = types.OptClear[types.Notes]()
	case flags.Changed("notes"):
		notes, err := types.ParseNotes(editNotes)
		if err != nil {
			return types.TaskPatch{}, err
		}
		patch.Notes = types.OptSetTo(notes)
	}

	if flags.Changed("project") {
		project, err := types.ParseProjectName(editProject)
		if err != nil {
			return types.TaskPatch{}, err
		}
		patch.Project = types.SetTo(project)
	}

	switch {
	case editClearTags && flags.Changed("tags"):
		return types.TaskPatch{}, fmt.Errorf("--tags and --clear-tags are mutually exclusive")
	case editClearTags:
		patch.Tags = types.OptClear[[]types.Tag]()
	case flags.Changed("tags"):
		tags, err := parseTagList(editTags)
		if err != nil {
			return types.TaskPatch{}, err
		}
		patch.Tags = types.OptSetTo(tags)
	}

	if flags.Changed("priority") {
		priority, err := types.ParsePriority(editPriority)
		if err != nil {
			return types.TaskPatch{}, err
		}
		patch.Priority = types.SetTo(priority)
	}

	switch {
	case editClearDue && flags.Changed("due"):
		return types.TaskPatch{}, fmt.Errorf("--due and --clear-due are mutually exclusive")
	case editClearDue:
		patch.Due = types.OptClear[types.DueAt]()
	case flags.Changed("due"):
		due, err := types.ParseDueAt(editDue)
		if err != nil {
			return types.TaskPatch{}, err
		}
		patch.Due = types.OptSetTo(due)
	}

	return patch, nil
}

func init() {
	editCmd.Flags().StringVar(&editTitle, "title", "", "new title")
	editCmd.Flags().StringVar(&editNotes, "notes", "", "new notes")
	editCmd.Flags().BoolVar(&editClearNotes, "clear-notes", false, "remove the notes")
	editCmd.Flags().StringVar(&editProject, "project", "", "new project")
	editCmd.Flags().StringVar(&editTags, "tags", "", "new comma-separated tags")
	editCmd.Flags().BoolVar(&editClearTags, "clear-tags", false, "remove all tags")
	editCmd.Flags().StringVar(&editPriority, "priority", "", "new priority P1-P4")
	editCmd.Flags().StringVar(&editDue, "due", "", "new due timestamp (RFC 3339)")
	editCmd.Flags().BoolVar(&editClearDue, "clear-due", false, "remove the due timestamp")
}

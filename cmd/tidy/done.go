// Done and open commands transition a task's status.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dukaforge/tidy/internal/app"
	"github.com/dukaforge/tidy/pkg/types"
)

var doneCmd = &cobra.Command{
	Use:   "done <id>",
	Short: "Mark a task done",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return transition(args[0], "done",
			func(svc *app.Service, id types.TaskID) (types.Task, error) {
				return svc.MarkDone(id)
			})
	},
}

var openCmd = &cobra.Command{
	Use:   "open <id>",
	Short: "Reopen a done task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return transition(args[0], "open",
			func(svc *app.Service, id types.TaskID) (types.Task, error) {
				return svc.MarkOpen(id)
			})
	},
}

// transition resolves the task and applies a status change. A rejected
// transition (already done, already open) is a user error and leaves the
// store untouched.
func transition(input, verb string, apply func(*app.Service, types.TaskID) (types.Task, error)) error {
	store, closeStore, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", verb, err)
		os.Exit(exitSysError)
	}
	defer closeStore()

	svc := app.NewService(store)
	id := resolveTaskID(svc, input)

	task, err := apply(svc, id)
	if err != nil {
		if errors.Is(err, types.ErrAlreadyDone) || errors.Is(err, types.ErrAlreadyOpen) {
			fmt.Fprintf(os.Stderr, "%s: %s\n", verb, err)
			os.Exit(exitUserError)
		}
		var notFound *app.NotFoundError
		if errors.As(err, &notFound) {
			fmt.Fprintf(os.Stderr, "%s: %s\n", verb, err)
			os.Exit(exitUserError)
		}
		fmt.Fprintf(os.Stderr, "%s: %s\n", verb, err)
		os.Exit(exitSysError)
	}
	saveStore(store)

	if flagJSON {
		printJSON(viewOf(task))
	} else {
		fmt.Printf("Marked %s %s: %s\n", task.ID.Short(), task.Status.Label(), task.Title)
	}
	return nil
}

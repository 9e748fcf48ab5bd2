// Show command prints one task in full.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dukaforge/tidy/internal/app"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a task by ID or unique prefix",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, closeStore, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "show:", err)
			os.Exit(exitSysError)
		}
		defer closeStore()

		svc := app.NewService(store)
		id := resolveTaskID(svc, args[0])

		task, ok := svc.Get(id)
		if !ok {
			fmt.Fprintf(os.Stderr, "no task with id %s\n", id)
			os.Exit(exitUserError)
		}

		printTaskDetail(task)
		return nil
	},
}

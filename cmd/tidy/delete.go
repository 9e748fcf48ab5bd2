// Delete command removes a task permanently.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dukaforge/tidy/internal/app"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, closeStore, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "delete:", err)
			os.Exit(exitSysError)
		}
		defer closeStore()

		svc := app.NewService(store)
		id := resolveTaskID(svc, args[0])

		if err := svc.Delete(id); err != nil {
			fmt.Fprintln(os.Stderr, "delete:", err)
			os.Exit(exitUserError)
		}
		saveStore(store)

		fmt.Printf("Deleted %s\n", id.Short())
		return nil
	},
}

// Export and import commands move tasks through CSV files.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dukaforge/tidy/internal/app"
	"github.com/dukaforge/tidy/internal/csvio"
)

var importReplace bool

var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Export all tasks to a CSV file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, closeStore, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "export:", err)
			os.Exit(exitSysError)
		}
		defer closeStore()

		svc := app.NewService(store)
		tasks := svc.List()
		if err := csvio.Export(args[0], tasks); err != nil {
			fmt.Fprintln(os.Stderr, "export:", err)
			os.Exit(exitSysError)
		}

		fmt.Printf("Exported %d tasks to %s\n", len(tasks), args[0])
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import tasks from a CSV file, replacing the current collection",
	Long: `Import reads tasks from a CSV file previously produced by export.

The import replaces the whole collection, so --replace must be given
explicitly. Completion timestamps are not carried in CSV; a "done" row
comes back done as of the import.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !importReplace {
			fmt.Fprintln(os.Stderr, "import: refusing to replace the current tasks without --replace")
			os.Exit(exitUserError)
		}

		tasks, err := csvio.Import(args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, "import:", err)
			os.Exit(exitUserError)
		}

		store, closeStore, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "import:", err)
			os.Exit(exitSysError)
		}
		defer closeStore()

		svc := app.NewService(store)
		svc.SetAll(tasks)
		saveStore(store)

		fmt.Printf("Imported %d tasks from %s\n", len(tasks), args[0])
		return nil
	},
}

func init() {
	importCmd.Flags().BoolVar(&importReplace, "replace", false, "replace the current task collection")
}

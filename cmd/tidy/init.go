// Init command for the tidy CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dukaforge/tidy/internal/app"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize tidy storage",
	Long: `Init creates the configuration directory with a default config.yaml
and the task store. A brand-new store is seeded with a few starter tasks;
an existing store is left as it is.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "init:", err)
			os.Exit(exitSysError)
		}

		// PersistentPreRunE already created the config dir and default
		// config.yaml; check the store before opening it so seeding only
		// happens on a genuinely fresh database.
		fresh, err := dataFileExists()
		if err != nil {
			fmt.Fprintln(os.Stderr, "init:", err)
			os.Exit(exitSysError)
		}
		fresh = !fresh

		store, closeStore, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "init:", err)
			os.Exit(exitSysError)
		}
		defer closeStore()

		if fresh {
			svc := app.NewService(store)
			svc.InsertMany(app.DefaultTasks())
			saveStore(store)
		}

		dataDir, err := resolveDataDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "init:", err)
			os.Exit(exitSysError)
		}

		fmt.Println("Tidy initialized successfully")
		fmt.Println("  config:", configDir)
		fmt.Println("  data:  ", dataDir)
		if fresh {
			fmt.Println("  seeded starter tasks; run `tidy list` to see them")
		}
		return nil
	},
}

package main

import (
	"os"

	"github.com/spf13/cobra"

	"workbase/internal/interfaces/cli/migrate"
	"workbase/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "workbase",
		Short: "Workbase - work item tracking with bulk CSV import",
		Long:  `Workbase is a work item tracking service with a bulk CSV/TSV importer, built-in server, and migration tools.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

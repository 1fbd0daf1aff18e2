package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/plantops/internal/cli"
	"github.com/example/plantops/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "plantops",
		Short:   "plantops - inspection and maintenance tracking for a plant floor",
		Version: version.String(),
		Long: `plantops tracks daily equipment inspections, scheduled maintenance
and the remarks they raise. It runs as a CLI against a local SQLite
database or serves the same operations over HTTP.`,
		SilenceUsage: true,
	}
	cli.AddGlobalFlags(rootCmd)

	// Daily work
	rootCmd.AddCommand(cli.InspectCmd())
	rootCmd.AddCommand(cli.ChecklistCmd())
	rootCmd.AddCommand(cli.MaintenanceCmd())
	rootCmd.AddCommand(cli.RemarkCmd())

	// Views
	rootCmd.AddCommand(cli.CalendarCmd())
	rootCmd.AddCommand(cli.ReportCmd())

	// Operations
	rootCmd.AddCommand(cli.ServeCmd())
	rootCmd.AddCommand(cli.DBCmd())
	rootCmd.AddCommand(cli.ConfigCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

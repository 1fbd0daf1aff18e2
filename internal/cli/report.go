package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/plantops/internal/wire"
)

// ReportCmd returns the report command
func ReportCmd() *cobra.Command {
	var day string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show the site summary for a day",
		Long: `Show inspection completion, the operational mix of the equipment,
maintenance counts by display status and type, and open remarks.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := parseDay(day)
			if err != nil {
				return err
			}
			_, err = wire.ReportAdapter().Summary(commandContext(cmd), d)
			return err
		},
	}

	cmd.Flags().StringVarP(&day, "day", "d", "", "Day to report (YYYY-MM-DD, default today)")
	return cmd
}

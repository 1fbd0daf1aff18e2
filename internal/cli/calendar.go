package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/example/plantops/internal/wire"
)

// CalendarCmd returns the calendar command
func CalendarCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "calendar",
		Aliases: []string{"cal"},
		Short:   "Show the maintenance calendar",
	}

	cmd.AddCommand(calendarMonthCmd())
	cmd.AddCommand(calendarYearCmd())

	return cmd
}

func calendarMonthCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "month",
		Short: "Show a six-week month grid",
		RunE: func(cmd *cobra.Command, args []string) error {
			anchor, err := parseDay(date)
			if err != nil {
				return err
			}
			_, err = wire.CalendarAdapter().Month(commandContext(cmd), anchor)
			return err
		},
	}

	cmd.Flags().StringVarP(&date, "date", "d", "", "Any day of the month (YYYY-MM-DD, default today)")
	return cmd
}

func calendarYearCmd() *cobra.Command {
	var year int

	cmd := &cobra.Command{
		Use:   "year",
		Short: "Show per-month maintenance totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			if year == 0 {
				year = time.Now().In(siteLocation).Year()
			}
			_, err := wire.CalendarAdapter().Year(commandContext(cmd), year)
			return err
		},
	}

	cmd.Flags().IntVarP(&year, "year", "y", 0, "Year (default current)")
	return cmd
}

package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"

	"github.com/example/plantops/internal/core/calendar"
	"github.com/example/plantops/internal/ports/primary"
)

// CalendarAdapter is a thin adapter that renders CalendarService views.
type CalendarAdapter struct {
	service primary.CalendarService
	out     io.Writer
}

// NewCalendarAdapter creates a new CalendarAdapter with the given service.
func NewCalendarAdapter(service primary.CalendarService, out io.Writer) *CalendarAdapter {
	return &CalendarAdapter{
		service: service,
		out:     out,
	}
}

// toneColor maps a renderer-neutral tone to a terminal colour.
func toneColor(t calendar.Tone) *color.Color {
	switch t {
	case calendar.ToneDanger:
		return color.New(color.FgRed)
	case calendar.ToneWarning:
		return color.New(color.FgYellow)
	case calendar.ToneSuccess:
		return color.New(color.FgGreen)
	case calendar.ToneInfo:
		return color.New(color.FgCyan)
	default:
		return color.New(color.Reset)
	}
}

// Month prints the six-week grid for anchor's month followed by an agenda
// of the month's events.
func (a *CalendarAdapter) Month(ctx context.Context, anchor time.Time) (*primary.MonthView, error) {
	view, err := a.service.MonthGrid(ctx, anchor)
	if err != nil {
		return nil, fmt.Errorf("failed to build month grid: %w", err)
	}

	fmt.Fprintf(a.out, "\n%s %d\n", view.Month, view.Year)
	fmt.Fprintln(a.out, "Mo  Tu  We  Th  Fr  Sa  Su")

	for row := 0; row < calendar.GridSize/7; row++ {
		var line strings.Builder
		for col := 0; col < 7; col++ {
			cell := view.Cells[row*7+col]
			line.WriteString(a.dayLabel(cell))
		}
		fmt.Fprintln(a.out, strings.TrimRight(line.String(), " "))
	}
	fmt.Fprintln(a.out)

	a.agenda(view)
	return view, nil
}

// dayLabel renders one grid cell as a four-column label.
func (a *CalendarAdapter) dayLabel(cell calendar.DayCell) string {
	label := fmt.Sprintf("%2d", cell.Date.Day())
	if !cell.IsCurrentMonth {
		return color.New(color.Faint).Sprint(label) + "  "
	}

	marker := " "
	if len(cell.Maintenance)+len(cell.Tasks) > 0 {
		marker = "*"
	}
	if cell.IsToday {
		label = color.New(color.Bold, color.Underline).Sprint(label)
	}
	return toneColor(calendar.CellStyle(cell)).Sprint(label+marker) + " "
}

func (a *CalendarAdapter) agenda(view *primary.MonthView) {
	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	empty := true
	for _, cell := range view.Cells {
		if !cell.IsCurrentMonth {
			continue
		}
		day := cell.Date.Format("2006-01-02")
		for _, m := range cell.Maintenance {
			style := calendar.MaintenanceStyle(m.Status)
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				day,
				style.Marker,
				m.ID,
				m.EquipmentName,
				toneColor(style.Tone).Sprintf("%s [%s]", m.Type, m.Status),
			)
			empty = false
		}
		for _, t := range cell.Tasks {
			style := calendar.TaskStyle(t.Priority)
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				day,
				style.Marker,
				t.ID,
				t.Title,
				toneColor(style.Tone).Sprintf("%s [%s]", t.Priority, t.Status),
			)
			empty = false
		}
	}
	if empty {
		fmt.Fprintln(a.out, "Nothing scheduled this month.")
		return
	}
	w.Flush()
}

// Year prints per-month maintenance counts for year.
func (a *CalendarAdapter) Year(ctx context.Context, year int) (*primary.YearView, error) {
	view, err := a.service.YearSummary(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("failed to build year summary: %w", err)
	}

	fmt.Fprintf(a.out, "\nMaintenance %d\n", view.Year)
	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "MONTH\tSCHEDULED\tIN PROGRESS\tCOMPLETED\tPOSTPONED\tOVERDUE\tUNPLANNED\tTOTAL")
	for _, m := range view.Months {
		overdue := fmt.Sprint(m.Overdue)
		if m.Overdue > 0 {
			overdue = color.New(color.FgRed).Sprint(overdue)
		}
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\t%s\t%d\t%d\n",
			m.Month.String()[:3],
			m.Scheduled,
			m.InProgress,
			m.Completed,
			m.Postponed,
			overdue,
			m.Unplanned,
			m.Total,
		)
	}
	w.Flush()
	return view, nil
}

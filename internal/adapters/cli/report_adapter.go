package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"github.com/example/plantops/internal/core/inspection"
	"github.com/example/plantops/internal/core/maintenance"
	"github.com/example/plantops/internal/core/remark"
	"github.com/example/plantops/internal/ports/primary"
)

// ReportAdapter renders ReportService summaries.
type ReportAdapter struct {
	service primary.ReportService
	out     io.Writer
}

// NewReportAdapter creates a new ReportAdapter with the given service.
func NewReportAdapter(service primary.ReportService, out io.Writer) *ReportAdapter {
	return &ReportAdapter{
		service: service,
		out:     out,
	}
}

// Summary prints the site summary for day.
func (a *ReportAdapter) Summary(ctx context.Context, day time.Time) (*primary.Report, error) {
	r, err := a.service.Summary(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("failed to build report: %w", err)
	}

	bold := color.New(color.Bold)
	fmt.Fprintf(a.out, "\n%s\n", bold.Sprintf("Site report %s", r.Day))
	fmt.Fprintf(a.out, "Equipment: %d\n\n", r.EquipmentTotal)

	fmt.Fprintln(a.out, bold.Sprint("Inspections"))
	fmt.Fprintf(a.out, "  completed %d / %d (%.1f%%), in progress %d, not started %d\n\n",
		r.Inspections.Completed, r.Inspections.Total, r.Inspections.Percent,
		r.Inspections.InProgress, r.Inspections.NotStarted)

	fmt.Fprintln(a.out, bold.Sprint("Operational"))
	for _, s := range []inspection.OperationalStatus{
		inspection.OperationalWorking,
		inspection.OperationalMaintenance,
		inspection.OperationalNotWorking,
	} {
		fmt.Fprintf(a.out, "  %-12s %d\n", s, r.Operational[s])
	}
	fmt.Fprintln(a.out)

	fmt.Fprintln(a.out, bold.Sprint("Maintenance"))
	for _, s := range maintenance.DisplayStatuses {
		line := fmt.Sprintf("  %-12s %d", s, r.Maintenance[s])
		if s == maintenance.StatusOverdue && r.Maintenance[s] > 0 {
			line = color.New(color.FgRed).Sprint(line)
		}
		fmt.Fprintln(a.out, line)
	}
	fmt.Fprintln(a.out)

	fmt.Fprintln(a.out, bold.Sprint("Maintenance by type"))
	for _, t := range maintenance.Types {
		fmt.Fprintf(a.out, "  %-12s %d\n", t, r.MaintenanceByType[t])
	}
	fmt.Fprintln(a.out)

	fmt.Fprintln(a.out, bold.Sprint("Open remarks"))
	for _, p := range []remark.Priority{remark.PriorityCritical, remark.PriorityHigh, remark.PriorityMedium, remark.PriorityLow} {
		fmt.Fprintf(a.out, "  %-12s %d\n", p, r.OpenRemarks[p])
	}
	fmt.Fprintln(a.out)
	return r, nil
}

package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/example/plantops/internal/core/calendar"
	"github.com/example/plantops/internal/core/maintenance"
	"github.com/example/plantops/internal/ports/primary"
)

// MaintenanceAdapter is a thin adapter that translates CLI operations to
// MaintenanceService calls.
type MaintenanceAdapter struct {
	service primary.MaintenanceService
	out     io.Writer
}

// NewMaintenanceAdapter creates a new MaintenanceAdapter with the given service.
func NewMaintenanceAdapter(service primary.MaintenanceService, out io.Writer) *MaintenanceAdapter {
	return &MaintenanceAdapter{
		service: service,
		out:     out,
	}
}

func displayStatus(m *primary.Maintenance) string {
	style := calendar.MaintenanceStyle(maintenance.Status(m.DisplayStatus))
	return toneColor(style.Tone).Sprint(m.DisplayStatus)
}

// List lists maintenance records matching filters.
func (a *MaintenanceAdapter) List(ctx context.Context, filters primary.MaintenanceFilters) ([]*primary.Maintenance, error) {
	records, err := a.service.ListMaintenance(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list maintenance: %w", err)
	}

	if len(records) == 0 {
		fmt.Fprintln(a.out, "No maintenance records found.")
		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, "Schedule one:")
		fmt.Fprintln(a.out, "  plantops maintenance create EQ-001 --type monthly --date 2025-04-01")
		return records, nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tDATE\tEQUIPMENT\tTYPE\tSTATUS\tPRIORITY\tRESPONSIBLE")
	fmt.Fprintln(w, "--\t----\t---------\t----\t------\t--------\t-----------")
	for _, m := range records {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			m.ID,
			m.ScheduledDate,
			m.EquipmentName,
			m.Type,
			displayStatus(m),
			m.Priority,
			m.Responsible,
		)
	}
	w.Flush()
	return records, nil
}

// Show displays details for a single maintenance record.
func (a *MaintenanceAdapter) Show(ctx context.Context, id string) (*primary.Maintenance, error) {
	m, err := a.service.GetMaintenance(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get maintenance: %w", err)
	}
	a.print(m)
	return m, nil
}

// Print renders a record returned by a mutating call.
func (a *MaintenanceAdapter) Print(verb string, m *primary.Maintenance) {
	fmt.Fprintf(a.out, "✓ Maintenance %s %s\n", m.ID, verb)
	a.print(m)
}

func (a *MaintenanceAdapter) print(m *primary.Maintenance) {
	fmt.Fprintf(a.out, "\nMaintenance: %s\n", m.ID)
	fmt.Fprintf(a.out, "Equipment:   %s (%s)\n", m.EquipmentName, m.EquipmentID)
	fmt.Fprintf(a.out, "Type:        %s\n", m.Type)
	fmt.Fprintf(a.out, "Scheduled:   %s\n", m.ScheduledDate)
	if m.CompletedDate != "" {
		fmt.Fprintf(a.out, "Completed:   %s\n", m.CompletedDate)
	}
	fmt.Fprintf(a.out, "Status:      %s\n", displayStatus(m))
	fmt.Fprintf(a.out, "Priority:    %s\n", m.Priority)
	if m.Responsible != "" {
		fmt.Fprintf(a.out, "Responsible: %s\n", m.Responsible)
	}
	if m.DurationMinutes > 0 {
		fmt.Fprintf(a.out, "Duration:    %d min\n", m.DurationMinutes)
	}
	if m.Notes != "" {
		fmt.Fprintln(a.out, "Notes:")
		fmt.Fprintln(a.out, color.New(color.Faint).Sprint(m.Notes))
	}
	fmt.Fprintln(a.out)
}

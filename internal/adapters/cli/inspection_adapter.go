package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"

	"github.com/example/plantops/internal/core/checklist"
	"github.com/example/plantops/internal/core/inspection"
	"github.com/example/plantops/internal/ports/primary"
)

// InspectionAdapter is a thin adapter that translates CLI operations to
// InspectionService calls.
type InspectionAdapter struct {
	service primary.InspectionService
	out     io.Writer
}

// NewInspectionAdapter creates a new InspectionAdapter with the given service.
func NewInspectionAdapter(service primary.InspectionService, out io.Writer) *InspectionAdapter {
	return &InspectionAdapter{
		service: service,
		out:     out,
	}
}

func sessionLabel(s inspection.SessionStatus) string {
	switch s {
	case inspection.SessionCompleted:
		return color.New(color.FgGreen).Sprint("✓ completed")
	case inspection.SessionInProgress:
		return color.New(color.FgYellow).Sprint("… in progress")
	default:
		return color.New(color.Faint).Sprint("- not started")
	}
}

func operationalLabel(s inspection.OperationalStatus) string {
	switch s {
	case inspection.OperationalNotWorking:
		return color.New(color.FgRed).Sprint(s)
	case inspection.OperationalMaintenance:
		return color.New(color.FgYellow).Sprint(s)
	default:
		return color.New(color.FgGreen).Sprint(s)
	}
}

func checkLabel(s checklist.CheckStatus) string {
	switch s {
	case checklist.StatusCritical:
		return color.New(color.FgRed).Sprint(s)
	case checklist.StatusAttention:
		return color.New(color.FgYellow).Sprint(s)
	default:
		return string(s)
	}
}

// Board prints the daily status of every equipment.
func (a *InspectionAdapter) Board(ctx context.Context, day time.Time) ([]*primary.EquipmentInspectionStatus, error) {
	statuses, err := a.service.DailyStatus(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("failed to load daily status: %w", err)
	}

	if len(statuses) == 0 {
		fmt.Fprintln(a.out, "No equipment registered.")
		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, "Load the demo register:")
		fmt.Fprintln(a.out, "  plantops db seed")
		return statuses, nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tEQUIPMENT\tINSPECTION\tISSUES\tSTATUS\tINSPECTOR")
	fmt.Fprintln(w, "--\t---------\t----------\t------\t------\t---------")
	for _, s := range statuses {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%s\n",
			s.EquipmentID,
			s.EquipmentName,
			sessionLabel(s.Session),
			s.IssueCount,
			operationalLabel(s.Operational),
			s.Inspector,
		)
	}
	w.Flush()
	return statuses, nil
}

// Sheet prints the items an inspector works through for an equipment.
func (a *InspectionAdapter) Sheet(ctx context.Context, equipmentID string) (*primary.ResolvedItems, error) {
	resolved, err := a.service.ResolveItems(ctx, primary.ResolveItemsRequest{
		EquipmentID:          equipmentID,
		PreferCachedProgress: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to resolve checklist: %w", err)
	}

	fmt.Fprintf(a.out, "\nInspection sheet: %s (%s)\n", resolved.EquipmentID, resolved.Day)
	switch {
	case resolved.Resumed:
		fmt.Fprintf(a.out, "Resumed progress saved at %s\n", resolved.SavedAt.Format("15:04"))
	case !resolved.FromTemplate:
		fmt.Fprintln(a.out, "No template configured, using the default checklist")
	}
	fmt.Fprintln(a.out)

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCATEGORY\tITEM\tSTATUS\tNOTES")
	for _, item := range resolved.Items {
		mark := " "
		if item.Checked {
			mark = "x"
		}
		fmt.Fprintf(w, "[%s] %s\t%s\t%s\t%s\t%s\n",
			mark,
			item.ID,
			item.Category,
			item.Text,
			checkLabel(item.Status),
			item.Notes,
		)
	}
	w.Flush()
	return resolved, nil
}

// Complete records an inspection and prints its outcome.
func (a *InspectionAdapter) Complete(ctx context.Context, req primary.CompleteInspectionRequest) (*primary.CompleteInspectionResponse, error) {
	resp, err := a.service.CompleteInspection(ctx, req)
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(a.out, "✓ Inspection %s recorded for %s\n", resp.Record.ID, resp.Record.EquipmentName)
	fmt.Fprintf(a.out, "  Status: %s (%d issues)\n", operationalLabel(resp.Record.Operational), resp.Record.IssueCount)
	if resp.ReplacedID != "" {
		fmt.Fprintf(a.out, "  Replaced earlier record %s\n", resp.ReplacedID)
	}
	for _, r := range resp.Remarks {
		fmt.Fprintf(a.out, "  Remark [%s] %s\n", r.Priority, r.Title)
	}
	return resp, nil
}

// History lists recorded inspections.
func (a *InspectionAdapter) History(ctx context.Context, filters primary.InspectionFilters) ([]*primary.Inspection, error) {
	records, err := a.service.ListInspections(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list inspections: %w", err)
	}

	if len(records) == 0 {
		fmt.Fprintln(a.out, "No inspections found.")
		return records, nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "DATE\tEQUIPMENT\tINSPECTOR\tISSUES\tSTATUS\tID")
	fmt.Fprintln(w, "----\t---------\t---------\t------\t------\t--")
	for _, r := range records {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%s\n",
			r.Date,
			r.EquipmentName,
			r.Inspector,
			r.IssueCount,
			operationalLabel(r.Operational),
			r.ID,
		)
	}
	w.Flush()
	return records, nil
}

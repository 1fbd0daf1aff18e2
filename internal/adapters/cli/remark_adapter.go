package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/example/plantops/internal/core/remark"
	"github.com/example/plantops/internal/ports/primary"
)

// RemarkAdapter is a thin adapter that translates CLI operations to
// RemarkService calls.
type RemarkAdapter struct {
	service primary.RemarkService
	out     io.Writer
}

// NewRemarkAdapter creates a new RemarkAdapter with the given service.
func NewRemarkAdapter(service primary.RemarkService, out io.Writer) *RemarkAdapter {
	return &RemarkAdapter{
		service: service,
		out:     out,
	}
}

func priorityLabel(p string) string {
	switch remark.Priority(p) {
	case remark.PriorityCritical:
		return color.New(color.FgRed, color.Bold).Sprint(p)
	case remark.PriorityHigh:
		return color.New(color.FgRed).Sprint(p)
	case remark.PriorityMedium:
		return color.New(color.FgYellow).Sprint(p)
	default:
		return p
	}
}

// List lists remarks matching filters.
func (a *RemarkAdapter) List(ctx context.Context, filters primary.RemarkFilters) ([]*primary.Remark, error) {
	remarks, err := a.service.ListRemarks(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list remarks: %w", err)
	}

	if len(remarks) == 0 {
		fmt.Fprintln(a.out, "No remarks found.")
		return remarks, nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tEQUIPMENT\tPRIORITY\tSTATUS\tSOURCE\tTITLE")
	fmt.Fprintln(w, "--\t---------\t--------\t------\t------\t-----")
	for _, r := range remarks {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			shortID(r.ID),
			r.EquipmentName,
			priorityLabel(r.Priority),
			r.Status,
			r.Source,
			r.Title,
		)
	}
	w.Flush()
	return remarks, nil
}

// Show displays details for a single remark.
func (a *RemarkAdapter) Show(ctx context.Context, id string) (*primary.Remark, error) {
	r, err := a.service.GetRemark(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get remark: %w", err)
	}
	a.Print(r)
	return r, nil
}

// Print renders a single remark.
func (a *RemarkAdapter) Print(r *primary.Remark) {
	fmt.Fprintf(a.out, "\nRemark: %s\n", r.ID)
	fmt.Fprintf(a.out, "Title:     %s\n", r.Title)
	fmt.Fprintf(a.out, "Equipment: %s (%s)\n", r.EquipmentName, r.EquipmentID)
	fmt.Fprintf(a.out, "Priority:  %s\n", priorityLabel(r.Priority))
	fmt.Fprintf(a.out, "Status:    %s\n", r.Status)
	fmt.Fprintf(a.out, "Source:    %s\n", r.Source)
	fmt.Fprintf(a.out, "Reporter:  %s\n", r.Reporter)
	if r.Assignee != "" {
		fmt.Fprintf(a.out, "Assignee:  %s\n", r.Assignee)
	}
	if r.Description != "" {
		fmt.Fprintf(a.out, "\n%s\n", r.Description)
	}
	for _, n := range r.Notes {
		fmt.Fprintf(a.out, "  - %s\n", n)
	}
	fmt.Fprintln(a.out)
}

// shortID trims uuids to their first block for table output.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

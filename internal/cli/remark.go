package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/plantops/internal/ports/primary"
	"github.com/example/plantops/internal/wire"
)

// RemarkCmd returns the remark command
func RemarkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remark",
		Short: "Track equipment remarks",
		Long: `Remarks are problems noticed on equipment. Inspections raise them
automatically for critical items and annotated attention items; operators
can also file them by hand.

Lifecycle: open → in_progress → resolved → closed (resolved may reopen).`,
	}

	cmd.AddCommand(remarkListCmd())
	cmd.AddCommand(remarkShowCmd())
	cmd.AddCommand(remarkCreateCmd())
	cmd.AddCommand(remarkStatusCmd())
	cmd.AddCommand(remarkNoteCmd())
	cmd.AddCommand(remarkAssignCmd())

	return cmd
}

func remarkListCmd() *cobra.Command {
	var filters primary.RemarkFilters

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List remarks, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := wire.RemarkAdapter().List(commandContext(cmd), filters)
			return err
		},
	}

	cmd.Flags().StringVarP(&filters.Status, "status", "s", "", "Filter by status")
	cmd.Flags().StringVar(&filters.Source, "source", "", "Filter by source (inspection, maintenance, manual)")
	cmd.Flags().StringVarP(&filters.EquipmentID, "equipment", "e", "", "Filter by equipment ID")
	cmd.Flags().IntVarP(&filters.Limit, "limit", "l", 0, "Maximum number of remarks")
	return cmd
}

func remarkShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [remark-id]",
		Short: "Show remark details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := wire.RemarkAdapter().Show(commandContext(cmd), args[0])
			return err
		},
	}
}

func remarkCreateCmd() *cobra.Command {
	var req primary.CreateRemarkRequest

	cmd := &cobra.Command{
		Use:   "create [equipment-id] [title]",
		Short: "File a remark by hand",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req.EquipmentID = args[0]
			req.Title = args[1]

			r, err := wire.RemarkService().CreateRemark(commandContext(cmd), req)
			if err != nil {
				return err
			}
			fmt.Printf("✓ Created remark %s\n", r.ID)
			wire.RemarkAdapter().Print(r)
			return nil
		},
	}

	cmd.Flags().StringVarP(&req.Description, "description", "d", "", "Description")
	cmd.Flags().StringVarP(&req.Priority, "priority", "p", "", "Priority: low, medium, high, critical")
	cmd.Flags().StringVar(&req.Assignee, "assignee", "", "Assignee")
	return cmd
}

func remarkStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status [remark-id] [status]",
		Short: "Move a remark to a new status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := wire.RemarkService().TransitionRemark(commandContext(cmd), primary.TransitionRemarkRequest{
				ID:     args[0],
				Status: args[1],
			})
			if err != nil {
				return err
			}
			fmt.Printf("✓ Remark %s is now %s\n", shortID(r.ID), r.Status)
			return nil
		},
	}
}

func remarkNoteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "note [remark-id] [note]",
		Short: "Append a note to a remark",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := wire.RemarkService().AddRemarkNote(commandContext(cmd), primary.AddRemarkNoteRequest{
				ID:   args[0],
				Note: args[1],
			})
			if err != nil {
				return err
			}
			fmt.Printf("✓ Note added to remark %s (%d notes)\n", shortID(r.ID), len(r.Notes))
			return nil
		},
	}
}

func remarkAssignCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "assign [remark-id] [assignee]",
		Short: "Assign a remark",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := wire.RemarkService().AssignRemark(commandContext(cmd), primary.AssignRemarkRequest{
				ID:       args[0],
				Assignee: args[1],
			})
			if err != nil {
				return err
			}
			fmt.Printf("✓ Remark %s assigned to %s\n", shortID(r.ID), r.Assignee)
			return nil
		},
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/plantops/internal/core/checklist"
	"github.com/example/plantops/internal/ports/primary"
	"github.com/example/plantops/internal/wire"
)

// InspectCmd returns the inspect command
func InspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Run daily equipment inspections",
		Long: `Work through the daily checklist of each equipment.

Answers are auto-saved as progress and can be resumed for a limited time.
Completing an inspection records the outcome, derives the equipment's
operational status and raises remarks for critical and noted findings.`,
	}

	cmd.AddCommand(inspectBoardCmd())
	cmd.AddCommand(inspectSheetCmd())
	cmd.AddCommand(inspectSaveCmd())
	cmd.AddCommand(inspectDiscardCmd())
	cmd.AddCommand(inspectCompleteCmd())
	cmd.AddCommand(inspectHistoryCmd())
	cmd.AddCommand(inspectDeleteCmd())

	return cmd
}

func inspectBoardCmd() *cobra.Command {
	var day string

	cmd := &cobra.Command{
		Use:   "board",
		Short: "Show the inspection status of every equipment for a day",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := parseDay(day)
			if err != nil {
				return err
			}
			_, err = wire.InspectionAdapter().Board(commandContext(cmd), d)
			return err
		},
	}

	cmd.Flags().StringVarP(&day, "day", "d", "", "Day (YYYY-MM-DD, default today)")
	return cmd
}

func inspectSheetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sheet [equipment-id]",
		Short: "Show today's checklist for an equipment, resuming saved progress",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := wire.InspectionAdapter().Sheet(commandContext(cmd), args[0])
			return err
		},
	}
}

// resolveAnswered loads today's items and applies the given answers.
func resolveAnswered(cmd *cobra.Command, equipmentID string, answers []string, allOK bool) ([]checklist.Item, error) {
	resolved, err := wire.InspectionService().ResolveItems(commandContext(cmd), primary.ResolveItemsRequest{
		EquipmentID:          equipmentID,
		PreferCachedProgress: true,
	})
	if err != nil {
		return nil, err
	}

	items, err := applyAnswers(resolved.Items, answers)
	if err != nil {
		return nil, err
	}
	if allOK {
		items = answerAll(items, checklist.StatusOK)
	}
	return items, nil
}

func inspectSaveCmd() *cobra.Command {
	var answers []string

	cmd := &cobra.Command{
		Use:   "save [equipment-id]",
		Short: "Save answers as in-flight progress",
		Long: `Save answers without completing the inspection.

Examples:
  plantops inspect save EQ-001 -a item-0=ok -a "item-3=attention:oil below mark"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := resolveAnswered(cmd, args[0], answers, false)
			if err != nil {
				return err
			}

			snapshot, err := wire.InspectionService().SaveProgress(commandContext(cmd), primary.SaveProgressRequest{
				EquipmentID: args[0],
				Items:       items,
			})
			if err != nil {
				return err
			}

			fmt.Printf("✓ Progress saved for %s (%d items)\n", snapshot.EquipmentID, snapshot.ItemCount)
			fmt.Printf("  Resumable until %s\n", snapshot.ExpiresAt.Format("15:04"))
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&answers, "answer", "a", nil, "Answer as <item-id>=<ok|attention|critical>[:notes] (repeatable)")
	return cmd
}

func inspectDiscardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "discard [equipment-id]",
		Short: "Discard today's saved progress",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := wire.InspectionService().DiscardProgress(commandContext(cmd), args[0]); err != nil {
				return err
			}
			fmt.Printf("✓ Progress discarded for %s\n", args[0])
			return nil
		},
	}
}

func inspectCompleteCmd() *cobra.Command {
	var answers []string
	var notes string
	var allOK bool

	cmd := &cobra.Command{
		Use:   "complete [equipment-id]",
		Short: "Complete today's inspection",
		Long: `Record today's inspection of an equipment.

Unanswered items keep the answers from saved progress. Completing again on
the same day replaces the earlier record.

Examples:
  plantops inspect complete EQ-001 --all-ok
  plantops inspect complete EQ-002 -a "item-1=critical:chuck jaw cracked" --all-ok --notes "stopped line 2"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := resolveAnswered(cmd, args[0], answers, allOK)
			if err != nil {
				return err
			}

			_, err = wire.InspectionAdapter().Complete(commandContext(cmd), primary.CompleteInspectionRequest{
				EquipmentID:  args[0],
				Items:        items,
				GeneralNotes: notes,
				Inspector:    actorName(),
			})
			return err
		},
	}

	cmd.Flags().StringArrayVarP(&answers, "answer", "a", nil, "Answer as <item-id>=<ok|attention|critical>[:notes] (repeatable)")
	cmd.Flags().StringVarP(&notes, "notes", "n", "", "General notes for the whole inspection")
	cmd.Flags().BoolVar(&allOK, "all-ok", false, "Answer every remaining item ok")
	return cmd
}

func inspectHistoryCmd() *cobra.Command {
	var equipmentID, from, to string
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded inspections",
		RunE: func(cmd *cobra.Command, args []string) error {
			fromDay, err := parseDay(from)
			if err != nil {
				return err
			}
			toDay, err := parseDay(to)
			if err != nil {
				return err
			}

			_, err = wire.InspectionAdapter().History(commandContext(cmd), primary.InspectionFilters{
				EquipmentID: equipmentID,
				From:        fromDay,
				To:          toDay,
				Limit:       limit,
			})
			return err
		},
	}

	cmd.Flags().StringVarP(&equipmentID, "equipment", "e", "", "Filter by equipment ID")
	cmd.Flags().StringVar(&from, "from", "", "First day (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "Last day (YYYY-MM-DD)")
	cmd.Flags().IntVarP(&limit, "limit", "l", 0, "Maximum records (0 = all)")
	return cmd
}

func inspectDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [inspection-id]",
		Short: "Delete an inspection record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := wire.InspectionService().DeleteInspection(commandContext(cmd), args[0]); err != nil {
				return err
			}
			fmt.Printf("✓ Deleted inspection %s\n", args[0])
			return nil
		},
	}
}

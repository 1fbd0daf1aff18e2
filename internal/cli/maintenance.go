package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/plantops/internal/ports/primary"
	"github.com/example/plantops/internal/wire"
)

// MaintenanceCmd returns the maintenance command
func MaintenanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "maintenance",
		Aliases: []string{"mnt"},
		Short:   "Schedule and track maintenance",
		Long: `Create and manage maintenance records.

Records move scheduled → in_progress → completed. A scheduled record whose
date has passed is reported as overdue; overdue is never stored.`,
	}

	cmd.AddCommand(maintenanceListCmd())
	cmd.AddCommand(maintenanceShowCmd())
	cmd.AddCommand(maintenanceCreateCmd())
	cmd.AddCommand(maintenanceUpdateCmd())
	cmd.AddCommand(maintenanceStartCmd())
	cmd.AddCommand(maintenancePostponeCmd())
	cmd.AddCommand(maintenanceRescheduleCmd())
	cmd.AddCommand(maintenanceCompleteCmd())
	cmd.AddCommand(maintenanceNoteCmd())
	cmd.AddCommand(maintenanceDeleteCmd())

	return cmd
}

func maintenanceListCmd() *cobra.Command {
	var filters primary.MaintenanceFilters
	var from, to string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List maintenance records",
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if filters.From, err = parseDay(from); err != nil {
				return err
			}
			if filters.To, err = parseDay(to); err != nil {
				return err
			}
			_, err = wire.MaintenanceAdapter().List(commandContext(cmd), filters)
			return err
		},
	}

	cmd.Flags().StringVarP(&filters.EquipmentID, "equipment", "e", "", "Filter by equipment ID")
	cmd.Flags().StringVarP(&filters.Status, "status", "s", "", "Filter by status (overdue included)")
	cmd.Flags().StringVarP(&filters.Type, "type", "t", "", "Filter by type")
	cmd.Flags().StringVar(&from, "from", "", "First day (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "Last day (YYYY-MM-DD)")
	return cmd
}

func maintenanceShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [maintenance-id]",
		Short: "Show maintenance details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := wire.MaintenanceAdapter().Show(commandContext(cmd), args[0])
			return err
		},
	}
}

func maintenanceCreateCmd() *cobra.Command {
	var req primary.CreateMaintenanceRequest
	var date string

	cmd := &cobra.Command{
		Use:   "create [equipment-id]",
		Short: "Schedule maintenance for an equipment",
		Long: `Schedule maintenance. Repairs and unplanned work start as unplanned,
everything else as scheduled, unless --status says otherwise.

Examples:
  plantops maintenance create EQ-001 --type monthly --date 2025-04-01
  plantops maintenance create EQ-005 --type repair --priority high --responsible sidorov`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if req.ScheduledDate, err = parseDay(date); err != nil {
				return err
			}
			if req.ScheduledDate.IsZero() {
				return fmt.Errorf("--date is required")
			}
			req.EquipmentID = args[0]

			m, err := wire.MaintenanceService().CreateMaintenance(commandContext(cmd), req)
			if err != nil {
				return err
			}
			wire.MaintenanceAdapter().Print("created", m)
			return nil
		},
	}

	cmd.Flags().StringVarP(&req.Type, "type", "t", "", "Type: monthly, quarterly, semiannual, annual, repair, unplanned")
	cmd.Flags().StringVarP(&date, "date", "d", "", "Scheduled day (YYYY-MM-DD)")
	cmd.Flags().IntVar(&req.DurationMinutes, "duration", 0, "Planned duration in minutes")
	cmd.Flags().StringVarP(&req.Responsible, "responsible", "r", "", "Responsible person")
	cmd.Flags().StringVar(&req.Status, "status", "", "Initial status (default derived from type)")
	cmd.Flags().StringVarP(&req.Priority, "priority", "p", "", "Priority: low, medium, high, critical")
	cmd.Flags().StringVarP(&req.Notes, "notes", "n", "", "Notes")
	_ = cmd.MarkFlagRequired("type")
	return cmd
}

func maintenanceUpdateCmd() *cobra.Command {
	var typ, date, responsible, status, priority, notes string
	var duration int

	cmd := &cobra.Command{
		Use:   "update [maintenance-id]",
		Short: "Edit a maintenance record",
		Long: `Edit any field of a maintenance record. Only the given flags change.
Setting --status completed stamps today's completion date; any other
status clears it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := primary.UpdateMaintenanceRequest{ID: args[0]}
			flags := cmd.Flags()
			if flags.Changed("type") {
				req.Type = &typ
			}
			if flags.Changed("date") {
				d, err := parseDay(date)
				if err != nil {
					return err
				}
				req.ScheduledDate = &d
			}
			if flags.Changed("duration") {
				req.DurationMinutes = &duration
			}
			if flags.Changed("responsible") {
				req.Responsible = &responsible
			}
			if flags.Changed("status") {
				req.Status = &status
			}
			if flags.Changed("priority") {
				req.Priority = &priority
			}
			if flags.Changed("notes") {
				req.Notes = &notes
			}

			m, err := wire.MaintenanceService().UpdateMaintenance(commandContext(cmd), req)
			if err != nil {
				return err
			}
			wire.MaintenanceAdapter().Print("updated", m)
			return nil
		},
	}

	cmd.Flags().StringVarP(&typ, "type", "t", "", "Type")
	cmd.Flags().StringVarP(&date, "date", "d", "", "Scheduled day (YYYY-MM-DD)")
	cmd.Flags().IntVar(&duration, "duration", 0, "Planned duration in minutes")
	cmd.Flags().StringVarP(&responsible, "responsible", "r", "", "Responsible person")
	cmd.Flags().StringVar(&status, "status", "", "Status")
	cmd.Flags().StringVarP(&priority, "priority", "p", "", "Priority")
	cmd.Flags().StringVarP(&notes, "notes", "n", "", "Replace the notes")
	return cmd
}

func maintenanceStartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start [maintenance-id]",
		Short: "Start scheduled maintenance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := wire.MaintenanceService().StartMaintenance(commandContext(cmd), args[0])
			if err != nil {
				return err
			}
			wire.MaintenanceAdapter().Print("started", m)
			return nil
		},
	}
}

func maintenancePostponeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "postpone [maintenance-id]",
		Short: "Postpone scheduled maintenance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := wire.MaintenanceService().PostponeMaintenance(commandContext(cmd), args[0])
			if err != nil {
				return err
			}
			wire.MaintenanceAdapter().Print("postponed", m)
			return nil
		},
	}
}

func maintenanceRescheduleCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "reschedule [maintenance-id]",
		Short: "Put maintenance back on the schedule, optionally on a new day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := parseDay(date)
			if err != nil {
				return err
			}
			m, err := wire.MaintenanceService().RescheduleMaintenance(commandContext(cmd), primary.RescheduleMaintenanceRequest{
				ID:   args[0],
				Date: d,
			})
			if err != nil {
				return err
			}
			wire.MaintenanceAdapter().Print("rescheduled", m)
			return nil
		},
	}

	cmd.Flags().StringVarP(&date, "date", "d", "", "New day (YYYY-MM-DD, default keeps the current day)")
	return cmd
}

func maintenanceCompleteCmd() *cobra.Command {
	var note string

	cmd := &cobra.Command{
		Use:   "complete [maintenance-id]",
		Short: "Mark maintenance completed today",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := wire.MaintenanceService().CompleteMaintenance(commandContext(cmd), primary.CompleteMaintenanceRequest{
				ID:   args[0],
				Note: note,
			})
			if err != nil {
				return err
			}
			wire.MaintenanceAdapter().Print("completed", m)
			return nil
		},
	}

	cmd.Flags().StringVarP(&note, "note", "n", "", "Completion note")
	return cmd
}

func maintenanceNoteCmd() *cobra.Command {
	var priority string

	cmd := &cobra.Command{
		Use:   "note [maintenance-id] [note]",
		Short: "Add a note and raise a remark for it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := wire.MaintenanceService().AddMaintenanceNote(commandContext(cmd), primary.AddMaintenanceNoteRequest{
				ID:       args[0],
				Note:     args[1],
				Priority: priority,
			})
			if err != nil {
				return err
			}
			fmt.Printf("✓ Note added to %s\n", args[0])
			fmt.Printf("  Remark %s [%s] %s\n", r.ID, r.Priority, r.Title)
			return nil
		},
	}

	cmd.Flags().StringVarP(&priority, "priority", "p", "", "Priority of the raised remark (default medium)")
	return cmd
}

func maintenanceDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [maintenance-id]",
		Short: "Delete a maintenance record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := wire.MaintenanceService().DeleteMaintenance(commandContext(cmd), args[0]); err != nil {
				return err
			}
			fmt.Printf("✓ Deleted maintenance %s\n", args[0])
			return nil
		},
	}
}

package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/plantops/internal/ports/primary"
	"github.com/example/plantops/internal/wire"
)

// ChecklistCmd returns the checklist command
func ChecklistCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "checklist",
		Short: "Manage per-equipment checklist templates",
	}

	cmd.AddCommand(checklistShowCmd())
	cmd.AddCommand(checklistSetCmd())

	return cmd
}

func checklistShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [equipment-id]",
		Short: "Show the checklist template of an equipment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tmpl, err := wire.ChecklistService().GetTemplate(commandContext(cmd), args[0])
			if err != nil {
				return err
			}
			if tmpl == nil {
				fmt.Printf("No checklist configured for %s; inspections use the default list.\n", args[0])
				return nil
			}

			fmt.Printf("\nChecklist: %s\n", tmpl.ID)
			fmt.Printf("Equipment: %s (%s)\n", tmpl.EquipmentName, tmpl.EquipmentID)
			fmt.Printf("Updated:   %s\n\n", tmpl.UpdatedAt.Format("2006-01-02 15:04"))
			for i, e := range tmpl.Entries {
				fmt.Printf("  %2d. %s\n", i+1, e.String())
			}
			if dropped := len(tmpl.Items) - len(tmpl.Entries); dropped > 0 {
				fmt.Printf("\n  (%d malformed lines ignored)\n", dropped)
			}
			return nil
		},
	}
}

func checklistSetCmd() *cobra.Command {
	var items []string
	var file string

	cmd := &cobra.Command{
		Use:   "set [equipment-id]",
		Short: "Create or replace the checklist template of an equipment",
		Long: `Create or replace a checklist template. Each line is "category: item".

Examples:
  plantops checklist set EQ-002 -i "Safety: Chuck guard closed" -i "Lubrication: Oil level"
  plantops checklist set EQ-002 --file lathe.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if file != "" {
				fromFile, err := readLines(file)
				if err != nil {
					return err
				}
				items = append(items, fromFile...)
			}

			resp, err := wire.ChecklistService().UpsertTemplate(commandContext(cmd), primary.UpsertTemplateRequest{
				EquipmentID: args[0],
				Items:       items,
			})
			if err != nil {
				return err
			}

			verb := "Updated"
			if resp.Created {
				verb = "Created"
			}
			fmt.Printf("✓ %s checklist %s for %s (%d items)\n", verb, resp.Template.ID, resp.Template.EquipmentName, len(resp.Template.Entries))
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&items, "item", "i", nil, "Checklist line \"category: item\" (repeatable)")
	cmd.Flags().StringVarP(&file, "file", "f", "", "Read lines from a file, one per line")
	return cmd
}

// readLines returns the non-blank lines of path.
func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return lines, nil
}

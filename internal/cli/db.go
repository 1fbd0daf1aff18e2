package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/plantops/internal/db"
	"github.com/example/plantops/internal/version"
)

// DBCmd returns the db command
func DBCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "db",
		Short: "Database maintenance",
	}

	cmd.AddCommand(dbMigrateCmd())
	cmd.AddCommand(dbSeedCmd())

	return cmd
}

func dbMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			ctx := commandContext(cmd)

			database, err := db.Open(ctx, cfg.DatabasePath)
			if err != nil {
				return err
			}
			defer database.Close()

			v, err := db.SchemaVersion(ctx, database)
			if err != nil {
				return err
			}
			fmt.Printf("✓ Database %s at schema version %d\n", cfg.DatabasePath, v)
			fmt.Printf("  %s\n", version.String())
			return nil
		},
	}
}

func dbSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load demo equipment, checklists and maintenance",
		Long: `Insert the demo plant: a handful of equipment with checklist templates
and maintenance spread around today. Existing rows are left in place.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			ctx := commandContext(cmd)

			database, err := db.Open(ctx, cfg.DatabasePath)
			if err != nil {
				return err
			}
			defer database.Close()

			if err := db.SeedDemo(ctx, database, time.Now().In(siteLocation)); err != nil {
				return err
			}
			fmt.Printf("✓ Seeded demo data into %s\n", cfg.DatabasePath)
			return nil
		},
	}
}

package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/plantops/internal/config"
	"github.com/example/plantops/internal/ctxutil"
	"github.com/example/plantops/internal/wire"
)

// globalFlags are the persistent flags shared by every command.
type globalFlags struct {
	configPath string
	dbPath     string
	logLevel   string
	actor      string
}

var globals globalFlags

// siteLocation is the configured zone used to read day flags.
var siteLocation = time.Local

// AddGlobalFlags registers the persistent flags on root and loads the
// configuration before any subcommand runs.
func AddGlobalFlags(root *cobra.Command) {
	root.PersistentFlags().StringVar(&globals.configPath, "config", "", "Config file (default ~/.plantops/config.yaml)")
	root.PersistentFlags().StringVar(&globals.dbPath, "db", "", "SQLite database path (overrides config)")
	root.PersistentFlags().StringVar(&globals.logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
	root.PersistentFlags().StringVar(&globals.actor, "as", "", "Name recorded as inspector/reporter (default $USER)")

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		loc, err := cfg.TimeLocation()
		if err != nil {
			return err
		}
		siteLocation = loc
		wire.Configure(cfg)
		return nil
	}
	root.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		return wire.Shutdown()
	}
}

// loadConfig resolves defaults, then the config file, then flags.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig(globals.configPath)
	if err != nil {
		return nil, err
	}
	if globals.dbPath != "" {
		cfg.DatabasePath = globals.dbPath
	}
	if globals.logLevel != "" {
		cfg.LogLevel = globals.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// actorName returns the --as flag, falling back to the login name.
func actorName() string {
	if globals.actor != "" {
		return globals.actor
	}
	return os.Getenv("USER")
}

// commandContext returns the command's context carrying the actor.
func commandContext(cmd *cobra.Command) context.Context {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if actor := actorName(); actor != "" {
		ctx = ctxutil.WithActorID(ctx, actor)
	}
	return ctx
}

// parseDay parses a YYYY-MM-DD flag in the site zone; empty means today.
func parseDay(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	t, err := time.ParseInLocation("2006-01-02", raw, siteLocation)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", raw)
	}
	return t, nil
}

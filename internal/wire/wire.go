// Package wire provides dependency injection for the plantops application.
// It creates singleton services with lazy initialization.
package wire

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	badgercache "github.com/example/plantops/internal/adapters/badger"
	"github.com/example/plantops/internal/adapters/changefeed"
	cliadapter "github.com/example/plantops/internal/adapters/cli"
	"github.com/example/plantops/internal/adapters/httpapi"
	"github.com/example/plantops/internal/adapters/sqlite"
	"github.com/example/plantops/internal/app"
	"github.com/example/plantops/internal/config"
	"github.com/example/plantops/internal/db"
	"github.com/example/plantops/internal/logging"
	"github.com/example/plantops/internal/metrics"
	"github.com/example/plantops/internal/ports/primary"
)

// Container holds every long-lived collaborator of one plantops process.
type Container struct {
	Config   *config.Config
	Logger   *logging.SlogLogger
	Location *time.Location
	DB       *sql.DB
	Cache    *badgercache.ProgressCache
	Feed     *changefeed.Feed
	Registry *prometheus.Registry
	Metrics  *metrics.Collectors

	ChecklistService   primary.ChecklistService
	InspectionService  primary.InspectionService
	MaintenanceService primary.MaintenanceService
	RemarkService      primary.RemarkService
	CalendarService    primary.CalendarService
	ReportService      primary.ReportService

	unsubscribe func()
}

// Build opens storage and creates every service described by cfg.
// The caller owns the result and must Close it.
func Build(ctx context.Context, cfg *config.Config, logOut io.Writer) (*Container, error) {
	loc, err := cfg.TimeLocation()
	if err != nil {
		return nil, err
	}
	logger, err := logging.New(logOut, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, err
	}

	db.SetLogger(logger)
	database, err := db.Open(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, err
	}

	cacheCfg := badgercache.DefaultConfig(cfg.CacheDir)
	if cfg.CacheInMemory {
		cacheCfg = badgercache.InMemoryConfig()
	}
	cacheCfg.Logger = logger.Slog().With("component", "badger")
	cache, err := badgercache.NewProgressCache(cacheCfg, cfg.ProgressTTL)
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to open progress cache: %w", err)
	}

	c := &Container{
		Config:   cfg,
		Logger:   logger,
		Location: loc,
		DB:       database,
		Cache:    cache,
		Feed:     changefeed.New(changefeed.WithLogger(logger)),
		Registry: prometheus.NewRegistry(),
	}
	c.Metrics = metrics.New(c.Registry)
	c.unsubscribe = c.Metrics.Subscribe(c.Feed)

	env := app.Env{
		Location: loc,
		Logger:   logger,
		Changes:  c.Feed,
	}

	// Create repository adapters (secondary ports) - sqlite adapters with injected DB
	equipment := sqlite.NewEquipmentDirectory(database)
	tasks := sqlite.NewTaskDirectory(database, loc)
	checklistRepo := sqlite.NewChecklistRepository(database)
	inspectionRepo := sqlite.NewInspectionRepository(database, loc)
	maintenanceRepo := sqlite.NewMaintenanceRepository(database, loc)
	remarkRepo := sqlite.NewRemarkRepository(database)

	// Create services (primary ports implementation)
	c.ChecklistService = app.NewChecklistService(checklistRepo, equipment, env)
	c.InspectionService = app.NewInspectionService(checklistRepo, equipment, inspectionRepo, cache, app.InspectionConfig{
		DefaultChecklistSize: cfg.DefaultChecklistSize,
		ProgressWindow:       cfg.ProgressTTL,
	}, env)
	c.MaintenanceService = app.NewMaintenanceService(maintenanceRepo, equipment, env)
	c.RemarkService = app.NewRemarkService(remarkRepo, equipment, env)
	c.CalendarService = app.NewCalendarService(maintenanceRepo, tasks, env)
	c.ReportService = app.NewReportService(equipment, inspectionRepo, maintenanceRepo, remarkRepo, cache, cfg.ProgressTTL, env)

	return c, nil
}

// Handler builds the HTTP API over the container's services.
func (c *Container) Handler() http.Handler {
	return httpapi.NewRouter(httpapi.Services{
		Checklists:  c.ChecklistService,
		Inspections: c.InspectionService,
		Maintenance: c.MaintenanceService,
		Remarks:     c.RemarkService,
		Calendar:    c.CalendarService,
		Reports:     c.ReportService,
	}, httpapi.Options{
		Logger:   c.Logger,
		Metrics:  c.Metrics,
		Gatherer: c.Registry,
		Location: c.Location,
	})
}

// Close releases storage. Safe to call on a partially used container.
func (c *Container) Close() error {
	if c.unsubscribe != nil {
		c.unsubscribe()
	}
	return errors.Join(c.Cache.Close(), c.DB.Close())
}

var (
	current    *Container
	currentErr error
	cfg        *config.Config
	once       sync.Once
)

// Configure sets the configuration used by the singleton. It must be called
// before the first service accessor; later calls have no effect.
func Configure(c *config.Config) {
	cfg = c
}

// Get returns the singleton container, building it on first use.
func Get() (*Container, error) {
	once.Do(initContainer)
	return current, currentErr
}

// initContainer builds the singleton. This is called once via sync.Once.
func initContainer() {
	if cfg == nil {
		loaded, err := config.LoadConfig("")
		if err != nil {
			currentErr = err
			return
		}
		cfg = loaded
	}
	current, currentErr = Build(context.Background(), cfg, os.Stderr)
}

// Shutdown closes the singleton if it was built.
func Shutdown() error {
	if current == nil {
		return nil
	}
	return current.Close()
}

func mustGet() *Container {
	c, err := Get()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize plantops: %v\n", err)
		os.Exit(1)
	}
	return c
}

// InspectionAdapter returns a new InspectionAdapter writing to stdout.
// Each call creates a new adapter (adapters are stateless translators).
func InspectionAdapter() *cliadapter.InspectionAdapter {
	return cliadapter.NewInspectionAdapter(mustGet().InspectionService, os.Stdout)
}

// MaintenanceAdapter returns a new MaintenanceAdapter writing to stdout.
func MaintenanceAdapter() *cliadapter.MaintenanceAdapter {
	return cliadapter.NewMaintenanceAdapter(mustGet().MaintenanceService, os.Stdout)
}

// RemarkAdapter returns a new RemarkAdapter writing to stdout.
func RemarkAdapter() *cliadapter.RemarkAdapter {
	return cliadapter.NewRemarkAdapter(mustGet().RemarkService, os.Stdout)
}

// CalendarAdapter returns a new CalendarAdapter writing to stdout.
func CalendarAdapter() *cliadapter.CalendarAdapter {
	return cliadapter.NewCalendarAdapter(mustGet().CalendarService, os.Stdout)
}

// ReportAdapter returns a new ReportAdapter writing to stdout.
func ReportAdapter() *cliadapter.ReportAdapter {
	return cliadapter.NewReportAdapter(mustGet().ReportService, os.Stdout)
}

// ChecklistService returns the singleton ChecklistService instance.
func ChecklistService() primary.ChecklistService {
	return mustGet().ChecklistService
}

// InspectionService returns the singleton InspectionService instance.
func InspectionService() primary.InspectionService {
	return mustGet().InspectionService
}

// MaintenanceService returns the singleton MaintenanceService instance.
func MaintenanceService() primary.MaintenanceService {
	return mustGet().MaintenanceService
}

// RemarkService returns the singleton RemarkService instance.
func RemarkService() primary.RemarkService {
	return mustGet().RemarkService
}

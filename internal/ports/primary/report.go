package primary

import (
	"context"
	"time"

	"github.com/example/plantops/internal/core/inspection"
	"github.com/example/plantops/internal/core/maintenance"
	"github.com/example/plantops/internal/core/remark"
	"github.com/example/plantops/internal/core/report"
)

// ReportService defines the primary port for site reports.
type ReportService interface {
	// Summary aggregates the current state of the site for a day.
	// A zero day means today.
	Summary(ctx context.Context, day time.Time) (*Report, error)
}

// Report is a point-in-time summary of the site.
type Report struct {
	Day               string                               `json:"day"`
	GeneratedAt       time.Time                            `json:"generated_at"`
	EquipmentTotal    int                                  `json:"equipment_total"`
	EquipmentByStatus map[string]int                       `json:"equipment_by_status"`
	EquipmentByType   map[string]int                       `json:"equipment_by_type"`
	Operational       map[inspection.OperationalStatus]int `json:"operational"`
	Inspections       report.Completion                    `json:"inspections"`
	Maintenance       map[maintenance.Status]int           `json:"maintenance"`
	MaintenanceByType map[maintenance.Type]int             `json:"maintenance_by_type"`
	OpenRemarks       map[remark.Priority]int              `json:"open_remarks"`
}

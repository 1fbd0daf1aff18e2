package app

import (
	"context"
	"fmt"
	"time"

	"github.com/example/plantops/internal/core/inspection"
	"github.com/example/plantops/internal/core/maintenance"
	"github.com/example/plantops/internal/core/progress"
	"github.com/example/plantops/internal/core/remark"
	"github.com/example/plantops/internal/core/report"
	"github.com/example/plantops/internal/ports/primary"
	"github.com/example/plantops/internal/ports/secondary"
)

// ReportServiceImpl implements the ReportService interface.
// Every figure is recomputed on each call.
type ReportServiceImpl struct {
	equipment       secondary.EquipmentDirectory
	maintenanceRepo secondary.MaintenanceRepository
	remarkRepo      secondary.RemarkRepository
	board           *dailyBoard
	env             Env
}

// NewReportService creates a new ReportService with injected dependencies.
func NewReportService(
	equipment secondary.EquipmentDirectory,
	inspectionRepo secondary.InspectionRepository,
	maintenanceRepo secondary.MaintenanceRepository,
	remarkRepo secondary.RemarkRepository,
	cache secondary.ProgressCache,
	progressWindow time.Duration,
	env Env,
) *ReportServiceImpl {
	env = env.withDefaults()
	if progressWindow <= 0 {
		progressWindow = progress.ValidityWindow
	}
	return &ReportServiceImpl{
		equipment:       equipment,
		maintenanceRepo: maintenanceRepo,
		remarkRepo:      remarkRepo,
		board: &dailyBoard{
			equipment:   equipment,
			inspections: inspectionRepo,
			cache:       cache,
			window:      progressWindow,
			env:         env,
		},
		env: env,
	}
}

// Summary aggregates the site state for day.
func (s *ReportServiceImpl) Summary(ctx context.Context, day time.Time) (*primary.Report, error) {
	day = s.env.day(day)

	rows, err := s.board.rows(ctx, day)
	if err != nil {
		return nil, err
	}
	states := make([]inspection.DayState, len(rows))
	statuses := make([]string, len(rows))
	types := make([]string, len(rows))
	for i, row := range rows {
		states[i] = row.state
		statuses[i] = row.equipment.Status
		types[i] = row.equipment.Type
	}

	records, err := s.maintenanceRepo.List(ctx, secondary.MaintenanceFilters{})
	if err != nil {
		return nil, fmt.Errorf("failed to list maintenance records: %w", err)
	}
	facts := make([]report.MaintenanceFact, len(records))
	for i, r := range records {
		facts[i] = report.MaintenanceFact{
			Type:      maintenance.Type(r.Type),
			Status:    maintenance.Status(r.Status),
			Scheduled: r.ScheduledDate,
		}
	}

	remarks, err := s.remarkRepo.List(ctx, secondary.RemarkFilters{})
	if err != nil {
		return nil, fmt.Errorf("failed to list remarks: %w", err)
	}
	remarkFacts := make([]report.RemarkFact, len(remarks))
	for i, r := range remarks {
		remarkFacts[i] = report.RemarkFact{Status: remark.Status(r.Status), Priority: remark.Priority(r.Priority)}
	}

	now := s.env.now()
	return &primary.Report{
		Day:               formatDay(day),
		GeneratedAt:       now,
		EquipmentTotal:    len(rows),
		EquipmentByStatus: report.CountBy(statuses),
		EquipmentByType:   report.CountBy(types),
		Operational:       report.OperationalMix(states),
		Inspections:       report.InspectionCompletion(states),
		Maintenance:       report.MaintenanceStatusCounts(facts, now),
		MaintenanceByType: report.TypeDistribution(facts),
		OpenRemarks:       report.OpenRemarksByPriority(remarkFacts),
	}, nil
}

var _ primary.ReportService = (*ReportServiceImpl)(nil)

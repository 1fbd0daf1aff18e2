package app

import (
	"context"
	"fmt"
	"time"

	"github.com/example/plantops/internal/core/calendar"
	"github.com/example/plantops/internal/core/maintenance"
	"github.com/example/plantops/internal/ports/primary"
	"github.com/example/plantops/internal/ports/secondary"
)

// CalendarServiceImpl implements the CalendarService interface.
type CalendarServiceImpl struct {
	maintenanceRepo secondary.MaintenanceRepository
	tasks           secondary.TaskDirectory
	env             Env
}

// NewCalendarService creates a new CalendarService with injected dependencies.
func NewCalendarService(maintenanceRepo secondary.MaintenanceRepository, tasks secondary.TaskDirectory, env Env) *CalendarServiceImpl {
	return &CalendarServiceImpl{
		maintenanceRepo: maintenanceRepo,
		tasks:           tasks,
		env:             env.withDefaults(),
	}
}

// MonthGrid builds the six-week grid around anchor's month.
func (s *CalendarServiceImpl) MonthGrid(ctx context.Context, anchor time.Time) (*primary.MonthView, error) {
	anchor = s.env.day(anchor)
	start := calendar.GridStart(anchor)
	end := start.AddDate(0, 0, calendar.GridSize)

	events, err := s.maintenanceEvents(ctx, start, end.AddDate(0, 0, -1))
	if err != nil {
		return nil, err
	}

	taskRecords, err := s.tasks.ListDue(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	tasks := make([]calendar.TaskEvent, len(taskRecords))
	for i, t := range taskRecords {
		tasks[i] = calendar.TaskEvent{
			ID:          t.ID,
			Title:       t.Title,
			EquipmentID: t.EquipmentID,
			Priority:    t.Priority,
			Status:      t.Status,
			DueDate:     t.DueDate,
		}
	}

	now := s.env.now()
	return &primary.MonthView{
		Year:  anchor.Year(),
		Month: anchor.Month(),
		Today: s.env.day(now),
		Cells: calendar.BuildMonthGrid(anchor, now, events, tasks),
	}, nil
}

// YearSummary counts maintenance records per month of year. Zero means
// the current year.
func (s *CalendarServiceImpl) YearSummary(ctx context.Context, year int) (*primary.YearView, error) {
	now := s.env.now()
	if year == 0 {
		year = now.Year()
	}

	first := time.Date(year, time.January, 1, 0, 0, 0, 0, s.env.Location)
	last := time.Date(year, time.December, 31, 0, 0, 0, 0, s.env.Location)
	events, err := s.maintenanceEvents(ctx, first, last)
	if err != nil {
		return nil, err
	}

	return &primary.YearView{
		Year:   year,
		Months: calendar.BuildYearSummary(year, s.env.Location, now, events),
	}, nil
}

// maintenanceEvents loads records scheduled within [from, to].
func (s *CalendarServiceImpl) maintenanceEvents(ctx context.Context, from, to time.Time) ([]calendar.MaintenanceEvent, error) {
	records, err := s.maintenanceRepo.List(ctx, secondary.MaintenanceFilters{From: from, To: to})
	if err != nil {
		return nil, fmt.Errorf("failed to list maintenance records: %w", err)
	}

	events := make([]calendar.MaintenanceEvent, len(records))
	for i, r := range records {
		events[i] = calendar.MaintenanceEvent{
			ID:            r.ID,
			EquipmentID:   r.EquipmentID,
			EquipmentName: r.EquipmentName,
			Type:          maintenance.Type(r.Type),
			Status:        maintenance.Status(r.Status),
			Priority:      r.Priority,
			Date:          r.ScheduledDate,
		}
	}
	return events, nil
}

var _ primary.CalendarService = (*CalendarServiceImpl)(nil)

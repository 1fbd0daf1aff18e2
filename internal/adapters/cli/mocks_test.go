package cli

import (
	"context"
	"errors"
	"time"

	"github.com/example/plantops/internal/ports/primary"
)

var errNotImplemented = errors.New("not implemented in adapter")

// mockCalendarService implements primary.CalendarService for testing
type mockCalendarService struct {
	monthGridFn   func(ctx context.Context, anchor time.Time) (*primary.MonthView, error)
	yearSummaryFn func(ctx context.Context, year int) (*primary.YearView, error)
}

func (m *mockCalendarService) MonthGrid(ctx context.Context, anchor time.Time) (*primary.MonthView, error) {
	if m.monthGridFn != nil {
		return m.monthGridFn(ctx, anchor)
	}
	return nil, errNotImplemented
}

func (m *mockCalendarService) YearSummary(ctx context.Context, year int) (*primary.YearView, error) {
	if m.yearSummaryFn != nil {
		return m.yearSummaryFn(ctx, year)
	}
	return nil, errNotImplemented
}

// mockInspectionService implements primary.InspectionService for testing
type mockInspectionService struct {
	resolveItemsFn    func(ctx context.Context, req primary.ResolveItemsRequest) (*primary.ResolvedItems, error)
	completeFn        func(ctx context.Context, req primary.CompleteInspectionRequest) (*primary.CompleteInspectionResponse, error)
	dailyStatusFn     func(ctx context.Context, day time.Time) ([]*primary.EquipmentInspectionStatus, error)
	listInspectionsFn func(ctx context.Context, filters primary.InspectionFilters) ([]*primary.Inspection, error)

	lastResolveReq primary.ResolveItemsRequest
}

func (m *mockInspectionService) ResolveItems(ctx context.Context, req primary.ResolveItemsRequest) (*primary.ResolvedItems, error) {
	m.lastResolveReq = req
	if m.resolveItemsFn != nil {
		return m.resolveItemsFn(ctx, req)
	}
	return nil, errNotImplemented
}

func (m *mockInspectionService) SaveProgress(ctx context.Context, req primary.SaveProgressRequest) (*primary.ProgressSnapshot, error) {
	return nil, errNotImplemented
}

func (m *mockInspectionService) DiscardProgress(ctx context.Context, equipmentID string) error {
	return errNotImplemented
}

func (m *mockInspectionService) CompleteInspection(ctx context.Context, req primary.CompleteInspectionRequest) (*primary.CompleteInspectionResponse, error) {
	if m.completeFn != nil {
		return m.completeFn(ctx, req)
	}
	return nil, errNotImplemented
}

func (m *mockInspectionService) DailyStatus(ctx context.Context, day time.Time) ([]*primary.EquipmentInspectionStatus, error) {
	if m.dailyStatusFn != nil {
		return m.dailyStatusFn(ctx, day)
	}
	return []*primary.EquipmentInspectionStatus{}, nil
}

func (m *mockInspectionService) ListInspections(ctx context.Context, filters primary.InspectionFilters) ([]*primary.Inspection, error) {
	if m.listInspectionsFn != nil {
		return m.listInspectionsFn(ctx, filters)
	}
	return []*primary.Inspection{}, nil
}

func (m *mockInspectionService) GetInspection(ctx context.Context, id string) (*primary.Inspection, error) {
	return nil, errNotImplemented
}

func (m *mockInspectionService) DeleteInspection(ctx context.Context, id string) error {
	return errNotImplemented
}

// mockMaintenanceService implements primary.MaintenanceService for testing
type mockMaintenanceService struct {
	primary.MaintenanceService

	listFn func(ctx context.Context, filters primary.MaintenanceFilters) ([]*primary.Maintenance, error)
	getFn  func(ctx context.Context, id string) (*primary.Maintenance, error)

	lastFilters primary.MaintenanceFilters
}

func (m *mockMaintenanceService) ListMaintenance(ctx context.Context, filters primary.MaintenanceFilters) ([]*primary.Maintenance, error) {
	m.lastFilters = filters
	if m.listFn != nil {
		return m.listFn(ctx, filters)
	}
	return []*primary.Maintenance{}, nil
}

func (m *mockMaintenanceService) GetMaintenance(ctx context.Context, id string) (*primary.Maintenance, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return nil, errNotImplemented
}

// mockRemarkService implements primary.RemarkService for testing
type mockRemarkService struct {
	primary.RemarkService

	listFn func(ctx context.Context, filters primary.RemarkFilters) ([]*primary.Remark, error)
}

func (m *mockRemarkService) ListRemarks(ctx context.Context, filters primary.RemarkFilters) ([]*primary.Remark, error) {
	if m.listFn != nil {
		return m.listFn(ctx, filters)
	}
	return []*primary.Remark{}, nil
}

// mockReportService implements primary.ReportService for testing
type mockReportService struct {
	summaryFn func(ctx context.Context, day time.Time) (*primary.Report, error)
}

func (m *mockReportService) Summary(ctx context.Context, day time.Time) (*primary.Report, error) {
	if m.summaryFn != nil {
		return m.summaryFn(ctx, day)
	}
	return nil, errNotImplemented
}

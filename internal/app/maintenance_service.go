package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/example/plantops/internal/core/maintenance"
	"github.com/example/plantops/internal/core/remark"
	"github.com/example/plantops/internal/ctxutil"
	"github.com/example/plantops/internal/ports/primary"
	"github.com/example/plantops/internal/ports/secondary"
)

// MaintenanceServiceImpl implements the MaintenanceService interface.
type MaintenanceServiceImpl struct {
	maintenanceRepo secondary.MaintenanceRepository
	equipment       secondary.EquipmentDirectory
	env             Env
}

// NewMaintenanceService creates a new MaintenanceService with injected dependencies.
func NewMaintenanceService(maintenanceRepo secondary.MaintenanceRepository, equipment secondary.EquipmentDirectory, env Env) *MaintenanceServiceImpl {
	return &MaintenanceServiceImpl{
		maintenanceRepo: maintenanceRepo,
		equipment:       equipment,
		env:             env.withDefaults(),
	}
}

// CreateMaintenance creates a new record. The status defaults from the type
// and the priority defaults to medium.
func (s *MaintenanceServiceImpl) CreateMaintenance(ctx context.Context, req primary.CreateMaintenanceRequest) (*primary.Maintenance, error) {
	if err := primary.Validate(req); err != nil {
		return nil, err
	}
	if req.ScheduledDate.IsZero() {
		return nil, fmt.Errorf("%w: scheduled date is required", primary.ErrInvalidRequest)
	}

	typ := maintenance.Type(req.Type)
	status := maintenance.Status(req.Status)
	if status == "" {
		status = maintenance.InitialStatus(typ)
	}
	priority := remark.Priority(req.Priority)
	if priority == "" {
		priority = remark.PriorityMedium
	}

	eq, err := lookupEquipment(ctx, s.equipment, req.EquipmentID)
	if err != nil {
		return nil, err
	}

	scheduled := s.env.day(req.ScheduledDate)
	guardCtx := maintenance.WriteContext{
		EquipmentID:     req.EquipmentID,
		EquipmentExists: eq != nil,
		Type:            typ,
		Status:          status,
		Priority:        priority,
		ScheduledDate:   scheduled,
	}
	if result := maintenance.CanWrite(guardCtx); !result.Allowed {
		return nil, primary.NotAllowed(result.Error())
	}

	now := s.env.Now()
	record := &secondary.MaintenanceRecord{
		EquipmentID:     eq.ID,
		EquipmentName:   eq.Name,
		Type:            string(typ),
		ScheduledDate:   scheduled,
		DurationMinutes: req.DurationMinutes,
		Responsible:     req.Responsible,
		Status:          string(status),
		Priority:        string(priority),
		Notes:           req.Notes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if status == maintenance.StatusCompleted {
		record.CompletedDate = maintenance.ApplyCompletion(s.env.now()).CompletedDate
	}

	if err := s.maintenanceRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create maintenance record: %w", err)
	}

	s.env.Logger.Info(ctx, "maintenance scheduled", "maintenance_id", record.ID, "equipment_id", record.EquipmentID, "type", record.Type, "date", formatDay(scheduled))
	s.env.publish(ctx, secondary.TopicMaintenance, secondary.ActionCreated, record.ID, record.EquipmentID, map[string]string{"status": record.Status})
	return s.toMaintenance(record), nil
}

// GetMaintenance retrieves a record with its display status.
func (s *MaintenanceServiceImpl) GetMaintenance(ctx context.Context, id string) (*primary.Maintenance, error) {
	record, err := s.maintenanceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.toMaintenance(record), nil
}

// ListMaintenance lists records ordered by scheduled date. The status filter
// matches display statuses, so overdue records can be listed and are not
// reported as scheduled.
func (s *MaintenanceServiceImpl) ListMaintenance(ctx context.Context, filters primary.MaintenanceFilters) ([]*primary.Maintenance, error) {
	want := maintenance.Status(filters.Status)

	query := secondary.MaintenanceFilters{
		EquipmentID: filters.EquipmentID,
		Status:      filters.Status,
		Type:        filters.Type,
	}
	if want == maintenance.StatusOverdue {
		query.Status = string(maintenance.StatusScheduled)
	}
	if !filters.From.IsZero() {
		query.From = s.env.day(filters.From)
	}
	if !filters.To.IsZero() {
		query.To = s.env.day(filters.To)
	}

	records, err := s.maintenanceRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list maintenance records: %w", err)
	}

	out := make([]*primary.Maintenance, 0, len(records))
	for _, r := range records {
		m := s.toMaintenance(r)
		if want != "" && maintenance.Status(m.DisplayStatus) != want {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

// UpdateMaintenance applies an edit. Edits are unrestricted apart from the
// write guard: completed records may be reopened this way.
func (s *MaintenanceServiceImpl) UpdateMaintenance(ctx context.Context, req primary.UpdateMaintenanceRequest) (*primary.Maintenance, error) {
	if err := primary.Validate(req); err != nil {
		return nil, err
	}

	record, err := s.maintenanceRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.Type != nil {
		record.Type = *req.Type
	}
	if req.ScheduledDate != nil {
		record.ScheduledDate = s.env.day(*req.ScheduledDate)
	}
	if req.DurationMinutes != nil {
		record.DurationMinutes = *req.DurationMinutes
	}
	if req.Responsible != nil {
		record.Responsible = *req.Responsible
	}
	if req.Priority != nil {
		record.Priority = *req.Priority
	}
	if req.Notes != nil {
		record.Notes = *req.Notes
	}
	if req.Status != nil && *req.Status != record.Status {
		record.Status = *req.Status
		if maintenance.Status(record.Status) == maintenance.StatusCompleted {
			record.CompletedDate = maintenance.ApplyCompletion(s.env.now()).CompletedDate
		} else {
			record.CompletedDate = time.Time{}
		}
	}

	guardCtx := maintenance.WriteContext{
		EquipmentID:     record.EquipmentID,
		EquipmentExists: true,
		Type:            maintenance.Type(record.Type),
		Status:          maintenance.Status(record.Status),
		Priority:        remark.Priority(record.Priority),
		ScheduledDate:   record.ScheduledDate,
	}
	if result := maintenance.CanWrite(guardCtx); !result.Allowed {
		return nil, primary.NotAllowed(result.Error())
	}

	return s.save(ctx, record)
}

// StartMaintenance moves a scheduled record to in_progress.
func (s *MaintenanceServiceImpl) StartMaintenance(ctx context.Context, id string) (*primary.Maintenance, error) {
	return s.transition(ctx, id, maintenance.CanStart, func(r *secondary.MaintenanceRecord) {
		r.Status = string(maintenance.StatusInProgress)
	})
}

// PostponeMaintenance moves a scheduled record to postponed.
func (s *MaintenanceServiceImpl) PostponeMaintenance(ctx context.Context, id string) (*primary.Maintenance, error) {
	return s.transition(ctx, id, maintenance.CanPostpone, func(r *secondary.MaintenanceRecord) {
		r.Status = string(maintenance.StatusPostponed)
	})
}

// RescheduleMaintenance moves a record back to scheduled, optionally on a new date.
func (s *MaintenanceServiceImpl) RescheduleMaintenance(ctx context.Context, req primary.RescheduleMaintenanceRequest) (*primary.Maintenance, error) {
	if err := primary.Validate(req); err != nil {
		return nil, err
	}
	return s.transition(ctx, req.ID, maintenance.CanReschedule, func(r *secondary.MaintenanceRecord) {
		r.Status = string(maintenance.StatusScheduled)
		if !req.Date.IsZero() {
			r.ScheduledDate = s.env.day(req.Date)
		}
	})
}

// CompleteMaintenance marks a record completed, stamps today's date and
// appends the optional note. No next instance is created.
func (s *MaintenanceServiceImpl) CompleteMaintenance(ctx context.Context, req primary.CompleteMaintenanceRequest) (*primary.Maintenance, error) {
	if err := primary.Validate(req); err != nil {
		return nil, err
	}
	return s.transition(ctx, req.ID, maintenance.CanComplete, func(r *secondary.MaintenanceRecord) {
		done := maintenance.ApplyCompletion(s.env.now())
		r.Status = string(done.NewStatus)
		r.CompletedDate = done.CompletedDate
		if note := strings.TrimSpace(req.Note); note != "" {
			if r.Notes != "" {
				r.Notes += "\n"
			}
			r.Notes += note
		}
	})
}

// DeleteMaintenance deletes a record.
func (s *MaintenanceServiceImpl) DeleteMaintenance(ctx context.Context, id string) error {
	record, err := s.maintenanceRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.maintenanceRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.env.publish(ctx, secondary.TopicMaintenance, secondary.ActionDeleted, id, record.EquipmentID, nil)
	return nil
}

// AddMaintenanceNote appends an operator note and raises one
// maintenance-sourced remark for it, atomically.
func (s *MaintenanceServiceImpl) AddMaintenanceNote(ctx context.Context, req primary.AddMaintenanceNoteRequest) (*primary.Remark, error) {
	if err := primary.Validate(req); err != nil {
		return nil, err
	}
	note := strings.TrimSpace(req.Note)
	if note == "" {
		return nil, fmt.Errorf("%w: note must not be blank", primary.ErrInvalidRequest)
	}

	priority := remark.Priority(req.Priority)
	if priority == "" {
		priority = remark.PriorityMedium
	}
	if !remark.ValidPriority(priority) {
		return nil, fmt.Errorf("%w: unknown priority %q", primary.ErrInvalidRequest, req.Priority)
	}

	record, err := s.maintenanceRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	now := s.env.Now()
	raised := &secondary.RemarkRecord{
		ID:            uuid.NewString(),
		Title:         fmt.Sprintf("Maintenance %s: %s", record.ID, record.EquipmentName),
		Description:   note,
		EquipmentID:   record.EquipmentID,
		EquipmentName: record.EquipmentName,
		Source:        string(remark.SourceMaintenance),
		SourceID:      record.ID,
		Priority:      string(priority),
		Status:        string(remark.StatusOpen),
		Reporter:      ctxutil.ActorFromContext(ctx),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.maintenanceRepo.AppendNote(ctx, record.ID, note, now, raised); err != nil {
		return nil, fmt.Errorf("failed to add maintenance note: %w", err)
	}

	s.env.publish(ctx, secondary.TopicMaintenance, secondary.ActionUpdated, record.ID, record.EquipmentID, map[string]string{"remarks": "1"})
	s.env.publish(ctx, secondary.TopicRemark, secondary.ActionCreated, raised.ID, raised.EquipmentID, nil)
	return recordToRemark(raised), nil
}

func (s *MaintenanceServiceImpl) transition(
	ctx context.Context,
	id string,
	guard func(maintenance.TransitionContext) maintenance.GuardResult,
	apply func(*secondary.MaintenanceRecord),
) (*primary.Maintenance, error) {
	record, err := s.maintenanceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	guardCtx := maintenance.TransitionContext{RecordID: record.ID, Status: maintenance.Status(record.Status)}
	if result := guard(guardCtx); !result.Allowed {
		return nil, primary.NotAllowed(result.Error())
	}

	from := record.Status
	apply(record)
	s.env.Logger.Info(ctx, "maintenance status changed", "maintenance_id", record.ID, "from", from, "to", record.Status)
	return s.save(ctx, record)
}

func (s *MaintenanceServiceImpl) save(ctx context.Context, record *secondary.MaintenanceRecord) (*primary.Maintenance, error) {
	record.UpdatedAt = s.env.Now()
	if err := s.maintenanceRepo.Update(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to update maintenance record: %w", err)
	}
	s.env.publish(ctx, secondary.TopicMaintenance, secondary.ActionUpdated, record.ID, record.EquipmentID, map[string]string{"status": record.Status})
	return s.toMaintenance(record), nil
}

func (s *MaintenanceServiceImpl) toMaintenance(r *secondary.MaintenanceRecord) *primary.Maintenance {
	display := maintenance.DisplayStatus(maintenance.Status(r.Status), r.ScheduledDate, s.env.now())
	return &primary.Maintenance{
		ID:              r.ID,
		EquipmentID:     r.EquipmentID,
		EquipmentName:   r.EquipmentName,
		Type:            r.Type,
		ScheduledDate:   formatDay(r.ScheduledDate),
		CompletedDate:   formatDay(r.CompletedDate),
		DurationMinutes: r.DurationMinutes,
		Responsible:     r.Responsible,
		Status:          r.Status,
		DisplayStatus:   string(display),
		Overdue:         display == maintenance.StatusOverdue,
		Priority:        r.Priority,
		Notes:           r.Notes,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

var _ primary.MaintenanceService = (*MaintenanceServiceImpl)(nil)

package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/example/plantops/internal/core/remark"
	"github.com/example/plantops/internal/ctxutil"
	"github.com/example/plantops/internal/ports/primary"
	"github.com/example/plantops/internal/ports/secondary"
)

// RemarkServiceImpl implements the RemarkService interface.
type RemarkServiceImpl struct {
	remarkRepo secondary.RemarkRepository
	equipment  secondary.EquipmentDirectory
	env        Env
}

// NewRemarkService creates a new RemarkService with injected dependencies.
func NewRemarkService(remarkRepo secondary.RemarkRepository, equipment secondary.EquipmentDirectory, env Env) *RemarkServiceImpl {
	return &RemarkServiceImpl{
		remarkRepo: remarkRepo,
		equipment:  equipment,
		env:        env.withDefaults(),
	}
}

// ListRemarks lists remarks with optional filters, newest first.
func (s *RemarkServiceImpl) ListRemarks(ctx context.Context, filters primary.RemarkFilters) ([]*primary.Remark, error) {
	if err := primary.Validate(filters); err != nil {
		return nil, err
	}

	records, err := s.remarkRepo.List(ctx, secondary.RemarkFilters{
		Status:      filters.Status,
		Source:      filters.Source,
		EquipmentID: filters.EquipmentID,
		Limit:       filters.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list remarks: %w", err)
	}

	remarks := make([]*primary.Remark, len(records))
	for i, r := range records {
		remarks[i] = recordToRemark(r)
	}
	return remarks, nil
}

// GetRemark retrieves a remark by ID.
func (s *RemarkServiceImpl) GetRemark(ctx context.Context, id string) (*primary.Remark, error) {
	record, err := s.remarkRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return recordToRemark(record), nil
}

// CreateRemark raises a manual remark.
func (s *RemarkServiceImpl) CreateRemark(ctx context.Context, req primary.CreateRemarkRequest) (*primary.Remark, error) {
	if err := primary.Validate(req); err != nil {
		return nil, err
	}

	priority := remark.Priority(req.Priority)
	if priority == "" {
		priority = remark.PriorityMedium
	}
	if !remark.ValidPriority(priority) {
		return nil, fmt.Errorf("%w: unknown priority %q", primary.ErrInvalidRequest, req.Priority)
	}

	eq, err := lookupEquipment(ctx, s.equipment, req.EquipmentID)
	if err != nil {
		return nil, err
	}
	if eq == nil {
		return nil, fmt.Errorf("equipment %s: %w", req.EquipmentID, secondary.ErrNotFound)
	}

	reporter := req.Reporter
	if reporter == "" {
		reporter = ctxutil.ActorFromContext(ctx)
	}

	now := s.env.Now()
	record := &secondary.RemarkRecord{
		ID:            uuid.NewString(),
		Title:         req.Title,
		Description:   req.Description,
		EquipmentID:   eq.ID,
		EquipmentName: eq.Name,
		Source:        string(remark.SourceManual),
		Priority:      string(priority),
		Status:        string(remark.StatusOpen),
		Reporter:      reporter,
		Assignee:      req.Assignee,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.remarkRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create remark: %w", err)
	}

	s.env.publish(ctx, secondary.TopicRemark, secondary.ActionCreated, record.ID, record.EquipmentID, nil)
	return recordToRemark(record), nil
}

// TransitionRemark changes a remark's status. Resolving stamps the
// resolution time; reopening clears it.
func (s *RemarkServiceImpl) TransitionRemark(ctx context.Context, req primary.TransitionRemarkRequest) (*primary.Remark, error) {
	if err := primary.Validate(req); err != nil {
		return nil, err
	}

	record, err := s.remarkRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	guardCtx := remark.TransitionContext{
		RemarkID:      record.ID,
		CurrentStatus: remark.Status(record.Status),
		NewStatus:     remark.Status(req.Status),
	}
	if result := remark.CanTransition(guardCtx); !result.Allowed {
		return nil, primary.NotAllowed(result.Error())
	}

	now := s.env.Now()
	record.Status = req.Status
	record.UpdatedAt = now
	if guardCtx.NewStatus == remark.StatusResolved {
		record.ResolvedAt = now
	} else {
		record.ResolvedAt = time.Time{}
	}

	return s.save(ctx, record, map[string]string{"status": req.Status})
}

// AddRemarkNote appends a note to a remark.
func (s *RemarkServiceImpl) AddRemarkNote(ctx context.Context, req primary.AddRemarkNoteRequest) (*primary.Remark, error) {
	if err := primary.Validate(req); err != nil {
		return nil, err
	}

	if result := remark.CanAddNote(remark.AddNoteContext{RemarkID: req.ID, Note: req.Note}); !result.Allowed {
		return nil, primary.NotAllowed(result.Error())
	}

	record, err := s.remarkRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	record.Notes = append(record.Notes, strings.TrimSpace(req.Note))
	record.UpdatedAt = s.env.Now()
	return s.save(ctx, record, nil)
}

// AssignRemark sets who handles a remark.
func (s *RemarkServiceImpl) AssignRemark(ctx context.Context, req primary.AssignRemarkRequest) (*primary.Remark, error) {
	if err := primary.Validate(req); err != nil {
		return nil, err
	}

	record, err := s.remarkRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	record.Assignee = req.Assignee
	record.UpdatedAt = s.env.Now()
	return s.save(ctx, record, map[string]string{"assignee": req.Assignee})
}

func (s *RemarkServiceImpl) save(ctx context.Context, record *secondary.RemarkRecord, attrs map[string]string) (*primary.Remark, error) {
	if err := s.remarkRepo.Update(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to update remark: %w", err)
	}
	s.env.publish(ctx, secondary.TopicRemark, secondary.ActionUpdated, record.ID, record.EquipmentID, attrs)
	return recordToRemark(record), nil
}

func recordToRemark(r *secondary.RemarkRecord) *primary.Remark {
	notes := r.Notes
	if notes == nil {
		notes = []string{}
	}
	return &primary.Remark{
		ID:            r.ID,
		Title:         r.Title,
		Description:   r.Description,
		EquipmentID:   r.EquipmentID,
		EquipmentName: r.EquipmentName,
		Source:        r.Source,
		SourceID:      r.SourceID,
		ItemID:        r.ItemID,
		Priority:      r.Priority,
		Status:        r.Status,
		Reporter:      r.Reporter,
		Assignee:      r.Assignee,
		Notes:         notes,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
		ResolvedAt:    r.ResolvedAt,
	}
}

var _ primary.RemarkService = (*RemarkServiceImpl)(nil)

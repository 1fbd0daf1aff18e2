package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/example/plantops/internal/core/checklist"
	"github.com/example/plantops/internal/ports/primary"
	"github.com/example/plantops/internal/ports/secondary"
)

// ChecklistServiceImpl implements the ChecklistService interface.
type ChecklistServiceImpl struct {
	checklistRepo secondary.ChecklistRepository
	equipment     secondary.EquipmentDirectory
	env           Env
}

// NewChecklistService creates a new ChecklistService with injected dependencies.
func NewChecklistService(checklistRepo secondary.ChecklistRepository, equipment secondary.EquipmentDirectory, env Env) *ChecklistServiceImpl {
	return &ChecklistServiceImpl{
		checklistRepo: checklistRepo,
		equipment:     equipment,
		env:           env.withDefaults(),
	}
}

// GetTemplate retrieves an equipment's template, or nil when none exists.
func (s *ChecklistServiceImpl) GetTemplate(ctx context.Context, equipmentID string) (*primary.ChecklistTemplate, error) {
	record, err := s.checklistRepo.GetByEquipment(ctx, equipmentID)
	if errors.Is(err, secondary.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get checklist: %w", err)
	}
	return recordToTemplate(record), nil
}

// UpsertTemplate creates or replaces an equipment's template.
func (s *ChecklistServiceImpl) UpsertTemplate(ctx context.Context, req primary.UpsertTemplateRequest) (*primary.UpsertTemplateResponse, error) {
	if err := primary.Validate(req); err != nil {
		return nil, err
	}

	name := req.EquipmentName
	if name == "" {
		eq, err := lookupEquipment(ctx, s.equipment, req.EquipmentID)
		if err != nil {
			return nil, err
		}
		if eq == nil {
			return nil, fmt.Errorf("equipment %s: %w", req.EquipmentID, secondary.ErrNotFound)
		}
		name = eq.Name
	}

	now := s.env.Now()
	existing, err := s.checklistRepo.GetByEquipment(ctx, req.EquipmentID)
	switch {
	case errors.Is(err, secondary.ErrNotFound):
		existing = nil
	case err != nil:
		return nil, fmt.Errorf("failed to get checklist: %w", err)
	}

	if existing != nil {
		existing.EquipmentName = name
		existing.Items = req.Items
		existing.UpdatedAt = now
		if err := s.checklistRepo.Update(ctx, existing); err != nil {
			return nil, fmt.Errorf("failed to update checklist: %w", err)
		}
		s.env.publish(ctx, secondary.TopicChecklist, secondary.ActionUpdated, existing.ID, existing.EquipmentID, nil)
		return &primary.UpsertTemplateResponse{Template: recordToTemplate(existing)}, nil
	}

	record := &secondary.ChecklistRecord{
		EquipmentID:   req.EquipmentID,
		EquipmentName: name,
		Items:         req.Items,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.checklistRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create checklist: %w", err)
	}

	s.env.Logger.Info(ctx, "checklist created", "checklist_id", record.ID, "equipment_id", record.EquipmentID, "items", len(record.Items))
	s.env.publish(ctx, secondary.TopicChecklist, secondary.ActionCreated, record.ID, record.EquipmentID, nil)
	return &primary.UpsertTemplateResponse{Template: recordToTemplate(record), Created: true}, nil
}

func recordToTemplate(r *secondary.ChecklistRecord) *primary.ChecklistTemplate {
	return &primary.ChecklistTemplate{
		ID:            r.ID,
		EquipmentID:   r.EquipmentID,
		EquipmentName: r.EquipmentName,
		Items:         r.Items,
		Entries:       checklist.ParseTemplate(r.Items),
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

var _ primary.ChecklistService = (*ChecklistServiceImpl)(nil)

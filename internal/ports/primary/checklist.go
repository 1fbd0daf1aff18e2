package primary

import (
	"context"
	"time"

	"github.com/example/plantops/internal/core/checklist"
)

// ChecklistService defines the primary port for checklist template operations.
type ChecklistService interface {
	// GetTemplate retrieves an equipment's template.
	// Returns nil without error when none is configured.
	GetTemplate(ctx context.Context, equipmentID string) (*ChecklistTemplate, error)

	// UpsertTemplate creates the equipment's template, or replaces its items
	// when one already exists.
	UpsertTemplate(ctx context.Context, req UpsertTemplateRequest) (*UpsertTemplateResponse, error)
}

// UpsertTemplateRequest contains parameters for saving a template.
type UpsertTemplateRequest struct {
	EquipmentID   string   `json:"equipment_id" validate:"required"`
	EquipmentName string   `json:"equipment_name"` // Optional, taken from the equipment register
	Items         []string `json:"items" validate:"required,min=1,dive,required"`
}

// UpsertTemplateResponse contains the result of saving a template.
type UpsertTemplateResponse struct {
	Template *ChecklistTemplate `json:"template"`
	Created  bool               `json:"created"`
}

// ChecklistTemplate represents a checklist template at the port boundary.
type ChecklistTemplate struct {
	ID            string            `json:"id"`
	EquipmentID   string            `json:"equipment_id"`
	EquipmentName string            `json:"equipment_name"`
	Items         []string          `json:"items"`
	Entries       []checklist.Entry `json:"entries"` // parsed, malformed lines dropped
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

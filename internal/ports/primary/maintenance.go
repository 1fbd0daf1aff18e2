package primary

import (
	"context"
	"time"
)

// MaintenanceService defines the primary port for maintenance record operations.
type MaintenanceService interface {
	// CreateMaintenance creates a new record.
	CreateMaintenance(ctx context.Context, req CreateMaintenanceRequest) (*Maintenance, error)

	// GetMaintenance retrieves a record by ID, with its display status.
	GetMaintenance(ctx context.Context, id string) (*Maintenance, error)

	// ListMaintenance lists records with optional filters.
	ListMaintenance(ctx context.Context, filters MaintenanceFilters) ([]*Maintenance, error)

	// UpdateMaintenance edits a record. Edits are unrestricted.
	UpdateMaintenance(ctx context.Context, req UpdateMaintenanceRequest) (*Maintenance, error)

	// StartMaintenance moves a scheduled record to in_progress.
	StartMaintenance(ctx context.Context, id string) (*Maintenance, error)

	// PostponeMaintenance moves a scheduled record to postponed.
	PostponeMaintenance(ctx context.Context, id string) (*Maintenance, error)

	// RescheduleMaintenance moves a record back to scheduled, optionally on a new date.
	RescheduleMaintenance(ctx context.Context, req RescheduleMaintenanceRequest) (*Maintenance, error)

	// CompleteMaintenance marks a record completed and stamps today's date.
	CompleteMaintenance(ctx context.Context, req CompleteMaintenanceRequest) (*Maintenance, error)

	// DeleteMaintenance deletes a record.
	DeleteMaintenance(ctx context.Context, id string) error

	// AddMaintenanceNote appends an operator note and raises a remark for it.
	AddMaintenanceNote(ctx context.Context, req AddMaintenanceNoteRequest) (*Remark, error)
}

// CreateMaintenanceRequest contains parameters for creating a record.
type CreateMaintenanceRequest struct {
	EquipmentID     string    `json:"equipment_id" validate:"required"`
	Type            string    `json:"type" validate:"required"`
	ScheduledDate   time.Time `json:"scheduled_date" validate:"required"`
	DurationMinutes int       `json:"duration_minutes" validate:"gte=0"`
	Responsible     string    `json:"responsible"`
	Status          string    `json:"status"`   // Optional, derived from the type
	Priority        string    `json:"priority"` // Optional, defaults to medium
	Notes           string    `json:"notes"`
}

// UpdateMaintenanceRequest contains an edit. Nil fields are left unchanged.
type UpdateMaintenanceRequest struct {
	ID              string     `json:"id" validate:"required"`
	Type            *string    `json:"type"`
	ScheduledDate   *time.Time `json:"scheduled_date"`
	DurationMinutes *int       `json:"duration_minutes" validate:"omitempty,gte=0"`
	Responsible     *string    `json:"responsible"`
	Status          *string    `json:"status"`
	Priority        *string    `json:"priority"`
	Notes           *string    `json:"notes"`
}

// RescheduleMaintenanceRequest contains parameters for rescheduling a record.
type RescheduleMaintenanceRequest struct {
	ID   string    `json:"id" validate:"required"`
	Date time.Time `json:"date"` // Optional, keeps the current date when zero
}

// CompleteMaintenanceRequest contains parameters for completing a record.
type CompleteMaintenanceRequest struct {
	ID   string `json:"id" validate:"required"`
	Note string `json:"note"` // Optional, appended to the notes
}

// AddMaintenanceNoteRequest contains an operator note.
type AddMaintenanceNoteRequest struct {
	ID       string `json:"id" validate:"required"`
	Note     string `json:"note" validate:"required"`
	Priority string `json:"priority"` // Optional, priority of the raised remark
}

// Maintenance represents a maintenance record at the port boundary.
type Maintenance struct {
	ID              string    `json:"id"`
	EquipmentID     string    `json:"equipment_id"`
	EquipmentName   string    `json:"equipment_name"`
	Type            string    `json:"type"`
	ScheduledDate   string    `json:"scheduled_date"`
	CompletedDate   string    `json:"completed_date,omitempty"`
	DurationMinutes int       `json:"duration_minutes"`
	Responsible     string    `json:"responsible"`
	Status          string    `json:"status"`         // as stored
	DisplayStatus   string    `json:"display_status"` // overdue computed at read time
	Overdue         bool      `json:"overdue"`
	Priority        string    `json:"priority"`
	Notes           string    `json:"notes"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// MaintenanceFilters contains filter options for listing records.
// Status matches the display status, so "overdue" is accepted.
type MaintenanceFilters struct {
	EquipmentID string    `json:"equipment_id"`
	Status      string    `json:"status"`
	Type        string    `json:"type"`
	From        time.Time `json:"from"`
	To          time.Time `json:"to"`
}

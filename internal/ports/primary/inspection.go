package primary

import (
	"context"
	"time"

	"github.com/example/plantops/internal/core/checklist"
	"github.com/example/plantops/internal/core/inspection"
)

// InspectionService defines the primary port for daily inspection operations.
type InspectionService interface {
	// ResolveItems builds the checklist for a session, optionally resuming
	// saved progress.
	ResolveItems(ctx context.Context, req ResolveItemsRequest) (*ResolvedItems, error)

	// SaveProgress overwrites today's saved answers for an equipment.
	SaveProgress(ctx context.Context, req SaveProgressRequest) (*ProgressSnapshot, error)

	// DiscardProgress drops today's saved answers for an equipment.
	DiscardProgress(ctx context.Context, equipmentID string) error

	// CompleteInspection records a finished session and raises remarks.
	CompleteInspection(ctx context.Context, req CompleteInspectionRequest) (*CompleteInspectionResponse, error)

	// DailyStatus derives the inspection status of every equipment for a day.
	// A zero day means today.
	DailyStatus(ctx context.Context, day time.Time) ([]*EquipmentInspectionStatus, error)

	// ListInspections lists recorded inspections.
	ListInspections(ctx context.Context, filters InspectionFilters) ([]*Inspection, error)

	// GetInspection retrieves a recorded inspection by ID.
	GetInspection(ctx context.Context, id string) (*Inspection, error)

	// DeleteInspection removes a recorded inspection.
	DeleteInspection(ctx context.Context, id string) error
}

// ResolveItemsRequest contains parameters for resolving a session checklist.
type ResolveItemsRequest struct {
	EquipmentID          string    `json:"equipment_id" validate:"required"`
	Day                  time.Time `json:"day"` // Optional, defaults to today
	PreferCachedProgress bool      `json:"prefer_cached_progress"`
}

// ResolvedItems is the checklist an inspector works through.
type ResolvedItems struct {
	EquipmentID  string           `json:"equipment_id"`
	Day          string           `json:"day"`
	Items        []checklist.Item `json:"items"`
	FromTemplate bool             `json:"from_template"`
	Resumed      bool             `json:"resumed"`
	SavedAt      time.Time        `json:"saved_at,omitempty"`
}

// SaveProgressRequest contains the full answer list of an in-flight session.
type SaveProgressRequest struct {
	EquipmentID string           `json:"equipment_id" validate:"required"`
	Items       []checklist.Item `json:"items" validate:"required,min=1"`
}

// ProgressSnapshot describes saved answers.
type ProgressSnapshot struct {
	EquipmentID string    `json:"equipment_id"`
	Day         string    `json:"day"`
	ItemCount   int       `json:"item_count"`
	SavedAt     time.Time `json:"saved_at"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// CompleteInspectionRequest contains a finished session.
type CompleteInspectionRequest struct {
	EquipmentID  string           `json:"equipment_id" validate:"required"`
	Items        []checklist.Item `json:"items" validate:"required,min=1"`
	GeneralNotes string           `json:"general_notes"`
	Inspector    string           `json:"inspector"` // Optional, defaults to the actor in context
}

// CompleteInspectionResponse contains the result of completing an inspection.
type CompleteInspectionResponse struct {
	Record     *Inspection                `json:"record"`
	Status     *EquipmentInspectionStatus `json:"status"`
	Remarks    []*Remark                  `json:"remarks"`
	ReplacedID string                     `json:"replaced_id,omitempty"`
}

// Inspection represents a recorded daily inspection at the port boundary.
type Inspection struct {
	ID            string                       `json:"id"`
	EquipmentID   string                       `json:"equipment_id"`
	EquipmentName string                       `json:"equipment_name"`
	Date          string                       `json:"date"`
	CheckResults  []checklist.CheckStatus      `json:"check_results"`
	Comments      []string                     `json:"comments"`
	Inspector     string                       `json:"inspector"`
	Status        string                       `json:"status"`
	Operational   inspection.OperationalStatus `json:"operational"`
	IssueCount    int                          `json:"issue_count"`
	CreatedAt     time.Time                    `json:"created_at"`
}

// EquipmentInspectionStatus is the derived daily status of one equipment.
type EquipmentInspectionStatus struct {
	EquipmentID   string                       `json:"equipment_id"`
	EquipmentName string                       `json:"equipment_name"`
	Session       inspection.SessionStatus     `json:"session"`
	Inspector     string                       `json:"inspector,omitempty"`
	InspectedAt   time.Time                    `json:"inspected_at,omitempty"`
	IssueCount    int                          `json:"issue_count"`
	Operational   inspection.OperationalStatus `json:"operational"`
	Notes         string                       `json:"notes,omitempty"`
}

// InspectionFilters contains filter options for listing inspections.
type InspectionFilters struct {
	EquipmentID string    `json:"equipment_id"`
	From        time.Time `json:"from"`
	To          time.Time `json:"to"`
	Limit       int       `json:"limit" validate:"gte=0"`
}

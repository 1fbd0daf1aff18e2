package primary

import (
	"context"
	"time"
)

// RemarkService defines the primary port for remark operations.
type RemarkService interface {
	// ListRemarks lists remarks with optional filters.
	ListRemarks(ctx context.Context, filters RemarkFilters) ([]*Remark, error)

	// GetRemark retrieves a remark by ID.
	GetRemark(ctx context.Context, id string) (*Remark, error)

	// CreateRemark raises a manual remark.
	CreateRemark(ctx context.Context, req CreateRemarkRequest) (*Remark, error)

	// TransitionRemark changes a remark's status.
	TransitionRemark(ctx context.Context, req TransitionRemarkRequest) (*Remark, error)

	// AddRemarkNote appends a note to a remark.
	AddRemarkNote(ctx context.Context, req AddRemarkNoteRequest) (*Remark, error)

	// AssignRemark sets who handles a remark.
	AssignRemark(ctx context.Context, req AssignRemarkRequest) (*Remark, error)
}

// CreateRemarkRequest contains parameters for a manual remark.
type CreateRemarkRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	EquipmentID string `json:"equipment_id" validate:"required"`
	Priority    string `json:"priority"` // Optional, defaults to medium
	Reporter    string `json:"reporter"` // Optional, defaults to the actor in context
	Assignee    string `json:"assignee"`
}

// TransitionRemarkRequest contains parameters for a status change.
type TransitionRemarkRequest struct {
	ID     string `json:"id" validate:"required"`
	Status string `json:"status" validate:"required"`
}

// AddRemarkNoteRequest contains a note to append.
type AddRemarkNoteRequest struct {
	ID   string `json:"id" validate:"required"`
	Note string `json:"note"`
}

// AssignRemarkRequest contains parameters for assigning a remark.
type AssignRemarkRequest struct {
	ID       string `json:"id" validate:"required"`
	Assignee string `json:"assignee" validate:"required"`
}

// Remark represents a remark at the port boundary.
type Remark struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	EquipmentID   string    `json:"equipment_id"`
	EquipmentName string    `json:"equipment_name"`
	Source        string    `json:"source"`
	SourceID      string    `json:"source_id,omitempty"`
	ItemID        string    `json:"item_id,omitempty"`
	Priority      string    `json:"priority"`
	Status        string    `json:"status"`
	Reporter      string    `json:"reporter"`
	Assignee      string    `json:"assignee,omitempty"`
	Notes         []string  `json:"notes"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	ResolvedAt    time.Time `json:"resolved_at,omitempty"`
}

// RemarkFilters contains filter options for listing remarks.
type RemarkFilters struct {
	Status      string `json:"status"`
	Source      string `json:"source"`
	EquipmentID string `json:"equipment_id"`
	Limit       int    `json:"limit" validate:"gte=0"`
}

// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives external systems.
package secondary

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is wrapped by repositories when a lookup by id finds nothing.
var ErrNotFound = errors.New("not found")

// ChecklistRepository defines the secondary port for checklist template persistence.
// One template exists per equipment.
type ChecklistRepository interface {
	// GetByEquipment retrieves the template of an equipment.
	GetByEquipment(ctx context.Context, equipmentID string) (*ChecklistRecord, error)

	// Create persists a new template. An empty ID is assigned the next
	// free CHK-NNN and written back to checklist.ID.
	Create(ctx context.Context, checklist *ChecklistRecord) error

	// Update replaces the name and items of an existing template.
	Update(ctx context.Context, checklist *ChecklistRecord) error
}

// ChecklistRecord represents a checklist template as stored in persistence.
type ChecklistRecord struct {
	ID            string
	EquipmentID   string
	EquipmentName string
	Items         []string // "<category>: <item>" lines, in order
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// EquipmentDirectory is the read-only view of the equipment register.
type EquipmentDirectory interface {
	// List returns every equipment ordered by ID.
	List(ctx context.Context) ([]*EquipmentRecord, error)

	// GetByID retrieves an equipment by its ID.
	GetByID(ctx context.Context, id string) (*EquipmentRecord, error)
}

// EquipmentRecord represents an equipment as exposed by the register.
type EquipmentRecord struct {
	ID                 string
	Name               string
	Type               string
	Status             string
	MaintenancePeriods string // advisory, e.g. "monthly,annual"
}

// TaskDirectory is the read-only view of the external task list.
type TaskDirectory interface {
	// ListDue returns tasks due within [from, to), ordered by due date.
	ListDue(ctx context.Context, from, to time.Time) ([]*TaskRecord, error)
}

// TaskRecord represents an external task with a due date.
type TaskRecord struct {
	ID          string
	Title       string
	EquipmentID string
	Priority    string
	Status      string
	DueDate     time.Time
}

// InspectionRepository defines the secondary port for daily inspection records.
type InspectionRepository interface {
	// Complete persists a record together with the remarks it raised, in one
	// transaction. A record the equipment already has for the same day is
	// replaced, and the open remarks it raised are removed. Returns the ID of
	// the replaced record, or "" when nothing was replaced.
	Complete(ctx context.Context, record *InspectionRecord, remarks []*RemarkRecord) (string, error)

	// GetByID retrieves a record by its ID.
	GetByID(ctx context.Context, id string) (*InspectionRecord, error)

	// List retrieves records matching the given filters, newest first.
	List(ctx context.Context, filters InspectionFilters) ([]*InspectionRecord, error)

	// Delete removes a record.
	Delete(ctx context.Context, id string) error
}

// InspectionRecord represents a completed daily inspection as stored in persistence.
type InspectionRecord struct {
	ID            string
	EquipmentID   string
	EquipmentName string
	Date          time.Time
	CheckResults  []string // parallel to the checklist items
	Comments      []string
	Inspector     string
	Status        string
	CreatedAt     time.Time
}

// InspectionFilters contains filter options for querying inspection records.
// Zero dates leave that side of the range open; To is inclusive.
type InspectionFilters struct {
	EquipmentID string
	From        time.Time
	To          time.Time
	Limit       int
}

// MaintenanceRepository defines the secondary port for maintenance record persistence.
type MaintenanceRepository interface {
	// Create persists a new record.
	Create(ctx context.Context, record *MaintenanceRecord) error

	// GetByID retrieves a record by its ID.
	GetByID(ctx context.Context, id string) (*MaintenanceRecord, error)

	// Update overwrites every mutable field of a record.
	Update(ctx context.Context, record *MaintenanceRecord) error

	// Delete removes a record.
	Delete(ctx context.Context, id string) error

	// List retrieves records matching the given filters, ordered by scheduled date.
	List(ctx context.Context, filters MaintenanceFilters) ([]*MaintenanceRecord, error)

	// AppendNote appends a note line to a record, stamps it updated at at,
	// and stores the remark the note raised, in one transaction.
	AppendNote(ctx context.Context, id, note string, at time.Time, raised *RemarkRecord) error
}

// MaintenanceRecord represents a maintenance record as stored in persistence.
// Status is always a stored status; overdue is never persisted.
type MaintenanceRecord struct {
	ID              string
	EquipmentID     string
	EquipmentName   string
	Type            string
	ScheduledDate   time.Time
	CompletedDate   time.Time // zero until completed
	DurationMinutes int
	Responsible     string
	Status          string
	Priority        string
	Notes           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// MaintenanceFilters contains filter options for querying maintenance records.
// Zero dates leave that side of the range open; To is inclusive.
type MaintenanceFilters struct {
	EquipmentID string
	Status      string // stored status
	Type        string
	From        time.Time
	To          time.Time
}

// RemarkRepository defines the secondary port for remark persistence.
type RemarkRepository interface {
	// Create persists a new remark.
	Create(ctx context.Context, remark *RemarkRecord) error

	// GetByID retrieves a remark by its ID.
	GetByID(ctx context.Context, id string) (*RemarkRecord, error)

	// Update overwrites status, assignee, notes and resolution time.
	Update(ctx context.Context, remark *RemarkRecord) error

	// List retrieves remarks matching the given filters, newest first.
	List(ctx context.Context, filters RemarkFilters) ([]*RemarkRecord, error)
}

// RemarkRecord represents a remark as stored in persistence.
type RemarkRecord struct {
	ID            string
	Title         string
	Description   string
	EquipmentID   string
	EquipmentName string
	Source        string
	SourceID      string // inspection or maintenance record that raised it
	ItemID        string // checklist item, for inspection remarks
	Priority      string
	Status        string
	Reporter      string
	Assignee      string
	Notes         []string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	ResolvedAt    time.Time
}

// RemarkFilters contains filter options for querying remarks.
type RemarkFilters struct {
	Status      string
	Source      string
	EquipmentID string
	Limit       int
}

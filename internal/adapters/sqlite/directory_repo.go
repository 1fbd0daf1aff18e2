package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/example/plantops/internal/ports/secondary"
)

// EquipmentDirectory implements secondary.EquipmentDirectory with SQLite.
type EquipmentDirectory struct {
	db *sql.DB
}

// NewEquipmentDirectory creates a read-only view over the equipment table.
func NewEquipmentDirectory(db *sql.DB) *EquipmentDirectory {
	return &EquipmentDirectory{db: db}
}

const equipmentSelectCols = "id, name, type, status, maintenance_periods"

func scanEquipment(scanner interface {
	Scan(dest ...any) error
}) (*secondary.EquipmentRecord, error) {
	record := &secondary.EquipmentRecord{}
	if err := scanner.Scan(&record.ID, &record.Name, &record.Type, &record.Status, &record.MaintenancePeriods); err != nil {
		return nil, err
	}
	return record, nil
}

// List returns every equipment ordered by ID.
func (d *EquipmentDirectory) List(ctx context.Context) ([]*secondary.EquipmentRecord, error) {
	rows, err := d.db.QueryContext(ctx, "SELECT "+equipmentSelectCols+" FROM equipment ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to list equipment: %w", err)
	}
	defer rows.Close()

	var equipment []*secondary.EquipmentRecord
	for rows.Next() {
		record, err := scanEquipment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan equipment: %w", err)
		}
		equipment = append(equipment, record)
	}
	return equipment, rows.Err()
}

// GetByID retrieves an equipment by its ID.
func (d *EquipmentDirectory) GetByID(ctx context.Context, id string) (*secondary.EquipmentRecord, error) {
	row := d.db.QueryRowContext(ctx, "SELECT "+equipmentSelectCols+" FROM equipment WHERE id = ?", id)

	record, err := scanEquipment(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("equipment %s: %w", id, secondary.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get equipment: %w", err)
	}
	return record, nil
}

// TaskDirectory implements secondary.TaskDirectory with SQLite.
type TaskDirectory struct {
	db  *sql.DB
	loc *time.Location
}

// NewTaskDirectory creates a read-only view over the tasks table.
// Due dates are interpreted in loc.
func NewTaskDirectory(db *sql.DB, loc *time.Location) *TaskDirectory {
	return &TaskDirectory{db: db, loc: locOrUTC(loc)}
}

// ListDue returns tasks due within [from, to), ordered by due date.
func (d *TaskDirectory) ListDue(ctx context.Context, from, to time.Time) ([]*secondary.TaskRecord, error) {
	rows, err := d.db.QueryContext(ctx,
		"SELECT id, title, equipment_id, priority, status, due_date FROM tasks WHERE due_date >= ? AND due_date < ? ORDER BY due_date, id",
		formatDate(from, d.loc), formatDate(to, d.loc),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*secondary.TaskRecord
	for rows.Next() {
		var due string
		record := &secondary.TaskRecord{}
		if err := rows.Scan(&record.ID, &record.Title, &record.EquipmentID, &record.Priority, &record.Status, &due); err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		if record.DueDate, err = parseDate(due, d.loc); err != nil {
			return nil, err
		}
		tasks = append(tasks, record)
	}
	return tasks, rows.Err()
}

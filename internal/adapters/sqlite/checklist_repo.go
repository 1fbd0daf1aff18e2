// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/example/plantops/internal/ports/secondary"
)

// ChecklistRepository implements secondary.ChecklistRepository with SQLite.
type ChecklistRepository struct {
	db *sql.DB
}

// NewChecklistRepository creates a new SQLite checklist repository.
func NewChecklistRepository(db *sql.DB) *ChecklistRepository {
	return &ChecklistRepository{db: db}
}

const checklistSelectCols = "id, equipment_id, equipment_name, items, created_at, updated_at"

// scanChecklist scans a checklist row into a ChecklistRecord.
func scanChecklist(scanner interface {
	Scan(dest ...any) error
}) (*secondary.ChecklistRecord, error) {
	var items, createdAt, updatedAt string

	record := &secondary.ChecklistRecord{}
	if err := scanner.Scan(&record.ID, &record.EquipmentID, &record.EquipmentName, &items, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	var err error
	if record.Items, err = decodeStrings(items); err != nil {
		return nil, err
	}
	if record.CreatedAt, err = parseTS(createdAt); err != nil {
		return nil, err
	}
	if record.UpdatedAt, err = parseTS(updatedAt); err != nil {
		return nil, err
	}
	return record, nil
}

// GetByEquipment retrieves the template of an equipment.
func (r *ChecklistRepository) GetByEquipment(ctx context.Context, equipmentID string) (*secondary.ChecklistRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+checklistSelectCols+" FROM checklists WHERE equipment_id = ?",
		equipmentID,
	)

	record, err := scanChecklist(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("checklist for equipment %s: %w", equipmentID, secondary.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get checklist: %w", err)
	}
	return record, nil
}

// Create persists a new template. An empty ID is assigned the next
// CHK-NNN inside the insert transaction.
func (r *ChecklistRepository) Create(ctx context.Context, checklist *secondary.ChecklistRecord) error {
	items, err := encodeStrings(checklist.Items)
	if err != nil {
		return err
	}

	id := checklist.ID
	err = WithTx(ctx, r.db, nil, func(ctx context.Context, tx DBTX) error {
		if id == "" {
			var err error
			if id, err = nextID(ctx, tx, "checklists", "CHK"); err != nil {
				return err
			}
		}
		_, err := tx.ExecContext(ctx,
			"INSERT INTO checklists (id, equipment_id, equipment_name, items, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)",
			id, checklist.EquipmentID, checklist.EquipmentName, items,
			formatTS(checklist.CreatedAt), formatTS(checklist.UpdatedAt),
		)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to create checklist: %w", err)
	}
	checklist.ID = id
	return nil
}

// Update replaces the name and items of an existing template.
func (r *ChecklistRepository) Update(ctx context.Context, checklist *secondary.ChecklistRecord) error {
	items, err := encodeStrings(checklist.Items)
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx,
		"UPDATE checklists SET equipment_name = ?, items = ?, updated_at = ? WHERE id = ?",
		checklist.EquipmentName, items, formatTS(checklist.UpdatedAt), checklist.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update checklist: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("checklist %s: %w", checklist.ID, secondary.ErrNotFound)
	}
	return nil
}

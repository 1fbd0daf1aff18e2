package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/example/plantops/internal/ports/secondary"
)

// MaintenanceRepository implements secondary.MaintenanceRepository with SQLite.
type MaintenanceRepository struct {
	db  *sql.DB
	loc *time.Location
}

// NewMaintenanceRepository creates a new SQLite maintenance repository.
// Scheduled and completed dates are calendar days in loc.
func NewMaintenanceRepository(db *sql.DB, loc *time.Location) *MaintenanceRepository {
	return &MaintenanceRepository{db: db, loc: locOrUTC(loc)}
}

const maintenanceSelectCols = "id, equipment_id, equipment_name, type, scheduled_date, completed_date, duration_minutes, responsible, status, priority, notes, created_at, updated_at"

func (r *MaintenanceRepository) scanMaintenance(scanner interface {
	Scan(dest ...any) error
}) (*secondary.MaintenanceRecord, error) {
	var (
		scheduled string
		completed sql.NullString
		createdAt string
		updatedAt string
	)

	record := &secondary.MaintenanceRecord{}
	err := scanner.Scan(
		&record.ID, &record.EquipmentID, &record.EquipmentName, &record.Type,
		&scheduled, &completed, &record.DurationMinutes, &record.Responsible,
		&record.Status, &record.Priority, &record.Notes, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if record.ScheduledDate, err = parseDate(scheduled, r.loc); err != nil {
		return nil, err
	}
	if completed.Valid && completed.String != "" {
		if record.CompletedDate, err = parseDate(completed.String, r.loc); err != nil {
			return nil, err
		}
	}
	if record.CreatedAt, err = parseTS(createdAt); err != nil {
		return nil, err
	}
	if record.UpdatedAt, err = parseTS(updatedAt); err != nil {
		return nil, err
	}
	return record, nil
}

// Create persists a new record. An empty ID is assigned the next
// MNT-NNN inside the insert transaction.
func (r *MaintenanceRepository) Create(ctx context.Context, record *secondary.MaintenanceRecord) error {
	id := record.ID
	err := WithTx(ctx, r.db, nil, func(ctx context.Context, tx DBTX) error {
		if id == "" {
			var err error
			if id, err = nextID(ctx, tx, "maintenance", "MNT"); err != nil {
				return err
			}
		}
		_, err := tx.ExecContext(ctx,
			"INSERT INTO maintenance ("+maintenanceSelectCols+") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
			id, record.EquipmentID, record.EquipmentName, record.Type,
			formatDate(record.ScheduledDate, r.loc), nullDate(record.CompletedDate, r.loc),
			record.DurationMinutes, record.Responsible, record.Status, record.Priority, record.Notes,
			formatTS(record.CreatedAt), formatTS(record.UpdatedAt),
		)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to create maintenance record: %w", err)
	}
	record.ID = id
	return nil
}

// GetByID retrieves a record by its ID.
func (r *MaintenanceRepository) GetByID(ctx context.Context, id string) (*secondary.MaintenanceRecord, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+maintenanceSelectCols+" FROM maintenance WHERE id = ?", id)

	record, err := r.scanMaintenance(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("maintenance record %s: %w", id, secondary.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get maintenance record: %w", err)
	}
	return record, nil
}

// Update overwrites every mutable field of a record.
func (r *MaintenanceRepository) Update(ctx context.Context, record *secondary.MaintenanceRecord) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE maintenance SET equipment_name = ?, type = ?, scheduled_date = ?, completed_date = ?,
			duration_minutes = ?, responsible = ?, status = ?, priority = ?, notes = ?, updated_at = ?
		WHERE id = ?`,
		record.EquipmentName, record.Type,
		formatDate(record.ScheduledDate, r.loc), nullDate(record.CompletedDate, r.loc),
		record.DurationMinutes, record.Responsible, record.Status, record.Priority, record.Notes,
		formatTS(record.UpdatedAt), record.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update maintenance record: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("maintenance record %s: %w", record.ID, secondary.ErrNotFound)
	}
	return nil
}

// Delete removes a record.
func (r *MaintenanceRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM maintenance WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete maintenance record: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("maintenance record %s: %w", id, secondary.ErrNotFound)
	}
	return nil
}

// List retrieves records matching the given filters, ordered by scheduled date.
func (r *MaintenanceRepository) List(ctx context.Context, filters secondary.MaintenanceFilters) ([]*secondary.MaintenanceRecord, error) {
	query := "SELECT " + maintenanceSelectCols + " FROM maintenance WHERE 1=1"
	args := []any{}

	if filters.EquipmentID != "" {
		query += " AND equipment_id = ?"
		args = append(args, filters.EquipmentID)
	}

	if filters.Status != "" {
		query += " AND status = ?"
		args = append(args, filters.Status)
	}

	if filters.Type != "" {
		query += " AND type = ?"
		args = append(args, filters.Type)
	}

	if !filters.From.IsZero() {
		query += " AND scheduled_date >= ?"
		args = append(args, formatDate(filters.From, r.loc))
	}

	if !filters.To.IsZero() {
		query += " AND scheduled_date <= ?"
		args = append(args, formatDate(filters.To, r.loc))
	}

	query += " ORDER BY scheduled_date, id"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list maintenance records: %w", err)
	}
	defer rows.Close()

	var records []*secondary.MaintenanceRecord
	for rows.Next() {
		record, err := r.scanMaintenance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan maintenance record: %w", err)
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// AppendNote appends a note line and stores the remark it raised.
func (r *MaintenanceRepository) AppendNote(ctx context.Context, id, note string, at time.Time, raised *secondary.RemarkRecord) error {
	return WithTx(ctx, r.db, nil, func(ctx context.Context, tx DBTX) error {
		var notes string
		err := tx.QueryRowContext(ctx, "SELECT notes FROM maintenance WHERE id = ?", id).Scan(&notes)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("maintenance record %s: %w", id, secondary.ErrNotFound)
		}
		if err != nil {
			return fmt.Errorf("failed to read maintenance notes: %w", err)
		}

		if notes != "" {
			notes += "\n"
		}
		notes += note

		if _, err := tx.ExecContext(ctx,
			"UPDATE maintenance SET notes = ?, updated_at = ? WHERE id = ?",
			notes, formatTS(at), id,
		); err != nil {
			return fmt.Errorf("failed to append maintenance note: %w", err)
		}

		if raised == nil {
			return nil
		}
		return insertRemark(ctx, tx, raised)
	})
}

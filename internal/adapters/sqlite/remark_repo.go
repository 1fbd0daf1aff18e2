package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/example/plantops/internal/ports/secondary"
)

// RemarkRepository implements secondary.RemarkRepository with SQLite.
type RemarkRepository struct {
	db *sql.DB
}

// NewRemarkRepository creates a new SQLite remark repository.
func NewRemarkRepository(db *sql.DB) *RemarkRepository {
	return &RemarkRepository{db: db}
}

const remarkSelectCols = "id, title, description, equipment_id, equipment_name, source, source_id, item_id, priority, status, reporter, assignee, notes, created_at, updated_at, resolved_at"

// scanRemark scans a remark row into a RemarkRecord.
func scanRemark(scanner interface {
	Scan(dest ...any) error
}) (*secondary.RemarkRecord, error) {
	var (
		notes      string
		createdAt  string
		updatedAt  string
		resolvedAt sql.NullString
	)

	record := &secondary.RemarkRecord{}
	err := scanner.Scan(
		&record.ID, &record.Title, &record.Description, &record.EquipmentID, &record.EquipmentName,
		&record.Source, &record.SourceID, &record.ItemID, &record.Priority, &record.Status,
		&record.Reporter, &record.Assignee, &notes, &createdAt, &updatedAt, &resolvedAt,
	)
	if err != nil {
		return nil, err
	}

	if record.Notes, err = decodeStrings(notes); err != nil {
		return nil, err
	}
	if record.CreatedAt, err = parseTS(createdAt); err != nil {
		return nil, err
	}
	if record.UpdatedAt, err = parseTS(updatedAt); err != nil {
		return nil, err
	}
	if record.ResolvedAt, err = parseNullTS(resolvedAt); err != nil {
		return nil, err
	}
	return record, nil
}

// insertRemark writes a remark through db, which may be a transaction.
func insertRemark(ctx context.Context, db DBTX, remark *secondary.RemarkRecord) error {
	notes, err := encodeStrings(remark.Notes)
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx,
		"INSERT INTO remarks ("+remarkSelectCols+") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
		remark.ID, remark.Title, remark.Description, remark.EquipmentID, remark.EquipmentName,
		remark.Source, remark.SourceID, remark.ItemID, remark.Priority, remark.Status,
		remark.Reporter, remark.Assignee, notes,
		formatTS(remark.CreatedAt), formatTS(remark.UpdatedAt), nullTS(remark.ResolvedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to create remark: %w", err)
	}
	return nil
}

// Create persists a new remark.
func (r *RemarkRepository) Create(ctx context.Context, remark *secondary.RemarkRecord) error {
	return insertRemark(ctx, r.db, remark)
}

// GetByID retrieves a remark by its ID.
func (r *RemarkRepository) GetByID(ctx context.Context, id string) (*secondary.RemarkRecord, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+remarkSelectCols+" FROM remarks WHERE id = ?", id)

	record, err := scanRemark(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("remark %s: %w", id, secondary.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get remark: %w", err)
	}
	return record, nil
}

// Update overwrites status, assignee, notes and resolution time.
func (r *RemarkRepository) Update(ctx context.Context, remark *secondary.RemarkRecord) error {
	notes, err := encodeStrings(remark.Notes)
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx,
		"UPDATE remarks SET status = ?, assignee = ?, notes = ?, updated_at = ?, resolved_at = ? WHERE id = ?",
		remark.Status, remark.Assignee, notes, formatTS(remark.UpdatedAt), nullTS(remark.ResolvedAt), remark.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update remark: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("remark %s: %w", remark.ID, secondary.ErrNotFound)
	}
	return nil
}

// List retrieves remarks matching the given filters, newest first.
func (r *RemarkRepository) List(ctx context.Context, filters secondary.RemarkFilters) ([]*secondary.RemarkRecord, error) {
	query := "SELECT " + remarkSelectCols + " FROM remarks WHERE 1=1"
	args := []any{}

	if filters.Status != "" {
		query += " AND status = ?"
		args = append(args, filters.Status)
	}

	if filters.Source != "" {
		query += " AND source = ?"
		args = append(args, filters.Source)
	}

	if filters.EquipmentID != "" {
		query += " AND equipment_id = ?"
		args = append(args, filters.EquipmentID)
	}

	query += " ORDER BY created_at DESC, id"

	if filters.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filters.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list remarks: %w", err)
	}
	defer rows.Close()

	var remarks []*secondary.RemarkRecord
	for rows.Next() {
		record, err := scanRemark(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan remark: %w", err)
		}
		remarks = append(remarks, record)
	}
	return remarks, rows.Err()
}

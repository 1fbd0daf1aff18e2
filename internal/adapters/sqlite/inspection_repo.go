package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/example/plantops/internal/ports/secondary"
)

// InspectionRepository implements secondary.InspectionRepository with SQLite.
type InspectionRepository struct {
	db  *sql.DB
	loc *time.Location
}

// NewInspectionRepository creates a new SQLite inspection repository.
// Inspection dates are calendar days in loc.
func NewInspectionRepository(db *sql.DB, loc *time.Location) *InspectionRepository {
	return &InspectionRepository{db: db, loc: locOrUTC(loc)}
}

const inspectionSelectCols = "id, equipment_id, equipment_name, inspection_date, check_results, comments, inspector, status, created_at"

func (r *InspectionRepository) scanInspection(scanner interface {
	Scan(dest ...any) error
}) (*secondary.InspectionRecord, error) {
	var date, results, comments, createdAt string

	record := &secondary.InspectionRecord{}
	err := scanner.Scan(
		&record.ID, &record.EquipmentID, &record.EquipmentName, &date,
		&results, &comments, &record.Inspector, &record.Status, &createdAt,
	)
	if err != nil {
		return nil, err
	}

	if record.Date, err = parseDate(date, r.loc); err != nil {
		return nil, err
	}
	if record.CheckResults, err = decodeStrings(results); err != nil {
		return nil, err
	}
	if record.Comments, err = decodeStrings(comments); err != nil {
		return nil, err
	}
	if record.CreatedAt, err = parseTS(createdAt); err != nil {
		return nil, err
	}
	return record, nil
}

// Complete persists the record and its remarks in one transaction,
// replacing any record the equipment already has for that day.
func (r *InspectionRepository) Complete(ctx context.Context, record *secondary.InspectionRecord, remarks []*secondary.RemarkRecord) (string, error) {
	results, err := encodeStrings(record.CheckResults)
	if err != nil {
		return "", err
	}
	comments, err := encodeStrings(record.Comments)
	if err != nil {
		return "", err
	}
	day := formatDate(record.Date, r.loc)

	var replaced string
	err = WithTx(ctx, r.db, nil, func(ctx context.Context, tx DBTX) error {
		replaced = ""
		err := tx.QueryRowContext(ctx,
			"SELECT id FROM inspections WHERE equipment_id = ? AND inspection_date = ?",
			record.EquipmentID, day,
		).Scan(&replaced)
		switch {
		case errors.Is(err, sql.ErrNoRows):
			replaced = ""
		case err != nil:
			return fmt.Errorf("failed to look up same-day inspection: %w", err)
		default:
			// Resolved or in-progress remarks were already acted on and are kept.
			if _, err := tx.ExecContext(ctx,
				"DELETE FROM remarks WHERE source = 'inspection' AND source_id = ? AND status = 'open'",
				replaced,
			); err != nil {
				return fmt.Errorf("failed to drop remarks of replaced inspection: %w", err)
			}
			if _, err := tx.ExecContext(ctx, "DELETE FROM inspections WHERE id = ?", replaced); err != nil {
				return fmt.Errorf("failed to replace inspection: %w", err)
			}
		}

		if _, err := tx.ExecContext(ctx,
			"INSERT INTO inspections ("+inspectionSelectCols+") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)",
			record.ID, record.EquipmentID, record.EquipmentName, day,
			results, comments, record.Inspector, record.Status, formatTS(record.CreatedAt),
		); err != nil {
			return fmt.Errorf("failed to create inspection: %w", err)
		}

		for _, remark := range remarks {
			if err := insertRemark(ctx, tx, remark); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return replaced, nil
}

// GetByID retrieves a record by its ID.
func (r *InspectionRepository) GetByID(ctx context.Context, id string) (*secondary.InspectionRecord, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+inspectionSelectCols+" FROM inspections WHERE id = ?", id)

	record, err := r.scanInspection(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("inspection %s: %w", id, secondary.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get inspection: %w", err)
	}
	return record, nil
}

// List retrieves records matching the given filters, newest first.
func (r *InspectionRepository) List(ctx context.Context, filters secondary.InspectionFilters) ([]*secondary.InspectionRecord, error) {
	query := "SELECT " + inspectionSelectCols + " FROM inspections WHERE 1=1"
	args := []any{}

	if filters.EquipmentID != "" {
		query += " AND equipment_id = ?"
		args = append(args, filters.EquipmentID)
	}

	if !filters.From.IsZero() {
		query += " AND inspection_date >= ?"
		args = append(args, formatDate(filters.From, r.loc))
	}

	if !filters.To.IsZero() {
		query += " AND inspection_date <= ?"
		args = append(args, formatDate(filters.To, r.loc))
	}

	query += " ORDER BY inspection_date DESC, created_at DESC"

	if filters.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filters.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list inspections: %w", err)
	}
	defer rows.Close()

	var records []*secondary.InspectionRecord
	for rows.Next() {
		record, err := r.scanInspection(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan inspection: %w", err)
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// Delete removes a record.
func (r *InspectionRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM inspections WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete inspection: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("inspection %s: %w", id, secondary.ErrNotFound)
	}
	return nil
}

package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// SeedDemo populates the read-only directories (equipment, tasks), one
// checklist template and a few maintenance records around today with demo
// data. Existing rows are left untouched.
func SeedDemo(ctx context.Context, database *sql.DB, today time.Time) error {
	now := time.Now().UTC().Format(time.RFC3339)

	// Equipment
	equipment := []struct{ id, name, typ, status, periods string }{
		{"EQ-001", "Hydraulic press P-250", "press", "working", "monthly,annual"},
		{"EQ-002", "CNC lathe 16K20", "lathe", "working", "quarterly"},
		{"EQ-003", "Screw compressor GA-37", "compressor", "maintenance", "monthly,semiannual"},
		{"EQ-004", "Overhead crane 5t", "crane", "working", "quarterly,annual"},
		{"EQ-005", "Belt conveyor L-12", "conveyor", "not_working", "monthly"},
	}
	for _, e := range equipment {
		if _, err := database.ExecContext(ctx,
			"INSERT OR IGNORE INTO equipment (id, name, type, status, maintenance_periods, created_at) VALUES (?, ?, ?, ?, ?, ?)",
			e.id, e.name, e.typ, e.status, e.periods, now,
		); err != nil {
			return fmt.Errorf("seed equipment: %w", err)
		}
	}

	// Tasks, due relative to today
	tasks := []struct {
		id, title, equipmentID, priority string
		dueIn                            int
	}{
		{"TASK-001", "Order hydraulic seals", "EQ-001", "high", 2},
		{"TASK-002", "Replace conveyor belt", "EQ-005", "critical", 0},
		{"TASK-003", "Calibrate lathe tailstock", "EQ-002", "medium", 7},
		{"TASK-004", "Renew crane certificate", "EQ-004", "low", 21},
	}
	for _, t := range tasks {
		due := today.AddDate(0, 0, t.dueIn).Format("2006-01-02")
		if _, err := database.ExecContext(ctx,
			"INSERT OR IGNORE INTO tasks (id, title, equipment_id, priority, status, due_date) VALUES (?, ?, ?, ?, 'open', ?)",
			t.id, t.title, t.equipmentID, t.priority, due,
		); err != nil {
			return fmt.Errorf("seed tasks: %w", err)
		}
	}

	// Checklist for the press; the other equipment use the default list
	items, err := json.Marshal([]string{
		"Safety: Guards and interlocks in place",
		"Safety: Emergency stop works",
		"Hydraulics: Oil level within marks",
		"Hydraulics: No leaks at hoses and fittings",
		"Hydraulics: Working pressure within range",
		"Electrical: Control panel indicators working",
	})
	if err != nil {
		return fmt.Errorf("seed checklists: %w", err)
	}
	if _, err := database.ExecContext(ctx,
		"INSERT OR IGNORE INTO checklists (id, equipment_id, equipment_name, items, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)",
		"CHK-001", "EQ-001", "Hydraulic press P-250", string(items), now, now,
	); err != nil {
		return fmt.Errorf("seed checklists: %w", err)
	}

	// Maintenance, scheduled relative to today. MNT-001 is left scheduled in
	// the past so it reads as overdue.
	maintenance := []struct {
		id, equipmentID, name, typ, status, priority, responsible string
		dayOffset, duration                                       int
		completed                                                 bool
	}{
		{"MNT-001", "EQ-003", "Screw compressor GA-37", "monthly", "scheduled", "high", "sidorov", -3, 120, false},
		{"MNT-002", "EQ-001", "Hydraulic press P-250", "monthly", "completed", "medium", "petrov", -10, 90, true},
		{"MNT-003", "EQ-002", "CNC lathe 16K20", "quarterly", "scheduled", "medium", "petrov", 5, 240, false},
		{"MNT-004", "EQ-005", "Belt conveyor L-12", "repair", "unplanned", "critical", "sidorov", 0, 180, false},
		{"MNT-005", "EQ-004", "Overhead crane 5t", "annual", "scheduled", "low", "ivanov", 14, 480, false},
	}
	for _, m := range maintenance {
		scheduled := today.AddDate(0, 0, m.dayOffset).Format("2006-01-02")
		var completed any
		if m.completed {
			completed = scheduled
		}
		if _, err := database.ExecContext(ctx,
			`INSERT OR IGNORE INTO maintenance (id, equipment_id, equipment_name, type, scheduled_date, completed_date,
				duration_minutes, responsible, status, priority, notes, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, '', ?, ?)`,
			m.id, m.equipmentID, m.name, m.typ, scheduled, completed,
			m.duration, m.responsible, m.status, m.priority, now, now,
		); err != nil {
			return fmt.Errorf("seed maintenance: %w", err)
		}
	}

	return nil
}

// Package calendar projects maintenance records and task due-dates onto
// month and year views. Pure functions only; nothing here is persisted.
package calendar

import (
	"time"

	"github.com/example/plantops/internal/core/maintenance"
)

// GridSize is the number of cells in a month grid: six full weeks.
const GridSize = 42

// MaintenanceEvent is a maintenance record as placed on the calendar.
// Status is the stored status on input; grid cells carry the display status.
type MaintenanceEvent struct {
	ID            string             `json:"id"`
	EquipmentID   string             `json:"equipment_id"`
	EquipmentName string             `json:"equipment_name"`
	Type          maintenance.Type   `json:"type"`
	Status        maintenance.Status `json:"status"`
	Priority      string             `json:"priority"`
	Date          time.Time          `json:"date"`
}

// TaskEvent is an external task placed on the calendar by its due date.
type TaskEvent struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	EquipmentID string    `json:"equipment_id"`
	Priority    string    `json:"priority"`
	Status      string    `json:"status"`
	DueDate     time.Time `json:"due_date"`
}

// DayCell is one day of a month grid.
type DayCell struct {
	Date           time.Time          `json:"date"`
	IsCurrentMonth bool               `json:"is_current_month"`
	IsToday        bool               `json:"is_today"`
	Maintenance    []MaintenanceEvent `json:"maintenance"`
	Tasks          []TaskEvent        `json:"tasks"`
}

// Grid is a rectangular month view starting on a Monday.
type Grid [GridSize]DayCell

// MondayOffset returns how many days d lies after the Monday of its week.
// Sunday maps to 6, Monday..Saturday map to 0..5.
func MondayOffset(d time.Weekday) int {
	if d == time.Sunday {
		return 6
	}
	return int(d) - 1
}

// GridStart returns the Monday on or before the first of anchor's month.
func GridStart(anchor time.Time) time.Time {
	first := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, anchor.Location())
	return first.AddDate(0, 0, -MondayOffset(first.Weekday()))
}

// BuildMonthGrid lays out the month containing anchor as 42 consecutive days.
// Events keep their input order within a day. Maintenance events are
// reported with their display status evaluated at now.
func BuildMonthGrid(anchor, now time.Time, records []MaintenanceEvent, tasks []TaskEvent) Grid {
	loc := anchor.Location()
	now = now.In(loc)

	byDay := make(map[string][]MaintenanceEvent)
	for _, r := range records {
		key := dayKey(r.Date.In(loc))
		r.Status = maintenance.DisplayStatus(r.Status, r.Date, now)
		byDay[key] = append(byDay[key], r)
	}

	tasksByDay := make(map[string][]TaskEvent)
	for _, t := range tasks {
		key := dayKey(t.DueDate.In(loc))
		tasksByDay[key] = append(tasksByDay[key], t)
	}

	var grid Grid
	start := GridStart(anchor)
	for i := range grid {
		day := start.AddDate(0, 0, i)
		key := dayKey(day)
		grid[i] = DayCell{
			Date:           day,
			IsCurrentMonth: day.Month() == anchor.Month() && day.Year() == anchor.Year(),
			IsToday:        maintenance.SameDay(day, now),
			Maintenance:    byDay[key],
			Tasks:          tasksByDay[key],
		}
	}
	return grid
}

func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

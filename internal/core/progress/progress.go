// Package progress models in-flight inspection answers kept between auto-saves.
// This is part of the Functional Core - no I/O, only pure functions.
package progress

import (
	"time"

	"github.com/example/plantops/internal/core/checklist"
)

// ValidityWindow is how long a saved snapshot may be resumed.
const ValidityWindow = 2 * time.Hour

// DayLayout is the calendar-day key format.
const DayLayout = "2006-01-02"

// Entry is a TTL-stamped snapshot of one equipment's session for one day.
type Entry struct {
	EquipmentID string           `json:"equipment_id"`
	Day         string           `json:"day"`
	Items       []checklist.Item `json:"items"`
	SavedAt     time.Time        `json:"saved_at"`
}

// NewEntry stamps a snapshot with the time it was written.
func NewEntry(equipmentID string, day time.Time, items []checklist.Item, now time.Time) Entry {
	snapshot := make([]checklist.Item, len(items))
	copy(snapshot, items)
	return Entry{
		EquipmentID: equipmentID,
		Day:         DayKey(day),
		Items:       snapshot,
		SavedAt:     now,
	}
}

// IsValid reports whether the entry can still be resumed at now.
// A non-positive window uses ValidityWindow.
func (e Entry) IsValid(now time.Time, window time.Duration) bool {
	if window <= 0 {
		window = ValidityWindow
	}
	if e.SavedAt.IsZero() {
		return false
	}
	return !now.After(e.SavedAt.Add(window))
}

// ExpiresAt returns the instant after which the entry is no longer valid.
func (e Entry) ExpiresAt(window time.Duration) time.Time {
	if window <= 0 {
		window = ValidityWindow
	}
	return e.SavedAt.Add(window)
}

// DayKey formats t as a calendar-day key in t's location.
func DayKey(t time.Time) string {
	return t.Format(DayLayout)
}

// CacheKey addresses a snapshot by equipment and day.
func CacheKey(equipmentID string, day time.Time) string {
	return "progress/" + DayKey(day) + "/" + equipmentID
}

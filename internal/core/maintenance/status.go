// Package maintenance contains the pure business logic for maintenance records.
// This is part of the Functional Core - no I/O, only pure functions.
package maintenance

import "time"

// Status is the state of a maintenance record.
type Status string

const (
	StatusScheduled  Status = "scheduled"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusPostponed  Status = "postponed"
	StatusUnplanned  Status = "unplanned"

	// StatusOverdue is only ever computed at read time; it is never stored.
	StatusOverdue Status = "overdue"
)

// Type is the kind of maintenance work.
type Type string

const (
	TypeMonthly    Type = "monthly"
	TypeQuarterly  Type = "quarterly"
	TypeSemiannual Type = "semiannual"
	TypeAnnual     Type = "annual"
	TypeRepair     Type = "repair"
	TypeUnplanned  Type = "unplanned"
)

// Types lists every maintenance type in display order.
var Types = []Type{TypeMonthly, TypeQuarterly, TypeSemiannual, TypeAnnual, TypeRepair, TypeUnplanned}

// StoredStatuses lists the statuses a record may be persisted with.
var StoredStatuses = []Status{StatusScheduled, StatusInProgress, StatusCompleted, StatusPostponed, StatusUnplanned}

// DisplayStatuses lists every status a record may be reported with.
var DisplayStatuses = []Status{StatusScheduled, StatusInProgress, StatusCompleted, StatusPostponed, StatusOverdue, StatusUnplanned}

// ValidType reports whether t is a known maintenance type.
func ValidType(t Type) bool {
	for _, known := range Types {
		if t == known {
			return true
		}
	}
	return false
}

// Storable reports whether s may be persisted.
func Storable(s Status) bool {
	for _, known := range StoredStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// IsOverdue reports whether a record is overdue at now.
// Only still-scheduled records whose date is strictly before today qualify.
func IsOverdue(stored Status, scheduled, now time.Time) bool {
	if stored != StatusScheduled {
		return false
	}
	return StartOfDay(scheduled).Before(StartOfDay(now.In(scheduled.Location())))
}

// DisplayStatus returns the status a record is reported with at now.
func DisplayStatus(stored Status, scheduled, now time.Time) Status {
	if IsOverdue(stored, scheduled, now) {
		return StatusOverdue
	}
	return stored
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar day in a's location.
func SameDay(a, b time.Time) bool {
	b = b.In(a.Location())
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

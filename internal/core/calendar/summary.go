package calendar

import (
	"time"

	"github.com/example/plantops/internal/core/maintenance"
)

// MonthStats counts one month's maintenance records by display status.
type MonthStats struct {
	Month      time.Month `json:"month"`
	Scheduled  int        `json:"scheduled"`
	InProgress int        `json:"in_progress"`
	Completed  int        `json:"completed"`
	Postponed  int        `json:"postponed"`
	Overdue    int        `json:"overdue"`
	Unplanned  int        `json:"unplanned"`
	Total      int        `json:"total"`
}

// BuildYearSummary counts the records of year per month, applying the
// read-time overdue rule at now. Records outside the year are ignored.
func BuildYearSummary(year int, loc *time.Location, now time.Time, records []MaintenanceEvent) [12]MonthStats {
	var stats [12]MonthStats
	for i := range stats {
		stats[i].Month = time.Month(i + 1)
	}

	for _, r := range records {
		date := r.Date.In(loc)
		if date.Year() != year {
			continue
		}
		m := &stats[date.Month()-1]
		m.Total++
		switch maintenance.DisplayStatus(r.Status, r.Date, now) {
		case maintenance.StatusScheduled:
			m.Scheduled++
		case maintenance.StatusInProgress:
			m.InProgress++
		case maintenance.StatusCompleted:
			m.Completed++
		case maintenance.StatusPostponed:
			m.Postponed++
		case maintenance.StatusOverdue:
			m.Overdue++
		case maintenance.StatusUnplanned:
			m.Unplanned++
		}
	}
	return stats
}

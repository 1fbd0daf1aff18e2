package primary

import (
	"context"
	"time"

	"github.com/example/plantops/internal/core/calendar"
)

// CalendarService defines the primary port for calendar views.
type CalendarService interface {
	// MonthGrid builds the six-week grid for the month containing anchor.
	// A zero anchor means the current month.
	MonthGrid(ctx context.Context, anchor time.Time) (*MonthView, error)

	// YearSummary counts maintenance records per month of year.
	YearSummary(ctx context.Context, year int) (*YearView, error)
}

// MonthView is a rendered-ready month grid.
type MonthView struct {
	Year  int           `json:"year"`
	Month time.Month    `json:"month"`
	Today time.Time     `json:"today"`
	Cells calendar.Grid `json:"cells"`
}

// YearView holds per-month maintenance counts.
type YearView struct {
	Year   int                     `json:"year"`
	Months [12]calendar.MonthStats `json:"months"`
}

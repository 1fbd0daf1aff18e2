package maintenance

import (
	"testing"
	"time"
)

func TestIsOverdue(t *testing.T) {
	now := time.Date(2024, 5, 15, 10, 0, 0, 0, time.UTC)
	yesterday := now.AddDate(0, 0, -1)
	earlyToday := time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC)
	tomorrow := now.AddDate(0, 0, 1)

	tests := []struct {
		name      string
		stored    Status
		scheduled time.Time
		want      bool
	}{
		{name: "scheduled yesterday", stored: StatusScheduled, scheduled: yesterday, want: true},
		{name: "scheduled today earlier", stored: StatusScheduled, scheduled: earlyToday, want: false},
		{name: "scheduled later today", stored: StatusScheduled, scheduled: now.Add(5 * time.Hour), want: false},
		{name: "scheduled tomorrow", stored: StatusScheduled, scheduled: tomorrow, want: false},
		{name: "completed yesterday", stored: StatusCompleted, scheduled: yesterday, want: false},
		{name: "in progress yesterday", stored: StatusInProgress, scheduled: yesterday, want: false},
		{name: "postponed last month", stored: StatusPostponed, scheduled: now.AddDate(0, -1, 0), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsOverdue(tt.stored, tt.scheduled, now); got != tt.want {
				t.Errorf("IsOverdue() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDisplayStatus_StopsBeingOverdueOnceCompleted(t *testing.T) {
	now := time.Date(2024, 5, 15, 10, 0, 0, 0, time.UTC)
	yesterday := now.AddDate(0, 0, -1)

	if got := DisplayStatus(StatusScheduled, yesterday, now); got != StatusOverdue {
		t.Fatalf("DisplayStatus() = %q, want overdue", got)
	}
	if got := DisplayStatus(StatusCompleted, yesterday, now); got != StatusCompleted {
		t.Errorf("DisplayStatus() = %q, want completed", got)
	}
}

func TestIsOverdue_UsesScheduledLocation(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	scheduled := time.Date(2024, 5, 14, 0, 0, 0, 0, loc)
	// 22:30 UTC on the 14th is already the 15th at UTC+3.
	now := time.Date(2024, 5, 14, 22, 30, 0, 0, time.UTC)

	if !IsOverdue(StatusScheduled, scheduled, now) {
		t.Error("expected record to be overdue in its own timezone")
	}
}

func TestSameDay(t *testing.T) {
	a := time.Date(2024, 2, 29, 23, 59, 0, 0, time.UTC)
	if !SameDay(a, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)) {
		t.Error("expected same day")
	}
	if SameDay(a, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)) {
		t.Error("expected different day")
	}
}

func TestStorable(t *testing.T) {
	if Storable(StatusOverdue) {
		t.Error("overdue must not be storable")
	}
	for _, s := range StoredStatuses {
		if !Storable(s) {
			t.Errorf("expected %q to be storable", s)
		}
	}
}

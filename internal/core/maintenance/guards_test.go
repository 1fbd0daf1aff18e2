package maintenance

import (
	"testing"
	"time"

	"github.com/example/plantops/internal/core/remark"
)

func TestCanWrite(t *testing.T) {
	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	valid := WriteContext{
		EquipmentID:     "EQ-1",
		EquipmentExists: true,
		Type:            TypeMonthly,
		Status:          StatusScheduled,
		Priority:        remark.PriorityMedium,
		ScheduledDate:   date,
	}

	tests := []struct {
		name        string
		mutate      func(*WriteContext)
		wantAllowed bool
		wantReason  string
	}{
		{name: "valid record", mutate: func(*WriteContext) {}, wantAllowed: true},
		{
			name:       "missing equipment",
			mutate:     func(c *WriteContext) { c.EquipmentExists = false },
			wantReason: "equipment EQ-1 not found",
		},
		{
			name:       "unknown type",
			mutate:     func(c *WriteContext) { c.Type = "weekly" },
			wantReason: `unknown maintenance type "weekly"`,
		},
		{
			name:       "unknown priority",
			mutate:     func(c *WriteContext) { c.Priority = "urgent" },
			wantReason: `unknown priority "urgent"`,
		},
		{
			name:       "overdue cannot be stored",
			mutate:     func(c *WriteContext) { c.Status = StatusOverdue },
			wantReason: "overdue is computed from the scheduled date and cannot be stored",
		},
		{
			name:       "unknown status",
			mutate:     func(c *WriteContext) { c.Status = "cancelled" },
			wantReason: `unknown maintenance status "cancelled"`,
		},
		{
			name:       "missing date",
			mutate:     func(c *WriteContext) { c.ScheduledDate = time.Time{} },
			wantReason: "scheduled date is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := valid
			tt.mutate(&ctx)
			result := CanWrite(ctx)
			if result.Allowed != tt.wantAllowed {
				t.Errorf("Allowed = %v, want %v", result.Allowed, tt.wantAllowed)
			}
			if !tt.wantAllowed && result.Reason != tt.wantReason {
				t.Errorf("Reason = %q, want %q", result.Reason, tt.wantReason)
			}
		})
	}
}

func TestTransitionGuards(t *testing.T) {
	tests := []struct {
		name  string
		guard func(TransitionContext) GuardResult
		from  Status
		want  bool
	}{
		{name: "start scheduled", guard: CanStart, from: StatusScheduled, want: true},
		{name: "start postponed", guard: CanStart, from: StatusPostponed, want: false},
		{name: "start completed", guard: CanStart, from: StatusCompleted, want: false},
		{name: "postpone scheduled", guard: CanPostpone, from: StatusScheduled, want: true},
		{name: "postpone in progress", guard: CanPostpone, from: StatusInProgress, want: false},
		{name: "complete scheduled", guard: CanComplete, from: StatusScheduled, want: true},
		{name: "complete in progress", guard: CanComplete, from: StatusInProgress, want: true},
		{name: "complete unplanned", guard: CanComplete, from: StatusUnplanned, want: true},
		{name: "complete completed", guard: CanComplete, from: StatusCompleted, want: false},
		{name: "reschedule postponed", guard: CanReschedule, from: StatusPostponed, want: true},
		{name: "reschedule in progress", guard: CanReschedule, from: StatusInProgress, want: true},
		{name: "reschedule completed", guard: CanReschedule, from: StatusCompleted, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.guard(TransitionContext{RecordID: "MNT-001", Status: tt.from})
			if result.Allowed != tt.want {
				t.Errorf("Allowed = %v, want %v (reason: %s)", result.Allowed, tt.want, result.Reason)
			}
		})
	}
}

func TestCanComplete_Reason(t *testing.T) {
	result := CanComplete(TransitionContext{RecordID: "MNT-007", Status: StatusCompleted})
	if result.Reason != "maintenance MNT-007 is already completed" {
		t.Errorf("Reason = %q", result.Reason)
	}
}

func TestInitialStatus(t *testing.T) {
	if InitialStatus(TypeQuarterly) != StatusScheduled {
		t.Error("planned types start scheduled")
	}
	if InitialStatus(TypeUnplanned) != StatusUnplanned {
		t.Error("unplanned type starts unplanned")
	}
}

func TestApplyCompletion(t *testing.T) {
	now := time.Date(2024, 6, 3, 16, 45, 0, 0, time.UTC)

	result := ApplyCompletion(now)

	if result.NewStatus != StatusCompleted {
		t.Errorf("NewStatus = %q", result.NewStatus)
	}
	if !result.CompletedDate.Equal(time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("CompletedDate = %v", result.CompletedDate)
	}
}

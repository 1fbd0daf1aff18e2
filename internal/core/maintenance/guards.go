package maintenance

import (
	"fmt"
	"time"

	"github.com/example/plantops/internal/core/remark"
)

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string
}

// Error converts the guard result to an error if not allowed.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%s", r.Reason)
}

// WriteContext provides context for create and edit guards.
type WriteContext struct {
	EquipmentID     string
	EquipmentExists bool
	Type            Type
	Status          Status
	Priority        remark.Priority
	ScheduledDate   time.Time
}

// CanWrite evaluates whether a record may be created or overwritten.
// Rules:
// - Equipment must exist
// - Type and priority must be known
// - Status must be storable (overdue is computed, never stored)
// - Scheduled date is required
func CanWrite(ctx WriteContext) GuardResult {
	if !ctx.EquipmentExists {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("equipment %s not found", ctx.EquipmentID),
		}
	}

	if !ValidType(ctx.Type) {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("unknown maintenance type %q", ctx.Type),
		}
	}

	if !remark.ValidPriority(ctx.Priority) {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("unknown priority %q", ctx.Priority),
		}
	}

	if ctx.Status == StatusOverdue {
		return GuardResult{
			Allowed: false,
			Reason:  "overdue is computed from the scheduled date and cannot be stored",
		}
	}

	if !Storable(ctx.Status) {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("unknown maintenance status %q", ctx.Status),
		}
	}

	if ctx.ScheduledDate.IsZero() {
		return GuardResult{
			Allowed: false,
			Reason:  "scheduled date is required",
		}
	}

	return GuardResult{Allowed: true}
}

// TransitionContext provides context for lifecycle transition guards.
type TransitionContext struct {
	RecordID string
	Status   Status
}

// CanStart evaluates whether work on a record can begin.
// Rules:
// - Status must be "scheduled"
func CanStart(ctx TransitionContext) GuardResult {
	if ctx.Status != StatusScheduled {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("can only start scheduled maintenance (record %s is %s)", ctx.RecordID, ctx.Status),
		}
	}

	return GuardResult{Allowed: true}
}

// CanPostpone evaluates whether a record can be postponed.
// Rules:
// - Status must be "scheduled"
func CanPostpone(ctx TransitionContext) GuardResult {
	if ctx.Status != StatusScheduled {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("can only postpone scheduled maintenance (record %s is %s)", ctx.RecordID, ctx.Status),
		}
	}

	return GuardResult{Allowed: true}
}

// CanComplete evaluates whether a record can be completed.
// Rules:
// - Record must not already be completed
func CanComplete(ctx TransitionContext) GuardResult {
	if ctx.Status == StatusCompleted {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("maintenance %s is already completed", ctx.RecordID),
		}
	}

	return GuardResult{Allowed: true}
}

// CanReschedule evaluates whether a record can be moved back to scheduled.
// Rules:
// - Completed records are only reopened through an explicit edit
func CanReschedule(ctx TransitionContext) GuardResult {
	if ctx.Status == StatusCompleted {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("cannot reschedule completed maintenance %s (edit the record to reopen it)", ctx.RecordID),
		}
	}

	return GuardResult{Allowed: true}
}

// InitialStatus returns the status a new record starts in.
func InitialStatus(t Type) Status {
	if t == TypeUnplanned {
		return StatusUnplanned
	}
	return StatusScheduled
}

// CompletionResult captures the effect of completing a record.
type CompletionResult struct {
	NewStatus     Status
	CompletedDate time.Time
}

// ApplyCompletion returns the completed status stamped with today's date.
// The caller passes the current time to enable testing.
func ApplyCompletion(now time.Time) CompletionResult {
	return CompletionResult{
		NewStatus:     StatusCompleted,
		CompletedDate: StartOfDay(now),
	}
}

package inspection

import (
	"fmt"

	"github.com/example/plantops/internal/core/checklist"
)

// SessionStatus is the inspection state of an equipment for a day.
type SessionStatus string

const (
	SessionNotStarted SessionStatus = "not_started"
	SessionInProgress SessionStatus = "in_progress"
	SessionCompleted  SessionStatus = "completed"
)

// DayContext is what is known about one equipment's inspection on a day.
type DayContext struct {
	HasRecord      bool
	RecordResults  []checklist.CheckStatus
	HasValidCache  bool
	PreviousStatus OperationalStatus // used when nothing was recorded today
}

// DayState is the derived status of one equipment for a day.
type DayState struct {
	Session     SessionStatus
	IssueCount  int
	Operational OperationalStatus
}

// DeriveDayState computes the daily status of an equipment.
// A recorded inspection wins over cached progress. Without a record the
// operational status falls back to the previous one, or working.
func DeriveDayState(ctx DayContext) DayState {
	if ctx.HasRecord {
		counts := CountStatuses(ctx.RecordResults)
		return DayState{
			Session:     SessionCompleted,
			IssueCount:  counts.TotalIssues(),
			Operational: DeriveOperational(counts),
		}
	}

	operational := ctx.PreviousStatus
	if operational == "" {
		operational = OperationalWorking
	}

	session := SessionNotStarted
	if ctx.HasValidCache {
		session = SessionInProgress
	}
	return DayState{Session: session, Operational: operational}
}

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

// CompleteContext provides context for inspection completion guards.
type CompleteContext struct {
	EquipmentID     string
	EquipmentExists bool
	Inspector       string
	Items           []checklist.Item
}

// CanComplete evaluates whether an inspection can be completed.
// Rules:
// - Equipment must exist in the directory
// - Inspector must be known
// - At least one item must be submitted
// - Every item must carry a known status
func CanComplete(ctx CompleteContext) GuardResult {
	if !ctx.EquipmentExists {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("equipment %s not found", ctx.EquipmentID),
		}
	}

	if ctx.Inspector == "" {
		return GuardResult{
			Allowed: false,
			Reason:  "inspector is required to complete an inspection",
		}
	}

	if len(ctx.Items) == 0 {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("inspection of %s has no items", ctx.EquipmentID),
		}
	}

	for _, item := range ctx.Items {
		if !item.Status.Valid() {
			return GuardResult{
				Allowed: false,
				Reason:  fmt.Sprintf("item %s has unknown status %q", item.ID, item.Status),
			}
		}
	}

	return GuardResult{Allowed: true}
}

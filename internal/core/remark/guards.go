// Package remark contains the pure business logic for remarks (issues raised
// from inspections, maintenance notes or by hand).
package remark

import (
	"fmt"
	"strings"
)

// Status is the lifecycle state of a remark.
type Status string

const (
	StatusOpen       Status = "open"
	StatusInProgress Status = "in_progress"
	StatusResolved   Status = "resolved"
)

// Source names what raised a remark.
type Source string

const (
	SourceInspection  Source = "inspection"
	SourceMaintenance Source = "maintenance"
	SourceManual      Source = "manual"
)

// Priority is shared by remarks and maintenance records.
type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// ValidStatus reports whether s is a known remark status.
func ValidStatus(s Status) bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusResolved:
		return true
	}
	return false
}

// ValidPriority reports whether p is a known priority.
func ValidPriority(p Priority) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
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

// TransitionContext provides context for status transition guards.
type TransitionContext struct {
	RemarkID      string
	CurrentStatus Status
	NewStatus     Status
}

// CanTransition evaluates whether a remark can move to a new status.
// Rules:
// - Target status must be known
// - Target status must differ from the current one
func CanTransition(ctx TransitionContext) GuardResult {
	if !ValidStatus(ctx.NewStatus) {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("unknown remark status %q (expected open, in_progress or resolved)", ctx.NewStatus),
		}
	}

	if ctx.CurrentStatus == ctx.NewStatus {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("remark %s is already %s", ctx.RemarkID, ctx.NewStatus),
		}
	}

	return GuardResult{Allowed: true}
}

// AddNoteContext provides context for note append guards.
type AddNoteContext struct {
	RemarkID string
	Note     string
}

// CanAddNote evaluates whether a note can be appended.
// Rules:
// - Note text must not be blank
func CanAddNote(ctx AddNoteContext) GuardResult {
	if strings.TrimSpace(ctx.Note) == "" {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("cannot add an empty note to remark %s", ctx.RemarkID),
		}
	}

	return GuardResult{Allowed: true}
}

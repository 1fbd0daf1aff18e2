// Package inspection contains the pure business logic for daily inspections:
// issue counting, operational status derivation and remark planning.
// This is part of the Functional Core - no I/O, only pure functions.
package inspection

import (
	"fmt"
	"strings"

	"github.com/example/plantops/internal/core/checklist"
	"github.com/example/plantops/internal/core/remark"
)

// OperationalStatus is the derived working state of an equipment.
type OperationalStatus string

const (
	OperationalWorking     OperationalStatus = "working"
	OperationalNotWorking  OperationalStatus = "not_working"
	OperationalMaintenance OperationalStatus = "maintenance"
)

// AttentionThreshold is the number of attention items an equipment tolerates
// before it is classified as needing maintenance.
const AttentionThreshold = 2

// GeneralNotesPrefix starts the comment line holding session-wide notes.
const GeneralNotesPrefix = "Общие замечания: "

// Counts holds issue counts of one inspection.
type Counts struct {
	Critical  int
	Attention int
}

// TotalIssues returns critical plus attention items.
func (c Counts) TotalIssues() int {
	return c.Critical + c.Attention
}

// CountStatuses counts issues in a list of check results.
func CountStatuses(results []checklist.CheckStatus) Counts {
	var c Counts
	for _, s := range results {
		switch s {
		case checklist.StatusCritical:
			c.Critical++
		case checklist.StatusAttention:
			c.Attention++
		}
	}
	return c
}

// CountItems counts issues in a list of session items.
func CountItems(items []checklist.Item) Counts {
	return CountStatuses(CheckResults(items))
}

// DeriveOperational classifies an equipment from its issue counts.
// Rules:
// - any critical item: not_working
// - more than AttentionThreshold attention items: maintenance
// - otherwise: working
func DeriveOperational(c Counts) OperationalStatus {
	if c.Critical > 0 {
		return OperationalNotWorking
	}
	if c.Attention > AttentionThreshold {
		return OperationalMaintenance
	}
	return OperationalWorking
}

// CheckResults returns the item statuses in checklist order.
func CheckResults(items []checklist.Item) []checklist.CheckStatus {
	results := make([]checklist.CheckStatus, len(items))
	for i, item := range items {
		results[i] = item.Status
	}
	return results
}

// BuildComments collects every non-empty item note and the general notes.
func BuildComments(items []checklist.Item, generalNotes string) []string {
	var comments []string
	for _, item := range items {
		notes := strings.TrimSpace(item.Notes)
		if notes == "" {
			continue
		}
		comments = append(comments, item.Text+": "+notes)
	}
	if general := strings.TrimSpace(generalNotes); general != "" {
		comments = append(comments, GeneralNotesPrefix+general)
	}
	return comments
}

// GeneralNotes extracts the session-wide notes from stored comments.
func GeneralNotes(comments []string) string {
	for _, c := range comments {
		if rest, ok := strings.CutPrefix(c, GeneralNotesPrefix); ok {
			return rest
		}
	}
	return ""
}

// RemarkDraft describes a remark to raise once the inspection is persisted.
type RemarkDraft struct {
	ItemID      string // empty for the general remark
	Title       string
	Description string
	Priority    remark.Priority
}

// PlanRemarks decides which remarks an inspection raises.
// Rules:
// - critical items always raise a critical remark
// - attention items raise a medium remark only when they carry notes
// - ok items never raise anything
// - non-empty general notes raise one extra remark
func PlanRemarks(equipmentName string, items []checklist.Item, generalNotes string) []RemarkDraft {
	var drafts []RemarkDraft
	for _, item := range items {
		notes := strings.TrimSpace(item.Notes)

		switch item.Status {
		case checklist.StatusCritical:
			drafts = append(drafts, RemarkDraft{
				ItemID:      item.ID,
				Title:       fmt.Sprintf("Critical: %s", item.Text),
				Description: describeItem(equipmentName, item, notes),
				Priority:    remark.PriorityCritical,
			})
		case checklist.StatusAttention:
			if notes == "" {
				continue
			}
			drafts = append(drafts, RemarkDraft{
				ItemID:      item.ID,
				Title:       fmt.Sprintf("Attention: %s", item.Text),
				Description: describeItem(equipmentName, item, notes),
				Priority:    remark.PriorityMedium,
			})
		}
	}

	if general := strings.TrimSpace(generalNotes); general != "" {
		drafts = append(drafts, RemarkDraft{
			Title:       fmt.Sprintf("Inspection remarks: %s", equipmentName),
			Description: general,
			Priority:    remark.PriorityLow,
		})
	}

	return drafts
}

func describeItem(equipmentName string, item checklist.Item, notes string) string {
	desc := fmt.Sprintf("[%s] %s: %s", equipmentName, item.Category, item.Text)
	if notes != "" {
		desc += "\n" + notes
	}
	return desc
}

// Package report computes read-side aggregates over inspections,
// maintenance and remarks. Everything is recomputed from its inputs on
// every call.
package report

import (
	"math"
	"time"

	"github.com/example/plantops/internal/core/inspection"
	"github.com/example/plantops/internal/core/maintenance"
	"github.com/example/plantops/internal/core/remark"
)

// CompletionPercent returns completed/total as a percentage rounded to one
// decimal. A non-positive total yields 0.
func CompletionPercent(completed, total int) float64 {
	if total <= 0 {
		return 0
	}
	p := float64(completed) * 100 / float64(total)
	return math.Round(p*10) / 10
}

// CountBy tallies occurrences of each key.
func CountBy[K comparable](keys []K) map[K]int {
	counts := make(map[K]int, len(keys))
	for _, k := range keys {
		counts[k]++
	}
	return counts
}

// Completion summarises how many equipment finished today's inspection.
type Completion struct {
	Completed  int     `json:"completed"`
	InProgress int     `json:"in_progress"`
	NotStarted int     `json:"not_started"`
	Total      int     `json:"total"`
	Percent    float64 `json:"percent"`
}

// InspectionCompletion aggregates per-equipment day states.
func InspectionCompletion(states []inspection.DayState) Completion {
	c := Completion{Total: len(states)}
	for _, s := range states {
		switch s.Session {
		case inspection.SessionCompleted:
			c.Completed++
		case inspection.SessionInProgress:
			c.InProgress++
		default:
			c.NotStarted++
		}
	}
	c.Percent = CompletionPercent(c.Completed, c.Total)
	return c
}

// OperationalMix counts equipment by derived operational status.
// Every status is present in the result.
func OperationalMix(states []inspection.DayState) map[inspection.OperationalStatus]int {
	mix := map[inspection.OperationalStatus]int{
		inspection.OperationalWorking:     0,
		inspection.OperationalNotWorking:  0,
		inspection.OperationalMaintenance: 0,
	}
	for _, s := range states {
		mix[s.Operational]++
	}
	return mix
}

// MaintenanceFact is the part of a maintenance record reports look at.
type MaintenanceFact struct {
	Type      maintenance.Type
	Status    maintenance.Status
	Scheduled time.Time
}

// MaintenanceStatusCounts counts records by display status at now.
// Every display status is present in the result.
func MaintenanceStatusCounts(facts []MaintenanceFact, now time.Time) map[maintenance.Status]int {
	counts := make(map[maintenance.Status]int, len(maintenance.DisplayStatuses))
	for _, s := range maintenance.DisplayStatuses {
		counts[s] = 0
	}
	for _, f := range facts {
		counts[maintenance.DisplayStatus(f.Status, f.Scheduled, now)]++
	}
	return counts
}

// TypeDistribution counts records by maintenance type.
// Every known type is present in the result.
func TypeDistribution(facts []MaintenanceFact) map[maintenance.Type]int {
	dist := make(map[maintenance.Type]int, len(maintenance.Types))
	for _, t := range maintenance.Types {
		dist[t] = 0
	}
	for _, f := range facts {
		dist[f.Type]++
	}
	return dist
}

// RemarkFact is the part of a remark reports look at.
type RemarkFact struct {
	Status   remark.Status
	Priority remark.Priority
}

// OpenRemarksByPriority counts unresolved remarks per priority.
func OpenRemarksByPriority(facts []RemarkFact) map[remark.Priority]int {
	counts := map[remark.Priority]int{
		remark.PriorityLow:      0,
		remark.PriorityMedium:   0,
		remark.PriorityHigh:     0,
		remark.PriorityCritical: 0,
	}
	for _, f := range facts {
		if f.Status == remark.StatusResolved {
			continue
		}
		counts[f.Priority]++
	}
	return counts
}

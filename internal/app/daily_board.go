package app

import (
	"context"
	"fmt"
	"time"

	"github.com/example/plantops/internal/core/checklist"
	"github.com/example/plantops/internal/core/inspection"
	"github.com/example/plantops/internal/core/progress"
	"github.com/example/plantops/internal/ports/secondary"
)

// boardRow is the derived inspection state of one equipment for a day.
type boardRow struct {
	equipment *secondary.EquipmentRecord
	record    *secondary.InspectionRecord // nil when nothing was recorded
	state     inspection.DayState
}

// dailyBoard derives per-equipment day states from the recorded inspections
// and the progress cache. It is shared by the inspection and report services.
type dailyBoard struct {
	equipment   secondary.EquipmentDirectory
	inspections secondary.InspectionRepository
	cache       secondary.ProgressCache
	window      time.Duration
	env         Env
}

func (b *dailyBoard) rows(ctx context.Context, day time.Time) ([]boardRow, error) {
	equipment, err := b.equipment.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list equipment: %w", err)
	}

	records, err := b.inspections.List(ctx, secondary.InspectionFilters{From: day, To: day})
	if err != nil {
		return nil, fmt.Errorf("failed to list inspections: %w", err)
	}
	recorded := make(map[string]*secondary.InspectionRecord, len(records))
	for _, r := range records {
		// newest first; keep the latest record of the day
		if _, ok := recorded[r.EquipmentID]; !ok {
			recorded[r.EquipmentID] = r
		}
	}

	entries, err := b.cache.ListDay(ctx, progress.DayKey(day))
	if err != nil {
		// an unreadable cache degrades to "not started"
		b.env.Logger.Warn(ctx, "progress cache unavailable", "day", progress.DayKey(day), "error", err)
		entries = nil
	}
	now := b.env.Now()
	inFlight := make(map[string]bool, len(entries))
	for _, e := range entries {
		if e.IsValid(now, b.window) {
			inFlight[e.EquipmentID] = true
		}
	}

	rows := make([]boardRow, len(equipment))
	for i, eq := range equipment {
		record := recorded[eq.ID]
		dc := inspection.DayContext{
			HasValidCache:  inFlight[eq.ID],
			PreviousStatus: previousStatus(eq.Status),
		}
		if record != nil {
			dc.HasRecord = true
			dc.RecordResults = toCheckStatuses(record.CheckResults)
		}
		rows[i] = boardRow{equipment: eq, record: record, state: inspection.DeriveDayState(dc)}
	}
	return rows, nil
}

func previousStatus(s string) inspection.OperationalStatus {
	switch status := inspection.OperationalStatus(s); status {
	case inspection.OperationalWorking, inspection.OperationalNotWorking, inspection.OperationalMaintenance:
		return status
	}
	return ""
}

func toCheckStatuses(raw []string) []checklist.CheckStatus {
	out := make([]checklist.CheckStatus, len(raw))
	for i, s := range raw {
		out[i] = checklist.CheckStatus(s)
	}
	return out
}

func fromCheckStatuses(statuses []checklist.CheckStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}

package calendar

import "github.com/example/plantops/internal/core/maintenance"

// Tone is a renderer-neutral emphasis level for an event.
type Tone string

const (
	ToneNeutral Tone = "neutral"
	ToneInfo    Tone = "info"
	ToneSuccess Tone = "success"
	ToneWarning Tone = "warning"
	ToneDanger  Tone = "danger"
)

// Source identifies which stream an event came from.
type Source string

const (
	SourceMaintenance Source = "maintenance"
	SourceTask        Source = "task"
)

// Style describes how a renderer should present an event.
type Style struct {
	Source Source `json:"source"`
	Marker string `json:"marker"`
	Tone   Tone   `json:"tone"`
}

// MaintenanceStyle styles a maintenance event by its display status.
func MaintenanceStyle(status maintenance.Status) Style {
	s := Style{Source: SourceMaintenance, Marker: "M"}
	switch status {
	case maintenance.StatusCompleted:
		s.Tone = ToneSuccess
	case maintenance.StatusInProgress:
		s.Tone = ToneInfo
	case maintenance.StatusOverdue:
		s.Tone = ToneDanger
	case maintenance.StatusPostponed, maintenance.StatusUnplanned:
		s.Tone = ToneWarning
	default:
		s.Tone = ToneNeutral
	}
	return s
}

// TaskStyle styles a task event by its priority.
func TaskStyle(priority string) Style {
	s := Style{Source: SourceTask, Marker: "T"}
	switch priority {
	case "critical", "high":
		s.Tone = ToneDanger
	case "medium":
		s.Tone = ToneWarning
	default:
		s.Tone = ToneInfo
	}
	return s
}

// CellStyle returns the strongest tone among a cell's events, used to
// colour the day number in compact views.
func CellStyle(cell DayCell) Tone {
	rank := map[Tone]int{ToneNeutral: 0, ToneInfo: 1, ToneSuccess: 2, ToneWarning: 3, ToneDanger: 4}
	best := ToneNeutral
	consider := func(t Tone) {
		if rank[t] > rank[best] {
			best = t
		}
	}
	for _, m := range cell.Maintenance {
		consider(MaintenanceStyle(m.Status).Tone)
	}
	for _, t := range cell.Tasks {
		consider(TaskStyle(t.Priority).Tone)
	}
	return best
}

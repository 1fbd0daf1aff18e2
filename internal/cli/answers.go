package cli

import (
	"fmt"
	"strings"

	"github.com/example/plantops/internal/core/checklist"
)

// applyAnswers sets item statuses from "<item-id>=<status>[:<notes>]"
// arguments. Answered items are marked checked. Items not mentioned keep
// their current answer.
func applyAnswers(items []checklist.Item, answers []string) ([]checklist.Item, error) {
	index := make(map[string]int, len(items))
	for i, item := range items {
		index[item.ID] = i
	}

	out := make([]checklist.Item, len(items))
	copy(out, items)
	for _, raw := range answers {
		id, rest, ok := strings.Cut(raw, "=")
		if !ok {
			return nil, fmt.Errorf("invalid answer %q, expected <item-id>=<status>[:notes]", raw)
		}
		i, known := index[strings.TrimSpace(id)]
		if !known {
			return nil, fmt.Errorf("unknown item %q", id)
		}
		status, notes, _ := strings.Cut(rest, ":")
		s := checklist.CheckStatus(strings.TrimSpace(status))
		if !s.Valid() {
			return nil, fmt.Errorf("invalid status %q for %s (expected ok, attention or critical)", status, id)
		}
		out[i].Status = s
		out[i].Checked = true
		if notes = strings.TrimSpace(notes); notes != "" {
			out[i].Notes = notes
		}
	}
	return out, nil
}

// answerAll sets every unchecked item to status.
func answerAll(items []checklist.Item, status checklist.CheckStatus) []checklist.Item {
	out := make([]checklist.Item, len(items))
	copy(out, items)
	for i := range out {
		if !out[i].Checked {
			out[i].Status = status
			out[i].Checked = true
		}
	}
	return out
}

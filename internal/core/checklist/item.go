// Package checklist contains the pure business logic for inspection checklists.
// This is part of the Functional Core - no I/O, only pure functions.
package checklist

import (
	"fmt"
	"strings"
)

// CheckStatus is the answer an inspector records for a single check item.
type CheckStatus string

const (
	StatusOK        CheckStatus = "ok"
	StatusAttention CheckStatus = "attention"
	StatusCritical  CheckStatus = "critical"
)

// Valid reports whether s is one of the known check statuses.
func (s CheckStatus) Valid() bool {
	switch s {
	case StatusOK, StatusAttention, StatusCritical:
		return true
	}
	return false
}

// Entry is a parsed "category: item" template line.
type Entry struct {
	Category string
	Text     string
}

// String formats the entry back into its template form.
func (e Entry) String() string {
	return e.Category + ": " + e.Text
}

// Item is one line of a live inspection session.
type Item struct {
	ID       string      `json:"id"`
	Category string      `json:"category"`
	Text     string      `json:"item"`
	Checked  bool        `json:"checked"`
	Status   CheckStatus `json:"status"`
	Notes    string      `json:"notes,omitempty"`
}

// Key identifies an item independently of its position in the list.
func (i Item) Key() Entry {
	return Entry{Category: i.Category, Text: i.Text}
}

// ParseEntry splits a template line on its first colon.
// Returns false when either side is empty after trimming.
func ParseEntry(raw string) (Entry, bool) {
	category, text, found := strings.Cut(raw, ":")
	if !found {
		return Entry{}, false
	}
	category = strings.TrimSpace(category)
	text = strings.TrimSpace(text)
	if category == "" || text == "" {
		return Entry{}, false
	}
	return Entry{Category: category, Text: text}, true
}

// ParseTemplate parses template lines in order, silently dropping malformed ones.
func ParseTemplate(lines []string) []Entry {
	entries := make([]Entry, 0, len(lines))
	for _, line := range lines {
		if e, ok := ParseEntry(line); ok {
			entries = append(entries, e)
		}
	}
	return entries
}

// ItemID returns the synthetic id of the index-th item of an equipment checklist.
func ItemID(equipmentID string, index int) string {
	return fmt.Sprintf("%s-%d", equipmentID, index)
}

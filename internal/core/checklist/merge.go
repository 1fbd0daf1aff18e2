package checklist

// Baseline builds a fresh, unanswered item list for an equipment.
func Baseline(equipmentID string, entries []Entry) []Item {
	items := make([]Item, len(entries))
	for i, e := range entries {
		items[i] = Item{
			ID:       ItemID(equipmentID, i),
			Category: e.Category,
			Text:     e.Text,
			Status:   StatusOK,
		}
	}
	return items
}

// MergeProgress copies cached answers onto the baseline.
// The baseline decides which items exist; cached items are matched by
// (category, item) and anything without a match is dropped.
func MergeProgress(baseline, cached []Item) []Item {
	answers := make(map[Entry]Item, len(cached))
	for _, c := range cached {
		answers[c.Key()] = c
	}

	merged := make([]Item, len(baseline))
	for i, b := range baseline {
		merged[i] = b
		if c, ok := answers[b.Key()]; ok {
			merged[i].Checked = c.Checked
			merged[i].Notes = c.Notes
			if c.Status.Valid() {
				merged[i].Status = c.Status
			}
		}
	}
	return merged
}

// Resolve produces the live item set for a session.
// Template lines are used when at least one parses; otherwise the default
// checklist applies. Cached progress, when given, is merged on top.
func Resolve(equipmentID string, templateLines []string, defaultSize int, cached []Item) []Item {
	entries := ParseTemplate(templateLines)
	if len(entries) == 0 {
		entries = DefaultEntries(defaultSize)
	}
	baseline := Baseline(equipmentID, entries)
	if cached == nil {
		return baseline
	}
	return MergeProgress(baseline, cached)
}

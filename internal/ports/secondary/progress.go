package secondary

import (
	"context"

	"github.com/example/plantops/internal/core/progress"
)

// ProgressCache is the day-scoped store of in-flight inspection answers.
// Entries are addressed by (equipment ID, day key).
type ProgressCache interface {
	// Get returns the saved entry, or nil when there is none.
	// Callers decide validity with Entry.IsValid.
	Get(ctx context.Context, equipmentID, day string) (*progress.Entry, error)

	// Set overwrites the entry for the entry's equipment and day.
	Set(ctx context.Context, entry progress.Entry) error

	// Delete removes the entry. Deleting a missing entry is not an error.
	Delete(ctx context.Context, equipmentID, day string) error

	// ListDay returns every entry saved for a day.
	ListDay(ctx context.Context, day string) ([]progress.Entry, error)
}

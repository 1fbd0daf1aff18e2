package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/example/plantops/internal/ctxutil"
	"github.com/example/plantops/internal/logging"
	"github.com/example/plantops/internal/ports/secondary"
)

// Env carries the ambient collaborators every service needs.
type Env struct {
	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time

	// Location is the site's zone; calendar days are computed in it.
	Location *time.Location

	// Logger receives service logs. Defaults to a no-op logger.
	Logger logging.Logger

	// Changes receives change events. Defaults to a publisher that drops them.
	Changes secondary.ChangePublisher
}

type discardPublisher struct{}

func (discardPublisher) Publish(context.Context, secondary.ChangeEvent) {}

func (e Env) withDefaults() Env {
	if e.Now == nil {
		e.Now = time.Now
	}
	if e.Location == nil {
		e.Location = time.Local
	}
	if e.Logger == nil {
		e.Logger = logging.Nop()
	}
	if e.Changes == nil {
		e.Changes = discardPublisher{}
	}
	return e
}

// now returns the current time in the site's zone.
func (e Env) now() time.Time {
	return e.Now().In(e.Location)
}

// day returns midnight of t in the site's zone, or of today when t is zero.
func (e Env) day(t time.Time) time.Time {
	if t.IsZero() {
		t = e.Now()
	}
	t = t.In(e.Location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, e.Location)
}

func (e Env) publish(ctx context.Context, topic secondary.Topic, action, entityID, equipmentID string, attrs map[string]string) {
	e.Changes.Publish(ctx, secondary.ChangeEvent{
		Topic:       topic,
		Action:      action,
		EntityID:    entityID,
		EquipmentID: equipmentID,
		Actor:       ctxutil.ActorFromContext(ctx),
		At:          e.Now(),
		Attrs:       attrs,
	})
}

// lookupEquipment returns the equipment, or nil when the directory has no
// such id.
func lookupEquipment(ctx context.Context, dir secondary.EquipmentDirectory, id string) (*secondary.EquipmentRecord, error) {
	eq, err := dir.GetByID(ctx, id)
	if errors.Is(err, secondary.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up equipment: %w", err)
	}
	return eq, nil
}

func formatDay(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

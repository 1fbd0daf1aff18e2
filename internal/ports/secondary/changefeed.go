package secondary

import (
	"context"
	"time"
)

// Topic groups change events by the kind of data that changed.
type Topic string

const (
	TopicChecklist   Topic = "checklist"
	TopicInspection  Topic = "inspection"
	TopicMaintenance Topic = "maintenance"
	TopicRemark      Topic = "remark"
)

// Change actions.
const (
	ActionCreated   = "created"
	ActionUpdated   = "updated"
	ActionDeleted   = "deleted"
	ActionCompleted = "completed"
	ActionReplaced  = "replaced"
	ActionSaved     = "saved"
	ActionDiscarded = "discarded"
)

// ChangeEvent describes one change to the backing store.
type ChangeEvent struct {
	Topic       Topic
	Action      string
	EntityID    string
	EquipmentID string
	Actor       string
	At          time.Time
	Attrs       map[string]string
}

// ChangePublisher is the port services publish changes through.
type ChangePublisher interface {
	Publish(ctx context.Context, event ChangeEvent)
}

// ChangeHandler receives published events.
type ChangeHandler func(ctx context.Context, event ChangeEvent)

// ChangeFeed lets independent views observe changes.
type ChangeFeed interface {
	ChangePublisher

	// Subscribe registers handler for the given topics, or for every topic
	// when none are given. The returned func removes the subscription.
	Subscribe(handler ChangeHandler, topics ...Topic) (unsubscribe func())
}

package changefeed

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/plantops/internal/ctxutil"
	"github.com/example/plantops/internal/ports/secondary"
)

func TestFeed_DeliversByTopic(t *testing.T) {
	feed := New()
	ctx := context.Background()

	var all, maintenanceOnly []secondary.Topic
	feed.Subscribe(func(_ context.Context, e secondary.ChangeEvent) {
		all = append(all, e.Topic)
	})
	feed.Subscribe(func(_ context.Context, e secondary.ChangeEvent) {
		maintenanceOnly = append(maintenanceOnly, e.Topic)
	}, secondary.TopicMaintenance)

	feed.Publish(ctx, secondary.ChangeEvent{Topic: secondary.TopicInspection, Action: secondary.ActionCompleted})
	feed.Publish(ctx, secondary.ChangeEvent{Topic: secondary.TopicMaintenance, Action: secondary.ActionCreated})

	assert.Equal(t, []secondary.Topic{secondary.TopicInspection, secondary.TopicMaintenance}, all)
	assert.Equal(t, []secondary.Topic{secondary.TopicMaintenance}, maintenanceOnly)
}

func TestFeed_SubscriptionOrder(t *testing.T) {
	feed := New()

	var order []int
	for i := 1; i <= 3; i++ {
		feed.Subscribe(func(context.Context, secondary.ChangeEvent) {
			order = append(order, i)
		})
	}

	feed.Publish(context.Background(), secondary.ChangeEvent{Topic: secondary.TopicRemark})

	assert.Equal(t, []int{1, 2, 3}, order)
}

func TestFeed_Unsubscribe(t *testing.T) {
	feed := New()

	calls := 0
	unsubscribe := feed.Subscribe(func(context.Context, secondary.ChangeEvent) { calls++ })
	require.Equal(t, 1, feed.SubscriberCount())

	unsubscribe()
	unsubscribe()
	feed.Publish(context.Background(), secondary.ChangeEvent{Topic: secondary.TopicRemark})

	assert.Equal(t, 0, calls)
	assert.Equal(t, 0, feed.SubscriberCount())
}

func TestFeed_StampsTimeAndActor(t *testing.T) {
	now := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)
	feed := New(WithClock(func() time.Time { return now }))

	var got secondary.ChangeEvent
	feed.Subscribe(func(_ context.Context, e secondary.ChangeEvent) { got = e })

	ctx := ctxutil.WithActorID(context.Background(), "petrova")
	feed.Publish(ctx, secondary.ChangeEvent{Topic: secondary.TopicChecklist})

	assert.Equal(t, now, got.At)
	assert.Equal(t, "petrova", got.Actor)
}

func TestFeed_PanickingHandlerDoesNotStopOthers(t *testing.T) {
	feed := New()

	delivered := false
	feed.Subscribe(func(context.Context, secondary.ChangeEvent) { panic("boom") })
	feed.Subscribe(func(context.Context, secondary.ChangeEvent) { delivered = true })

	assert.NotPanics(t, func() {
		feed.Publish(context.Background(), secondary.ChangeEvent{Topic: secondary.TopicInspection})
	})
	assert.True(t, delivered)
}

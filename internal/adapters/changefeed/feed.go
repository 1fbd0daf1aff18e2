// Package changefeed is the in-process implementation of secondary.ChangeFeed.
// Handlers run synchronously on the publishing goroutine, in subscription order.
package changefeed

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/example/plantops/internal/ctxutil"
	"github.com/example/plantops/internal/logging"
	"github.com/example/plantops/internal/ports/secondary"
)

type subscription struct {
	id      string
	handler secondary.ChangeHandler
	topics  map[secondary.Topic]bool // nil = every topic
}

func (s *subscription) wants(topic secondary.Topic) bool {
	return s.topics == nil || s.topics[topic]
}

// Feed broadcasts change events to subscribers.
// Feed is safe for concurrent use.
type Feed struct {
	mu     sync.RWMutex
	subs   []*subscription
	now    func() time.Time
	logger logging.Logger
}

var _ secondary.ChangeFeed = (*Feed)(nil)

// Option configures a Feed.
type Option func(*Feed)

// WithClock sets the clock used to stamp events published without a time.
func WithClock(now func() time.Time) Option {
	return func(f *Feed) {
		f.now = now
	}
}

// WithLogger sets the logger that records handler panics.
func WithLogger(logger logging.Logger) Option {
	return func(f *Feed) {
		f.logger = logger
	}
}

// New creates an empty feed.
func New(opts ...Option) *Feed {
	f := &Feed{now: time.Now, logger: logging.Nop()}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Subscribe registers handler for topics, or for every topic when none are given.
func (f *Feed) Subscribe(handler secondary.ChangeHandler, topics ...secondary.Topic) func() {
	sub := &subscription{id: uuid.NewString(), handler: handler}
	if len(topics) > 0 {
		sub.topics = make(map[secondary.Topic]bool, len(topics))
		for _, t := range topics {
			sub.topics[t] = true
		}
	}

	f.mu.Lock()
	f.subs = append(f.subs, sub)
	f.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { f.remove(sub.id) })
	}
}

func (f *Feed) remove(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i, s := range f.subs {
		if s.id == id {
			f.subs = append(f.subs[:i:i], f.subs[i+1:]...)
			return
		}
	}
}

// Publish delivers event to every matching subscriber. A missing
// timestamp or actor is filled from the clock and the context.
func (f *Feed) Publish(ctx context.Context, event secondary.ChangeEvent) {
	if event.At.IsZero() {
		event.At = f.now()
	}
	if event.Actor == "" {
		event.Actor = ctxutil.ActorFromContext(ctx)
	}

	f.mu.RLock()
	subs := make([]*subscription, 0, len(f.subs))
	for _, s := range f.subs {
		if s.wants(event.Topic) {
			subs = append(subs, s)
		}
	}
	f.mu.RUnlock()

	for _, s := range subs {
		f.invoke(ctx, s, event)
	}
}

// SubscriberCount returns the number of live subscriptions.
func (f *Feed) SubscriberCount() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.subs)
}

func (f *Feed) invoke(ctx context.Context, s *subscription, event secondary.ChangeEvent) {
	defer func() {
		if r := recover(); r != nil {
			f.logger.Error(ctx, "change handler panicked",
				"topic", string(event.Topic),
				"action", event.Action,
				"entity_id", event.EntityID,
				"panic", r,
			)
		}
	}()
	s.handler(ctx, event)
}

package stream

import (
	"context"
	"sync"
	"time"

	"bakehouse/internal/models"

	"github.com/google/uuid"
)

// Subscriber is one live consumer of the kitchen feed.
type Subscriber struct {
	id        string
	ch        chan models.KitchenEvent
	heartbeat time.Duration

	done      chan struct{}
	closeOnce sync.Once
}

func newSubscriber(id string, bufferSize int, heartbeat time.Duration) *Subscriber {
	return &Subscriber{
		id:        id,
		ch:        make(chan models.KitchenEvent, bufferSize),
		heartbeat: heartbeat,
		done:      make(chan struct{}),
	}
}

// ID returns the subscriber identifier.
func (s *Subscriber) ID() string { return s.id }

// Next blocks until an event arrives, the idle window elapses (then a
// synthetic heartbeat is returned), or the subscriber is torn down.
// The second return is false once the subscriber or ctx is done.
func (s *Subscriber) Next(ctx context.Context) (models.KitchenEvent, bool) {
	timer := time.NewTimer(s.heartbeat)
	defer timer.Stop()

	select {
	case ev := <-s.ch:
		return ev, true
	case <-timer.C:
		return Heartbeat(), true
	case <-s.done:
		return models.KitchenEvent{}, false
	case <-ctx.Done():
		return models.KitchenEvent{}, false
	}
}

// send delivers without blocking. False when closed or the buffer is full.
func (s *Subscriber) send(ev models.KitchenEvent) bool {
	if s.isClosed() {
		return false
	}
	select {
	case s.ch <- ev:
		return true
	default:
		return false
	}
}

func (s *Subscriber) isClosed() bool {
	select {
	case <-s.done:
		return true
	default:
		return false
	}
}

// Close tears the subscriber down. Safe to call multiple times; the event
// channel is never closed, so a racing send can only drop.
func (s *Subscriber) Close() {
	s.closeOnce.Do(func() { close(s.done) })
}

// Heartbeat returns a synthetic keepalive event.
func Heartbeat() models.KitchenEvent {
	return models.KitchenEvent{
		EventID:    uuid.NewString(),
		Kind:       models.EventHeartbeat,
		OccurredAt: time.Now().UTC(),
	}
}

// Package stream fans kitchen events out to live consumers. Delivery is
// best-effort: a subscriber that cannot keep up loses events instead of
// slowing the kitchen down; the bounded history covers the past.
package stream

import (
	"sync"
	"sync/atomic"
	"time"

	"bakehouse/internal/models"

	"github.com/google/uuid"
)

// DefaultBufferSize is the per-subscriber event buffer.
const DefaultBufferSize = 64

// DefaultHeartbeat is the idle window after which Next synthesizes a
// heartbeat event to keep quiet connections alive.
const DefaultHeartbeat = 30 * time.Second

// Broker fans published events out to all live subscribers.
type Broker struct {
	subscribers sync.Map // subscriber id → *Subscriber

	bufferSize int
	heartbeat  time.Duration

	totalPublished atomic.Int64
	totalDropped   atomic.Int64
}

// BrokerOption configures a Broker.
type BrokerOption func(*Broker)

// WithBufferSize sets the per-subscriber event buffer size.
func WithBufferSize(n int) BrokerOption {
	return func(b *Broker) {
		if n > 0 {
			b.bufferSize = n
		}
	}
}

// WithHeartbeat sets the idle window before synthetic heartbeats.
func WithHeartbeat(d time.Duration) BrokerOption {
	return func(b *Broker) {
		if d > 0 {
			b.heartbeat = d
		}
	}
}

// NewBroker creates a broker with no subscribers.
func NewBroker(opts ...BrokerOption) *Broker {
	b := &Broker{
		bufferSize: DefaultBufferSize,
		heartbeat:  DefaultHeartbeat,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Subscribe registers a new live consumer and returns its handle.
func (b *Broker) Subscribe() *Subscriber {
	sub := newSubscriber(uuid.NewString(), b.bufferSize, b.heartbeat)
	b.subscribers.Store(sub.id, sub)
	return sub
}

// Remove detaches and closes a subscriber. Safe for unknown ids.
func (b *Broker) Remove(id string) {
	if v, ok := b.subscribers.LoadAndDelete(id); ok {
		v.(*Subscriber).Close()
	}
}

// Publish delivers the event to every subscriber without ever blocking.
func (b *Broker) Publish(ev models.KitchenEvent) {
	b.totalPublished.Add(1)
	b.subscribers.Range(func(_, v any) bool {
		if !v.(*Subscriber).send(ev) {
			b.totalDropped.Add(1)
		}
		return true
	})
}

// Close detaches every subscriber. Used on server shutdown.
func (b *Broker) Close() {
	b.subscribers.Range(func(k, v any) bool {
		v.(*Subscriber).Close()
		b.subscribers.Delete(k)
		return true
	})
}

// Stats contains broker counters.
type Stats struct {
	Subscribers    int   `json:"subscribers"`
	TotalPublished int64 `json:"total_published"`
	TotalDropped   int64 `json:"total_dropped"`
}

// Stats returns a snapshot of the broker counters.
func (b *Broker) Stats() Stats {
	count := 0
	b.subscribers.Range(func(_, _ any) bool {
		count++
		return true
	})
	return Stats{
		Subscribers:    count,
		TotalPublished: b.totalPublished.Load(),
		TotalDropped:   b.totalDropped.Load(),
	}
}

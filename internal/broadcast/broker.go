// Package broadcast implements the per-office publish/subscribe fan-out for
// lifecycle events. The broker is constructed once by the composition root
// and shut down with the process; there is no package-level registry.
package broadcast

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/Mohamed-Rirash/appointment-app-sub001/internal/api/metrics"
	"github.com/Mohamed-Rirash/appointment-app-sub001/internal/core/domain"
)

const defaultBuffer = 16

// Subscription is one listener's handle on an office's event stream. The
// caller consumes Events until it is closed by Close or broker shutdown.
// A subscriber that disconnects without calling Close leaks its entry, so
// transport code must defer Close.
type Subscription struct {
	officeID string
	events   chan domain.LifecycleEvent
	broker   *Broker
	once     sync.Once
}

// Events returns the channel lifecycle events are delivered on.
func (s *Subscription) Events() <-chan domain.LifecycleEvent {
	return s.events
}

// Close unsubscribes and releases the channel. Safe to call more than once.
func (s *Subscription) Close() {
	s.broker.Unsubscribe(s)
}

// Broker fans lifecycle events out to the subscribers of each office.
// Delivery is best-effort: there is no durable queue and no replay, and a
// slow subscriber never blocks a publisher — when a subscriber's buffer is
// full the oldest buffered event is dropped to make room.
type Broker struct {
	mu      sync.RWMutex
	offices map[string]map[*Subscription]struct{}
	buffer  int
	closed  bool
	log     zerolog.Logger
}

// NewBroker creates a Broker with the given per-subscriber buffer size.
// If bufferSize <= 0, defaultBuffer is used.
func NewBroker(bufferSize int, log zerolog.Logger) *Broker {
	if bufferSize <= 0 {
		bufferSize = defaultBuffer
	}
	return &Broker{
		offices: make(map[string]map[*Subscription]struct{}),
		buffer:  bufferSize,
		log:     log,
	}
}

// Subscribe registers a new listener for the office. On a closed broker the
// returned subscription's channel is already closed.
func (b *Broker) Subscribe(officeID string) *Subscription {
	sub := &Subscription{
		officeID: officeID,
		events:   make(chan domain.LifecycleEvent, b.buffer),
		broker:   b,
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		sub.once.Do(func() { close(sub.events) })
		return sub
	}

	subs, ok := b.offices[officeID]
	if !ok {
		subs = make(map[*Subscription]struct{})
		b.offices[officeID] = subs
	}
	subs[sub] = struct{}{}
	metrics.BroadcastSubscribers.WithLabelValues(officeID).Inc()

	return sub
}

// Unsubscribe removes the subscription and closes its channel. Unknown or
// already-removed subscriptions are ignored. The channel is closed outside
// the lock: acquiring the write lock first guarantees no publisher still
// holds a reference to the subscription.
func (b *Broker) Unsubscribe(sub *Subscription) {
	b.mu.Lock()
	if subs, ok := b.offices[sub.officeID]; ok {
		if _, registered := subs[sub]; registered {
			delete(subs, sub)
			if len(subs) == 0 {
				delete(b.offices, sub.officeID)
			}
			metrics.BroadcastSubscribers.WithLabelValues(sub.officeID).Dec()
		}
	}
	b.mu.Unlock()

	sub.once.Do(func() { close(sub.events) })
}

// Publish fans the event out to every subscriber currently registered for
// the office. The call never blocks: a full subscriber buffer drops its
// oldest event first.
func (b *Broker) Publish(officeID string, event domain.LifecycleEvent) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return
	}

	subs := b.offices[officeID]
	if len(subs) == 0 {
		return
	}

	for sub := range subs {
		select {
		case sub.events <- event:
		default:
			// Buffer full: drop the oldest event, then retry once. If a
			// concurrent reader won the race for the slot, the event is
			// dropped instead of blocking.
			select {
			case <-sub.events:
				metrics.BroadcastDroppedTotal.Inc()
			default:
			}
			select {
			case sub.events <- event:
			default:
				metrics.BroadcastDroppedTotal.Inc()
			}
		}
	}

	metrics.BroadcastEventsTotal.WithLabelValues(event.Type).Inc()
	b.log.Debug().
		Str("office_id", officeID).
		Str("type", event.Type).
		Str("appointment_id", event.AppointmentID).
		Int("subscribers", len(subs)).
		Msg("lifecycle event published")
}

// Close shuts the broker down: all subscriptions are removed and their
// channels closed. Subsequent Publish calls are no-ops.
func (b *Broker) Close() {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.closed = true
	remaining := b.offices
	b.offices = make(map[string]map[*Subscription]struct{})
	b.mu.Unlock()

	for officeID, subs := range remaining {
		for sub := range subs {
			sub.once.Do(func() { close(sub.events) })
			metrics.BroadcastSubscribers.WithLabelValues(officeID).Dec()
		}
	}
}

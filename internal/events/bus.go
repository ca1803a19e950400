// Package events carries the cross-cutting auth signals between the HTTP
// layer and the global fault handler. The bus replaces ad-hoc global events
// with typed payloads and an explicit subscriber lifecycle.
package events

import "sync"

type SignalType string

const (
	SignalUnauthorized SignalType = "unauthorized"
	SignalForbidden    SignalType = "forbidden"
	SignalError        SignalType = "error"
)

// Signal is the payload delivered to subscribers. Message may be empty; each
// consumer decides its default per signal type. SessionID identifies the
// session whose upstream call raised the signal.
type Signal struct {
	Type      SignalType
	SessionID string
	Message   string
}

type subscriber struct {
	id int
	fn func(Signal)
}

// Bus is a synchronous in-process signal bus. Publish delivers to every
// subscriber in subscription order on the caller's goroutine, which keeps
// fault handling deterministic under concurrent publishers.
type Bus struct {
	mu     sync.Mutex
	subs   []subscriber
	nextID int
}

func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers fn and returns its unsubscribe function.
func (b *Bus) Subscribe(fn func(Signal)) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.subs = append(b.subs, subscriber{id: id, fn: fn})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		for i, s := range b.subs {
			if s.id == id {
				b.subs = append(b.subs[:i], b.subs[i+1:]...)
				return
			}
		}
	}
}

// Publish delivers the signal to all current subscribers.
func (b *Bus) Publish(sig Signal) {
	b.mu.Lock()
	subs := make([]subscriber, len(b.subs))
	copy(subs, b.subs)
	b.mu.Unlock()

	for _, s := range subs {
		s.fn(sig)
	}
}

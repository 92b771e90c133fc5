// Package signal provides the navigation broadcast channel.
//
// A Bus carries no payload. Subscribers are told only that a navigation
// happened and must read the current location themselves, so several
// broadcasts in the same turn never hand out stale state.
package signal

import (
	"sync"

	"go.uber.org/atomic"
)

// Handler is invoked once per broadcast.
type Handler func()

type subscription struct {
	id      uint64
	handler Handler
	active  atomic.Bool
}

// Bus is an injectable navigation signal. Handlers run synchronously,
// in subscription order, on the goroutine that calls Broadcast.
type Bus struct {
	mu   sync.Mutex
	subs []*subscription

	nextID     atomic.Uint64
	broadcasts atomic.Int64
}

// New creates an empty Bus.
func New() *Bus {
	return &Bus{}
}

// Subscribe registers handler and returns the function that removes it.
// The returned function may be called any number of times, including
// from inside a handler during a broadcast.
func (b *Bus) Subscribe(handler Handler) (unsubscribe func()) {
	sub := &subscription{
		id:      b.nextID.Inc(),
		handler: handler,
	}
	sub.active.Store(true)

	b.mu.Lock()
	b.subs = append(b.subs, sub)
	b.mu.Unlock()

	return func() { b.remove(sub) }
}

func (b *Bus) remove(sub *subscription) {
	if !sub.active.CompareAndSwap(true, false) {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	for i, s := range b.subs {
		if s.id == sub.id {
			// Copy so an in-flight broadcast keeps iterating its own snapshot.
			next := make([]*subscription, 0, len(b.subs)-1)
			next = append(next, b.subs[:i]...)
			b.subs = append(next, b.subs[i+1:]...)
			return
		}
	}
}

// Broadcast invokes every current subscriber and returns once all of them
// have run. Handlers removed earlier in the same broadcast are skipped;
// handlers added during it wait for the next one.
func (b *Bus) Broadcast() {
	b.broadcasts.Inc()

	b.mu.Lock()
	snapshot := b.subs
	b.mu.Unlock()

	for _, sub := range snapshot {
		if sub.active.Load() {
			sub.handler()
		}
	}
}

// Len returns the number of live subscriptions.
func (b *Bus) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}

// Broadcasts returns how many times Broadcast has been called.
func (b *Bus) Broadcasts() int64 {
	return b.broadcasts.Load()
}

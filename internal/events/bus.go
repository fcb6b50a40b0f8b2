package events

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// SaleCreated is published after a checkout commits. Consumers re-run
// whatever derived state depends on sales.
type SaleCreated struct {
	SaleID      uuid.UUID
	CustomerID  *uuid.UUID
	TotalAmount int64 // centavos
	CreatedAt   time.Time
}

// Bus is a minimal in-process publish/subscribe feed for sale events. It
// exists so the checkout flow and the analytics layer stay decoupled without
// a shared mutable queue: publishers only know the bus, subscribers each get
// their own ordered channel.
type Bus struct {
	mu     sync.RWMutex
	subs   []chan SaleCreated
	closed bool
}

// NewBus creates an event bus with no subscribers
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers a new subscriber and returns its event channel. Events
// arrive in publish order. The channel is closed when the bus closes.
func (b *Bus) Subscribe(buffer int) <-chan SaleCreated {
	if buffer < 1 {
		buffer = 1
	}
	ch := make(chan SaleCreated, buffer)

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		close(ch)
		return ch
	}
	b.subs = append(b.subs, ch)
	return ch
}

// Publish delivers the event to every subscriber without blocking the
// publisher. When a subscriber's buffer is full the oldest queued event is
// dropped in its favor; subscribers recompute from full state, so only the
// latest notification has to get through.
func (b *Bus) Publish(ev SaleCreated) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return
	}

	for _, ch := range b.subs {
		select {
		case ch <- ev:
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- ev:
			default:
			}
		}
	}
}

// Close shuts the bus down and closes all subscriber channels. Publishing
// after Close is a no-op.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for _, ch := range b.subs {
		close(ch)
	}
	b.subs = nil
}

package events

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusDeliversInPublishOrder(t *testing.T) {
	bus := NewBus()
	defer bus.Close()

	ch := bus.Subscribe(8)

	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	for _, id := range ids {
		bus.Publish(SaleCreated{SaleID: id, CreatedAt: time.Now()})
	}

	for _, want := range ids {
		select {
		case got := <-ch:
			assert.Equal(t, want, got.SaleID)
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for event")
		}
	}
}

func TestBusMultipleSubscribers(t *testing.T) {
	bus := NewBus()
	defer bus.Close()

	a := bus.Subscribe(1)
	b := bus.Subscribe(1)

	ev := SaleCreated{SaleID: uuid.New()}
	bus.Publish(ev)

	assert.Equal(t, ev.SaleID, (<-a).SaleID)
	assert.Equal(t, ev.SaleID, (<-b).SaleID)
}

func TestBusDropsOldestWhenSubscriberLags(t *testing.T) {
	bus := NewBus()
	defer bus.Close()

	ch := bus.Subscribe(1)

	first := SaleCreated{SaleID: uuid.New()}
	second := SaleCreated{SaleID: uuid.New()}
	bus.Publish(first)
	bus.Publish(second)

	// The newest event must survive; the stale one may be dropped.
	got := <-ch
	assert.Equal(t, second.SaleID, got.SaleID)
}

func TestBusCloseClosesSubscribers(t *testing.T) {
	bus := NewBus()
	ch := bus.Subscribe(1)

	bus.Close()
	bus.Publish(SaleCreated{SaleID: uuid.New()}) // no-op after close

	_, open := <-ch
	require.False(t, open)
}

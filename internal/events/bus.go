// Package events carries orders-changed notifications from mutation
// operations to subscribed views, replacing the ambient window-event
// broadcast of the previous implementation with an explicit channel fan-out.
package events

import "sync"

type ChangeType string

const (
	ChangeCreated  ChangeType = "created"
	ChangeUpdated  ChangeType = "updated"
	ChangeDeleted  ChangeType = "deleted"
	ChangeRestored ChangeType = "restored"
)

type ChangeEvent struct {
	Type    ChangeType
	OrderID string
}

// Bus is a same-process broadcast of order mutations. Publish never blocks:
// a subscriber that is not draining its channel misses events rather than
// stalling the mutation path.
type Bus struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]chan ChangeEvent
}

func NewBus() *Bus {
	return &Bus{subs: make(map[int]chan ChangeEvent)}
}

func (b *Bus) Publish(t ChangeType, orderID string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, ch := range b.subs {
		select {
		case ch <- ChangeEvent{Type: t, OrderID: orderID}:
		default:
		}
	}
}

// Subscribe registers a listener. The returned cancel func must be called to
// release the subscription; the channel is closed afterwards.
func (b *Bus) Subscribe() (<-chan ChangeEvent, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := b.nextID
	b.nextID++
	ch := make(chan ChangeEvent, 16)
	b.subs[id] = ch

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if sub, ok := b.subs[id]; ok {
			delete(b.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}

// Package events is the in-process publish/subscribe channel behind the live
// update stream. Subscriptions are explicit and tied to the subscriber's
// lifetime; there is no ambient callback registry.
package events

import "sync"

type Action string

const (
	ActionAdd    Action = "add"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Event describes one entity mutation, addressed to the owning user.
type Event struct {
	Action Action `json:"action"`
	Entity string `json:"entity"`
	ID     string `json:"id"`
	UserID string `json:"-"`
}

const subscriberBuffer = 16

type Bus struct {
	mu          sync.RWMutex
	subscribers map[string]map[chan Event]bool
}

func NewBus() *Bus {
	return &Bus{
		subscribers: make(map[string]map[chan Event]bool),
	}
}

// Default is the process-wide bus the handlers publish to.
var Default = NewBus()

// Subscribe registers a channel for one user's events and returns it with an
// unsubscribe func. Calling unsubscribe closes the channel; it is safe to
// call more than once.
func (b *Bus) Subscribe(userID string) (<-chan Event, func()) {
	ch := make(chan Event, subscriberBuffer)

	b.mu.Lock()
	if b.subscribers[userID] == nil {
		b.subscribers[userID] = make(map[chan Event]bool)
	}
	b.subscribers[userID][ch] = true
	b.mu.Unlock()

	var once sync.Once

	unsubscribe := func() {
		once.Do(func() {
			b.mu.Lock()
			if subs, exists := b.subscribers[userID]; exists {
				delete(subs, ch)
				if len(subs) == 0 {
					delete(b.subscribers, userID)
				}
			}
			b.mu.Unlock()
			close(ch)
		})
	}

	return ch, unsubscribe
}

// Publish fans an event out to the user's subscribers without blocking; a
// subscriber with a full buffer misses the event.
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for ch := range b.subscribers[event.UserID] {
		select {
		case ch <- event:
		default:
		}
	}
}

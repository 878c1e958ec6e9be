package events

import "testing"

func TestBus_PublishReachesSubscriber(t *testing.T) {
	bus := NewBus()

	ch, unsubscribe := bus.Subscribe("user-1")
	defer unsubscribe()

	event := Event{Action: ActionAdd, Entity: "transaction", ID: "tx-1", UserID: "user-1"}
	bus.Publish(event)

	select {
	case got := <-ch:
		if got != event {
			t.Errorf("received %+v, want %+v", got, event)
		}
	default:
		t.Fatal("expected a buffered event")
	}
}

func TestBus_ScopedToUser(t *testing.T) {
	bus := NewBus()

	ch, unsubscribe := bus.Subscribe("user-1")
	defer unsubscribe()

	bus.Publish(Event{Action: ActionUpdate, Entity: "account", ID: "acc-1", UserID: "user-2"})

	select {
	case got := <-ch:
		t.Fatalf("received another user's event: %+v", got)
	default:
	}
}

func TestBus_UnsubscribeClosesChannel(t *testing.T) {
	bus := NewBus()

	ch, unsubscribe := bus.Subscribe("user-1")
	unsubscribe()

	if _, ok := <-ch; ok {
		t.Fatal("expected closed channel after unsubscribe")
	}

	// Publishing after unsubscribe must not panic or block.
	bus.Publish(Event{Action: ActionDelete, Entity: "account", ID: "acc-1", UserID: "user-1"})

	// Unsubscribing twice is a no-op.
	unsubscribe()
}

func TestBus_SlowSubscriberDropsInsteadOfBlocking(t *testing.T) {
	bus := NewBus()

	ch, unsubscribe := bus.Subscribe("user-1")
	defer unsubscribe()

	for i := 0; i < subscriberBuffer+10; i++ {
		bus.Publish(Event{Action: ActionAdd, Entity: "transaction", ID: "tx", UserID: "user-1"})
	}

	if len(ch) != subscriberBuffer {
		t.Errorf("buffered %d events, want %d", len(ch), subscriberBuffer)
	}
}

func TestBus_MultipleSubscribersEachReceive(t *testing.T) {
	bus := NewBus()

	first, stopFirst := bus.Subscribe("user-1")
	defer stopFirst()

	second, stopSecond := bus.Subscribe("user-1")
	defer stopSecond()

	bus.Publish(Event{Action: ActionAdd, Entity: "account", ID: "acc-1", UserID: "user-1"})

	if len(first) != 1 || len(second) != 1 {
		t.Errorf("buffered %d/%d events, want 1/1", len(first), len(second))
	}
}

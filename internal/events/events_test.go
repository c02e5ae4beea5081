package events

import "testing"

func TestBus_PublishReachesAllSubscribers(t *testing.T) {
	var bus Bus
	var got []Event

	bus.Subscribe(func(e Event) { got = append(got, e) })
	bus.Subscribe(func(e Event) { got = append(got, e) })

	bus.Publish(ProfileSaved{Name: "work"})

	if len(got) != 2 {
		t.Fatalf("expected 2 deliveries, got %d", len(got))
	}
	for _, e := range got {
		saved, ok := e.(ProfileSaved)
		if !ok {
			t.Fatalf("expected ProfileSaved, got %T", e)
		}
		if saved.Name != "work" {
			t.Fatalf("expected name work, got %q", saved.Name)
		}
	}
}

func TestBus_Unsubscribe(t *testing.T) {
	var bus Bus
	count := 0

	unsubscribe := bus.Subscribe(func(Event) { count++ })
	bus.Publish(ProfileDeleted{Name: "old"})
	unsubscribe()
	unsubscribe() // second call is a no-op
	bus.Publish(ProfileDeleted{Name: "old"})

	if count != 1 {
		t.Fatalf("expected 1 delivery, got %d", count)
	}
}

func TestBus_TypeSwitch(t *testing.T) {
	var bus Bus
	imported := 0

	bus.Subscribe(func(e Event) {
		if ev, ok := e.(IconsImported); ok {
			imported += ev.Count
		}
	})

	bus.Publish(IconsImported{Profile: "work", Count: 3})
	bus.Publish(ProfileSaved{Name: "work"})

	if imported != 3 {
		t.Fatalf("expected 3 imported, got %d", imported)
	}
}

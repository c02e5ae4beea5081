// Package events carries notifications between the engine and its frontends.
// The event set is closed: new kinds are added here, as types, so a frontend
// that switches on them cannot silently miss one spelled differently.
package events

import "sync"

// Event is implemented by every notification type in this package.
type Event interface {
	isEvent()
}

// ProfileSaved fires after a profile document has been written to disk.
type ProfileSaved struct {
	Name string
}

// ProfileDeleted fires after a profile document has been removed.
type ProfileDeleted struct {
	Name string
}

// IconsImported fires once per finished import batch, not per icon.
type IconsImported struct {
	Profile string
	Count   int
}

func (ProfileSaved) isEvent()   {}
func (ProfileDeleted) isEvent() {}
func (IconsImported) isEvent()  {}

// Handler receives published events. Handlers run synchronously on the
// publishing goroutine; anything slow belongs on the handler's own goroutine.
type Handler func(Event)

// Bus is a minimal in-process publish/subscribe hub. The zero value is ready
// to use.
type Bus struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]Handler
}

// Subscribe registers h for every published event and returns a function
// that removes the subscription. Unsubscribing twice is harmless.
func (b *Bus) Subscribe(h Handler) (unsubscribe func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.subs == nil {
		b.subs = make(map[int]Handler)
	}
	id := b.nextID
	b.nextID++
	b.subs[id] = h
	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs, id)
	}
}

// Publish delivers e to every current subscriber in unspecified order.
func (b *Bus) Publish(e Event) {
	b.mu.Lock()
	handlers := make([]Handler, 0, len(b.subs))
	for _, h := range b.subs {
		handlers = append(handlers, h)
	}
	b.mu.Unlock()

	for _, h := range handlers {
		h(e)
	}
}

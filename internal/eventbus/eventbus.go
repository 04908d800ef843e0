package eventbus

import (
	"runtime/debug"
	"sync"

	"github.com/rs/zerolog"

	"gridgazer/internal/domain"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
	Close()
}

type subscription struct {
	id      uint64
	handler EventHandler
}

// bus delivers events on a single dispatcher goroutine, in publish order.
// The queue is unbounded so Publish never blocks, even when called from a
// handler or from a consumer the dispatcher is waiting on.
type bus struct {
	mu       sync.RWMutex
	handlers map[EventType][]subscription
	nextID   uint64

	qmu    sync.Mutex
	queue  []DomainEvent
	closed bool
	wake   chan struct{}
	done   chan struct{}

	closeOnce sync.Once
	logger    zerolog.Logger
}

// New creates a new event bus
func New(logger zerolog.Logger) EventBus {
	b := &bus{
		handlers: make(map[EventType][]subscription),
		wake:     make(chan struct{}, 1),
		done:     make(chan struct{}),
		logger:   logger.With().Str("component", "eventbus").Logger(),
	}

	go b.dispatch()

	return b
}

// Publish queues an event for all subscribers of its type
func (b *bus) Publish(event DomainEvent) {
	b.qmu.Lock()
	if b.closed {
		b.qmu.Unlock()
		b.logger.Debug().Str("event", string(event.Type())).Msg("bus closed, dropping event")
		return
	}
	b.queue = append(b.queue, event)
	b.qmu.Unlock()

	// High-frequency events stay out of the log
	switch event.Type() {
	case domain.EventEntryDiscovered, domain.EventMetadataLoaded, domain.EventPageChanged:
	default:
		b.logger.Debug().Str("event", string(event.Type())).Msg("publishing event")
	}

	select {
	case b.wake <- struct{}{}:
	default:
	}
}

// Subscribe subscribes to events of a specific type
// Returns an unsubscribe function
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		subs := b.handlers[eventType]
		for i, s := range subs {
			if s.id == id {
				b.handlers[eventType] = append(subs[:i:i], subs[i+1:]...)
				break
			}
		}
	}
}

// Close delivers everything already published and stops the dispatcher.
// It must not be called from inside a handler.
func (b *bus) Close() {
	b.closeOnce.Do(func() {
		b.qmu.Lock()
		b.closed = true
		b.qmu.Unlock()

		select {
		case b.wake <- struct{}{}:
		default:
		}
		<-b.done
	})
}

func (b *bus) dispatch() {
	defer close(b.done)

	for {
		b.qmu.Lock()
		batch := b.queue
		b.queue = nil
		closed := b.closed
		b.qmu.Unlock()

		for _, event := range batch {
			b.deliver(event)
		}

		if len(batch) > 0 {
			continue
		}
		if closed {
			return
		}
		<-b.wake
	}
}

func (b *bus) deliver(event DomainEvent) {
	b.mu.RLock()
	subs := make([]subscription, len(b.handlers[event.Type()]))
	copy(subs, b.handlers[event.Type()])
	b.mu.RUnlock()

	for _, s := range subs {
		b.call(s.handler, event)
	}
}

func (b *bus) call(h EventHandler, event DomainEvent) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error().
				Str("event", string(event.Type())).
				Interface("panic", r).
				Str("stack", string(debug.Stack())).
				Msg("event handler panic")
		}
	}()
	h(event)
}

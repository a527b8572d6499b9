package event

import (
	"context"
	"fmt"
	"sync"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// Actor returns the account that caused the event, if recorded
func (e Event) Actor() string {
	actor, _ := e.GetMetadataValue(MetadataKeyActor).(string)
	return actor
}

// WithActor returns a copy of the event carrying actor in its metadata
func (e Event) WithActor(actor string) Event {
	meta := map[string]interface{}{}
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		for k, v := range m {
			meta[k] = v
		}
	}
	meta[MetadataKeyActor] = actor
	e.Metadata = meta
	return e
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Publisher publishes events
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// Bus defines the interface for an event bus
type Bus interface {
	Publisher
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	wildcard []Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := make([]Handler, 0, len(b.handlers[event.Type])+len(b.wildcard))
	handlers = append(handlers, b.handlers[event.Type]...)
	handlers = append(handlers, b.wildcard...)
	b.mu.RUnlock()

	// Handlers run synchronously in subscription order
	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type. Subscribing to Any
// receives every event.
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if eventType == Any {
		b.wildcard = append(b.wildcard, handler)
		return
	}
	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

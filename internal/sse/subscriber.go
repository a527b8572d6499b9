package sse

import (
	"context"

	"github.com/osse101/LithosProtocol_Go/internal/event"
	"github.com/osse101/LithosProtocol_Go/internal/logger"
)

// Subscriber bridges the internal event bus to the hub
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{
		hub: hub,
		bus: bus,
	}
}

// Subscribe forwards every committed event to stream clients
func (s *Subscriber) Subscribe() {
	s.bus.Subscribe(event.Any, s.handle)
}

func (s *Subscriber) handle(ctx context.Context, evt event.Event) error {
	if !s.hub.Broadcast(string(evt.Type), evt.Actor(), evt.Payload) {
		logger.FromContext(ctx).Warn(LogMsgBroadcastDropped, "event_type", evt.Type)
		return nil
	}
	logger.FromContext(ctx).Debug(LogMsgEventBroadcast, "event_type", evt.Type)
	return nil
}

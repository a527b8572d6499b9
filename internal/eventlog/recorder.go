package eventlog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/osse101/LithosProtocol_Go/internal/domain"
	"github.com/osse101/LithosProtocol_Go/internal/event"
	"github.com/osse101/LithosProtocol_Go/internal/logger"
	"github.com/osse101/LithosProtocol_Go/internal/repository"
)

// Recorder appends events to the durable log inside a transaction and holds
// them until the transaction commits. Publishing is the caller's job, after
// Commit succeeds, so observers never see rolled-back state.
type Recorder struct {
	store   repository.EventStore
	actor   common.Address
	now     time.Time
	pending []event.Event
}

// NewRecorder creates a recorder bound to a transaction
func NewRecorder(store repository.EventStore, actor common.Address, now time.Time) *Recorder {
	return &Recorder{store: store, actor: actor, now: now}
}

// Record appends evt to the audit log and queues it for publishing
func (r *Recorder) Record(ctx context.Context, evt event.Event) error {
	evt = evt.WithActor(r.actor.Hex())

	payload, err := json.Marshal(evt.Payload)
	if err != nil {
		return fmt.Errorf("failed to encode %s payload: %w", evt.Type, err)
	}

	rec := &domain.EventRecord{
		Type:      string(evt.Type),
		Actor:     r.actor.Hex(),
		Payload:   payload,
		CreatedAt: r.now,
	}
	if err := r.store.AppendEvent(ctx, rec); err != nil {
		return fmt.Errorf("failed to append %s event: %w", evt.Type, err)
	}

	r.pending = append(r.pending, evt)
	return nil
}

// Events returns the events recorded so far
func (r *Recorder) Events() []event.Event {
	return r.pending
}

// Publish sends the recorded events to pub. Call only after commit.
// Failures are logged; the state change they describe is already durable.
func (r *Recorder) Publish(ctx context.Context, pub event.Publisher) {
	if pub == nil {
		return
	}
	log := logger.FromContext(ctx)
	for _, evt := range r.pending {
		if err := pub.Publish(ctx, evt); err != nil {
			log.Warn(LogMsgPublishFailed, "event_type", evt.Type, "error", err)
		}
	}
	r.pending = nil
}

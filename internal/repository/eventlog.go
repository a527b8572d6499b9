package repository

import (
	"context"

	"github.com/osse101/LithosProtocol_Go/internal/domain"
)

// EventStore is the append-only audit log
type EventStore interface {
	// AppendEvent assigns the next sequence number to record
	AppendEvent(ctx context.Context, record *domain.EventRecord) error
	// ListEvents returns up to limit records with Seq > afterSeq, oldest first
	ListEvents(ctx context.Context, afterSeq int64, limit int) ([]domain.EventRecord, error)
}

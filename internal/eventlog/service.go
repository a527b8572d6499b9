package eventlog

import (
	"context"

	"github.com/osse101/LithosProtocol_Go/internal/domain"
	"github.com/osse101/LithosProtocol_Go/internal/repository"
)

// Service reads the audit log
type Service interface {
	// List returns records with Seq > afterSeq, oldest first
	List(ctx context.Context, afterSeq int64, limit int) ([]domain.EventRecord, error)
}

type service struct {
	store repository.Store
}

// NewService creates a new event log reader
func NewService(store repository.Store) Service {
	return &service{store: store}
}

func (s *service) List(ctx context.Context, afterSeq int64, limit int) ([]domain.EventRecord, error) {
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	tx, err := s.store.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	defer repository.SafeRollback(ctx, tx)

	return tx.ListEvents(ctx, afterSeq, limit)
}

package repository

import (
	"context"
	"errors"
)

// ErrTxClosed is returned by Commit or Rollback on a finished transaction
var ErrTxClosed = errors.New("tx is closed")

// Tx defines the interface for transactional operations
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// StateTx is a transaction over the whole economy state. Every public mutating
// operation runs inside exactly one StateTx so that an error leaves no partial effect.
type StateTx interface {
	Tx
	PlayerStore
	QuestStore
	SystemStore
	LedgerStore
	AssetStore
	ResourceStore
	StakingStore
	AccessStore
	EventStore
}

// Store is a storage backend able to open state transactions
type Store interface {
	BeginTx(ctx context.Context) (StateTx, error)
	Ping(ctx context.Context) error
	Close()
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/LithosProtocol_Go/internal/repository"
)

var (
	_ repository.Store   = (*Store)(nil)
	_ repository.StateTx = (*stateTx)(nil)
)

// Store is a PostgreSQL repository.Store. Callers serialize mutating
// transactions; reads may run concurrently.
type Store struct {
	db *pgxpool.Pool
}

// NewStore creates a store over an open pool
func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// BeginTx opens a read-committed transaction
func (s *Store) BeginTx(ctx context.Context) (repository.StateTx, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTx, err)
	}
	return &stateTx{tx: tx}, nil
}

// Ping checks database connectivity
func (s *Store) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

// Close releases the pool
func (s *Store) Close() {
	s.db.Close()
}

// stateTx implements repository.StateTx on a single pgx transaction
type stateTx struct {
	tx pgx.Tx
}

func (t *stateTx) Commit(ctx context.Context) error {
	return mapTxErr(t.tx.Commit(ctx))
}

func (t *stateTx) Rollback(ctx context.Context) error {
	return mapTxErr(t.tx.Rollback(ctx))
}

func mapTxErr(err error) error {
	if errors.Is(err, pgx.ErrTxClosed) {
		return repository.ErrTxClosed
	}
	return err
}

// nextID allocates the next value of a named counter inside the transaction
func (t *stateTx) nextID(ctx context.Context, counter string) (int64, error) {
	var id int64
	err := t.tx.QueryRow(ctx, `UPDATE id_counters SET value = value + 1 WHERE name = $1 RETURNING value`, counter).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgNextID, counter, err)
	}
	return id, nil
}

// execOne runs a statement that must touch exactly one row, returning
// notFound otherwise
func (t *stateTx) execOne(ctx context.Context, notFound error, sql string, args ...any) error {
	tag, err := t.tx.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return notFound
	}
	return nil
}

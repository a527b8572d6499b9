package memory

import (
	"context"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/osse101/LithosProtocol_Go/internal/domain"
	"github.com/osse101/LithosProtocol_Go/internal/repository"
)

type completionKey struct {
	addr    common.Address
	questID int64
}

type dailyKey struct {
	addr common.Address
	day  int64
}

type tournamentKey struct {
	tournamentID int64
	addr         common.Address
}

type balanceKey struct {
	token   common.Address
	account common.Address
}

type resourceKey struct {
	id      int64
	account common.Address
}

type stakeKey struct {
	poolID  int64
	account common.Address
}

type roleKey struct {
	role    domain.Role
	account common.Address
}

type dailyMark struct {
	questID int64
	at      time.Time
}

// Store is an in-memory repository.Store. A transaction holds the store
// lock until it commits or rolls back, so transactions never interleave.
type Store struct {
	mu sync.Mutex

	players     map[common.Address]*domain.Player
	quests      map[int64]*domain.Quest
	completions map[completionKey]time.Time
	daily       map[dailyKey]dailyMark
	tournaments map[tournamentKey]*domain.TournamentEntry

	config  *domain.GameConfig
	paused  bool
	metrics map[int64]*domain.DailyMetrics

	balances map[balanceKey]*big.Int
	supply   map[common.Address]*big.Int

	assets           map[int64]*domain.Asset
	resourceTypes    map[int64]*domain.ResourceType
	resourceBalances map[resourceKey]int64

	pools  map[int64]*domain.StakingPool
	stakes map[stakeKey]*domain.UserStake

	roles map[roleKey]struct{}

	events []domain.EventRecord

	nextQuestID    int64
	nextAssetID    int64
	nextResourceID int64
	nextPoolID     int64
}

// NewStore creates an empty in-memory store
func NewStore() *Store {
	return &Store{
		players:          make(map[common.Address]*domain.Player),
		quests:           make(map[int64]*domain.Quest),
		completions:      make(map[completionKey]time.Time),
		daily:            make(map[dailyKey]dailyMark),
		tournaments:      make(map[tournamentKey]*domain.TournamentEntry),
		metrics:          make(map[int64]*domain.DailyMetrics),
		balances:         make(map[balanceKey]*big.Int),
		supply:           make(map[common.Address]*big.Int),
		assets:           make(map[int64]*domain.Asset),
		resourceTypes:    make(map[int64]*domain.ResourceType),
		resourceBalances: make(map[resourceKey]int64),
		pools:            make(map[int64]*domain.StakingPool),
		stakes:           make(map[stakeKey]*domain.UserStake),
		roles:            make(map[roleKey]struct{}),
	}
}

// BeginTx locks the store and opens a transaction
func (s *Store) BeginTx(ctx context.Context) (repository.StateTx, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	return &tx{s: s}, nil
}

// Ping always succeeds
func (s *Store) Ping(ctx context.Context) error {
	return nil
}

// Close is a no-op
func (s *Store) Close() {}

// tx records an undo entry for every mutation. Rollback replays the journal
// in reverse order.
type tx struct {
	s       *Store
	journal []func()
	closed  bool
}

func (t *tx) Commit(ctx context.Context) error {
	if t.closed {
		return repository.ErrTxClosed
	}
	t.closed = true
	t.journal = nil
	t.s.mu.Unlock()
	return nil
}

func (t *tx) Rollback(ctx context.Context) error {
	if t.closed {
		return repository.ErrTxClosed
	}
	t.closed = true
	for i := len(t.journal) - 1; i >= 0; i-- {
		t.journal[i]()
	}
	t.journal = nil
	t.s.mu.Unlock()
	return nil
}

func (t *tx) undo(fn func()) {
	t.journal = append(t.journal, fn)
}

// put stores v under k and journals the previous entry
func put[K comparable, V any](t *tx, m map[K]V, k K, v V) {
	prev, existed := m[k]
	m[k] = v
	t.undo(func() {
		if existed {
			m[k] = prev
		} else {
			delete(m, k)
		}
	})
}

// remove deletes k and journals the previous entry
func remove[K comparable, V any](t *tx, m map[K]V, k K) {
	prev, existed := m[k]
	if !existed {
		return
	}
	delete(m, k)
	t.undo(func() { m[k] = prev })
}

// nextID increments counter and journals the previous value
func (t *tx) nextID(counter *int64) int64 {
	prev := *counter
	*counter = prev + 1
	t.undo(func() { *counter = prev })
	return *counter
}

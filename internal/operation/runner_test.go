package operation

import (
	"context"
	"errors"
	"math/big"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/LithosProtocol_Go/internal/clock"
	"github.com/osse101/LithosProtocol_Go/internal/concurrency"
	"github.com/osse101/LithosProtocol_Go/internal/database/memory"
	"github.com/osse101/LithosProtocol_Go/internal/domain"
	"github.com/osse101/LithosProtocol_Go/internal/event"
	"github.com/osse101/LithosProtocol_Go/internal/repository"
)

var (
	caller = common.HexToAddress("0x00000000000000000000000000000000000ca11e")
	token  = common.HexToAddress("0x0000000000000000000000000000000000007070")
	start  = time.Unix(1_700_000_000, 0).UTC()
)

func newRunner(t *testing.T) (*Runner, *memory.Store, *event.MemoryBus) {
	t.Helper()
	store := memory.NewStore()
	bus := event.NewMemoryBus()
	return NewRunner(store, concurrency.NewGuard(), clock.NewSimulatedClock(start), bus), store, bus
}

func balance(t *testing.T, store repository.Store) *big.Int {
	t.Helper()
	ctx := context.Background()
	tx, err := store.BeginTx(ctx)
	require.NoError(t, err)
	defer repository.SafeRollback(ctx, tx)
	bal, err := tx.GetBalance(ctx, token, caller)
	require.NoError(t, err)
	return bal
}

func TestRun_CommitsAndPublishes(t *testing.T) {
	r, store, bus := newRunner(t)
	ctx := context.Background()

	var published []event.Event
	bus.Subscribe(event.Any, func(ctx context.Context, evt event.Event) error {
		published = append(published, evt)
		return nil
	})

	hookRan := false
	err := r.Run(ctx, "test_op", caller, true, func(ctx context.Context, op *Op) error {
		assert.Equal(t, start, op.Now)
		require.NoError(t, op.Tx.SetBalance(ctx, token, caller, big.NewInt(7)))
		op.AfterCommit(func(ctx context.Context) { hookRan = true })
		return op.Record(ctx, event.NewPauseEvent(caller, true))
	})
	require.NoError(t, err)

	assert.Equal(t, big.NewInt(7), balance(t, store))
	assert.True(t, hookRan)
	require.Len(t, published, 1)
	assert.Equal(t, caller.Hex(), published[0].Actor())
}

func TestRun_ErrorRollsBackAndSuppressesEvents(t *testing.T) {
	r, store, bus := newRunner(t)
	ctx := context.Background()

	published := 0
	bus.Subscribe(event.Any, func(ctx context.Context, evt event.Event) error {
		published++
		return nil
	})

	boom := errors.New("boom")
	hookRan := false
	err := r.Run(ctx, "test_op", caller, true, func(ctx context.Context, op *Op) error {
		require.NoError(t, op.Tx.SetBalance(ctx, token, caller, big.NewInt(7)))
		require.NoError(t, op.Record(ctx, event.NewPauseEvent(caller, true)))
		op.AfterCommit(func(ctx context.Context) { hookRan = true })
		return boom
	})
	assert.ErrorIs(t, err, boom)

	assert.Equal(t, 0, balance(t, store).Sign())
	assert.Zero(t, published)
	assert.False(t, hookRan)
}

func TestRun_PauseGate(t *testing.T) {
	r, _, _ := newRunner(t)
	ctx := context.Background()

	require.NoError(t, r.Run(ctx, "pause", caller, false, func(ctx context.Context, op *Op) error {
		return op.Tx.SetPaused(ctx, true)
	}))

	called := false
	err := r.Run(ctx, "gated", caller, true, func(ctx context.Context, op *Op) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, domain.ErrPaused)
	assert.False(t, called)

	// Ungated operations still run while paused
	assert.NoError(t, r.Run(ctx, "ungated", caller, false, func(ctx context.Context, op *Op) error {
		return nil
	}))
}

func TestRun_RejectsReentry(t *testing.T) {
	r, _, _ := newRunner(t)
	ctx := context.Background()

	var inner error
	err := r.Run(ctx, "outer", caller, true, func(ctx context.Context, op *Op) error {
		inner = r.Run(ctx, "inner", caller, true, func(ctx context.Context, op *Op) error {
			return nil
		})
		return nil
	})
	require.NoError(t, err)
	assert.ErrorIs(t, inner, domain.ErrReentrantCall)
}

func TestRun_HandlersMayCallBack(t *testing.T) {
	r, _, bus := newRunner(t)
	ctx := context.Background()

	var nested error
	bus.Subscribe(event.SystemPaused, func(ctx context.Context, evt event.Event) error {
		nested = r.Run(ctx, "from_handler", caller, false, func(ctx context.Context, op *Op) error {
			return nil
		})
		return nil
	})

	require.NoError(t, r.Run(ctx, "outer", caller, false, func(ctx context.Context, op *Op) error {
		return op.Record(ctx, event.NewPauseEvent(caller, true))
	}))
	assert.NoError(t, nested)
}

func TestRun_PublishesInCommitOrder(t *testing.T) {
	r, _, bus := newRunner(t)
	ctx := context.Background()

	var (
		mu      sync.Mutex
		seen    []event.Type
		blocked = make(chan struct{})
		release = make(chan struct{})
	)
	bus.Subscribe(event.Any, func(ctx context.Context, evt event.Event) error {
		mu.Lock()
		seen = append(seen, evt.Type)
		first := len(seen) == 1
		mu.Unlock()
		if first {
			close(blocked)
			<-release
		}
		return nil
	})
	published := func() []event.Type {
		mu.Lock()
		defer mu.Unlock()
		return append([]event.Type(nil), seen...)
	}

	done := make(chan error, 1)
	go func() {
		done <- r.Run(ctx, "pause", caller, false, func(ctx context.Context, op *Op) error {
			return op.Record(ctx, event.NewPauseEvent(caller, true))
		})
	}()
	<-blocked

	// Commits while the first batch is still being delivered
	require.NoError(t, r.Run(ctx, "unpause", caller, false, func(ctx context.Context, op *Op) error {
		return op.Record(ctx, event.NewPauseEvent(caller, false))
	}))
	assert.Equal(t, []event.Type{event.SystemPaused}, published())

	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, []event.Type{event.SystemPaused, event.SystemUnpaused}, published())
}

func TestView_SeesCommittedState(t *testing.T) {
	r, _, _ := newRunner(t)
	ctx := context.Background()

	require.NoError(t, r.Run(ctx, "seed", caller, true, func(ctx context.Context, op *Op) error {
		return op.Tx.SetBalance(ctx, token, caller, big.NewInt(3))
	}))

	err := r.View(ctx, func(ctx context.Context, tx repository.StateTx, now time.Time) error {
		bal, err := tx.GetBalance(ctx, token, caller)
		require.NoError(t, err)
		assert.Equal(t, big.NewInt(3), bal)
		assert.Equal(t, start, now)
		return nil
	})
	require.NoError(t, err)
}

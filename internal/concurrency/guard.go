package concurrency

import (
	"context"
	"sync"

	"github.com/osse101/LithosProtocol_Go/internal/domain"
)

type guardKey struct{}

// Guard serializes mutating entry points and rejects re-entry.
// A call made while holding the guard carries a context marker; a nested
// Do on that context fails with domain.ErrReentrantCall instead of deadlocking.
type Guard struct {
	mu sync.Mutex
}

// NewGuard creates a new Guard
func NewGuard() *Guard {
	return &Guard{}
}

// Do runs fn while holding the guard. The lock is released on every exit path.
func (g *Guard) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if held, _ := ctx.Value(guardKey{}).(*Guard); held == g {
		return domain.ErrReentrantCall
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	return fn(context.WithValue(ctx, guardKey{}, g))
}

// Held reports whether ctx was issued from inside this guard
func (g *Guard) Held(ctx context.Context) bool {
	held, _ := ctx.Value(guardKey{}).(*Guard)
	return held == g
}

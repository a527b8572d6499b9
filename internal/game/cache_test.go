package game

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/LithosProtocol_Go/internal/domain"
)

func TestPlayerCache_SetAndGetCopies(t *testing.T) {
	c := newPlayerCache()
	p := domain.NewPlayer(alice, genesis)

	require.True(t, c.Set(p, c.Generation()))
	p.Level = 9

	got, ok := c.Get(alice)
	require.True(t, ok)
	assert.Equal(t, 1, got.Level)

	got.Level = 7
	again, _ := c.Get(alice)
	assert.Equal(t, 1, again.Level)
}

func TestPlayerCache_FillAfterInvalidateIsDropped(t *testing.T) {
	c := newPlayerCache()
	old := domain.NewPlayer(alice, genesis)

	// A reader takes the generation and reads the old row, then a writer
	// commits and invalidates before the reader fills the cache.
	gen := c.Generation()
	c.Invalidate(alice)

	assert.False(t, c.Set(old, gen))
	_, ok := c.Get(alice)
	assert.False(t, ok)

	// The next reader fills normally
	assert.True(t, c.Set(old, c.Generation()))
	_, ok = c.Get(alice)
	assert.True(t, ok)
}

func TestGetPlayerData_NotStaleAfterWrite(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	f.register(t, alice, bob)

	before, err := f.svc.GetPlayerData(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, int64(0), before.PvPWins)

	_, err = f.svc.RecordPvPResult(ctx, admin, alice, bob)
	require.NoError(t, err)

	after, err := f.svc.GetPlayerData(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, int64(1), after.PvPWins)
	assert.Equal(t, int64(10), after.Experience)
}

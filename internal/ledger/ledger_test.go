package ledger

import (
	"context"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/LithosProtocol_Go/internal/database/memory"
	"github.com/osse101/LithosProtocol_Go/internal/domain"
	"github.com/osse101/LithosProtocol_Go/internal/repository"
)

var (
	token    = common.HexToAddress("0x00000000000000000000000000000000000000aa")
	operator = common.HexToAddress("0x00000000000000000000000000000000000000bb")
	alice    = common.HexToAddress("0x00000000000000000000000000000000000000a1")
	bob      = common.HexToAddress("0x00000000000000000000000000000000000000b0")
)

func setup(t *testing.T) (context.Context, repository.StateTx, *Ledger) {
	t.Helper()
	ctx := context.Background()
	tx, err := memory.NewStore().BeginTx(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { repository.SafeRollback(ctx, tx) })

	require.NoError(t, tx.GrantRole(ctx, domain.RoleMinter, operator))
	require.NoError(t, tx.GrantRole(ctx, domain.RoleBurner, operator))
	return ctx, tx, New(tx, token)
}

func TestLedger_MintBurn(t *testing.T) {
	ctx, _, l := setup(t)

	require.NoError(t, l.Mint(ctx, operator, alice, domain.Tokens(100)))
	require.NoError(t, l.BurnFrom(ctx, operator, alice, domain.Tokens(30)))

	bal, err := l.BalanceOf(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, domain.Tokens(70), bal)

	supply, err := l.TotalSupply(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.Tokens(70), supply)
}

func TestLedger_Authorization(t *testing.T) {
	ctx, _, l := setup(t)

	assert.ErrorIs(t, l.Mint(ctx, alice, alice, big.NewInt(1)), domain.ErrUnauthorized)
	assert.ErrorIs(t, l.BurnFrom(ctx, alice, alice, big.NewInt(1)), domain.ErrUnauthorized)
}

func TestLedger_Errors(t *testing.T) {
	ctx, _, l := setup(t)

	assert.ErrorIs(t, l.Mint(ctx, operator, alice, big.NewInt(0)), domain.ErrInvalidAmount)
	assert.ErrorIs(t, l.Mint(ctx, operator, alice, big.NewInt(-1)), domain.ErrInvalidAmount)
	assert.ErrorIs(t, l.BurnFrom(ctx, operator, alice, big.NewInt(1)), domain.ErrInsufficientBalance)
	assert.ErrorIs(t, l.Transfer(ctx, alice, bob, big.NewInt(1)), domain.ErrInsufficientBalance)
}

func TestLedger_Transfer(t *testing.T) {
	ctx, _, l := setup(t)
	require.NoError(t, l.Mint(ctx, operator, alice, big.NewInt(10)))

	require.NoError(t, l.Transfer(ctx, alice, bob, big.NewInt(4)))
	require.NoError(t, l.Transfer(ctx, bob, bob, big.NewInt(4)))

	a, _ := l.BalanceOf(ctx, alice)
	b, _ := l.BalanceOf(ctx, bob)
	assert.Equal(t, big.NewInt(6), a)
	assert.Equal(t, big.NewInt(4), b)

	supply, _ := l.TotalSupply(ctx)
	assert.Equal(t, big.NewInt(10), supply)
}

func TestLedger_TokensAreIsolated(t *testing.T) {
	ctx, tx, l := setup(t)
	other := New(tx, common.HexToAddress("0x00000000000000000000000000000000000000cc"))

	require.NoError(t, l.Mint(ctx, operator, alice, big.NewInt(5)))

	bal, err := other.BalanceOf(ctx, alice)
	require.NoError(t, err)
	assert.Zero(t, bal.Sign())
}

package access

import (
	"context"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/LithosProtocol_Go/internal/database/memory"
	"github.com/osse101/LithosProtocol_Go/internal/domain"
	"github.com/osse101/LithosProtocol_Go/internal/repository"
)

var (
	admin = common.HexToAddress("0x0000000000000000000000000000000000000001")
	user  = common.HexToAddress("0x0000000000000000000000000000000000000002")
)

func TestGrantRevoke(t *testing.T) {
	ctx := context.Background()
	tx, err := memory.NewStore().BeginTx(ctx)
	require.NoError(t, err)
	defer repository.SafeRollback(ctx, tx)

	require.NoError(t, tx.GrantRole(ctx, domain.RoleAdmin, admin))

	assert.ErrorIs(t, Require(ctx, tx, domain.RoleOracle, user), domain.ErrUnauthorized)

	require.NoError(t, Grant(ctx, tx, admin, domain.RoleOracle, user))
	assert.NoError(t, Require(ctx, tx, domain.RoleOracle, user))

	// Granting twice is harmless
	require.NoError(t, Grant(ctx, tx, admin, domain.RoleOracle, user))

	require.NoError(t, Revoke(ctx, tx, admin, domain.RoleOracle, user))
	assert.ErrorIs(t, Require(ctx, tx, domain.RoleOracle, user), domain.ErrUnauthorized)
}

func TestGrant_RequiresAdmin(t *testing.T) {
	ctx := context.Background()
	tx, err := memory.NewStore().BeginTx(ctx)
	require.NoError(t, err)
	defer repository.SafeRollback(ctx, tx)

	err = Grant(ctx, tx, user, domain.RoleAdmin, user)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	roles, err := tx.ListRoles(ctx, user)
	require.NoError(t, err)
	assert.Empty(t, roles)
}

func TestGrant_UnknownRole(t *testing.T) {
	ctx := context.Background()
	tx, err := memory.NewStore().BeginTx(ctx)
	require.NoError(t, err)
	defer repository.SafeRollback(ctx, tx)

	require.NoError(t, tx.GrantRole(ctx, domain.RoleAdmin, admin))
	err = Grant(ctx, tx, admin, domain.Role("superuser"), user)
	assert.ErrorIs(t, err, domain.ErrInvalidRole)
}

package asset

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/LithosProtocol_Go/internal/database/memory"
	"github.com/osse101/LithosProtocol_Go/internal/domain"
	"github.com/osse101/LithosProtocol_Go/internal/repository"
)

var (
	operator = common.HexToAddress("0x00000000000000000000000000000000000000bb")
	alice    = common.HexToAddress("0x00000000000000000000000000000000000000a1")
	bob      = common.HexToAddress("0x00000000000000000000000000000000000000b0")
	now      = time.Unix(1_700_000_000, 0).UTC()
)

func setup(t *testing.T) (context.Context, repository.StateTx) {
	t.Helper()
	ctx := context.Background()
	tx, err := memory.NewStore().BeginTx(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { repository.SafeRollback(ctx, tx) })

	for _, role := range []domain.Role{domain.RoleMinter, domain.RoleBurner, domain.RoleGameMaster, domain.RoleStakingOperator} {
		require.NoError(t, tx.GrantRole(ctx, role, operator))
	}
	return ctx, tx
}

func TestRegistry_MintAndTransfer(t *testing.T) {
	ctx, tx := setup(t)
	reg := NewRegistry(tx, now)

	a, err := reg.MintAsset(ctx, operator, alice, domain.AssetTypeWeapon, 3, "ipfs://sword")
	require.NoError(t, err)
	assert.Equal(t, int64(1), a.TokenID)
	assert.Equal(t, 1, a.Level)
	assert.Equal(t, now, a.CreatedAt)

	owner, err := reg.OwnerOf(ctx, a.TokenID)
	require.NoError(t, err)
	assert.Equal(t, alice, owner)

	assert.ErrorIs(t, reg.Transfer(ctx, bob, alice, a.TokenID), domain.ErrNotAssetOwner)
	require.NoError(t, reg.Transfer(ctx, alice, bob, a.TokenID))

	owned, err := reg.ListByOwner(ctx, bob)
	require.NoError(t, err)
	require.Len(t, owned, 1)
}

func TestRegistry_MintValidation(t *testing.T) {
	ctx, tx := setup(t)
	reg := NewRegistry(tx, now)

	tests := []struct {
		name      string
		operator  common.Address
		assetType domain.AssetType
		rarity    int
		wantErr   error
	}{
		{"unauthorized", alice, domain.AssetTypeArmor, 1, domain.ErrUnauthorized},
		{"rarity zero", operator, domain.AssetTypeArmor, 0, domain.ErrInvalidRarity},
		{"rarity six", operator, domain.AssetTypeArmor, 6, domain.ErrInvalidRarity},
		{"unknown type", operator, domain.AssetType("spaceship"), 2, domain.ErrInvalidAssetType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := reg.MintAsset(ctx, tt.operator, alice, tt.assetType, tt.rarity, "")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRegistry_StakedAssetIsFrozen(t *testing.T) {
	ctx, tx := setup(t)
	reg := NewRegistry(tx, now)

	a, err := reg.MintAsset(ctx, operator, alice, domain.AssetTypeCharacter, 5, "")
	require.NoError(t, err)

	assert.ErrorIs(t, reg.SetStaked(ctx, alice, a.TokenID, true), domain.ErrUnauthorized)
	require.NoError(t, reg.SetStaked(ctx, operator, a.TokenID, true))
	assert.ErrorIs(t, reg.Transfer(ctx, alice, bob, a.TokenID), domain.ErrAssetStaked)

	require.NoError(t, reg.SetStaked(ctx, operator, a.TokenID, false))
	assert.NoError(t, reg.Transfer(ctx, alice, bob, a.TokenID))
}

func TestRegistry_LevelUpCapped(t *testing.T) {
	ctx, tx := setup(t)
	reg := NewRegistry(tx, now)

	a, err := reg.MintAsset(ctx, operator, alice, domain.AssetTypeTool, 1, "")
	require.NoError(t, err)

	_, err = reg.LevelUp(ctx, alice, a.TokenID)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	for i := 0; i < domain.MaxLevel+5; i++ {
		a, err = reg.LevelUp(ctx, operator, a.TokenID)
		require.NoError(t, err)
	}
	assert.Equal(t, domain.MaxLevel, a.Level)
}

func TestRegistry_RecordRepair(t *testing.T) {
	ctx, tx := setup(t)
	reg := NewRegistry(tx, now)

	a, err := reg.MintAsset(ctx, operator, alice, domain.AssetTypeArmor, 2, "")
	require.NoError(t, err)
	assert.Nil(t, a.LastRepairedAt)

	require.NoError(t, reg.RecordRepair(ctx, a.TokenID))
	got, err := reg.Get(ctx, a.TokenID)
	require.NoError(t, err)
	require.NotNil(t, got.LastRepairedAt)
	assert.Equal(t, now, *got.LastRepairedAt)
}

func TestResources_MaxSupply(t *testing.T) {
	ctx, tx := setup(t)
	res := NewResources(tx, now)

	capped, err := res.CreateType(ctx, operator, "Iron Ore", domain.ResourceOre, 1, 100)
	require.NoError(t, err)
	unlimited, err := res.CreateType(ctx, operator, "Oak", domain.ResourceWood, 1, 0)
	require.NoError(t, err)

	// Up to exactly max supply succeeds
	require.NoError(t, res.MintBatch(ctx, operator, alice, []int64{capped.ID}, []int64{60}))
	require.NoError(t, res.MintBatch(ctx, operator, bob, []int64{capped.ID}, []int64{40}))

	// One more fails
	err = res.MintBatch(ctx, operator, alice, []int64{capped.ID}, []int64{1})
	assert.ErrorIs(t, err, domain.ErrMaxSupplyExceeded)

	// Unlimited never blocks
	require.NoError(t, res.MintBatch(ctx, operator, alice, []int64{unlimited.ID}, []int64{1_000_000_000}))

	bal, err := res.BalanceOf(ctx, capped.ID, alice)
	require.NoError(t, err)
	assert.Equal(t, int64(60), bal)
}

func TestResources_MintBatchAllOrNothing(t *testing.T) {
	ctx, tx := setup(t)
	res := NewResources(tx, now)

	ore, err := res.CreateType(ctx, operator, "Ore", domain.ResourceOre, 1, 10)
	require.NoError(t, err)
	gem, err := res.CreateType(ctx, operator, "Gem", domain.ResourceGem, 4, 0)
	require.NoError(t, err)
	require.NoError(t, res.SetTypeActive(ctx, operator, gem.ID, false))

	err = res.MintBatch(ctx, operator, alice, []int64{ore.ID, gem.ID}, []int64{5, 5})
	assert.ErrorIs(t, err, domain.ErrResourceInactive)

	// Duplicate ids count together against the cap
	err = res.MintBatch(ctx, operator, alice, []int64{ore.ID, ore.ID}, []int64{6, 6})
	assert.ErrorIs(t, err, domain.ErrMaxSupplyExceeded)

	bal, err := res.BalanceOf(ctx, ore.ID, alice)
	require.NoError(t, err)
	assert.Zero(t, bal)

	rt, err := res.Get(ctx, ore.ID)
	require.NoError(t, err)
	assert.Zero(t, rt.TotalMinted)
}

func TestResources_BurnBatchValidatesFirst(t *testing.T) {
	ctx, tx := setup(t)
	res := NewResources(tx, now)

	wood, err := res.CreateType(ctx, operator, "Wood", domain.ResourceWood, 1, 0)
	require.NoError(t, err)
	herb, err := res.CreateType(ctx, operator, "Herb", domain.ResourceHerb, 2, 0)
	require.NoError(t, err)
	require.NoError(t, res.MintBatch(ctx, operator, alice, []int64{wood.ID, herb.ID}, []int64{10, 1}))

	err = res.BurnBatch(ctx, operator, alice, []int64{wood.ID, herb.ID}, []int64{5, 2})
	assert.ErrorIs(t, err, domain.ErrInsufficientResources)

	w, _ := res.BalanceOf(ctx, wood.ID, alice)
	h, _ := res.BalanceOf(ctx, herb.ID, alice)
	assert.Equal(t, int64(10), w, "first pair must not be consumed")
	assert.Equal(t, int64(1), h)

	require.NoError(t, res.BurnBatch(ctx, operator, alice, []int64{wood.ID, herb.ID}, []int64{5, 1}))
	w, _ = res.BalanceOf(ctx, wood.ID, alice)
	assert.Equal(t, int64(5), w)
}

func TestResources_BatchValidation(t *testing.T) {
	ctx, tx := setup(t)
	res := NewResources(tx, now)

	rt, err := res.CreateType(ctx, operator, "Essence", domain.ResourceEssence, 3, 0)
	require.NoError(t, err)

	assert.ErrorIs(t, res.MintBatch(ctx, operator, alice, []int64{rt.ID}, []int64{1, 2}), domain.ErrLengthMismatch)
	assert.ErrorIs(t, res.BurnBatch(ctx, operator, alice, []int64{rt.ID, rt.ID}, []int64{1}), domain.ErrLengthMismatch)
	assert.ErrorIs(t, res.MintBatch(ctx, operator, alice, []int64{rt.ID}, []int64{0}), domain.ErrInvalidAmount)
	assert.ErrorIs(t, res.MintBatch(ctx, operator, alice, []int64{99}, []int64{1}), domain.ErrResourceNotFound)
	assert.ErrorIs(t, res.MintBatch(ctx, alice, alice, []int64{rt.ID}, []int64{1}), domain.ErrUnauthorized)

	_, err = res.CreateType(ctx, operator, "Bad", domain.ResourceEssence, 9, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidRarity)
	_, err = res.CreateType(ctx, operator, "Bad", domain.ResourceCategory("slime"), 1, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidResourceCategory)
}

func TestResources_BatchTotalsOverflow(t *testing.T) {
	ctx, tx := setup(t)
	res := NewResources(tx, now)

	gold, err := res.CreateType(ctx, operator, "Gold", domain.ResourceOre, 2, 10)
	require.NoError(t, err)
	ore, err := res.CreateType(ctx, operator, "Ore", domain.ResourceOre, 1, 0)
	require.NoError(t, err)

	err = res.MintBatch(ctx, operator, bob, []int64{gold.ID, gold.ID}, []int64{math.MaxInt64, 2})
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	err = res.BurnBatch(ctx, operator, alice, []int64{ore.ID, ore.ID}, []int64{math.MaxInt64, 2})
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	// A single mint that would push an existing balance past int64
	require.NoError(t, res.MintBatch(ctx, operator, alice, []int64{ore.ID}, []int64{math.MaxInt64 - 1}))
	err = res.MintBatch(ctx, operator, alice, []int64{ore.ID}, []int64{2})
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	bal, err := res.BalanceOf(ctx, gold.ID, bob)
	require.NoError(t, err)
	assert.Zero(t, bal)
	bal, err = res.BalanceOf(ctx, ore.ID, alice)
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64-1), bal)

	rt, err := res.Get(ctx, gold.ID)
	require.NoError(t, err)
	assert.Zero(t, rt.TotalMinted)
	assert.False(t, rt.CanMint(-1))
}

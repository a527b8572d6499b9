package memory

import (
	"context"
	"math/big"
	"sort"

	"github.com/ethereum/go-ethereum/common"

	"github.com/osse101/LithosProtocol_Go/internal/domain"
)

// ---- Ledger ----

func (t *tx) GetBalance(ctx context.Context, token, account common.Address) (*big.Int, error) {
	return domain.CloneInt(t.s.balances[balanceKey{token: token, account: account}]), nil
}

func (t *tx) SetBalance(ctx context.Context, token, account common.Address, amount *big.Int) error {
	key := balanceKey{token: token, account: account}
	if amount.Sign() == 0 {
		remove(t, t.s.balances, key)
		return nil
	}
	put(t, t.s.balances, key, domain.CloneInt(amount))
	return nil
}

func (t *tx) GetTotalSupply(ctx context.Context, token common.Address) (*big.Int, error) {
	return domain.CloneInt(t.s.supply[token]), nil
}

func (t *tx) SetTotalSupply(ctx context.Context, token common.Address, amount *big.Int) error {
	put(t, t.s.supply, token, domain.CloneInt(amount))
	return nil
}

// ---- Unique assets ----

func (t *tx) InsertAsset(ctx context.Context, asset *domain.Asset) (int64, error) {
	id := t.nextID(&t.s.nextAssetID)
	a := asset.Clone()
	a.TokenID = id
	put(t, t.s.assets, id, a)
	return id, nil
}

func (t *tx) GetAsset(ctx context.Context, tokenID int64) (*domain.Asset, error) {
	a, ok := t.s.assets[tokenID]
	if !ok {
		return nil, domain.ErrAssetNotFound
	}
	return a.Clone(), nil
}

func (t *tx) UpdateAsset(ctx context.Context, asset *domain.Asset) error {
	if _, ok := t.s.assets[asset.TokenID]; !ok {
		return domain.ErrAssetNotFound
	}
	put(t, t.s.assets, asset.TokenID, asset.Clone())
	return nil
}

func (t *tx) ListAssetsByOwner(ctx context.Context, owner common.Address) ([]domain.Asset, error) {
	assets := []domain.Asset{}
	for _, a := range t.s.assets {
		if a.Owner == owner {
			assets = append(assets, *a.Clone())
		}
	}
	sort.Slice(assets, func(i, j int) bool { return assets[i].TokenID < assets[j].TokenID })
	return assets, nil
}

// ---- Resources ----

func (t *tx) InsertResourceType(ctx context.Context, rt *domain.ResourceType) (int64, error) {
	id := t.nextID(&t.s.nextResourceID)
	cp := *rt
	cp.ID = id
	put(t, t.s.resourceTypes, id, &cp)
	return id, nil
}

func (t *tx) GetResourceType(ctx context.Context, id int64) (*domain.ResourceType, error) {
	rt, ok := t.s.resourceTypes[id]
	if !ok {
		return nil, domain.ErrResourceNotFound
	}
	cp := *rt
	return &cp, nil
}

func (t *tx) UpdateResourceType(ctx context.Context, rt *domain.ResourceType) error {
	if _, ok := t.s.resourceTypes[rt.ID]; !ok {
		return domain.ErrResourceNotFound
	}
	cp := *rt
	put(t, t.s.resourceTypes, rt.ID, &cp)
	return nil
}

func (t *tx) ListResourceTypes(ctx context.Context) ([]domain.ResourceType, error) {
	types := make([]domain.ResourceType, 0, len(t.s.resourceTypes))
	for _, rt := range t.s.resourceTypes {
		types = append(types, *rt)
	}
	sort.Slice(types, func(i, j int) bool { return types[i].ID < types[j].ID })
	return types, nil
}

func (t *tx) GetResourceBalance(ctx context.Context, id int64, account common.Address) (int64, error) {
	return t.s.resourceBalances[resourceKey{id: id, account: account}], nil
}

func (t *tx) SetResourceBalance(ctx context.Context, id int64, account common.Address, amount int64) error {
	key := resourceKey{id: id, account: account}
	if amount == 0 {
		remove(t, t.s.resourceBalances, key)
		return nil
	}
	put(t, t.s.resourceBalances, key, amount)
	return nil
}

// ---- Staking ----

func (t *tx) InsertPool(ctx context.Context, pool *domain.StakingPool) (int64, error) {
	id := t.nextID(&t.s.nextPoolID)
	p := pool.Clone()
	p.ID = id
	put(t, t.s.pools, id, p)
	return id, nil
}

func (t *tx) GetPool(ctx context.Context, id int64) (*domain.StakingPool, error) {
	p, ok := t.s.pools[id]
	if !ok {
		return nil, domain.ErrPoolNotFound
	}
	return p.Clone(), nil
}

func (t *tx) UpdatePool(ctx context.Context, pool *domain.StakingPool) error {
	if _, ok := t.s.pools[pool.ID]; !ok {
		return domain.ErrPoolNotFound
	}
	put(t, t.s.pools, pool.ID, pool.Clone())
	return nil
}

func (t *tx) ListPools(ctx context.Context) ([]domain.StakingPool, error) {
	pools := make([]domain.StakingPool, 0, len(t.s.pools))
	for _, p := range t.s.pools {
		pools = append(pools, *p.Clone())
	}
	sort.Slice(pools, func(i, j int) bool { return pools[i].ID < pools[j].ID })
	return pools, nil
}

func (t *tx) GetStake(ctx context.Context, poolID int64, account common.Address) (*domain.UserStake, error) {
	s, ok := t.s.stakes[stakeKey{poolID: poolID, account: account}]
	if !ok {
		return domain.NewUserStake(poolID, account), nil
	}
	return s.Clone(), nil
}

func (t *tx) SaveStake(ctx context.Context, stake *domain.UserStake) error {
	put(t, t.s.stakes, stakeKey{poolID: stake.PoolID, account: stake.Account}, stake.Clone())
	return nil
}

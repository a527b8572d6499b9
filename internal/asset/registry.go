package asset

import (
	"context"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/osse101/LithosProtocol_Go/internal/access"
	"github.com/osse101/LithosProtocol_Go/internal/domain"
	"github.com/osse101/LithosProtocol_Go/internal/repository"
)

// Store is the subset of a state transaction the unique registry needs
type Store interface {
	repository.AssetStore
	repository.AccessStore
}

// Registry is the unique asset registry bound to a transaction
type Registry struct {
	store Store
	now   time.Time
}

// NewRegistry binds a registry to store; now stamps created and repaired times
func NewRegistry(store Store, now time.Time) *Registry {
	return &Registry{store: store, now: now}
}

// MintAsset creates a level 1 asset owned by to. operator must hold minter.
func (r *Registry) MintAsset(ctx context.Context, operator, to common.Address, assetType domain.AssetType, rarity int, metadataURI string) (*domain.Asset, error) {
	if err := access.Require(ctx, r.store, domain.RoleMinter, operator); err != nil {
		return nil, err
	}
	if !domain.ValidRarity(rarity) {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidRarity, rarity)
	}
	if !assetType.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidAssetType, assetType)
	}

	a := &domain.Asset{
		Owner:       to,
		AssetType:   assetType,
		Level:       1,
		Rarity:      rarity,
		MetadataURI: metadataURI,
		CreatedAt:   r.now,
	}
	id, err := r.store.InsertAsset(ctx, a)
	if err != nil {
		return nil, err
	}
	a.TokenID = id
	return a, nil
}

// Get returns the asset with tokenID
func (r *Registry) Get(ctx context.Context, tokenID int64) (*domain.Asset, error) {
	return r.store.GetAsset(ctx, tokenID)
}

// OwnerOf returns the owner of tokenID
func (r *Registry) OwnerOf(ctx context.Context, tokenID int64) (common.Address, error) {
	a, err := r.store.GetAsset(ctx, tokenID)
	if err != nil {
		return common.Address{}, err
	}
	return a.Owner, nil
}

// SetStaked toggles the staked flag. operator must hold staking_operator.
func (r *Registry) SetStaked(ctx context.Context, operator common.Address, tokenID int64, staked bool) error {
	if err := access.Require(ctx, r.store, domain.RoleStakingOperator, operator); err != nil {
		return err
	}
	a, err := r.store.GetAsset(ctx, tokenID)
	if err != nil {
		return err
	}
	a.IsStaked = staked
	return r.store.UpdateAsset(ctx, a)
}

// LevelUp raises the asset level by one, capped at domain.MaxLevel.
// operator must hold game_master.
func (r *Registry) LevelUp(ctx context.Context, operator common.Address, tokenID int64) (*domain.Asset, error) {
	if err := access.Require(ctx, r.store, domain.RoleGameMaster, operator); err != nil {
		return nil, err
	}
	a, err := r.store.GetAsset(ctx, tokenID)
	if err != nil {
		return nil, err
	}
	if a.Level < domain.MaxLevel {
		a.Level++
	}
	if err := r.store.UpdateAsset(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// Transfer moves tokenID from one owner to another. Staked assets are frozen.
func (r *Registry) Transfer(ctx context.Context, from, to common.Address, tokenID int64) error {
	a, err := r.store.GetAsset(ctx, tokenID)
	if err != nil {
		return err
	}
	if a.Owner != from {
		return domain.ErrNotAssetOwner
	}
	if a.IsStaked {
		return domain.ErrAssetStaked
	}
	a.Owner = to
	return r.store.UpdateAsset(ctx, a)
}

// RecordRepair stamps the asset's last repair time
func (r *Registry) RecordRepair(ctx context.Context, tokenID int64) error {
	a, err := r.store.GetAsset(ctx, tokenID)
	if err != nil {
		return err
	}
	at := r.now
	a.LastRepairedAt = &at
	return r.store.UpdateAsset(ctx, a)
}

// ListByOwner returns every asset held by owner
func (r *Registry) ListByOwner(ctx context.Context, owner common.Address) ([]domain.Asset, error) {
	return r.store.ListAssetsByOwner(ctx, owner)
}

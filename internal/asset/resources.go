package asset

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/osse101/LithosProtocol_Go/internal/access"
	"github.com/osse101/LithosProtocol_Go/internal/domain"
	"github.com/osse101/LithosProtocol_Go/internal/repository"
)

// ResourceStore is the subset of a state transaction the resource registry needs
type ResourceStore interface {
	repository.ResourceStore
	repository.AccessStore
}

// Resources is the semi-fungible registry bound to a transaction
type Resources struct {
	store ResourceStore
	now   time.Time
}

// NewResources binds a resource registry to store
func NewResources(store ResourceStore, now time.Time) *Resources {
	return &Resources{store: store, now: now}
}

// CreateType registers a new active resource type. operator must hold game_master.
func (r *Resources) CreateType(ctx context.Context, operator common.Address, name string, category domain.ResourceCategory, rarity int, maxSupply int64) (*domain.ResourceType, error) {
	if err := access.Require(ctx, r.store, domain.RoleGameMaster, operator); err != nil {
		return nil, err
	}
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}
	if !category.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidResourceCategory, category)
	}
	if !domain.ValidRarity(rarity) {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidRarity, rarity)
	}
	if maxSupply < 0 {
		return nil, fmt.Errorf("%w: max supply %d", domain.ErrInvalidAmount, maxSupply)
	}

	rt := &domain.ResourceType{
		Name:      name,
		Category:  category,
		Rarity:    rarity,
		MaxSupply: maxSupply,
		IsActive:  true,
		CreatedAt: r.now,
	}
	id, err := r.store.InsertResourceType(ctx, rt)
	if err != nil {
		return nil, err
	}
	rt.ID = id
	return rt, nil
}

// SetTypeActive toggles minting for a type. operator must hold game_master.
func (r *Resources) SetTypeActive(ctx context.Context, operator common.Address, id int64, active bool) error {
	if err := access.Require(ctx, r.store, domain.RoleGameMaster, operator); err != nil {
		return err
	}
	rt, err := r.store.GetResourceType(ctx, id)
	if err != nil {
		return err
	}
	rt.IsActive = active
	return r.store.UpdateResourceType(ctx, rt)
}

// aggregate sums amounts per id after validating the pair lists
func aggregate(ids, amounts []int64) ([]int64, map[int64]int64, error) {
	if len(ids) != len(amounts) {
		return nil, nil, fmt.Errorf("%w: %d ids, %d amounts", domain.ErrLengthMismatch, len(ids), len(amounts))
	}
	if len(ids) == 0 {
		return nil, nil, fmt.Errorf("%w: empty batch", domain.ErrInvalidInput)
	}
	order := make([]int64, 0, len(ids))
	totals := make(map[int64]int64, len(ids))
	for i, id := range ids {
		if amounts[i] <= 0 {
			return nil, nil, fmt.Errorf("%w: resource %d amount %d", domain.ErrInvalidAmount, id, amounts[i])
		}
		if _, seen := totals[id]; !seen {
			order = append(order, id)
		}
		if totals[id] > math.MaxInt64-amounts[i] {
			return nil, nil, fmt.Errorf("%w: resource %d total overflows", domain.ErrInvalidAmount, id)
		}
		totals[id] += amounts[i]
	}
	return order, totals, nil
}

// MintBatch credits amounts of each resource id to to. Every pair is checked
// against type activity and max supply before any balance changes.
// operator must hold minter.
func (r *Resources) MintBatch(ctx context.Context, operator, to common.Address, ids, amounts []int64) error {
	if err := access.Require(ctx, r.store, domain.RoleMinter, operator); err != nil {
		return err
	}
	order, totals, err := aggregate(ids, amounts)
	if err != nil {
		return err
	}

	types := make(map[int64]*domain.ResourceType, len(order))
	for _, id := range order {
		rt, err := r.store.GetResourceType(ctx, id)
		if err != nil {
			return err
		}
		if !rt.IsActive {
			return fmt.Errorf("%w: %d", domain.ErrResourceInactive, id)
		}
		if !rt.CanMint(totals[id]) {
			return fmt.Errorf("%w: resource %d minted %d of %d, requested %d",
				domain.ErrMaxSupplyExceeded, id, rt.TotalMinted, rt.MaxSupply, totals[id])
		}
		types[id] = rt
	}

	balances := make(map[int64]int64, len(order))
	for _, id := range order {
		bal, err := r.store.GetResourceBalance(ctx, id, to)
		if err != nil {
			return err
		}
		if bal > math.MaxInt64-totals[id] || types[id].TotalMinted > math.MaxInt64-totals[id] {
			return fmt.Errorf("%w: resource %d balance overflows", domain.ErrInvalidAmount, id)
		}
		balances[id] = bal
	}

	for _, id := range order {
		rt := types[id]
		rt.TotalMinted += totals[id]
		if err := r.store.UpdateResourceType(ctx, rt); err != nil {
			return err
		}
		if err := r.store.SetResourceBalance(ctx, id, to, balances[id]+totals[id]); err != nil {
			return err
		}
	}
	return nil
}

// BurnBatch debits amounts of each resource id from holder. Every pair is
// checked before any balance changes. operator must hold burner.
func (r *Resources) BurnBatch(ctx context.Context, operator, holder common.Address, ids, amounts []int64) error {
	if err := access.Require(ctx, r.store, domain.RoleBurner, operator); err != nil {
		return err
	}
	order, totals, err := aggregate(ids, amounts)
	if err != nil {
		return err
	}

	balances := make(map[int64]int64, len(order))
	for _, id := range order {
		if _, err := r.store.GetResourceType(ctx, id); err != nil {
			return err
		}
		bal, err := r.store.GetResourceBalance(ctx, id, holder)
		if err != nil {
			return err
		}
		if bal < totals[id] {
			return fmt.Errorf("%w: resource %d have %d, need %d", domain.ErrInsufficientResources, id, bal, totals[id])
		}
		balances[id] = bal
	}

	for _, id := range order {
		if err := r.store.SetResourceBalance(ctx, id, holder, balances[id]-totals[id]); err != nil {
			return err
		}
	}
	return nil
}

// BalanceOf returns holder's balance of resource id
func (r *Resources) BalanceOf(ctx context.Context, id int64, holder common.Address) (int64, error) {
	return r.store.GetResourceBalance(ctx, id, holder)
}

// Get returns the resource type with id
func (r *Resources) Get(ctx context.Context, id int64) (*domain.ResourceType, error) {
	return r.store.GetResourceType(ctx, id)
}

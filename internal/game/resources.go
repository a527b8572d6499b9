package game

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/osse101/LithosProtocol_Go/internal/domain"
	"github.com/osse101/LithosProtocol_Go/internal/event"
	"github.com/osse101/LithosProtocol_Go/internal/operation"
	"github.com/osse101/LithosProtocol_Go/internal/repository"
)

// CreateResourceType registers a stackable resource. caller must hold game_master.
func (s *service) CreateResourceType(ctx context.Context, caller common.Address, req CreateResourceTypeRequest) (*domain.ResourceType, error) {
	var created *domain.ResourceType
	err := s.runner.Run(ctx, OpCreateResourceType, caller, true, func(ctx context.Context, op *operation.Op) error {
		rt, err := newResources(op).CreateType(ctx, caller, req.Name, req.Category, req.Rarity, req.MaxSupply)
		if err != nil {
			return err
		}
		created = rt
		return op.Record(ctx, event.NewResourceTypeCreatedEvent(rt))
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// SetResourceTypeActive toggles minting for a resource type
func (s *service) SetResourceTypeActive(ctx context.Context, caller common.Address, id int64, active bool) error {
	return s.runner.Run(ctx, OpSetResourceTypeActive, caller, true, func(ctx context.Context, op *operation.Op) error {
		if err := newResources(op).SetTypeActive(ctx, caller, id, active); err != nil {
			return err
		}
		return op.Record(ctx, event.NewStatusChangedEvent(event.ResourceStatusChanged, id, active))
	})
}

// MintResources credits resources to to. caller must hold minter.
func (s *service) MintResources(ctx context.Context, caller, to common.Address, ids, amounts []int64) error {
	return s.runner.Run(ctx, OpMintResources, caller, true, func(ctx context.Context, op *operation.Op) error {
		if err := newResources(op).MintBatch(ctx, caller, to, ids, amounts); err != nil {
			return err
		}
		return op.Record(ctx, event.NewResourcesMintedEvent(to, ids, amounts))
	})
}

// GetResourceBalance returns account's balance of resource id
func (s *service) GetResourceBalance(ctx context.Context, id int64, account common.Address) (int64, error) {
	var bal int64
	err := s.runner.View(ctx, func(ctx context.Context, tx repository.StateTx, now time.Time) error {
		if _, err := tx.GetResourceType(ctx, id); err != nil {
			return err
		}
		var err error
		bal, err = tx.GetResourceBalance(ctx, id, account)
		return err
	})
	return bal, err
}

// ListResourceTypes returns every resource type ordered by id
func (s *service) ListResourceTypes(ctx context.Context) ([]domain.ResourceType, error) {
	var types []domain.ResourceType
	err := s.runner.View(ctx, func(ctx context.Context, tx repository.StateTx, now time.Time) error {
		var err error
		types, err = tx.ListResourceTypes(ctx)
		return err
	})
	return types, err
}

package game

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/osse101/LithosProtocol_Go/internal/domain"
	"github.com/osse101/LithosProtocol_Go/internal/event"
	"github.com/osse101/LithosProtocol_Go/internal/logger"
	"github.com/osse101/LithosProtocol_Go/internal/operation"
)

// CraftItem burns the crafting cost and the listed resources, then mints a
// new asset to caller and grants rarity × 5 experience. The steps run in one
// transaction: a failure at any step leaves balances and resources untouched.
func (s *service) CraftItem(ctx context.Context, caller common.Address, req CraftRequest) (*CraftResult, error) {
	var result *CraftResult
	err := s.runner.Run(ctx, OpCraftItem, caller, true, func(ctx context.Context, op *operation.Op) error {
		p, err := op.Tx.GetPlayer(ctx, caller)
		if err != nil {
			return err
		}
		if len(req.ResourceIDs) != len(req.ResourceAmounts) {
			return fmt.Errorf("%w: %d ids, %d amounts", domain.ErrLengthMismatch, len(req.ResourceIDs), len(req.ResourceAmounts))
		}
		if !domain.ValidRarity(req.Rarity) {
			return fmt.Errorf("%w: %d", domain.ErrInvalidRarity, req.Rarity)
		}
		if !req.AssetType.Valid() {
			return fmt.Errorf("%w: %q", domain.ErrInvalidAssetType, req.AssetType)
		}
		cfg, err := loadConfig(ctx, op.Tx)
		if err != nil {
			return err
		}

		cost, err := s.costAmount(ctx, op, cfg.CraftingCost)
		if err != nil {
			return err
		}
		if err := s.burn(ctx, op, caller, cost); err != nil {
			return err
		}
		if len(req.ResourceIDs) > 0 {
			if err := newResources(op).BurnBatch(ctx, s.cfg.SystemAccount, caller, req.ResourceIDs, req.ResourceAmounts); err != nil {
				return err
			}
		}
		a, err := newRegistry(op).MintAsset(ctx, s.cfg.SystemAccount, caller, req.AssetType, req.Rarity, req.MetadataURI)
		if err != nil {
			return err
		}

		xp := int64(req.Rarity) * domain.CraftXPPerRarity
		if err := s.grantExperience(ctx, op, p, xp, XPSourceCrafting); err != nil {
			return err
		}

		result = &CraftResult{Asset: a, Cost: cost, XPGained: xp, NewLevel: p.Level}
		op.AfterCommit(func(ctx context.Context) {
			logger.FromContext(ctx).Info(LogMsgItemCrafted, "player", caller.Hex(), "token_id", a.TokenID, "cost", cost.String())
		})
		return op.Record(ctx, event.NewItemCraftedEvent(caller, a, cost, req.ResourceIDs, req.ResourceAmounts))
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// RepairItem burns the live repair cost for an asset caller owns. Repair
// restores nothing; it stamps the asset's last repair time.
func (s *service) RepairItem(ctx context.Context, caller common.Address, tokenID int64) (*big.Int, error) {
	var paid *big.Int
	err := s.runner.Run(ctx, OpRepairItem, caller, true, func(ctx context.Context, op *operation.Op) error {
		reg := newRegistry(op)
		owner, err := reg.OwnerOf(ctx, tokenID)
		if err != nil {
			return err
		}
		if owner != caller {
			return fmt.Errorf("%w: token %d", domain.ErrNotAssetOwner, tokenID)
		}
		if _, err := op.Tx.GetPlayer(ctx, caller); err != nil {
			return err
		}
		cfg, err := loadConfig(ctx, op.Tx)
		if err != nil {
			return err
		}

		cost, err := s.costAmount(ctx, op, cfg.RepairCost)
		if err != nil {
			return err
		}
		if err := s.burn(ctx, op, caller, cost); err != nil {
			return err
		}
		if err := reg.RecordRepair(ctx, tokenID); err != nil {
			return err
		}
		paid = cost
		return op.Record(ctx, event.NewItemRepairedEvent(caller, tokenID, cost))
	})
	if err != nil {
		return nil, err
	}
	return paid, nil
}

// LevelUpAsset raises an asset's level by one. caller must hold game_master.
func (s *service) LevelUpAsset(ctx context.Context, caller common.Address, tokenID int64) (*domain.Asset, error) {
	var leveled *domain.Asset
	err := s.runner.Run(ctx, OpLevelUpAsset, caller, true, func(ctx context.Context, op *operation.Op) error {
		a, err := newRegistry(op).LevelUp(ctx, caller, tokenID)
		if err != nil {
			return err
		}
		leveled = a
		return op.Record(ctx, event.NewAssetLeveledEvent(a.Owner, a.TokenID, a.Level))
	})
	if err != nil {
		return nil, err
	}
	return leveled, nil
}

package game

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/osse101/LithosProtocol_Go/internal/domain"
	"github.com/osse101/LithosProtocol_Go/internal/event"
	"github.com/osse101/LithosProtocol_Go/internal/logger"
	"github.com/osse101/LithosProtocol_Go/internal/operation"
	"github.com/osse101/LithosProtocol_Go/internal/repository"
)

// RegisterPlayer creates a level 1 player for caller
func (s *service) RegisterPlayer(ctx context.Context, caller common.Address) (*domain.Player, error) {
	var player *domain.Player
	err := s.runner.Run(ctx, OpRegisterPlayer, caller, true, func(ctx context.Context, op *operation.Op) error {
		p := domain.NewPlayer(caller, op.Now)
		if err := op.Tx.InsertPlayer(ctx, p); err != nil {
			return err
		}
		player = p
		op.AfterCommit(func(ctx context.Context) {
			s.players.Invalidate(caller)
			logger.FromContext(ctx).Info(LogMsgPlayerRegistered, "player", caller.Hex())
		})
		return op.Record(ctx, event.NewPlayerRegisteredEvent(caller, op.Now))
	})
	if err != nil {
		return nil, err
	}
	return player, nil
}

// GetPlayerData returns the player snapshot with its live utility balance
func (s *service) GetPlayerData(ctx context.Context, addr common.Address) (*domain.PlayerData, error) {
	var data *domain.PlayerData
	err := s.runner.View(ctx, func(ctx context.Context, tx repository.StateTx, _ time.Time) error {
		p, ok := s.players.Get(addr)
		if !ok {
			gen := s.players.Generation()
			var err error
			if p, err = tx.GetPlayer(ctx, addr); err != nil {
				return err
			}
			s.players.Set(p, gen)
		}
		bal, err := s.utility(tx).BalanceOf(ctx, addr)
		if err != nil {
			return err
		}
		data = &domain.PlayerData{
			Player:         *p,
			NextLevelXP:    NextLevelThreshold(p.Level),
			UtilityBalance: bal.String(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}

// GetPlayerAssets lists the unique assets held by addr
func (s *service) GetPlayerAssets(ctx context.Context, addr common.Address) ([]domain.Asset, error) {
	var assets []domain.Asset
	err := s.runner.View(ctx, func(ctx context.Context, tx repository.StateTx, now time.Time) error {
		var err error
		assets, err = tx.ListAssetsByOwner(ctx, addr)
		return err
	})
	return assets, err
}

// GetBalance returns the utility balance of addr
func (s *service) GetBalance(ctx context.Context, addr common.Address) (*big.Int, error) {
	var bal *big.Int
	err := s.runner.View(ctx, func(ctx context.Context, tx repository.StateTx, now time.Time) error {
		var err error
		bal, err = s.utility(tx).BalanceOf(ctx, addr)
		return err
	})
	return bal, err
}

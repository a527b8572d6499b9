package game

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/osse101/LithosProtocol_Go/internal/access"
	"github.com/osse101/LithosProtocol_Go/internal/domain"
	"github.com/osse101/LithosProtocol_Go/internal/event"
	"github.com/osse101/LithosProtocol_Go/internal/operation"
)

// RecordPvPResult credits a match reported by the oracle. The winner gets the
// live PvP reward and fixed experience; the loser only gains a loss.
func (s *service) RecordPvPResult(ctx context.Context, caller, winner, loser common.Address) (*PvPResult, error) {
	var result *PvPResult
	err := s.runner.Run(ctx, OpRecordPvPResult, caller, true, func(ctx context.Context, op *operation.Op) error {
		if err := access.Require(ctx, op.Tx, domain.RoleOracle, caller); err != nil {
			return err
		}
		w, err := op.Tx.GetPlayer(ctx, winner)
		if err != nil {
			return fmt.Errorf("winner: %w", err)
		}
		l := w
		if loser != winner {
			if l, err = op.Tx.GetPlayer(ctx, loser); err != nil {
				return fmt.Errorf("loser: %w", err)
			}
		}
		cfg, err := loadConfig(ctx, op.Tx)
		if err != nil {
			return err
		}

		w.PvPWins++
		l.PvPLosses++
		l.UpdatedAt = op.Now
		if l != w {
			if err := op.Tx.UpdatePlayer(ctx, l); err != nil {
				return err
			}
		}

		reward, err := s.rewardAmount(ctx, op, cfg.PvPWinReward, 1)
		if err != nil {
			return err
		}
		if err := s.mint(ctx, op, winner, reward); err != nil {
			return err
		}
		if err := s.grantExperience(ctx, op, w, domain.PvPWinXP, XPSourcePvP); err != nil {
			return err
		}

		result = &PvPResult{Winner: *w, Loser: *l, Reward: reward, XPGained: domain.PvPWinXP}
		op.AfterCommit(func(context.Context) { s.players.Invalidate(loser) })
		return op.Record(ctx, event.NewPvPResultEvent(winner, loser, reward, domain.PvPWinXP))
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// EnterTournament burns the live entry fee and registers caller once per tournament
func (s *service) EnterTournament(ctx context.Context, caller common.Address, tournamentID int64) (*domain.TournamentEntry, error) {
	var entry *domain.TournamentEntry
	err := s.runner.Run(ctx, OpEnterTournament, caller, true, func(ctx context.Context, op *operation.Op) error {
		if tournamentID <= 0 {
			return fmt.Errorf("%w: tournament id %d", domain.ErrInvalidInput, tournamentID)
		}
		if _, err := op.Tx.GetPlayer(ctx, caller); err != nil {
			return err
		}
		cfg, err := loadConfig(ctx, op.Tx)
		if err != nil {
			return err
		}

		e := &domain.TournamentEntry{
			TournamentID: tournamentID,
			Player:       caller,
			Fee:          domain.CloneInt(cfg.TournamentEntryFee),
			EnteredAt:    op.Now,
		}
		if err := op.Tx.InsertTournamentEntry(ctx, e); err != nil {
			return err
		}
		if err := s.burn(ctx, op, caller, e.Fee); err != nil {
			return err
		}
		entry = e
		return op.Record(ctx, event.NewTournamentEnteredEvent(e))
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// DistributeLeaderboardRewards mints the live leaderboard reward to every
// winner. All winners must be registered or nothing is paid. Returns the
// amount each winner received.
func (s *service) DistributeLeaderboardRewards(ctx context.Context, caller common.Address, winners []common.Address) (*big.Int, error) {
	var each *big.Int
	err := s.runner.Run(ctx, OpDistributeLeaderboard, caller, true, func(ctx context.Context, op *operation.Op) error {
		if err := access.Require(ctx, op.Tx, domain.RoleOracle, caller); err != nil {
			return err
		}
		if len(winners) == 0 {
			return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgNoWinners)
		}
		listed := make(map[common.Address]bool, len(winners))
		for _, w := range winners {
			if listed[w] {
				return fmt.Errorf("%w: "+ErrMsgDuplicateWinnerFmt, domain.ErrInvalidInput, w.Hex())
			}
			listed[w] = true
			if _, err := op.Tx.GetPlayer(ctx, w); err != nil {
				return fmt.Errorf("%s: %w", w.Hex(), err)
			}
		}
		cfg, err := loadConfig(ctx, op.Tx)
		if err != nil {
			return err
		}

		amount, err := s.rewardAmount(ctx, op, cfg.LeaderboardReward, int64(len(winners)))
		if err != nil {
			return err
		}
		for _, w := range winners {
			if err := s.mint(ctx, op, w, amount); err != nil {
				return err
			}
		}
		each = amount
		return op.Record(ctx, event.NewLeaderboardRewardsEvent(winners, amount))
	})
	if err != nil {
		return nil, err
	}
	return each, nil
}

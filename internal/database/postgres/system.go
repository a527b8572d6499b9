package postgres

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/osse101/LithosProtocol_Go/internal/domain"
)

func (t *stateTx) GetGameConfig(ctx context.Context) (*domain.GameConfig, error) {
	var (
		cfg                                         domain.GameConfig
		daily, pvp, leaderboard, craft, repair, fee pgtype.Numeric
	)
	err := t.tx.QueryRow(ctx, `
		SELECT version, daily_quest_reward, pvp_win_reward, leaderboard_reward,
		       crafting_cost, repair_cost, tournament_entry_fee, updated_at
		FROM game_config`).Scan(&cfg.Version, &daily, &pvp, &leaderboard, &craft, &repair, &fee, &cfg.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf(ErrMsgScanFailed, "game config", err)
	}

	if err := bigInts(
		[]**big.Int{&cfg.DailyQuestReward, &cfg.PvPWinReward, &cfg.LeaderboardReward, &cfg.CraftingCost, &cfg.RepairCost, &cfg.TournamentEntryFee},
		daily, pvp, leaderboard, craft, repair, fee,
	); err != nil {
		return nil, err
	}
	cfg.UpdatedAt = utc(cfg.UpdatedAt)
	return &cfg, nil
}

func (t *stateTx) SaveGameConfig(ctx context.Context, cfg *domain.GameConfig) error {
	_, err := t.tx.Exec(ctx, `
		INSERT INTO game_config (singleton, version, daily_quest_reward, pvp_win_reward, leaderboard_reward,
		                         crafting_cost, repair_cost, tournament_entry_fee, updated_at)
		VALUES (TRUE, $1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (singleton) DO UPDATE SET
			version = EXCLUDED.version,
			daily_quest_reward = EXCLUDED.daily_quest_reward,
			pvp_win_reward = EXCLUDED.pvp_win_reward,
			leaderboard_reward = EXCLUDED.leaderboard_reward,
			crafting_cost = EXCLUDED.crafting_cost,
			repair_cost = EXCLUDED.repair_cost,
			tournament_entry_fee = EXCLUDED.tournament_entry_fee,
			updated_at = EXCLUDED.updated_at`,
		cfg.Version, numeric(cfg.DailyQuestReward), numeric(cfg.PvPWinReward), numeric(cfg.LeaderboardReward),
		numeric(cfg.CraftingCost), numeric(cfg.RepairCost), numeric(cfg.TournamentEntryFee), cfg.UpdatedAt)
	if err != nil {
		return fmt.Errorf(ErrMsgWriteFailed, "game config", err)
	}
	return nil
}

func (t *stateTx) IsPaused(ctx context.Context) (bool, error) {
	var paused bool
	if err := t.tx.QueryRow(ctx, `SELECT paused FROM system_state`).Scan(&paused); err != nil {
		return false, fmt.Errorf(ErrMsgQueryFailed, "system state", err)
	}
	return paused, nil
}

func (t *stateTx) SetPaused(ctx context.Context, paused bool) error {
	if _, err := t.tx.Exec(ctx, `UPDATE system_state SET paused = $1`, paused); err != nil {
		return fmt.Errorf(ErrMsgWriteFailed, "system state", err)
	}
	return nil
}

func (t *stateTx) GetDailyMetrics(ctx context.Context, day int64) (*domain.DailyMetrics, error) {
	var (
		m      = domain.DailyMetrics{Day: day}
		minted pgtype.Numeric
	)
	err := t.tx.QueryRow(ctx, `SELECT minted, actions FROM daily_metrics WHERE day = $1`, day).Scan(&minted, &m.Actions)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.NewDailyMetrics(day), nil
	}
	if err != nil {
		return nil, fmt.Errorf(ErrMsgScanFailed, "daily metrics", err)
	}
	if m.Minted, err = bigInt(minted); err != nil {
		return nil, err
	}
	return &m, nil
}

func (t *stateTx) SaveDailyMetrics(ctx context.Context, m *domain.DailyMetrics) error {
	_, err := t.tx.Exec(ctx, `
		INSERT INTO daily_metrics (day, minted, actions) VALUES ($1, $2, $3)
		ON CONFLICT (day) DO UPDATE SET minted = EXCLUDED.minted, actions = EXCLUDED.actions`,
		m.Day, numeric(m.Minted), m.Actions)
	if err != nil {
		return fmt.Errorf(ErrMsgWriteFailed, "daily metrics", err)
	}
	return nil
}

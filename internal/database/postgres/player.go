package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jackc/pgx/v5"

	"github.com/osse101/LithosProtocol_Go/internal/domain"
)

const playerColumns = `address, level, experience, last_daily_day, pvp_wins, pvp_losses, is_active, registered_at, updated_at`

func scanPlayer(row pgx.Row) (*domain.Player, error) {
	var (
		p    domain.Player
		addr []byte
	)
	if err := row.Scan(&addr, &p.Level, &p.Experience, &p.LastDailyDay, &p.PvPWins, &p.PvPLosses,
		&p.IsActive, &p.RegisteredAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	p.Address = address(addr)
	p.RegisteredAt = utc(p.RegisteredAt)
	p.UpdatedAt = utc(p.UpdatedAt)
	return &p, nil
}

func (t *stateTx) GetPlayer(ctx context.Context, addr common.Address) (*domain.Player, error) {
	p, err := scanPlayer(t.tx.QueryRow(ctx, `SELECT `+playerColumns+` FROM players WHERE address = $1`, addr.Bytes()))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotRegistered
	}
	if err != nil {
		return nil, fmt.Errorf(ErrMsgScanFailed, "player", err)
	}
	return p, nil
}

func (t *stateTx) InsertPlayer(ctx context.Context, p *domain.Player) error {
	return t.execOne(ctx, domain.ErrAlreadyRegistered, `
		INSERT INTO players (`+playerColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (address) DO NOTHING`,
		p.Address.Bytes(), p.Level, p.Experience, p.LastDailyDay, p.PvPWins, p.PvPLosses,
		p.IsActive, p.RegisteredAt, p.UpdatedAt)
}

func (t *stateTx) UpdatePlayer(ctx context.Context, p *domain.Player) error {
	return t.execOne(ctx, domain.ErrNotRegistered, `
		UPDATE players
		SET level = $2, experience = $3, last_daily_day = $4, pvp_wins = $5, pvp_losses = $6,
		    is_active = $7, updated_at = $8
		WHERE address = $1`,
		p.Address.Bytes(), p.Level, p.Experience, p.LastDailyDay, p.PvPWins, p.PvPLosses,
		p.IsActive, p.UpdatedAt)
}

func (t *stateTx) CountPlayers(ctx context.Context) (int64, error) {
	var n int64
	if err := t.tx.QueryRow(ctx, `SELECT COUNT(*) FROM players`).Scan(&n); err != nil {
		return 0, fmt.Errorf(ErrMsgQueryFailed, "players", err)
	}
	return n, nil
}

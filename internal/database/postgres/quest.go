package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/osse101/LithosProtocol_Go/internal/domain"
)

const questColumns = `id, name, description, reward_amount, required_level, is_active, is_daily, created_at`

func scanQuest(row pgx.Row) (*domain.Quest, error) {
	var (
		q      domain.Quest
		reward pgtype.Numeric
	)
	if err := row.Scan(&q.ID, &q.Name, &q.Description, &reward, &q.RequiredLevel, &q.IsActive, &q.IsDaily, &q.CreatedAt); err != nil {
		return nil, err
	}
	amount, err := bigInt(reward)
	if err != nil {
		return nil, err
	}
	q.RewardAmount = amount
	q.CreatedAt = utc(q.CreatedAt)
	return &q, nil
}

func (t *stateTx) InsertQuest(ctx context.Context, q *domain.Quest) (int64, error) {
	id, err := t.nextID(ctx, counterQuest)
	if err != nil {
		return 0, err
	}
	_, err = t.tx.Exec(ctx, `
		INSERT INTO quests (`+questColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		id, q.Name, q.Description, numeric(q.RewardAmount), q.RequiredLevel, q.IsActive, q.IsDaily, q.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgWriteFailed, "quest", err)
	}
	return id, nil
}

func (t *stateTx) GetQuest(ctx context.Context, id int64) (*domain.Quest, error) {
	q, err := scanQuest(t.tx.QueryRow(ctx, `SELECT `+questColumns+` FROM quests WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrQuestNotFound
	}
	if err != nil {
		return nil, fmt.Errorf(ErrMsgScanFailed, "quest", err)
	}
	return q, nil
}

func (t *stateTx) UpdateQuest(ctx context.Context, q *domain.Quest) error {
	return t.execOne(ctx, domain.ErrQuestNotFound, `
		UPDATE quests
		SET name = $2, description = $3, reward_amount = $4, required_level = $5, is_active = $6, is_daily = $7
		WHERE id = $1`,
		q.ID, q.Name, q.Description, numeric(q.RewardAmount), q.RequiredLevel, q.IsActive, q.IsDaily)
}

func (t *stateTx) ListQuests(ctx context.Context, activeOnly bool) ([]domain.Quest, error) {
	rows, err := t.tx.Query(ctx, `SELECT `+questColumns+` FROM quests WHERE is_active OR NOT $1 ORDER BY id`, activeOnly)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgQueryFailed, "quests", err)
	}
	defer rows.Close()

	quests := []domain.Quest{}
	for rows.Next() {
		q, err := scanQuest(rows)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgScanFailed, "quest", err)
		}
		quests = append(quests, *q)
	}
	return quests, rows.Err()
}

func (t *stateTx) HasCompletedQuest(ctx context.Context, addr common.Address, questID int64) (bool, error) {
	var done bool
	err := t.tx.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM quest_completions WHERE address = $1 AND quest_id = $2)`,
		addr.Bytes(), questID).Scan(&done)
	if err != nil {
		return false, fmt.Errorf(ErrMsgQueryFailed, "quest completion", err)
	}
	return done, nil
}

func (t *stateTx) MarkQuestCompleted(ctx context.Context, addr common.Address, questID int64, at time.Time) error {
	_, err := t.tx.Exec(ctx, `
		INSERT INTO quest_completions (address, quest_id, completed_at) VALUES ($1, $2, $3)
		ON CONFLICT (address, quest_id) DO NOTHING`,
		addr.Bytes(), questID, at)
	if err != nil {
		return fmt.Errorf(ErrMsgWriteFailed, "quest completion", err)
	}
	return nil
}

func (t *stateTx) GetDailyCompletion(ctx context.Context, addr common.Address, day int64) (int64, bool, error) {
	var questID int64
	err := t.tx.QueryRow(ctx, `SELECT quest_id FROM daily_completions WHERE address = $1 AND day = $2`,
		addr.Bytes(), day).Scan(&questID)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf(ErrMsgQueryFailed, "daily completion", err)
	}
	return questID, true, nil
}

func (t *stateTx) MarkDailyCompleted(ctx context.Context, addr common.Address, day, questID int64, at time.Time) error {
	_, err := t.tx.Exec(ctx, `
		INSERT INTO daily_completions (address, day, quest_id, completed_at) VALUES ($1, $2, $3, $4)
		ON CONFLICT (address, day) DO UPDATE SET quest_id = EXCLUDED.quest_id, completed_at = EXCLUDED.completed_at`,
		addr.Bytes(), day, questID, at)
	if err != nil {
		return fmt.Errorf(ErrMsgWriteFailed, "daily completion", err)
	}
	return nil
}

func (t *stateTx) InsertTournamentEntry(ctx context.Context, e *domain.TournamentEntry) error {
	return t.execOne(ctx, domain.ErrAlreadyEnteredTournament, `
		INSERT INTO tournament_entries (tournament_id, address, fee, entered_at) VALUES ($1, $2, $3, $4)
		ON CONFLICT (tournament_id, address) DO NOTHING`,
		e.TournamentID, e.Player.Bytes(), numeric(e.Fee), e.EnteredAt)
}

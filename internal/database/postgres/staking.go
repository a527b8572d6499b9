package postgres

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/osse101/LithosProtocol_Go/internal/domain"
)

const poolColumns = `id, name, pool_type, staking_token, reward_rate, lock_period_ns, total_staked,
	last_update_time, reward_per_token_stored, is_active, max_stake_per_user, created_at`

func scanPool(row pgx.Row) (*domain.StakingPool, error) {
	var (
		p                               domain.StakingPool
		token                           []byte
		lockNS                          int64
		rate, total, stored, maxPerUser pgtype.Numeric
	)
	if err := row.Scan(&p.ID, &p.Name, &p.PoolType, &token, &rate, &lockNS, &total,
		&p.LastUpdateTime, &stored, &p.IsActive, &maxPerUser, &p.CreatedAt); err != nil {
		return nil, err
	}
	if err := bigInts(
		[]**big.Int{&p.RewardRate, &p.TotalStaked, &p.RewardPerTokenStored, &p.MaxStakePerUser},
		rate, total, stored, maxPerUser,
	); err != nil {
		return nil, err
	}
	p.StakingToken = address(token)
	p.LockPeriod = time.Duration(lockNS)
	p.LastUpdateTime = utc(p.LastUpdateTime)
	p.CreatedAt = utc(p.CreatedAt)
	return &p, nil
}

func (t *stateTx) InsertPool(ctx context.Context, p *domain.StakingPool) (int64, error) {
	id, err := t.nextID(ctx, counterPool)
	if err != nil {
		return 0, err
	}
	_, err = t.tx.Exec(ctx, `
		INSERT INTO staking_pools (`+poolColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		id, p.Name, string(p.PoolType), p.StakingToken.Bytes(), numeric(p.RewardRate), int64(p.LockPeriod),
		numeric(p.TotalStaked), p.LastUpdateTime, numeric(p.RewardPerTokenStored), p.IsActive,
		numeric(p.MaxStakePerUser), p.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgWriteFailed, "pool", err)
	}
	return id, nil
}

func (t *stateTx) GetPool(ctx context.Context, id int64) (*domain.StakingPool, error) {
	p, err := scanPool(t.tx.QueryRow(ctx, `SELECT `+poolColumns+` FROM staking_pools WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrPoolNotFound
	}
	if err != nil {
		return nil, fmt.Errorf(ErrMsgScanFailed, "pool", err)
	}
	return p, nil
}

// UpdatePool writes the mutable pool state; name, type and token are fixed at creation
func (t *stateTx) UpdatePool(ctx context.Context, p *domain.StakingPool) error {
	return t.execOne(ctx, domain.ErrPoolNotFound, `
		UPDATE staking_pools
		SET reward_rate = $2, lock_period_ns = $3, total_staked = $4, last_update_time = $5,
		    reward_per_token_stored = $6, is_active = $7, max_stake_per_user = $8
		WHERE id = $1`,
		p.ID, numeric(p.RewardRate), int64(p.LockPeriod), numeric(p.TotalStaked), p.LastUpdateTime,
		numeric(p.RewardPerTokenStored), p.IsActive, numeric(p.MaxStakePerUser))
}

func (t *stateTx) ListPools(ctx context.Context) ([]domain.StakingPool, error) {
	rows, err := t.tx.Query(ctx, `SELECT `+poolColumns+` FROM staking_pools ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgQueryFailed, "pools", err)
	}
	defer rows.Close()

	pools := []domain.StakingPool{}
	for rows.Next() {
		p, err := scanPool(rows)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgScanFailed, "pool", err)
		}
		pools = append(pools, *p)
	}
	return pools, rows.Err()
}

func (t *stateTx) GetStake(ctx context.Context, poolID int64, account common.Address) (*domain.UserStake, error) {
	var (
		s                     = domain.UserStake{PoolID: poolID, Account: account}
		amount, paid, rewards pgtype.Numeric
		ids                   []int64
	)
	err := t.tx.QueryRow(ctx, `
		SELECT amount, staked_at, lock_until, user_reward_per_token_paid, rewards, staked_token_ids
		FROM user_stakes WHERE pool_id = $1 AND account = $2`,
		poolID, account.Bytes()).Scan(&amount, &s.StakedAt, &s.LockUntil, &paid, &rewards, &ids)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.NewUserStake(poolID, account), nil
	}
	if err != nil {
		return nil, fmt.Errorf(ErrMsgScanFailed, "stake", err)
	}
	if err := bigInts(
		[]**big.Int{&s.Amount, &s.UserRewardPerTokenPaid, &s.Rewards},
		amount, paid, rewards,
	); err != nil {
		return nil, err
	}
	if len(ids) > 0 {
		s.StakedTokenIDs = ids
	}
	s.StakedAt = utc(s.StakedAt)
	s.LockUntil = utc(s.LockUntil)
	return &s, nil
}

func (t *stateTx) SaveStake(ctx context.Context, s *domain.UserStake) error {
	ids := s.StakedTokenIDs
	if ids == nil {
		ids = []int64{}
	}
	_, err := t.tx.Exec(ctx, `
		INSERT INTO user_stakes (pool_id, account, amount, staked_at, lock_until, user_reward_per_token_paid, rewards, staked_token_ids)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (pool_id, account) DO UPDATE SET
			amount = EXCLUDED.amount,
			staked_at = EXCLUDED.staked_at,
			lock_until = EXCLUDED.lock_until,
			user_reward_per_token_paid = EXCLUDED.user_reward_per_token_paid,
			rewards = EXCLUDED.rewards,
			staked_token_ids = EXCLUDED.staked_token_ids`,
		s.PoolID, s.Account.Bytes(), numeric(s.Amount), s.StakedAt, s.LockUntil,
		numeric(s.UserRewardPerTokenPaid), numeric(s.Rewards), ids)
	if err != nil {
		return fmt.Errorf(ErrMsgWriteFailed, "stake", err)
	}
	return nil
}

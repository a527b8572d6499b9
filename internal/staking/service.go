package staking

import (
	"context"
	"fmt"
	"math/big"
	"slices"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/osse101/LithosProtocol_Go/internal/access"
	"github.com/osse101/LithosProtocol_Go/internal/asset"
	"github.com/osse101/LithosProtocol_Go/internal/domain"
	"github.com/osse101/LithosProtocol_Go/internal/event"
	"github.com/osse101/LithosProtocol_Go/internal/ledger"
	"github.com/osse101/LithosProtocol_Go/internal/logger"
	"github.com/osse101/LithosProtocol_Go/internal/operation"
	"github.com/osse101/LithosProtocol_Go/internal/repository"
)

// Service is the reward accrual engine. Every stake, unstake and claim
// updates the pool accumulator and then settles the caller before touching
// the caller's position.
type Service interface {
	CreatePool(ctx context.Context, caller common.Address, req CreatePoolRequest) (*domain.StakingPool, error)
	SetPoolActive(ctx context.Context, caller common.Address, poolID int64, active bool) error
	GetPool(ctx context.Context, poolID int64) (*domain.StakingPool, error)
	ListPools(ctx context.Context) ([]domain.StakingPool, error)

	StakeTokens(ctx context.Context, caller common.Address, poolID int64, amount *big.Int) (*domain.UserStake, error)
	StakeNFT(ctx context.Context, caller common.Address, poolID, tokenID int64) (*domain.UserStake, error)
	UnstakeTokens(ctx context.Context, caller common.Address, poolID int64, amount *big.Int) (*domain.UserStake, error)
	UnstakeNFT(ctx context.Context, caller common.Address, poolID, tokenID int64) (*domain.UserStake, error)
	ClaimRewards(ctx context.Context, caller common.Address, poolID int64) (*big.Int, error)

	GetPendingRewards(ctx context.Context, poolID int64, account common.Address) (*big.Int, error)
	GetUserStake(ctx context.Context, poolID int64, account common.Address) (*domain.UserStake, error)
	GetUserStakedNFTs(ctx context.Context, poolID int64, account common.Address) ([]int64, error)
}

// Config binds the engine to its accounts
type Config struct {
	// RewardToken is minted to stakers on claim
	RewardToken common.Address
	// CustodyAccount holds staked fungible principal
	CustodyAccount common.Address
	// SystemAccount mints rewards and flags staked assets; it must hold
	// minter and staking_operator
	SystemAccount common.Address
}

// CreatePoolRequest describes a new pool
type CreatePoolRequest struct {
	Name         string
	PoolType     domain.PoolType
	StakingToken common.Address
	// RewardRate is 1e18-scaled reward base units per second per staked unit.
	// One NFT counts as one whole unit.
	RewardRate      *big.Int
	LockPeriod      time.Duration
	MaxStakePerUser *big.Int // token amount or NFT count, 0 = unlimited
}

type service struct {
	runner *operation.Runner
	cfg    Config
}

// NewService creates the staking service
func NewService(runner *operation.Runner, cfg Config) Service {
	return &service{runner: runner, cfg: cfg}
}

// CreatePool opens an active pool. caller must hold pool_manager.
func (s *service) CreatePool(ctx context.Context, caller common.Address, req CreatePoolRequest) (*domain.StakingPool, error) {
	var created *domain.StakingPool
	err := s.runner.Run(ctx, OpCreatePool, caller, true, func(ctx context.Context, op *operation.Op) error {
		if err := access.Require(ctx, op.Tx, domain.RolePoolManager, caller); err != nil {
			return err
		}
		if err := validatePool(req); err != nil {
			return err
		}

		p := &domain.StakingPool{
			Name:                 strings.TrimSpace(req.Name),
			PoolType:             req.PoolType,
			StakingToken:         req.StakingToken,
			RewardRate:           domain.CloneInt(req.RewardRate),
			LockPeriod:           req.LockPeriod,
			TotalStaked:          new(big.Int),
			LastUpdateTime:       op.Now,
			RewardPerTokenStored: new(big.Int),
			IsActive:             true,
			MaxStakePerUser:      domain.CloneInt(req.MaxStakePerUser),
			CreatedAt:            op.Now,
		}
		if p.PoolType == domain.PoolTypeNFT {
			p.StakingToken = common.Address{}
		}
		id, err := op.Tx.InsertPool(ctx, p)
		if err != nil {
			return err
		}
		p.ID = id
		created = p
		op.AfterCommit(func(ctx context.Context) {
			logger.FromContext(ctx).Info(LogMsgPoolCreated, "pool_id", id, "type", p.PoolType)
		})
		return op.Record(ctx, event.NewPoolCreatedEvent(p))
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func validatePool(req CreatePoolRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgPoolNameRequired)
	}
	if !req.PoolType.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidPoolType, req.PoolType)
	}
	if req.PoolType == domain.PoolTypeToken && req.StakingToken == (common.Address{}) {
		return fmt.Errorf("%w: %s", domain.ErrInvalidAddress, ErrMsgStakingTokenReq)
	}
	if req.RewardRate == nil || req.RewardRate.Sign() < 0 {
		return fmt.Errorf("%w: %s", domain.ErrInvalidAmount, ErrMsgNegativeRewardRate)
	}
	if req.LockPeriod < 0 {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgNegativeLock)
	}
	if req.MaxStakePerUser != nil && req.MaxStakePerUser.Sign() < 0 {
		return fmt.Errorf("%w: %s", domain.ErrInvalidAmount, ErrMsgNegativeMaxStake)
	}
	return nil
}

// SetPoolActive opens or closes a pool to new stakes. Unstaking and claiming
// stay available on inactive pools.
func (s *service) SetPoolActive(ctx context.Context, caller common.Address, poolID int64, active bool) error {
	return s.runner.Run(ctx, OpSetPoolActive, caller, true, func(ctx context.Context, op *operation.Op) error {
		if err := access.Require(ctx, op.Tx, domain.RolePoolManager, caller); err != nil {
			return err
		}
		p, err := op.Tx.GetPool(ctx, poolID)
		if err != nil {
			return err
		}
		updatePool(p, op.Now)
		p.IsActive = active
		if err := op.Tx.UpdatePool(ctx, p); err != nil {
			return err
		}
		return op.Record(ctx, event.NewStatusChangedEvent(event.PoolStatusChanged, poolID, active))
	})
}

// position loads the pool and the caller's stake, then runs the pool update
// and settlement that must precede any change to the position.
func position(ctx context.Context, op *operation.Op, poolID int64, account common.Address) (*domain.StakingPool, *domain.UserStake, error) {
	p, err := op.Tx.GetPool(ctx, poolID)
	if err != nil {
		return nil, nil, err
	}
	st, err := op.Tx.GetStake(ctx, poolID, account)
	if err != nil {
		return nil, nil, err
	}
	updatePool(p, op.Now)
	settle(p, st)
	return p, st, nil
}

func save(ctx context.Context, op *operation.Op, p *domain.StakingPool, st *domain.UserStake) error {
	if err := op.Tx.UpdatePool(ctx, p); err != nil {
		return err
	}
	return op.Tx.SaveStake(ctx, st)
}

func requireStakeable(p *domain.StakingPool, want domain.PoolType) error {
	if p.PoolType != want {
		return fmt.Errorf("%w: pool %d is %s", domain.ErrWrongPoolType, p.ID, p.PoolType)
	}
	if !p.IsActive {
		return fmt.Errorf("%w: %d", domain.ErrPoolInactive, p.ID)
	}
	return nil
}

func requireUnlocked(st *domain.UserStake, now time.Time) error {
	if now.Before(st.LockUntil) {
		return fmt.Errorf("%w: "+ErrMsgLockedUntilFmt, domain.ErrStakeLocked, st.LockUntil.Format(time.RFC3339))
	}
	return nil
}

// lock stamps a fresh stake; every new deposit restarts the lock
func lock(p *domain.StakingPool, st *domain.UserStake, now time.Time) {
	st.StakedAt = now
	st.LockUntil = now.Add(p.LockPeriod)
}

// StakeTokens moves amount of the pool's token from caller into custody
func (s *service) StakeTokens(ctx context.Context, caller common.Address, poolID int64, amount *big.Int) (*domain.UserStake, error) {
	var result *domain.UserStake
	err := s.runner.Run(ctx, OpStakeTokens, caller, true, func(ctx context.Context, op *operation.Op) error {
		if !domain.IsPositive(amount) {
			return domain.ErrInvalidAmount
		}
		p, st, err := position(ctx, op, poolID, caller)
		if err != nil {
			return err
		}
		if err := requireStakeable(p, domain.PoolTypeToken); err != nil {
			return err
		}
		next := new(big.Int).Add(st.Amount, amount)
		if domain.IsPositive(p.MaxStakePerUser) && next.Cmp(p.MaxStakePerUser) > 0 {
			return fmt.Errorf("%w: %s exceeds %s", domain.ErrMaxStakeExceeded, next, p.MaxStakePerUser)
		}

		if err := ledger.New(op.Tx, p.StakingToken).Transfer(ctx, caller, s.cfg.CustodyAccount, amount); err != nil {
			return err
		}
		st.Amount = next
		p.TotalStaked.Add(p.TotalStaked, amount)
		lock(p, st, op.Now)
		if err := save(ctx, op, p, st); err != nil {
			return err
		}
		result = st
		return op.Record(ctx, event.NewStakeEvent(event.TokensStaked, poolID, caller, amount, 0, st.LockUntil))
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// StakeNFT flags an owned asset as staked in an NFT pool. Ownership stays
// with caller; a staked asset cannot be transferred.
func (s *service) StakeNFT(ctx context.Context, caller common.Address, poolID, tokenID int64) (*domain.UserStake, error) {
	var result *domain.UserStake
	err := s.runner.Run(ctx, OpStakeNFT, caller, true, func(ctx context.Context, op *operation.Op) error {
		reg := asset.NewRegistry(op.Tx, op.Now)
		a, err := reg.Get(ctx, tokenID)
		if err != nil {
			return err
		}
		if a.Owner != caller {
			return fmt.Errorf("%w: token %d", domain.ErrNotAssetOwner, tokenID)
		}
		if a.IsStaked {
			return fmt.Errorf("%w: token %d", domain.ErrAssetStaked, tokenID)
		}
		p, st, err := position(ctx, op, poolID, caller)
		if err != nil {
			return err
		}
		if err := requireStakeable(p, domain.PoolTypeNFT); err != nil {
			return err
		}
		count := int64(len(st.StakedTokenIDs)) + 1
		if domain.IsPositive(p.MaxStakePerUser) && big.NewInt(count).Cmp(p.MaxStakePerUser) > 0 {
			return fmt.Errorf("%w: %d NFTs exceeds %s", domain.ErrMaxStakeExceeded, count, p.MaxStakePerUser)
		}

		if err := reg.SetStaked(ctx, s.cfg.SystemAccount, tokenID, true); err != nil {
			return err
		}
		st.StakedTokenIDs = append(st.StakedTokenIDs, tokenID)
		st.Amount.Add(st.Amount, nftWeight)
		p.TotalStaked.Add(p.TotalStaked, nftWeight)
		lock(p, st, op.Now)
		if err := save(ctx, op, p, st); err != nil {
			return err
		}
		result = st
		return op.Record(ctx, event.NewStakeEvent(event.NFTStaked, poolID, caller, nftWeight, tokenID, st.LockUntil))
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// UnstakeTokens returns amount of principal from custody once the lock expires
func (s *service) UnstakeTokens(ctx context.Context, caller common.Address, poolID int64, amount *big.Int) (*domain.UserStake, error) {
	var result *domain.UserStake
	err := s.runner.Run(ctx, OpUnstakeTokens, caller, true, func(ctx context.Context, op *operation.Op) error {
		if !domain.IsPositive(amount) {
			return domain.ErrInvalidAmount
		}
		p, st, err := position(ctx, op, poolID, caller)
		if err != nil {
			return err
		}
		if p.PoolType != domain.PoolTypeToken {
			return fmt.Errorf("%w: pool %d is %s", domain.ErrWrongPoolType, poolID, p.PoolType)
		}
		if err := requireUnlocked(st, op.Now); err != nil {
			return err
		}
		if st.Amount.Cmp(amount) < 0 {
			return fmt.Errorf("%w: staked %s, requested %s", domain.ErrInsufficientStake, st.Amount, amount)
		}

		st.Amount.Sub(st.Amount, amount)
		p.TotalStaked.Sub(p.TotalStaked, amount)
		if err := save(ctx, op, p, st); err != nil {
			return err
		}
		if err := ledger.New(op.Tx, p.StakingToken).Transfer(ctx, s.cfg.CustodyAccount, caller, amount); err != nil {
			return err
		}
		result = st
		return op.Record(ctx, event.NewStakeEvent(event.TokensUnstaked, poolID, caller, amount, 0, time.Time{}))
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// UnstakeNFT clears the staked flag of one of caller's staked assets once the lock expires
func (s *service) UnstakeNFT(ctx context.Context, caller common.Address, poolID, tokenID int64) (*domain.UserStake, error) {
	var result *domain.UserStake
	err := s.runner.Run(ctx, OpUnstakeNFT, caller, true, func(ctx context.Context, op *operation.Op) error {
		p, st, err := position(ctx, op, poolID, caller)
		if err != nil {
			return err
		}
		if p.PoolType != domain.PoolTypeNFT {
			return fmt.Errorf("%w: pool %d is %s", domain.ErrWrongPoolType, poolID, p.PoolType)
		}
		idx := slices.Index(st.StakedTokenIDs, tokenID)
		if idx < 0 {
			return fmt.Errorf("%w: token %d", domain.ErrTokenNotStaked, tokenID)
		}
		if err := requireUnlocked(st, op.Now); err != nil {
			return err
		}

		st.StakedTokenIDs = slices.Delete(st.StakedTokenIDs, idx, idx+1)
		st.Amount.Sub(st.Amount, nftWeight)
		p.TotalStaked.Sub(p.TotalStaked, nftWeight)
		if err := save(ctx, op, p, st); err != nil {
			return err
		}
		if err := asset.NewRegistry(op.Tx, op.Now).SetStaked(ctx, s.cfg.SystemAccount, tokenID, false); err != nil {
			return err
		}
		result = st
		return op.Record(ctx, event.NewStakeEvent(event.NFTUnstaked, poolID, caller, nftWeight, tokenID, time.Time{}))
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ClaimRewards mints caller's settled rewards. Rewards are created at claim
// time, not paid from a reserve.
func (s *service) ClaimRewards(ctx context.Context, caller common.Address, poolID int64) (*big.Int, error) {
	var claimed *big.Int
	err := s.runner.Run(ctx, OpClaimRewards, caller, true, func(ctx context.Context, op *operation.Op) error {
		p, st, err := position(ctx, op, poolID, caller)
		if err != nil {
			return err
		}
		if st.Rewards.Sign() <= 0 {
			return domain.ErrNoRewards
		}

		amount := st.Rewards
		st.Rewards = new(big.Int)
		if err := save(ctx, op, p, st); err != nil {
			return err
		}
		if err := ledger.New(op.Tx, s.cfg.RewardToken).Mint(ctx, s.cfg.SystemAccount, caller, amount); err != nil {
			return err
		}
		claimed = amount
		op.AfterCommit(func(ctx context.Context) {
			logger.FromContext(ctx).Info(LogMsgRewardsClaimed, "pool_id", poolID, "account", caller.Hex(), "amount", amount.String())
		})
		return op.Record(ctx, event.NewRewardsClaimedEvent(poolID, caller, amount))
	})
	if err != nil {
		return nil, err
	}
	return claimed, nil
}

// GetPendingRewards projects what a claim at the current time would pay
func (s *service) GetPendingRewards(ctx context.Context, poolID int64, account common.Address) (*big.Int, error) {
	var pending *big.Int
	err := s.runner.View(ctx, func(ctx context.Context, tx repository.StateTx, now time.Time) error {
		p, err := tx.GetPool(ctx, poolID)
		if err != nil {
			return err
		}
		st, err := tx.GetStake(ctx, poolID, account)
		if err != nil {
			return err
		}
		pending = pendingRewards(p, st, now)
		return nil
	})
	return pending, err
}

// GetUserStake returns account's raw position in a pool
func (s *service) GetUserStake(ctx context.Context, poolID int64, account common.Address) (*domain.UserStake, error) {
	var st *domain.UserStake
	err := s.runner.View(ctx, func(ctx context.Context, tx repository.StateTx, now time.Time) error {
		if _, err := tx.GetPool(ctx, poolID); err != nil {
			return err
		}
		var err error
		st, err = tx.GetStake(ctx, poolID, account)
		return err
	})
	return st, err
}

// GetUserStakedNFTs lists the token ids account has staked in a pool
func (s *service) GetUserStakedNFTs(ctx context.Context, poolID int64, account common.Address) ([]int64, error) {
	st, err := s.GetUserStake(ctx, poolID, account)
	if err != nil {
		return nil, err
	}
	if st.StakedTokenIDs == nil {
		return []int64{}, nil
	}
	return st.StakedTokenIDs, nil
}

// GetPool returns a pool by id
func (s *service) GetPool(ctx context.Context, poolID int64) (*domain.StakingPool, error) {
	var p *domain.StakingPool
	err := s.runner.View(ctx, func(ctx context.Context, tx repository.StateTx, now time.Time) error {
		var err error
		p, err = tx.GetPool(ctx, poolID)
		return err
	})
	return p, err
}

// ListPools returns every pool ordered by id
func (s *service) ListPools(ctx context.Context) ([]domain.StakingPool, error) {
	var pools []domain.StakingPool
	err := s.runner.View(ctx, func(ctx context.Context, tx repository.StateTx, now time.Time) error {
		var err error
		pools, err = tx.ListPools(ctx)
		return err
	})
	return pools, err
}

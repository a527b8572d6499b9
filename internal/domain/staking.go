package domain

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// PoolType selects what a staking pool accepts
type PoolType string

// Pool types
const (
	PoolTypeToken PoolType = "token"
	PoolTypeNFT   PoolType = "nft"
)

// Valid reports whether p is a known pool type
func (p PoolType) Valid() bool {
	return p == PoolTypeToken || p == PoolTypeNFT
}

// StakingPool is a reward pool with continuous per-second accrual.
// RewardRate is 1e18-scaled reward base units per second per staked unit.
type StakingPool struct {
	ID                   int64          `json:"id"`
	Name                 string         `json:"name"`
	PoolType             PoolType       `json:"pool_type"`
	StakingToken         common.Address `json:"staking_token"` // token pools only
	RewardRate           *big.Int       `json:"reward_rate"`
	LockPeriod           time.Duration  `json:"lock_period"`
	TotalStaked          *big.Int       `json:"total_staked"`
	LastUpdateTime       time.Time      `json:"last_update_time"`
	RewardPerTokenStored *big.Int       `json:"reward_per_token_stored"`
	IsActive             bool           `json:"is_active"`
	MaxStakePerUser      *big.Int       `json:"max_stake_per_user"` // 0 = unlimited
	CreatedAt            time.Time      `json:"created_at"`
}

// Clone returns a deep copy of the pool
func (p StakingPool) Clone() *StakingPool {
	p.RewardRate = CloneInt(p.RewardRate)
	p.TotalStaked = CloneInt(p.TotalStaked)
	p.RewardPerTokenStored = CloneInt(p.RewardPerTokenStored)
	p.MaxStakePerUser = CloneInt(p.MaxStakePerUser)
	return &p
}

// UserStake is one account's position in one pool
type UserStake struct {
	PoolID                 int64          `json:"pool_id"`
	Account                common.Address `json:"account"`
	Amount                 *big.Int       `json:"amount"`
	StakedAt               time.Time      `json:"staked_at"`
	LockUntil              time.Time      `json:"lock_until"`
	UserRewardPerTokenPaid *big.Int       `json:"user_reward_per_token_paid"`
	Rewards                *big.Int       `json:"rewards"`
	StakedTokenIDs         []int64        `json:"staked_token_ids,omitempty"`
}

// NewUserStake returns an empty position
func NewUserStake(poolID int64, account common.Address) *UserStake {
	return &UserStake{
		PoolID:                 poolID,
		Account:                account,
		Amount:                 new(big.Int),
		UserRewardPerTokenPaid: new(big.Int),
		Rewards:                new(big.Int),
	}
}

// Clone returns a deep copy of the stake
func (s UserStake) Clone() *UserStake {
	s.Amount = CloneInt(s.Amount)
	s.UserRewardPerTokenPaid = CloneInt(s.UserRewardPerTokenPaid)
	s.Rewards = CloneInt(s.Rewards)
	if s.StakedTokenIDs != nil {
		s.StakedTokenIDs = append([]int64(nil), s.StakedTokenIDs...)
	}
	return &s
}

// IsEmpty reports whether the position holds nothing and owes nothing
func (s *UserStake) IsEmpty() bool {
	return s.Amount.Sign() == 0 && s.Rewards.Sign() == 0 && len(s.StakedTokenIDs) == 0
}

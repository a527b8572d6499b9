package staking

import (
	"math/big"
	"time"

	"github.com/osse101/LithosProtocol_Go/internal/domain"
)

// nftWeight is the stake weight of one NFT: one whole unit, so rewardRate
// means reward base units per second per NFT.
var nftWeight = domain.Precision()

// updatePool advances the reward-per-token accumulator to now. An empty pool
// only moves its clock. The accumulator never decreases.
func updatePool(p *domain.StakingPool, now time.Time) {
	if !now.After(p.LastUpdateTime) {
		return
	}
	if p.TotalStaked.Sign() > 0 {
		elapsed := big.NewInt(now.Unix() - p.LastUpdateTime.Unix())
		p.RewardPerTokenStored.Add(p.RewardPerTokenStored, elapsed.Mul(elapsed, p.RewardRate))
	}
	p.LastUpdateTime = now
}

// settle credits s with rewards earned since its last settlement against an
// already updated pool.
func settle(p *domain.StakingPool, s *domain.UserStake) {
	delta := new(big.Int).Sub(p.RewardPerTokenStored, s.UserRewardPerTokenPaid)
	owed := delta.Mul(delta, s.Amount)
	owed.Quo(owed, domain.Precision())
	s.Rewards.Add(s.Rewards, owed)
	s.UserRewardPerTokenPaid = domain.CloneInt(p.RewardPerTokenStored)
}

// pendingRewards projects what settle would yield at now without mutating
// p or s.
func pendingRewards(p *domain.StakingPool, s *domain.UserStake, now time.Time) *big.Int {
	pool := p.Clone()
	stake := s.Clone()
	updatePool(pool, now)
	settle(pool, stake)
	return stake.Rewards
}

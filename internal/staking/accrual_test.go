package staking

import (
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"

	"github.com/osse101/LithosProtocol_Go/internal/domain"
)

func newPool(rate *big.Int, at time.Time) *domain.StakingPool {
	return &domain.StakingPool{
		ID:                   1,
		PoolType:             domain.PoolTypeToken,
		RewardRate:           rate,
		TotalStaked:          new(big.Int),
		RewardPerTokenStored: new(big.Int),
		LastUpdateTime:       at,
		MaxStakePerUser:      new(big.Int),
	}
}

func TestUpdatePool_EmptyPoolDoesNotAccrue(t *testing.T) {
	t0 := time.Unix(1_000, 0)
	p := newPool(big.NewInt(5), t0)

	updatePool(p, t0.Add(100*time.Second))
	assert.Equal(t, 0, p.RewardPerTokenStored.Sign())
	assert.Equal(t, t0.Add(100*time.Second), p.LastUpdateTime)
}

func TestUpdatePool_IgnoresTimeGoingBackwards(t *testing.T) {
	t0 := time.Unix(1_000, 0)
	p := newPool(big.NewInt(5), t0)
	p.TotalStaked = big.NewInt(1)

	updatePool(p, t0.Add(-time.Second))
	assert.Equal(t, 0, p.RewardPerTokenStored.Sign())
	assert.Equal(t, t0, p.LastUpdateTime)
}

func TestSettle_TwoStakersShareByWeight(t *testing.T) {
	t0 := time.Unix(1_000, 0)
	// 1e16 per unit per second: 100 tokens earn 1 token per second
	rate := new(big.Int).Exp(big.NewInt(10), big.NewInt(16), nil)
	p := newPool(rate, t0)

	a := domain.NewUserStake(1, common.HexToAddress("0x01"))
	b := domain.NewUserStake(1, common.HexToAddress("0x02"))

	a.Amount = domain.Tokens(100)
	p.TotalStaked = domain.Tokens(100)

	// 10s alone
	updatePool(p, t0.Add(10*time.Second))
	settle(p, a)
	assert.Equal(t, domain.Tokens(10), a.Rewards)

	// b joins with 300 tokens
	settle(p, b)
	b.Amount = domain.Tokens(300)
	p.TotalStaked = domain.Tokens(400)

	updatePool(p, t0.Add(20*time.Second))
	settle(p, a)
	settle(p, b)
	assert.Equal(t, domain.Tokens(20), a.Rewards)
	assert.Equal(t, domain.Tokens(30), b.Rewards)
}

func TestPendingRewards_MatchesSettlementWithoutMutation(t *testing.T) {
	t0 := time.Unix(1_000, 0)
	p := newPool(big.NewInt(3), t0)
	s := domain.NewUserStake(1, common.HexToAddress("0x01"))
	s.Amount = domain.Tokens(2)
	p.TotalStaked = domain.Tokens(2)

	now := t0.Add(50 * time.Second)
	projected := pendingRewards(p, s, now)
	assert.Equal(t, 0, p.RewardPerTokenStored.Sign())
	assert.Equal(t, 0, s.Rewards.Sign())

	updatePool(p, now)
	settle(p, s)
	assert.Equal(t, projected, s.Rewards)
	assert.Equal(t, big.NewInt(2*3*50), s.Rewards)
}

func TestAccrual_ConservationIndependentOfCheckpoints(t *testing.T) {
	t0 := time.Unix(1_000, 0)
	rate := big.NewInt(7)
	amount := domain.Tokens(3)

	run := func(checkpoints []int64) *big.Int {
		p := newPool(rate, t0)
		s := domain.NewUserStake(1, common.HexToAddress("0x01"))
		s.Amount = domain.CloneInt(amount)
		p.TotalStaked = domain.CloneInt(amount)
		for _, sec := range checkpoints {
			updatePool(p, t0.Add(time.Duration(sec)*time.Second))
			settle(p, s)
		}
		return s.Rewards
	}

	once := run([]int64{1000})
	many := run([]int64{1, 2, 3, 250, 251, 999, 1000})
	assert.Equal(t, once, many)

	// A × R × Δt with R = rate / 1e18
	assert.Equal(t, big.NewInt(3*7*1000), once)
}

func BenchmarkUpdateAndSettle(b *testing.B) {
	t0 := time.Unix(1_000, 0)
	p := newPool(big.NewInt(1_000_000), t0)
	s := domain.NewUserStake(1, common.HexToAddress("0x01"))
	s.Amount = domain.Tokens(1000)
	p.TotalStaked = domain.Tokens(1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		updatePool(p, t0.Add(time.Duration(i+1)*time.Second))
		settle(p, s)
	}
}

package game

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"

	"github.com/osse101/LithosProtocol_Go/internal/domain"
	"github.com/osse101/LithosProtocol_Go/internal/metrics"
	"github.com/osse101/LithosProtocol_Go/internal/operation"
)

// rewardAmount scales a base reward by the balancing policy and counts it
// against today's minted total. The returned amount is what must be minted.
func (s *service) rewardAmount(ctx context.Context, op *operation.Op, base *big.Int, recipients int64) (*big.Int, error) {
	day := domain.DayBucket(op.Now)
	m, err := op.Tx.GetDailyMetrics(ctx, day)
	if err != nil {
		return nil, err
	}
	supply, err := s.utility(op.Tx).TotalSupply(ctx)
	if err != nil {
		return nil, err
	}

	amount := s.policy.ScaleReward(base, supply, m.Minted)
	m.Minted.Add(m.Minted, new(big.Int).Mul(amount, big.NewInt(recipients)))
	if err := op.Tx.SaveDailyMetrics(ctx, m); err != nil {
		return nil, err
	}
	s.reportEconomy(op, m, supply)
	return amount, nil
}

// costAmount scales a base cost by the balancing policy and counts one
// priced action for today.
func (s *service) costAmount(ctx context.Context, op *operation.Op, base *big.Int) (*big.Int, error) {
	day := domain.DayBucket(op.Now)
	m, err := op.Tx.GetDailyMetrics(ctx, day)
	if err != nil {
		return nil, err
	}

	amount := s.policy.ScaleCost(base, m.Actions)
	m.Actions++
	if err := op.Tx.SaveDailyMetrics(ctx, m); err != nil {
		return nil, err
	}
	supply, err := s.utility(op.Tx).TotalSupply(ctx)
	if err != nil {
		return nil, err
	}
	s.reportEconomy(op, m, supply)
	return amount, nil
}

// mint credits amount of utility to to through the system account.
// A zero amount mints nothing.
func (s *service) mint(ctx context.Context, op *operation.Op, to common.Address, amount *big.Int) error {
	if amount.Sign() == 0 {
		return nil
	}
	return s.utility(op.Tx).Mint(ctx, s.cfg.SystemAccount, to, amount)
}

// burn debits amount of utility from holder through the system account.
// A zero amount burns nothing.
func (s *service) burn(ctx context.Context, op *operation.Op, holder common.Address, amount *big.Int) error {
	if amount.Sign() == 0 {
		return nil
	}
	return s.utility(op.Tx).BurnFrom(ctx, s.cfg.SystemAccount, holder, amount)
}

// reportEconomy publishes the day's counters and multipliers once committed
func (s *service) reportEconomy(op *operation.Op, m *domain.DailyMetrics, supply *big.Int) {
	snapshot := m.Clone()
	supply = domain.CloneInt(supply)
	op.AfterCommit(func(context.Context) {
		metrics.DailyMinted.Set(decimal.NewFromBigInt(snapshot.Minted, -domain.TokenDecimals).InexactFloat64())
		metrics.DailyActions.Set(float64(snapshot.Actions))
		metrics.RewardMultiplier.Set(s.policy.RewardMultiplier(supply, snapshot.Minted).InexactFloat64())
		metrics.CostMultiplier.Set(s.policy.CostMultiplier(snapshot.Actions).InexactFloat64())
	})
}

package balancing

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// Config tunes the balancing policy
type Config struct {
	Enabled bool

	// DailyInflationBps is the share of utility supply that may be minted as
	// rewards per day, in basis points
	DailyInflationBps int64
	// MinRewardMultiplier floors the reward multiplier once the budget is spent
	MinRewardMultiplier decimal.Decimal

	// TargetDailyActions is the priced-action volume at which costs are unscaled
	TargetDailyActions int64
	// PriceElasticity scales how far costs move per unit of demand deviation
	PriceElasticity    decimal.Decimal
	MinPriceMultiplier decimal.Decimal
	MaxPriceMultiplier decimal.Decimal
}

// DefaultConfig returns the disabled policy with conservative tuning
func DefaultConfig() Config {
	return Config{
		Enabled:             false,
		DailyInflationBps:   DefaultDailyInflationBps,
		MinRewardMultiplier: decimal.RequireFromString(DefaultMinRewardMultiplier),
		TargetDailyActions:  DefaultTargetDailyActions,
		PriceElasticity:     decimal.RequireFromString(DefaultPriceElasticity),
		MinPriceMultiplier:  decimal.RequireFromString(DefaultMinPriceMultiplier),
		MaxPriceMultiplier:  decimal.RequireFromString(DefaultMaxPriceMultiplier),
	}
}

// Policy modulates reward and cost amounts from daily economy metrics.
// A disabled policy returns every amount unchanged.
type Policy struct {
	cfg Config
}

// NewPolicy creates a policy from cfg
func NewPolicy(cfg Config) *Policy {
	return &Policy{cfg: cfg}
}

// Enabled reports whether the policy modifies amounts
func (p *Policy) Enabled() bool {
	return p != nil && p.cfg.Enabled
}

var (
	one = decimal.NewFromInt(1)
	bps = decimal.NewFromInt(10000)
)

// DailyBudget returns supply × dailyInflationBps / 10000, truncated
func (p *Policy) DailyBudget(supply *big.Int) *big.Int {
	d := decimal.NewFromBigInt(supply, 0).
		Mul(decimal.NewFromInt(p.cfg.DailyInflationBps)).
		Div(bps)
	return d.BigInt()
}

// RewardMultiplier is clamp((budget − mintedToday) / budget, minRewardMultiplier, 1).
// An empty budget yields 1 so a fresh economy can bootstrap.
func (p *Policy) RewardMultiplier(supply, mintedToday *big.Int) decimal.Decimal {
	if !p.Enabled() {
		return one
	}
	budget := p.DailyBudget(supply)
	if budget.Sign() <= 0 {
		return one
	}
	b := decimal.NewFromBigInt(budget, 0)
	remaining := b.Sub(decimal.NewFromBigInt(mintedToday, 0))
	return clamp(remaining.Div(b), p.cfg.MinRewardMultiplier, one)
}

// CostMultiplier is clamp(1 + elasticity × (actionsToday / target − 1), minPrice, maxPrice)
func (p *Policy) CostMultiplier(actionsToday int64) decimal.Decimal {
	if !p.Enabled() || p.cfg.TargetDailyActions <= 0 {
		return one
	}
	demand := decimal.NewFromInt(actionsToday).Div(decimal.NewFromInt(p.cfg.TargetDailyActions))
	m := one.Add(p.cfg.PriceElasticity.Mul(demand.Sub(one)))
	return clamp(m, p.cfg.MinPriceMultiplier, p.cfg.MaxPriceMultiplier)
}

// ScaleReward applies the reward multiplier to base
func (p *Policy) ScaleReward(base, supply, mintedToday *big.Int) *big.Int {
	return Apply(base, p.RewardMultiplier(supply, mintedToday))
}

// ScaleCost applies the cost multiplier to base
func (p *Policy) ScaleCost(base *big.Int, actionsToday int64) *big.Int {
	return Apply(base, p.CostMultiplier(actionsToday))
}

// Apply returns amount × m truncated to whole base units
func Apply(amount *big.Int, m decimal.Decimal) *big.Int {
	if amount == nil {
		return new(big.Int)
	}
	if m.Equal(one) {
		return new(big.Int).Set(amount)
	}
	return decimal.NewFromBigInt(amount, 0).Mul(m).BigInt()
}

func clamp(v, lo, hi decimal.Decimal) decimal.Decimal {
	return decimal.Min(decimal.Max(v, lo), hi)
}

package bootstrap

import (
	"embed"
	"encoding/json"
	"fmt"
	"math/big"
	"os"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/osse101/LithosProtocol_Go/internal/balancing"
	"github.com/osse101/LithosProtocol_Go/internal/domain"
	"github.com/osse101/LithosProtocol_Go/internal/validation"
)

//go:embed schema/*.json
var schemaFS embed.FS

var seedSchemas = validation.NewSchemaValidator(schemaFS)

// Amount is a decimal quantity written either as a YAML string or number.
// Token amounts are in whole tokens and converted to base units on apply.
type Amount string

// UnmarshalYAML keeps the scalar text so precision is never lost to floats
func (a *Amount) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf(ErrMsgAmountNotScalar, node.Line)
	}
	*a = Amount(node.Value)
	return nil
}

// Tokens converts a whole-token amount to base units. Fractions finer than
// one base unit are rejected.
func (a Amount) Tokens() (*big.Int, error) {
	return a.scaled(domain.TokenDecimals)
}

// Count parses a plain non-negative integer
func (a Amount) Count() (*big.Int, error) {
	return a.scaled(0)
}

func (a Amount) scaled(exp int32) (*big.Int, error) {
	if a == "" {
		return new(big.Int), nil
	}
	d, err := decimal.NewFromString(string(a))
	if err != nil {
		return nil, fmt.Errorf(ErrMsgInvalidAmount, a, err)
	}
	d = d.Shift(exp)
	if d.IsNegative() || !d.IsInteger() {
		return nil, fmt.Errorf(ErrMsgAmountPrecision, a)
	}
	return d.BigInt(), nil
}

// Seed is the economy configuration applied to an empty store on first boot
type Seed struct {
	Version   int            `yaml:"version"`
	Game      GameSeed       `yaml:"game"`
	Balancing *BalancingSeed `yaml:"balancing"`
	Roles     []RoleSeed     `yaml:"roles"`
	Resources []ResourceSeed `yaml:"resources"`
	Quests    []QuestSeed    `yaml:"quests"`
	Pools     []PoolSeed     `yaml:"pools"`
}

// GameSeed holds the initial game configuration, in whole tokens
type GameSeed struct {
	DailyQuestReward   Amount `yaml:"daily_quest_reward"`
	PvPWinReward       Amount `yaml:"pvp_win_reward"`
	LeaderboardReward  Amount `yaml:"leaderboard_reward"`
	CraftingCost       Amount `yaml:"crafting_cost"`
	RepairCost         Amount `yaml:"repair_cost"`
	TournamentEntryFee Amount `yaml:"tournament_entry_fee"`
}

// BalancingSeed overrides the balancing defaults. Omitted fields keep them.
type BalancingSeed struct {
	Enabled             bool   `yaml:"enabled"`
	DailyInflationBps   int64  `yaml:"daily_inflation_bps"`
	MinRewardMultiplier Amount `yaml:"min_reward_multiplier"`
	TargetDailyActions  int64  `yaml:"target_daily_actions"`
	PriceElasticity     Amount `yaml:"price_elasticity"`
	MinPriceMultiplier  Amount `yaml:"min_price_multiplier"`
	MaxPriceMultiplier  Amount `yaml:"max_price_multiplier"`
}

// RoleSeed grants an extra role on first boot
type RoleSeed struct {
	Role    domain.Role `yaml:"role"`
	Account string      `yaml:"account"`
}

// ResourceSeed registers a resource type
type ResourceSeed struct {
	Name      string                  `yaml:"name"`
	Category  domain.ResourceCategory `yaml:"category"`
	Rarity    int                     `yaml:"rarity"`
	MaxSupply int64                   `yaml:"max_supply"`
}

// QuestSeed creates a quest
type QuestSeed struct {
	Name          string `yaml:"name"`
	Description   string `yaml:"description"`
	Reward        Amount `yaml:"reward"`
	RequiredLevel int    `yaml:"required_level"`
	Daily         bool   `yaml:"daily"`
}

// PoolSeed creates a staking pool. Token pools stake the governance token
// unless StakingToken is set. RewardRate is reward tokens per staked unit
// per second; MaxStakePerUser is whole tokens, or an NFT count for nft pools.
type PoolSeed struct {
	Name            string          `yaml:"name"`
	Type            domain.PoolType `yaml:"type"`
	StakingToken    string          `yaml:"staking_token"`
	RewardRate      Amount          `yaml:"reward_rate"`
	LockPeriod      string          `yaml:"lock_period"`
	MaxStakePerUser Amount          `yaml:"max_stake_per_user"`
}

// LoadSeed reads and validates the economy seed at path
func LoadSeed(path string) (*Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadSeed, path, err)
	}
	return ParseSeed(data)
}

// ParseSeed validates data against the economy schema and decodes it
func ParseSeed(data []byte) (*Seed, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf(ErrMsgDecodeSeed, err)
	}
	if err := validateSeedDocument(doc); err != nil {
		return nil, err
	}

	var seed Seed
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf(ErrMsgDecodeSeed, err)
	}
	if _, err := seed.GameConfig(); err != nil {
		return nil, err
	}
	if _, err := seed.BalancingConfig(); err != nil {
		return nil, err
	}
	for _, p := range seed.Pools {
		if _, err := p.lockPeriod(); err != nil {
			return nil, err
		}
	}
	return &seed, nil
}

// validateSeedDocument checks the YAML tree against the embedded schema
// by way of its JSON encoding
func validateSeedDocument(doc any) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf(ErrMsgDecodeSeed, err)
	}
	if err := seedSchemas.ValidateBytes(raw, SeedSchemaName); err != nil {
		return fmt.Errorf(ErrMsgInvalidSeed, err)
	}
	return nil
}

// GameConfig converts the game section to base units
func (s *Seed) GameConfig() (domain.GameConfig, error) {
	var cfg domain.GameConfig
	fields := []struct {
		in  Amount
		out **big.Int
	}{
		{s.Game.DailyQuestReward, &cfg.DailyQuestReward},
		{s.Game.PvPWinReward, &cfg.PvPWinReward},
		{s.Game.LeaderboardReward, &cfg.LeaderboardReward},
		{s.Game.CraftingCost, &cfg.CraftingCost},
		{s.Game.RepairCost, &cfg.RepairCost},
		{s.Game.TournamentEntryFee, &cfg.TournamentEntryFee},
	}
	for _, f := range fields {
		v, err := f.in.Tokens()
		if err != nil {
			return domain.GameConfig{}, err
		}
		*f.out = v
	}
	return cfg, nil
}

// BalancingConfig returns the balancing policy configuration, starting from
// the package defaults
func (s *Seed) BalancingConfig() (balancing.Config, error) {
	cfg := balancing.DefaultConfig()
	b := s.Balancing
	if b == nil {
		return cfg, nil
	}

	cfg.Enabled = b.Enabled
	if b.DailyInflationBps > 0 {
		cfg.DailyInflationBps = b.DailyInflationBps
	}
	if b.TargetDailyActions > 0 {
		cfg.TargetDailyActions = b.TargetDailyActions
	}
	decimals := []struct {
		in  Amount
		out *decimal.Decimal
	}{
		{b.MinRewardMultiplier, &cfg.MinRewardMultiplier},
		{b.PriceElasticity, &cfg.PriceElasticity},
		{b.MinPriceMultiplier, &cfg.MinPriceMultiplier},
		{b.MaxPriceMultiplier, &cfg.MaxPriceMultiplier},
	}
	for _, d := range decimals {
		if d.in == "" {
			continue
		}
		v, err := decimal.NewFromString(string(d.in))
		if err != nil {
			return balancing.Config{}, fmt.Errorf(ErrMsgInvalidAmount, d.in, err)
		}
		*d.out = v
	}
	if cfg.MinPriceMultiplier.GreaterThan(cfg.MaxPriceMultiplier) {
		return balancing.Config{}, fmt.Errorf(ErrMsgPriceBounds, cfg.MinPriceMultiplier, cfg.MaxPriceMultiplier)
	}
	return cfg, nil
}

func (p PoolSeed) lockPeriod() (time.Duration, error) {
	if p.LockPeriod == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(p.LockPeriod)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgInvalidLockPeriod, p.Name, err)
	}
	return d, nil
}

// stakingToken resolves the staked token, defaulting token pools to fallback
func (p PoolSeed) stakingToken(fallback common.Address) common.Address {
	if p.Type == domain.PoolTypeNFT {
		return common.Address{}
	}
	if p.StakingToken != "" {
		return common.HexToAddress(p.StakingToken)
	}
	return fallback
}

// maxStake converts the per-user cap into pool units
func (p PoolSeed) maxStake() (*big.Int, error) {
	if p.Type == domain.PoolTypeNFT {
		return p.MaxStakePerUser.Count()
	}
	return p.MaxStakePerUser.Tokens()
}

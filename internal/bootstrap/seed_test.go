package bootstrap

import (
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/LithosProtocol_Go/internal/balancing"
	"github.com/osse101/LithosProtocol_Go/internal/domain"
)

const minimalSeed = `
version: 1
game:
  daily_quest_reward: "10"
  pvp_win_reward: 5
  leaderboard_reward: "100.5"
  crafting_cost: "50"
  repair_cost: "0"
  tournament_entry_fee: "20"
`

func TestParseSeed_Minimal(t *testing.T) {
	seed, err := ParseSeed([]byte(minimalSeed))
	require.NoError(t, err)
	assert.Equal(t, 1, seed.Version)

	cfg, err := seed.GameConfig()
	require.NoError(t, err)
	assert.Equal(t, domain.Tokens(10), cfg.DailyQuestReward)
	assert.Equal(t, domain.Tokens(5), cfg.PvPWinReward)
	assert.Equal(t, "100500000000000000000", cfg.LeaderboardReward.String())
	assert.Equal(t, 0, cfg.RepairCost.Sign())

	bal, err := seed.BalancingConfig()
	require.NoError(t, err)
	assert.Equal(t, balancing.DefaultConfig(), bal)
}

func TestParseSeed_ShippedConfig(t *testing.T) {
	seed, err := LoadSeed("../../configs/economy.yaml")
	require.NoError(t, err)

	assert.Len(t, seed.Resources, 5)
	assert.Len(t, seed.Quests, 3)
	require.Len(t, seed.Pools, 2)

	lock, err := seed.Pools[0].lockPeriod()
	require.NoError(t, err)
	assert.Equal(t, 168*time.Hour, lock)

	capacity, err := seed.Pools[1].maxStake()
	require.NoError(t, err)
	assert.Equal(t, int64(10), capacity.Int64(), "nft caps are counts")
}

func TestParseSeed_Rejects(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"NotYAML", "version: [1"},
		{"MissingGame", "version: 1\n"},
		{"UnknownField", minimalSeed + "extra: true\n"},
		{"NegativeAmount", `
version: 1
game: {daily_quest_reward: "-1", pvp_win_reward: "5", leaderboard_reward: "1", crafting_cost: "1", repair_cost: "1", tournament_entry_fee: "1"}
`},
		{"TooPrecise", `
version: 1
game: {daily_quest_reward: "0.0000000000000000001", pvp_win_reward: "5", leaderboard_reward: "1", crafting_cost: "1", repair_cost: "1", tournament_entry_fee: "1"}
`},
		{"BadRole", minimalSeed + "roles: [{role: emperor, account: \"0x00000000000000000000000000000000000000ad\"}]\n"},
		{"BadAddress", minimalSeed + "roles: [{role: oracle, account: \"0x12\"}]\n"},
		{"BadCategory", minimalSeed + "resources: [{name: Slime, category: goo, rarity: 1}]\n"},
		{"RarityOutOfRange", minimalSeed + "resources: [{name: Slime, category: herb, rarity: 6}]\n"},
		{"BadPoolType", minimalSeed + "pools: [{name: p, type: land, reward_rate: \"1\"}]\n"},
		{"BadLockPeriod", minimalSeed + "pools: [{name: p, type: token, reward_rate: \"1\", lock_period: \"7d\"}]\n"},
		{"InvertedPriceBounds", minimalSeed + "balancing: {min_price_multiplier: \"3\", max_price_multiplier: \"2\"}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSeed([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestBalancingConfig_Overrides(t *testing.T) {
	seed, err := ParseSeed([]byte(minimalSeed + `
balancing:
  enabled: true
  daily_inflation_bps: 120
  price_elasticity: "0.75"
`))
	require.NoError(t, err)

	cfg, err := seed.BalancingConfig()
	require.NoError(t, err)
	defaults := balancing.DefaultConfig()

	assert.True(t, cfg.Enabled)
	assert.Equal(t, int64(120), cfg.DailyInflationBps)
	assert.True(t, decimal.RequireFromString("0.75").Equal(cfg.PriceElasticity))
	assert.Equal(t, defaults.TargetDailyActions, cfg.TargetDailyActions)
	assert.True(t, defaults.MaxPriceMultiplier.Equal(cfg.MaxPriceMultiplier))
}

func TestAmount(t *testing.T) {
	tests := []struct {
		in      Amount
		tokens  string
		wantErr bool
	}{
		{"", "0", false},
		{"1", "1000000000000000000", false},
		{"0.000001", "1000000000000", false},
		{"0.000000000000000001", "1", false},
		{"1e3", "1000000000000000000000", false},
		{"-2", "", true},
		{"abc", "", true},
	}
	for _, tt := range tests {
		t.Run(string(tt.in), func(t *testing.T) {
			got, err := tt.in.Tokens()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.tokens, got.String())
		})
	}

	_, err := Amount("1.5").Count()
	assert.Error(t, err)
}

func TestPoolSeed_StakingToken(t *testing.T) {
	gov := common.HexToAddress("0x0000000000000000000000000000000000006060")
	custom := "0x0000000000000000000000000000000000001234"

	assert.Equal(t, gov, PoolSeed{Type: domain.PoolTypeToken}.stakingToken(gov))
	assert.Equal(t, common.HexToAddress(custom), PoolSeed{Type: domain.PoolTypeToken, StakingToken: custom}.stakingToken(gov))
	assert.Equal(t, common.Address{}, PoolSeed{Type: domain.PoolTypeNFT, StakingToken: custom}.stakingToken(gov))
}

package domain

import (
	"math/big"
	"time"
)

// PvPWinXP is the experience granted to the winner of a recorded PvP match
const PvPWinXP = 10

// CraftXPPerRarity is the experience granted per rarity point of a crafted item
const CraftXPPerRarity = 5

// GameConfig holds the live economic constants of the game.
// It is replaced wholesale; Version increments on every replacement.
type GameConfig struct {
	Version            int64     `json:"version"`
	DailyQuestReward   *big.Int  `json:"daily_quest_reward"`
	PvPWinReward       *big.Int  `json:"pvp_win_reward"`
	LeaderboardReward  *big.Int  `json:"leaderboard_reward"`
	CraftingCost       *big.Int  `json:"crafting_cost"`
	RepairCost         *big.Int  `json:"repair_cost"`
	TournamentEntryFee *big.Int  `json:"tournament_entry_fee"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// DefaultGameConfig returns the configuration used before a game master sets one
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Version:            0,
		DailyQuestReward:   Tokens(10),
		PvPWinReward:       Tokens(5),
		LeaderboardReward:  Tokens(100),
		CraftingCost:       Tokens(50),
		RepairCost:         Tokens(10),
		TournamentEntryFee: Tokens(20),
	}
}

// Clone returns a deep copy of the configuration
func (c GameConfig) Clone() *GameConfig {
	c.DailyQuestReward = CloneInt(c.DailyQuestReward)
	c.PvPWinReward = CloneInt(c.PvPWinReward)
	c.LeaderboardReward = CloneInt(c.LeaderboardReward)
	c.CraftingCost = CloneInt(c.CraftingCost)
	c.RepairCost = CloneInt(c.RepairCost)
	c.TournamentEntryFee = CloneInt(c.TournamentEntryFee)
	return &c
}

// Validate checks that no configured amount is negative
func (c *GameConfig) Validate() error {
	for _, v := range []*big.Int{c.DailyQuestReward, c.PvPWinReward, c.LeaderboardReward, c.CraftingCost, c.RepairCost, c.TournamentEntryFee} {
		if v == nil || v.Sign() < 0 {
			return ErrInvalidConfig
		}
	}
	return nil
}

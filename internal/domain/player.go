package domain

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// Player is a registered game account
type Player struct {
	Address      common.Address `json:"address"`
	Level        int            `json:"level"`
	Experience   int64          `json:"experience"`
	LastDailyDay int64          `json:"last_daily_day"` // last daily bucket a daily quest was completed in
	PvPWins      int64          `json:"pvp_wins"`
	PvPLosses    int64          `json:"pvp_losses"`
	IsActive     bool           `json:"is_active"`
	RegisteredAt time.Time      `json:"registered_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// NewPlayer returns a freshly registered player at level 1
func NewPlayer(addr common.Address, now time.Time) *Player {
	return &Player{
		Address:      addr,
		Level:        MinLevel,
		Experience:   0,
		LastDailyDay: -1,
		IsActive:     true,
		RegisteredAt: now,
		UpdatedAt:    now,
	}
}

// PlayerData is the read-only snapshot returned to clients
type PlayerData struct {
	Player
	NextLevelXP    int64  `json:"next_level_xp"` // 0 once the level cap is reached
	UtilityBalance string `json:"utility_balance"`
}

// Level bounds
const (
	MinLevel = 1
	MaxLevel = 100
)

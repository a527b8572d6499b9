package domain

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// Quest is a game-master defined task paying a fixed utility reward
type Quest struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	RewardAmount  *big.Int  `json:"reward_amount"` // base units, captured at creation
	RequiredLevel int       `json:"required_level"`
	IsActive      bool      `json:"is_active"`
	IsDaily       bool      `json:"is_daily"`
	CreatedAt     time.Time `json:"created_at"`
}

// Clone returns a deep copy of the quest
func (q Quest) Clone() *Quest {
	q.RewardAmount = CloneInt(q.RewardAmount)
	return &q
}

// QuestCompletion is the outcome of a successful quest completion
type QuestCompletion struct {
	QuestID      int64          `json:"quest_id"`
	Player       common.Address `json:"player"`
	Reward       *big.Int       `json:"reward"`
	XPGained     int64          `json:"xp_gained"`
	NewXP        int64          `json:"new_xp"`
	OldLevel     int            `json:"old_level"`
	NewLevel     int            `json:"new_level"`
	DayBucket    int64          `json:"day_bucket,omitempty"`
	CompletedAt  time.Time      `json:"completed_at"`
	LeveledUp    bool           `json:"leveled_up"`
	IsDailyQuest bool           `json:"is_daily"`
}

// TournamentEntry records a paid tournament registration
type TournamentEntry struct {
	TournamentID int64          `json:"tournament_id"`
	Player       common.Address `json:"player"`
	Fee          *big.Int       `json:"fee"`
	EnteredAt    time.Time      `json:"entered_at"`
}

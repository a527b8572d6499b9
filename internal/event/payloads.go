package event

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/osse101/LithosProtocol_Go/internal/domain"
)

// Event types. Values mirror the domain constants so the audit log and the
// bus share one vocabulary.
const (
	Any Type = "*"

	PlayerRegistered Type = domain.EventTypePlayerRegistered
	PlayerLeveledUp  Type = domain.EventTypePlayerLeveledUp

	QuestCreated       Type = domain.EventTypeQuestCreated
	QuestStatusChanged Type = domain.EventTypeQuestStatusChanged
	QuestCompleted     Type = domain.EventTypeQuestCompleted

	PvPResultRecorded Type = domain.EventTypePvPResultRecorded

	ItemCrafted  Type = domain.EventTypeItemCrafted
	ItemRepaired Type = domain.EventTypeItemRepaired
	AssetLeveled Type = domain.EventTypeAssetLeveled

	TournamentEntered  Type = domain.EventTypeTournamentEntered
	LeaderboardRewards Type = domain.EventTypeLeaderboardRewards

	GameConfigUpdated Type = domain.EventTypeGameConfigUpdated
	SystemPaused      Type = domain.EventTypeSystemPaused
	SystemUnpaused    Type = domain.EventTypeSystemUnpaused

	ResourceTypeCreated   Type = domain.EventTypeResourceTypeCreated
	ResourceStatusChanged Type = domain.EventTypeResourceStatusChanged
	ResourcesMinted       Type = domain.EventTypeResourcesMinted

	PoolCreated       Type = domain.EventTypePoolCreated
	PoolStatusChanged Type = domain.EventTypePoolStatusChanged
	TokensStaked      Type = domain.EventTypeTokensStaked
	TokensUnstaked    Type = domain.EventTypeTokensUnstaked
	NFTStaked         Type = domain.EventTypeNFTStaked
	NFTUnstaked       Type = domain.EventTypeNFTUnstaked
	RewardsClaimed    Type = domain.EventTypeRewardsClaimed

	RoleGranted Type = domain.EventTypeRoleGranted
	RoleRevoked Type = domain.EventTypeRoleRevoked
)

// Typed event payloads. Token amounts are decimal strings of base units.

// PlayerRegisteredPayloadV1 is the typed payload for registration events
type PlayerRegisteredPayloadV1 struct {
	Player    string `json:"player"`
	Timestamp int64  `json:"timestamp"`
}

// PlayerLeveledUpPayloadV1 is the typed payload for level up events
type PlayerLeveledUpPayloadV1 struct {
	Player     string `json:"player"`
	OldLevel   int    `json:"old_level"`
	NewLevel   int    `json:"new_level"`
	Experience int64  `json:"experience"`
	Source     string `json:"source"`
}

// QuestCreatedPayloadV1 is the typed payload for quest creation events
type QuestCreatedPayloadV1 struct {
	QuestID       int64  `json:"quest_id"`
	Name          string `json:"name"`
	RewardAmount  string `json:"reward_amount"`
	RequiredLevel int    `json:"required_level"`
	IsDaily       bool   `json:"is_daily"`
}

// StatusChangedPayloadV1 is the typed payload for activation toggles
type StatusChangedPayloadV1 struct {
	ID       int64 `json:"id"`
	IsActive bool  `json:"is_active"`
}

// QuestCompletedPayloadV1 is the typed payload for quest completion events
type QuestCompletedPayloadV1 struct {
	QuestID   int64  `json:"quest_id"`
	Player    string `json:"player"`
	Reward    string `json:"reward"`
	XPGained  int64  `json:"xp_gained"`
	IsDaily   bool   `json:"is_daily"`
	DayBucket int64  `json:"day_bucket,omitempty"`
}

// PvPResultPayloadV1 is the typed payload for PvP result events
type PvPResultPayloadV1 struct {
	Winner   string `json:"winner"`
	Loser    string `json:"loser"`
	Reward   string `json:"reward"`
	XPGained int64  `json:"xp_gained"`
}

// ItemCraftedPayloadV1 is the typed payload for crafting events
type ItemCraftedPayloadV1 struct {
	Player          string  `json:"player"`
	TokenID         int64   `json:"token_id"`
	AssetType       string  `json:"asset_type"`
	Rarity          int     `json:"rarity"`
	Cost            string  `json:"cost"`
	ResourceIDs     []int64 `json:"resource_ids"`
	ResourceAmounts []int64 `json:"resource_amounts"`
}

// ItemPayloadV1 is the typed payload for repair and asset level events
type ItemPayloadV1 struct {
	Player  string `json:"player"`
	TokenID int64  `json:"token_id"`
	Cost    string `json:"cost,omitempty"`
	Level   int    `json:"level,omitempty"`
}

// TournamentEnteredPayloadV1 is the typed payload for tournament entries
type TournamentEnteredPayloadV1 struct {
	TournamentID int64  `json:"tournament_id"`
	Player       string `json:"player"`
	Fee          string `json:"fee"`
}

// LeaderboardRewardsPayloadV1 is the typed payload for leaderboard payouts
type LeaderboardRewardsPayloadV1 struct {
	Winners    []string `json:"winners"`
	RewardEach string   `json:"reward_each"`
}

// GameConfigUpdatedPayloadV1 is the typed payload for configuration replacement
type GameConfigUpdatedPayloadV1 struct {
	Version            int64  `json:"version"`
	DailyQuestReward   string `json:"daily_quest_reward"`
	PvPWinReward       string `json:"pvp_win_reward"`
	LeaderboardReward  string `json:"leaderboard_reward"`
	CraftingCost       string `json:"crafting_cost"`
	RepairCost         string `json:"repair_cost"`
	TournamentEntryFee string `json:"tournament_entry_fee"`
}

// SystemPausePayloadV1 is the typed payload for pause toggles
type SystemPausePayloadV1 struct {
	By     string `json:"by"`
	Paused bool   `json:"paused"`
}

// ResourceTypeCreatedPayloadV1 is the typed payload for resource type creation
type ResourceTypeCreatedPayloadV1 struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	Rarity    int    `json:"rarity"`
	MaxSupply int64  `json:"max_supply"`
}

// ResourcesMintedPayloadV1 is the typed payload for resource mints
type ResourcesMintedPayloadV1 struct {
	To      string  `json:"to"`
	IDs     []int64 `json:"ids"`
	Amounts []int64 `json:"amounts"`
}

// PoolCreatedPayloadV1 is the typed payload for pool creation
type PoolCreatedPayloadV1 struct {
	PoolID            int64  `json:"pool_id"`
	Name              string `json:"name"`
	PoolType          string `json:"pool_type"`
	RewardRate        string `json:"reward_rate"`
	LockPeriodSeconds int64  `json:"lock_period_seconds"`
	MaxStakePerUser   string `json:"max_stake_per_user"`
}

// StakePayloadV1 is the typed payload for stake and unstake events
type StakePayloadV1 struct {
	PoolID    int64  `json:"pool_id"`
	Account   string `json:"account"`
	Amount    string `json:"amount"`
	TokenID   int64  `json:"token_id,omitempty"`
	LockUntil int64  `json:"lock_until,omitempty"`
}

// RewardsClaimedPayloadV1 is the typed payload for reward claims
type RewardsClaimedPayloadV1 struct {
	PoolID  int64  `json:"pool_id"`
	Account string `json:"account"`
	Amount  string `json:"amount"`
}

// RolePayloadV1 is the typed payload for role grants and revocations
type RolePayloadV1 struct {
	Role    string `json:"role"`
	Account string `json:"account"`
	By      string `json:"by"`
}

// Type-safe event constructors

func newEvent(t Type, payload interface{}) Event {
	return Event{Version: EventSchemaVersion, Type: t, Payload: payload}
}

// NewPlayerRegisteredEvent creates a registration event
func NewPlayerRegisteredEvent(player common.Address, at time.Time) Event {
	return newEvent(PlayerRegistered, PlayerRegisteredPayloadV1{
		Player:    player.Hex(),
		Timestamp: at.Unix(),
	})
}

// NewPlayerLeveledUpEvent creates a level up event
func NewPlayerLeveledUpEvent(player common.Address, oldLevel, newLevel int, xp int64, source string) Event {
	return newEvent(PlayerLeveledUp, PlayerLeveledUpPayloadV1{
		Player:     player.Hex(),
		OldLevel:   oldLevel,
		NewLevel:   newLevel,
		Experience: xp,
		Source:     source,
	})
}

// NewQuestCreatedEvent creates a quest creation event
func NewQuestCreatedEvent(q *domain.Quest) Event {
	return newEvent(QuestCreated, QuestCreatedPayloadV1{
		QuestID:       q.ID,
		Name:          q.Name,
		RewardAmount:  q.RewardAmount.String(),
		RequiredLevel: q.RequiredLevel,
		IsDaily:       q.IsDaily,
	})
}

// NewStatusChangedEvent creates an activation toggle event of type t
func NewStatusChangedEvent(t Type, id int64, active bool) Event {
	return newEvent(t, StatusChangedPayloadV1{ID: id, IsActive: active})
}

// NewQuestCompletedEvent creates a quest completion event
func NewQuestCompletedEvent(c *domain.QuestCompletion) Event {
	return newEvent(QuestCompleted, QuestCompletedPayloadV1{
		QuestID:   c.QuestID,
		Player:    c.Player.Hex(),
		Reward:    c.Reward.String(),
		XPGained:  c.XPGained,
		IsDaily:   c.IsDailyQuest,
		DayBucket: c.DayBucket,
	})
}

// NewPvPResultEvent creates a PvP result event
func NewPvPResultEvent(winner, loser common.Address, reward *big.Int, xp int64) Event {
	return newEvent(PvPResultRecorded, PvPResultPayloadV1{
		Winner:   winner.Hex(),
		Loser:    loser.Hex(),
		Reward:   reward.String(),
		XPGained: xp,
	})
}

// NewItemCraftedEvent creates a crafting event
func NewItemCraftedEvent(player common.Address, asset *domain.Asset, cost *big.Int, ids, amounts []int64) Event {
	return newEvent(ItemCrafted, ItemCraftedPayloadV1{
		Player:          player.Hex(),
		TokenID:         asset.TokenID,
		AssetType:       string(asset.AssetType),
		Rarity:          asset.Rarity,
		Cost:            cost.String(),
		ResourceIDs:     ids,
		ResourceAmounts: amounts,
	})
}

// NewItemRepairedEvent creates a repair event
func NewItemRepairedEvent(player common.Address, tokenID int64, cost *big.Int) Event {
	return newEvent(ItemRepaired, ItemPayloadV1{Player: player.Hex(), TokenID: tokenID, Cost: cost.String()})
}

// NewAssetLeveledEvent creates an asset level event
func NewAssetLeveledEvent(owner common.Address, tokenID int64, level int) Event {
	return newEvent(AssetLeveled, ItemPayloadV1{Player: owner.Hex(), TokenID: tokenID, Level: level})
}

// NewTournamentEnteredEvent creates a tournament entry event
func NewTournamentEnteredEvent(e *domain.TournamentEntry) Event {
	return newEvent(TournamentEntered, TournamentEnteredPayloadV1{
		TournamentID: e.TournamentID,
		Player:       e.Player.Hex(),
		Fee:          e.Fee.String(),
	})
}

// NewLeaderboardRewardsEvent creates a leaderboard payout event
func NewLeaderboardRewardsEvent(winners []common.Address, each *big.Int) Event {
	hex := make([]string, len(winners))
	for i, w := range winners {
		hex[i] = w.Hex()
	}
	return newEvent(LeaderboardRewards, LeaderboardRewardsPayloadV1{Winners: hex, RewardEach: each.String()})
}

// NewGameConfigUpdatedEvent creates a configuration replacement event
func NewGameConfigUpdatedEvent(c *domain.GameConfig) Event {
	return newEvent(GameConfigUpdated, GameConfigUpdatedPayloadV1{
		Version:            c.Version,
		DailyQuestReward:   c.DailyQuestReward.String(),
		PvPWinReward:       c.PvPWinReward.String(),
		LeaderboardReward:  c.LeaderboardReward.String(),
		CraftingCost:       c.CraftingCost.String(),
		RepairCost:         c.RepairCost.String(),
		TournamentEntryFee: c.TournamentEntryFee.String(),
	})
}

// NewPauseEvent creates a pause or unpause event
func NewPauseEvent(by common.Address, paused bool) Event {
	t := SystemUnpaused
	if paused {
		t = SystemPaused
	}
	return newEvent(t, SystemPausePayloadV1{By: by.Hex(), Paused: paused})
}

// NewResourceTypeCreatedEvent creates a resource type creation event
func NewResourceTypeCreatedEvent(rt *domain.ResourceType) Event {
	return newEvent(ResourceTypeCreated, ResourceTypeCreatedPayloadV1{
		ID:        rt.ID,
		Name:      rt.Name,
		Category:  string(rt.Category),
		Rarity:    rt.Rarity,
		MaxSupply: rt.MaxSupply,
	})
}

// NewResourcesMintedEvent creates a resource mint event
func NewResourcesMintedEvent(to common.Address, ids, amounts []int64) Event {
	return newEvent(ResourcesMinted, ResourcesMintedPayloadV1{To: to.Hex(), IDs: ids, Amounts: amounts})
}

// NewPoolCreatedEvent creates a pool creation event
func NewPoolCreatedEvent(p *domain.StakingPool) Event {
	return newEvent(PoolCreated, PoolCreatedPayloadV1{
		PoolID:            p.ID,
		Name:              p.Name,
		PoolType:          string(p.PoolType),
		RewardRate:        p.RewardRate.String(),
		LockPeriodSeconds: int64(p.LockPeriod / time.Second),
		MaxStakePerUser:   p.MaxStakePerUser.String(),
	})
}

// NewStakeEvent creates a stake or unstake event of type t
func NewStakeEvent(t Type, poolID int64, account common.Address, amount *big.Int, tokenID int64, lockUntil time.Time) Event {
	p := StakePayloadV1{
		PoolID:  poolID,
		Account: account.Hex(),
		Amount:  amount.String(),
		TokenID: tokenID,
	}
	if !lockUntil.IsZero() {
		p.LockUntil = lockUntil.Unix()
	}
	return newEvent(t, p)
}

// NewRewardsClaimedEvent creates a reward claim event
func NewRewardsClaimedEvent(poolID int64, account common.Address, amount *big.Int) Event {
	return newEvent(RewardsClaimed, RewardsClaimedPayloadV1{PoolID: poolID, Account: account.Hex(), Amount: amount.String()})
}

// NewRoleEvent creates a role grant or revoke event
func NewRoleEvent(granted bool, role domain.Role, account, by common.Address) Event {
	t := RoleRevoked
	if granted {
		t = RoleGranted
	}
	return newEvent(t, RolePayloadV1{Role: string(role), Account: account.Hex(), By: by.Hex()})
}

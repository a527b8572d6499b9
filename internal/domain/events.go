package domain

import (
	"encoding/json"
	"time"
)

// Event type constants used across the application for event bus subscriptions,
// the durable event log and metrics tracking.
//
// Event types follow the pattern: <entity>.<action> (e.g., "quest.completed")
const (
	EventTypePlayerRegistered = "player.registered"
	EventTypePlayerLeveledUp  = "player.leveled_up"

	EventTypeQuestCreated       = "quest.created"
	EventTypeQuestStatusChanged = "quest.status_changed"
	EventTypeQuestCompleted     = "quest.completed"

	EventTypePvPResultRecorded = "pvp.result_recorded"

	EventTypeItemCrafted  = "item.crafted"
	EventTypeItemRepaired = "item.repaired"
	EventTypeAssetLeveled = "asset.leveled"

	EventTypeTournamentEntered  = "tournament.entered"
	EventTypeLeaderboardRewards = "leaderboard.rewarded"

	EventTypeGameConfigUpdated = "config.updated"
	EventTypeSystemPaused      = "system.paused"
	EventTypeSystemUnpaused    = "system.unpaused"

	EventTypeResourceTypeCreated   = "resource.type_created"
	EventTypeResourceStatusChanged = "resource.status_changed"
	EventTypeResourcesMinted       = "resource.minted"

	EventTypePoolCreated       = "pool.created"
	EventTypePoolStatusChanged = "pool.status_changed"
	EventTypeTokensStaked      = "stake.tokens_staked"
	EventTypeTokensUnstaked    = "stake.tokens_unstaked"
	EventTypeNFTStaked         = "stake.nft_staked"
	EventTypeNFTUnstaked       = "stake.nft_unstaked"
	EventTypeRewardsClaimed    = "stake.rewards_claimed"

	EventTypeRoleGranted = "access.role_granted"
	EventTypeRoleRevoked = "access.role_revoked"
)

// EventRecord is one entry of the append-only audit log
type EventRecord struct {
	Seq       int64           `json:"seq"`
	Type      string          `json:"type"`
	Actor     string          `json:"actor"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"created_at"`
}

package game

import "time"

// ==================== Leveling ====================

// Leveling curve constants
const (
	// BaseLevelThreshold is the experience needed to leave level 1
	BaseLevelThreshold = 100

	// LevelThresholdFactor scales level² into the next threshold
	LevelThresholdFactor = 100
)

// ==================== Player Cache ====================

// Player snapshot cache sizing
const (
	PlayerCacheSize = 1024
	PlayerCacheTTL  = 30 * time.Second
)

// ==================== Operation Names ====================

// Operation names used for tracing, metrics and logs
const (
	OpRegisterPlayer        = "register_player"
	OpCreateQuest           = "create_quest"
	OpSetQuestActive        = "set_quest_active"
	OpCompleteQuest         = "complete_quest"
	OpRecordPvPResult       = "record_pvp_result"
	OpCraftItem             = "craft_item"
	OpRepairItem            = "repair_item"
	OpLevelUpAsset          = "level_up_asset"
	OpEnterTournament       = "enter_tournament"
	OpDistributeLeaderboard = "distribute_leaderboard_rewards"
	OpUpdateGameConfig      = "update_game_config"
	OpPause                 = "pause"
	OpUnpause               = "unpause"
	OpGrantRole             = "grant_role"
	OpRevokeRole            = "revoke_role"
	OpCreateResourceType    = "create_resource_type"
	OpSetResourceTypeActive = "set_resource_type_active"
	OpMintResources         = "mint_resources"
)

// Experience sources recorded on level up events
const (
	XPSourceQuest    = "quest"
	XPSourcePvP      = "pvp"
	XPSourceCrafting = "crafting"
)

// ==================== Error Messages ====================

const (
	ErrMsgQuestNameRequired   = "quest name is required"
	ErrMsgNegativeReward      = "reward amount must not be negative"
	ErrMsgRequiredLevelFmt    = "required level must be between %d and %d, got %d"
	ErrMsgRequiredLevelTooLow = "player level %d below required %d"
	ErrMsgNoWinners           = "at least one winner is required"
	ErrMsgDuplicateWinnerFmt  = "winner %s listed more than once"
	ErrMsgResourceNameReq     = "resource name is required"
	ErrMsgLoadConfigFailed    = "failed to load game config: %w"
)

// ==================== Log Messages ====================

const (
	LogMsgPlayerRegistered  = "Player registered"
	LogMsgQuestCompleted    = "Quest completed"
	LogMsgPlayerLeveledUp   = "Player leveled up"
	LogMsgItemCrafted       = "Item crafted"
	LogMsgGameConfigUpdated = "Game config updated"
	LogMsgPauseChanged      = "System pause changed"
)

package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Authorization
	ErrMsgUnauthorized   = "caller lacks required role"
	ErrMsgNotAssetOwner  = "caller is not the asset owner"
	ErrMsgPaused         = "system is paused"
	ErrMsgReentrantCall  = "reentrant call"
	ErrMsgInvalidAddress = "invalid address"

	// Players
	ErrMsgAlreadyRegistered = "player already registered"
	ErrMsgNotRegistered     = "player not registered"

	// Quests
	ErrMsgQuestNotFound              = "quest not found"
	ErrMsgQuestNotActive             = "quest not active"
	ErrMsgLevelTooLow                = "player level too low"
	ErrMsgQuestAlreadyCompleted      = "quest already completed"
	ErrMsgDailyQuestAlreadyCompleted = "daily quest already completed today"
	ErrMsgAlreadyEnteredTournament   = "already entered tournament"

	// Ledger
	ErrMsgInsufficientBalance = "insufficient balance"
	ErrMsgInvalidAmount       = "invalid amount"

	// Assets and resources
	ErrMsgAssetNotFound           = "asset not found"
	ErrMsgAssetStaked             = "asset is staked"
	ErrMsgInvalidRarity           = "invalid rarity"
	ErrMsgInvalidAssetType        = "invalid asset type"
	ErrMsgResourceNotFound        = "resource type not found"
	ErrMsgResourceInactive        = "resource type inactive"
	ErrMsgInsufficientResources   = "insufficient resources"
	ErrMsgMaxSupplyExceeded       = "max supply exceeded"
	ErrMsgLengthMismatch          = "array length mismatch"
	ErrMsgInvalidResourceCategory = "invalid resource category"

	// Staking
	ErrMsgPoolNotFound      = "pool not found"
	ErrMsgPoolInactive      = "pool not active"
	ErrMsgWrongPoolType     = "wrong pool type"
	ErrMsgMaxStakeExceeded  = "max stake per user exceeded"
	ErrMsgStakeLocked       = "stake is locked"
	ErrMsgInsufficientStake = "insufficient staked amount"
	ErrMsgNoRewards         = "no rewards to claim"
	ErrMsgTokenNotStaked    = "token not staked in pool"
	ErrMsgInvalidPoolType   = "invalid pool type"

	// System
	ErrMsgConfigNotFound = "game config not set"
	ErrMsgInvalidConfig  = "invalid game config"
	ErrMsgInvalidInput   = "invalid input"
	ErrMsgInvalidRole    = "invalid role"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrUnauthorized   = errors.New(ErrMsgUnauthorized)
	ErrNotAssetOwner  = errors.New(ErrMsgNotAssetOwner)
	ErrPaused         = errors.New(ErrMsgPaused)
	ErrReentrantCall  = errors.New(ErrMsgReentrantCall)
	ErrInvalidAddress = errors.New(ErrMsgInvalidAddress)

	ErrAlreadyRegistered = errors.New(ErrMsgAlreadyRegistered)
	ErrNotRegistered     = errors.New(ErrMsgNotRegistered)

	ErrQuestNotFound              = errors.New(ErrMsgQuestNotFound)
	ErrQuestNotActive             = errors.New(ErrMsgQuestNotActive)
	ErrLevelTooLow                = errors.New(ErrMsgLevelTooLow)
	ErrQuestAlreadyCompleted      = errors.New(ErrMsgQuestAlreadyCompleted)
	ErrDailyQuestAlreadyCompleted = errors.New(ErrMsgDailyQuestAlreadyCompleted)
	ErrAlreadyEnteredTournament   = errors.New(ErrMsgAlreadyEnteredTournament)

	ErrInsufficientBalance = errors.New(ErrMsgInsufficientBalance)
	ErrInvalidAmount       = errors.New(ErrMsgInvalidAmount)

	ErrAssetNotFound           = errors.New(ErrMsgAssetNotFound)
	ErrAssetStaked             = errors.New(ErrMsgAssetStaked)
	ErrInvalidRarity           = errors.New(ErrMsgInvalidRarity)
	ErrInvalidAssetType        = errors.New(ErrMsgInvalidAssetType)
	ErrResourceNotFound        = errors.New(ErrMsgResourceNotFound)
	ErrResourceInactive        = errors.New(ErrMsgResourceInactive)
	ErrInsufficientResources   = errors.New(ErrMsgInsufficientResources)
	ErrMaxSupplyExceeded       = errors.New(ErrMsgMaxSupplyExceeded)
	ErrLengthMismatch          = errors.New(ErrMsgLengthMismatch)
	ErrInvalidResourceCategory = errors.New(ErrMsgInvalidResourceCategory)

	ErrPoolNotFound      = errors.New(ErrMsgPoolNotFound)
	ErrPoolInactive      = errors.New(ErrMsgPoolInactive)
	ErrWrongPoolType     = errors.New(ErrMsgWrongPoolType)
	ErrMaxStakeExceeded  = errors.New(ErrMsgMaxStakeExceeded)
	ErrStakeLocked       = errors.New(ErrMsgStakeLocked)
	ErrInsufficientStake = errors.New(ErrMsgInsufficientStake)
	ErrNoRewards         = errors.New(ErrMsgNoRewards)
	ErrTokenNotStaked    = errors.New(ErrMsgTokenNotStaked)
	ErrInvalidPoolType   = errors.New(ErrMsgInvalidPoolType)

	ErrConfigNotFound = errors.New(ErrMsgConfigNotFound)
	ErrInvalidConfig  = errors.New(ErrMsgInvalidConfig)
	ErrInvalidInput   = errors.New(ErrMsgInvalidInput)
	ErrInvalidRole    = errors.New(ErrMsgInvalidRole)
)

// ErrorClass is the taxonomy bucket of a domain error
type ErrorClass int

// Error classes
const (
	ClassInternal ErrorClass = iota
	ClassAuthorization
	ClassNotFound
	ClassPrecondition
	ClassBounds
	ClassHalted
)

type errorInfo struct {
	err   error
	code  string
	class ErrorClass
}

// errorTable maps each sentinel to its stable code. Order matters only for
// wrapped chains carrying more than one sentinel; the first match wins.
var errorTable = []errorInfo{
	{ErrUnauthorized, "UNAUTHORIZED", ClassAuthorization},
	{ErrNotAssetOwner, "NOT_ASSET_OWNER", ClassAuthorization},
	{ErrPaused, "PAUSED", ClassHalted},
	{ErrReentrantCall, "REENTRANT_CALL", ClassPrecondition},
	{ErrInvalidAddress, "INVALID_ADDRESS", ClassBounds},

	{ErrAlreadyRegistered, "ALREADY_REGISTERED", ClassPrecondition},
	{ErrNotRegistered, "NOT_REGISTERED", ClassPrecondition},

	{ErrQuestNotFound, "QUEST_NOT_FOUND", ClassNotFound},
	{ErrQuestNotActive, "QUEST_NOT_ACTIVE", ClassPrecondition},
	{ErrLevelTooLow, "LEVEL_TOO_LOW", ClassPrecondition},
	{ErrQuestAlreadyCompleted, "QUEST_ALREADY_COMPLETED", ClassPrecondition},
	{ErrDailyQuestAlreadyCompleted, "DAILY_QUEST_ALREADY_COMPLETED", ClassPrecondition},
	{ErrAlreadyEnteredTournament, "ALREADY_ENTERED_TOURNAMENT", ClassPrecondition},

	{ErrInsufficientBalance, "INSUFFICIENT_BALANCE", ClassPrecondition},
	{ErrInvalidAmount, "INVALID_AMOUNT", ClassBounds},

	{ErrAssetNotFound, "ASSET_NOT_FOUND", ClassNotFound},
	{ErrAssetStaked, "ASSET_STAKED", ClassPrecondition},
	{ErrInvalidRarity, "INVALID_RARITY", ClassBounds},
	{ErrInvalidAssetType, "INVALID_ASSET_TYPE", ClassBounds},
	{ErrResourceNotFound, "RESOURCE_NOT_FOUND", ClassNotFound},
	{ErrResourceInactive, "RESOURCE_INACTIVE", ClassPrecondition},
	{ErrInsufficientResources, "INSUFFICIENT_RESOURCES", ClassPrecondition},
	{ErrMaxSupplyExceeded, "MAX_SUPPLY_EXCEEDED", ClassBounds},
	{ErrLengthMismatch, "LENGTH_MISMATCH", ClassBounds},
	{ErrInvalidResourceCategory, "INVALID_RESOURCE_CATEGORY", ClassBounds},

	{ErrPoolNotFound, "POOL_NOT_FOUND", ClassNotFound},
	{ErrPoolInactive, "POOL_NOT_ACTIVE", ClassPrecondition},
	{ErrWrongPoolType, "WRONG_POOL_TYPE", ClassPrecondition},
	{ErrMaxStakeExceeded, "MAX_STAKE_EXCEEDED", ClassBounds},
	{ErrStakeLocked, "STAKE_LOCKED", ClassPrecondition},
	{ErrInsufficientStake, "INSUFFICIENT_STAKE", ClassPrecondition},
	{ErrNoRewards, "NO_REWARDS", ClassPrecondition},
	{ErrTokenNotStaked, "TOKEN_NOT_STAKED", ClassPrecondition},
	{ErrInvalidPoolType, "INVALID_POOL_TYPE", ClassBounds},

	{ErrConfigNotFound, "CONFIG_NOT_FOUND", ClassNotFound},
	{ErrInvalidConfig, "INVALID_CONFIG", ClassBounds},
	{ErrInvalidInput, "INVALID_INPUT", ClassBounds},
	{ErrInvalidRole, "INVALID_ROLE", ClassBounds},
}

// ErrorCode returns the stable machine-readable code for err, or "INTERNAL"
func ErrorCode(err error) string {
	for _, info := range errorTable {
		if errors.Is(err, info.err) {
			return info.code
		}
	}
	return "INTERNAL"
}

// ErrorClassOf returns the taxonomy class of err
func ErrorClassOf(err error) ErrorClass {
	for _, info := range errorTable {
		if errors.Is(err, info.err) {
			return info.class
		}
	}
	return ClassInternal
}

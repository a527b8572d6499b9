package staking

// Operation names used for tracing, metrics and logs
const (
	OpCreatePool    = "create_pool"
	OpSetPoolActive = "set_pool_active"
	OpStakeTokens   = "stake_tokens"
	OpStakeNFT      = "stake_nft"
	OpUnstakeTokens = "unstake_tokens"
	OpUnstakeNFT    = "unstake_nft"
	OpClaimRewards  = "claim_rewards"
)

// Error messages
const (
	ErrMsgPoolNameRequired   = "pool name is required"
	ErrMsgNegativeRewardRate = "reward rate must not be negative"
	ErrMsgNegativeLock       = "lock period must not be negative"
	ErrMsgNegativeMaxStake   = "max stake per user must not be negative"
	ErrMsgStakingTokenReq    = "token pools need a staking token"
	ErrMsgLockedUntilFmt     = "locked until %s"
)

// Log messages
const (
	LogMsgRewardsClaimed = "Staking rewards claimed"
	LogMsgPoolCreated    = "Staking pool created"
)

package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Operation metric names
const (
	MetricNameOperationsTotal   = "economy_operations_total"
	MetricNameOperationDuration = "economy_operation_duration_seconds"
)

// Business metric names
const (
	MetricNamePlayersRegistered = "players_registered_total"
	MetricNameQuestsCompleted   = "quests_completed_total"
	MetricNamePvPMatches        = "pvp_matches_total"
	MetricNameItemsCrafted      = "items_crafted_total"
	MetricNameItemsRepaired     = "items_repaired_total"
	MetricNameLevelUps          = "player_level_ups_total"
	MetricNameRewardsMinted     = "reward_tokens_minted_total"
	MetricNameTokensBurned      = "utility_tokens_burned_total"
	MetricNameRewardsClaimed    = "staking_rewards_claimed_total"
	MetricNameStakeOperations   = "stake_operations_total"
	MetricNameSystemPaused      = "system_paused"
)

// Balancing metric names
const (
	MetricNameDailyMinted      = "balancing_daily_minted_tokens"
	MetricNameDailyActions     = "balancing_daily_actions"
	MetricNameRewardMultiplier = "balancing_reward_multiplier"
	MetricNameCostMultiplier   = "balancing_cost_multiplier"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Operation metric help text
const (
	HelpTextOperationsTotal   = "Total number of economy operations by outcome code"
	HelpTextOperationDuration = "Economy operation latency in seconds"
)

// Business metric help text
const (
	HelpTextPlayersRegistered = "Total number of registered players"
	HelpTextQuestsCompleted   = "Total number of quest completions"
	HelpTextPvPMatches        = "Total number of recorded PvP results"
	HelpTextItemsCrafted      = "Total number of crafted items"
	HelpTextItemsRepaired     = "Total number of repairs"
	HelpTextLevelUps          = "Total number of player level ups"
	HelpTextRewardsMinted     = "Utility tokens minted as game rewards, in whole tokens"
	HelpTextTokensBurned      = "Utility tokens burned by costs and fees, in whole tokens"
	HelpTextRewardsClaimed    = "Staking rewards claimed, in whole tokens"
	HelpTextStakeOperations   = "Total number of stake and unstake operations"
	HelpTextSystemPaused      = "1 while the system is paused"
)

// Balancing metric help text
const (
	HelpTextDailyMinted      = "Reward tokens minted today, in whole tokens"
	HelpTextDailyActions     = "Priced actions performed today"
	HelpTextRewardMultiplier = "Current reward multiplier"
	HelpTextCostMultiplier   = "Current cost multiplier"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelType      = "type"
	LabelOperation = "operation"
	LabelCode      = "code"
	LabelSource    = "source"
	LabelQuestKind = "kind"
	LabelAssetType = "asset_type"
	LabelPool      = "pool"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgPayloadDecodeFailed = "Event payload could not be decoded"
)

// Outcome code for successful operations
const CodeOK = "OK"

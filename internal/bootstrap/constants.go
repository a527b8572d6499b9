package bootstrap

import "time"

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for session log files
	LogFilePermission = 0666
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionLimit is the number of log files that triggers cleanup
	LogFileRetentionLimit = 10

	// LogFileRetentionCount is the number of log files to retain after cleanup
	LogFileRetentionCount = 9
)

const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStarting            = "Starting Lithos Protocol"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgFailedCreateLogsDir = "failed to create logs directory"
	LogMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
)

// =============================================================================
// Event System Configuration
// =============================================================================

const (
	// EventDefaultMaxRetries is the default number of retry attempts for failed event publishing
	EventDefaultMaxRetries = 5

	// EventDefaultRetryDelay is the default base delay between retry attempts (exponential backoff)
	EventDefaultRetryDelay = 2 * time.Second

	// EventDefaultDeadLetterPath is the default file path for dead-letter event logging
	EventDefaultDeadLetterPath = "logs/event_deadletter.jsonl"
)

const (
	LogMsgEventSystemInitialized         = "Event system initialized"
	LogMsgFailedCreateDeadLetterDir      = "failed to create dead-letter directory"
	LogMsgFailedCreateResilientPublisher = "failed to create resilient publisher"
)

// =============================================================================
// Event Handlers
// =============================================================================

const (
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgStreamSubscriberRegistered = "Event stream subscriber registered"
	LogMsgDiscordNotifierStarted     = "Discord notifier started"
	ErrMsgFailedRegisterMetrics      = "failed to register metrics collector"
	ErrMsgFailedCreateNotifier       = "failed to create discord notifier"
)

// =============================================================================
// Storage
// =============================================================================

const (
	LogMsgStoreOpened           = "State store opened"
	ErrMsgFailedConnectDatabase = "failed to connect to database"
)

// =============================================================================
// Economy Seed
// =============================================================================

// SeedSchemaName is the embedded schema economy seeds are validated against
const SeedSchemaName = "schema/economy.schema.json"

const (
	LogMsgApplyingSeed = "Applying economy seed"
	LogMsgSeedApplied  = "Economy seed applied"
	LogMsgSeedSkipped  = "Store already initialized, economy seed skipped"

	ErrMsgReadSeed          = "failed to read economy seed %s: %w"
	ErrMsgDecodeSeed        = "failed to decode economy seed: %w"
	ErrMsgInvalidSeed       = "invalid economy seed: %w"
	ErrMsgAmountNotScalar   = "line %d: amount must be a scalar"
	ErrMsgInvalidAmount     = "invalid amount %q: %w"
	ErrMsgAmountPrecision   = "amount %q is negative or finer than one base unit"
	ErrMsgPriceBounds       = "min_price_multiplier %s exceeds max_price_multiplier %s"
	ErrMsgInvalidLockPeriod = "pool %q: invalid lock_period: %w"
	ErrMsgSeedStep          = "failed to seed %s: %w"
	ErrMsgSeedItem          = "failed to seed %s %q: %w"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer         = "Shutting down server..."
	LogMsgShuttingDownEventPublisher = "Shutting down event publisher..."
	LogMsgServerStopped              = "Server stopped"
	LogMsgServerForcedShutdown       = "Server forced to shutdown"
	LogMsgResilientPublisherFailed   = "Resilient publisher shutdown failed"
	LogMsgTelemetryShutdownFailed    = "Telemetry shutdown failed"
)

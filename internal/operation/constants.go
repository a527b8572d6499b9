package operation

// TracerName is the instrumentation scope for operation spans
const TracerName = "github.com/osse101/LithosProtocol_Go/internal/operation"

// Span attribute keys
const (
	AttrCaller = "economy.caller"
	AttrCode   = "economy.code"
)

// Error messages
const (
	ErrMsgBeginTxFailed = "failed to begin transaction: %w"
	ErrMsgCommitFailed  = "failed to commit transaction: %w"
	ErrMsgPauseCheck    = "failed to read pause flag: %w"
)

// Log messages
const (
	LogMsgOperationRejected  = "Operation rejected"
	LogMsgOperationFailed    = "Operation failed"
	LogMsgOperationCompleted = "Operation completed"
)

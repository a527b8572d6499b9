package postgres

// Counter names in id_counters
const (
	counterQuest        = "quest"
	counterAsset        = "asset"
	counterResourceType = "resource_type"
	counterPool         = "pool"
	counterEvent        = "event"
)

// Error messages
const (
	ErrMsgBeginTx           = "failed to begin transaction: %w"
	ErrMsgNextID            = "failed to allocate %s id: %w"
	ErrMsgNonFiniteNumeric  = "numeric value is not finite"
	ErrMsgFractionalNumeric = "numeric %s e%d is not an integer"
	ErrMsgQueryFailed       = "failed to query %s: %w"
	ErrMsgScanFailed        = "failed to scan %s: %w"
	ErrMsgWriteFailed       = "failed to write %s: %w"
)

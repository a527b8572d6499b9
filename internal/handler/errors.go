package handler

// Generic HTTP error messages for client responses.
// Internal error details are never exposed; handlers and tests share these.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidAddress        = "Invalid address"
	ErrMsgInvalidID             = "Invalid %s"
	ErrMsgInvalidQueryParam     = "Invalid %s query parameter"
	ErrMsgMissingCaller         = "Authentication required"
	ErrMsgInvalidAPIKey         = "Invalid API key"
	ErrMsgIssueTokenFailed      = "Failed to issue token"
	ErrMsgListEventsFailed      = "Failed to list events"
)

// User-facing messages per error class
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnauthorized       = "Caller is not authorized for this operation"
	ErrMsgNotFound           = "Resource not found"
	ErrMsgConflict           = "Operation already performed"
	ErrMsgPrecondition       = "Operation not allowed in the current state"
	ErrMsgBounds             = "Invalid request. Please check your inputs."
	ErrMsgPausedError        = "The economy is paused. Please try again later."
)

// Success messages
const (
	MsgQuestStatusUpdated = "Quest status updated"
	MsgPoolStatusUpdated  = "Pool status updated"
	MsgResourceStatusSet  = "Resource status updated"
	MsgResourcesMinted    = "Resources minted"
	MsgSystemPaused       = "System paused"
	MsgSystemUnpaused     = "System unpaused"
	MsgRoleGranted        = "Role granted"
	MsgRoleRevoked        = "Role revoked"
)

// Log messages
const (
	LogMsgDecodeFailed     = "Failed to decode request"
	LogMsgRequestDecoded   = "Request decoded"
	LogMsgValidationFailed = "Request validation failed"
	LogMsgOperationFailed  = "Operation failed"
	LogMsgOperationFault   = "Operation failed unexpectedly"
	LogMsgEncodeFailed     = "Failed to encode JSON response"
	LogMsgWriteFailed      = "Failed to write response buffer"
	LogMsgReadinessFailed  = "Readiness check failed"
	LogMsgTokenIssued      = "Access token issued"
)

// Route parameters and query keys
const (
	ParamAddress    = "address"
	ParamID         = "id"
	QueryActiveOnly = "active"
	QueryAfter      = "after"
	QueryLimit      = "limit"
)

package middleware

// HTTP header names and schemes
const (
	HeaderAuthorization = "Authorization"
	BearerScheme        = "Bearer"
)

// Log messages
const (
	LogMsgCallerRejected = "Bearer token rejected"
)

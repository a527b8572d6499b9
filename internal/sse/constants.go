package sse

import "time"

// Buffer sizes
const (
	// BroadcastBufferSize is the buffer size for the broadcast channel
	BroadcastBufferSize = 256

	// ClientEventBuffer is the buffer size for each client's event channel
	ClientEventBuffer = 64

	// ClientChannelBuffer is the buffer size for register/unregister channels
	ClientChannelBuffer = 16
)

// Connection settings
const (
	// KeepaliveInterval is how often to send keepalive pings
	KeepaliveInterval = 30 * time.Second

	// WriteTimeout bounds a single websocket write
	WriteTimeout = 10 * time.Second

	// PongWait is how long a websocket client may stay silent
	PongWait = 2 * KeepaliveInterval

	// MaxClientMessageSize caps inbound websocket frames; clients only send control frames
	MaxClientMessageSize = 512
)

// Stream-level event types
const (
	// EventTypeConnected is the first message a client receives
	EventTypeConnected = "connected"

	// EventTypeKeepalive is the keepalive ping event type
	EventTypeKeepalive = "keepalive"
)

// QueryParamTypes filters the stream by comma separated event types
const QueryParamTypes = "types"

// Log messages
const (
	LogMsgClientConnected    = "Stream client connected"
	LogMsgClientDisconnected = "Stream client disconnected"
	LogMsgEventBroadcast     = "Broadcasting stream event"
	LogMsgBroadcastDropped   = "Stream broadcast queue full, event dropped"
	LogMsgWriteError         = "Failed to write stream event"
	LogMsgUpgradeFailed      = "Websocket upgrade failed"
)

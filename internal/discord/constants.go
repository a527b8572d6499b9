package discord

import "time"

// Embed colors
const (
	ColorGold   = 0xFFD700
	ColorGreen  = 0x2ECC71
	ColorBlue   = 0x3498DB
	ColorOrange = 0xE67E22
	ColorRed    = 0xE74C3C
)

// Notifier settings
const (
	// NotificationQueueSize bounds embeds waiting to be sent
	NotificationQueueSize = 128

	// SendTimeout bounds one Discord API call
	SendTimeout = 10 * time.Second

	// TokenDecimals is the number of decimals of the ledger tokens
	TokenDecimals = 18
)

// Log messages
const (
	LogMsgNotifierStarted     = "Discord notifier started"
	LogMsgNotifierStopped     = "Discord notifier stopped"
	LogMsgNotificationDropped = "Discord notification queue full, dropping embed"
	LogMsgNotificationFailed  = "Failed to send Discord notification"
	LogMsgPayloadDecodeFailed = "Failed to decode event payload for Discord"
)

// Error messages
const (
	ErrMsgCreateSession = "failed to create discord session: %w"
	ErrMsgMissingTarget = "discord notifier needs a bot token and channel id"
)

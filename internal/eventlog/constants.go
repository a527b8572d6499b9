package eventlog

// Paging limits for audit log reads
const (
	DefaultPageSize = 100
	MaxPageSize     = 1000
)

// Log messages
const (
	LogMsgPublishFailed = "Failed to publish committed event"
	LogMsgEventRecorded = "Event recorded"
)

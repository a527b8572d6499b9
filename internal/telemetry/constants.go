package telemetry

// Log messages
const (
	LogMsgTracingEnabled = "OpenTelemetry tracing enabled"
)

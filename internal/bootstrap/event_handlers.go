package bootstrap

import (
	"fmt"

	"github.com/osse101/LithosProtocol_Go/internal/config"
	"github.com/osse101/LithosProtocol_Go/internal/discord"
	"github.com/osse101/LithosProtocol_Go/internal/event"
	"github.com/osse101/LithosProtocol_Go/internal/logger"
	"github.com/osse101/LithosProtocol_Go/internal/metrics"
	"github.com/osse101/LithosProtocol_Go/internal/sse"
)

// EventHandlerDependencies holds what event subscribers need
type EventHandlerDependencies struct {
	EventBus event.Bus
	Hub      *sse.Hub
	Config   *config.Config
}

// EventHandlers are the running subscribers that need shutdown
type EventHandlers struct {
	// Notifier is nil when Discord is not configured
	Notifier *discord.Notifier
}

// RegisterEventHandlers subscribes the observers of committed events:
// the metrics collector, the SSE/websocket broadcaster and, when
// configured, the Discord announcer.
func RegisterEventHandlers(deps EventHandlerDependencies) (*EventHandlers, error) {
	collector := metrics.NewEventMetricsCollector()
	if err := collector.Register(deps.EventBus); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	logger.Info(LogMsgMetricsCollectorRegistered)

	if deps.Hub != nil {
		sse.NewSubscriber(deps.Hub, deps.EventBus).Subscribe()
		logger.Info(LogMsgStreamSubscriberRegistered)
	}

	handlers := &EventHandlers{}
	if deps.Config != nil && deps.Config.DiscordEnabled() {
		notifier, err := discord.NewNotifier(deps.Config.DiscordBotToken, deps.Config.DiscordChannelID)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateNotifier, err)
		}
		notifier.Register(deps.EventBus)
		notifier.Start()
		handlers.Notifier = notifier
		logger.Info(LogMsgDiscordNotifierStarted, "channel_id", deps.Config.DiscordChannelID)
	}

	return handlers, nil
}

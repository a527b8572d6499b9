package bootstrap

import (
	"context"

	"github.com/osse101/LithosProtocol_Go/internal/discord"
	"github.com/osse101/LithosProtocol_Go/internal/event"
	"github.com/osse101/LithosProtocol_Go/internal/logger"
	"github.com/osse101/LithosProtocol_Go/internal/repository"
	"github.com/osse101/LithosProtocol_Go/internal/server"
	"github.com/osse101/LithosProtocol_Go/internal/sse"
)

// ShutdownComponents holds all components that need graceful shutdown.
// Nil components are skipped.
type ShutdownComponents struct {
	Server             *server.Server
	Hub                *sse.Hub
	Notifier           *discord.Notifier
	ResilientPublisher *event.ResilientPublisher
	Telemetry          func(context.Context) error
	Store              repository.Store
}

// GracefulShutdown stops components in dependency order:
//  1. HTTP server (stop accepting new requests)
//  2. Event publisher (flush pending events to subscribers)
//  3. Stream hub and Discord notifier (drain what was flushed)
//  4. Tracing exporter and the state store
//
// Errors are logged and do not stop the sequence.
func GracefulShutdown(ctx context.Context, c ShutdownComponents) {
	logger.Info(LogMsgShuttingDownServer)
	if c.Server != nil {
		if err := c.Server.Stop(ctx); err != nil {
			logger.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if c.ResilientPublisher != nil {
		logger.Info(LogMsgShuttingDownEventPublisher)
		if err := c.ResilientPublisher.Shutdown(ctx); err != nil {
			logger.Error(LogMsgResilientPublisherFailed, "error", err)
		}
	}

	if c.Hub != nil {
		c.Hub.Stop()
	}
	if c.Notifier != nil {
		c.Notifier.Stop()
	}

	if c.Telemetry != nil {
		if err := c.Telemetry(ctx); err != nil {
			logger.Error(LogMsgTelemetryShutdownFailed, "error", err)
		}
	}

	if c.Store != nil {
		c.Store.Close()
	}

	logger.Info(LogMsgServerStopped)
}

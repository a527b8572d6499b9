package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/LithosProtocol_Go/internal/auth"
	"github.com/osse101/LithosProtocol_Go/internal/balancing"
	"github.com/osse101/LithosProtocol_Go/internal/bootstrap"
	"github.com/osse101/LithosProtocol_Go/internal/clock"
	"github.com/osse101/LithosProtocol_Go/internal/concurrency"
	"github.com/osse101/LithosProtocol_Go/internal/config"
	"github.com/osse101/LithosProtocol_Go/internal/eventlog"
	"github.com/osse101/LithosProtocol_Go/internal/game"
	"github.com/osse101/LithosProtocol_Go/internal/logger"
	"github.com/osse101/LithosProtocol_Go/internal/operation"
	"github.com/osse101/LithosProtocol_Go/internal/server"
	"github.com/osse101/LithosProtocol_Go/internal/sse"
	"github.com/osse101/LithosProtocol_Go/internal/staking"
	"github.com/osse101/LithosProtocol_Go/internal/telemetry"
)

const shutdownTimeout = 15 * time.Second

// @title Lithos Protocol API
// @version 1.0
// @description Play-to-earn game economy and staking rewards.
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := run(); err != nil {
		log.Fatalf("lithos: %v", err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return err
	}
	defer logFile.Close()

	for _, w := range cfg.Warnings() {
		logger.Warn(w)
	}

	ctx := context.Background()

	shutdownTracing, err := telemetry.Setup(ctx, telemetry.Config{
		Enabled:        cfg.OtelEnabled,
		Endpoint:       cfg.OtelEndpoint,
		ServiceName:    cfg.ServiceName,
		ServiceVersion: cfg.Version,
	})
	if err != nil {
		return fmt.Errorf("telemetry: %w", err)
	}

	store, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		return err
	}

	bus, publisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		return err
	}

	hub := sse.NewHub()
	hub.Start()

	handlers, err := bootstrap.RegisterEventHandlers(bootstrap.EventHandlerDependencies{
		EventBus: bus,
		Hub:      hub,
		Config:   cfg,
	})
	if err != nil {
		return err
	}

	seed, err := bootstrap.LoadSeed(cfg.EconomyConfigPath)
	if err != nil {
		return err
	}
	balancingCfg, err := seed.BalancingConfig()
	if err != nil {
		return err
	}
	var policy *balancing.Policy
	if balancingCfg.Enabled {
		policy = balancing.NewPolicy(balancingCfg)
	}

	clk := clock.NewRealClock()
	runner := operation.NewRunner(store, concurrency.NewGuard(), clk, publisher)

	system := config.Address(cfg.SystemAddress)
	gameSvc := game.NewService(runner, game.Config{
		UtilityToken:  config.Address(cfg.UtilityToken),
		SystemAccount: system,
	}, policy)
	stakingSvc := staking.NewService(runner, staking.Config{
		RewardToken:    config.Address(cfg.UtilityToken),
		CustodyAccount: config.Address(cfg.StakingCustody),
		SystemAccount:  system,
	})

	if _, err := bootstrap.ApplySeed(ctx, bootstrap.SeedDependencies{
		Store:           store,
		Publisher:       publisher,
		Clock:           clk,
		Game:            gameSvc,
		Staking:         stakingSvc,
		Admin:           config.Address(cfg.AdminAddress),
		System:          system,
		GovernanceToken: config.Address(cfg.GovernanceToken),
	}, seed); err != nil {
		return err
	}

	tokens, err := auth.NewTokenService(cfg.JWTSecret, cfg.JWTTTL)
	if err != nil {
		return err
	}

	srv := server.NewServer(server.Config{
		Port:               cfg.Port,
		APIKey:             cfg.APIKey,
		TrustedProxies:     cfg.TrustedProxies,
		RateLimitPerMinute: cfg.RateLimitPerMinute,
	}, server.Dependencies{
		Store:   store,
		Game:    gameSvc,
		Staking: stakingSvc,
		Events:  eventlog.NewService(store),
		Tokens:  tokens,
		Hub:     hub,
	})

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	var runErr error
	select {
	case <-stop:
	case runErr = <-serverErr:
		logger.Error("Server failed", "error", runErr)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:             srv,
		Hub:                hub,
		Notifier:           handlers.Notifier,
		ResilientPublisher: publisher,
		Telemetry:          shutdownTracing,
		Store:              store,
	})
	return runErr
}

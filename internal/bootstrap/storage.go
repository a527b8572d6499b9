package bootstrap

import (
	"context"
	"fmt"

	"github.com/osse101/LithosProtocol_Go/internal/config"
	"github.com/osse101/LithosProtocol_Go/internal/database"
	"github.com/osse101/LithosProtocol_Go/internal/database/memory"
	"github.com/osse101/LithosProtocol_Go/internal/database/postgres"
	"github.com/osse101/LithosProtocol_Go/internal/logger"
	"github.com/osse101/LithosProtocol_Go/internal/repository"
)

// OpenStore opens the configured state store. PostgreSQL stores are
// migrated to the latest schema before use.
func OpenStore(ctx context.Context, cfg *config.Config) (repository.Store, error) {
	if !cfg.UsesPostgres() {
		logger.Info(LogMsgStoreOpened, "backend", config.BackendMemory)
		return memory.NewStore(), nil
	}

	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDatabase, err)
	}
	if err := database.Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}

	logger.Info(LogMsgStoreOpened, "backend", config.BackendPostgres, "db_name", cfg.DBName)
	return postgres.NewStore(pool), nil
}

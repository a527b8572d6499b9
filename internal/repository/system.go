package repository

import (
	"context"

	"github.com/osse101/LithosProtocol_Go/internal/domain"
)

// SystemStore persists the game configuration, the global pause flag and
// the per-day economy metrics read by the balancing layer
type SystemStore interface {
	// GetGameConfig returns domain.ErrConfigNotFound before the first save
	GetGameConfig(ctx context.Context) (*domain.GameConfig, error)
	SaveGameConfig(ctx context.Context, cfg *domain.GameConfig) error

	IsPaused(ctx context.Context) (bool, error)
	SetPaused(ctx context.Context, paused bool) error

	// GetDailyMetrics returns zeroed metrics for a day without activity
	GetDailyMetrics(ctx context.Context, day int64) (*domain.DailyMetrics, error)
	SaveDailyMetrics(ctx context.Context, metrics *domain.DailyMetrics) error
}

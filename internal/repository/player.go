package repository

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	"github.com/osse101/LithosProtocol_Go/internal/domain"
)

// PlayerStore persists registered players
type PlayerStore interface {
	// GetPlayer returns domain.ErrNotRegistered when no player exists
	GetPlayer(ctx context.Context, addr common.Address) (*domain.Player, error)
	// InsertPlayer returns domain.ErrAlreadyRegistered on a duplicate address
	InsertPlayer(ctx context.Context, player *domain.Player) error
	UpdatePlayer(ctx context.Context, player *domain.Player) error
	CountPlayers(ctx context.Context) (int64, error)
}

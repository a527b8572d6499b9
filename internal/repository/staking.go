package repository

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	"github.com/osse101/LithosProtocol_Go/internal/domain"
)

// StakingStore persists pools and per-user positions
type StakingStore interface {
	// InsertPool assigns the next sequential pool id, starting at 1
	InsertPool(ctx context.Context, pool *domain.StakingPool) (int64, error)
	// GetPool returns domain.ErrPoolNotFound for unknown ids
	GetPool(ctx context.Context, id int64) (*domain.StakingPool, error)
	UpdatePool(ctx context.Context, pool *domain.StakingPool) error
	ListPools(ctx context.Context) ([]domain.StakingPool, error)

	// GetStake returns an empty position when the account never staked
	GetStake(ctx context.Context, poolID int64, account common.Address) (*domain.UserStake, error)
	SaveStake(ctx context.Context, stake *domain.UserStake) error
}

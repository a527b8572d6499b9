package repository

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	"github.com/osse101/LithosProtocol_Go/internal/domain"
)

// AccessStore persists (role, account) grants
type AccessStore interface {
	HasRole(ctx context.Context, role domain.Role, account common.Address) (bool, error)
	// GrantRole is idempotent
	GrantRole(ctx context.Context, role domain.Role, account common.Address) error
	RevokeRole(ctx context.Context, role domain.Role, account common.Address) error
	ListRoles(ctx context.Context, account common.Address) ([]domain.Role, error)
}

package access

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/osse101/LithosProtocol_Go/internal/domain"
	"github.com/osse101/LithosProtocol_Go/internal/repository"
)

// Require fails with domain.ErrUnauthorized unless caller holds role
func Require(ctx context.Context, store repository.AccessStore, role domain.Role, caller common.Address) error {
	ok, err := store.HasRole(ctx, role, caller)
	if err != nil {
		return fmt.Errorf("failed to check role %s: %w", role, err)
	}
	if !ok {
		return fmt.Errorf("%w: %s requires %s", domain.ErrUnauthorized, caller.Hex(), role)
	}
	return nil
}

// Grant gives role to account. The caller must hold admin.
func Grant(ctx context.Context, store repository.AccessStore, caller common.Address, role domain.Role, account common.Address) error {
	if err := Require(ctx, store, domain.RoleAdmin, caller); err != nil {
		return err
	}
	if !role.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidRole, role)
	}
	return store.GrantRole(ctx, role, account)
}

// Revoke removes role from account. The caller must hold admin.
func Revoke(ctx context.Context, store repository.AccessStore, caller common.Address, role domain.Role, account common.Address) error {
	if err := Require(ctx, store, domain.RoleAdmin, caller); err != nil {
		return err
	}
	if !role.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidRole, role)
	}
	return store.RevokeRole(ctx, role, account)
}

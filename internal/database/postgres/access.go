package postgres

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/osse101/LithosProtocol_Go/internal/domain"
)

func (t *stateTx) HasRole(ctx context.Context, role domain.Role, account common.Address) (bool, error) {
	var ok bool
	err := t.tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM role_grants WHERE role = $1 AND account = $2)`,
		string(role), account.Bytes()).Scan(&ok)
	if err != nil {
		return false, fmt.Errorf(ErrMsgQueryFailed, "role", err)
	}
	return ok, nil
}

func (t *stateTx) GrantRole(ctx context.Context, role domain.Role, account common.Address) error {
	_, err := t.tx.Exec(ctx, `INSERT INTO role_grants (role, account) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		string(role), account.Bytes())
	if err != nil {
		return fmt.Errorf(ErrMsgWriteFailed, "role", err)
	}
	return nil
}

func (t *stateTx) RevokeRole(ctx context.Context, role domain.Role, account common.Address) error {
	if _, err := t.tx.Exec(ctx, `DELETE FROM role_grants WHERE role = $1 AND account = $2`, string(role), account.Bytes()); err != nil {
		return fmt.Errorf(ErrMsgWriteFailed, "role", err)
	}
	return nil
}

// ListRoles returns account's roles in domain.AllRoles order
func (t *stateTx) ListRoles(ctx context.Context, account common.Address) ([]domain.Role, error) {
	rows, err := t.tx.Query(ctx, `SELECT role FROM role_grants WHERE account = $1`, account.Bytes())
	if err != nil {
		return nil, fmt.Errorf(ErrMsgQueryFailed, "roles", err)
	}
	defer rows.Close()

	held := make(map[domain.Role]bool)
	for rows.Next() {
		var role string
		if err := rows.Scan(&role); err != nil {
			return nil, fmt.Errorf(ErrMsgScanFailed, "role", err)
		}
		held[domain.Role(role)] = true
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	var roles []domain.Role
	for _, role := range domain.AllRoles {
		if held[role] {
			roles = append(roles, role)
		}
	}
	return roles, nil
}

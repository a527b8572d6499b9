package game

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/osse101/LithosProtocol_Go/internal/access"
	"github.com/osse101/LithosProtocol_Go/internal/domain"
	"github.com/osse101/LithosProtocol_Go/internal/event"
	"github.com/osse101/LithosProtocol_Go/internal/logger"
	"github.com/osse101/LithosProtocol_Go/internal/operation"
	"github.com/osse101/LithosProtocol_Go/internal/repository"
)

// GetGameConfig returns the live configuration
func (s *service) GetGameConfig(ctx context.Context) (*domain.GameConfig, error) {
	var cfg *domain.GameConfig
	err := s.runner.View(ctx, func(ctx context.Context, tx repository.StateTx, now time.Time) error {
		var err error
		cfg, err = loadConfig(ctx, tx)
		return err
	})
	return cfg, err
}

// UpdateGameConfig replaces the configuration wholesale and bumps its version.
// It stays available while paused so a game master can fix the economy.
func (s *service) UpdateGameConfig(ctx context.Context, caller common.Address, cfg domain.GameConfig) (*domain.GameConfig, error) {
	var updated *domain.GameConfig
	err := s.runner.Run(ctx, OpUpdateGameConfig, caller, false, func(ctx context.Context, op *operation.Op) error {
		if err := access.Require(ctx, op.Tx, domain.RoleGameMaster, caller); err != nil {
			return err
		}
		next := cfg.Clone()
		if err := next.Validate(); err != nil {
			return err
		}
		current, err := loadConfig(ctx, op.Tx)
		if err != nil {
			return err
		}
		next.Version = current.Version + 1
		next.UpdatedAt = op.Now
		if err := op.Tx.SaveGameConfig(ctx, next); err != nil {
			return err
		}
		updated = next
		op.AfterCommit(func(ctx context.Context) {
			logger.FromContext(ctx).Info(LogMsgGameConfigUpdated, "version", next.Version, "by", caller.Hex())
		})
		return op.Record(ctx, event.NewGameConfigUpdatedEvent(next))
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Pause halts every gated operation. caller must hold pauser.
func (s *service) Pause(ctx context.Context, caller common.Address) error {
	return s.setPaused(ctx, OpPause, caller, true)
}

// Unpause resumes gated operations. caller must hold pauser.
func (s *service) Unpause(ctx context.Context, caller common.Address) error {
	return s.setPaused(ctx, OpUnpause, caller, false)
}

func (s *service) setPaused(ctx context.Context, name string, caller common.Address, paused bool) error {
	return s.runner.Run(ctx, name, caller, false, func(ctx context.Context, op *operation.Op) error {
		if err := access.Require(ctx, op.Tx, domain.RolePauser, caller); err != nil {
			return err
		}
		if err := op.Tx.SetPaused(ctx, paused); err != nil {
			return err
		}
		op.AfterCommit(func(ctx context.Context) {
			logger.FromContext(ctx).Info(LogMsgPauseChanged, "paused", paused, "by", caller.Hex())
		})
		return op.Record(ctx, event.NewPauseEvent(caller, paused))
	})
}

// IsPaused reports the global pause flag
func (s *service) IsPaused(ctx context.Context) (bool, error) {
	var paused bool
	err := s.runner.View(ctx, func(ctx context.Context, tx repository.StateTx, now time.Time) error {
		var err error
		paused, err = tx.IsPaused(ctx)
		return err
	})
	return paused, err
}

// GrantRole gives role to account. caller must hold admin.
func (s *service) GrantRole(ctx context.Context, caller common.Address, role domain.Role, account common.Address) error {
	return s.runner.Run(ctx, OpGrantRole, caller, false, func(ctx context.Context, op *operation.Op) error {
		if err := access.Grant(ctx, op.Tx, caller, role, account); err != nil {
			return err
		}
		return op.Record(ctx, event.NewRoleEvent(true, role, account, caller))
	})
}

// RevokeRole removes role from account. caller must hold admin.
func (s *service) RevokeRole(ctx context.Context, caller common.Address, role domain.Role, account common.Address) error {
	return s.runner.Run(ctx, OpRevokeRole, caller, false, func(ctx context.Context, op *operation.Op) error {
		if err := access.Revoke(ctx, op.Tx, caller, role, account); err != nil {
			return err
		}
		return op.Record(ctx, event.NewRoleEvent(false, role, account, caller))
	})
}

// GetRoles lists the roles held by account
func (s *service) GetRoles(ctx context.Context, account common.Address) ([]domain.Role, error) {
	var roles []domain.Role
	err := s.runner.View(ctx, func(ctx context.Context, tx repository.StateTx, now time.Time) error {
		var err error
		roles, err = tx.ListRoles(ctx, account)
		return err
	})
	return roles, err
}

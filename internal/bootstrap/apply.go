package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/osse101/LithosProtocol_Go/internal/clock"
	"github.com/osse101/LithosProtocol_Go/internal/domain"
	"github.com/osse101/LithosProtocol_Go/internal/event"
	"github.com/osse101/LithosProtocol_Go/internal/eventlog"
	"github.com/osse101/LithosProtocol_Go/internal/game"
	"github.com/osse101/LithosProtocol_Go/internal/logger"
	"github.com/osse101/LithosProtocol_Go/internal/repository"
	"github.com/osse101/LithosProtocol_Go/internal/staking"
)

// SeedDependencies holds what ApplySeed needs
type SeedDependencies struct {
	Store     repository.Store
	Publisher event.Publisher
	Clock     clock.Clock
	Game      game.Service
	Staking   staking.Service

	// Admin receives every role and performs the seeding operations
	Admin common.Address
	// System is the operator account; it receives minter, burner and
	// staking_operator
	System common.Address
	// GovernanceToken is the default staking token of token pools
	GovernanceToken common.Address
}

// systemRoles are granted to the operator account so reward minting,
// cost burning and stake flagging can run on behalf of players
var systemRoles = []domain.Role{domain.RoleMinter, domain.RoleBurner, domain.RoleStakingOperator}

// ApplySeed initializes an empty store from seed and reports whether it did
// anything. A store is empty until a game configuration has been saved; the
// configuration is written last so an interrupted seed is resumed on the next
// boot. Resources, quests and pools whose names already exist are skipped.
// It must run before the server accepts requests.
func ApplySeed(ctx context.Context, deps SeedDependencies, seed *Seed) (bool, error) {
	seeded, err := isSeeded(ctx, deps.Store)
	if err != nil {
		return false, err
	}
	if seeded {
		logger.Info(LogMsgSeedSkipped)
		return false, nil
	}

	logger.Info(LogMsgApplyingSeed, "version", seed.Version)

	if err := grantSeedRoles(ctx, deps, seed); err != nil {
		return false, err
	}
	if err := seedResources(ctx, deps, seed); err != nil {
		return false, err
	}
	if err := seedQuests(ctx, deps, seed); err != nil {
		return false, err
	}
	if err := seedPools(ctx, deps, seed); err != nil {
		return false, err
	}

	cfg, err := seed.GameConfig()
	if err != nil {
		return false, err
	}
	applied, err := deps.Game.UpdateGameConfig(ctx, deps.Admin, cfg)
	if err != nil {
		return false, fmt.Errorf(ErrMsgSeedStep, "game config", err)
	}

	logger.Info(LogMsgSeedApplied,
		"config_version", applied.Version,
		"resources", len(seed.Resources),
		"quests", len(seed.Quests),
		"pools", len(seed.Pools))
	return true, nil
}

func isSeeded(ctx context.Context, store repository.Store) (bool, error) {
	tx, err := store.BeginTx(ctx)
	if err != nil {
		return false, err
	}
	defer repository.SafeRollback(ctx, tx)

	_, err = tx.GetGameConfig(ctx)
	switch {
	case errors.Is(err, domain.ErrConfigNotFound):
		return false, nil
	case err != nil:
		return false, err
	}
	return true, nil
}

// grantSeedRoles bootstraps access control directly on the store, since no
// account holds admin yet to grant it through the service.
func grantSeedRoles(ctx context.Context, deps SeedDependencies, seed *Seed) error {
	type grant struct {
		role    domain.Role
		account common.Address
	}
	var grants []grant
	for _, r := range domain.AllRoles {
		grants = append(grants, grant{r, deps.Admin})
	}
	for _, r := range systemRoles {
		grants = append(grants, grant{r, deps.System})
	}
	for _, r := range seed.Roles {
		grants = append(grants, grant{r.Role, common.HexToAddress(r.Account)})
	}

	tx, err := deps.Store.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer repository.SafeRollback(ctx, tx)

	rec := eventlog.NewRecorder(tx, deps.Admin, deps.Clock.Now())
	for _, g := range grants {
		if !g.role.Valid() {
			return fmt.Errorf("%w: %q", domain.ErrInvalidRole, g.role)
		}
		if err := tx.GrantRole(ctx, g.role, g.account); err != nil {
			return fmt.Errorf(ErrMsgSeedStep, "roles", err)
		}
		if err := rec.Record(ctx, event.NewRoleEvent(true, g.role, g.account, deps.Admin)); err != nil {
			return err
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf(ErrMsgSeedStep, "roles", err)
	}
	rec.Publish(ctx, deps.Publisher)
	return nil
}

func seedResources(ctx context.Context, deps SeedDependencies, seed *Seed) error {
	existing, err := deps.Game.ListResourceTypes(ctx)
	if err != nil {
		return err
	}
	have := make(map[string]bool, len(existing))
	for _, rt := range existing {
		have[rt.Name] = true
	}

	for _, r := range seed.Resources {
		if have[r.Name] {
			continue
		}
		_, err := deps.Game.CreateResourceType(ctx, deps.Admin, game.CreateResourceTypeRequest{
			Name:      r.Name,
			Category:  r.Category,
			Rarity:    r.Rarity,
			MaxSupply: r.MaxSupply,
		})
		if err != nil {
			return fmt.Errorf(ErrMsgSeedItem, "resource", r.Name, err)
		}
	}
	return nil
}

func seedQuests(ctx context.Context, deps SeedDependencies, seed *Seed) error {
	existing, err := deps.Game.ListQuests(ctx, false)
	if err != nil {
		return err
	}
	have := make(map[string]bool, len(existing))
	for _, q := range existing {
		have[q.Name] = true
	}

	for _, q := range seed.Quests {
		if have[q.Name] {
			continue
		}
		reward, err := q.Reward.Tokens()
		if err != nil {
			return err
		}
		level := q.RequiredLevel
		if level == 0 {
			level = 1
		}
		_, err = deps.Game.CreateQuest(ctx, deps.Admin, game.CreateQuestRequest{
			Name:          q.Name,
			Description:   q.Description,
			RewardAmount:  reward,
			RequiredLevel: level,
			IsDaily:       q.Daily,
		})
		if err != nil {
			return fmt.Errorf(ErrMsgSeedItem, "quest", q.Name, err)
		}
	}
	return nil
}

func seedPools(ctx context.Context, deps SeedDependencies, seed *Seed) error {
	existing, err := deps.Staking.ListPools(ctx)
	if err != nil {
		return err
	}
	have := make(map[string]bool, len(existing))
	for _, p := range existing {
		have[p.Name] = true
	}

	for _, p := range seed.Pools {
		if have[p.Name] {
			continue
		}
		rate, err := p.RewardRate.Tokens()
		if err != nil {
			return err
		}
		lock, err := p.lockPeriod()
		if err != nil {
			return err
		}
		maxStake, err := p.maxStake()
		if err != nil {
			return err
		}
		_, err = deps.Staking.CreatePool(ctx, deps.Admin, staking.CreatePoolRequest{
			Name:            p.Name,
			PoolType:        p.Type,
			StakingToken:    p.stakingToken(deps.GovernanceToken),
			RewardRate:      rate,
			LockPeriod:      lock,
			MaxStakePerUser: maxStake,
		})
		if err != nil {
			return fmt.Errorf(ErrMsgSeedItem, "pool", p.Name, err)
		}
	}
	return nil
}

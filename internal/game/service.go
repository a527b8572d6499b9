package game

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/osse101/LithosProtocol_Go/internal/asset"
	"github.com/osse101/LithosProtocol_Go/internal/balancing"
	"github.com/osse101/LithosProtocol_Go/internal/domain"
	"github.com/osse101/LithosProtocol_Go/internal/event"
	"github.com/osse101/LithosProtocol_Go/internal/ledger"
	"github.com/osse101/LithosProtocol_Go/internal/operation"
	"github.com/osse101/LithosProtocol_Go/internal/repository"
)

// Service is the game economy state machine. Mutating calls take the
// authenticated caller and run atomically; any error leaves no effect.
type Service interface {
	// Players
	RegisterPlayer(ctx context.Context, caller common.Address) (*domain.Player, error)
	GetPlayerData(ctx context.Context, addr common.Address) (*domain.PlayerData, error)
	GetPlayerAssets(ctx context.Context, addr common.Address) ([]domain.Asset, error)
	GetBalance(ctx context.Context, addr common.Address) (*big.Int, error)

	// Quests
	CreateQuest(ctx context.Context, caller common.Address, req CreateQuestRequest) (*domain.Quest, error)
	SetQuestActive(ctx context.Context, caller common.Address, questID int64, active bool) error
	GetQuest(ctx context.Context, questID int64) (*domain.Quest, error)
	ListQuests(ctx context.Context, activeOnly bool) ([]domain.Quest, error)
	CompleteQuest(ctx context.Context, caller common.Address, questID int64) (*domain.QuestCompletion, error)

	// Competition
	RecordPvPResult(ctx context.Context, caller, winner, loser common.Address) (*PvPResult, error)
	EnterTournament(ctx context.Context, caller common.Address, tournamentID int64) (*domain.TournamentEntry, error)
	DistributeLeaderboardRewards(ctx context.Context, caller common.Address, winners []common.Address) (*big.Int, error)

	// Items
	CraftItem(ctx context.Context, caller common.Address, req CraftRequest) (*CraftResult, error)
	RepairItem(ctx context.Context, caller common.Address, tokenID int64) (*big.Int, error)
	LevelUpAsset(ctx context.Context, caller common.Address, tokenID int64) (*domain.Asset, error)

	// Resources
	CreateResourceType(ctx context.Context, caller common.Address, req CreateResourceTypeRequest) (*domain.ResourceType, error)
	SetResourceTypeActive(ctx context.Context, caller common.Address, id int64, active bool) error
	MintResources(ctx context.Context, caller, to common.Address, ids, amounts []int64) error
	GetResourceBalance(ctx context.Context, id int64, account common.Address) (int64, error)
	ListResourceTypes(ctx context.Context) ([]domain.ResourceType, error)

	// Administration
	GetGameConfig(ctx context.Context) (*domain.GameConfig, error)
	UpdateGameConfig(ctx context.Context, caller common.Address, cfg domain.GameConfig) (*domain.GameConfig, error)
	Pause(ctx context.Context, caller common.Address) error
	Unpause(ctx context.Context, caller common.Address) error
	IsPaused(ctx context.Context) (bool, error)
	GrantRole(ctx context.Context, caller common.Address, role domain.Role, account common.Address) error
	RevokeRole(ctx context.Context, caller common.Address, role domain.Role, account common.Address) error
	GetRoles(ctx context.Context, account common.Address) ([]domain.Role, error)
}

// Config binds the game to its token and operator account
type Config struct {
	// UtilityToken is the ledger token used for rewards and costs
	UtilityToken common.Address
	// SystemAccount mints rewards and burns costs; it must hold minter and burner
	SystemAccount common.Address
}

// CreateQuestRequest describes a new quest
type CreateQuestRequest struct {
	Name          string
	Description   string
	RewardAmount  *big.Int
	RequiredLevel int
	IsDaily       bool
}

// CraftRequest describes a crafting action
type CraftRequest struct {
	AssetType       domain.AssetType
	Rarity          int
	ResourceIDs     []int64
	ResourceAmounts []int64
	MetadataURI     string
}

// CraftResult is the outcome of a successful craft
type CraftResult struct {
	Asset    *domain.Asset `json:"asset"`
	Cost     *big.Int      `json:"cost"`
	XPGained int64         `json:"xp_gained"`
	NewLevel int           `json:"new_level"`
}

// PvPResult is the outcome of a recorded match
type PvPResult struct {
	Winner   domain.Player `json:"winner"`
	Loser    domain.Player `json:"loser"`
	Reward   *big.Int      `json:"reward"`
	XPGained int64         `json:"xp_gained"`
}

// CreateResourceTypeRequest describes a new resource type
type CreateResourceTypeRequest struct {
	Name      string
	Category  domain.ResourceCategory
	Rarity    int
	MaxSupply int64
}

type service struct {
	runner  *operation.Runner
	cfg     Config
	policy  *balancing.Policy
	players *playerCache
}

// NewService creates the game service. policy may be nil to disable balancing.
func NewService(runner *operation.Runner, cfg Config, policy *balancing.Policy) Service {
	return &service{
		runner:  runner,
		cfg:     cfg,
		policy:  policy,
		players: newPlayerCache(),
	}
}

func (s *service) utility(tx repository.StateTx) *ledger.Ledger {
	return ledger.New(tx, s.cfg.UtilityToken)
}

// loadConfig returns the live config, or the defaults before one is set
func loadConfig(ctx context.Context, tx repository.StateTx) (*domain.GameConfig, error) {
	cfg, err := tx.GetGameConfig(ctx)
	if errors.Is(err, domain.ErrConfigNotFound) {
		return domain.DefaultGameConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLoadConfigFailed, err)
	}
	return cfg, nil
}

// grantExperience adds xp to p, persists it and records a level up event
func (s *service) grantExperience(ctx context.Context, op *operation.Op, p *domain.Player, xp int64, source string) error {
	oldLevel, newLevel := applyExperience(p, xp)
	p.UpdatedAt = op.Now
	if err := op.Tx.UpdatePlayer(ctx, p); err != nil {
		return err
	}
	if newLevel > oldLevel {
		if err := op.Record(ctx, event.NewPlayerLeveledUpEvent(p.Address, oldLevel, newLevel, p.Experience, source)); err != nil {
			return err
		}
	}
	op.AfterCommit(func(context.Context) { s.players.Invalidate(p.Address) })
	return nil
}

// newRegistry binds the unique asset registry to the operation
func newRegistry(op *operation.Op) *asset.Registry {
	return asset.NewRegistry(op.Tx, op.Now)
}

// newResources binds the resource registry to the operation
func newResources(op *operation.Op) *asset.Resources {
	return asset.NewResources(op.Tx, op.Now)
}

package game

import (
	"context"
	"math"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/LithosProtocol_Go/internal/balancing"
	"github.com/osse101/LithosProtocol_Go/internal/clock"
	"github.com/osse101/LithosProtocol_Go/internal/concurrency"
	"github.com/osse101/LithosProtocol_Go/internal/database/memory"
	"github.com/osse101/LithosProtocol_Go/internal/domain"
	"github.com/osse101/LithosProtocol_Go/internal/event"
	"github.com/osse101/LithosProtocol_Go/internal/operation"
	"github.com/osse101/LithosProtocol_Go/internal/repository"
)

var (
	admin   = common.HexToAddress("0x00000000000000000000000000000000000000ad")
	system  = common.HexToAddress("0x0000000000000000000000000000000000005e55")
	alice   = common.HexToAddress("0x00000000000000000000000000000000000a11ce")
	bob     = common.HexToAddress("0x0000000000000000000000000000000000000b0b")
	utility = common.HexToAddress("0x0000000000000000000000000000000000007070")

	// 2023-11-14 22:13:20 UTC, mid-day so a day boundary is hours away
	genesis = time.Unix(1_700_000_000, 0).UTC()
)

type fixture struct {
	svc   Service
	store *memory.Store
	clock *clock.SimulatedClock
	bus   *event.MemoryBus
}

func newFixture(t *testing.T, policy *balancing.Policy) *fixture {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()

	tx, err := store.BeginTx(ctx)
	require.NoError(t, err)
	for _, role := range domain.AllRoles {
		require.NoError(t, tx.GrantRole(ctx, role, admin))
	}
	require.NoError(t, tx.GrantRole(ctx, domain.RoleMinter, system))
	require.NoError(t, tx.GrantRole(ctx, domain.RoleBurner, system))
	require.NoError(t, tx.Commit(ctx))

	clk := clock.NewSimulatedClock(genesis)
	bus := event.NewMemoryBus()
	runner := operation.NewRunner(store, concurrency.NewGuard(), clk, bus)
	svc := NewService(runner, Config{UtilityToken: utility, SystemAccount: system}, policy)
	return &fixture{svc: svc, store: store, clock: clk, bus: bus}
}

// fund credits amount utility to account outside any game operation
func (f *fixture) fund(t *testing.T, account common.Address, amount *big.Int) {
	t.Helper()
	ctx := context.Background()
	tx, err := f.store.BeginTx(ctx)
	require.NoError(t, err)
	defer repository.SafeRollback(ctx, tx)

	bal, err := tx.GetBalance(ctx, utility, account)
	require.NoError(t, err)
	supply, err := tx.GetTotalSupply(ctx, utility)
	require.NoError(t, err)
	require.NoError(t, tx.SetBalance(ctx, utility, account, bal.Add(bal, amount)))
	require.NoError(t, tx.SetTotalSupply(ctx, utility, supply.Add(supply, amount)))
	require.NoError(t, tx.Commit(ctx))
}

func (f *fixture) balance(t *testing.T, account common.Address) *big.Int {
	t.Helper()
	bal, err := f.svc.GetBalance(context.Background(), account)
	require.NoError(t, err)
	return bal
}

func (f *fixture) register(t *testing.T, accounts ...common.Address) {
	t.Helper()
	for _, a := range accounts {
		_, err := f.svc.RegisterPlayer(context.Background(), a)
		require.NoError(t, err)
	}
}

func (f *fixture) quest(t *testing.T, reward int64, level int, daily bool) *domain.Quest {
	t.Helper()
	q, err := f.svc.CreateQuest(context.Background(), admin, CreateQuestRequest{
		Name:          "quest",
		RewardAmount:  domain.Tokens(reward),
		RequiredLevel: level,
		IsDaily:       daily,
	})
	require.NoError(t, err)
	return q
}

func TestRegisterPlayer(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	p, err := f.svc.RegisterPlayer(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, 1, p.Level)
	assert.Equal(t, int64(0), p.Experience)
	assert.Zero(t, p.PvPWins)
	assert.Zero(t, p.PvPLosses)
	assert.True(t, p.IsActive)

	_, err = f.svc.RegisterPlayer(ctx, alice)
	assert.ErrorIs(t, err, domain.ErrAlreadyRegistered)
}

func TestQuestLifecycle_EndToEnd(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	f.register(t, alice)

	q := f.quest(t, 100, 1, false)
	assert.Equal(t, int64(1), q.ID)

	c, err := f.svc.CompleteQuest(ctx, alice, q.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.Tokens(100), c.Reward)
	assert.Equal(t, int64(100), c.XPGained)
	assert.True(t, c.LeveledUp)

	assert.Equal(t, domain.Tokens(100), f.balance(t, alice))
	data, err := f.svc.GetPlayerData(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, int64(100), data.Experience)
	assert.Equal(t, 2, data.Level)
	assert.Equal(t, int64(400), data.NextLevelXP)
	assert.Equal(t, domain.Tokens(100).String(), data.UtilityBalance)

	_, err = f.svc.CompleteQuest(ctx, alice, q.ID)
	assert.ErrorIs(t, err, domain.ErrQuestAlreadyCompleted)
	assert.Equal(t, domain.Tokens(100), f.balance(t, alice))

	// One-time quests stay completed across days
	f.clock.Advance(72 * time.Hour)
	_, err = f.svc.CompleteQuest(ctx, alice, q.ID)
	assert.ErrorIs(t, err, domain.ErrQuestAlreadyCompleted)
}

func TestQuestIDsAreSequential(t *testing.T) {
	f := newFixture(t, nil)
	for want := int64(1); want <= 3; want++ {
		assert.Equal(t, want, f.quest(t, 1, 1, false).ID)
	}
}

func TestCompleteQuest_DailyOncePerBucket(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	f.register(t, alice)

	daily := f.quest(t, 10, 1, true)
	other := f.quest(t, 10, 1, true)

	c, err := f.svc.CompleteQuest(ctx, alice, daily.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.DayBucket(genesis), c.DayBucket)

	_, err = f.svc.CompleteQuest(ctx, alice, daily.ID)
	assert.ErrorIs(t, err, domain.ErrDailyQuestAlreadyCompleted)
	_, err = f.svc.CompleteQuest(ctx, alice, other.ID)
	assert.ErrorIs(t, err, domain.ErrDailyQuestAlreadyCompleted)

	// Move to the first second of the next bucket
	next := time.Unix((domain.DayBucket(genesis)+1)*domain.SecondsPerDay, 0).UTC()
	f.clock.Set(next)

	_, err = f.svc.CompleteQuest(ctx, alice, daily.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.Tokens(20), f.balance(t, alice))
}

func TestCompleteQuest_Preconditions(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	f.register(t, alice)

	_, err := f.svc.CompleteQuest(ctx, bob, 1)
	assert.ErrorIs(t, err, domain.ErrNotRegistered)

	_, err = f.svc.CompleteQuest(ctx, alice, 42)
	assert.ErrorIs(t, err, domain.ErrQuestNotFound)

	hard := f.quest(t, 10, 5, false)
	_, err = f.svc.CompleteQuest(ctx, alice, hard.ID)
	assert.ErrorIs(t, err, domain.ErrLevelTooLow)

	q := f.quest(t, 10, 1, false)
	require.NoError(t, f.svc.SetQuestActive(ctx, admin, q.ID, false))
	_, err = f.svc.CompleteQuest(ctx, alice, q.ID)
	assert.ErrorIs(t, err, domain.ErrQuestNotActive)

	active, err := f.svc.ListQuests(ctx, true)
	require.NoError(t, err)
	assert.Len(t, active, 1)

	assert.Equal(t, 0, f.balance(t, alice).Sign())
}

func TestCreateQuest_Validation(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	_, err := f.svc.CreateQuest(ctx, alice, CreateQuestRequest{Name: "q", RewardAmount: big.NewInt(1), RequiredLevel: 1})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = f.svc.CreateQuest(ctx, admin, CreateQuestRequest{Name: " ", RewardAmount: big.NewInt(1), RequiredLevel: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.svc.CreateQuest(ctx, admin, CreateQuestRequest{Name: "q", RewardAmount: big.NewInt(-1), RequiredLevel: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	_, err = f.svc.CreateQuest(ctx, admin, CreateQuestRequest{Name: "q", RewardAmount: big.NewInt(1), RequiredLevel: 101})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPause_GatesBeforeAuthorization(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	f.register(t, alice)

	assert.ErrorIs(t, f.svc.Pause(ctx, alice), domain.ErrUnauthorized)
	require.NoError(t, f.svc.Pause(ctx, admin))

	paused, err := f.svc.IsPaused(ctx)
	require.NoError(t, err)
	assert.True(t, paused)

	// Unauthorized callers see the halt first
	_, err = f.svc.CreateQuest(ctx, alice, CreateQuestRequest{Name: "q", RewardAmount: big.NewInt(1), RequiredLevel: 1})
	assert.ErrorIs(t, err, domain.ErrPaused)
	_, err = f.svc.RegisterPlayer(ctx, bob)
	assert.ErrorIs(t, err, domain.ErrPaused)

	// Configuration stays editable while halted
	cfg := *domain.DefaultGameConfig()
	_, err = f.svc.UpdateGameConfig(ctx, admin, cfg)
	assert.NoError(t, err)

	require.NoError(t, f.svc.Unpause(ctx, admin))
	_, err = f.svc.RegisterPlayer(ctx, bob)
	assert.NoError(t, err)
}

func TestRecordPvPResult(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	f.register(t, alice, bob)

	_, err := f.svc.RecordPvPResult(ctx, alice, alice, bob)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	stranger := common.HexToAddress("0x0000000000000000000000000000000000000123")
	_, err = f.svc.RecordPvPResult(ctx, admin, alice, stranger)
	assert.ErrorIs(t, err, domain.ErrNotRegistered)

	res, err := f.svc.RecordPvPResult(ctx, admin, alice, bob)
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.Winner.PvPWins)
	assert.Equal(t, int64(1), res.Loser.PvPLosses)
	assert.Equal(t, int64(domain.PvPWinXP), res.Winner.Experience)

	assert.Equal(t, domain.DefaultGameConfig().PvPWinReward, f.balance(t, alice))
	assert.Equal(t, 0, f.balance(t, bob).Sign())

	bobData, err := f.svc.GetPlayerData(ctx, bob)
	require.NoError(t, err)
	assert.Equal(t, int64(0), bobData.Experience)
	assert.Equal(t, int64(1), bobData.PvPLosses)
}

func TestCraftItem_Atomicity(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	f.register(t, alice)
	f.fund(t, alice, domain.Tokens(100))

	ore, err := f.svc.CreateResourceType(ctx, admin, CreateResourceTypeRequest{Name: "Iron", Category: domain.ResourceOre, Rarity: 1})
	require.NoError(t, err)
	gem, err := f.svc.CreateResourceType(ctx, admin, CreateResourceTypeRequest{Name: "Ruby", Category: domain.ResourceGem, Rarity: 3})
	require.NoError(t, err)
	require.NoError(t, f.svc.MintResources(ctx, admin, alice, []int64{ore.ID, gem.ID}, []int64{5, 1}))

	req := CraftRequest{
		AssetType:       domain.AssetTypeWeapon,
		Rarity:          3,
		ResourceIDs:     []int64{ore.ID, gem.ID},
		ResourceAmounts: []int64{2, 3},
		MetadataURI:     "ipfs://sword",
	}
	_, err = f.svc.CraftItem(ctx, alice, req)
	assert.ErrorIs(t, err, domain.ErrInsufficientResources)

	assert.Equal(t, domain.Tokens(100), f.balance(t, alice))
	oreBal, err := f.svc.GetResourceBalance(ctx, ore.ID, alice)
	require.NoError(t, err)
	assert.Equal(t, int64(5), oreBal)
	assets, err := f.svc.GetPlayerAssets(ctx, alice)
	require.NoError(t, err)
	assert.Empty(t, assets)

	req.ResourceAmounts = []int64{2, 1}
	res, err := f.svc.CraftItem(ctx, alice, req)
	require.NoError(t, err)
	assert.Equal(t, domain.Tokens(50), res.Cost)
	assert.Equal(t, int64(15), res.XPGained)
	assert.Equal(t, alice, res.Asset.Owner)
	assert.Equal(t, 3, res.Asset.Rarity)

	assert.Equal(t, domain.Tokens(50), f.balance(t, alice))
	oreBal, err = f.svc.GetResourceBalance(ctx, ore.ID, alice)
	require.NoError(t, err)
	assert.Equal(t, int64(3), oreBal)
	gemBal, err := f.svc.GetResourceBalance(ctx, gem.ID, alice)
	require.NoError(t, err)
	assert.Equal(t, int64(0), gemBal)
}

func TestCraftItem_Rejections(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	f.register(t, alice)

	_, err := f.svc.CraftItem(ctx, bob, CraftRequest{AssetType: domain.AssetTypeArmor, Rarity: 1})
	assert.ErrorIs(t, err, domain.ErrNotRegistered)

	_, err = f.svc.CraftItem(ctx, alice, CraftRequest{AssetType: domain.AssetTypeArmor, Rarity: 1, ResourceIDs: []int64{1}})
	assert.ErrorIs(t, err, domain.ErrLengthMismatch)

	_, err = f.svc.CraftItem(ctx, alice, CraftRequest{AssetType: domain.AssetTypeArmor, Rarity: 6})
	assert.ErrorIs(t, err, domain.ErrInvalidRarity)

	_, err = f.svc.CraftItem(ctx, alice, CraftRequest{AssetType: domain.AssetTypeArmor, Rarity: 1})
	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)
}

func TestResourceBatches_RejectOverflowingTotals(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	f.register(t, alice, bob)
	f.fund(t, alice, domain.Tokens(100))

	ore, err := f.svc.CreateResourceType(ctx, admin, CreateResourceTypeRequest{Name: "Iron", Category: domain.ResourceOre, Rarity: 1})
	require.NoError(t, err)
	gold, err := f.svc.CreateResourceType(ctx, admin, CreateResourceTypeRequest{Name: "Gold", Category: domain.ResourceOre, Rarity: 2, MaxSupply: 10})
	require.NoError(t, err)

	_, err = f.svc.CraftItem(ctx, alice, CraftRequest{
		AssetType:       domain.AssetTypeWeapon,
		Rarity:          1,
		ResourceIDs:     []int64{ore.ID, ore.ID},
		ResourceAmounts: []int64{math.MaxInt64, 2},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	oreBal, err := f.svc.GetResourceBalance(ctx, ore.ID, alice)
	require.NoError(t, err)
	assert.Zero(t, oreBal)
	assert.Equal(t, domain.Tokens(100), f.balance(t, alice))

	err = f.svc.MintResources(ctx, admin, bob, []int64{gold.ID, gold.ID}, []int64{math.MaxInt64, 2})
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	goldBal, err := f.svc.GetResourceBalance(ctx, gold.ID, bob)
	require.NoError(t, err)
	assert.Zero(t, goldBal)
}

func TestRepairItem(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	f.register(t, alice, bob)
	f.fund(t, alice, domain.Tokens(100))

	res, err := f.svc.CraftItem(ctx, alice, CraftRequest{AssetType: domain.AssetTypeTool, Rarity: 1})
	require.NoError(t, err)
	id := res.Asset.TokenID

	_, err = f.svc.RepairItem(ctx, bob, id)
	assert.ErrorIs(t, err, domain.ErrNotAssetOwner)

	cost, err := f.svc.RepairItem(ctx, alice, id)
	require.NoError(t, err)
	assert.Equal(t, domain.Tokens(10), cost)
	assert.Equal(t, domain.Tokens(40), f.balance(t, alice))

	assets, err := f.svc.GetPlayerAssets(ctx, alice)
	require.NoError(t, err)
	require.Len(t, assets, 1)
	require.NotNil(t, assets[0].LastRepairedAt)
	assert.Equal(t, genesis, *assets[0].LastRepairedAt)
}

func TestLevelUpAsset(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	f.register(t, alice)
	f.fund(t, alice, domain.Tokens(50))

	res, err := f.svc.CraftItem(ctx, alice, CraftRequest{AssetType: domain.AssetTypeLand, Rarity: 2})
	require.NoError(t, err)

	_, err = f.svc.LevelUpAsset(ctx, alice, res.Asset.TokenID)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	a, err := f.svc.LevelUpAsset(ctx, admin, res.Asset.TokenID)
	require.NoError(t, err)
	assert.Equal(t, 2, a.Level)
}

func TestEnterTournament(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	f.register(t, alice)
	f.fund(t, alice, domain.Tokens(30))

	entry, err := f.svc.EnterTournament(ctx, alice, 7)
	require.NoError(t, err)
	assert.Equal(t, domain.Tokens(20), entry.Fee)
	assert.Equal(t, domain.Tokens(10), f.balance(t, alice))

	_, err = f.svc.EnterTournament(ctx, alice, 7)
	assert.ErrorIs(t, err, domain.ErrAlreadyEnteredTournament)
	assert.Equal(t, domain.Tokens(10), f.balance(t, alice))

	_, err = f.svc.EnterTournament(ctx, alice, 8)
	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)
}

func TestDistributeLeaderboardRewards(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	f.register(t, alice, bob)

	stranger := common.HexToAddress("0x0000000000000000000000000000000000000123")
	_, err := f.svc.DistributeLeaderboardRewards(ctx, admin, []common.Address{alice, stranger})
	assert.ErrorIs(t, err, domain.ErrNotRegistered)
	assert.Equal(t, 0, f.balance(t, alice).Sign())

	_, err = f.svc.DistributeLeaderboardRewards(ctx, admin, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.svc.DistributeLeaderboardRewards(ctx, admin, []common.Address{alice, bob, alice})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, 0, f.balance(t, alice).Sign())
	assert.Equal(t, 0, f.balance(t, bob).Sign())

	each, err := f.svc.DistributeLeaderboardRewards(ctx, admin, []common.Address{alice, bob})
	require.NoError(t, err)
	assert.Equal(t, domain.Tokens(100), each)
	assert.Equal(t, domain.Tokens(100), f.balance(t, alice))
	assert.Equal(t, domain.Tokens(100), f.balance(t, bob))
}

func TestUpdateGameConfig(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	f.register(t, alice, bob)

	initial, err := f.svc.GetGameConfig(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), initial.Version)

	cfg := *domain.DefaultGameConfig()
	cfg.PvPWinReward = domain.Tokens(7)

	_, err = f.svc.UpdateGameConfig(ctx, alice, cfg)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	bad := cfg
	bad.RepairCost = big.NewInt(-1)
	_, err = f.svc.UpdateGameConfig(ctx, admin, bad)
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)

	updated, err := f.svc.UpdateGameConfig(ctx, admin, cfg)
	require.NoError(t, err)
	assert.Equal(t, int64(1), updated.Version)

	updated, err = f.svc.UpdateGameConfig(ctx, admin, cfg)
	require.NoError(t, err)
	assert.Equal(t, int64(2), updated.Version)

	// PvP reads the live value
	_, err = f.svc.RecordPvPResult(ctx, admin, alice, bob)
	require.NoError(t, err)
	assert.Equal(t, domain.Tokens(7), f.balance(t, alice))
}

func TestQuestRewardFixedAtCreation(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	f.register(t, alice)

	q := f.quest(t, 3, 1, false)

	cfg := *domain.DefaultGameConfig()
	cfg.DailyQuestReward = domain.Tokens(999)
	_, err := f.svc.UpdateGameConfig(ctx, admin, cfg)
	require.NoError(t, err)

	c, err := f.svc.CompleteQuest(ctx, alice, q.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.Tokens(3), c.Reward)
}

func TestRoles(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	assert.ErrorIs(t, f.svc.GrantRole(ctx, alice, domain.RoleOracle, alice), domain.ErrUnauthorized)
	assert.ErrorIs(t, f.svc.GrantRole(ctx, admin, domain.Role("wizard"), alice), domain.ErrInvalidRole)

	require.NoError(t, f.svc.GrantRole(ctx, admin, domain.RoleOracle, alice))
	roles, err := f.svc.GetRoles(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, []domain.Role{domain.RoleOracle}, roles)

	require.NoError(t, f.svc.RevokeRole(ctx, admin, domain.RoleOracle, alice))
	roles, err = f.svc.GetRoles(ctx, alice)
	require.NoError(t, err)
	assert.Empty(t, roles)
}

func TestEventsPublishedAfterCommit(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	var types []event.Type
	f.bus.Subscribe(event.Any, func(ctx context.Context, evt event.Event) error {
		types = append(types, evt.Type)
		return nil
	})

	f.register(t, alice)
	q := f.quest(t, 100, 1, false)
	_, err := f.svc.CompleteQuest(ctx, alice, q.ID)
	require.NoError(t, err)

	// Rejected operations publish nothing
	_, err = f.svc.CompleteQuest(ctx, alice, q.ID)
	require.Error(t, err)

	assert.Equal(t, []event.Type{
		event.PlayerRegistered,
		event.QuestCreated,
		event.PlayerLeveledUp,
		event.QuestCompleted,
	}, types)
}

func TestBalancing_ScalesRewardsAndCosts(t *testing.T) {
	cfg := balancing.DefaultConfig()
	cfg.Enabled = true
	cfg.DailyInflationBps = 50
	cfg.TargetDailyActions = 1
	cfg.PriceElasticity = decimal.RequireFromString("0.5")

	f := newFixture(t, balancing.NewPolicy(cfg))
	ctx := context.Background()
	f.register(t, alice, bob)
	f.fund(t, bob, domain.Tokens(10_000))
	f.fund(t, alice, domain.Tokens(100))

	// Budget is 50 tokens and nothing minted yet: full reward
	q := f.quest(t, 100, 1, false)
	c, err := f.svc.CompleteQuest(ctx, alice, q.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.Tokens(100), c.Reward)
	assert.Equal(t, int64(100), c.XPGained)

	// Budget exhausted: reward floored at the 0.25 multiplier, XP unchanged
	res, err := f.svc.RecordPvPResult(ctx, admin, alice, bob)
	require.NoError(t, err)
	want, _ := new(big.Int).SetString("1250000000000000000", 10)
	assert.Equal(t, want, res.Reward)
	assert.Equal(t, int64(domain.PvPWinXP), res.XPGained)

	// No actions yet today: cost multiplier 1 + 0.5 × (0 − 1) = 0.5
	craft, err := f.svc.CraftItem(ctx, alice, CraftRequest{AssetType: domain.AssetTypeWeapon, Rarity: 1})
	require.NoError(t, err)
	assert.Equal(t, domain.Tokens(25), craft.Cost)

	// One action so far: multiplier back at 1
	cost, err := f.svc.RepairItem(ctx, alice, craft.Asset.TokenID)
	require.NoError(t, err)
	assert.Equal(t, domain.Tokens(10), cost)
}

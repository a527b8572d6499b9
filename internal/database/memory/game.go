package memory

import (
	"context"
	"sort"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/osse101/LithosProtocol_Go/internal/domain"
)

// ---- Players ----

func (t *tx) GetPlayer(ctx context.Context, addr common.Address) (*domain.Player, error) {
	p, ok := t.s.players[addr]
	if !ok {
		return nil, domain.ErrNotRegistered
	}
	cp := *p
	return &cp, nil
}

func (t *tx) InsertPlayer(ctx context.Context, player *domain.Player) error {
	if _, ok := t.s.players[player.Address]; ok {
		return domain.ErrAlreadyRegistered
	}
	cp := *player
	put(t, t.s.players, player.Address, &cp)
	return nil
}

func (t *tx) UpdatePlayer(ctx context.Context, player *domain.Player) error {
	if _, ok := t.s.players[player.Address]; !ok {
		return domain.ErrNotRegistered
	}
	cp := *player
	put(t, t.s.players, player.Address, &cp)
	return nil
}

func (t *tx) CountPlayers(ctx context.Context) (int64, error) {
	return int64(len(t.s.players)), nil
}

// ---- Quests ----

func (t *tx) InsertQuest(ctx context.Context, quest *domain.Quest) (int64, error) {
	id := t.nextID(&t.s.nextQuestID)
	q := quest.Clone()
	q.ID = id
	put(t, t.s.quests, id, q)
	return id, nil
}

func (t *tx) GetQuest(ctx context.Context, id int64) (*domain.Quest, error) {
	q, ok := t.s.quests[id]
	if !ok {
		return nil, domain.ErrQuestNotFound
	}
	return q.Clone(), nil
}

func (t *tx) UpdateQuest(ctx context.Context, quest *domain.Quest) error {
	if _, ok := t.s.quests[quest.ID]; !ok {
		return domain.ErrQuestNotFound
	}
	put(t, t.s.quests, quest.ID, quest.Clone())
	return nil
}

func (t *tx) ListQuests(ctx context.Context, activeOnly bool) ([]domain.Quest, error) {
	quests := make([]domain.Quest, 0, len(t.s.quests))
	for _, q := range t.s.quests {
		if activeOnly && !q.IsActive {
			continue
		}
		quests = append(quests, *q.Clone())
	}
	sort.Slice(quests, func(i, j int) bool { return quests[i].ID < quests[j].ID })
	return quests, nil
}

func (t *tx) HasCompletedQuest(ctx context.Context, addr common.Address, questID int64) (bool, error) {
	_, ok := t.s.completions[completionKey{addr: addr, questID: questID}]
	return ok, nil
}

func (t *tx) MarkQuestCompleted(ctx context.Context, addr common.Address, questID int64, at time.Time) error {
	put(t, t.s.completions, completionKey{addr: addr, questID: questID}, at)
	return nil
}

func (t *tx) GetDailyCompletion(ctx context.Context, addr common.Address, day int64) (int64, bool, error) {
	mark, ok := t.s.daily[dailyKey{addr: addr, day: day}]
	return mark.questID, ok, nil
}

func (t *tx) MarkDailyCompleted(ctx context.Context, addr common.Address, day, questID int64, at time.Time) error {
	put(t, t.s.daily, dailyKey{addr: addr, day: day}, dailyMark{questID: questID, at: at})
	return nil
}

func (t *tx) InsertTournamentEntry(ctx context.Context, entry *domain.TournamentEntry) error {
	key := tournamentKey{tournamentID: entry.TournamentID, addr: entry.Player}
	if _, ok := t.s.tournaments[key]; ok {
		return domain.ErrAlreadyEnteredTournament
	}
	cp := *entry
	cp.Fee = domain.CloneInt(entry.Fee)
	put(t, t.s.tournaments, key, &cp)
	return nil
}

// ---- System ----

func (t *tx) GetGameConfig(ctx context.Context) (*domain.GameConfig, error) {
	if t.s.config == nil {
		return nil, domain.ErrConfigNotFound
	}
	return t.s.config.Clone(), nil
}

func (t *tx) SaveGameConfig(ctx context.Context, cfg *domain.GameConfig) error {
	prev := t.s.config
	t.s.config = cfg.Clone()
	t.undo(func() { t.s.config = prev })
	return nil
}

func (t *tx) IsPaused(ctx context.Context) (bool, error) {
	return t.s.paused, nil
}

func (t *tx) SetPaused(ctx context.Context, paused bool) error {
	prev := t.s.paused
	t.s.paused = paused
	t.undo(func() { t.s.paused = prev })
	return nil
}

func (t *tx) GetDailyMetrics(ctx context.Context, day int64) (*domain.DailyMetrics, error) {
	m, ok := t.s.metrics[day]
	if !ok {
		return domain.NewDailyMetrics(day), nil
	}
	return m.Clone(), nil
}

func (t *tx) SaveDailyMetrics(ctx context.Context, metrics *domain.DailyMetrics) error {
	put(t, t.s.metrics, metrics.Day, metrics.Clone())
	return nil
}

// ---- Access ----

func (t *tx) HasRole(ctx context.Context, role domain.Role, account common.Address) (bool, error) {
	_, ok := t.s.roles[roleKey{role: role, account: account}]
	return ok, nil
}

func (t *tx) GrantRole(ctx context.Context, role domain.Role, account common.Address) error {
	put(t, t.s.roles, roleKey{role: role, account: account}, struct{}{})
	return nil
}

func (t *tx) RevokeRole(ctx context.Context, role domain.Role, account common.Address) error {
	remove(t, t.s.roles, roleKey{role: role, account: account})
	return nil
}

func (t *tx) ListRoles(ctx context.Context, account common.Address) ([]domain.Role, error) {
	var roles []domain.Role
	for _, role := range domain.AllRoles {
		if _, ok := t.s.roles[roleKey{role: role, account: account}]; ok {
			roles = append(roles, role)
		}
	}
	return roles, nil
}

// ---- Event log ----

func (t *tx) AppendEvent(ctx context.Context, record *domain.EventRecord) error {
	record.Seq = int64(len(t.s.events)) + 1
	t.s.events = append(t.s.events, *record)
	n := len(t.s.events) - 1
	t.undo(func() { t.s.events = t.s.events[:n] })
	return nil
}

func (t *tx) ListEvents(ctx context.Context, afterSeq int64, limit int) ([]domain.EventRecord, error) {
	if afterSeq < 0 {
		afterSeq = 0
	}
	if afterSeq >= int64(len(t.s.events)) {
		return []domain.EventRecord{}, nil
	}
	end := len(t.s.events)
	if limit > 0 && int(afterSeq)+limit < end {
		end = int(afterSeq) + limit
	}
	out := make([]domain.EventRecord, end-int(afterSeq))
	copy(out, t.s.events[afterSeq:end])
	return out, nil
}

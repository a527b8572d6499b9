package repository

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/osse101/LithosProtocol_Go/internal/domain"
)

// QuestStore persists quests, completion markers and tournament entries
type QuestStore interface {
	// InsertQuest assigns the next sequential id, starting at 1
	InsertQuest(ctx context.Context, quest *domain.Quest) (int64, error)
	// GetQuest returns domain.ErrQuestNotFound for unknown ids
	GetQuest(ctx context.Context, id int64) (*domain.Quest, error)
	UpdateQuest(ctx context.Context, quest *domain.Quest) error
	ListQuests(ctx context.Context, activeOnly bool) ([]domain.Quest, error)

	HasCompletedQuest(ctx context.Context, addr common.Address, questID int64) (bool, error)
	MarkQuestCompleted(ctx context.Context, addr common.Address, questID int64, at time.Time) error

	// GetDailyCompletion returns the quest completed by addr in day bucket day, if any
	GetDailyCompletion(ctx context.Context, addr common.Address, day int64) (questID int64, found bool, err error)
	MarkDailyCompleted(ctx context.Context, addr common.Address, day, questID int64, at time.Time) error

	// InsertTournamentEntry returns domain.ErrAlreadyEnteredTournament on a duplicate entry
	InsertTournamentEntry(ctx context.Context, entry *domain.TournamentEntry) error
}

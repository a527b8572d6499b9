package game

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/osse101/LithosProtocol_Go/internal/access"
	"github.com/osse101/LithosProtocol_Go/internal/domain"
	"github.com/osse101/LithosProtocol_Go/internal/event"
	"github.com/osse101/LithosProtocol_Go/internal/logger"
	"github.com/osse101/LithosProtocol_Go/internal/operation"
	"github.com/osse101/LithosProtocol_Go/internal/repository"
)

// CreateQuest stores a new active quest. The reward is fixed at creation.
func (s *service) CreateQuest(ctx context.Context, caller common.Address, req CreateQuestRequest) (*domain.Quest, error) {
	var quest *domain.Quest
	err := s.runner.Run(ctx, OpCreateQuest, caller, true, func(ctx context.Context, op *operation.Op) error {
		if err := access.Require(ctx, op.Tx, domain.RoleGameMaster, caller); err != nil {
			return err
		}
		if err := validateQuest(req); err != nil {
			return err
		}

		q := &domain.Quest{
			Name:          strings.TrimSpace(req.Name),
			Description:   req.Description,
			RewardAmount:  domain.CloneInt(req.RewardAmount),
			RequiredLevel: req.RequiredLevel,
			IsActive:      true,
			IsDaily:       req.IsDaily,
			CreatedAt:     op.Now,
		}
		id, err := op.Tx.InsertQuest(ctx, q)
		if err != nil {
			return err
		}
		q.ID = id
		quest = q
		return op.Record(ctx, event.NewQuestCreatedEvent(q))
	})
	if err != nil {
		return nil, err
	}
	return quest, nil
}

func validateQuest(req CreateQuestRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgQuestNameRequired)
	}
	if req.RewardAmount == nil || req.RewardAmount.Sign() < 0 {
		return fmt.Errorf("%w: %s", domain.ErrInvalidAmount, ErrMsgNegativeReward)
	}
	if req.RequiredLevel < domain.MinLevel || req.RequiredLevel > domain.MaxLevel {
		return fmt.Errorf("%w: "+ErrMsgRequiredLevelFmt, domain.ErrInvalidInput, domain.MinLevel, domain.MaxLevel, req.RequiredLevel)
	}
	return nil
}

// SetQuestActive toggles whether a quest can be completed
func (s *service) SetQuestActive(ctx context.Context, caller common.Address, questID int64, active bool) error {
	return s.runner.Run(ctx, OpSetQuestActive, caller, true, func(ctx context.Context, op *operation.Op) error {
		if err := access.Require(ctx, op.Tx, domain.RoleGameMaster, caller); err != nil {
			return err
		}
		q, err := op.Tx.GetQuest(ctx, questID)
		if err != nil {
			return err
		}
		q.IsActive = active
		if err := op.Tx.UpdateQuest(ctx, q); err != nil {
			return err
		}
		return op.Record(ctx, event.NewStatusChangedEvent(event.QuestStatusChanged, questID, active))
	})
}

// GetQuest returns a quest by id
func (s *service) GetQuest(ctx context.Context, questID int64) (*domain.Quest, error) {
	var q *domain.Quest
	err := s.runner.View(ctx, func(ctx context.Context, tx repository.StateTx, now time.Time) error {
		var err error
		q, err = tx.GetQuest(ctx, questID)
		return err
	})
	return q, err
}

// ListQuests returns quests ordered by id
func (s *service) ListQuests(ctx context.Context, activeOnly bool) ([]domain.Quest, error) {
	var quests []domain.Quest
	err := s.runner.View(ctx, func(ctx context.Context, tx repository.StateTx, now time.Time) error {
		var err error
		quests, err = tx.ListQuests(ctx, activeOnly)
		return err
	})
	return quests, err
}

// CompleteQuest marks the quest done for caller, mints its reward and grants
// experience equal to the reward in whole tokens. One-time quests complete
// once per player; a player completes at most one daily quest per day bucket.
func (s *service) CompleteQuest(ctx context.Context, caller common.Address, questID int64) (*domain.QuestCompletion, error) {
	var completion *domain.QuestCompletion
	err := s.runner.Run(ctx, OpCompleteQuest, caller, true, func(ctx context.Context, op *operation.Op) error {
		p, err := op.Tx.GetPlayer(ctx, caller)
		if err != nil {
			return err
		}
		q, err := op.Tx.GetQuest(ctx, questID)
		if err != nil {
			return err
		}
		if !q.IsActive {
			return fmt.Errorf("%w: %d", domain.ErrQuestNotActive, questID)
		}
		if p.Level < q.RequiredLevel {
			return fmt.Errorf("%w: "+ErrMsgRequiredLevelTooLow, domain.ErrLevelTooLow, p.Level, q.RequiredLevel)
		}

		day := domain.DayBucket(op.Now)
		if q.IsDaily {
			doneID, done, err := op.Tx.GetDailyCompletion(ctx, caller, day)
			if err != nil {
				return err
			}
			if done {
				return fmt.Errorf("%w: quest %d already completed on day %d", domain.ErrDailyQuestAlreadyCompleted, doneID, day)
			}
			if err := op.Tx.MarkDailyCompleted(ctx, caller, day, questID, op.Now); err != nil {
				return err
			}
			p.LastDailyDay = day
		} else {
			done, err := op.Tx.HasCompletedQuest(ctx, caller, questID)
			if err != nil {
				return err
			}
			if done {
				return fmt.Errorf("%w: %d", domain.ErrQuestAlreadyCompleted, questID)
			}
			if err := op.Tx.MarkQuestCompleted(ctx, caller, questID, op.Now); err != nil {
				return err
			}
		}

		reward, err := s.rewardAmount(ctx, op, q.RewardAmount, 1)
		if err != nil {
			return err
		}
		if err := s.mint(ctx, op, caller, reward); err != nil {
			return err
		}

		xp := rewardExperience(q.RewardAmount)
		oldLevel := p.Level
		if err := s.grantExperience(ctx, op, p, xp, XPSourceQuest); err != nil {
			return err
		}

		completion = &domain.QuestCompletion{
			QuestID:      questID,
			Player:       caller,
			Reward:       reward,
			XPGained:     xp,
			NewXP:        p.Experience,
			OldLevel:     oldLevel,
			NewLevel:     p.Level,
			CompletedAt:  op.Now,
			LeveledUp:    p.Level > oldLevel,
			IsDailyQuest: q.IsDaily,
		}
		if q.IsDaily {
			completion.DayBucket = day
		}
		op.AfterCommit(func(ctx context.Context) {
			logger.FromContext(ctx).Info(LogMsgQuestCompleted, "player", caller.Hex(), "quest_id", questID, "reward", reward.String())
		})
		return op.Record(ctx, event.NewQuestCompletedEvent(completion))
	})
	if err != nil {
		return nil, err
	}
	return completion, nil
}

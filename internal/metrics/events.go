package metrics

import (
	"context"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/osse101/LithosProtocol_Go/internal/domain"
	"github.com/osse101/LithosProtocol_Go/internal/event"
	"github.com/osse101/LithosProtocol_Go/internal/logger"
)

// Reward sources used as metric labels
const (
	SourceQuest       = "quest"
	SourcePvP         = "pvp"
	SourceLeaderboard = "leaderboard"
	SourceCrafting    = "crafting"
	SourceRepair      = "repair"
	SourceTournament  = "tournament"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	bus.Subscribe(event.Any, e.HandleEvent)
	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	// Always increment event counter
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	var err error
	switch evt.Type {
	case event.PlayerRegistered:
		PlayersRegistered.Inc()

	case event.PlayerLeveledUp:
		var p event.PlayerLeveledUpPayloadV1
		if p, err = event.DecodePayload[event.PlayerLeveledUpPayloadV1](evt.Payload); err == nil {
			LevelUps.WithLabelValues(p.Source).Inc()
		}

	case event.QuestCompleted:
		var p event.QuestCompletedPayloadV1
		if p, err = event.DecodePayload[event.QuestCompletedPayloadV1](evt.Payload); err == nil {
			kind := "one_time"
			if p.IsDaily {
				kind = "daily"
			}
			QuestsCompleted.WithLabelValues(kind).Inc()
			RewardsMinted.WithLabelValues(SourceQuest).Add(wholeTokens(p.Reward))
		}

	case event.PvPResultRecorded:
		var p event.PvPResultPayloadV1
		if p, err = event.DecodePayload[event.PvPResultPayloadV1](evt.Payload); err == nil {
			PvPMatches.Inc()
			RewardsMinted.WithLabelValues(SourcePvP).Add(wholeTokens(p.Reward))
		}

	case event.LeaderboardRewards:
		var p event.LeaderboardRewardsPayloadV1
		if p, err = event.DecodePayload[event.LeaderboardRewardsPayloadV1](evt.Payload); err == nil {
			RewardsMinted.WithLabelValues(SourceLeaderboard).Add(wholeTokens(p.RewardEach) * float64(len(p.Winners)))
		}

	case event.ItemCrafted:
		var p event.ItemCraftedPayloadV1
		if p, err = event.DecodePayload[event.ItemCraftedPayloadV1](evt.Payload); err == nil {
			ItemsCrafted.WithLabelValues(p.AssetType).Inc()
			TokensBurned.WithLabelValues(SourceCrafting).Add(wholeTokens(p.Cost))
		}

	case event.ItemRepaired:
		var p event.ItemPayloadV1
		if p, err = event.DecodePayload[event.ItemPayloadV1](evt.Payload); err == nil {
			ItemsRepaired.Inc()
			TokensBurned.WithLabelValues(SourceRepair).Add(wholeTokens(p.Cost))
		}

	case event.TournamentEntered:
		var p event.TournamentEnteredPayloadV1
		if p, err = event.DecodePayload[event.TournamentEnteredPayloadV1](evt.Payload); err == nil {
			TokensBurned.WithLabelValues(SourceTournament).Add(wholeTokens(p.Fee))
		}

	case event.TokensStaked, event.TokensUnstaked, event.NFTStaked, event.NFTUnstaked:
		var p event.StakePayloadV1
		if p, err = event.DecodePayload[event.StakePayloadV1](evt.Payload); err == nil {
			StakeOperations.WithLabelValues(string(evt.Type), poolLabel(p.PoolID)).Inc()
		}

	case event.RewardsClaimed:
		var p event.RewardsClaimedPayloadV1
		if p, err = event.DecodePayload[event.RewardsClaimedPayloadV1](evt.Payload); err == nil {
			RewardsClaimed.WithLabelValues(poolLabel(p.PoolID)).Add(wholeTokens(p.Amount))
		}

	case event.SystemPaused:
		SystemPaused.Set(1)

	case event.SystemUnpaused:
		SystemPaused.Set(0)
	}

	if err != nil {
		log.Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
	}
	return nil
}

// wholeTokens converts a base-unit decimal string into whole tokens
func wholeTokens(baseUnits string) float64 {
	d, err := decimal.NewFromString(baseUnits)
	if err != nil {
		return 0
	}
	return d.Shift(-domain.TokenDecimals).InexactFloat64()
}

func poolLabel(id int64) string {
	return strconv.FormatInt(id, 10)
}

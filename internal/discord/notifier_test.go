package discord

import (
	"context"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/LithosProtocol_Go/internal/domain"
	"github.com/osse101/LithosProtocol_Go/internal/event"
	"github.com/osse101/LithosProtocol_Go/internal/testing/leaktest"
)

var player = common.HexToAddress("0x00000000000000000000000000000000000a11ce")

func TestTitle(t *testing.T) {
	assert.Equal(t, "Player Leveled Up", Title(event.PlayerLeveledUp))
	assert.Equal(t, "Stake Rewards Claimed", Title(event.RewardsClaimed))
}

func TestFormatTokens(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{domain.Tokens(100).String(), "100"},
		{"1500000000000000000", "1.5"},
		{"1", "0.000000000000000001"},
		{"0", "0"},
		{"not-a-number", "not-a-number"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatTokens(tt.in), tt.in)
	}
}

func TestEmbed(t *testing.T) {
	t.Run("LevelUp", func(t *testing.T) {
		embed, ok, err := Embed(event.NewPlayerLeveledUpEvent(player, 2, 3, 450, "quest"))
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "Player Leveled Up", embed.Title)
		assert.Contains(t, embed.Description, "**level 3**")
		assert.Equal(t, ColorGold, embed.Color)
	})

	t.Run("Leaderboard", func(t *testing.T) {
		bob := common.HexToAddress("0x0000000000000000000000000000000000000b0b")
		embed, ok, err := Embed(event.NewLeaderboardRewardsEvent([]common.Address{player, bob}, domain.Tokens(25)))
		require.NoError(t, err)
		require.True(t, ok)
		assert.Contains(t, embed.Description, "1. 0x0000")
		assert.Contains(t, embed.Description, "\n2. ")
		require.Len(t, embed.Fields, 1)
		assert.Equal(t, "25", embed.Fields[0].Value)
	})

	t.Run("NotAnnounced", func(t *testing.T) {
		embed, ok, err := Embed(event.NewRewardsClaimedEvent(1, player, big.NewInt(5)))
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, embed)
	})

	t.Run("BadPayload", func(t *testing.T) {
		_, _, err := Embed(event.Event{Type: event.QuestCreated, Payload: "garbage"})
		assert.Error(t, err)
	})
}

func TestNewNotifier_RequiresTarget(t *testing.T) {
	_, err := NewNotifier("", "chan")
	assert.Error(t, err)
	_, err = NewNotifier("token", "")
	assert.Error(t, err)
}

func TestNotifier_PostsAnnouncedEvents(t *testing.T) {
	n, captured := newTestNotifier(t)
	bus := event.NewMemoryBus()
	n.Register(bus)
	n.Start()

	ctx := context.Background()
	require.NoError(t, bus.Publish(ctx, event.NewPauseEvent(player, true)))
	require.NoError(t, bus.Publish(ctx, event.NewRewardsClaimedEvent(1, player, big.NewInt(5))))
	require.NoError(t, bus.Publish(ctx, event.NewPauseEvent(player, false)))

	n.Stop()

	paths, sent := captured.all()
	require.Len(t, paths, 2)
	assert.Equal(t, "POST /api/v9/channels/chan-1/messages", paths[0])
	require.Len(t, sent[0].Embeds, 1)
	assert.Equal(t, "System Paused", sent[0].Embeds[0].Title)
	assert.Equal(t, "System Unpaused", sent[1].Embeds[0].Title)
}

func TestNotifier_StopIsIdempotent(t *testing.T) {
	n, _ := newTestNotifier(t)
	leaks := leaktest.NewGoroutineChecker(t)
	n.Start()

	done := make(chan struct{})
	go func() {
		n.Stop()
		n.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop did not return")
	}
	leaks.Check(0)
}

package discord

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/LithosProtocol_Go/internal/event"
)

// titleCase upper-cases each word. Casers are stateful, so one is made per call.
func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}

// Title turns an event type such as "player.leveled_up" into "Player Leveled Up"
func Title(t event.Type) string {
	words := strings.NewReplacer(".", " ", "_", " ").Replace(string(t))
	return titleCase(words)
}

// FormatTokens renders a base-unit decimal string as whole tokens
func FormatTokens(baseUnits string) string {
	n, ok := new(big.Int).SetString(baseUnits, 10)
	if !ok {
		return baseUnits
	}
	return decimal.NewFromBigInt(n, -TokenDecimals).String()
}

// shortAddr abbreviates a hex address for display
func shortAddr(addr string) string {
	if len(addr) <= 12 {
		return addr
	}
	return addr[:6] + "…" + addr[len(addr)-4:]
}

func field(name, value string) *discordgo.MessageEmbedField {
	return &discordgo.MessageEmbedField{Name: name, Value: value, Inline: true}
}

// Embed builds the announcement for evt. Events that are not announced
// return false.
func Embed(evt event.Event) (*discordgo.MessageEmbed, bool, error) {
	embed := &discordgo.MessageEmbed{Title: Title(evt.Type)}

	switch evt.Type {
	case event.PlayerLeveledUp:
		p, err := event.DecodePayload[event.PlayerLeveledUpPayloadV1](evt.Payload)
		if err != nil {
			return nil, false, err
		}
		embed.Color = ColorGold
		embed.Description = fmt.Sprintf("%s reached **level %d**!", shortAddr(p.Player), p.NewLevel)
		embed.Fields = []*discordgo.MessageEmbedField{
			field("Previous Level", fmt.Sprintf("%d", p.OldLevel)),
			field("Experience", fmt.Sprintf("%d", p.Experience)),
			field("Source", p.Source),
		}

	case event.QuestCreated:
		p, err := event.DecodePayload[event.QuestCreatedPayloadV1](evt.Payload)
		if err != nil {
			return nil, false, err
		}
		kind := "One-time"
		if p.IsDaily {
			kind = "Daily"
		}
		embed.Color = ColorBlue
		embed.Description = fmt.Sprintf("New quest **%s** is live.", p.Name)
		embed.Fields = []*discordgo.MessageEmbedField{
			field("Reward", FormatTokens(p.RewardAmount)),
			field("Required Level", fmt.Sprintf("%d", p.RequiredLevel)),
			field("Kind", kind),
		}

	case event.LeaderboardRewards:
		p, err := event.DecodePayload[event.LeaderboardRewardsPayloadV1](evt.Payload)
		if err != nil {
			return nil, false, err
		}
		winners := make([]string, 0, len(p.Winners))
		for i, w := range p.Winners {
			winners = append(winners, fmt.Sprintf("%d. %s", i+1, shortAddr(w)))
		}
		embed.Color = ColorGold
		embed.Description = strings.Join(winners, "\n")
		embed.Fields = []*discordgo.MessageEmbedField{field("Reward Each", FormatTokens(p.RewardEach))}

	case event.PoolCreated:
		p, err := event.DecodePayload[event.PoolCreatedPayloadV1](evt.Payload)
		if err != nil {
			return nil, false, err
		}
		embed.Color = ColorGreen
		embed.Description = fmt.Sprintf("Staking pool **%s** is open.", p.Name)
		embed.Fields = []*discordgo.MessageEmbedField{
			field("Type", titleCase(p.PoolType)),
			field("Lock", fmt.Sprintf("%ds", p.LockPeriodSeconds)),
		}

	case event.GameConfigUpdated:
		p, err := event.DecodePayload[event.GameConfigUpdatedPayloadV1](evt.Payload)
		if err != nil {
			return nil, false, err
		}
		embed.Color = ColorOrange
		embed.Description = fmt.Sprintf("Economy configuration updated to version %d.", p.Version)
		embed.Fields = []*discordgo.MessageEmbedField{
			field("Daily Quest", FormatTokens(p.DailyQuestReward)),
			field("PvP Win", FormatTokens(p.PvPWinReward)),
			field("Crafting Cost", FormatTokens(p.CraftingCost)),
		}

	case event.SystemPaused:
		embed.Color = ColorRed
		embed.Description = "The economy is paused. Actions are temporarily disabled."

	case event.SystemUnpaused:
		embed.Color = ColorGreen
		embed.Description = "The economy is running again."

	default:
		return nil, false, nil
	}

	return embed, true, nil
}

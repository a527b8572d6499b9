package discord

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/LithosProtocol_Go/internal/event"
	"github.com/osse101/LithosProtocol_Go/internal/logger"
)

// Notifier announces committed economy events in a Discord channel.
// Sending happens on a background goroutine so slow Discord calls never
// hold up the operation that published the event.
type Notifier struct {
	session   *discordgo.Session
	channelID string
	queue     chan *discordgo.MessageEmbed
	done      chan struct{}
	wg        sync.WaitGroup
	stopOnce  sync.Once
}

// NewNotifier creates a notifier posting as the bot to channelID
func NewNotifier(botToken, channelID string) (*Notifier, error) {
	if botToken == "" || channelID == "" {
		return nil, errors.New(ErrMsgMissingTarget)
	}
	session, err := discordgo.New("Bot " + botToken)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgCreateSession, err)
	}
	return &Notifier{
		session:   session,
		channelID: channelID,
		queue:     make(chan *discordgo.MessageEmbed, NotificationQueueSize),
		done:      make(chan struct{}),
	}, nil
}

// Register subscribes the notifier to the bus
func (n *Notifier) Register(bus event.Bus) {
	bus.Subscribe(event.Any, n.HandleEvent)
}

// HandleEvent queues an embed for evt when it is announced
func (n *Notifier) HandleEvent(ctx context.Context, evt event.Event) error {
	embed, ok, err := Embed(evt)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgPayloadDecodeFailed, "event_type", evt.Type, "error", err)
		return nil
	}
	if !ok {
		return nil
	}

	select {
	case n.queue <- embed:
	default:
		logger.FromContext(ctx).Warn(LogMsgNotificationDropped, "event_type", evt.Type)
	}
	return nil
}

// Start runs the sender loop
func (n *Notifier) Start() {
	n.wg.Add(1)
	go n.run()
	logger.Info(LogMsgNotifierStarted, "channel_id", n.channelID)
}

// Stop drains queued embeds and stops the sender
func (n *Notifier) Stop() {
	n.stopOnce.Do(func() {
		close(n.done)
		n.wg.Wait()
		logger.Info(LogMsgNotifierStopped)
	})
}

func (n *Notifier) run() {
	defer n.wg.Done()
	for {
		select {
		case embed := <-n.queue:
			n.send(embed)
		case <-n.done:
			for {
				select {
				case embed := <-n.queue:
					n.send(embed)
				default:
					return
				}
			}
		}
	}
}

func (n *Notifier) send(embed *discordgo.MessageEmbed) {
	ctx, cancel := context.WithTimeout(context.Background(), SendTimeout)
	defer cancel()
	if _, err := n.session.ChannelMessageSendEmbed(n.channelID, embed, discordgo.WithContext(ctx)); err != nil {
		logger.Warn(LogMsgNotificationFailed, "title", embed.Title, "error", err)
	}
}

package event

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/LithosProtocol_Go/internal/logger"
)

// ResilientConfig configures the ResilientPublisher
type ResilientConfig struct {
	MaxRetries     int
	RetryDelay     time.Duration
	DeadLetterPath string
}

type retryItem struct {
	event   Event
	attempt int
	lastErr error
}

// ResilientPublisher wraps an Event Bus to add retry logic and dead letter queuing.
// Failed publishes are retried by a single background worker with exponential
// backoff; exhausted events are appended to the dead-letter file.
type ResilientPublisher struct {
	inner      Bus
	config     ResilientConfig
	deadLetter *DeadLetterWriter
	queue      chan retryItem
	done       chan struct{}
	wg         sync.WaitGroup
	closeOnce  sync.Once
}

// NewResilientPublisher creates a new ResilientPublisher and starts its retry worker
func NewResilientPublisher(inner Bus, config ResilientConfig) (*ResilientPublisher, error) {
	if config.MaxRetries <= 0 {
		config.MaxRetries = RetryMaxAttempts
	}
	if config.RetryDelay <= 0 {
		config.RetryDelay = RetryInitialDelaySeconds * time.Second
	}

	dlw, err := NewDeadLetterWriter(config.DeadLetterPath)
	if err != nil {
		return nil, err
	}

	p := &ResilientPublisher{
		inner:      inner,
		config:     config,
		deadLetter: dlw,
		queue:      make(chan retryItem, RetryQueueBufferSize),
		done:       make(chan struct{}),
	}
	p.wg.Add(1)
	go p.retryWorker()
	return p, nil
}

// Publish attempts to publish an event. A failed attempt is queued for retry
// and nil is returned: the caller's state change has already committed.
func (p *ResilientPublisher) Publish(ctx context.Context, event Event) error {
	err := p.inner.Publish(ctx, event)
	if err == nil {
		return nil
	}

	logger.FromContext(ctx).Warn(LogMsgEventPublishFailed,
		"event_type", event.Type,
		"error", err)

	p.enqueue(retryItem{event: event, attempt: 1, lastErr: err})
	return nil
}

// Subscribe delegates to the inner bus
func (p *ResilientPublisher) Subscribe(eventType Type, handler Handler) {
	p.inner.Subscribe(eventType, handler)
}

func (p *ResilientPublisher) enqueue(item retryItem) {
	select {
	case <-p.done:
		p.writeDeadLetter(item)
		return
	default:
	}

	select {
	case p.queue <- item:
	default:
		logger.Warn(LogMsgRetryQueueFull, "event_type", item.event.Type)
		p.writeDeadLetter(item)
	}
}

func (p *ResilientPublisher) retryWorker() {
	defer p.wg.Done()

	for {
		select {
		case <-p.done:
			return
		case item := <-p.queue:
			if !p.retry(item) {
				return
			}
		}
	}
}

// retry waits out the backoff for item and republishes it. It returns false
// when shutdown interrupted the wait.
func (p *ResilientPublisher) retry(item retryItem) bool {
	timer := time.NewTimer(CalculateRetryDelay(p.config.RetryDelay, item.attempt))
	defer timer.Stop()

	select {
	case <-p.done:
		p.writeDeadLetter(item)
		return false
	case <-timer.C:
	}

	err := p.inner.Publish(context.Background(), item.event)
	if err == nil {
		logger.Info(LogMsgEventRetrySucceeded, "event_type", item.event.Type, "attempt", item.attempt)
		return true
	}

	item.lastErr = err
	if item.attempt >= p.config.MaxRetries {
		logger.Warn(LogMsgEventRetryExhausted, "event_type", item.event.Type, "attempts", item.attempt)
		p.writeDeadLetter(item)
		return true
	}

	logger.Warn(LogMsgEventRetryFailed, "event_type", item.event.Type, "attempt", item.attempt, "error", err)
	item.attempt++
	p.enqueue(item)
	return true
}

func (p *ResilientPublisher) writeDeadLetter(item retryItem) {
	if err := p.deadLetter.Write(item.event, item.attempt, item.lastErr); err != nil {
		logger.Error(LogMsgDeadLetterWriteFailed, "error", err)
	}
}

// Shutdown stops the retry worker, dead-letters whatever is still queued and
// closes the dead-letter file.
func (p *ResilientPublisher) Shutdown(ctx context.Context) error {
	var err error
	p.closeOnce.Do(func() {
		close(p.done)

		stopped := make(chan struct{})
		go func() {
			p.wg.Wait()
			close(stopped)
		}()

		select {
		case <-stopped:
		case <-ctx.Done():
			logger.Warn(LogMsgShutdownTimeout)
			err = ctx.Err()
			return
		}

		drained := 0
		for {
			select {
			case item := <-p.queue:
				p.writeDeadLetter(item)
				drained++
				continue
			default:
			}
			break
		}
		if drained > 0 {
			logger.Info(LogMsgQueueDrainedShutdown, "count", drained)
		}
		err = p.deadLetter.Close()
	})
	return err
}

package operation

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/osse101/LithosProtocol_Go/internal/clock"
	"github.com/osse101/LithosProtocol_Go/internal/concurrency"
	"github.com/osse101/LithosProtocol_Go/internal/domain"
	"github.com/osse101/LithosProtocol_Go/internal/event"
	"github.com/osse101/LithosProtocol_Go/internal/eventlog"
	"github.com/osse101/LithosProtocol_Go/internal/logger"
	"github.com/osse101/LithosProtocol_Go/internal/metrics"
	"github.com/osse101/LithosProtocol_Go/internal/repository"
)

// Op is the per-call state of a mutating operation: its transaction, the
// timestamp sampled once at the start, and the events it records.
type Op struct {
	Tx     repository.StateTx
	Now    time.Time
	Caller common.Address

	rec         *eventlog.Recorder
	afterCommit []func(ctx context.Context)
}

// Record appends evt to the audit log; it is published after commit
func (o *Op) Record(ctx context.Context, evt event.Event) error {
	return o.rec.Record(ctx, evt)
}

// AfterCommit registers fn to run once the transaction has committed
func (o *Op) AfterCommit(fn func(ctx context.Context)) {
	o.afterCommit = append(o.afterCommit, fn)
}

// Runner executes operations under the shared guard inside one transaction
type Runner struct {
	store  repository.Store
	guard  *concurrency.Guard
	clock  clock.Clock
	bus    event.Publisher
	tracer trace.Tracer
	outbox outbox
}

type pendingBatch struct {
	ctx context.Context
	rec *eventlog.Recorder
}

// outbox publishes committed event batches in commit order. Batches are
// queued while the guard is held; whichever caller finds the outbox idle
// drains it, and everyone else returns once their batch is queued.
type outbox struct {
	mu       sync.Mutex
	queue    []pendingBatch
	draining bool
}

func (o *outbox) push(ctx context.Context, rec *eventlog.Recorder) {
	o.mu.Lock()
	o.queue = append(o.queue, pendingBatch{ctx: ctx, rec: rec})
	o.mu.Unlock()
}

func (o *outbox) drain(pub event.Publisher) {
	o.mu.Lock()
	if o.draining {
		o.mu.Unlock()
		return
	}
	o.draining = true
	for len(o.queue) > 0 {
		b := o.queue[0]
		o.queue = o.queue[1:]
		o.mu.Unlock()
		o.publish(b, pub)
		o.mu.Lock()
	}
	o.draining = false
	o.mu.Unlock()
}

// publish hands one batch to the bus. A panicking handler releases the
// drain so later batches are not stranded.
func (o *outbox) publish(b pendingBatch, pub event.Publisher) {
	done := false
	defer func() {
		if !done {
			o.mu.Lock()
			o.draining = false
			o.mu.Unlock()
		}
	}()
	b.rec.Publish(b.ctx, pub)
	done = true
}

// NewRunner creates a runner. bus may be nil.
func NewRunner(store repository.Store, guard *concurrency.Guard, clk clock.Clock, bus event.Publisher) *Runner {
	return &Runner{
		store:  store,
		guard:  guard,
		clock:  clk,
		bus:    bus,
		tracer: otel.Tracer(TracerName),
	}
}

// Clock returns the runner's time source
func (r *Runner) Clock() clock.Clock {
	return r.clock
}

// Run executes fn as the mutating operation name on behalf of caller.
// When gated is true a paused system rejects the call before fn runs.
// Any error rolls the transaction back. Events are published and after-commit
// hooks run only after a successful commit, outside the guard. Events of
// different operations reach the bus in commit order.
func (r *Runner) Run(ctx context.Context, name string, caller common.Address, gated bool, fn func(ctx context.Context, op *Op) error) error {
	ctx, span := r.tracer.Start(ctx, name, trace.WithAttributes(attribute.String(AttrCaller, caller.Hex())))
	defer span.End()

	start := time.Now()
	pubCtx := context.WithoutCancel(ctx)
	var op *Op

	err := r.guard.Do(ctx, func(ctx context.Context) error {
		tx, err := r.store.BeginTx(ctx)
		if err != nil {
			return fmt.Errorf(ErrMsgBeginTxFailed, err)
		}
		defer repository.SafeRollback(ctx, tx)

		if gated {
			paused, err := tx.IsPaused(ctx)
			if err != nil {
				return fmt.Errorf(ErrMsgPauseCheck, err)
			}
			if paused {
				return domain.ErrPaused
			}
		}

		now := r.clock.Now()
		op = &Op{
			Tx:     tx,
			Now:    now,
			Caller: caller,
			rec:    eventlog.NewRecorder(tx, caller, now),
		}

		if err := fn(ctx, op); err != nil {
			return err
		}

		if err := tx.Commit(ctx); err != nil {
			return fmt.Errorf(ErrMsgCommitFailed, err)
		}
		r.outbox.push(pubCtx, op.rec)
		return nil
	})

	r.observe(ctx, span, name, caller, start, err)
	if err != nil {
		return err
	}

	r.outbox.drain(r.bus)
	for _, hook := range op.afterCommit {
		hook(ctx)
	}
	return nil
}

// View runs a read-only fn against a transaction that is always rolled back
func (r *Runner) View(ctx context.Context, fn func(ctx context.Context, tx repository.StateTx, now time.Time) error) error {
	tx, err := r.store.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf(ErrMsgBeginTxFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	return fn(ctx, tx, r.clock.Now())
}

func (r *Runner) observe(ctx context.Context, span trace.Span, name string, caller common.Address, start time.Time, err error) {
	code := metrics.CodeOK
	if err != nil {
		code = domain.ErrorCode(err)
	}
	metrics.OperationsTotal.WithLabelValues(name, code).Inc()
	metrics.OperationDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
	span.SetAttributes(attribute.String(AttrCode, code))

	log := logger.FromContext(ctx)
	switch {
	case err == nil:
		log.Info(LogMsgOperationCompleted, "operation", name, "caller", caller.Hex())
	case domain.ErrorClassOf(err) == domain.ClassInternal:
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.Error(LogMsgOperationFailed, "operation", name, "caller", caller.Hex(), "error", err)
	default:
		span.SetStatus(codes.Error, code)
		log.Warn(LogMsgOperationRejected, "operation", name, "caller", caller.Hex(), "code", code, "error", err)
	}
}

// Package dispatch serializes view stack operations onto one goroutine.
//
// The router is not safe for concurrent use. Producers such as the input
// reader enqueue messages here instead, and the goroutine running Run applies
// them in order and emits the periodic Timer signal.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"go.uber.org/atomic"

	"github.com/BrandonKowalski/signalframe/pkg/signalframe/constants"
	"github.com/BrandonKowalski/signalframe/pkg/signalframe/internal"
	"github.com/BrandonKowalski/signalframe/pkg/signalframe/router"
	"github.com/BrandonKowalski/signalframe/pkg/signalframe/signal"
)

var (
	// ErrQueueFull is returned when a message cannot be queued without blocking.
	ErrQueueFull = errors.New("dispatch: queue full")

	// ErrStopped is returned once Run has returned.
	ErrStopped = errors.New("dispatch: stopped")
)

// Options configures a Dispatcher.
type Options struct {
	QueueLength int           // Defaults to constants.DefaultQueueLength
	TimerPeriod time.Duration // Zero uses constants.TimerPeriod, negative disables the timer
	Logger      *slog.Logger  // Defaults to the internal signalframe logger
	// OnError receives errors returned by queued operations. They are logged
	// when it is nil.
	OnError func(op string, err error)
}

type message struct {
	op   string
	run  func(r *router.Router) error
	done chan error
}

// Dispatcher owns the only goroutine allowed to touch its router.
type Dispatcher struct {
	router *router.Router
	opts   Options
	queue  chan message
	log    *slog.Logger

	// mu orders enqueues against the stop so nothing lands after the drain.
	mu      sync.Mutex
	stopped bool

	running   atomic.Bool
	processed atomic.Uint64
	dropped   atomic.Uint64
}

// New creates a Dispatcher for r. Nothing is applied until Run is called.
func New(r *router.Router, opts Options) *Dispatcher {
	if opts.QueueLength <= 0 {
		opts.QueueLength = constants.DefaultQueueLength
	}
	if opts.TimerPeriod == 0 {
		opts.TimerPeriod = constants.TimerPeriod
	}
	if opts.Logger == nil {
		opts.Logger = internal.GetInternalLogger()
	}
	return &Dispatcher{
		router: r,
		opts:   opts,
		queue:  make(chan message, opts.QueueLength),
		log:    opts.Logger,
	}
}

// Run applies queued messages until ctx is done. It may be called once.
func (d *Dispatcher) Run(ctx context.Context) error {
	if d.isStopped() || !d.running.CompareAndSwap(false, true) {
		return ErrStopped
	}
	defer func() {
		d.mu.Lock()
		d.stopped = true
		d.mu.Unlock()
		d.running.Store(false)
		d.drain()
	}()

	var tick <-chan time.Time
	if d.opts.TimerPeriod > 0 {
		ticker := time.NewTicker(d.opts.TimerPeriod)
		defer ticker.Stop()
		tick = ticker.C
	}

	d.log.Debug("dispatcher started", "queue", cap(d.queue), "timer", d.opts.TimerPeriod)

	for {
		select {
		case <-ctx.Done():
			d.log.Debug("dispatcher stopped", "processed", d.processed.Load(), "dropped", d.dropped.Load())
			return ctx.Err()
		case msg := <-d.queue:
			d.apply(msg)
		case <-tick:
			d.apply(message{op: "timer", run: func(r *router.Router) error {
				return r.EmitSignal(signal.Timer, nil)
			}})
		}
	}
}

func (d *Dispatcher) apply(msg message) {
	err := msg.run(d.router)
	d.processed.Inc()
	if msg.done != nil {
		msg.done <- err
		return
	}
	if err == nil {
		return
	}
	if d.opts.OnError != nil {
		d.opts.OnError(msg.op, err)
		return
	}
	d.log.Error("dispatch failed", "op", msg.op, "error", err)
}

// drain fails every message still waiting for an answer.
func (d *Dispatcher) drain() {
	for {
		select {
		case msg := <-d.queue:
			if msg.done != nil {
				msg.done <- ErrStopped
			}
		default:
			return
		}
	}
}

func (d *Dispatcher) isStopped() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.stopped
}

func (d *Dispatcher) enqueue(msg message) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return ErrStopped
	}
	select {
	case d.queue <- msg:
		return nil
	default:
		d.dropped.Inc()
		d.log.Warn("dispatch queue full", "op", msg.op)
		return ErrQueueFull
	}
}

// Processed returns the number of messages applied, timer ticks included.
func (d *Dispatcher) Processed() uint64 {
	return d.processed.Load()
}

// Dropped returns the number of messages rejected with ErrQueueFull.
func (d *Dispatcher) Dropped() uint64 {
	return d.dropped.Load()
}

// EmitSignal queues a signal. The payload is copied.
func (d *Dispatcher) EmitSignal(id signal.ID, payload []byte) error {
	p := clone(payload)
	return d.enqueue(message{op: "emit " + id.String(), run: func(r *router.Router) error {
		return r.EmitSignal(id, p)
	}})
}

// EmitMessage queues an encoded emit envelope as produced by signal.EncodeEmit.
func (d *Dispatcher) EmitMessage(data []byte) error {
	id, param, err := signal.DecodeEmit(data)
	if err != nil {
		return fmt.Errorf("dispatch: emit message: %w", err)
	}
	return d.EmitSignal(id, param)
}

// OpenView queues router.OpenView.
func (d *Dispatcher) OpenView(v *router.View) error {
	return d.enqueue(message{op: "open", run: func(r *router.Router) error {
		return r.OpenView(v)
	}})
}

// OpenViewWithParam queues router.OpenViewWithParam. The parameter is copied.
func (d *Dispatcher) OpenViewWithParam(v *router.View, param []byte) error {
	p := clone(param)
	return d.enqueue(message{op: "open_with_param", run: func(r *router.Router) error {
		return r.OpenViewWithParam(v, p)
	}})
}

// CloseView queues router.CloseView.
func (d *Dispatcher) CloseView(v *router.View) error {
	return d.enqueue(message{op: "close", run: func(r *router.Router) error {
		return r.CloseView(v)
	}})
}

// CloseCurrent queues router.CloseCurrent.
func (d *Dispatcher) CloseCurrent() error {
	return d.enqueue(message{op: "close_current", run: func(r *router.Router) error {
		return r.CloseCurrent()
	}})
}

// CloseToTarget queues router.CloseToTarget.
func (d *Dispatcher) CloseToTarget(v *router.View) error {
	return d.enqueue(message{op: "close_to", run: func(r *router.Router) error {
		return r.CloseToTarget(v)
	}})
}

// Func queues an arbitrary operation on the router.
func (d *Dispatcher) Func(op string, fn func(r *router.Router) error) error {
	return d.enqueue(message{op: op, run: fn})
}

// Call runs fn on the dispatcher goroutine and waits for its result.
func (d *Dispatcher) Call(ctx context.Context, fn func(r *router.Router) error) error {
	done := make(chan error, 1)
	if err := d.enqueue(message{op: "call", run: fn, done: done}); err != nil {
		return err
	}
	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func clone(b []byte) []byte {
	if b == nil {
		return nil
	}
	return append([]byte(nil), b...)
}

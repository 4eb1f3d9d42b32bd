package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"
)

// Outcome is the result of a dispatched command, as reported to a Recorder.
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeFailure Outcome = "failure"
	OutcomeTimeout Outcome = "timeout"
)

// ErrHandlerPanic wraps a panic recovered from a command handler.
var ErrHandlerPanic = errors.New("command handler panicked")

// Recorder receives dispatch measurements.
type Recorder interface {
	ObserveCommand(command string, kind Kind, outcome Outcome, elapsed time.Duration)
	ObserveDropped(kind Kind)
}

type noopRecorder struct{}

func (noopRecorder) ObserveCommand(string, Kind, Outcome, time.Duration) {}
func (noopRecorder) ObserveDropped(Kind)                                 {}

// DispatcherOption configures a Dispatcher.
type DispatcherOption func(*Dispatcher)

// WithHandlerTimeout gives every handler a context deadline. A zero or
// negative timeout leaves handlers without a deadline, which is the default.
func WithHandlerTimeout(timeout time.Duration) DispatcherOption {
	return func(d *Dispatcher) {
		d.timeout = timeout
	}
}

// WithRecorder reports dispatch measurements to rec.
func WithRecorder(rec Recorder) DispatcherOption {
	return func(d *Dispatcher) {
		if rec != nil {
			d.recorder = rec
		}
	}
}

// Dispatcher routes events to command handlers.
type Dispatcher struct {
	registry *Registry
	data     *Data
	timeout  time.Duration
	recorder Recorder

	// mu guards stopped and orders inflight.Add before the final Wait.
	mu       sync.Mutex
	stopped  bool
	inflight sync.WaitGroup
}

// NewDispatcher creates a Dispatcher over a frozen registry.
func NewDispatcher(registry *Registry, data *Data, opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		registry: registry,
		data:     data,
		recorder: noopRecorder{},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Submit dispatches the event on its own goroutine and returns immediately.
// It reports false, dropping the event, once Stop has been called.
func (d *Dispatcher) Submit(ctx context.Context, ev Event) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		slog.Debug("dropped event after shutdown", "command", ev.CommandName)
		return false
	}

	d.inflight.Add(1)
	go func() {
		defer d.inflight.Done()
		d.Dispatch(ctx, ev)
	}()

	return true
}

// Wait blocks until every submitted event has been handled.
func (d *Dispatcher) Wait() {
	d.inflight.Wait()
}

// Stop rejects further submissions and waits for in-flight events.
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	d.stopped = true
	d.mu.Unlock()

	d.inflight.Wait()
}

// Dispatch runs the handler for a single event and waits for it to finish.
// Events for unknown commands, or for a kind the command does not accept,
// are dropped without a reply. Handler errors are logged and never retried.
func (d *Dispatcher) Dispatch(ctx context.Context, ev Event) {
	cmd, ok := d.registry.Lookup(ev.CommandName, ev.Kind)
	if !ok {
		slog.Debug("dropped event for unknown command",
			"command", ev.CommandName,
			"kind", ev.Kind.String(),
		)
		d.recorder.ObserveDropped(ev.Kind)
		return
	}

	inv := &Invocation{
		Command:   cmd.Name,
		Kind:      ev.Kind,
		Invoker:   ev.Invoker,
		ChannelID: ev.ChannelID,
		Arguments: ev.Arguments,
	}
	if inv.Arguments == nil {
		inv.Arguments = map[string]any{}
	}

	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}

	start := time.Now()
	err := d.run(ctx, cmd, inv, ev.Responder)
	elapsed := time.Since(start)

	outcome := OutcomeSuccess
	switch {
	case err == nil:
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		outcome = OutcomeTimeout
		slog.Error("command handler exceeded deadline",
			"command", cmd.Name,
			"kind", ev.Kind.String(),
			"user_id", ev.Invoker.ID,
			"timeout", d.timeout,
			"error", err,
		)
	default:
		outcome = OutcomeFailure
		slog.Error("failed to handle command",
			"command", cmd.Name,
			"kind", ev.Kind.String(),
			"user_id", ev.Invoker.ID,
			"channel_id", ev.ChannelID,
			"error", err,
		)
	}

	d.recorder.ObserveCommand(cmd.Name, ev.Kind, outcome, elapsed)
	slog.Debug("handled command",
		"command", cmd.Name,
		"outcome", string(outcome),
		"elapsed", elapsed,
	)
}

func (d *Dispatcher) run(ctx context.Context, cmd Command, inv *Invocation, r Responder) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%w: %v\n%s", ErrHandlerPanic, rec, debug.Stack())
		}
	}()

	return cmd.Handler(ctx, d.data, inv, r)
}

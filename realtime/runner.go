package realtime

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/comalice/statestack"
	"github.com/comalice/statestack/internal/logger"
)

const tracerName = "github.com/comalice/statestack/realtime"

// Config configures the runner.
type Config struct {
	TickRate           time.Duration // Fixed tick rate (e.g., 16.67ms for 60 FPS)
	MaxCommandsPerTick int           // Command queue capacity (default: 1000)
}

// Runner drives a Machine from a fixed-rate ticker.
type Runner struct {
	machine *statestack.Machine
	logger  *slog.Logger
	tracer  trace.Tracer

	tickRate time.Duration
	ticker   *time.Ticker

	mu          sync.Mutex
	batch       []QueuedCommand
	sequenceNum uint64
	tickNum     uint64
	running     bool
	stopped     bool

	cancel context.CancelFunc
	done   chan struct{}
}

// NewRunner creates a runner for m. The runner becomes the only goroutine
// allowed to touch m once Start is called.
func NewRunner(m *statestack.Machine, cfg Config, opts ...Option) *Runner {
	if cfg.MaxCommandsPerTick == 0 {
		cfg.MaxCommandsPerTick = 1000
	}
	if cfg.TickRate == 0 {
		cfg.TickRate = 16667 * time.Microsecond // Default 60 FPS
	}

	r := &Runner{
		machine:  m,
		logger:   logger.Discard(),
		tracer:   otel.GetTracerProvider().Tracer(tracerName),
		tickRate: cfg.TickRate,
		batch:    make([]QueuedCommand, 0, cfg.MaxCommandsPerTick),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = r.logger.With(logger.Component("realtime"), logger.MachineID(m.ID()))
	return r
}

// Machine returns the driven machine. Only touch it from commands or hooks
// while the loop is running.
func (r *Runner) Machine() *statestack.Machine { return r.machine }

// Start begins tick-based execution on a new goroutine.
func (r *Runner) Start(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.stopped {
		return ErrStopped
	}
	if r.running {
		return ErrAlreadyStarted
	}

	loopCtx, cancel := context.WithCancel(ctx)
	r.cancel = cancel
	r.ticker = time.NewTicker(r.tickRate)
	r.running = true

	go r.loop(loopCtx)

	r.logger.Info("runner started", logger.Duration(r.tickRate))
	return nil
}

// Stop ends the loop, waits for the current tick to finish and unloads every
// state left on the machine. Commands still queued are discarded. Calling Stop
// again is a no-op.
func (r *Runner) Stop() error {
	r.mu.Lock()
	if r.stopped {
		r.mu.Unlock()
		return nil
	}
	r.stopped = true
	running := r.running
	r.batch = r.batch[:0]
	r.mu.Unlock()

	if running {
		r.cancel()
		r.ticker.Stop()
		<-r.done
	}

	r.machine.Unload()
	r.logger.Info("runner stopped", logger.Tick(r.TickNumber()))
	return nil
}

// Done is closed when the background loop exits. It never closes if Start
// was not called.
func (r *Runner) Done() <-chan struct{} {
	return r.done
}

// Send queues cmd for the next tick. Safe for concurrent use.
func (r *Runner) Send(cmd Command) error {
	return r.SendWithPriority(cmd, 0)
}

// SendWithPriority queues cmd with the given priority. Higher priorities are
// applied first within a tick.
func (r *Runner) SendWithPriority(cmd Command, priority int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.stopped {
		return ErrStopped
	}
	if len(r.batch) >= cap(r.batch) {
		return ErrQueueFull
	}

	r.batch = append(r.batch, QueuedCommand{
		Command:     cmd,
		SequenceNum: r.sequenceNum,
		Priority:    priority,
	})
	r.sequenceNum++
	return nil
}

// Step runs one tick on the caller's goroutine. A panic inside the tick is
// recovered and returned as *TickPanicError.
func (r *Runner) Step(ctx context.Context) error {
	r.mu.Lock()
	switch {
	case r.stopped:
		r.mu.Unlock()
		return ErrStopped
	case r.running:
		r.mu.Unlock()
		return ErrRunning
	}
	r.mu.Unlock()

	return r.runTick(ctx)
}

// TickNumber returns the number of completed ticks.
func (r *Runner) TickNumber() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.tickNum
}

func (r *Runner) loop(ctx context.Context) {
	defer close(r.done)

	for {
		select {
		case <-ctx.Done():
			return
		case <-r.ticker.C:
			if err := r.runTick(ctx); err != nil {
				r.logger.Error("tick failed", logger.Error(err))
			}
		}
	}
}

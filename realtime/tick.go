package realtime

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/comalice/statestack"
	"github.com/comalice/statestack/internal/logger"
)

// runTick processes one complete tick and advances the tick counter, even
// when the tick panics.
func (r *Runner) runTick(ctx context.Context) (err error) {
	tick := r.TickNumber()

	ctx, span := r.tracer.Start(ctx, "statestack.tick",
		trace.WithAttributes(attribute.Int64("tick", int64(tick))),
	)
	defer span.End()

	defer func() {
		r.mu.Lock()
		r.tickNum++
		r.mu.Unlock()
	}()

	defer func() {
		if rec := recover(); rec != nil {
			err = &TickPanicError{Tick: tick, Value: rec}
			span.RecordError(err)
			span.SetStatus(codes.Error, fmt.Sprint(rec))
		}
	}()

	r.processTick(ctx, tick)

	span.SetAttributes(
		attribute.Int("depth", r.machine.Count()),
		attribute.String("state", statestack.StateName(r.machine.State())),
	)
	return nil
}

// processTick applies queued commands and then updates the machine.
func (r *Runner) processTick(ctx context.Context, tick uint64) {
	// Phase 1: Collect commands atomically
	cmds := r.collectCommands()

	// Phase 2: Sort for deterministic order
	sortCommands(cmds)

	// Phase 3: Apply stack operations
	for _, qc := range cmds {
		if qc.Command == nil {
			continue
		}
		if err := qc.Command(r.machine); err != nil {
			r.logger.WarnContext(ctx, "command failed",
				logger.Tick(tick),
				slog.Uint64("sequence", qc.SequenceNum),
				logger.Error(err),
			)
		}
	}

	// Phase 4: Drive lifecycle hooks
	r.machine.Update()
}

// collectCommands atomically retrieves and clears the command batch.
func (r *Runner) collectCommands() []QueuedCommand {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.batch) == 0 {
		return nil
	}
	cmds := r.batch
	r.batch = make([]QueuedCommand, 0, cap(cmds))
	return cmds
}

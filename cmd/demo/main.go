// Command demo drives a title, play and pause stack from the realtime runner
// and prints a snapshot of the machine on exit.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/comalice/statestack"
	"github.com/comalice/statestack/datastore"
	"github.com/comalice/statestack/internal/config"
	"github.com/comalice/statestack/internal/logger"
	"github.com/comalice/statestack/internal/production"
	"github.com/comalice/statestack/internal/telemetry"
	"github.com/comalice/statestack/realtime"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "demo: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithFormat(logger.Format(cfg.LogFormat)),
		logger.WithOutput(os.Stderr),
		logger.WithAttr(slog.String("service", "statestack-demo")),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdown, err := telemetry.Setup(ctx, telemetry.Options{
		ServiceName: "statestack-demo",
		Endpoint:    cfg.OTelEndpoint,
		Enabled:     cfg.OTelEnabled,
	})
	if err != nil {
		return fmt.Errorf("setup telemetry: %w", err)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			log.Error("telemetry shutdown failed", logger.Error(err))
		}
	}()

	events := make(chan statestack.HookEvent, 256)
	publisher := production.NewChannelPublisher(events)
	drained := make(chan struct{})
	go func() {
		defer close(drained)
		for ev := range events {
			log.Debug("hook",
				logger.Hook(ev.Hook.String()),
				logger.State(ev.State),
				logger.Depth(ev.Depth),
			)
		}
	}()

	store := datastore.New()
	m := statestack.NewMachine(
		statestack.WithLogger(log),
		statestack.WithObserver(publisher),
	)

	pause := &pauseState{store: store, frames: 30}
	play := &playState{store: store, pause: pause, every: 120}
	if err := m.PushState(&titleState{next: play, frames: 60}); err != nil {
		return err
	}

	runner := realtime.NewRunner(m, realtime.Config{
		TickRate:           cfg.TickRate,
		MaxCommandsPerTick: cfg.MaxCommandsPerTick,
	}, realtime.WithLogger(log))

	// The loop outlives the signal context so the final snapshot can be
	// taken on a tick.
	if err := runner.Start(context.Background()); err != nil {
		return err
	}

	select {
	case <-ctx.Done():
		log.Info("signal received")
	case <-time.After(cfg.RunFor):
	}

	snap, snapErr := capture(runner, store)
	if snapErr != nil {
		log.Warn("snapshot skipped", logger.Error(snapErr))
	}

	if err := runner.Stop(); err != nil {
		return err
	}
	_ = publisher.Close()
	<-drained

	log.Info("demo finished",
		logger.Tick(runner.TickNumber()),
		slog.Uint64("dropped_events", publisher.Dropped()),
	)

	if snapErr == nil {
		return production.Dump(os.Stdout, cfg.DumpFormat, snap)
	}
	return nil
}

// capture inspects the machine from the tick goroutine so the snapshot sees a
// consistent stack.
func capture(r *realtime.Runner, store *datastore.Store) (production.Snapshot, error) {
	out := make(chan production.Snapshot, 1)
	err := r.SendWithPriority(func(m *statestack.Machine) error {
		out <- production.Inspect(m, store)
		return nil
	}, 100)
	if err != nil {
		return production.Snapshot{}, err
	}

	select {
	case snap := <-out:
		return snap, nil
	case <-time.After(time.Second):
		return production.Snapshot{}, fmt.Errorf("no tick within 1s")
	}
}

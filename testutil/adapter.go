package testutil

import (
	"context"

	"github.com/comalice/statestack"
	"github.com/comalice/statestack/realtime"
)

// Driver advances a machine by whole ticks. It lets the same test run against
// a hand-written frame loop and against realtime.Runner.
type Driver interface {
	Machine() *statestack.Machine
	Tick(ctx context.Context) error
}

// ManualDriver calls Machine.Update directly.
type ManualDriver struct {
	m *statestack.Machine
}

func NewManualDriver(m *statestack.Machine) *ManualDriver {
	return &ManualDriver{m: m}
}

func (d *ManualDriver) Machine() *statestack.Machine { return d.m }

func (d *ManualDriver) Tick(ctx context.Context) error {
	d.m.Update()
	return nil
}

// RunnerDriver steps a realtime.Runner synchronously.
type RunnerDriver struct {
	rt *realtime.Runner
	m  *statestack.Machine
}

func NewRunnerDriver(m *statestack.Machine) *RunnerDriver {
	return &RunnerDriver{
		rt: realtime.NewRunner(m, realtime.Config{}),
		m:  m,
	}
}

func (d *RunnerDriver) Machine() *statestack.Machine { return d.m }

func (d *RunnerDriver) Runner() *realtime.Runner { return d.rt }

func (d *RunnerDriver) Tick(ctx context.Context) error {
	return d.rt.Step(ctx)
}

// RunTicks advances d by n ticks, stopping at the first error.
func RunTicks(ctx context.Context, d Driver, n int) error {
	for i := 0; i < n; i++ {
		if err := d.Tick(ctx); err != nil {
			return err
		}
	}
	return nil
}

package benchmarks

import (
	"context"
	"testing"

	"github.com/comalice/statestack"
	"github.com/comalice/statestack/realtime"
)

func BenchmarkRunnerStep(b *testing.B) {
	r := realtime.NewRunner(GenStack(4), realtime.Config{})
	ctx := context.Background()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := r.Step(ctx); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkRunnerStepWithCommands queues a push and a pop per tick so every
// step touches the command queue.
func BenchmarkRunnerStepWithCommands(b *testing.B) {
	r := realtime.NewRunner(GenStack(1), realtime.Config{})
	overlay := GenStates(1)[0]
	ctx := context.Background()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := r.Send(realtime.Push(overlay)); err != nil {
			b.Fatal(err)
		}
		if err := r.Send(realtime.Pop()); err != nil {
			b.Fatal(err)
		}
		if err := r.Step(ctx); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRunnerSendParallel(b *testing.B) {
	r := realtime.NewRunner(statestack.NewMachine(), realtime.Config{MaxCommandsPerTick: 1 << 20})
	noop := func(*statestack.Machine) error { return nil }
	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_ = r.Send(noop) // ErrQueueFull once the buffer fills
		}
	})
}

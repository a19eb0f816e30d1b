// Package realtime runs a statestack.Machine at a fixed tick rate.
//
// A Runner owns the frame loop: on every tick it applies the commands queued
// since the previous tick and then calls Machine.Update. All machine access
// happens on the loop goroutine, so other goroutines talk to the machine only
// through Send.
//
// # Example Usage
//
//	m := statestack.NewMachine()
//	_ = m.PushState(&Title{})
//	rt := realtime.NewRunner(m, realtime.Config{
//		TickRate: 16667 * time.Microsecond, // 60 FPS
//	})
//	if err := rt.Start(ctx); err != nil {
//		return err
//	}
//	defer rt.Stop()
//	_ = rt.Send(realtime.Push(&Pause{}))
//
// # Command Ordering
//
// Commands queued for the same tick are applied in a deterministic order:
//  1. Priority (higher priority applied first)
//  2. Sequence number (FIFO for same priority)
//
// Given the same sequence of Send calls the machine sees the same sequence of
// stack operations, regardless of goroutine scheduling.
//
// # Tracing
//
// Each tick runs inside an OpenTelemetry span named "statestack.tick". The
// global tracer provider is used unless WithTracerProvider is given.
//
// # Manual stepping
//
// Step runs one tick on the caller's goroutine. It is meant for tests and for
// applications that own their frame loop but still want queued commands and
// tick spans. Step fails while the background loop is running.
package realtime

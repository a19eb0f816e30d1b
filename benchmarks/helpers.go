// Package benchmarks provides shared helpers for benchmark tests.
package benchmarks

import (
	"bytes"
	"fmt"

	"github.com/comalice/statestack"
	"github.com/comalice/statestack/internal/production"
)

// benchState is a state with no-op hooks and a fixed name.
type benchState struct {
	statestack.Base
	name string
}

func (s *benchState) Name() string { return s.name }

// GenStates creates n distinct states named s0..s(n-1).
func GenStates(n int) []statestack.State {
	if n < 1 {
		n = 1
	}
	states := make([]statestack.State, n)
	for i := range states {
		states[i] = &benchState{name: fmt.Sprintf("s%d", i)}
	}
	return states
}

// GenStack creates a machine with n states pushed and settled.
func GenStack(n int) *statestack.Machine {
	m := statestack.NewMachine(statestack.WithID(fmt.Sprintf("stack_%d", n)))
	for _, s := range GenStates(n) {
		if err := m.PushState(s); err != nil {
			panic(err)
		}
	}
	m.Update()
	return m
}

// GenSnapshotYAML renders a settled stack of depth n as YAML.
func GenSnapshotYAML(n int) []byte {
	var buf bytes.Buffer
	if err := production.DumpYAML(&buf, production.Inspect(GenStack(n), nil)); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

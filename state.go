package statestack

import (
	"fmt"
	"strings"
)

// State is a unit of lifecycle-driven behavior managed by a Machine.
//
// Implementations embed Base, which supplies no-op hooks and the owning
// machine back-reference, and override any subset of the five hooks. States
// must be used by pointer.
type State interface {
	// Load fires once, when the state is pushed.
	Load()
	// Start fires when the state becomes the active state.
	Start()
	// Update fires once per tick while the state is active.
	Update()
	// Stop fires when the state stops being active or is removed.
	Stop()
	// Unload fires once, when the state is removed from the machine.
	Unload()
	// Machine returns the machine the state was last pushed onto, or nil.
	Machine() *Machine

	attach(m *Machine) error
	detach()
}

// Namer is implemented by states that want a readable name in logs, events and snapshots.
type Namer interface {
	Name() string
}

// Base is embedded by concrete states.
type Base struct {
	machine  *Machine
	attached bool
}

func (b *Base) Machine() *Machine { return b.machine }

func (b *Base) Load()   {}
func (b *Base) Start()  {}
func (b *Base) Update() {}
func (b *Base) Stop()   {}
func (b *Base) Unload() {}

// attach binds the state to m. A state may only be on one stack at a time;
// after removal it keeps its back-reference but may be pushed again.
func (b *Base) attach(m *Machine) error {
	if b.attached {
		if b.machine == m {
			return errAlreadyOnStack
		}
		return errAttachedElsewhere
	}
	b.machine = m
	b.attached = true
	return nil
}

func (b *Base) detach() {
	b.attached = false
}

// StateName returns s.Name() for a Namer, otherwise the state's type name.
func StateName(s State) string {
	if s == nil {
		return "<nil>"
	}
	if n, ok := s.(Namer); ok {
		return n.Name()
	}
	name := fmt.Sprintf("%T", s)
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return strings.TrimPrefix(name, "*")
}

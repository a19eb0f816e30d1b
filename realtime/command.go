package realtime

import (
	"sort"

	"github.com/comalice/statestack"
)

// Command is applied to the machine on the loop goroutine at the start of a
// tick, before Machine.Update. A returned error is logged and does not stop
// the tick.
type Command func(m *statestack.Machine) error

// QueuedCommand adds sequencing metadata for deterministic ordering.
type QueuedCommand struct {
	Command     Command
	SequenceNum uint64
	Priority    int
}

// Push returns a command that pushes s.
func Push(s statestack.State) Command {
	return func(m *statestack.Machine) error {
		return m.PushState(s)
	}
}

// Pop returns a command that pops the top state.
func Pop() Command {
	return func(m *statestack.Machine) error {
		m.PopState()
		return nil
	}
}

// Replace returns a command that replaces the top state with s.
func Replace(s statestack.State) Command {
	return func(m *statestack.Machine) error {
		_, err := m.ReplaceState(s)
		return err
	}
}

// Clear returns a command that clears the stack.
func Clear() Command {
	return func(m *statestack.Machine) error {
		m.ClearStates()
		return nil
	}
}

// sortCommands orders commands by priority, highest first, then by
// submission order.
func sortCommands(cmds []QueuedCommand) {
	sort.SliceStable(cmds, func(i, j int) bool {
		if cmds[i].Priority != cmds[j].Priority {
			return cmds[i].Priority > cmds[j].Priority
		}
		return cmds[i].SequenceNum < cmds[j].SequenceNum
	})
}

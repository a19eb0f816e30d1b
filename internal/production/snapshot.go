package production

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/comalice/statestack"
	"github.com/comalice/statestack/datastore"
)

// Snapshot is a point-in-time description of a machine for diagnostics. It
// cannot be used to restore a machine.
type Snapshot struct {
	MachineID   string         `json:"machine_id" yaml:"machine_id"`
	Status      string         `json:"status" yaml:"status"`
	Depth       int            `json:"depth" yaml:"depth"`
	Stack       []string       `json:"stack" yaml:"stack"` // bottom first
	Active      string         `json:"active,omitempty" yaml:"active,omitempty"`
	ActiveIndex int            `json:"active_index" yaml:"active_index"` // -1 when nothing is active
	Data        map[string]any `json:"data,omitempty" yaml:"data,omitempty"`
	Timestamp   time.Time      `json:"timestamp" yaml:"timestamp"`
}

// Top returns the name of the top state, or "" for an empty stack.
func (s Snapshot) Top() string {
	if len(s.Stack) == 0 {
		return ""
	}
	return s.Stack[len(s.Stack)-1]
}

// Inspect captures m. Data is copied from store when it is non-nil. Call it
// from the goroutine that drives m.
func Inspect(m *statestack.Machine, store *datastore.Store) Snapshot {
	states := m.States()
	stack := make([]string, len(states))
	for i, s := range states {
		stack[i] = statestack.StateName(s)
	}

	snap := Snapshot{
		MachineID:   m.ID(),
		Status:      m.Status().String(),
		Depth:       len(states),
		Stack:       stack,
		ActiveIndex: -1,
		Timestamp:   time.Now(),
	}
	if active := m.Active(); active != nil {
		snap.Active = statestack.StateName(active)
		for i, s := range states {
			if s == active {
				snap.ActiveIndex = i
			}
		}
	}
	if store != nil {
		snap.Data = store.Snapshot()
	}
	return snap
}

// DumpJSON writes snap as indented JSON.
func DumpJSON(w io.Writer, snap Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

// DumpYAML writes snap as YAML.
func DumpYAML(w io.Writer, snap Snapshot) error {
	data, err := yaml.Marshal(snap)
	if err != nil {
		return fmt.Errorf("yaml marshal: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

// Dump writes snap in the named format: yaml, json, dot or mermaid.
func Dump(w io.Writer, format string, snap Snapshot) error {
	switch format {
	case "yaml":
		return DumpYAML(w, snap)
	case "json":
		return DumpJSON(w, snap)
	case "dot":
		_, err := io.WriteString(w, ExportDOT(snap))
		return err
	case "mermaid":
		_, err := io.WriteString(w, ExportMermaid(snap))
		return err
	default:
		return fmt.Errorf("unknown dump format %q", format)
	}
}

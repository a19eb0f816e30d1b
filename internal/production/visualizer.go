package production

import (
	"bytes"
	"fmt"
)

// ExportDOT generates Graphviz DOT source for the stack in snap. States are
// drawn bottom to top; the top is outlined and the active state filled.
func ExportDOT(snap Snapshot) string {
	var buf bytes.Buffer
	buf.WriteString(`digraph StateStack {
  rankdir=BT;
  node [shape=box, fontsize=10, style=rounded];
  edge [fontsize=9];
`)
	fmt.Fprintf(&buf, "  label=%q;\n", fmt.Sprintf("%s (%s)", snap.MachineID, snap.Status))

	for i, name := range snap.Stack {
		style := ""
		if i == snap.ActiveIndex {
			style += ` style="rounded,filled" fillcolor=lightgreen`
		}
		if i == len(snap.Stack)-1 {
			style += ` penwidth=2`
		}
		fmt.Fprintf(&buf, "  %q [label=%q%s];\n", nodeID(i), name, style)
	}

	for i := 1; i < len(snap.Stack); i++ {
		fmt.Fprintf(&buf, "  %q -> %q [label=\"covers\"];\n", nodeID(i), nodeID(i-1))
	}

	buf.WriteString("}\n")
	return buf.String()
}

// ExportMermaid renders the stack in snap as a Mermaid flowchart.
func ExportMermaid(snap Snapshot) string {
	var buf bytes.Buffer
	buf.WriteString("flowchart BT\n")

	for i, name := range snap.Stack {
		fmt.Fprintf(&buf, "  %s[%q]\n", nodeID(i), name)
	}
	for i := 1; i < len(snap.Stack); i++ {
		fmt.Fprintf(&buf, "  %s -->|covers| %s\n", nodeID(i), nodeID(i-1))
	}
	if snap.ActiveIndex >= 0 && snap.ActiveIndex < len(snap.Stack) {
		fmt.Fprintf(&buf, "  style %s fill:#9f9\n", nodeID(snap.ActiveIndex))
	}
	return buf.String()
}

// nodeID keys nodes by stack position since state names need not be unique.
func nodeID(i int) string {
	return fmt.Sprintf("s%d", i)
}

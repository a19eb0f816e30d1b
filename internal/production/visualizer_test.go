package production

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExportDOT(t *testing.T) {
	snap := Snapshot{
		MachineID:   "m",
		Status:      "dirty",
		Stack:       []string{"world", "inventory", "pause"},
		Active:      "inventory",
		ActiveIndex: 1,
	}

	dot := ExportDOT(snap)

	assert.True(t, strings.HasPrefix(dot, "digraph StateStack {"))
	assert.Contains(t, dot, `label="m (dirty)";`)
	assert.Contains(t, dot, `"s0" [label="world"];`)
	assert.Contains(t, dot, `"s1" [label="inventory" style="rounded,filled" fillcolor=lightgreen];`)
	assert.Contains(t, dot, `"s2" [label="pause" penwidth=2];`)
	assert.Contains(t, dot, `"s1" -> "s0" [label="covers"];`)
	assert.Contains(t, dot, `"s2" -> "s1" [label="covers"];`)
	assert.True(t, strings.HasSuffix(dot, "}\n"))
}

func TestExportDOTEmpty(t *testing.T) {
	dot := ExportDOT(Snapshot{MachineID: "m", Status: "empty", ActiveIndex: -1})
	assert.NotContains(t, dot, "->")
	assert.NotContains(t, dot, `"s0"`)
}

func TestExportMermaid(t *testing.T) {
	snap := Snapshot{Stack: []string{"title", "title"}, ActiveIndex: 1}

	out := ExportMermaid(snap)

	assert.Equal(t, strings.Join([]string{
		"flowchart BT",
		`  s0["title"]`,
		`  s1["title"]`,
		"  s1 -->|covers| s0",
		"  style s1 fill:#9f9",
		"",
	}, "\n"), out)
}

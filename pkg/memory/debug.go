package memory

import (
	"fmt"
	"io"
)

// Graph dump - Graphviz DOT rendering of the root buffer
//
// Adapted from the teacher's scc.go, whose SCCGenerator wraps an io.Writer
// and an emit helper to produce C source describing SCC runtime structures.
// dotDumper keeps that emit-into-a-writer shape but repoints it at
// Graphviz DOT describing the *live* root buffer, since the compiler's
// code-generation audience (a C compiler) has no analogue here — the
// natural output for inspecting a possible-cycle graph is a rendering of
// the graph itself.

// dotDumper renders control blocks reachable from the root buffer as a
// Graphviz digraph: one node per block (colored by its Color), one edge per
// outgoing strong reference discovered by tracing.
type dotDumper struct {
	w io.Writer
}

// NewDOTDumper returns a dumper that writes to w.
func NewDOTDumper(w io.Writer) *dotDumper {
	return &dotDumper{w: w}
}

func (d *dotDumper) emit(format string, args ...any) {
	fmt.Fprintf(d.w, format, args...)
}

// DumpRootBuffer writes a DOT digraph of every block currently in the
// global root buffer and everything reachable from them by tracing. It is
// a read-only diagnostic: it calls no Mark/Scan/Collect logic and mutates
// no counts.
func DumpRootBuffer(w io.Writer) {
	d := NewDOTDumper(w)
	d.emit("digraph roots {\n")
	visited := make(map[*controlBlock]bool)
	for _, cb := range globalRoots.snapshot() {
		d.walk(cb, visited)
	}
	d.emit("}\n")
}

func (d *dotDumper) walk(cb *controlBlock, visited map[*controlBlock]bool) {
	if cb == nil || visited[cb] {
		return
	}
	visited[cb] = true
	d.emit(
		"  %q [label=%q color=%q];\n",
		cb.id.String(), nodeLabel(cb), dotColor(cb.color),
	)
	cb.trace(visitorFor(func(child *controlBlock) {
		d.emit("  %q -> %q;\n", cb.id.String(), child.id.String())
		d.walk(child, visited)
	}))
}

func nodeLabel(cb *controlBlock) string {
	return fmt.Sprintf("%s\\nstrong=%d weak=%d", cb.color, cb.strong, cb.weak)
}

func dotColor(c Color) string {
	switch c {
	case Purple:
		return "purple"
	case Gray:
		return "gray"
	case White:
		return "white"
	default:
		return "black"
	}
}

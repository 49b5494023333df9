package demo

import (
	"fmt"

	"cyclicmem/pkg/memory"
)

// Graph construction - turns a Scenario into live Strong[Node] handles
//
// Grounded on the same node/nodeTracer fixture pkg/memory's own tests build
// (collector_test.go): a named payload with a tracer that reports its
// outgoing strong edges and a deleter that records the name and releases
// them. The only generalization here is "next" becoming "children", since a
// demo graph benefits from branching and merging that the unit tests don't
// need.

// Node is the demo payload: a name for reporting, and every strong edge it
// owns. Its Deleter must close every entry in children itself — the core
// collector only recurses into White children to order a single pass, it
// never releases a payload's own handles on its behalf.
type Node struct {
	Name     string
	children []memory.Strong[Node]
}

func nodeTracer(n *Node, v memory.Visitor) {
	for _, c := range n.children {
		v(c)
	}
}

// Reporter receives one call per Node actually destroyed, in destruction
// order, so a caller can show exactly what collection or release did.
type Reporter func(name string)

func newDemoNode(name string, report Reporter) memory.Strong[Node] {
	return memory.NewStrong(&Node{Name: name}, memory.WithTracer[Node](nodeTracer), memory.WithDeleter(func(n *Node) {
		report(n.Name)
		for i := range n.children {
			n.children[i].Close()
		}
	}))
}

// Graph is the live result of building a Scenario: every handle the
// scenario didn't already close, plus the external "keep" handles holding
// some of them alive across a collection.
type Graph struct {
	Nodes map[string]memory.Strong[Node]
	Kept  map[string]memory.Strong[Node]
}

// Build allocates one node per s.Nodes, wires s.Edges as strong references,
// clones an external keep-alive handle for each name in s.Keep, and then
// closes every handle named in s.Close, in order. Reporter fires once per
// node a Close call or a later CollectCycles reclaims.
func Build(s Scenario, report Reporter) (Graph, error) {
	nodes := make(map[string]memory.Strong[Node], len(s.Nodes))
	for _, name := range s.Nodes {
		nodes[name] = newDemoNode(name, report)
	}

	for _, e := range s.Edges {
		from, ok := nodes[e.From]
		if !ok {
			return Graph{}, fmt.Errorf("demo: edge references unknown node %q", e.From)
		}
		to, ok := nodes[e.To]
		if !ok {
			return Graph{}, fmt.Errorf("demo: edge references unknown node %q", e.To)
		}
		from.Get().children = append(from.Get().children, to.Clone())
	}

	kept := make(map[string]memory.Strong[Node], len(s.Keep))
	for _, name := range s.Keep {
		n, ok := nodes[name]
		if !ok {
			return Graph{}, fmt.Errorf("demo: keep references unknown node %q", name)
		}
		kept[name] = n.Clone()
	}

	for _, name := range s.Close {
		n, ok := nodes[name]
		if !ok {
			return Graph{}, fmt.Errorf("demo: close references unknown node %q", name)
		}
		n.Close()
		delete(nodes, name)
	}

	return Graph{Nodes: nodes, Kept: kept}, nil
}

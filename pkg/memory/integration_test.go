package memory

import (
	"strings"
	"testing"
)

// Integration tests exercising Strong, Weak, the collector, metrics and the
// debug dumper together, the way a real embedding program would combine
// them rather than poking at one file's internals in isolation.

func TestIntegration_ChainReclaimedOnRootClose(t *testing.T) {
	log := map[string]int{}

	root := newNode("root", log)
	left := newNode("left", log)
	right := newNode("right", log)

	// root owns left; left owns right; no cycle anywhere.
	left.Get().next = right.Move()
	root.Get().next = left.Move()

	root.Close()

	for _, name := range []string{"root", "left", "right"} {
		if log[name] != 1 {
			t.Fatalf("expected %s reclaimed once via acyclic cascade, got %d", name, log[name])
		}
	}
}

func TestIntegration_WeakObserverSurvivesSiblingCollection(t *testing.T) {
	log := map[string]int{}

	a := newNode("a", log)
	b := newNode("b", log)
	a.Get().next = b.Clone()
	b.Get().next = a.Clone()

	observer := NewWeak(b)

	a.Close()
	b.Close()

	CollectCycles()

	if log["a"] != 1 || log["b"] != 1 {
		t.Fatalf("expected cycle reclaimed, got a=%d b=%d", log["a"], log["b"])
	}
	if up := observer.Upgrade(); !up.IsNull() {
		t.Fatal("observer must fail to upgrade once the cycle is gone")
	}
	observer.Close()
}

func TestIntegration_MetricsTrackAllocationsAndCollections(t *testing.T) {
	startAllocated := collectorMetrics.allocated
	startCollections := collectorMetrics.collections
	startReclaimed := collectorMetrics.cyclesReclaimed

	log := map[string]int{}
	a := newNode("m1", log)
	b := newNode("m2", log)
	a.Get().next = b.Clone()
	b.Get().next = a.Clone()
	a.Close()
	b.Close()

	if collectorMetrics.allocated != startAllocated+2 {
		t.Fatalf("expected 2 new allocations observed, got delta %d", collectorMetrics.allocated-startAllocated)
	}

	CollectCycles()

	if collectorMetrics.collections != startCollections+1 {
		t.Fatalf("expected one collection run observed, got delta %d", collectorMetrics.collections-startCollections)
	}
	if collectorMetrics.cyclesReclaimed != startReclaimed+2 {
		t.Fatalf("expected 2 blocks reclaimed by the collector, got delta %d", collectorMetrics.cyclesReclaimed-startReclaimed)
	}
}

func TestIntegration_DumpRootBufferRendersPurpleCandidates(t *testing.T) {
	log := map[string]int{}
	a := newNode("dump-a", log)
	b := newNode("dump-b", log)
	a.Get().next = b.Clone()
	b.Get().next = a.Clone()
	a.Close()
	b.Close()

	var sb strings.Builder
	DumpRootBuffer(&sb)
	out := sb.String()

	if !strings.HasPrefix(out, "digraph roots {") {
		t.Fatalf("expected a DOT digraph header, got %q", out)
	}
	if !strings.Contains(out, "purple") {
		t.Fatalf("expected at least one purple candidate rendered, got %q", out)
	}

	CollectCycles()
}

func TestIntegration_ComplexGraphMixingRescueAndReclaim(t *testing.T) {
	// Two independent cycles: one gets an external keep-alive, one doesn't.
	log := map[string]int{}

	liveA := newNode("liveA", log)
	liveB := newNode("liveB", log)
	liveA.Get().next = liveB.Clone()
	liveB.Get().next = liveA.Clone()
	keep := liveA.Clone()

	deadA := newNode("deadA", log)
	deadB := newNode("deadB", log)
	deadA.Get().next = deadB.Clone()
	deadB.Get().next = deadA.Clone()

	liveA.Close()
	liveB.Close()
	deadA.Close()
	deadB.Close()

	CollectCycles()

	if log["liveA"] != 0 || log["liveB"] != 0 {
		t.Fatalf("rescued cycle must survive, got liveA=%d liveB=%d", log["liveA"], log["liveB"])
	}
	if log["deadA"] != 1 || log["deadB"] != 1 {
		t.Fatalf("unrescued cycle must be reclaimed, got deadA=%d deadB=%d", log["deadA"], log["deadB"])
	}

	keep.Close()
	CollectCycles()

	if log["liveA"] != 1 || log["liveB"] != 1 {
		t.Fatalf("expected rescued cycle reclaimed after keep drops, got liveA=%d liveB=%d", log["liveA"], log["liveB"])
	}
	if stats := RootBufferStats(); stats.Buffered != 0 {
		t.Fatalf("expected an empty root buffer once every cycle is resolved, got %+v", stats)
	}
}

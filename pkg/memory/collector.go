package memory

// Synchronous trial-deletion cycle collector (Bacon & Rajan)
//
// Adapted from the teacher's symmetric.go, whose central idea — an object
// is collectible the instant its *externally visible* reference count
// drops to zero — is generalized here from "scope owns it" to "nothing
// outside this candidate subgraph still points into it". The three passes
// below are trial deletion's way of computing that external count without
// ever mutating anything it doesn't restore: Mark provisionally removes
// every strong edge internal to the traced subgraph, Scan restores them
// wherever an external reference proves the subtraction was wrong, and
// Collect destroys exactly the blocks Scan did not rescue.
//
// Each of the four walks is written recursively, matching the original
// implementation in original_source/cyclic_shared.cpp; the spec's design
// notes permit an explicit work-stack instead, but recursion keeps the
// traversal order identical to the tracer's emission order without extra
// bookkeeping, and Go's default goroutine stack grows on demand.

// CollectCycles drains the global root buffer: Mark paints every candidate
// root (and everything strongly reachable from it) Gray while provisionally
// subtracting internal strong edges; Scan distinguishes White (provably
// garbage) from Black (rescued by an external reference) among the
// survivors; Collect destroys every White block. Blocks that a Deleter files
// as possible roots while Collect runs stay buffered for the next call. It
// is the library's only
// collection entry point — spec §6's "collect_cycles(): a parameterless
// free function that drains the root buffer."
func CollectCycles() {
	for _, cb := range globalRoots.snapshot() {
		if cb.color == Purple && cb.strong > 0 {
			markGray(cb)
		} else {
			globalRoots.remove(cb)
		}
	}

	for _, cb := range globalRoots.snapshot() {
		if cb.color == Gray {
			scan(cb)
		}
	}

	collected := 0
	for _, cb := range globalRoots.snapshot() {
		if cb.color == White {
			collected += collectWhite(cb)
		}
	}
	collectorMetrics.observeCollection(collected)

	// Every entry processed above is Black by now; a Purple entry was filed
	// by a Deleter during Collect and stays buffered for the next call.
	for _, cb := range globalRoots.snapshot() {
		if cb.color != Purple {
			globalRoots.remove(cb)
		}
	}
}

// markGray paints cb Gray and walks its strong children, provisionally
// moving each child's strong contribution from cb into weak. After Mark,
// strong on every block reachable from a candidate root reflects only
// references from outside the subgraph just traced.
func markGray(cb *controlBlock) {
	cb.color = Gray
	cb.trace(visitorFor(func(child *controlBlock) {
		child.strong--
		child.weak++
		if child.color != Gray {
			markGray(child)
		}
	}))
}

// scan classifies a Gray block: strong == 0 means every reference into it
// was internal to the traced subgraph, so it is White (garbage) pending
// rescue by a Black ancestor; strong > 0 means something outside the
// subgraph still points to it, so scan_black rescues it and its subtree.
func scan(cb *controlBlock) {
	if cb.strong == 0 {
		cb.color = White
		cb.trace(visitorFor(func(child *controlBlock) {
			if child.color == Gray {
				scan(child)
			}
			child.weak--
			child.strong++
		}))
		return
	}
	scanBlack(cb)
}

// scanBlack reverses Mark's bookkeeping for a rescued block and everything
// strongly reachable from it, restoring invariant 1 for the whole rescued
// subtree.
func scanBlack(cb *controlBlock) {
	cb.color = Black
	cb.trace(visitorFor(func(child *controlBlock) {
		if child.color != Black {
			scanBlack(child)
		}
		child.weak--
		child.strong++
	}))
}

// collectWhite destroys a White block's payload and recurses into its
// still-White strong children. It saves the payload before tracing so a
// child's tracer can still observe its own (not-yet-freed) payload, and
// frees only after every descendant has been visited — see spec §4.7. It
// returns the number of White blocks it collected, cb included.
func collectWhite(cb *controlBlock) int {
	cb.color = Black
	payload := cb.payload
	cb.payload = nil
	n := 1
	if payload != nil && cb.traceFn != nil {
		cb.traceFn(payload, visitorFor(func(child *controlBlock) {
			if child.color == White {
				n += collectWhite(child)
			}
		}))
	}
	if payload != nil && cb.deleteFn != nil {
		cb.deleteFn(payload)
	}
	return n
}

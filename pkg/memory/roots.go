package memory

// Root buffer - process-wide registry of possible cycle roots
//
// Adapted from the teacher's region.go: a RegionContext keeps a
// map[RegionID]*Region so nested regions can be looked up and closed by
// identity; rootBuffer keeps a map[*controlBlock]struct{} for exactly the
// same reason — dedup by identity, stable iteration within one pass — but
// with the region hierarchy dropped, since a possible cycle root has no
// parent/child relationship to its neighbors in the buffer.
//
// Every block is colored Purple when it is registered here (invariant 5);
// a later incrementStrong or release recolors it Black without removing it,
// so a buffered block may be Black until the next collection drains it. Its
// presence contributes one to that block's weak count (see insert/remove)
// so the block cannot be destroyed out from under a pending collection.

// rootBuffer is the single-threaded, process-wide set of possible cycle
// roots. Like the C++ original's "roots" singleton, there is exactly one:
// collect_cycles() is a free function, not a method, because the spec
// models this as shared mutable state with a single-thread precondition
// rather than as an injectable dependency.
type rootBuffer struct {
	blocks map[*controlBlock]struct{}
}

var globalRoots = &rootBuffer{blocks: make(map[*controlBlock]struct{})}

// insert is a no-op if cb is already registered; otherwise it adds an
// entry and bumps cb's weak count to keep it alive while buffered.
func (b *rootBuffer) insert(cb *controlBlock) {
	if cb.inRoots {
		return
	}
	cb.inRoots = true
	b.blocks[cb] = struct{}{}
	cb.incrementWeak()
}

// remove drops cb from the buffer, if present, releasing the weak
// reference insert took out. It does not touch cb's color.
func (b *rootBuffer) remove(cb *controlBlock) {
	if !cb.inRoots {
		return
	}
	delete(b.blocks, cb)
	cb.inRoots = false
	cb.decrementWeak()
}

// snapshot returns the buffer's current members in map iteration order.
// That order is unspecified by Go and by the spec alike, but it is stable
// for the duration of a single collection pass because nothing mutates
// the buffer concurrently (single-threaded precondition, spec §5).
func (b *rootBuffer) snapshot() []*controlBlock {
	out := make([]*controlBlock, 0, len(b.blocks))
	for cb := range b.blocks {
		out = append(out, cb)
	}
	return out
}

func (b *rootBuffer) len() int {
	return len(b.blocks)
}

// Stats summarizes the current state of the global root buffer: how many
// blocks are buffered, and of those, how many wear each color. It is the
// introspection surface SPEC_FULL.md adds for [ROOTS], mirroring the
// GetObjectCount/IsClosed-style accessors the teacher's RegionContext and
// ConstraintContext both expose.
type Stats struct {
	Buffered int
	Purple   int
	Gray     int
	White    int
	Black    int
}

// RootBufferStats reports the current size and color distribution of the
// global root buffer. It is safe to call at any time; between calls to
// CollectCycles a buffered block is Purple, or Black if it was cloned or
// released after being filed.
func RootBufferStats() Stats {
	var s Stats
	for cb := range globalRoots.blocks {
		s.Buffered++
		switch cb.color {
		case Purple:
			s.Purple++
		case Gray:
			s.Gray++
		case White:
			s.White++
		case Black:
			s.Black++
		}
	}
	return s
}

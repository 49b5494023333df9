package memory

import "github.com/google/uuid"

// Control blocks - the bookkeeping record behind every Strong/Weak handle
//
// Each managed payload gets exactly one control block, allocated when the
// first Strong handle is built from a raw payload. The block never inspects
// the payload's type directly; it holds a type-erased trace/delete pair
// bound once at construction (see tracer.go) and otherwise only manipulates
// its own strong/weak counters and color.
//
// The four elementary transitions below (incrementStrong, decrementStrong,
// incrementWeak, decrementWeak) are the only places strong/weak counts
// change outside of collect_cycles; everything in strong.go, weak.go and
// collector.go is built out of them.

// controlBlock is unexported and untyped: Strong[T]/Weak[T] are the typed
// facades clients see, and the root buffer and collector operate on
// controlBlock directly, exactly as the spec's "untyped_state" does.
type controlBlock struct {
	id uuid.UUID

	// payload is the type-erased live payload, or nil once released.
	payload any
	traceFn func(payload any, visit Visitor)
	deleteFn func(payload any)

	strong int
	weak   int
	color  Color

	// inRoots is true while this block has a live entry in the global root
	// buffer; it lets registerPossibleRoot stay idempotent without a buffer
	// lookup on every decrement.
	inRoots bool

	// destroyed is true once strong and weak have both reached zero. Go has
	// no destructor to hook, so this is the only observable record that
	// invariant 4 (destroy iff strong==0 && weak==0) actually fired.
	destroyed bool
}

func newControlBlock(payload any, traceFn func(any, Visitor), deleteFn func(any)) *controlBlock {
	collectorMetrics.observeAlloc()
	return &controlBlock{
		id:       uuid.New(),
		payload:  payload,
		traceFn:  traceFn,
		deleteFn: deleteFn,
		strong:   1,
		color:    Black,
	}
}

// live reports whether the payload has not yet been released.
func (cb *controlBlock) live() bool {
	return cb.payload != nil
}

// incrementStrong: any fresh strong reference proves reachability, so any
// pending Purple mark is cleared — the block is known live again and has no
// business in the root buffer's next pass.
func (cb *controlBlock) incrementStrong() {
	cb.strong++
	cb.color = Black
}

// decrementStrong drops the strong count. Reaching zero triggers release of
// the payload; otherwise, unless the block is already Purple, it is filed
// as a possible cycle root — it might be the last strong reference closing
// a cycle, and only the collector can tell.
func (cb *controlBlock) decrementStrong() {
	cb.strong--
	if cb.strong == 0 {
		cb.release()
	} else if cb.color != Purple {
		cb.registerPossibleRoot()
	}
}

func (cb *controlBlock) incrementWeak() {
	cb.weak++
}

// decrementWeak drops the weak count. A control block is destroyed exactly
// when both counts reach zero; since Go does not free this struct for us,
// destruction here only means clearing it for the garbage collector to
// reclaim the memory.
func (cb *controlBlock) decrementWeak() {
	cb.weak--
	if cb.weak == 0 && cb.strong == 0 {
		cb.destroy()
	}
}

// release runs when the strong count hits zero outside of collection: the
// payload is freed unconditionally (no tracing, no trial deletion — a
// strong count of zero by construction means no strong handle anywhere can
// still reach it through this block).
func (cb *controlBlock) release() {
	cb.color = Black
	payload := cb.payload
	cb.payload = nil
	if payload != nil && cb.deleteFn != nil {
		cb.deleteFn(payload)
	}
	if cb.weak == 0 {
		cb.destroy()
	}
}

// registerPossibleRoot marks the block Purple and files it in the global
// root buffer. Re-entry while already Purple is redundant, not unsafe; the
// inRoots guard just avoids a needless map probe.
func (cb *controlBlock) registerPossibleRoot() {
	cb.color = Purple
	if !cb.inRoots {
		globalRoots.insert(cb)
	}
}

// destroy is the terminal state: nothing references this block anymore,
// strongly or weakly. There is nothing left to do beyond letting it go; Go
// has no user-visible destructor, so this exists chiefly as a named place
// for that invariant to live and for tests to assert against.
func (cb *controlBlock) destroy() {
	cb.traceFn = nil
	cb.deleteFn = nil
	cb.destroyed = true
	collectorMetrics.observeDestroy()
}

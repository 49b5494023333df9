package memory

// Weak[T] is a non-owning handle: a live Weak[T] contributes exactly one to
// its control block's weak count and never to strong. Weak handles keep a
// control block alive past payload destruction (so the block itself can
// still be used to test liveness) but never the payload itself, and they
// are invisible to the cycle collector's tracing — holding one never keeps
// a cycle from being collected.
type Weak[T any] struct {
	ptr   *T
	block *controlBlock
}

// NewWeak captures a Strong[T]'s control block without taking ownership.
// A null Strong[T] yields a null Weak[T].
func NewWeak[T any](s Strong[T]) Weak[T] {
	if s.block == nil {
		return Weak[T]{}
	}
	s.block.incrementWeak()
	return Weak[T]{ptr: s.ptr, block: s.block}
}

// Clone increments weak and returns a second handle over the same block.
func (w Weak[T]) Clone() Weak[T] {
	if w.block == nil {
		return Weak[T]{}
	}
	w.block.incrementWeak()
	return Weak[T]{ptr: w.ptr, block: w.block}
}

// Move transfers the weak reference out of w, leaving w null.
func (w *Weak[T]) Move() Weak[T] {
	out := Weak[T]{ptr: w.ptr, block: w.block}
	w.ptr, w.block = nil, nil
	return out
}

// Assign is copy-and-swap assignment, symmetric with Strong.Assign.
func (w *Weak[T]) Assign(other Weak[T]) {
	cloned := other.Clone()
	w.Close()
	*w = cloned
}

// AssignMove swaps w's block with other's; the caller must close other
// afterward to actually release what w held before the call.
func (w *Weak[T]) AssignMove(other *Weak[T]) {
	w.ptr, other.ptr = other.ptr, w.ptr
	w.block, other.block = other.block, w.block
}

// Close releases w's weak reference, if any.
func (w *Weak[T]) Close() {
	if w.block != nil {
		w.block.decrementWeak()
	}
	w.ptr, w.block = nil, nil
}

// Upgrade attempts to obtain a Strong[T] over the same payload. It succeeds
// — returning a handle with StrongCount incremented — iff the block is
// non-null and its payload has not already been released; otherwise it
// returns a null Strong[T]. This is a normal control-flow outcome, not an
// error: spec §7 classifies upgrade failure as "a normal control-flow
// outcome, not an exception."
func (w Weak[T]) Upgrade() Strong[T] {
	if w.block == nil || !w.block.live() {
		return Strong[T]{}
	}
	w.block.incrementStrong()
	return Strong[T]{ptr: w.ptr, block: w.block}
}

// IsNull reports whether the handle holds no control block at all.
func (w Weak[T]) IsNull() bool {
	return w.block == nil
}

// WeakCount returns the current weak count, or 0 for a null handle.
func (w Weak[T]) WeakCount() int {
	if w.block == nil {
		return 0
	}
	return w.block.weak
}

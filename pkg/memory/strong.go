package memory

// Strong[T] is an owning handle: a live Strong[T] contributes exactly one
// to its control block's strong count, and dropping the last one either
// frees the payload immediately (the acyclic common case) or files the
// block as a possible cycle root for the next CollectCycles call.
//
// Go has no destructors, so "dropping" a handle is not implicit the way it
// is in the C++ this spec was distilled from: callers call Close explicitly,
// the same way they would release a mutex or an *os.File. Move, the
// companion of Close, transfers ownership by explicitly nulling the source
// handle rather than relying on rvalue semantics the language doesn't have.
type Strong[T any] struct {
	ptr   *T
	block *controlBlock
}

// strongOptions collects the functional options passed to NewStrong.
type strongOptions[T any] struct {
	tracer  Tracer[T]
	deleter Deleter[T]
}

// StrongOption customizes a single NewStrong call.
type StrongOption[T any] func(*strongOptions[T])

// WithTracer overrides the default "no outgoing edges" tracer for a type
// that can participate in cycles.
func WithTracer[T any](t Tracer[T]) StrongOption[T] {
	return func(o *strongOptions[T]) { o.tracer = t }
}

// WithDeleter overrides the default no-op deleter, e.g. to release
// resources a payload holds beyond its own memory.
func WithDeleter[T any](d Deleter[T]) StrongOption[T] {
	return func(o *strongOptions[T]) { o.deleter = d }
}

// NewStrong allocates a fresh control block for payload and returns a
// Strong[T] owning it: strong becomes 1, color Black. A nil payload yields
// a null handle with no control block, matching the spec's "default / null
// construction".
func NewStrong[T any](payload *T, opts ...StrongOption[T]) Strong[T] {
	if payload == nil {
		return Strong[T]{}
	}
	o := strongOptions[T]{
		tracer:  NoTrace[T](),
		deleter: DefaultDelete[T](),
	}
	for _, opt := range opts {
		opt(&o)
	}
	tracer, deleter := o.tracer, o.deleter
	cb := newControlBlock(
		payload,
		func(p any, v Visitor) { tracer(p.(*T), v) },
		func(p any) { deleter(p.(*T)) },
	)
	return Strong[T]{ptr: payload, block: cb}
}

// controlBlock implements anyStrong so the collector and tracers can reach
// this handle's control block without knowing T.
func (s Strong[T]) controlBlock() *controlBlock {
	return s.block
}

// Clone is the owning-handle "copy constructor": it increments strong and
// returns a second handle over the same control block.
func (s Strong[T]) Clone() Strong[T] {
	if s.block == nil {
		return Strong[T]{}
	}
	s.block.incrementStrong()
	return Strong[T]{ptr: s.ptr, block: s.block}
}

// Move transfers ownership out of s: the returned handle owns what s used
// to own, and s becomes null. Strong and weak counts are unchanged — this
// is a pointer swap, not a count mutation.
func (s *Strong[T]) Move() Strong[T] {
	out := Strong[T]{ptr: s.ptr, block: s.block}
	s.ptr, s.block = nil, nil
	return out
}

// Assign is copy-and-swap assignment: it clones other before releasing s's
// current block, so the combined strong count never transiently drops
// below what's correct for either operand.
func (s *Strong[T]) Assign(other Strong[T]) {
	cloned := other.Clone()
	s.Close()
	*s = cloned
}

// AssignMove swaps s's block with other's. Whatever s held before the call
// ends up owned by other; the caller is responsible for closing other
// afterward if that ownership should end there, exactly as a moved-from
// argument would be destroyed at the end of a C++ statement.
func (s *Strong[T]) AssignMove(other *Strong[T]) {
	s.ptr, other.ptr = other.ptr, s.ptr
	s.block, other.block = other.block, s.block
}

// Close releases s's ownership, if any. It is the explicit stand-in for the
// destructor the original smart pointer would run automatically.
func (s *Strong[T]) Close() {
	if s.block != nil {
		s.block.decrementStrong()
	}
	s.ptr, s.block = nil, nil
}

// Get returns the raw payload pointer, or nil for a null handle or one
// whose payload has already been released.
func (s Strong[T]) Get() *T {
	if s.block == nil || !s.block.live() {
		return nil
	}
	return s.ptr
}

// StrongCount returns the current strong count, or 0 for a null handle.
func (s Strong[T]) StrongCount() int {
	if s.block == nil {
		return 0
	}
	return s.block.strong
}

// Live reports whether this handle currently observes a non-null payload.
func (s Strong[T]) Live() bool {
	return s.Get() != nil
}

// IsNull reports whether the handle holds no control block at all.
func (s Strong[T]) IsNull() bool {
	return s.block == nil
}

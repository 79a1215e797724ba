package permrope

// Builder incrementally stages values and finalizes them into a Rope.
//
// Builder collects values and materializes the rope only when Rope() is
// called. The tree is built bottom-up in linear time instead of by repeated
// insertion.
//
// The empty instance is a valid builder (seeded with 0), but clients may use
// NewBuilder.
type Builder struct {
	seed uint64
	// front keeps prepended values in reverse logical order.
	front []int64
	// back keeps appended values in logical order.
	back []int64

	done  bool
	dirty bool
	rope  *Rope
}

// NewBuilder creates a new and empty rope builder. seed is handed to the
// rope's random source.
func NewBuilder(seed uint64) *Builder {
	return &Builder{seed: seed}
}

// FromValues creates a rope holding values, in order.
func FromValues(seed uint64, values ...int64) *Rope {
	b := NewBuilder(seed)
	_ = b.Append(values...)
	return b.Rope()
}

// Rope returns the rope built from all staged values.
//
// It is illegal to continue adding values after Rope has been called, but
// Rope may be called multiple times. Every call returns the same rope.
func (b *Builder) Rope() *Rope {
	if b == nil {
		return New(0)
	}
	if b.dirty || b.rope == nil {
		b.rope = b.build()
		b.dirty = false
	}
	b.done = true
	if b.rope.IsEmpty() {
		tracer().Debugf("rope builder: rope is empty")
	}
	return b.rope
}

// Reset drops the staged build and prepares the builder for a fresh build.
func (b *Builder) Reset() {
	b.front = nil
	b.back = nil
	b.done = false
	b.dirty = false
	b.rope = nil
}

// Append appends values to the staged build.
func (b *Builder) Append(values ...int64) error {
	if b == nil {
		return ErrIllegalArguments
	}
	if b.done {
		return ErrBuilderCompleted
	}
	b.back = append(b.back, values...)
	if len(values) > 0 {
		b.dirty = true
	}
	return nil
}

// Prepend prepends values to the staged build. Values keep their order, i.e.
// Prepend(1, 2) followed by Prepend(0) stages 0 1 2.
func (b *Builder) Prepend(values ...int64) error {
	if b == nil {
		return ErrIllegalArguments
	}
	if b.done {
		return ErrBuilderCompleted
	}
	// front is stored in reverse logical order.
	for i := len(values) - 1; i >= 0; i-- {
		b.front = append(b.front, values[i])
	}
	if len(values) > 0 {
		b.dirty = true
	}
	return nil
}

func (b *Builder) build() *Rope {
	rope := New(b.seed)
	// right spine of the tree built so far, root first
	var spine []*node
	add := func(v int64) {
		n := newNode(v, rope.priority())
		var last *node
		for len(spine) > 0 && spine[len(spine)-1].priority < n.priority {
			last = spine[len(spine)-1]
			spine = spine[:len(spine)-1]
		}
		n.left = last
		if len(spine) > 0 {
			spine[len(spine)-1].right = n
		}
		spine = append(spine, n)
	}
	for i := len(b.front) - 1; i >= 0; i-- {
		add(b.front[i])
	}
	for _, v := range b.back {
		add(v)
	}
	if len(spine) > 0 {
		rope.root = spine[0]
		refreshAll(rope.root)
	}
	tracer().Debugf("rope builder: built rope of length %d", rope.Len())
	return rope
}

// refreshAll recomputes summaries bottom-up for a freshly linked tree.
func refreshAll(n *node) {
	if n == nil {
		return
	}
	refreshAll(n.left)
	refreshAll(n.right)
	refresh(n)
}

package permrope

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"iter"
	"math/rand/v2"
)

// Rope stores a sequence of integers in an implicit treap.
//
// A rope created by
//
//	Rope{}
//
// is a valid object and behaves like the empty sequence, drawing node
// priorities from a generator seeded with 0. Use New to choose the seed.
//
// Positions are 0-based; ranges are half-open, i.e. [left, right).
type Rope struct {
	root *node
	rng  *rand.Rand
}

// New creates an empty rope. seed initializes the random source for node
// priorities; ropes created with equal seeds and fed equal operations end up
// with identical tree shapes.
func New(seed uint64) *Rope {
	return &Rope{rng: newSource(seed)}
}

func newSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func (rope *Rope) priority() uint64 {
	if rope.rng == nil {
		rope.rng = newSource(0)
	}
	return rope.rng.Uint64()
}

// Len returns the number of elements in the rope.
func (rope *Rope) Len() uint64 {
	if rope == nil {
		return 0
	}
	return size(rope.root)
}

// IsEmpty reports whether the rope has no elements.
func (rope *Rope) IsEmpty() bool {
	return rope.Len() == 0
}

// Summary returns the aggregate metrics of the whole rope.
func (rope *Rope) Summary() Summary {
	if rope == nil {
		return Summary{}
	}
	return summaryOf(rope.root)
}

// Insert inserts value at position pos, shifting subsequent elements to the
// right. pos may equal Len(), which appends value.
func (rope *Rope) Insert(value int64, pos uint64) error {
	if rope == nil {
		return ErrIllegalArguments
	}
	if pos > rope.Len() {
		return fmt.Errorf("insert at %d into rope of length %d: %w", pos, rope.Len(), ErrIndexOutOfBounds)
	}
	left, right := splitAt(rope.root, pos)
	rope.root = join(left, newNode(value, rope.priority()), right)
	return nil
}

// Update replaces the element at position pos with value.
func (rope *Rope) Update(value int64, pos uint64) error {
	if err := rope.checkIndex(pos); err != nil {
		return fmt.Errorf("update: %w", err)
	}
	left, middle, right := cut(rope.root, pos, pos+1)
	assert(size(middle) == 1, "update: expected to cut out a single node")
	middle.value = value
	refresh(middle)
	rope.root = join(left, middle, right)
	return nil
}

// Delete removes the element at position pos.
func (rope *Rope) Delete(pos uint64) error {
	if err := rope.checkIndex(pos); err != nil {
		return fmt.Errorf("delete: %w", err)
	}
	left, _, right := cut(rope.root, pos, pos+1)
	rope.root = merge(left, right)
	return nil
}

// At returns the element at position pos.
func (rope *Rope) At(pos uint64) (int64, error) {
	if err := rope.checkIndex(pos); err != nil {
		return 0, err
	}
	n := rope.root
	for n != nil {
		push(n)
		l := size(n.left)
		switch {
		case pos < l:
			n = n.left
		case pos == l:
			return n.value, nil
		default:
			pos -= l + 1
			n = n.right
		}
	}
	panic("rope.At: position not found in tree")
}

// RangeSum returns the sum of the elements in [left, right).
// An empty range sums to 0.
func (rope *Rope) RangeSum(left, right uint64) (int64, error) {
	s, err := rope.RangeSummary(left, right)
	if err != nil {
		return 0, err
	}
	return s.Sum, nil
}

// RangeSummary returns the aggregate metrics of the elements in [left, right).
func (rope *Rope) RangeSummary(left, right uint64) (Summary, error) {
	if err := rope.checkRange(left, right); err != nil {
		return Summary{}, err
	}
	if left == right {
		return Summary{}, nil
	}
	l, m, r := cut(rope.root, left, right)
	s := summaryOf(m)
	rope.root = join(l, m, r)
	return s, nil
}

// Reverse reverses the order of the elements in [left, right).
// The reversal is recorded lazily and costs O(log n).
func (rope *Rope) Reverse(left, right uint64) error {
	if err := rope.checkRange(left, right); err != nil {
		return err
	}
	l, m, r := cut(rope.root, left, right)
	toggle(m)
	rope.root = join(l, m, r)
	return nil
}

// NextPermutation rearranges the elements in [left, right) into the
// lexicographically next greater permutation of their values.
//
// If no greater permutation exists, i.e. the range is non-increasing, the
// range is rearranged into ascending order and NextPermutation returns false.
// Ranges of length 0 or 1 never have a next permutation.
func (rope *Rope) NextPermutation(left, right uint64) (bool, error) {
	if err := rope.checkRange(left, right); err != nil {
		return false, err
	}
	l, m, r := cut(rope.root, left, right)
	m, advanced := nextPermutation(m)
	rope.root = join(l, m, r)
	tracer().Debugf("next permutation of [%d,%d) advanced=%v", left, right, advanced)
	return advanced, nil
}

// Values returns all elements of the rope in order.
func (rope *Rope) Values() []int64 {
	values := make([]int64, 0, rope.Len())
	for _, v := range rope.All() {
		values = append(values, v)
	}
	return values
}

// All returns an iterator over positions and elements in logical order.
//
// Iteration hands pending reversals down the tree, but never changes its
// structure. The rope must not be modified during iteration.
func (rope *Rope) All() iter.Seq2[uint64, int64] {
	return func(yield func(uint64, int64) bool) {
		if rope == nil {
			return
		}
		var pos uint64
		walk(rope.root, func(n *node) bool {
			ok := yield(pos, n.value)
			pos++
			return ok
		})
	}
}

func walk(n *node, fn func(*node) bool) bool {
	if n == nil {
		return true
	}
	push(n)
	if !walk(n.left, fn) {
		return false
	}
	if !fn(n) {
		return false
	}
	return walk(n.right, fn)
}

// String returns the elements of the rope in slice notation, e.g. "[3 8 5]".
func (rope *Rope) String() string {
	return fmt.Sprint(rope.Values())
}

// --- Helpers ---------------------------------------------------------------

func (rope *Rope) checkIndex(pos uint64) error {
	if rope == nil {
		return ErrIllegalArguments
	}
	if pos >= rope.Len() {
		return fmt.Errorf("position %d in rope of length %d: %w", pos, rope.Len(), ErrIndexOutOfBounds)
	}
	return nil
}

func (rope *Rope) checkRange(left, right uint64) error {
	if rope == nil {
		return ErrIllegalArguments
	}
	if left > right {
		return fmt.Errorf("range [%d,%d): %w", left, right, ErrIllegalArguments)
	}
	if right > rope.Len() {
		return fmt.Errorf("range [%d,%d) in rope of length %d: %w", left, right, rope.Len(), ErrIndexOutOfBounds)
	}
	return nil
}

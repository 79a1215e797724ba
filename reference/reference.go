/*
Package reference provides a plain slice-backed integer sequence.

Slice has the same observable contract as permrope.Rope for insertion,
update, range sums and next permutation, implemented in the most direct way
possible. It serves as the model that ropes are checked against.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package reference

import (
	"fmt"
	"slices"
)

// Error is an error type for reference sequences.
type Error string

func (e Error) Error() string {
	return string(e)
}

// ErrIndexOutOfBounds is flagged whenever a position is greater than the
// length of the sequence.
const ErrIndexOutOfBounds = Error("index out of bounds")

// ErrIllegalArguments is flagged for malformed ranges.
const ErrIllegalArguments = Error("illegal arguments")

// Slice is a sequence of integers stored in a Go slice.
// The zero value is an empty sequence.
type Slice struct {
	values []int64
}

// New creates a sequence holding a copy of values.
func New(values ...int64) *Slice {
	return &Slice{values: slices.Clone(values)}
}

// Len returns the number of elements.
func (s *Slice) Len() uint64 {
	return uint64(len(s.values))
}

// Values returns a copy of all elements.
func (s *Slice) Values() []int64 {
	return slices.Clone(s.values)
}

// Insert inserts value at position pos.
func (s *Slice) Insert(value int64, pos uint64) error {
	if pos > s.Len() {
		return fmt.Errorf("insert at %d: %w", pos, ErrIndexOutOfBounds)
	}
	s.values = slices.Insert(s.values, int(pos), value)
	return nil
}

// Update replaces the element at position pos.
func (s *Slice) Update(value int64, pos uint64) error {
	if pos >= s.Len() {
		return fmt.Errorf("update at %d: %w", pos, ErrIndexOutOfBounds)
	}
	s.values[pos] = value
	return nil
}

// Delete removes the element at position pos.
func (s *Slice) Delete(pos uint64) error {
	if pos >= s.Len() {
		return fmt.Errorf("delete at %d: %w", pos, ErrIndexOutOfBounds)
	}
	s.values = slices.Delete(s.values, int(pos), int(pos)+1)
	return nil
}

// RangeSum returns the sum of the elements in [left, right).
func (s *Slice) RangeSum(left, right uint64) (int64, error) {
	if err := s.checkRange(left, right); err != nil {
		return 0, err
	}
	var total int64
	for _, v := range s.values[left:right] {
		total += v
	}
	return total, nil
}

// Reverse reverses the elements in [left, right).
func (s *Slice) Reverse(left, right uint64) error {
	if err := s.checkRange(left, right); err != nil {
		return err
	}
	slices.Reverse(s.values[left:right])
	return nil
}

// NextPermutation rearranges [left, right) into the next lexicographic
// permutation. If there is none, the range is sorted ascending and false is
// returned.
func (s *Slice) NextPermutation(left, right uint64) (bool, error) {
	if err := s.checkRange(left, right); err != nil {
		return false, err
	}
	return NextPermutation(s.values[left:right]), nil
}

func (s *Slice) checkRange(left, right uint64) error {
	if left > right {
		return fmt.Errorf("range [%d,%d): %w", left, right, ErrIllegalArguments)
	}
	if right > s.Len() {
		return fmt.Errorf("range [%d,%d): %w", left, right, ErrIndexOutOfBounds)
	}
	return nil
}

// NextPermutation rearranges v in place into the lexicographically next
// greater permutation. If v is the greatest permutation, it is rearranged
// into the smallest one (ascending order) and false is returned.
func NextPermutation(v []int64) bool {
	i := len(v) - 1
	for i > 0 && v[i-1] >= v[i] {
		i--
	}
	if i <= 0 {
		slices.Reverse(v)
		return false
	}
	j := len(v) - 1
	for v[j] <= v[i-1] {
		j--
	}
	v[i-1], v[j] = v[j], v[i-1]
	slices.Reverse(v[i:])
	return true
}

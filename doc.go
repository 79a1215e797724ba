/*
Package permrope offers a mutable sequence of integers with positional editing,
range sums and in-place permutation of sub-ranges.

Ropes

A rope organizes the elements of a sequence in a tree-structure instead of a
contiguous array. Positional insertion, which costs O(n) for a slice, is done
by cutting the tree at the insertion point and gluing the pieces back
together. This package uses an implicit treap: a binary search tree keyed by
in-order position rather than by value, balanced in expectation by random
node priorities which follow heap order.

Every node carries a summary of its subtree: the number of elements, their
sum, the values at both ends and the length of the monotonic runs at both
ends. Summaries compose as a monoid, so every range query is answered by
cutting out the range and reading the summary of the detached piece.

	Operation        |   Rope          |  Slice
	-----------------+-----------------+--------
	At               |   O(log n)      |   O(1)
	Insert / Delete  |   O(log n)      |   O(n)
	Update           |   O(log n)      |   O(1)
	RangeSum         |   O(log n)      |   O(n)
	Reverse          |   O(log n)      |   O(n)
	NextPermutation  |   O(log n)      |   O(n)

Reversal of a sub-range is lazy: a flag at the root of the detached piece
records the pending reversal and is pushed down to the children when they are
next visited. NextPermutation builds on this: the trailing non-increasing run
of a range is found from the summaries, flipped into ascending order with a
single lazy reversal, and the exchange element is located by a split on value.

A Rope is not safe for concurrent use. Even read-only operations like
RangeSum perform tree surgery, so clients have to serialize all calls.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package permrope

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'permrope'
func tracer() tracing.Trace {
	return tracing.Select("permrope")
}

// RopeError is an error type for the permrope module
type RopeError string

func (e RopeError) Error() string {
	return string(e)
}

// ErrIndexOutOfBounds is flagged whenever a rope position is
// greater than the length of the rope.
const ErrIndexOutOfBounds = RopeError("index out of bounds")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = RopeError("illegal arguments")

// ErrBuilderCompleted signals that a builder has already produced its rope and
// it's illegal to further add values.
const ErrBuilderCompleted = RopeError("forbidden to add values; rope has been built")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}

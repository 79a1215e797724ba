/*
Package scriptfile loads and saves workloads as plain text scripts.

A script holds one command per line. Blank lines and lines starting with '#'
are ignored; trailing comments are allowed as well:

	# the classic example
	insert 5 0
	insert 3 0
	insert 8 1    # sequence is 3 8 5 now
	sum 0 2
	permute 0 3
	update 1 0

Insert and update take a value followed by a position, sum and permute take
the bounds of a half-open range.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package scriptfile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'permrope'
func tracer() tracing.Trace {
	return tracing.Select("permrope")
}

/*
Package workload drives integer sequences with streams of commands and
compares their observable results.

A workload is a list of commands, each one of insert, update, range-sum and
next-permutation. Commands are either generated from a seeded random source
or loaded from a script (see package scriptfile). Running a workload against
a sequence yields a Result: every returned sum, every returned permutation
flag, and the final contents of the sequence, recovered by querying the sum
of every single-element range. Two sequences agree on a workload if their
results are identical.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package workload

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'permrope'
func tracer() tracing.Trace {
	return tracing.Select("permrope")
}

/*
Package report presents the outcome of differential checks.

Console output colors passing and failing rounds and wraps sequence listings
to the width of the terminal; HTML output renders the same information as a
standalone document.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package report

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'permrope'
func tracer() tracing.Trace {
	return tracing.Select("permrope")
}

// Round is the outcome of one differential check round.
type Round struct {
	Seed     uint64 // seed of the workload generator and the rope
	Commands int    // number of commands replayed
	Length   int    // final length of the sequence
	Err      error  // nil if the round passed
}

// Passed reports whether the round found no difference.
func (r Round) Passed() bool {
	return r.Err == nil
}

// Failures counts the failed rounds.
func Failures(rounds []Round) int {
	n := 0
	for _, r := range rounds {
		if !r.Passed() {
			n++
		}
	}
	return n
}

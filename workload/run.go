package workload

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/guiguan/caster"
)

// Result collects the observable outcome of running a workload.
type Result struct {
	Sums         []int64 // results of sum commands, in order
	Permutations []bool  // results of permute commands, in order
	Final        []int64 // final contents of the sequence
}

// runner applies commands to one sequence and tracks its length.
type runner struct {
	seq    Sequence
	length uint64
	result Result
	index  int
}

func (r *runner) apply(cmd Command) error {
	var err error
	switch cmd.Kind {
	case Insert:
		if err = r.seq.Insert(cmd.Value, cmd.Left); err == nil {
			r.length++
		}
	case Update:
		err = r.seq.Update(cmd.Value, cmd.Left)
	case Sum:
		var s int64
		if s, err = r.seq.RangeSum(cmd.Left, cmd.Right); err == nil {
			r.result.Sums = append(r.result.Sums, s)
		}
	case Permute:
		var ok bool
		if ok, err = r.seq.NextPermutation(cmd.Left, cmd.Right); err == nil {
			r.result.Permutations = append(r.result.Permutations, ok)
		}
	default:
		err = fmt.Errorf("unknown command kind %v", cmd.Kind)
	}
	if err != nil {
		err = fmt.Errorf("command #%d (%s): %w", r.index, cmd, err)
	}
	r.index++
	return err
}

// finish reads back the final sequence, one element at a time.
func (r *runner) finish() (Result, error) {
	r.result.Final = make([]int64, 0, r.length)
	for i := range r.length {
		v, err := r.seq.RangeSum(i, i+1)
		if err != nil {
			return r.result, fmt.Errorf("reading element %d: %w", i, err)
		}
		r.result.Final = append(r.result.Final, v)
	}
	return r.result, nil
}

// Run applies cmds to seq, which has to be empty initially, and returns the
// observable result. Run stops at the first rejected command.
func Run(seq Sequence, cmds []Command) (Result, error) {
	r := &runner{seq: seq}
	for _, cmd := range cmds {
		if err := r.apply(cmd); err != nil {
			return r.result, err
		}
	}
	return r.finish()
}

// endOfStream terminates a broadcast workload.
type endOfStream struct{}

// Replay runs cmds against all seqs concurrently and returns their results in
// the order of seqs. Commands are broadcast to one goroutine per sequence;
// every sequence is touched by its own goroutine only.
func Replay(ctx context.Context, cmds []Command, seqs ...Sequence) ([]Result, error) {
	if len(seqs) == 0 {
		return nil, nil
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	cast := caster.New(ctx)
	defer cast.Close()
	results := make([]Result, len(seqs))
	errs := make([]error, len(seqs))
	var wg sync.WaitGroup
	for i, seq := range seqs {
		sub, ok := cast.Sub(ctx, 64)
		if !ok {
			return nil, errors.New("cannot subscribe to command stream")
		}
		wg.Add(1)
		go func(i int, seq Sequence, sub <-chan interface{}) {
			defer wg.Done()
			results[i], errs[i] = consume(ctx, seq, sub)
		}(i, seq, sub)
	}
	published := true
	for _, cmd := range cmds {
		if !cast.Pub(cmd) {
			published = false
			break
		}
	}
	if published {
		published = cast.Pub(endOfStream{})
	}
	if !published {
		cancel()
	}
	wg.Wait()
	if err := errors.Join(errs...); err != nil {
		return results, err
	}
	if !published {
		return results, fmt.Errorf("replay interrupted: %w", ctx.Err())
	}
	tracer().Debugf("replayed %d commands on %d sequences", len(cmds), len(seqs))
	return results, nil
}

// consume applies broadcast commands to seq until the end of the stream.
// After a command has been rejected or ctx has been canceled, remaining
// commands are drained but not applied, so the broadcast never blocks on this
// subscriber. The caster closes sub once it notices the cancellation.
func consume(ctx context.Context, seq Sequence, sub <-chan interface{}) (Result, error) {
	r := &runner{seq: seq}
	var err error
	done := ctx.Done()
	for {
		select {
		case <-done:
			done = nil // keep draining until sub is closed
			if err == nil {
				err = ctx.Err()
			}
		case msg, ok := <-sub:
			if !ok {
				if err == nil {
					err = ctx.Err()
				}
				if err == nil {
					err = errors.New("command stream closed prematurely")
				}
				return r.result, err
			}
			switch m := msg.(type) {
			case endOfStream:
				if err == nil {
					err = ctx.Err()
				}
				if err != nil {
					return r.result, err
				}
				return r.finish()
			case Command:
				if err == nil {
					err = r.apply(m)
				}
			}
		}
	}
}

// Mismatch describes the first observable difference between two results.
type Mismatch struct {
	Section string // "sums", "permutations" or "final"
	Index   int    // index within the section
	Want    string
	Got     string
}

func (m *Mismatch) Error() string {
	return fmt.Sprintf("mismatch in %s at #%d: want %s, got %s", m.Section, m.Index, m.Want, m.Got)
}

// Diff compares two results and returns a *Mismatch for the first
// difference, or nil if they are identical.
func Diff(want, got Result) error {
	if err := diffSection("sums", want.Sums, got.Sums); err != nil {
		return err
	}
	if err := diffSection("permutations", want.Permutations, got.Permutations); err != nil {
		return err
	}
	return diffSection("final", want.Final, got.Final)
}

func diffSection[T comparable](section string, want, got []T) error {
	if slices.Equal(want, got) {
		return nil
	}
	for i := range min(len(want), len(got)) {
		if want[i] != got[i] {
			return &Mismatch{Section: section, Index: i,
				Want: fmt.Sprint(want[i]), Got: fmt.Sprint(got[i])}
		}
	}
	return &Mismatch{Section: section, Index: min(len(want), len(got)),
		Want: fmt.Sprintf("%d entries", len(want)), Got: fmt.Sprintf("%d entries", len(got))}
}

// Verify replays cmds on a reference and a candidate sequence and reports
// the first difference between their results.
func Verify(ctx context.Context, cmds []Command, reference, candidate Sequence) error {
	results, err := Replay(ctx, cmds, reference, candidate)
	if err != nil {
		return err
	}
	return Diff(results[0], results[1])
}

package workload

import (
	"context"
	"errors"
	"math"
	"slices"
	"testing"
	"time"

	"github.com/npillmayer/permrope"
	"github.com/npillmayer/permrope/reference"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestKindNames(t *testing.T) {
	for k := Insert; k <= Permute; k++ {
		parsed, err := ParseKind(k.String())
		if err != nil || parsed != k {
			t.Errorf("ParseKind(%q) = %v, %v", k.String(), parsed, err)
		}
	}
	if _, err := ParseKind("delete"); err == nil {
		t.Errorf("expected error for unknown kind")
	}
	if got := InsertCmd(5, 0).String(); got != "insert 5 0" {
		t.Errorf("InsertCmd(5,0).String() = %q", got)
	}
	if got := PermuteCmd(1, 3).String(); got != "permute 1 3" {
		t.Errorf("PermuteCmd(1,3).String() = %q", got)
	}
}

func TestRunScenario(t *testing.T) {
	cmds := []Command{
		InsertCmd(5, 0), InsertCmd(3, 0), InsertCmd(8, 1),
		SumCmd(0, 2),
		PermuteCmd(0, 3), PermuteCmd(0, 3),
		UpdateCmd(1, 0),
		SumCmd(0, 3),
	}
	res, err := Run(reference.New(), cmds)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(res.Sums, []int64{11, 12}) {
		t.Errorf("sums = %v, want [11 12]", res.Sums)
	}
	if !slices.Equal(res.Permutations, []bool{true, true}) {
		t.Errorf("permutations = %v", res.Permutations)
	}
	if !slices.Equal(res.Final, []int64{1, 8, 3}) {
		t.Errorf("final = %v, want [1 8 3]", res.Final)
	}
}

func TestGenerate(t *testing.T) {
	cfg := Config{Commands: 500, MaxValue: 9, MaxElements: 40, Kinds: []Kind{Insert, Update, Sum, Permute}}
	a, err := Generate(cfg, 42)
	if err != nil {
		t.Fatal(err)
	}
	b, _ := Generate(cfg, 42)
	if !slices.Equal(a, b) {
		t.Errorf("equal seeds should generate equal workloads")
	}
	if len(a) != 500 || a[0].Kind != Insert {
		t.Fatalf("unexpected workload shape: %d commands, first %v", len(a), a[0])
	}
	res, err := Run(reference.New(), a)
	if err != nil {
		t.Fatalf("generated workload is not valid: %v", err)
	}
	if len(res.Final) > 40 {
		t.Errorf("sequence grew to %d elements, cap is 40", len(res.Final))
	}
	for _, cmd := range a {
		if cmd.Value > 9 || cmd.Value < 0 {
			t.Fatalf("value out of range in %v", cmd)
		}
	}
}

func TestConfigValidate(t *testing.T) {
	bad := []Config{
		{Commands: -1, Kinds: []Kind{Insert}},
		{Commands: 1, MaxValue: -1, Kinds: []Kind{Insert}},
		{Commands: 1},
		{Commands: 1, Kinds: []Kind{Kind(9)}},
		{Commands: 1, MaxElements: 3, Kinds: []Kind{Insert}},
		{Commands: 1, MaxValue: math.MaxInt64, Kinds: []Kind{Insert}},
	}
	for _, cfg := range bad {
		if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("Validate(%+v) = %v, want ErrInvalidConfig", cfg, err)
		}
	}
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestReplayAgrees(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "permrope")
	defer teardown()
	//
	for seed := range uint64(10) {
		cfg := DefaultConfig()
		cfg.Kinds = []Kind{Insert, Update, Sum, Permute}
		cmds, err := Generate(cfg, seed)
		if err != nil {
			t.Fatal(err)
		}
		if err := Verify(context.Background(), cmds, reference.New(), permrope.New(seed)); err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
	}
}

// offByOne corrupts sums over ranges longer than one element.
type offByOne struct {
	*reference.Slice
}

func (o offByOne) RangeSum(left, right uint64) (int64, error) {
	s, err := o.Slice.RangeSum(left, right)
	if right-left > 1 {
		s++
	}
	return s, err
}

func TestVerifyReportsMismatch(t *testing.T) {
	cmds := []Command{InsertCmd(1, 0), InsertCmd(2, 1), SumCmd(0, 1), SumCmd(0, 2)}
	err := Verify(context.Background(), cmds, reference.New(), offByOne{reference.New()})
	var m *Mismatch
	if !errors.As(err, &m) {
		t.Fatalf("expected a *Mismatch, got %v", err)
	}
	if m.Section != "sums" || m.Index != 1 || m.Want != "3" || m.Got != "4" {
		t.Errorf("unexpected mismatch %+v", m)
	}
}

func TestReplayReportsRejectedCommand(t *testing.T) {
	cmds := []Command{InsertCmd(1, 0), UpdateCmd(7, 3), SumCmd(0, 1)}
	_, err := Replay(context.Background(), cmds, reference.New(), permrope.New(1))
	if !errors.Is(err, permrope.ErrIndexOutOfBounds) {
		t.Errorf("expected rope to reject update, got %v", err)
	}
	if !errors.Is(err, reference.ErrIndexOutOfBounds) {
		t.Errorf("expected reference to reject update, got %v", err)
	}
}

func TestReplayCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	cmds, _ := Generate(DefaultConfig(), 3)
	if _, err := Replay(ctx, cmds, reference.New()); err == nil {
		t.Errorf("expected replay on canceled context to fail")
	}
}

// sluggish delays every permutation, keeping a replay busy long enough to be
// canceled while commands are still in flight.
type sluggish struct {
	Sequence
}

func (s sluggish) NextPermutation(left, right uint64) (bool, error) {
	time.Sleep(time.Millisecond)
	return s.Sequence.NextPermutation(left, right)
}

func TestReplayCanceledMidStream(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "permrope")
	defer teardown()
	//
	cmds, err := Generate(DefaultConfig(), 3)
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	time.AfterFunc(20*time.Millisecond, cancel)
	errc := make(chan error, 1)
	go func() {
		_, err := Replay(ctx, cmds, sluggish{reference.New()}, reference.New())
		errc <- err
	}()
	select {
	case err := <-errc:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected replay to report cancellation, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("replay did not return after its context has been canceled")
	}
}

package permrope

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestBuilderAppendPrepend(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "permrope")
	defer teardown()
	//
	b := NewBuilder(7)
	if err := b.Append(3, 4); err != nil {
		t.Fatal(err)
	}
	if err := b.Prepend(1, 2); err != nil {
		t.Fatal(err)
	}
	if err := b.Prepend(0); err != nil {
		t.Fatal(err)
	}
	if err := b.Append(5); err != nil {
		t.Fatal(err)
	}
	rope := b.Rope()
	assertValues(t, rope, 0, 1, 2, 3, 4, 5)
	if b.Rope() != rope {
		t.Errorf("expected repeated calls to Rope() to return the same rope")
	}
	if err := b.Append(6); !errors.Is(err, ErrBuilderCompleted) {
		t.Errorf("expected ErrBuilderCompleted, got %v", err)
	}
	b.Reset()
	if err := b.Append(6); err != nil {
		t.Fatalf("append after reset failed: %v", err)
	}
	assertValues(t, b.Rope(), 6)
}

func TestBuilderLarge(t *testing.T) {
	values := make([]int64, 10000)
	for i := range values {
		values[i] = int64(i % 97)
	}
	rope := FromValues(23, values...)
	if err := rope.Check(); err != nil {
		t.Fatal(err)
	}
	if rope.Len() != 10000 {
		t.Fatalf("Len = %d, want 10000", rope.Len())
	}
	sum, _ := rope.RangeSum(0, rope.Len())
	var want int64
	for _, v := range values {
		want += v
	}
	if sum != want {
		t.Errorf("sum = %d, want %d", sum, want)
	}
	if err := rope.Insert(-1, 5000); err != nil {
		t.Fatal(err)
	}
	if v, _ := rope.At(5000); v != -1 {
		t.Errorf("At(5000) = %d after insert, want -1", v)
	}
}

func TestEmptyBuilder(t *testing.T) {
	var b Builder
	rope := b.Rope()
	if rope == nil || !rope.IsEmpty() {
		t.Fatalf("expected empty rope from empty builder")
	}
}

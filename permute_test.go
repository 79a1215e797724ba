package permrope

import (
	"fmt"
	"slices"
	"testing"

	"github.com/npillmayer/permrope/reference"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func rangeValues(t *testing.T, rope *Rope, left, right uint64) []int64 {
	t.Helper()
	values := rope.Values()
	return values[left:right]
}

func TestNextPermutationCycle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "permrope")
	defer teardown()
	//
	rope := FromValues(5, 9, 1, 2, 2, 3, 0)
	seen := map[string]bool{}
	prev := rangeValues(t, rope, 1, 5)
	seen[fmt.Sprint(prev)] = true
	steps := 0
	for {
		ok, err := rope.NextPermutation(1, 5)
		if err != nil {
			t.Fatal(err)
		}
		if err := rope.Check(); err != nil {
			t.Fatal(err)
		}
		if !ok {
			break
		}
		steps++
		cur := rangeValues(t, rope, 1, 5)
		if slices.Compare(cur, prev) <= 0 {
			t.Fatalf("permutation %v does not follow %v", cur, prev)
		}
		if seen[fmt.Sprint(cur)] {
			t.Fatalf("permutation %v visited twice", cur)
		}
		seen[fmt.Sprint(cur)] = true
		prev = cur
	}
	if len(seen) != 12 || steps != 11 {
		t.Errorf("visited %d permutations in %d steps, want 12 in 11", len(seen), steps)
	}
	assertValues(t, rope, 9, 1, 2, 2, 3, 0)
}

func TestNextPermutationTerminal(t *testing.T) {
	rope := FromValues(3, 5, 4, 4, 1)
	ok, err := rope.NextPermutation(0, 4)
	if err != nil || ok {
		t.Fatalf("NextPermutation on maximal range = %v, %v; want false", ok, err)
	}
	assertValues(t, rope, 1, 4, 4, 5)
}

func TestNextPermutationShortRanges(t *testing.T) {
	rope := FromValues(3, 2, 1, 3)
	for i := uint64(0); i < rope.Len(); i++ {
		for _, right := range []uint64{i, i + 1} {
			ok, err := rope.NextPermutation(i, right)
			if err != nil || ok {
				t.Errorf("NextPermutation(%d,%d) = %v, %v; want false", i, right, ok, err)
			}
		}
	}
	assertValues(t, rope, 2, 1, 3)
}

func TestNextPermutationSubrange(t *testing.T) {
	rope := FromValues(8, 7, 3, 2, 4, 4, 1, 0)
	ok, err := rope.NextPermutation(1, 6)
	if err != nil || !ok {
		t.Fatalf("NextPermutation(1,6) = %v, %v; want true", ok, err)
	}
	assertValues(t, rope, 7, 3, 4, 1, 2, 4, 0)
}

func FuzzNextPermutation(f *testing.F) {
	f.Add([]byte{0, 5, 3, 8, 5, 1, 1})
	f.Add([]byte{1, 4, 2, 2, 2, 2})
	f.Add([]byte{2, 9, 9, 8, 7, 6, 5, 4, 3, 2, 1})
	f.Fuzz(func(t *testing.T, data []byte) {
		if len(data) < 2 {
			return
		}
		values := make([]int64, len(data)-2)
		for i, b := range data[2:] {
			values[i] = int64(b % 7)
		}
		n := uint64(len(values))
		left := uint64(data[0]) % (n + 1)
		right := left + uint64(data[1])%(n-left+1)
		rope := FromValues(uint64(len(data)), values...)
		for range 4 {
			want := reference.NextPermutation(values[left:right])
			got, err := rope.NextPermutation(left, right)
			if err != nil {
				t.Fatal(err)
			}
			if got != want {
				t.Fatalf("NextPermutation(%d,%d) = %v, want %v", left, right, got, want)
			}
			if !slices.Equal(rope.Values(), values) {
				t.Fatalf("rope = %v, want %v", rope.Values(), values)
			}
		}
		if err := rope.Check(); err != nil {
			t.Fatal(err)
		}
	})
}

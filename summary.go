package permrope

// Summary aggregates subtree metrics for tree routing and range queries.
//
// Ascending is the length of the longest non-decreasing run starting at the
// first element, Descending the length of the longest non-increasing run
// ending at the last element. Reading a sequence backwards turns one into the
// other, which is what makes lazy reversal cheap.
type Summary struct {
	Size       uint64 // number of elements
	Sum        int64  // sum of all elements
	First      int64  // value of the leftmost element
	Last       int64  // value of the rightmost element
	Ascending  uint64 // non-decreasing run from the left end
	Descending uint64 // non-increasing run into the right end
}

// IsEmpty reports whether s summarizes the empty sequence.
func (s Summary) IsEmpty() bool {
	return s.Size == 0
}

// Sorted reports whether the summarized sequence is non-decreasing.
func (s Summary) Sorted() bool {
	return s.Ascending == s.Size
}

// Reversed returns the summary of the same elements in reverse order.
func (s Summary) Reversed() Summary {
	s.First, s.Last = s.Last, s.First
	s.Ascending, s.Descending = s.Descending, s.Ascending
	return s
}

func leafSummary(value int64) Summary {
	return Summary{
		Size:       1,
		Sum:        value,
		First:      value,
		Last:       value,
		Ascending:  1,
		Descending: 1,
	}
}

// Monoid aggregates summaries of adjacent sub-sequences.
//
// For summaries s, t, u, Add is associative:
//
//	Add(Add(s, t), u) == Add(s, Add(t, u))
//
// and Zero is the neutral element:
//
//	Add(Zero(), s) == s == Add(s, Zero())
type Monoid struct{}

// Zero returns the neutral summary value.
func (Monoid) Zero() Summary { return Summary{} }

// Add combines the summary of a sequence with the summary of the sequence
// immediately to its right.
func (Monoid) Add(left, right Summary) Summary {
	if left.IsEmpty() {
		return right
	}
	if right.IsEmpty() {
		return left
	}
	s := Summary{
		Size:       left.Size + right.Size,
		Sum:        left.Sum + right.Sum,
		First:      left.First,
		Last:       right.Last,
		Ascending:  left.Ascending,
		Descending: right.Descending,
	}
	// a run crosses the seam only if it spans the whole piece on its side
	if left.Ascending == left.Size && left.Last <= right.First {
		s.Ascending += right.Ascending
	}
	if right.Descending == right.Size && left.Last >= right.First {
		s.Descending += left.Descending
	}
	return s
}

// Summarize folds a slice of values into a summary.
func Summarize(values ...int64) Summary {
	var m Monoid
	s := m.Zero()
	for _, v := range values {
		s = m.Add(s, leafSummary(v))
	}
	return s
}

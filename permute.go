package permrope

// nextPermutation rearranges a detached subtree into the next lexicographic
// permutation of its values and returns the new subtree root.
//
// The steps mirror the classical array algorithm, with every scan replaced
// by summary lookups and splits:
//
//	3 2 [4 4 1]   trailing non-increasing run, taken from the summary
//	3 [2] 4 4 1   pivot: the element in front of the run
//	1 4 4         run reversed lazily, now ascending
//	1 | 4 4       split by the pivot's value; 4 is the first greater element
//	3 4 [1 2 4]   exchange element moves to the pivot's place
//
// If the whole subtree is one non-increasing run, it is the greatest
// permutation; it is reversed into the smallest one and false is returned.
func nextPermutation(t *node) (*node, bool) {
	s := summaryOf(t)
	if s.Descending == s.Size {
		toggle(t)
		return t, false
	}
	head, tail := splitAt(t, s.Size-s.Descending)
	head, pivot := splitAt(head, size(head)-1)
	assert(size(pivot) == 1, "next permutation: pivot must be a single element")
	toggle(tail)
	// tail is ascending now, and its last element is greater than the pivot
	lower, greater := splitByValue(tail, pivot.value)
	exchange, greater := splitAt(greater, 1)
	assert(exchange != nil, "next permutation: no element greater than pivot")
	tail = join(lower, pivot, greater)
	return merge(merge(head, exchange), tail), true
}

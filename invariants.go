package permrope

import "fmt"

// ErrInvalidTree signals a violated structural invariant.
const ErrInvalidTree = RopeError("inconsistent tree")

// Check validates the structural invariants of the rope: heap order of node
// priorities and summaries consistent with the children and values of every
// node, including pending reversals.
//
// Check is strict and meant to be used in tests and diagnostics. It does not
// change the tree in any way, not even by pushing down reversals.
func (rope *Rope) Check() error {
	if rope == nil {
		return fmt.Errorf("%w: nil rope", ErrInvalidTree)
	}
	if _, err := checkNode(rope.root, 0); err != nil {
		return err
	}
	var values []int64
	collect(rope.root, false, &values)
	if got, want := summaryOf(rope.root), Summarize(values...); got != want {
		return fmt.Errorf("%w: root summary %+v, elements summarize to %+v", ErrInvalidTree, got, want)
	}
	return nil
}

func checkNode(n *node, depth int) (Summary, error) {
	if n == nil {
		return Summary{}, nil
	}
	for _, ch := range []*node{n.left, n.right} {
		if ch != nil && ch.priority > n.priority {
			return Summary{}, fmt.Errorf("%w: heap order violated at depth %d (%d < %d)",
				ErrInvalidTree, depth, n.priority, ch.priority)
		}
	}
	l, err := checkNode(n.left, depth+1)
	if err != nil {
		return Summary{}, err
	}
	r, err := checkNode(n.right, depth+1)
	if err != nil {
		return Summary{}, err
	}
	var m Monoid
	want := m.Add(m.Add(l, leafSummary(n.value)), r)
	if n.reversed {
		want = want.Reversed()
	}
	if n.summary != want {
		return Summary{}, fmt.Errorf("%w: stale summary at depth %d: have %+v, want %+v",
			ErrInvalidTree, depth, n.summary, want)
	}
	return n.summary, nil
}

// collect appends the logical sequence of a subtree without pushing down
// pending reversals. flip tells whether an ancestor's reversal is pending.
func collect(n *node, flip bool, values *[]int64) {
	if n == nil {
		return
	}
	flip = flip != n.reversed
	first, second := n.left, n.right
	if flip {
		first, second = second, first
	}
	collect(first, flip, values)
	*values = append(*values, n.value)
	collect(second, flip, values)
}

package permrope

// node is one element of a rope. Each node exclusively owns its children.
//
// If reversed is set, the node's own summary already describes the reversed
// subtree, but left and right have not been swapped yet.
type node struct {
	value    int64
	priority uint64
	summary  Summary
	reversed bool
	left     *node
	right    *node
}

func newNode(value int64, priority uint64) *node {
	return &node{
		value:    value,
		priority: priority,
		summary:  leafSummary(value),
	}
}

// A nil subtree is the identity for all aggregates.

func size(n *node) uint64 {
	if n == nil {
		return 0
	}
	return n.summary.Size
}

func sum(n *node) int64 {
	if n == nil {
		return 0
	}
	return n.summary.Sum
}

func summaryOf(n *node) Summary {
	if n == nil {
		return Summary{}
	}
	return n.summary
}

// toggle flips the pending reversal of a subtree in O(1).
func toggle(n *node) {
	if n == nil {
		return
	}
	n.reversed = !n.reversed
	n.summary = n.summary.Reversed()
}

// push hands a pending reversal down to the children of n.
func push(n *node) {
	if n == nil || !n.reversed {
		return
	}
	n.reversed = false
	n.left, n.right = n.right, n.left
	toggle(n.left)
	toggle(n.right)
}

// refresh recomputes the summary of n from its (up to date) children.
func refresh(n *node) {
	if n == nil {
		return
	}
	var m Monoid
	s := m.Add(summaryOf(n.left), leafSummary(n.value))
	n.summary = m.Add(s, summaryOf(n.right))
	if n.reversed {
		// children are still in unswapped order
		n.summary = n.summary.Reversed()
	}
}

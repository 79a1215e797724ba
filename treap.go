package permrope

// merge concatenates two subtrees, l entirely before r.
func merge(l, r *node) *node {
	if l == nil {
		return r
	}
	if r == nil {
		return l
	}
	push(l)
	push(r)
	if l.priority >= r.priority {
		l.right = merge(l.right, r)
		refresh(l)
		return l
	}
	r.left = merge(l, r.left)
	refresh(r)
	return r
}

// splitAt cuts a subtree into the first pos elements and the remainder.
func splitAt(t *node, pos uint64) (*node, *node) {
	if t == nil {
		return nil, nil
	}
	push(t)
	leftSize := size(t.left)
	if pos <= leftSize {
		l, r := splitAt(t.left, pos)
		t.left = r
		refresh(t)
		return l, t
	}
	l, r := splitAt(t.right, pos-leftSize-1)
	t.right = l
	refresh(t)
	return t, r
}

// splitByValue cuts a subtree into elements ≤ threshold and elements
// > threshold. t must be sorted in ascending order.
func splitByValue(t *node, threshold int64) (*node, *node) {
	if t == nil {
		return nil, nil
	}
	push(t)
	if t.value <= threshold {
		l, r := splitByValue(t.right, threshold)
		t.right = l
		refresh(t)
		return t, r
	}
	l, r := splitByValue(t.left, threshold)
	t.left = r
	refresh(t)
	return l, t
}

// cut cuts a subtree into [0,from), [from,to) and [to,n).
func cut(t *node, from, to uint64) (*node, *node, *node) {
	rest, right := splitAt(t, to)
	left, middle := splitAt(rest, from)
	return left, middle, right
}

// join is the inverse of cut.
func join(left, middle, right *node) *node {
	return merge(merge(left, middle), right)
}

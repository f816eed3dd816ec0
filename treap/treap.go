package treap

type node[X any] struct {
	value    X
	left     *node[X]
	right    *node[X]
	priority uint16
	size     int
}

// sizeOf treats a nil subtree as zero.
func sizeOf[X any](n *node[X]) int {
	if n == nil {
		return 0
	}
	return n.size
}

// recalc must run after any change to n.left or n.right.
func (n *node[X]) recalc() {
	n.size = sizeOf(n.left) + 1 + sizeOf(n.right)
}

// split partitions n into three disjoint subtrees: values less than value,
// at most one node equal to value, and values greater than value.
// The passed n is consumed; only the returned references are valid after.
func split[X any](n *node[X], value X, compare CompareFunc[X]) (left, center, right *node[X]) {
	if n == nil {
		return nil, nil, nil
	}

	c := compare(n.value, value)
	if c < 0 {
		left, center, right = split(n.right, value, compare)
		n.right = left
		n.recalc()
		return n, center, right
	} else if c == 0 {
		left, right = n.left, n.right
		n.left = nil
		n.right = nil
		n.recalc()
		return left, n, right
	}

	left, center, right = split(n.left, value, compare)
	n.left = right
	n.recalc()
	return left, center, n
}

// merge joins subtrees holding consecutive, non-overlapping value ranges
// given in ascending order, reducing pairwise from the left. The inputs are
// consumed. The caller is responsible for the ordering precondition; it is
// not checked here.
// On equal priorities the right subtree's root wins.
func merge[X any](parts ...*node[X]) *node[X] {
	out := parts[0]
	for _, p := range parts[1:] {
		out = mergePair(out, p)
	}
	return out
}

func mergePair[X any](left, right *node[X]) *node[X] {
	if left == nil {
		return right
	} else if right == nil {
		return left
	}

	if left.priority > right.priority {
		left.right = mergePair(left.right, right)
		left.recalc()
		return left
	}
	right.left = mergePair(left, right.left)
	right.recalc()
	return right
}

// kth finds the node at the zero-based rank k in sorted order, counting with
// the cached subtree sizes. Negative k counts back from the end.
func (n *node[X]) kth(k int) (*node[X], error) {
	if k < 0 {
		k = n.size + k
	}
	if k < 0 || k >= n.size {
		return nil, ErrRange
	}

	leftSize := sizeOf(n.left)
	if leftSize == k {
		return n, nil
	} else if leftSize > k {
		return n.left.kth(k)
	}
	return n.right.kth(k - leftSize - 1)
}

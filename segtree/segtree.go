// Package segtree implements a segment tree: a fixed-length mutable array
// with O(log n) point assignment and O(log n) range queries for any
// associative operation.
package segtree

// Op combines two values. It must be associative; unlike a sparse table it
// need not be idempotent, so sums work here.
type Op[X any] func(a, b X) X

// Tree answers range queries over a mutable slice of values.
type Tree[X any] struct {
	op   Op[X]
	n    int    // logical length
	pow2 int    // leaf row width, n rounded up to a power of two
	a    []X    // heap layout, leaves start at pow2-1
	ok   []bool // which cells hold a value (the padded tail doesn't)
}

// New builds a tree over a copy of values. It panics on empty input.
func New[X any](values []X, op Op[X]) *Tree[X] {
	if len(values) == 0 {
		panic("segtree: empty input")
	}

	n := len(values)
	pow2 := 1
	for pow2 < n {
		pow2 *= 2
	}

	t := &Tree[X]{
		op:   op,
		n:    n,
		pow2: pow2,
		a:    make([]X, 2*pow2-1),
		ok:   make([]bool, 2*pow2-1),
	}
	for i, v := range values {
		t.a[pow2-1+i] = v
		t.ok[pow2-1+i] = true
	}
	for i := pow2 - 2; i >= 0; i-- {
		t.pull(i)
	}
	return t
}

// pull recomputes cell i from its children. A missing right child passes the
// left child through unchanged.
func (t *Tree[X]) pull(i int) {
	left, right := 2*i+1, 2*i+2
	switch {
	case t.ok[right]:
		t.a[i] = t.op(t.a[left], t.a[right])
		t.ok[i] = true
	case t.ok[left]:
		t.a[i] = t.a[left]
		t.ok[i] = true
	}
}

// Len returns the number of values.
func (t *Tree[X]) Len() int {
	return t.n
}

// At returns the value at index i.
func (t *Tree[X]) At(i int) X {
	if i < 0 || i >= t.n {
		panic("segtree: index out of range")
	}
	return t.a[t.pow2-1+i]
}

// Set assigns the value at index i, updating the path to the root.
func (t *Tree[X]) Set(i int, v X) {
	if i < 0 || i >= t.n {
		panic("segtree: index out of range")
	}

	i += t.pow2 - 1
	t.a[i] = v
	for i > 0 {
		i = (i - 1) / 2
		t.pull(i)
	}
}

// Query combines the values over the half-open range [lo, hi).
// It panics if the range is empty or out of bounds.
func (t *Tree[X]) Query(lo, hi int) X {
	if lo < 0 || hi > t.n || lo >= hi {
		panic("segtree: bad query range")
	}
	return t.query(lo, hi, 0, 0, t.pow2)
}

func (t *Tree[X]) query(lo, hi, i, from, to int) X {
	if lo <= from && to <= hi {
		return t.a[i]
	}

	mid := (from + to) / 2
	if hi <= mid {
		return t.query(lo, hi, 2*i+1, from, mid)
	} else if mid <= lo {
		return t.query(lo, hi, 2*i+2, mid, to)
	}
	return t.op(t.query(lo, hi, 2*i+1, from, mid),
		t.query(lo, hi, 2*i+2, mid, to))
}

// Values returns a copy of the current values.
func (t *Tree[X]) Values() []X {
	return append([]X(nil), t.a[t.pow2-1:t.pow2-1+t.n]...)
}

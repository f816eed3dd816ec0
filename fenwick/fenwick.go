// Package fenwick implements a multidimensional Fenwick (binary indexed)
// tree: a d-dimensional table of numbers with O(log^d n) point updates and
// O(2^d log^d n) box sum queries.
package fenwick

// Number covers the scalar types a SumTree can aggregate.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// SumTree is a d-dimensional table with fast box sums.
// Indices are zero-based; out-of-range access panics, as with a slice.
type SumTree[X Number] struct {
	dims    []int
	strides []int
	tree    []X // fenwick partial sums, row-major
	data    []X // current values, row-major
}

// New creates a zeroed table with the given dimension lengths.
// It panics if no dimensions are passed or any length is not positive.
func New[X Number](dims ...int) *SumTree[X] {
	if len(dims) == 0 {
		panic("fenwick: no dimensions")
	}

	total := 1
	for _, d := range dims {
		if d <= 0 {
			panic("fenwick: dimension length must be positive")
		}
		total *= d
	}

	strides := make([]int, len(dims))
	stride := 1
	for i := len(dims) - 1; i >= 0; i-- {
		strides[i] = stride
		stride *= dims[i]
	}

	return &SumTree[X]{
		dims:    append([]int(nil), dims...),
		strides: strides,
		tree:    make([]X, total),
		data:    make([]X, total),
	}
}

// NewOf creates a table from row-major values.
// It panics if len(values) does not match the product of the dimensions.
func NewOf[X Number](values []X, dims ...int) *SumTree[X] {
	t := New[X](dims...)
	if len(values) != len(t.data) {
		panic("fenwick: values length does not match dimensions")
	}

	at := make([]int, len(dims))
	for _, v := range values {
		if v != 0 {
			t.Add(v, at...)
		}
		t.step(at)
	}
	return t
}

// step advances a row-major index cursor.
func (t *SumTree[X]) step(at []int) {
	for i := len(at) - 1; i >= 0; i-- {
		at[i]++
		if at[i] < t.dims[i] {
			return
		}
		at[i] = 0
	}
}

func (t *SumTree[X]) offset(at []int) int {
	if len(at) != len(t.dims) {
		panic("fenwick: wrong number of indices")
	}
	offset := 0
	for i, k := range at {
		if k < 0 || k >= t.dims[i] {
			panic("fenwick: index out of range")
		}
		offset += k * t.strides[i]
	}
	return offset
}

// Get returns the value at the given point. O(1).
func (t *SumTree[X]) Get(at ...int) X {
	return t.data[t.offset(at)]
}

// Set assigns the value at the given point.
func (t *SumTree[X]) Set(value X, at ...int) {
	t.Add(value-t.Get(at...), at...)
}

// Add adds delta to the value at the given point.
func (t *SumTree[X]) Add(delta X, at ...int) {
	t.data[t.offset(at)] += delta
	t.add(0, 0, at, delta)
}

// add walks every fenwick cell covering at, one dimension per level.
func (t *SumTree[X]) add(level, offset int, at []int, delta X) {
	if level == len(t.dims) {
		t.tree[offset] += delta
		return
	}
	for k := at[level]; k < t.dims[level]; k |= k + 1 {
		t.add(level+1, offset+k*t.strides[level], at, delta)
	}
}

// Prefix returns the sum over the box [0,hi[0]) x ... x [0,hi[d-1]).
// Each bound may be anywhere in [0, length].
func (t *SumTree[X]) Prefix(hi ...int) X {
	if len(hi) != len(t.dims) {
		panic("fenwick: wrong number of indices")
	}
	for i, k := range hi {
		if k < 0 || k > t.dims[i] {
			panic("fenwick: index out of range")
		}
	}
	return t.prefix(0, 0, hi)
}

func (t *SumTree[X]) prefix(level, offset int, hi []int) (sum X) {
	if level == len(t.dims) {
		return t.tree[offset]
	}
	for k := hi[level] - 1; k >= 0; k = (k & (k + 1)) - 1 {
		sum += t.prefix(level+1, offset+k*t.strides[level], hi)
	}
	return sum
}

// Sum returns the sum over the half-open box [lo[i], hi[i]) per dimension,
// by inclusion-exclusion over the 2^d prefix corners.
// Unsigned types stay exact: the intermediate wraparound cancels.
func (t *SumTree[X]) Sum(lo, hi []int) X {
	if len(lo) != len(t.dims) || len(hi) != len(t.dims) {
		panic("fenwick: wrong number of indices")
	}
	for i := range t.dims {
		if lo[i] < 0 || hi[i] > t.dims[i] || lo[i] > hi[i] {
			panic("fenwick: index out of range")
		}
	}

	corner := make([]int, len(t.dims))
	var rec func(level, parity int) X
	rec = func(level, parity int) (sum X) {
		if level == len(t.dims) {
			p := t.prefix(0, 0, corner)
			if parity > 0 {
				return p
			}
			return -p
		}
		corner[level] = lo[level]
		sum += rec(level+1, -parity)
		corner[level] = hi[level]
		sum += rec(level+1, parity)
		return sum
	}
	return rec(0, 1)
}

// Dims returns the dimension lengths.
func (t *SumTree[X]) Dims() []int {
	return append([]int(nil), t.dims...)
}

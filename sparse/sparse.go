// Package sparse implements a sparse table: an immutable array with O(1)
// range queries for an associative, idempotent operation (min, max, gcd...).
// Construction costs O(n log n) time and memory.
package sparse

import (
	"math/bits"
)

// Op combines two values. It must be associative and idempotent,
// i.e. op(x, x) == x.
type Op[X any] func(a, b X) X

// Table answers range queries over a fixed slice of values.
type Table[X any] struct {
	op    Op[X]
	table [][]X // table[l][i] covers [i, i+2^l)
}

// New builds a table over a copy of values. It panics on empty input.
func New[X any](values []X, op Op[X]) *Table[X] {
	if len(values) == 0 {
		panic("sparse: empty input")
	}

	n := len(values)
	levels := bits.Len(uint(n)) // level l exists while 2^l <= n

	table := make([][]X, 0, levels)
	table = append(table, append([]X(nil), values...))

	for l := 1; 1<<l <= n; l++ {
		half := 1 << (l - 1)
		prev := table[l-1]
		row := make([]X, n-2*half+1)
		for i := range row {
			row[i] = op(prev[i], prev[i+half])
		}
		table = append(table, row)
	}

	return &Table[X]{op: op, table: table}
}

// Len returns the number of values.
func (t *Table[X]) Len() int {
	return len(t.table[0])
}

// At returns the value at index i.
func (t *Table[X]) At(i int) X {
	return t.table[0][i]
}

// Query combines the values over the half-open range [lo, hi).
// It panics if the range is empty or out of bounds.
func (t *Table[X]) Query(lo, hi int) X {
	if lo < 0 || hi > t.Len() || lo >= hi {
		panic("sparse: bad query range")
	}

	// widest power-of-two block fitting the range; the two (overlapping)
	// blocks cover it exactly because op is idempotent
	level := bits.Len(uint(hi-lo)) - 1
	width := 1 << level
	return t.op(t.table[level][lo], t.table[level][hi-width])
}

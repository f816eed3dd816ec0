package sparse

import (
	"math/rand/v2"
	"testing"
)

func opMin(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func opMax(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func TestMin(t *testing.T) {
	rmq := New([]int{2, 4, 1, 7, 9, 8, 7, 6, 5}, opMin)

	cases := []struct{ lo, hi, want int }{
		{0, 2, 2},
		{0, 5, 1},
		{4, 5, 9},
		{4, 6, 8},
		{4, 7, 7},
		{4, 8, 6},
		{4, 9, 5},
	}
	for _, c := range cases {
		if got := rmq.Query(c.lo, c.hi); got != c.want {
			t.Errorf("Query(%d, %d): expected %d, got %d", c.lo, c.hi, c.want, got)
		}
	}

	if rmq.Len() != 9 {
		t.Errorf("expected Len()=9, was=%d", rmq.Len())
	}
	if rmq.At(3) != 7 {
		t.Errorf("expected At(3)=7, was=%d", rmq.At(3))
	}
}

func TestOracle(t *testing.T) {
	for _, n := range []int{1, 2, 3, 17, 64, 100} {
		values := make([]int, n)
		for i := range values {
			values[i] = rand.IntN(1_000)
		}

		rmin := New(values, opMin)
		rmax := New(values, opMax)

		for range 200 {
			lo := rand.IntN(n)
			hi := lo + 1 + rand.IntN(n-lo)

			wantMin, wantMax := values[lo], values[lo]
			for _, v := range values[lo:hi] {
				wantMin = opMin(wantMin, v)
				wantMax = opMax(wantMax, v)
			}

			if got := rmin.Query(lo, hi); got != wantMin {
				t.Fatalf("n=%d min Query(%d, %d): expected %d, got %d", n, lo, hi, wantMin, got)
			}
			if got := rmax.Query(lo, hi); got != wantMax {
				t.Fatalf("n=%d max Query(%d, %d): expected %d, got %d", n, lo, hi, wantMax, got)
			}
		}
	}
}

func TestBadInput(t *testing.T) {
	expectPanic := func(name string, fn func()) {
		t.Helper()
		defer func() {
			if recover() == nil {
				t.Errorf("%s: expected panic", name)
			}
		}()
		fn()
	}

	expectPanic("empty", func() { New(nil, opMin) })

	rmq := New([]int{1, 2, 3}, opMin)
	expectPanic("empty range", func() { rmq.Query(1, 1) })
	expectPanic("oob", func() { rmq.Query(0, 4) })
}

package segtree

import (
	"math/rand/v2"
	"slices"
	"testing"
)

func opAdd(a, b int) int { return a + b }

func opMin(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func TestSum(t *testing.T) {
	rsq := New([]int{2, 4, 1, 7, 9}, opAdd)

	if got := rsq.Query(0, 2); got != 6 {
		t.Errorf("Query(0, 2): expected 6, got %d", got)
	}
	if got := rsq.Query(0, 5); got != 23 {
		t.Errorf("Query(0, 5): expected 23, got %d", got)
	}
	if got := rsq.At(2); got != 1 {
		t.Errorf("At(2): expected 1, got %d", got)
	}

	rsq.Set(2, 5)
	if got := rsq.Query(2, 4); got != 12 {
		t.Errorf("Query(2, 4) after Set: expected 12, got %d", got)
	}
	if got := rsq.Values(); !slices.Equal(got, []int{2, 4, 5, 7, 9}) {
		t.Errorf("Values(): got %v", got)
	}
}

func TestMin(t *testing.T) {
	rmq := New([]int{2, 4, 1, 7, 9}, opMin)

	if got := rmq.Query(0, 2); got != 2 {
		t.Errorf("Query(0, 2): expected 2, got %d", got)
	}
	if got := rmq.Query(0, 5); got != 1 {
		t.Errorf("Query(0, 5): expected 1, got %d", got)
	}
}

func TestOracle(t *testing.T) {
	for _, n := range []int{1, 2, 5, 16, 33, 100} {
		values := make([]int, n)
		for i := range values {
			values[i] = rand.IntN(1_000)
		}
		tree := New(values, opAdd)

		for range 300 {
			if rand.IntN(3) == 0 {
				i := rand.IntN(n)
				v := rand.IntN(1_000)
				tree.Set(i, v)
				values[i] = v
			}

			lo := rand.IntN(n)
			hi := lo + 1 + rand.IntN(n-lo)
			want := 0
			for _, v := range values[lo:hi] {
				want += v
			}
			if got := tree.Query(lo, hi); got != want {
				t.Fatalf("n=%d Query(%d, %d): expected %d, got %d", n, lo, hi, want, got)
			}
		}

		if !slices.Equal(tree.Values(), values) {
			t.Fatalf("n=%d Values() mismatch", n)
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

	expectPanic("empty", func() { New(nil, opAdd) })

	tree := New([]int{1, 2, 3}, opAdd)
	expectPanic("empty range", func() { tree.Query(2, 2) })
	expectPanic("oob query", func() { tree.Query(0, 4) })
	expectPanic("oob set", func() { tree.Set(3, 0) })
	expectPanic("oob at", func() { tree.At(-1) })
}

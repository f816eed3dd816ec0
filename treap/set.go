// Package treap implements an ordered set as a treap: a binary search tree
// that is also a max-heap over per-node random priorities, giving expected
// logarithmic height. Every operation is built from two structural
// primitives, split and merge.
package treap

import (
	"cmp"
	"errors"
	"fmt"
	"iter"
)

var (
	ErrNotFound  = errors.New("value not found")
	ErrRange     = errors.New("index out of range")
	ErrNoElement = errors.New("no such element")
)

// CompareFunc is a function type that compares two elements of type X.
// It should return:
//   - a negative integer if a < b
//   - zero if a == b
//   - a positive integer if a > b
type CompareFunc[X any] func(a, b X) int

// Ordered is a CompareFunc for any naturally ordered type.
func Ordered[X cmp.Ordered](a, b X) int {
	return cmp.Compare(a, b)
}

// Set is an ordered collection of unique values.
// It is not goroutine-safe, and must not be reentered while an operation is
// in flight.
type Set[X any] struct {
	root    *node[X]
	compare CompareFunc[X]
	source  PrioritySource
}

// New creates a Set ordered by compare, holding any passed initial values.
// Duplicates among the initial values are absorbed silently.
// Priorities come from a deterministic source with DefaultSeed, so the same
// insertion order always produces the same tree shape.
func New[X any](compare CompareFunc[X], values ...X) *Set[X] {
	return NewSeeded(compare, DefaultSeed, values...)
}

// NewSeeded is New with an explicit seed for the priority source.
// A fixed seed trades robustness against adversarial insertion orders for
// reproducible runs.
func NewSeeded[X any](compare CompareFunc[X], seed uint16, values ...X) *Set[X] {
	return NewSource(compare, lfsrSource(seed), values...)
}

// NewSource is New with a caller-provided priority source.
// The source is consumed exactly once per newly created node.
func NewSource[X any](compare CompareFunc[X], source PrioritySource, values ...X) *Set[X] {
	s := &Set[X]{compare: compare, source: source}
	for _, v := range values {
		s.Add(v)
	}
	return s
}

// Len returns the number of values in this set. O(1).
func (s *Set[X]) Len() int {
	return sizeOf(s.root)
}

// Add inserts the value, or does nothing if it is already present.
// Returns true if a new value was inserted.
func (s *Set[X]) Add(v X) bool {
	if s.Contains(v) {
		return false
	}

	insert := &node[X]{value: v, priority: s.source(), size: 1}
	left, _, right := split(s.root, v, s.compare)
	s.root = merge(left, insert, right)
	return true
}

// Contains checks if this set holds the given value.
// The check itself is a split that is merged straight back, so the tree's
// physical shape may change even though its content does not.
func (s *Set[X]) Contains(v X) bool {
	left, center, right := split(s.root, v, s.compare)
	found := center != nil
	s.root = merge(left, center, right)
	return found
}

// Remove deletes the value, or returns ErrNotFound if it is absent.
func (s *Set[X]) Remove(v X) error {
	if !s.Contains(v) {
		return ErrNotFound
	}

	left, _, right := split(s.root, v, s.compare)
	s.root = merge(left, right)
	return nil
}

// Discard deletes the value if present, and is a no-op otherwise.
func (s *Set[X]) Discard(v X) {
	_ = s.Remove(v)
}

// At returns the value at the zero-based rank k in sorted order.
// Negative k counts back from the end, so At(-1) is the maximum.
// Returns ErrRange if k normalizes outside [0, Len()).
func (s *Set[X]) At(k int) (x X, err error) {
	if s.root == nil {
		return x, ErrRange
	}

	n, err := s.root.kth(k)
	if err != nil {
		return x, err
	}
	return n.value, nil
}

// Next returns the smallest value strictly greater than v, which itself need
// not be present. Returns ErrNoElement if nothing is greater.
func (s *Set[X]) Next(v X) (x X, err error) {
	left, center, right := split(s.root, v, s.compare)
	if sizeOf(right) == 0 {
		err = ErrNoElement
	} else {
		n, _ := right.kth(0)
		x = n.value
	}
	s.root = merge(left, center, right)
	return
}

// Prev returns the largest value strictly less than v, which itself need not
// be present. Returns ErrNoElement if nothing is smaller.
func (s *Set[X]) Prev(v X) (x X, err error) {
	left, center, right := split(s.root, v, s.compare)
	if sizeOf(left) == 0 {
		err = ErrNoElement
	} else {
		n, _ := left.kth(-1)
		x = n.value
	}
	s.root = merge(left, center, right)
	return
}

// All iterates the values in ascending order.
// The set must not be mutated during iteration.
func (s *Set[X]) All() iter.Seq[X] {
	return func(yield func(X) bool) {
		s.root.walk(yield)
	}
}

func (n *node[X]) walk(yield func(X) bool) bool {
	if n == nil {
		return true
	}
	return n.left.walk(yield) && yield(n.value) && n.right.walk(yield)
}

// Values returns the values in ascending order.
func (s *Set[X]) Values() []X {
	out := make([]X, 0, s.Len())
	for v := range s.All() {
		out = append(out, v)
	}
	return out
}

func (s *Set[X]) String() string {
	return fmt.Sprintf("%v", s.Values())
}

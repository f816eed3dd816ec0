package trace

import (
	"golang.org/x/time/rate"
)

// Budget allows a fixed number of calls and then refuses forever.
// Useful to keep a runaway traced recursion from flooding the output.
type Budget struct {
	lim *rate.Limiter
}

// NewBudget returns a budget of the given number of calls.
func NewBudget(calls int) *Budget {
	// burst only, zero refill rate: the tokens never come back
	return &Budget{lim: rate.NewLimiter(0, calls)}
}

// Allow consumes one call from the budget.
func (b *Budget) Allow() bool {
	return b.lim.Allow()
}

// Limit1 wraps a one-argument function with a call budget.
// Once the budget is spent the wrapper returns the zero R and false without
// calling fn.
func Limit1[A, R any](b *Budget, fn func(A) R) func(A) (R, bool) {
	return func(a A) (out R, ok bool) {
		if !b.Allow() {
			return
		}
		return fn(a), true
	}
}

// Limit2 wraps a two-argument function with a call budget.
func Limit2[A, B, R any](b *Budget, fn func(A, B) R) func(A, B) (R, bool) {
	return func(a A, bb B) (out R, ok bool) {
		if !b.Allow() {
			return
		}
		return fn(a, bb), true
	}
}

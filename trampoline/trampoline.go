// Package trampoline flattens unbounded tail recursion into a loop.
//
// A computation returns a Step instead of calling itself: either a landed
// value (Done), a landed error (Fail) or a pending Thunk (Bounce) describing
// "the rest of the work". Run invokes pending thunks one at a time until the
// computation lands, so native stack depth stays constant no matter how many
// bounces are needed.
//
//	func countdown(n int) trampoline.Step[int] {
//		if n == 0 {
//			return trampoline.Done(0)
//		}
//		return trampoline.Bounce(func() trampoline.Step[int] { return countdown(n - 1) })
//	}
//
//	v, bounces, err := trampoline.Run(ctx, countdown(1_000_000), 0)
package trampoline

import (
	"context"
	"errors"
)

// ErrBounceLimit is returned by Run when the limit is reached before landing.
var ErrBounceLimit = errors.New("trampoline: bounce limit reached")

// Thunk is a suspended, zero-argument computation.
type Thunk[T any] func() Step[T]

// Step is the outcome of one unit of work.
type Step[T any] struct {
	next  Thunk[T]
	value T
	err   error
}

// Done lands with v.
func Done[T any](v T) Step[T] { return Step[T]{value: v} }

// Fail lands with err.
func Fail[T any](err error) Step[T] { return Step[T]{err: err} }

// Bounce defers the rest of the computation to next.
// A nil next lands with the zero value.
func Bounce[T any](next Thunk[T]) Step[T] { return Step[T]{next: next} }

// Pending reports whether s still has work to do.
func (s Step[T]) Pending() bool { return s.next != nil }

// Run drives s until it lands and returns the landed value, the number of
// thunks invoked and the landed error.
//
//	limit > 0:  at most limit bounces; ErrBounceLimit once exceeded
//	limit <= 0: no limit
//
// ctx is checked before every bounce; on cancellation ctx.Err() is returned.
func Run[T any](ctx context.Context, s Step[T], limit int) (T, int, error) {
	var zero T
	bounces := 0
	for s.Pending() {
		if limit > 0 && bounces >= limit {
			return zero, bounces, ErrBounceLimit
		}
		select {
		case <-ctx.Done():
			return zero, bounces, ctx.Err()
		default:
		}

		s = s.next()
		bounces++
	}
	if s.err != nil {
		return zero, bounces, s.err
	}

	return s.value, bounces, nil
}

// Package result implements a success-or-error value.
//
// Bind short-circuits on the first error, so a chain of dependent steps
// stops where it fails. Apply, for independent computations, runs both
// sides and joins their errors (left first) with errors.Join, so a
// validation of several fields reports every failure at once.
package result

import (
	"errors"
	"fmt"

	"github.com/KasperOmsK/monadfn"
)

// Result holds either a value or a non-nil error.
type Result[T any] struct {
	value T
	err   error
}

func Ok[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Err builds a failed Result. Err panics on a nil error, which would make the
// Result indistinguishable from a success.
func Err[T any](err error) Result[T] {
	if err == nil {
		panic("result.Err: nil error")
	}
	return Result[T]{err: err}
}

// Of adapts Go's (value, error) return convention.
//
//	r := result.Of(strconv.Atoi(s))
func Of[T any](value T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(value)
}

func (r Result[T]) IsOk() bool {
	return r.err == nil
}

// Error returns the error of a failed Result, nil otherwise.
func (r Result[T]) Error() error {
	return r.err
}

// Unwrap returns the value and error in Go's usual order.
func (r Result[T]) Unwrap() (T, error) {
	return r.value, r.err
}

func (r Result[T]) String() string {
	if r.err != nil {
		return fmt.Sprintf("Err(%v)", r.err)
	}
	return fmt.Sprintf("Ok(%v)", r.value)
}

// Equal compares values with == and errors by message.
func Equal[T comparable](x, y Result[T]) bool {
	if x.IsOk() != y.IsOk() {
		return false
	}
	if !x.IsOk() {
		return x.err.Error() == y.err.Error()
	}
	return x.value == y.value
}

// Pure is Ok.
func Pure[T any](value T) Result[T] {
	return Ok(value)
}

func Map[A, B any](r Result[A], f func(A) B) Result[B] {
	if r.err != nil {
		return Err[B](r.err)
	}
	return Ok(f(r.value))
}

// Apply applies the wrapped function to the wrapped value. When either side
// failed, the result carries both errors joined, the function's first.
func Apply[A, B any](rf Result[func(A) B], ra Result[A]) Result[B] {
	if err := errors.Join(rf.err, ra.err); err != nil {
		return Err[B](err)
	}
	return Ok(rf.value(ra.value))
}

// Bind passes the value to k, or propagates the error without calling k.
func Bind[A, B any](r Result[A], k func(A) Result[B]) Result[B] {
	if r.err != nil {
		return Err[B](r.err)
	}
	return k(r.value)
}

// Or returns r when it succeeded and other otherwise. It is a fallback, not
// an Alternative: there is no Result that is an identity for Or on both sides.
func Or[T any](r Result[T], other Result[T]) Result[T] {
	if r.err == nil {
		return r
	}
	return other
}

// Recover turns a failure into a success using f. Successful Results pass
// through unchanged.
func Recover[T any](r Result[T], f func(error) T) Result[T] {
	if r.err == nil {
		return r
	}
	return Ok(f(r.err))
}

// MapErr rewrites the error of a failed Result, e.g. to wrap it with context.
func MapErr[T any](r Result[T], f func(error) error) Result[T] {
	if r.err == nil {
		return r
	}
	return Err[T](f(r.err))
}

// Join flattens a nested Result.
func Join[T any](rr Result[Result[T]]) Result[T] {
	return monadfn.Join(Bind[Result[T], T], rr)
}

// LiftA2 combines two independent Results; errors from both are kept.
func LiftA2[A, B, C any](f func(A, B) C) func(Result[A], Result[B]) Result[C] {
	return monadfn.LiftA2(Map[A, func(B) C], Apply[B, C], f)
}

func LiftA3[A, B, C, D any](f func(A, B, C) D) func(Result[A], Result[B], Result[C]) Result[D] {
	return monadfn.LiftA3(Map[A, func(B) func(C) D], Apply[B, func(C) D], Apply[C, D], f)
}

func Zip[A, B any](x Result[A], y Result[B]) Result[monadfn.Pair[A, B]] {
	return monadfn.Zip(Map[A, func(B) monadfn.Pair[A, B]], Apply[B, monadfn.Pair[A, B]], x, y)
}

// Then keeps y's value; errors of x and y are both kept, x's first.
func Then[A, B any](x Result[A], y Result[B]) Result[B] {
	return monadfn.Then(Map[A, func(B) B], Apply[B, B], x, y)
}

// Skip keeps x's value; errors of x and y are both kept, x's first.
func Skip[A, B any](x Result[A], y Result[B]) Result[A] {
	return monadfn.Skip(Map[A, func(B) A], Apply[B, A], x, y)
}

// ComposeK chains two fallible steps (>=>).
func ComposeK[A, B, C any](f func(A) Result[B], g func(B) Result[C]) func(A) Result[C] {
	return monadfn.ComposeK(Bind[B, C], f, g)
}

// Traverse applies f to every element and stops at the first error.
func Traverse[A, B any](xs []A, f func(A) Result[B]) Result[[]B] {
	return monadfn.Traverse(Bind[B, []B], Bind[[]B, []B], Pure[[]B], f, xs)
}

// Validate applies f to every element and collects all errors.
func Validate[A, B any](xs []A, f func(A) Result[B]) Result[[]B] {
	acc := Pure(make([]B, 0, len(xs)))
	appendB := LiftA2(func(bs []B, b B) []B {
		return append(bs, b)
	})
	for _, x := range xs {
		acc = appendB(acc, f(x))
	}
	return acc
}

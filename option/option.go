// Package option implements an optional value: zero or one value of type T.
//
// Option is the reference instance of every class in monadfn except
// Comonad. Its Alternative choice is "first success wins": Append(x, y) is x
// when x holds a value and y otherwise, and Empty is None.
//
// Example:
//
//	port := option.Bind(option.FromOk(env["PORT"]), parsePort)
//	port = option.Append(port, option.Pure(8080))
package option

import (
	"fmt"
	"iter"

	"github.com/KasperOmsK/monadfn"
	"github.com/KasperOmsK/monadfn/internal/iterx"
)

// Option holds either one value of type T or nothing. The zero value is None.
// Values are stored inline, so Some(nil) is valid for nil-capable types.
type Option[T any] struct {
	value T
	ok    bool
}

func Some[T any](value T) Option[T] {
	return Option[T]{value: value, ok: true}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

// FromOk builds an Option from Go's comma-ok idiom.
//
//	v, ok := m[key]
//	opt := option.FromOk(v, ok)
func FromOk[T any](value T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(value)
}

// FromPtr treats a nil pointer as None.
func FromPtr[T any](ptr *T) Option[T] {
	if ptr == nil {
		return None[T]()
	}
	return Some(*ptr)
}

func (o Option[T]) IsSome() bool {
	return o.ok
}

func (o Option[T]) IsNone() bool {
	return !o.ok
}

// Get returns the value and whether it was present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

func (o Option[T]) GetOrElse(fallback T) T {
	if o.ok {
		return o.value
	}
	return fallback
}

// MustGet returns the value or panics when o is None.
func (o Option[T]) MustGet() T {
	if !o.ok {
		panic("option.MustGet: called on None")
	}
	return o.value
}

func (o Option[T]) String() string {
	if !o.ok {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}

// Equal reports whether x and y are both None or both hold equal values.
func Equal[T comparable](x, y Option[T]) bool {
	return EqualFunc(func(a, b T) bool { return a == b })(x, y)
}

// EqualFunc lifts an element equality to Options.
func EqualFunc[T any](eq func(a, b T) bool) monadfn.EqualFunc[Option[T]] {
	return func(x, y Option[T]) bool {
		if x.ok != y.ok {
			return false
		}
		return !x.ok || eq(x.value, y.value)
	}
}

// Pure is Some.
func Pure[T any](value T) Option[T] {
	return Some(value)
}

// Map applies f to the value of o, if any.
func Map[A, B any](o Option[A], f func(A) B) Option[B] {
	if !o.ok {
		return None[B]()
	}
	return Some(f(o.value))
}

// Apply applies the wrapped function to the wrapped value. The result is
// None unless both are present.
func Apply[A, B any](of Option[func(A) B], oa Option[A]) Option[B] {
	if !of.ok || !oa.ok {
		return None[B]()
	}
	return Some(of.value(oa.value))
}

// Bind passes the value of o to k, or short-circuits to None.
func Bind[A, B any](o Option[A], k func(A) Option[B]) Option[B] {
	if !o.ok {
		return None[B]()
	}
	return k(o.value)
}

// Empty is None, the identity of Append.
func Empty[T any]() Option[T] {
	return None[T]()
}

// Append returns x if it holds a value, otherwise y.
func Append[T any](x, y Option[T]) Option[T] {
	if x.ok {
		return x
	}
	return y
}

// Zero is the MonadPlus name for Empty.
func Zero[T any]() Option[T] {
	return Empty[T]()
}

// Plus is the MonadPlus name for Append.
func Plus[T any](x, y Option[T]) Option[T] {
	return Append(x, y)
}

// Filter keeps the value of o only if it satisfies pred.
func Filter[T any](o Option[T], pred func(T) bool) Option[T] {
	return Bind(o, func(v T) Option[T] {
		return Bind(Guard(pred(v)), func(monadfn.Unit) Option[T] {
			return Pure(v)
		})
	})
}

// Guard is Some(U) when cond holds and None otherwise.
func Guard(cond bool) Option[monadfn.Unit] {
	return monadfn.Guard(Zero[monadfn.Unit], Pure[monadfn.Unit], cond)
}

// Join flattens a nested Option.
func Join[T any](oo Option[Option[T]]) Option[T] {
	return monadfn.Join(Bind[Option[T], T], oo)
}

func LiftA2[A, B, C any](f func(A, B) C) func(Option[A], Option[B]) Option[C] {
	return monadfn.LiftA2(Map[A, func(B) C], Apply[B, C], f)
}

// Then returns y when x is present (*>).
func Then[A, B any](x Option[A], y Option[B]) Option[B] {
	return monadfn.Then(Map[A, func(B) B], Apply[B, B], x, y)
}

// Skip returns x when y is present (<*).
func Skip[A, B any](x Option[A], y Option[B]) Option[A] {
	return monadfn.Skip(Map[A, func(B) A], Apply[B, A], x, y)
}

func Zip[A, B any](x Option[A], y Option[B]) Option[monadfn.Pair[A, B]] {
	return monadfn.Zip(Map[A, func(B) monadfn.Pair[A, B]], Apply[B, monadfn.Pair[A, B]], x, y)
}

func Zip3[A, B, C any](x Option[A], y Option[B], z Option[C]) Option[monadfn.Triple[A, B, C]] {
	return monadfn.Zip3(
		Map[A, func(B) func(C) monadfn.Triple[A, B, C]],
		Apply[B, func(C) monadfn.Triple[A, B, C]],
		Apply[C, monadfn.Triple[A, B, C]],
		x, y, z)
}

// ComposeK chains two Option-returning functions (>=>).
func ComposeK[A, B, C any](f func(A) Option[B], g func(B) Option[C]) func(A) Option[C] {
	return monadfn.ComposeK(Bind[B, C], f, g)
}

// Traverse applies f to every element, returning None on the first None.
func Traverse[A, B any](xs []A, f func(A) Option[B]) Option[[]B] {
	return monadfn.Traverse(Bind[B, []B], Bind[[]B, []B], Pure[[]B], f, xs)
}

// Optional never fails: it is Some(o) for any o, so a missing value does not
// abort an enclosing computation.
func Optional[T any](o Option[T]) Option[Option[T]] {
	return monadfn.Optional(Map[T, Option[T]], Pure[Option[T]], alternative[Option[T]](), Some[T], None[T](), o)
}

// SomeN is one-or-more repetition of o, unrolled n times. For a present
// value it is Some of n copies; for None it is None.
func SomeN[T any](o Option[T], n int) Option[[]T] {
	return monadfn.SomeN(Map[T, func([]T) []T], Apply[[]T, []T], Pure[[]T], alternative[[]T](), o, n)
}

// ManyN is zero-or-more repetition of o, unrolled n times. It is never None.
func ManyN[T any](o Option[T], n int) Option[[]T] {
	return monadfn.ManyN(Map[T, func([]T) []T], Apply[[]T, []T], Pure[[]T], alternative[[]T](), o, n)
}

// SomeSeq is the unbounded one-or-more repetition. Repeating a pure Option
// never stops succeeding, so for a present value the sequence is infinite
// and must be bounded by the caller; for None the result is None.
func SomeSeq[T any](o Option[T]) Option[iter.Seq[T]] {
	return Map(o, iterx.Repeat[T])
}

// ManySeq is the unbounded zero-or-more repetition: an infinite sequence
// for a present value, an empty sequence for None.
func ManySeq[T any](o Option[T]) Option[iter.Seq[T]] {
	return Append(SomeSeq(o), Pure(iterx.Empty[T]()))
}

func alternative[T any]() monadfn.Alternative[Option[T]] {
	return monadfn.Alternative[Option[T]]{
		Empty:  Empty[T],
		Append: Append[T],
	}
}

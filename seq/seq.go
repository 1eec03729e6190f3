// Package seq implements the list monad over lazily evaluated iter.Seq values.
//
// A Seq[T] stands for a nondeterministic computation: every value it yields
// is one possible result. Apply takes the cartesian product of functions and
// arguments, Bind runs the continuation for every result, Append
// concatenates and Empty yields nothing.
//
// All transformations are package-level functions returning a new Seq.
// Nothing is computed until the result is iterated, so a Seq may be
// infinite as long as only a bounded prefix is consumed (see Take).
package seq

import (
	"iter"
	"slices"

	"github.com/KasperOmsK/monadfn"
	"github.com/KasperOmsK/monadfn/internal/iterx"
	"github.com/KasperOmsK/monadfn/option"
	"github.com/KasperOmsK/monadfn/result"
)

type (
	// Seq is a lazily evaluated, possibly infinite sequence of values.
	// The zero value is not usable; build one with From, Of or FromSlice.
	Seq[T any] struct {
		seq iter.Seq[T]
	}

	// Predicate reports whether a value should be kept by Filter.
	Predicate[T any] func(item T) bool
)

// From wraps an iter.Seq.
func From[T any](in iter.Seq[T]) Seq[T] {
	if in == nil {
		panic("seq.From: nil iter.Seq")
	}
	return Seq[T]{seq: in}
}

func Of[T any](items ...T) Seq[T] {
	return FromSlice(items)
}

func FromSlice[T any](items []T) Seq[T] {
	return From(iterx.FromSlice(items))
}

// Values returns the underlying iter.Seq.
func (s Seq[T]) Values() iter.Seq[T] {
	return s.seq
}

// Collect drains s into a slice. It never returns for an infinite Seq.
func Collect[T any](s Seq[T]) []T {
	return iterx.Collect(s.seq)
}

// Equal collects both sequences and compares them element by element.
// Both must be finite.
func Equal[T comparable](x, y Seq[T]) bool {
	return slices.Equal(Collect(x), Collect(y))
}

// EqualFunc is Equal with a custom element comparison.
func EqualFunc[T any](eq func(a, b T) bool) monadfn.EqualFunc[Seq[T]] {
	return func(x, y Seq[T]) bool {
		return slices.EqualFunc(Collect(x), Collect(y), eq)
	}
}

// Pure yields exactly one value.
func Pure[T any](v T) Seq[T] {
	return From(func(yield func(T) bool) {
		yield(v)
	})
}

// Map transforms each value of s using fn.
func Map[In, Out any](s Seq[In], fn func(In) Out) Seq[Out] {
	return From(func(yield func(Out) bool) {
		for in := range s.seq {
			if !yield(fn(in)) {
				return
			}
		}
	})
}

// Apply yields f(a) for every function f of fs and, for each f, every
// value a of as. The order is that of a nested loop with fs outermost.
func Apply[A, B any](fs Seq[func(A) B], as Seq[A]) Seq[B] {
	return From(func(yield func(B) bool) {
		for f := range fs.seq {
			for a := range as.seq {
				if !yield(f(a)) {
					return
				}
			}
		}
	})
}

// Bind runs k for every value of s and concatenates the resulting
// sequences in order.
func Bind[A, B any](s Seq[A], k func(A) Seq[B]) Seq[B] {
	return Join(Map(s, k))
}

// Join concatenates a sequence of sequences.
func Join[T any](ss Seq[Seq[T]]) Seq[T] {
	return From(func(yield func(T) bool) {
		for inner := range ss.seq {
			for item := range inner.seq {
				if !yield(item) {
					return
				}
			}
		}
	})
}

// FlatMap transforms each value using fn and yields the flattened results.
//
// FlatMap is equivalent to calling Flatten(Map(s, fn)).
func FlatMap[In, Out any](s Seq[In], fn func(In) []Out) Seq[Out] {
	return Flatten(Map(s, fn))
}

// Flatten converts a Seq of slices into a Seq of their elements,
// emitting the items of each slice in order.
func Flatten[T any](s Seq[[]T]) Seq[T] {
	return From(func(yield func(T) bool) {
		for slice := range s.seq {
			for _, item := range slice {
				if !yield(item) {
					return
				}
			}
		}
	})
}

// Filter returns a Seq that yields only the values for which predicate
// returns true.
func Filter[T any](s Seq[T], predicate Predicate[T]) Seq[T] {
	return From(func(yield func(T) bool) {
		for in := range s.seq {
			if predicate(in) {
				if !yield(in) {
					return
				}
			}
		}
	})
}

// Take yields at most the first n values of s.
func Take[T any](s Seq[T], n int) Seq[T] {
	return From(iterx.Take(s.seq, n))
}

// Chunk groups values into slices of the given size. The final chunk may be
// smaller than chunkSize.
//
// Chunk panics if chunkSize is not positive.
func Chunk[T any](s Seq[T], chunkSize int) Seq[[]T] {
	if chunkSize <= 0 {
		panic("seq.Chunk: chunkSize must be positive")
	}

	return From(func(yield func([]T) bool) {
		i := 0
		chunks := GroupBy(s, func(T) int {
			k := i / chunkSize
			i++
			return k
		})
		for c := range chunks.seq {
			if !yield(c) {
				return
			}
		}
	})
}

// GroupBy groups consecutive values with the same key. Values are never
// reordered: given keys A, A, B, B, A it yields [A A], [B B], [A]. Every
// group has its own backing array, and keyFunc is called once per value in
// order.
func GroupBy[T any, K comparable](s Seq[T], keyFunc func(T) K) Seq[[]T] {
	return From(func(yield func([]T) bool) {
		var (
			group   []T
			current K
		)
		closed := Bind(s, func(item T) Seq[[]T] {
			k := keyFunc(item)
			if len(group) > 0 && k != current {
				done := group
				group, current = []T{item}, k
				return Pure(done)
			}
			group, current = append(group, item), k
			return Empty[[]T]()
		})
		pending := From(func(yield func([]T) bool) {
			if len(group) > 0 {
				yield(group)
			}
		})

		for g := range Append(closed, pending).seq {
			if !yield(g) {
				return
			}
		}
	})
}

// TryMap applies a fallible fn to every value. Failures stay in the
// sequence as Err values at the position of their input, so the caller
// decides whether to stop, skip or collect them (see result.Traverse and
// result.Validate).
func TryMap[In, Out any](s Seq[In], fn func(In) (Out, error)) Seq[result.Result[Out]] {
	return Map(s, func(in In) result.Result[Out] {
		out, err := fn(in)
		return result.Of(out, err)
	})
}

// Empty yields nothing. It is the identity of Append.
func Empty[T any]() Seq[T] {
	return From(iterx.Empty[T]())
}

// Append yields every value of x, then every value of y.
func Append[T any](x, y Seq[T]) Seq[T] {
	return From(iterx.Concat(x.seq, y.seq))
}

// Zero is the MonadPlus name for Empty.
func Zero[T any]() Seq[T] {
	return Empty[T]()
}

// Plus is the MonadPlus name for Append.
func Plus[T any](x, y Seq[T]) Seq[T] {
	return Append(x, y)
}

// Guard yields a single U when cond holds and nothing otherwise. Bound in
// the middle of a comprehension it prunes the branches failing cond:
//
//	pairs := seq.Bind(xs, func(x int) seq.Seq[int] {
//	    return seq.Bind(seq.Guard(x%2 == 0), func(monadfn.Unit) seq.Seq[int] {
//	        return seq.Pure(x)
//	    })
//	})
func Guard(cond bool) Seq[monadfn.Unit] {
	return monadfn.Guard(Zero[monadfn.Unit], Pure[monadfn.Unit], cond)
}

func LiftA2[A, B, C any](f func(A, B) C) func(Seq[A], Seq[B]) Seq[C] {
	return monadfn.LiftA2(Map[A, func(B) C], Apply[B, C], f)
}

// Then yields the values of y once for every value of x (*>).
func Then[A, B any](x Seq[A], y Seq[B]) Seq[B] {
	return monadfn.Then(Map[A, func(B) B], Apply[B, B], x, y)
}

// Skip yields each value of x once for every value of y (<*).
func Skip[A, B any](x Seq[A], y Seq[B]) Seq[A] {
	return monadfn.Skip(Map[A, func(B) A], Apply[B, A], x, y)
}

// Zip yields every pair of a value of x and a value of y (the cartesian
// product, not a positional zip).
func Zip[A, B any](x Seq[A], y Seq[B]) Seq[monadfn.Pair[A, B]] {
	return monadfn.Zip(Map[A, func(B) monadfn.Pair[A, B]], Apply[B, monadfn.Pair[A, B]], x, y)
}

// ComposeK chains two Seq-returning functions (>=>).
func ComposeK[A, B, C any](f func(A) Seq[B], g func(B) Seq[C]) func(A) Seq[C] {
	return monadfn.ComposeK(Bind[B, C], f, g)
}

// Sequence yields every combination picking one value from each of ss.
func Sequence[T any](ss []Seq[T]) Seq[[]T] {
	return monadfn.Sequence(Bind[T, []T], Bind[[]T, []T], Pure[[]T], ss)
}

// Optional yields Some(v) for every value v of s, followed by None.
func Optional[T any](s Seq[T]) Seq[option.Option[T]] {
	return monadfn.Optional(Map[T, option.Option[T]], Pure[option.Option[T]], alternative[option.Option[T]](),
		option.Some[T], option.None[T](), s)
}

// SomeN is bounded one-or-more repetition. Unbounded repetition of a
// non-empty Seq has no first result, so only the bounded form is offered.
func SomeN[T any](s Seq[T], n int) Seq[[]T] {
	return monadfn.SomeN(Map[T, func([]T) []T], Apply[[]T, []T], Pure[[]T], alternative[[]T](), s, n)
}

// ManyN is bounded zero-or-more repetition; its last result is always the
// empty slice.
func ManyN[T any](s Seq[T], n int) Seq[[]T] {
	return monadfn.ManyN(Map[T, func([]T) []T], Apply[[]T, []T], Pure[[]T], alternative[[]T](), s, n)
}

func alternative[T any]() monadfn.Alternative[Seq[T]] {
	return monadfn.Alternative[Seq[T]]{
		Empty:  Empty[T],
		Append: Append[T],
	}
}

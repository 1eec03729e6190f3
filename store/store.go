// Package store implements the Store comonad: a lookup function together
// with a current position.
//
// Extract reads the value at the current position; Extend computes a new
// Store whose value at every position is f applied to the Store focused
// there. That makes Extend a local rule applied everywhere at once, e.g. a
// moving average over a series or one step of a cellular automaton.
package store

import (
	"github.com/KasperOmsK/monadfn"
)

// Store pairs a lookup function with the position it is focused on.
type Store[S, A any] struct {
	peek func(S) A
	pos  S
}

// New focuses peek at pos. New panics if peek is nil.
func New[S, A any](peek func(S) A, pos S) Store[S, A] {
	if peek == nil {
		panic("store.New: nil peek function")
	}
	return Store[S, A]{peek: peek, pos: pos}
}

// Pos returns the current position.
func Pos[S, A any](w Store[S, A]) S {
	return w.pos
}

// Peek reads the value at an arbitrary position.
func Peek[S, A any](w Store[S, A], s S) A {
	return w.peek(s)
}

// PeekF reads the value at a position relative to the current one.
func PeekF[S, A any](w Store[S, A], f func(S) S) A {
	return w.peek(f(w.pos))
}

// Seek moves the focus to s.
func Seek[S, A any](w Store[S, A], s S) Store[S, A] {
	return Store[S, A]{peek: w.peek, pos: s}
}

// SeekF moves the focus relative to the current position.
func SeekF[S, A any](w Store[S, A], f func(S) S) Store[S, A] {
	return Seek(w, f(w.pos))
}

// Experiment reads the values at every position derived from the current one.
func Experiment[S, A any](w Store[S, A], f func(S) []S) []A {
	positions := f(w.pos)
	out := make([]A, len(positions))
	for i, s := range positions {
		out[i] = w.peek(s)
	}
	return out
}

// Extract reads the value at the current position.
func Extract[S, A any](w Store[S, A]) A {
	return w.peek(w.pos)
}

// Extend applies f to the Store refocused at every position. The result
// keeps the current position. Nothing is evaluated until it is read.
func Extend[S, A, B any](w Store[S, A], f func(Store[S, A]) B) Store[S, B] {
	return Store[S, B]{
		peek: func(s S) B {
			return f(Seek(w, s))
		},
		pos: w.pos,
	}
}

// Duplicate is Extend with the identity: a Store of Stores.
func Duplicate[S, A any](w Store[S, A]) Store[S, Store[S, A]] {
	return monadfn.Duplicate(Extend[S, A, Store[S, A]], w)
}

// Map transforms every value; the Functor derived from Extend.
func Map[S, A, B any](w Store[S, A], f func(A) B) Store[S, B] {
	return Extend(w, func(x Store[S, A]) B {
		return f(Extract(x))
	})
}

// EqualAt compares Stores by their positions and by the values both yield at
// each probe position. Functions cannot be compared directly, so this is
// observational equality over the probes.
func EqualAt[S, A comparable](probes ...S) monadfn.EqualFunc[Store[S, A]] {
	return func(x, y Store[S, A]) bool {
		if x.pos != y.pos {
			return false
		}
		for _, s := range probes {
			if x.peek(s) != y.peek(s) {
				return false
			}
		}
		return true
	}
}

// Package identity implements the Identity type, which adds no effect at all.
// It is the simplest lawful Monad and also the simplest Comonad, which
// makes it the baseline every law suite is checked against first.
package identity

import (
	"fmt"

	"github.com/KasperOmsK/monadfn"
)

// Identity wraps exactly one value.
type Identity[T any] struct {
	value T
}

func Pure[T any](value T) Identity[T] {
	return Identity[T]{value: value}
}

func (i Identity[T]) String() string {
	return fmt.Sprintf("Identity(%v)", i.value)
}

func Equal[T comparable](x, y Identity[T]) bool {
	return x.value == y.value
}

func Map[A, B any](i Identity[A], f func(A) B) Identity[B] {
	return Pure(f(i.value))
}

func Apply[A, B any](f Identity[func(A) B], i Identity[A]) Identity[B] {
	return Pure(f.value(i.value))
}

func Bind[A, B any](i Identity[A], k func(A) Identity[B]) Identity[B] {
	return k(i.value)
}

func Join[T any](ii Identity[Identity[T]]) Identity[T] {
	return monadfn.Join(Bind[Identity[T], T], ii)
}

// Extract returns the wrapped value.
func Extract[T any](i Identity[T]) T {
	return i.value
}

// Extend applies f to the whole context and wraps the result.
func Extend[A, B any](i Identity[A], f func(Identity[A]) B) Identity[B] {
	return Pure(f(i))
}

func Duplicate[T any](i Identity[T]) Identity[Identity[T]] {
	return monadfn.Duplicate(Extend[T, Identity[T]], i)
}

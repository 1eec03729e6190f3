// Package laws checks that an instance's primitives obey the algebraic laws
// of their class.
//
// Each predicate takes the primitives it exercises as dictionary functions
// from package monadfn, an EqualFunc for the wrapped type and the sample
// values to check with. It reports whether the law holds for those samples.
// The predicates are meant to be wrapped in gopter properties with
// prop.ForAll and checked by a Runner, which seeds the generators, but they
// are ordinary functions and can be called from a test directly.
//
// Haskell notation is used in the documentation of each law.
package laws

import (
	"github.com/KasperOmsK/monadfn"
)

// FunctorIdentity checks fmap id == id.
func FunctorIdentity[A, FA any](
	fmap monadfn.MapFunc[A, A, FA, FA],
	eq monadfn.EqualFunc[FA],
	fa FA) bool {

	return eq(fmap(fa, monadfn.Id[A]), fa)
}

// FunctorComposition checks fmap (g . f) == fmap g . fmap f.
func FunctorComposition[A, B, C, FA, FB, FC any](
	fmapAB monadfn.MapFunc[A, B, FA, FB],
	fmapBC monadfn.MapFunc[B, C, FB, FC],
	fmapAC monadfn.MapFunc[A, C, FA, FC],
	eq monadfn.EqualFunc[FC],
	fa FA, f func(A) B, g func(B) C) bool {

	return eq(fmapAC(fa, monadfn.Compose(g, f)), fmapBC(fmapAB(fa, f), g))
}

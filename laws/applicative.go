package laws

import (
	"github.com/KasperOmsK/monadfn"
)

// ApplicativeIdentity checks pure id <*> v == v.
func ApplicativeIdentity[A, FA, FF any](
	pure monadfn.PureFunc[func(A) A, FF],
	ap monadfn.ApplyFunc[FA, FF, FA],
	eq monadfn.EqualFunc[FA],
	v FA) bool {

	return eq(ap(pure(monadfn.Id[A]), v), v)
}

// ApplicativeHomomorphism checks pure f <*> pure x == pure (f x).
func ApplicativeHomomorphism[A, B, FA, FF, FB any](
	pureA monadfn.PureFunc[A, FA],
	pureF monadfn.PureFunc[func(A) B, FF],
	pureB monadfn.PureFunc[B, FB],
	ap monadfn.ApplyFunc[FA, FF, FB],
	eq monadfn.EqualFunc[FB],
	f func(A) B, x A) bool {

	return eq(ap(pureF(f), pureA(x)), pureB(f(x)))
}

// ApplicativeInterchange checks u <*> pure y == pure ($ y) <*> u.
// FG is F[func(func(A) B) B].
func ApplicativeInterchange[A, B, FA, FF, FG, FB any](
	pureA monadfn.PureFunc[A, FA],
	pureG monadfn.PureFunc[func(func(A) B) B, FG],
	ap monadfn.ApplyFunc[FA, FF, FB],
	apG monadfn.ApplyFunc[FF, FG, FB],
	eq monadfn.EqualFunc[FB],
	u FF, y A) bool {

	applyY := monadfn.ApplyTo[A, B](y)
	return eq(ap(u, pureA(y)), apG(pureG(applyY), u))
}

// ApplicativeComposition checks
//
//	pure (.) <*> u <*> v <*> w == u <*> (v <*> w)
//
// for u :: F (B -> C), v :: F (A -> B) and w :: F A. FK, FM and FN are the
// partial applications of the wrapped composition operator.
func ApplicativeComposition[A, B, C, FA, FB, FC, FU, FV, FK, FM, FN any](
	pureK monadfn.PureFunc[func(func(B) C) func(func(A) B) func(A) C, FK],
	apU monadfn.ApplyFunc[FU, FK, FM],
	apV monadfn.ApplyFunc[FV, FM, FN],
	apW monadfn.ApplyFunc[FA, FN, FC],
	apVW monadfn.ApplyFunc[FA, FV, FB],
	apUVW monadfn.ApplyFunc[FB, FU, FC],
	eq monadfn.EqualFunc[FC],
	u FU, v FV, w FA) bool {

	compose := func(g func(B) C) func(func(A) B) func(A) C {
		return func(f func(A) B) func(A) C {
			return monadfn.Compose(g, f)
		}
	}
	left := apW(apV(apU(pureK(compose), u), v), w)
	right := apUVW(u, apVW(v, w))
	return eq(left, right)
}

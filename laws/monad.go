package laws

import (
	"github.com/KasperOmsK/monadfn"
)

// MonadLeftIdentity checks return a >>= k == k a.
func MonadLeftIdentity[A, MA, MB any](
	pure monadfn.PureFunc[A, MA],
	bind monadfn.BindFunc[A, MA, MB],
	eq monadfn.EqualFunc[MB],
	a A, k func(A) MB) bool {

	return eq(bind(pure(a), k), k(a))
}

// MonadRightIdentity checks m >>= return == m.
func MonadRightIdentity[A, MA any](
	pure monadfn.PureFunc[A, MA],
	bind monadfn.BindFunc[A, MA, MA],
	eq monadfn.EqualFunc[MA],
	m MA) bool {

	return eq(bind(m, pure), m)
}

// MonadAssociativity checks (m >>= f) >>= g == m >>= (\x -> f x >>= g).
func MonadAssociativity[A, B, MA, MB, MC any](
	bindAB monadfn.BindFunc[A, MA, MB],
	bindBC monadfn.BindFunc[B, MB, MC],
	bindAC monadfn.BindFunc[A, MA, MC],
	eq monadfn.EqualFunc[MC],
	m MA, f func(A) MB, g func(B) MC) bool {

	left := bindBC(bindAB(m, f), g)
	right := bindAC(m, func(a A) MC {
		return bindBC(f(a), g)
	})
	return eq(left, right)
}

// KleisliLeftIdentity checks (return >=> f) a == f a.
func KleisliLeftIdentity[A, MA, MB any](
	pure monadfn.PureFunc[A, MA],
	bind monadfn.BindFunc[A, MA, MB],
	eq monadfn.EqualFunc[MB],
	f func(A) MB, a A) bool {

	return eq(monadfn.ComposeK(bind, pure, f)(a), f(a))
}

// KleisliRightIdentity checks (f >=> return) a == f a.
func KleisliRightIdentity[A, B, MB any](
	pure monadfn.PureFunc[B, MB],
	bind monadfn.BindFunc[B, MB, MB],
	eq monadfn.EqualFunc[MB],
	f func(A) MB, a A) bool {

	return eq(monadfn.ComposeK(bind, f, pure)(a), f(a))
}

// KleisliAssociativity checks ((f >=> g) >=> h) a == (f >=> (g >=> h)) a.
func KleisliAssociativity[A, B, C, MB, MC, MD any](
	bindBC monadfn.BindFunc[B, MB, MC],
	bindCD monadfn.BindFunc[C, MC, MD],
	bindBD monadfn.BindFunc[B, MB, MD],
	eq monadfn.EqualFunc[MD],
	f func(A) MB, g func(B) MC, h func(C) MD, a A) bool {

	left := monadfn.ComposeK(bindCD, monadfn.ComposeK(bindBC, f, g), h)
	right := monadfn.ComposeK(bindBD, f, monadfn.ComposeK(bindCD, g, h))
	return eq(left(a), right(a))
}

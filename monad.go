package monadfn

// A Monad instance only needs to supply Pure and Bind. Everything in this
// file is derived from those two.

// LiftM derives the Functor Map of a monad from Bind and Pure:
//
//	LiftM(bind, pure)(m, f) == bind(m, Compose(pure, f))
func LiftM[A, B, MA, MB any](bind BindFunc[A, MA, MB], pure PureFunc[B, MB]) MapFunc[A, B, MA, MB] {
	return func(ma MA, f func(A) B) MB {
		return bind(ma, func(a A) MB {
			return pure(f(a))
		})
	}
}

// ApM derives the Applicative Apply of a monad from Bind and Pure. The
// wrapped function is bound first, so its effects precede those of ma.
func ApM[A, B, MA, MF, MB any](
	bindF BindFunc[func(A) B, MF, MB],
	bindA BindFunc[A, MA, MB],
	pure PureFunc[B, MB]) ApplyFunc[MA, MF, MB] {

	return func(mf MF, ma MA) MB {
		return bindF(mf, func(f func(A) B) MB {
			return bindA(ma, func(a A) MB {
				return pure(f(a))
			})
		})
	}
}

// Join removes one level of nesting: Join(bind, mma) == bind(mma, Id).
func Join[MA, MMA any](bind BindFunc[MA, MMA, MA], mma MMA) MA {
	return bind(mma, Id[MA])
}

// ComposeK is left-to-right Kleisli composition (>=>):
//
//	ComposeK(bind, f, g)(a) == bind(f(a), g)
func ComposeK[A, B, MB, MC any](bind BindFunc[B, MB, MC], f func(A) MB, g func(B) MC) Kleisli[A, MC] {
	return func(a A) MC {
		return bind(f(a), g)
	}
}

// ComposeBackK is right-to-left Kleisli composition (<=<):
// ComposeBackK(bind, g, f) == ComposeK(bind, f, g).
func ComposeBackK[A, B, MB, MC any](bind BindFunc[B, MB, MC], g func(B) MC, f func(A) MB) Kleisli[A, MC] {
	return ComposeK(bind, f, g)
}

// FoldM folds xs from the left, threading the accumulator through the monad.
// It stops binding as soon as the monad short-circuits.
func FoldM[A, B, MB any](
	bind BindFunc[B, MB, MB],
	pure PureFunc[B, MB],
	f func(B, A) MB,
	init B, xs []A) MB {

	acc := pure(init)
	for _, x := range xs {
		acc = bind(acc, func(b B) MB {
			return f(b, x)
		})
	}
	return acc
}

// Traverse maps each element of xs to a monadic value and collects the
// results in order. MS is the wrapped slice type M[[]B].
func Traverse[A, B, MB, MS any](
	bindB BindFunc[B, MB, MS],
	bindS BindFunc[[]B, MS, MS],
	pure PureFunc[[]B, MS],
	f func(A) MB,
	xs []A) MS {

	acc := pure(make([]B, 0, len(xs)))
	for _, x := range xs {
		acc = bindS(acc, func(bs []B) MS {
			return bindB(f(x), func(b B) MS {
				out := make([]B, len(bs), len(bs)+1)
				copy(out, bs)
				return pure(append(out, b))
			})
		})
	}
	return acc
}

// Sequence turns a slice of monadic values into a monadic slice.
func Sequence[A, MA, MS any](
	bindA BindFunc[A, MA, MS],
	bindS BindFunc[[]A, MS, MS],
	pure PureFunc[[]A, MS],
	ms []MA) MS {

	return Traverse(bindA, bindS, pure, Id[MA], ms)
}

// Guard is Pure(U) when cond holds and zero otherwise. Bound in front of a
// computation it prunes the branches that fail cond.
func Guard[MU any](zero EmptyFunc[MU], pure PureFunc[Unit, MU], cond bool) MU {
	if cond {
		return pure(U)
	}
	return zero()
}

package monadfn

// LiftA2 promotes a binary function to one over wrapped values, using only
// the Functor and Applicative primitives of the instance:
//
//	LiftA2(fmap, ap, f)(fa, fb) == ap(fmap(fa, Curry(f)), fb)
//
// FG is the intermediate wrapped type F[func(B) C]. Effects of fa happen
// before effects of fb.
func LiftA2[A, B, C, FA, FB, FC, FG any](
	fmap MapFunc[A, func(B) C, FA, FG],
	ap ApplyFunc[FB, FG, FC],
	f func(A, B) C) func(FA, FB) FC {

	curried := Curry(f)
	return func(fa FA, fb FB) FC {
		return ap(fmap(fa, curried), fb)
	}
}

// LiftA3 is the ternary LiftA2. Effects run left to right.
func LiftA3[A, B, C, D, FA, FB, FC, FD, FG, FH any](
	fmap MapFunc[A, func(B) func(C) D, FA, FG],
	ap1 ApplyFunc[FB, FG, FH],
	ap2 ApplyFunc[FC, FH, FD],
	f func(A, B, C) D) func(FA, FB, FC) FD {

	curried := func(a A) func(B) func(C) D {
		return func(b B) func(C) D {
			return func(c C) D {
				return f(a, b, c)
			}
		}
	}
	return func(fa FA, fb FB, fc FC) FD {
		return ap2(ap1(fmap(fa, curried), fb), fc)
	}
}

// ReplaceBy keeps the structure of fa but replaces every value with b (<$).
func ReplaceBy[A, B, FA, FB any](fmap MapFunc[A, B, FA, FB], b B, fa FA) FB {
	return fmap(fa, Const[A](b))
}

// Then sequences fa and fb, keeping the value of fb (*>).
// The effects of both operands are kept, fa's first.
func Then[A, B, FA, FB, FG any](
	fmap MapFunc[A, func(B) B, FA, FG],
	ap ApplyFunc[FB, FG, FB],
	fa FA, fb FB) FB {

	return LiftA2(fmap, ap, func(_ A, b B) B { return b })(fa, fb)
}

// Skip sequences fa and fb, keeping the value of fa (<*).
// The effects of both operands are kept, fa's first; only fb's value is
// discarded.
func Skip[A, B, FA, FB, FG any](
	fmap MapFunc[A, func(B) A, FA, FG],
	ap ApplyFunc[FB, FG, FA],
	fa FA, fb FB) FA {

	return LiftA2(fmap, ap, func(a A, _ B) A { return a })(fa, fb)
}

// Zip pairs the values of two independently computed wrapped values.
func Zip[A, B, FA, FB, FP, FG any](
	fmap MapFunc[A, func(B) Pair[A, B], FA, FG],
	ap ApplyFunc[FB, FG, FP],
	fa FA, fb FB) FP {

	return LiftA2(fmap, ap, MakePair[A, B])(fa, fb)
}

// Zip3 is the ternary Zip.
func Zip3[A, B, C, FA, FB, FC, FT, FG, FH any](
	fmap MapFunc[A, func(B) func(C) Triple[A, B, C], FA, FG],
	ap1 ApplyFunc[FB, FG, FH],
	ap2 ApplyFunc[FC, FH, FT],
	fa FA, fb FB, fc FC) FT {

	return LiftA3(fmap, ap1, ap2, MakeTriple[A, B, C])(fa, fb, fc)
}

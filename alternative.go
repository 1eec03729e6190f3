package monadfn

// Asum folds fas with the Alternative choice, starting from Empty.
func Asum[FA any](alt Alternative[FA], fas ...FA) FA {
	acc := alt.Empty()
	for _, fa := range fas {
		acc = alt.Append(acc, fa)
	}
	return acc
}

// Optional is v <|> pure nothing, with v's result wrapped by just:
//
//	optional v = Just <$> v <|> pure Nothing
//
// It cannot fail on its own. just and nothing stand for the constructors of
// an optional type, so any representation of a missing value can be used.
func Optional[A, M, FA, FM any](
	fmap MapFunc[A, M, FA, FM],
	pure PureFunc[M, FM],
	alt Alternative[FM],
	just func(A) M,
	nothing M,
	v FA) FM {

	return alt.Append(fmap(v, just), pure(nothing))
}

// SomeN is the bounded form of one-or-more repetition:
//
//	some v = (:) <$> v <*> many v
//	many v = some v <|> pure []
//
// The unbounded fixed point diverges for any instance where v keeps
// succeeding without consuming anything (a pure Option, a non-empty list),
// so SomeN unrolls it at most n times, iteratively. SomeN with n <= 0 is
// alt.Empty(): one-or-more cannot succeed without budget.
//
// FL is the wrapped slice type F[[]A] and FG the intermediate F[func([]A) []A].
// Instances whose repetition is guaranteed to stop (e.g. a parser that
// consumes input) offer their own unbounded Some and Many.
func SomeN[A, FA, FL, FG any](
	fmap MapFunc[A, func([]A) []A, FA, FG],
	ap ApplyFunc[FL, FG, FL],
	pure PureFunc[[]A, FL],
	alt Alternative[FL],
	v FA, n int) FL {

	if n <= 0 {
		return alt.Empty()
	}

	cons := LiftA2(fmap, ap, prepend[A])
	many := pure([]A{})
	for i := 1; i < n; i++ {
		many = alt.Append(cons(v, many), pure([]A{}))
	}
	return cons(v, many)
}

// ManyN is the bounded form of zero-or-more repetition:
// ManyN(v, n) == alt.Append(SomeN(v, n), pure([]A{})).
func ManyN[A, FA, FL, FG any](
	fmap MapFunc[A, func([]A) []A, FA, FG],
	ap ApplyFunc[FL, FG, FL],
	pure PureFunc[[]A, FL],
	alt Alternative[FL],
	v FA, n int) FL {

	return alt.Append(SomeN(fmap, ap, pure, alt, v, n), pure([]A{}))
}

func prepend[A any](a A, as []A) []A {
	out := make([]A, 0, len(as)+1)
	out = append(out, a)
	return append(out, as...)
}

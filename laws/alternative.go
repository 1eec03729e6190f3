package laws

import (
	"github.com/KasperOmsK/monadfn"
)

// AlternativeLeftIdentity checks empty <|> x == x.
func AlternativeLeftIdentity[FA any](alt monadfn.Alternative[FA], eq monadfn.EqualFunc[FA], x FA) bool {
	return eq(alt.Append(alt.Empty(), x), x)
}

// AlternativeRightIdentity checks x <|> empty == x.
func AlternativeRightIdentity[FA any](alt monadfn.Alternative[FA], eq monadfn.EqualFunc[FA], x FA) bool {
	return eq(alt.Append(x, alt.Empty()), x)
}

// AlternativeAssociativity checks (x <|> y) <|> z == x <|> (y <|> z).
func AlternativeAssociativity[FA any](alt monadfn.Alternative[FA], eq monadfn.EqualFunc[FA], x, y, z FA) bool {
	return eq(alt.Append(alt.Append(x, y), z), alt.Append(x, alt.Append(y, z)))
}

// AlternativeLeftCatch checks pure a <|> x == pure a. It holds for
// first-success choice (option, parser) and fails for choice that keeps
// every alternative (seq).
func AlternativeLeftCatch[A, FA any](
	pure monadfn.PureFunc[A, FA],
	alt monadfn.Alternative[FA],
	eq monadfn.EqualFunc[FA],
	a A, x FA) bool {

	return eq(alt.Append(pure(a), x), pure(a))
}

// MonadPlusLeftZero checks mzero >>= k == mzero.
func MonadPlusLeftZero[A, MA, MB any](
	zeroA monadfn.EmptyFunc[MA],
	zeroB monadfn.EmptyFunc[MB],
	bind monadfn.BindFunc[A, MA, MB],
	eq monadfn.EqualFunc[MB],
	k func(A) MB) bool {

	return eq(bind(zeroA(), k), zeroB())
}

// MonadPlusRightZero checks m >> mzero == mzero.
func MonadPlusRightZero[A, MA, MB any](
	zeroB monadfn.EmptyFunc[MB],
	bind monadfn.BindFunc[A, MA, MB],
	eq monadfn.EqualFunc[MB],
	m MA) bool {

	return eq(bind(m, func(A) MB { return zeroB() }), zeroB())
}

// MonadPlusLeftDistribution checks
//
//	(x `mplus` y) >>= k == (x >>= k) `mplus` (y >>= k)
//
// It holds for seq, not for instances satisfying AlternativeLeftCatch.
func MonadPlusLeftDistribution[A, MA, MB any](
	plusA monadfn.AppendFunc[MA],
	plusB monadfn.AppendFunc[MB],
	bind monadfn.BindFunc[A, MA, MB],
	eq monadfn.EqualFunc[MB],
	x, y MA, k func(A) MB) bool {

	return eq(bind(plusA(x, y), k), plusB(bind(x, k), bind(y, k)))
}

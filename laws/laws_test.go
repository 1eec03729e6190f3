package laws_test

import (
	"strconv"
	"testing"

	"github.com/KasperOmsK/monadfn"
	"github.com/KasperOmsK/monadfn/identity"
	"github.com/KasperOmsK/monadfn/laws"
	"github.com/KasperOmsK/monadfn/option"
	"github.com/KasperOmsK/monadfn/seq"
	"github.com/KasperOmsK/monadfn/store"
	"github.com/stretchr/testify/require"
)

func double(x int) int { return x * 2 }

func half(x int) option.Option[int] {
	if x%2 != 0 {
		return option.None[int]()
	}
	return option.Some(x / 2)
}

func positive(x int) option.Option[int] {
	if x <= 0 {
		return option.None[int]()
	}
	return option.Some(x)
}

func optionAlt() monadfn.Alternative[option.Option[int]] {
	return monadfn.Alternative[option.Option[int]]{Empty: option.Empty[int], Append: option.Append[int]}
}

func seqAlt() monadfn.Alternative[seq.Seq[int]] {
	return monadfn.Alternative[seq.Seq[int]]{Empty: seq.Empty[int], Append: seq.Append[int]}
}

func TestFunctorLaws(t *testing.T) {
	for _, o := range []option.Option[int]{option.Some(3), option.None[int]()} {
		require.True(t, laws.FunctorIdentity(option.Map[int, int], option.Equal[int], o))
		require.True(t, laws.FunctorComposition(
			option.Map[int, int], option.Map[int, string], option.Map[int, string],
			option.Equal[string], o, double, strconv.Itoa))
	}
}

func TestFunctorIdentity_DetectsBrokenMap(t *testing.T) {
	dropping := func(o option.Option[int], f func(int) int) option.Option[int] {
		return option.None[int]()
	}

	require.False(t, laws.FunctorIdentity(dropping, option.Equal[int], option.Some(1)))
}

func TestApplicativeLaws(t *testing.T) {
	u := option.Some(double)
	v := option.Some(func(x int) int { return x + 1 })
	w := option.Some(5)

	require.True(t, laws.ApplicativeIdentity(option.Pure[func(int) int], option.Apply[int, int], option.Equal[int], w))
	require.True(t, laws.ApplicativeHomomorphism(
		option.Pure[int], option.Pure[func(int) string], option.Pure[string],
		option.Apply[int, string], option.Equal[string], strconv.Itoa, 7))
	require.True(t, laws.ApplicativeInterchange(
		option.Pure[int], option.Pure[func(func(int) int) int],
		option.Apply[int, int], option.Apply[func(int) int, int],
		option.Equal[int], u, 4))

	type fn = func(int) int
	require.True(t, laws.ApplicativeComposition(
		option.Pure[func(fn) func(fn) fn],
		option.Apply[fn, func(fn) fn],
		option.Apply[fn, fn],
		option.Apply[int, int],
		option.Apply[int, int],
		option.Apply[int, int],
		option.Equal[int], u, v, w))
}

func TestMonadLaws(t *testing.T) {
	for _, m := range []option.Option[int]{option.Some(8), option.Some(3), option.None[int]()} {
		require.True(t, laws.MonadRightIdentity(option.Pure[int], option.Bind[int, int], option.Equal[int], m))
		require.True(t, laws.MonadAssociativity(
			option.Bind[int, int], option.Bind[int, int], option.Bind[int, int],
			option.Equal[int], m, half, positive))
	}
	require.True(t, laws.MonadLeftIdentity(option.Pure[int], option.Bind[int, int], option.Equal[int], 6, half))
}

func TestKleisliLaws(t *testing.T) {
	for _, a := range []int{-4, 0, 3, 8} {
		require.True(t, laws.KleisliLeftIdentity(option.Pure[int], option.Bind[int, int], option.Equal[int], half, a))
		require.True(t, laws.KleisliRightIdentity(option.Pure[int], option.Bind[int, int], option.Equal[int], half, a))
		require.True(t, laws.KleisliAssociativity(
			option.Bind[int, int], option.Bind[int, int], option.Bind[int, int],
			option.Equal[int], half, positive, half, a))
	}
}

func TestAlternativeLaws(t *testing.T) {
	xs := []option.Option[int]{option.Some(1), option.None[int](), option.Some(2)}
	for _, x := range xs {
		require.True(t, laws.AlternativeLeftIdentity(optionAlt(), option.Equal[int], x))
		require.True(t, laws.AlternativeRightIdentity(optionAlt(), option.Equal[int], x))
		require.True(t, laws.AlternativeAssociativity(optionAlt(), option.Equal[int], x, xs[1], xs[2]))
		require.True(t, laws.AlternativeLeftCatch(option.Pure[int], optionAlt(), option.Equal[int], 9, x))
	}
}

func TestMonadPlusLaws(t *testing.T) {
	require.True(t, laws.MonadPlusLeftZero(option.Zero[int], option.Zero[int], option.Bind[int, int], option.Equal[int], half))
	require.True(t, laws.MonadPlusRightZero(option.Zero[int], option.Bind[int, int], option.Equal[int], option.Some(1)))

	k := func(x int) seq.Seq[int] { return seq.Of(x, x*10) }
	require.True(t, laws.MonadPlusLeftDistribution(
		seq.Plus[int], seq.Plus[int], seq.Bind[int, int], seq.Equal[int],
		seq.Of(1, 2), seq.Of(3), k))
}

func TestLeftCatchAndLeftDistributionDisagree(t *testing.T) {
	// option catches on the left, so distribution fails once the
	// continuation rejects the left branch.
	require.False(t, laws.MonadPlusLeftDistribution(
		option.Plus[int], option.Plus[int], option.Bind[int, int], option.Equal[int],
		option.Some(3), option.Some(4), half))

	// seq keeps both branches, so left catch fails.
	require.False(t, laws.AlternativeLeftCatch(seq.Pure[int], seqAlt(), seq.Equal[int], 1, seq.Of(2)))
}

func TestComonadLaws(t *testing.T) {
	w := store.New(func(i int) int { return i * i }, 3)
	eq := store.EqualAt[int, int](-2, 0, 3, 5)
	sum := func(x store.Store[int, int]) int {
		return store.Extract(x) + store.PeekF(x, func(i int) int { return i + 1 })
	}
	diff := func(x store.Store[int, int]) int {
		return store.Extract(x) - store.PeekF(x, func(i int) int { return i - 1 })
	}

	require.True(t, laws.ComonadLeftIdentity(store.Extend[int, int, int], store.Extract[int, int], eq, w))
	require.True(t, laws.ComonadRightIdentity(
		store.Extend[int, int, int], store.Extract[int, int],
		func(a, b int) bool { return a == b }, w, sum))
	require.True(t, laws.ComonadAssociativity(
		store.Extend[int, int, int], store.Extend[int, int, int], store.Extend[int, int, int],
		eq, w, sum, diff))

	i := identity.Pure(4)
	require.True(t, laws.ComonadLeftIdentity(identity.Extend[int, int], identity.Extract[int], identity.Equal[int], i))
}

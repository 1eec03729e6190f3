package suite

import (
	"github.com/KasperOmsK/monadfn"
	"github.com/KasperOmsK/monadfn/laws"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// instance binds the primitives of one instance at element type int. F is
// F[int] and FF is F[func(int) int]; FG, FK and FM are the wrapped helper
// functions the applicative interchange and composition laws apply. The
// generators yield, in order, monadfn.EqualFunc[F], F, FF, func(int) F and
// func(F) int. Nil fields switch the corresponding laws off.
type instance[F, FF, FG, FK, FM any] struct {
	// eq is drawn per sample: parsers compare on sampled inputs.
	eq    gopter.Gen
	gen   gopter.Gen
	genFF gopter.Gen
	genK  gopter.Gen

	fmap monadfn.MapFunc[int, int, F, F]

	pure  monadfn.PureFunc[int, F]
	pureF monadfn.PureFunc[fn, FF]
	pureG monadfn.PureFunc[func(fn) int, FG]
	pureK monadfn.PureFunc[func(fn) func(fn) fn, FK]
	ap    monadfn.ApplyFunc[F, FF, F]
	apG   monadfn.ApplyFunc[FF, FG, F]
	apK   monadfn.ApplyFunc[FF, FK, FM]
	apM   monadfn.ApplyFunc[FF, FM, FF]

	bind monadfn.BindFunc[int, F, F]

	alt *monadfn.Alternative[F]
	// leftCatch selects AlternativeLeftCatch, otherwise
	// MonadPlusLeftDistribution is checked.
	leftCatch bool

	extend  monadfn.ExtendFunc[int, F, F]
	extract monadfn.ExtractFunc[int, F]
	genW    gopter.Gen
}

func (in instance[F, FF, FG, FK, FM]) suite(name string) laws.Suite {
	s := laws.Suite{Name: name}
	add := func(law string, p gopter.Prop) {
		s.Properties = append(s.Properties, laws.Property{Law: law, Prop: p})
	}

	if in.fmap != nil {
		add("functor.identity", prop.ForAll(func(eq monadfn.EqualFunc[F], x F) bool {
			return laws.FunctorIdentity(in.fmap, eq, x)
		}, in.eq, in.gen))
		add("functor.composition", prop.ForAll(func(eq monadfn.EqualFunc[F], x F, f, g fn) bool {
			return laws.FunctorComposition(in.fmap, in.fmap, in.fmap, eq, x, f, g)
		}, in.eq, in.gen, genFunc(), genFunc()))
	}

	if in.ap != nil {
		add("applicative.identity", prop.ForAll(func(eq monadfn.EqualFunc[F], x F) bool {
			return laws.ApplicativeIdentity(in.pureF, in.ap, eq, x)
		}, in.eq, in.gen))
		add("applicative.homomorphism", prop.ForAll(func(eq monadfn.EqualFunc[F], f fn, a int) bool {
			return laws.ApplicativeHomomorphism(in.pure, in.pureF, in.pure, in.ap, eq, f, a)
		}, in.eq, genFunc(), genInt()))
		add("applicative.interchange", prop.ForAll(func(eq monadfn.EqualFunc[F], u FF, y int) bool {
			return laws.ApplicativeInterchange(in.pure, in.pureG, in.ap, in.apG, eq, u, y)
		}, in.eq, in.genFF, genInt()))
		add("applicative.composition", prop.ForAll(func(eq monadfn.EqualFunc[F], u, v FF, x F) bool {
			return laws.ApplicativeComposition(in.pureK, in.apK, in.apM, in.ap, in.ap, in.ap, eq, u, v, x)
		}, in.eq, in.genFF, in.genFF, in.gen))
	}

	if in.bind != nil {
		add("monad.left_identity", prop.ForAll(func(eq monadfn.EqualFunc[F], a int, f func(int) F) bool {
			return laws.MonadLeftIdentity(in.pure, in.bind, eq, a, f)
		}, in.eq, genInt(), in.genK))
		add("monad.right_identity", prop.ForAll(func(eq monadfn.EqualFunc[F], m F) bool {
			return laws.MonadRightIdentity(in.pure, in.bind, eq, m)
		}, in.eq, in.gen))
		add("monad.associativity", prop.ForAll(func(eq monadfn.EqualFunc[F], m F, f, g func(int) F) bool {
			return laws.MonadAssociativity(in.bind, in.bind, in.bind, eq, m, f, g)
		}, in.eq, in.gen, in.genK, in.genK))
		add("kleisli.left_identity", prop.ForAll(func(eq monadfn.EqualFunc[F], f func(int) F, a int) bool {
			return laws.KleisliLeftIdentity(in.pure, in.bind, eq, f, a)
		}, in.eq, in.genK, genInt()))
		add("kleisli.right_identity", prop.ForAll(func(eq monadfn.EqualFunc[F], f func(int) F, a int) bool {
			return laws.KleisliRightIdentity(in.pure, in.bind, eq, f, a)
		}, in.eq, in.genK, genInt()))
		add("kleisli.associativity", prop.ForAll(func(eq monadfn.EqualFunc[F], f, g, h func(int) F, a int) bool {
			return laws.KleisliAssociativity(in.bind, in.bind, in.bind, eq, f, g, h, a)
		}, in.eq, in.genK, in.genK, in.genK, genInt()))
	}

	if alt := in.alt; alt != nil {
		add("alternative.left_identity", prop.ForAll(func(eq monadfn.EqualFunc[F], x F) bool {
			return laws.AlternativeLeftIdentity(*alt, eq, x)
		}, in.eq, in.gen))
		add("alternative.right_identity", prop.ForAll(func(eq monadfn.EqualFunc[F], x F) bool {
			return laws.AlternativeRightIdentity(*alt, eq, x)
		}, in.eq, in.gen))
		add("alternative.associativity", prop.ForAll(func(eq monadfn.EqualFunc[F], x, y, z F) bool {
			return laws.AlternativeAssociativity(*alt, eq, x, y, z)
		}, in.eq, in.gen, in.gen, in.gen))
		if in.leftCatch {
			add("alternative.left_catch", prop.ForAll(func(eq monadfn.EqualFunc[F], a int, x F) bool {
				return laws.AlternativeLeftCatch(in.pure, *alt, eq, a, x)
			}, in.eq, genInt(), in.gen))
		}
		if in.bind != nil {
			add("monadplus.left_zero", prop.ForAll(func(eq monadfn.EqualFunc[F], f func(int) F) bool {
				return laws.MonadPlusLeftZero(alt.Empty, alt.Empty, in.bind, eq, f)
			}, in.eq, in.genK))
			add("monadplus.right_zero", prop.ForAll(func(eq monadfn.EqualFunc[F], m F) bool {
				return laws.MonadPlusRightZero(alt.Empty, in.bind, eq, m)
			}, in.eq, in.gen))
			if !in.leftCatch {
				add("monadplus.left_distribution", prop.ForAll(func(eq monadfn.EqualFunc[F], x, y F, f func(int) F) bool {
					return laws.MonadPlusLeftDistribution(alt.Append, alt.Append, in.bind, eq, x, y, f)
				}, in.eq, in.gen, in.gen, in.genK))
			}
		}
	}

	if in.extend != nil {
		same := func(x, y int) bool { return x == y }
		add("comonad.left_identity", prop.ForAll(func(eq monadfn.EqualFunc[F], x F) bool {
			return laws.ComonadLeftIdentity(in.extend, in.extract, eq, x)
		}, in.eq, in.gen))
		add("comonad.right_identity", prop.ForAll(func(x F, f func(F) int) bool {
			return laws.ComonadRightIdentity(in.extend, in.extract, same, x, f)
		}, in.gen, in.genW))
		add("comonad.associativity", prop.ForAll(func(eq monadfn.EqualFunc[F], x F, f, g func(F) int) bool {
			return laws.ComonadAssociativity(in.extend, in.extend, in.extend, eq, x, f, g)
		}, in.eq, in.gen, in.genW, in.genW))
	}

	return s
}

// constEq is the eq of instances whose equality needs no sampling.
func constEq[F any](eq monadfn.EqualFunc[F]) gopter.Gen {
	return gen.Const(eq)
}

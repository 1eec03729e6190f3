package monadfn

// Go cannot abstract over a type constructor, so each class is described by
// the shape of its primitive operations. FA, FB, MA, WA... name the concrete
// wrapped types (e.g. option.Option[int]) and A, B their element types.
// Instance packages supply functions with these shapes; the derived
// combinators in this package and the predicates in package laws accept them.
type (

	// PureFunc lifts a plain value into the wrapped context (Haskell pure/return).
	PureFunc[A, FA any] func(a A) FA

	// MapFunc is the Functor primitive (fmap, <$>). It must preserve
	// structure: mapping Id is a no-op, and mapping f then g equals mapping
	// Compose(g, f).
	MapFunc[A, B, FA, FB any] func(fa FA, f func(A) B) FB

	// ApplyFunc is the Applicative primitive (<*>): FF is the wrapped
	// function type F[func(A) B] for FA = F[A] and FB = F[B]. The effects of
	// ff happen before those of fa.
	ApplyFunc[FA, FF, FB any] func(ff FF, fa FA) FB

	// BindFunc is the Monad primitive (>>=). The continuation k may depend on
	// the value extracted from ma.
	BindFunc[A, MA, MB any] func(ma MA, k func(A) MB) MB

	// EmptyFunc is the identity of an AppendFunc (Alternative empty,
	// MonadPlus mzero).
	EmptyFunc[FA any] func() FA

	// AppendFunc is an associative choice (Alternative <|>, MonadPlus mplus).
	AppendFunc[FA any] func(x, y FA) FA

	// ExtractFunc is the Comonad counit.
	ExtractFunc[A, WA any] func(wa WA) A

	// ExtendFunc is the Comonad co-sequencing primitive (extend, =>>).
	ExtendFunc[B, WA, WB any] func(wa WA, f func(WA) B) WB

	// EqualFunc decides whether two wrapped values are observably equal.
	EqualFunc[T any] func(x, y T) bool

	// Kleisli is an arrow from a plain value to a wrapped one.
	Kleisli[A, MB any] func(a A) MB
)

// Alternative bundles the monoid on F used by Asum, SomeN and ManyN.
type Alternative[FA any] struct {
	Empty  EmptyFunc[FA]
	Append AppendFunc[FA]
}

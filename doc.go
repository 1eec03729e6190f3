/*
Package monadfn provides the Functor, Applicative, Alternative, Monad,
MonadPlus and Comonad vocabulary for Go generics, together with the
combinators derived from it.

Go has no higher-kinded types, so a class cannot be expressed as an
interface over a type constructor. Instead each instance lives in its own
package (option, seq, result, identity, writer, parser, store) and exposes
its primitives as plain generic functions with a common shape:

	option.Pure[int]        // PureFunc[int, option.Option[int]]
	option.Map[int, string] // MapFunc[int, string, option.Option[int], option.Option[string]]
	option.Bind[int, int]   // BindFunc[int, option.Option[int], option.Option[int]]

The derived combinators in this package take those primitives as
arguments, so one definition of LiftA2, Then, Traverse or SomeN serves
every instance:

	add := monadfn.LiftA2(option.Map[int, func(int) int], option.Apply[int, int],
		func(a, b int) int { return a + b })

	add(option.Some(2), option.Some(3)) // Some(5)
	add(option.Some(2), option.None[int]()) // None

Instance packages also re-export the common derived combinators already
bound to their own primitives, e.g. option.LiftA2 or writer.Then, so most
code never touches the dictionaries directly.

Package laws holds one predicate per class law and a seeded runner to
check them; the lawcheck command runs the law suites of every instance
in this module.

# Effects

Then (*>) and Skip (<*) keep the effects of both operands, left operand
first; they differ only in which value they keep. The writer package makes
this observable in its log.

# Repetition

Some and Many (one-or-more and zero-or-more) are fixed points that only
terminate for instances where repetition eventually fails, such as a
parser consuming its input. SomeN and ManyN are the bounded forms usable
with any instance; option additionally offers lazy SomeSeq and ManySeq.
*/
package monadfn

package suite

import (
	"reflect"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
)

type fn = func(int) int

// mapGen is Gen.Map with the result type fixed at compile time.
func mapGen[A, B any](g gopter.Gen, f func(A) B) gopter.Gen {
	return g.Map(f)
}

// combine maps the values of two generators.
func combine[A, B, C any](ga, gb gopter.Gen, f func(A, B) C) gopter.Gen {
	return gopter.CombineGens(ga, gb).Map(func(vs []interface{}) C {
		return f(vs[0].(A), vs[1].(B))
	})
}

// sliceUpTo draws slices of at most bound elements of type T.
func sliceUpTo[T any](bound int, elem gopter.Gen) gopter.Gen {
	return gen.IntRange(0, bound).FlatMap(func(n interface{}) gopter.Gen {
		return gen.SliceOfN(n.(int), elem, reflect.TypeFor[T]())
	}, reflect.TypeFor[[]T]())
}

func genInt() gopter.Gen {
	return gen.IntRange(-20, 20)
}

// genFunc draws an affine function. Small coefficients keep compositions
// readable in failure logs.
func genFunc() gopter.Gen {
	return combine(gen.IntRange(-3, 3), gen.IntRange(-5, 5), func(a, b int) fn {
		return func(x int) int {
			return a*x + b
		}
	})
}

func genInts(bound int) gopter.Gen {
	return sliceUpTo[int](bound, genInt())
}

func genFuncs(bound int) gopter.Gen {
	return sliceUpTo[fn](bound, genFunc())
}

func genWord() gopter.Gen {
	return gen.OneConstOf("open", "read", "seek", "close", "sync")
}

func genWords(bound int) gopter.Gen {
	return sliceUpTo[string](bound, genWord())
}

// genInput draws a parser input over a small alphabet so that generated
// parsers match it often.
func genInput(bound int) gopter.Gen {
	return mapGen(sliceUpTo[rune](bound, gen.OneConstOf('a', 'b', '1', '2')), func(rs []rune) string {
		return string(rs)
	})
}

// maybe draws a present value three times out of four.
func maybe[T, F any](value gopter.Gen, some func(T) F, none func() F) gopter.Gen {
	return combine(gen.IntRange(0, 3), value, func(k int, v T) F {
		if k == 0 {
			return none()
		}
		return some(v)
	})
}

// mod is the non-negative remainder.
func mod(x, m int) int {
	return ((x % m) + m) % m
}

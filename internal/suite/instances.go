package suite

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"

	"github.com/KasperOmsK/monadfn"
	"github.com/KasperOmsK/monadfn/identity"
	"github.com/KasperOmsK/monadfn/laws"
	"github.com/KasperOmsK/monadfn/option"
	"github.com/KasperOmsK/monadfn/parser"
	"github.com/KasperOmsK/monadfn/result"
	"github.com/KasperOmsK/monadfn/seq"
	"github.com/KasperOmsK/monadfn/store"
	"github.com/KasperOmsK/monadfn/writer"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
)

func optionSuite(int) laws.Suite {
	return instance[option.Option[int], option.Option[fn], option.Option[func(fn) int],
		option.Option[func(fn) func(fn) fn], option.Option[func(fn) fn]]{
		eq:    constEq[option.Option[int]](option.Equal[int]),
		gen:   maybe(genInt(), option.Some[int], option.None[int]),
		genFF: maybe(genFunc(), option.Some[fn], option.None[fn]),
		genK: combine(genFunc(), gen.IntRange(2, 4), func(f fn, m int) func(int) option.Option[int] {
			return func(x int) option.Option[int] {
				y := f(x)
				return option.FromOk(y, mod(y, m) != 0)
			}
		}),
		fmap:  option.Map[int, int],
		pure:  option.Pure[int],
		pureF: option.Pure[fn],
		pureG: option.Pure[func(fn) int],
		pureK: option.Pure[func(fn) func(fn) fn],
		ap:    option.Apply[int, int],
		apG:   option.Apply[fn, int],
		apK:   option.Apply[fn, func(fn) fn],
		apM:   option.Apply[fn, fn],
		bind:  option.Bind[int, int],
		alt: &monadfn.Alternative[option.Option[int]]{
			Empty:  option.Empty[int],
			Append: option.Append[int],
		},
		leftCatch: true,
	}.suite("option")
}

func seqSuite(bound int) laws.Suite {
	return instance[seq.Seq[int], seq.Seq[fn], seq.Seq[func(fn) int],
		seq.Seq[func(fn) func(fn) fn], seq.Seq[func(fn) fn]]{
		eq:    constEq[seq.Seq[int]](seq.Equal[int]),
		gen:   mapGen(genInts(bound), seq.FromSlice[int]),
		genFF: mapGen(genFuncs(bound), seq.FromSlice[fn]),
		genK: combine(genFunc(), genFunc(), func(f, g fn) func(int) seq.Seq[int] {
			return func(x int) seq.Seq[int] {
				return seq.Take(seq.Of(f(x), g(x), x), mod(x, 4))
			}
		}),
		fmap:  seq.Map[int, int],
		pure:  seq.Pure[int],
		pureF: seq.Pure[fn],
		pureG: seq.Pure[func(fn) int],
		pureK: seq.Pure[func(fn) func(fn) fn],
		ap:    seq.Apply[int, int],
		apG:   seq.Apply[fn, int],
		apK:   seq.Apply[fn, func(fn) fn],
		apM:   seq.Apply[fn, fn],
		bind:  seq.Bind[int, int],
		alt: &monadfn.Alternative[seq.Seq[int]]{
			Empty:  seq.Empty[int],
			Append: seq.Append[int],
		},
	}.suite("seq")
}

// maybeErr draws a success three times out of four.
func maybeErr[T any](value, genErr gopter.Gen) gopter.Gen {
	return gopter.CombineGens(gen.IntRange(0, 3), value, genErr).Map(func(vs []interface{}) result.Result[T] {
		if vs[0].(int) == 0 {
			return result.Err[T](vs[2].(error))
		}
		return result.Ok(vs[1].(T))
	})
}

func resultSuite(int) laws.Suite {
	// Three distinct messages keep error accumulation observable.
	genErr := mapGen(gen.IntRange(0, 2), func(n int) error {
		return fmt.Errorf("e%d", n)
	})
	return instance[result.Result[int], result.Result[fn], result.Result[func(fn) int],
		result.Result[func(fn) func(fn) fn], result.Result[func(fn) fn]]{
		eq:    constEq[result.Result[int]](result.Equal[int]),
		gen:   maybeErr[int](genInt(), genErr),
		genFF: maybeErr[fn](genFunc(), genErr),
		genK: combine(genFunc(), gen.IntRange(2, 4), func(f fn, m int) func(int) result.Result[int] {
			return func(x int) result.Result[int] {
				y := f(x)
				if mod(y, m) == 0 {
					return result.Err[int](errors.New("rejected " + strconv.Itoa(x)))
				}
				return result.Ok(y)
			}
		}),
		fmap:  result.Map[int, int],
		pure:  result.Pure[int],
		pureF: result.Pure[fn],
		pureG: result.Pure[func(fn) int],
		pureK: result.Pure[func(fn) func(fn) fn],
		ap:    result.Apply[int, int],
		apG:   result.Apply[fn, int],
		apK:   result.Apply[fn, func(fn) fn],
		apM:   result.Apply[fn, fn],
		bind:  result.Bind[int, int],
	}.suite("result")
}
func identitySuite(int) laws.Suite {
	return instance[identity.Identity[int], identity.Identity[fn], identity.Identity[func(fn) int],
		identity.Identity[func(fn) func(fn) fn], identity.Identity[func(fn) fn]]{
		eq:    constEq[identity.Identity[int]](identity.Equal[int]),
		gen:   mapGen(genInt(), identity.Pure[int]),
		genFF: mapGen(genFunc(), identity.Pure[fn]),
		genK: mapGen(genFunc(), func(f fn) func(int) identity.Identity[int] {
			return monadfn.Pipe(f, identity.Pure[int])
		}),
		fmap:    identity.Map[int, int],
		pure:    identity.Pure[int],
		pureF:   identity.Pure[fn],
		pureG:   identity.Pure[func(fn) int],
		pureK:   identity.Pure[func(fn) func(fn) fn],
		ap:      identity.Apply[int, int],
		apG:     identity.Apply[fn, int],
		apK:     identity.Apply[fn, func(fn) fn],
		apM:     identity.Apply[fn, fn],
		bind:    identity.Bind[int, int],
		extend:  identity.Extend[int, int],
		extract: identity.Extract[int],
		genW: mapGen(genFunc(), func(f fn) func(identity.Identity[int]) int {
			return monadfn.Pipe(identity.Extract[int], f)
		}),
	}.suite("identity")
}

func writerSuite(bound int) laws.Suite {
	return instance[writer.Writer[string, int], writer.Writer[string, fn], writer.Writer[string, func(fn) int],
		writer.Writer[string, func(fn) func(fn) fn], writer.Writer[string, func(fn) fn]]{
		eq: constEq[writer.Writer[string, int]](writer.Equal[string, int]),
		gen: combine(genInt(), genWords(bound), func(v int, log []string) writer.Writer[string, int] {
			return writer.New(v, log...)
		}),
		genFF: combine(genFunc(), genWords(bound), func(f fn, log []string) writer.Writer[string, fn] {
			return writer.New(f, log...)
		}),
		genK: combine(genFunc(), genWord(), func(f fn, tag string) func(int) writer.Writer[string, int] {
			return func(x int) writer.Writer[string, int] {
				return writer.New(f(x), tag+" "+strconv.Itoa(x))
			}
		}),
		fmap:  writer.Map[string, int, int],
		pure:  writer.Pure[string, int],
		pureF: writer.Pure[string, fn],
		pureG: writer.Pure[string, func(fn) int],
		pureK: writer.Pure[string, func(fn) func(fn) fn],
		ap:    writer.Apply[string, int, int],
		apG:   writer.Apply[string, fn, int],
		apK:   writer.Apply[string, fn, func(fn) fn],
		apM:   writer.Apply[string, fn, fn],
		bind:  writer.Bind[string, int, int],
	}.suite("writer")
}

// genParser draws one of a few small parsers of int. They consume input
// in different ways, including not at all.
func genParser() gopter.Gen {
	return combine(gen.IntRange(0, 5), genInt(), func(kind, n int) parser.Parser[int] {
		switch kind {
		case 0:
			return parser.Pure(n)
		case 1:
			return parser.Fail[int]()
		case 2:
			return parser.Map(parser.Rune('a'), func(rune) int { return n })
		case 3:
			return parser.Map(parser.Digit(), func(d rune) int { return int(d-'0') + n })
		case 4:
			return parser.Map(parser.Some(parser.Rune('a')), func(rs []rune) int { return len(rs) })
		default:
			return parser.Then(parser.Rune('b'), parser.Pure(n))
		}
	})
}

// genParserK draws a parser-valued continuation.
func genParserK() gopter.Gen {
	return combine(gen.IntRange(0, 3), genFunc(), func(kind int, f fn) func(int) parser.Parser[int] {
		switch kind {
		case 0:
			return func(x int) parser.Parser[int] {
				return parser.Map(parser.Rune('a'), func(rune) int { return f(x) })
			}
		case 1:
			return func(x int) parser.Parser[int] {
				if mod(x, 2) == 0 {
					return parser.Pure(f(x))
				}
				return parser.Fail[int]()
			}
		case 2:
			return func(x int) parser.Parser[int] {
				return parser.Map(parser.Many(parser.Digit()), func(ds []rune) int { return x + len(ds) })
			}
		default:
			return func(x int) parser.Parser[int] {
				return parser.Then(parser.String("b"), parser.Pure(f(x)))
			}
		}
	})
}

func parserSuite(bound int) laws.Suite {
	return instance[parser.Parser[int], parser.Parser[fn], parser.Parser[func(fn) int],
		parser.Parser[func(fn) func(fn) fn], parser.Parser[func(fn) fn]]{
		// Parsers compare on the empty input and four sampled ones.
		eq: mapGen(gen.SliceOfN(4, genInput(bound), reflect.TypeFor[string]()),
			func(inputs []string) monadfn.EqualFunc[parser.Parser[int]] {
				return parser.EqualOn[int](append([]string{""}, inputs...)...)
			}),
		gen: genParser(),
		genFF: combine(genFunc(), genParser(), func(f fn, p parser.Parser[int]) parser.Parser[fn] {
			return parser.Map(p, func(n int) fn {
				return func(x int) int { return f(x) + n }
			})
		}),
		genK:  genParserK(),
		fmap:  parser.Map[int, int],
		pure:  parser.Pure[int],
		pureF: parser.Pure[fn],
		pureG: parser.Pure[func(fn) int],
		pureK: parser.Pure[func(fn) func(fn) fn],
		ap:    parser.Apply[int, int],
		apG:   parser.Apply[fn, int],
		apK:   parser.Apply[fn, func(fn) fn],
		apM:   parser.Apply[fn, fn],
		bind:  parser.Bind[int, int],
		alt: &monadfn.Alternative[parser.Parser[int]]{
			Empty:  parser.Empty[int],
			Append: parser.Append[int],
		},
		leftCatch: true,
	}.suite("parser")
}

func storeSuite(bound int) laws.Suite {
	probes := make([]int, 0, 2*bound+1)
	for i := -bound; i <= bound; i++ {
		probes = append(probes, i)
	}
	offset := gen.IntRange(-2, 2)
	type unused = monadfn.Unit
	return instance[store.Store[int, int], unused, unused, unused, unused]{
		eq: constEq(store.EqualAt[int, int](probes...)),
		gen: combine(genFunc(), gen.IntRange(-bound, bound), func(f fn, pos int) store.Store[int, int] {
			return store.New(f, pos)
		}),
		fmap:    store.Map[int, int, int],
		extend:  store.Extend[int, int, int],
		extract: store.Extract[int, int],
		genW: gopter.CombineGens(offset, offset, offset).Map(func(vs []interface{}) func(store.Store[int, int]) int {
			a, b, d := vs[0].(int), vs[1].(int), vs[2].(int)
			return func(w store.Store[int, int]) int {
				return a*store.Extract(w) + b*store.PeekF(w, func(s int) int { return s + d })
			}
		}),
	}.suite("store")
}

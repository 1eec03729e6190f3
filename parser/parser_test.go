package parser_test

import (
	"strconv"
	"testing"

	"github.com/KasperOmsK/monadfn"
	"github.com/KasperOmsK/monadfn/option"
	"github.com/KasperOmsK/monadfn/parser"
	"github.com/stretchr/testify/require"
)

func number() parser.Parser[int] {
	return parser.Map(parser.Some(parser.Digit()), func(rs []rune) int {
		n, err := strconv.Atoi(string(rs))
		if err != nil {
			panic(err)
		}
		return n
	})
}

func TestMany_StopsAtFirstFailure(t *testing.T) {
	v, rest, ok := parser.Run(parser.Many(parser.Rune('a')), "aaab")

	require.True(t, ok)
	require.Equal(t, "aaa", string(v))
	require.Equal(t, "b", rest)
}

func TestMany_ZeroMatches(t *testing.T) {
	v, rest, ok := parser.Run(parser.Many(parser.Rune('a')), "bbb")

	require.True(t, ok)
	require.Empty(t, v)
	require.Equal(t, "bbb", rest)
}

func TestMany_NonConsumingParserTerminates(t *testing.T) {
	v, rest, ok := parser.Run(parser.Many(parser.Pure(1)), "xyz")

	require.True(t, ok)
	require.Empty(t, v)
	require.Equal(t, "xyz", rest)
}

func TestSome_RequiresOneMatch(t *testing.T) {
	_, _, ok := parser.Run(parser.Some(parser.Rune('a')), "bbb")
	require.False(t, ok)

	v, rest, ok := parser.Run(parser.Some(parser.Rune('a')), "ab")
	require.True(t, ok)
	require.Equal(t, "a", string(v))
	require.Equal(t, "b", rest)
}

func TestAppend_BacktracksOnFailure(t *testing.T) {
	p := parser.Append(parser.String("let"), parser.String("lambda"))

	v, rest, ok := parser.Run(p, "lambda x")
	require.True(t, ok)
	require.Equal(t, "lambda", v)
	require.Equal(t, " x", rest)
}

func TestChoice(t *testing.T) {
	kw := parser.Choice(parser.String("if"), parser.String("else"), parser.String("for"))

	v, err := parser.Parse(kw, "for")
	require.NoError(t, err)
	require.Equal(t, "for", v)

	_, err = parser.Parse(kw, "while")
	require.ErrorIs(t, err, parser.ErrNoMatch)

	_, _, ok := parser.Run(parser.Choice[string](), "anything")
	require.False(t, ok)
}

func TestParse_TrailingInput(t *testing.T) {
	_, err := parser.Parse(number(), "12ab")

	require.ErrorIs(t, err, parser.ErrTrailingInput)
	require.Contains(t, err.Error(), "offset 2")
}

func TestBetweenSepBy(t *testing.T) {
	list := parser.Between(parser.Rune('['), parser.SepBy(number(), parser.Rune(',')), parser.Rune(']'))

	xs, err := parser.Parse(list, "[1,22,333]")
	require.NoError(t, err)
	require.Equal(t, []int{1, 22, 333}, xs)

	xs, err = parser.Parse(list, "[]")
	require.NoError(t, err)
	require.Empty(t, xs)

	_, err = parser.Parse(list, "[1,]")
	require.Error(t, err)
}

func TestBind_DependentParse(t *testing.T) {
	// A length-prefixed field: "3:abc".
	field := parser.Bind(parser.Skip(number(), parser.Rune(':')), func(n int) parser.Parser[string] {
		return parser.Map(counted(n, parser.AnyRune()), func(rs []rune) string { return string(rs) })
	})

	v, rest, ok := parser.Run(field, "3:abcdef")
	require.True(t, ok)
	require.Equal(t, "abc", v)
	require.Equal(t, "def", rest)

	_, rest, ok = parser.Run(field, "9:abc")
	require.False(t, ok)
	require.Equal(t, "9:abc", rest)
}

func counted[T any](n int, p parser.Parser[T]) parser.Parser[[]T] {
	acc := parser.Pure([]T{})
	for range n {
		acc = parser.LiftA2(func(xs []T, x T) []T {
			return append(append([]T{}, xs...), x)
		})(acc, p)
	}
	return acc
}

func TestOptional(t *testing.T) {
	sign := parser.Optional(parser.Rune('-'))

	v, rest, ok := parser.Run(sign, "-5")
	require.True(t, ok)
	require.Equal(t, option.Some('-'), v)
	require.Equal(t, "5", rest)

	v, rest, ok = parser.Run(sign, "5")
	require.True(t, ok)
	require.True(t, v.IsNone())
	require.Equal(t, "5", rest)
}

func TestGuardAndEOF(t *testing.T) {
	even := parser.Bind(number(), func(n int) parser.Parser[int] {
		return parser.Then(parser.Guard(n%2 == 0), parser.Pure(n))
	})

	_, err := parser.Parse(even, "42")
	require.NoError(t, err)
	_, err = parser.Parse(even, "43")
	require.ErrorIs(t, err, parser.ErrNoMatch)

	_, _, ok := parser.Run(parser.EOF(), "")
	require.True(t, ok)
	_, _, ok = parser.Run(parser.EOF(), "x")
	require.False(t, ok)
}

func TestJoinAndComposeK(t *testing.T) {
	pp := parser.Map(parser.Rune('d'), func(rune) parser.Parser[int] { return number() })
	v, err := parser.Parse(parser.Join(pp), "d17")
	require.NoError(t, err)
	require.Equal(t, 17, v)

	expect := func(r rune) func(monadfn.Unit) parser.Parser[rune] {
		return func(monadfn.Unit) parser.Parser[rune] { return parser.Rune(r) }
	}
	k := parser.ComposeK(expect('a'), func(rune) parser.Parser[rune] { return parser.Rune('b') })
	_, rest, ok := parser.Run(k(monadfn.U), "abc")
	require.True(t, ok)
	require.Equal(t, "c", rest)
}

func TestEqualOn(t *testing.T) {
	eq := parser.EqualOn[rune]("a", "b", "")

	require.True(t, eq(parser.Rune('a'), parser.Satisfy(func(r rune) bool { return r == 'a' })))
	require.False(t, eq(parser.Rune('a'), parser.Rune('b')))
}

func TestSatisfy_Unicode(t *testing.T) {
	v, rest, ok := parser.Run(parser.Letter(), "éa")
	require.True(t, ok)
	require.Equal(t, 'é', v)
	require.Equal(t, "a", rest)

	_, _, ok = parser.Run(parser.Space(), "")
	require.False(t, ok)
}

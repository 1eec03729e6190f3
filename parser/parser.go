// Package parser implements backtracking string parsers as a Monad,
// Alternative and MonadPlus.
//
// A parser is the instance where unbounded repetition is meaningful: each
// round of Many consumes input, so it ends when the input stops matching.
// Many and Some therefore come without a bound here, unlike the SomeN and
// ManyN helpers of package monadfn.
//
// Example:
//
//	number := parser.Map(parser.Some(parser.Digit()), runesToInt)
//	list := parser.Between(parser.Rune('['), parser.SepBy(number, parser.Rune(',')), parser.Rune(']'))
//	xs, err := parser.Parse(list, "[1,22,333]")
package parser

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/KasperOmsK/monadfn"
	"github.com/KasperOmsK/monadfn/option"
)

var (
	// ErrNoMatch is returned by Parse when the parser rejects the input.
	ErrNoMatch = errors.New("parser: no match")

	// ErrTrailingInput is returned by Parse when the parser succeeds
	// without consuming the whole input.
	ErrTrailingInput = errors.New("parser: trailing input")
)

// Parser consumes a prefix of input. On success it returns the parsed value
// and the unconsumed rest; on failure ok is false and the other results are
// meaningless. A parser never consumes input it rejects: failure always
// backtracks to the input it was given.
type Parser[T any] func(input string) (value T, rest string, ok bool)

// Run applies p to input.
func Run[T any](p Parser[T], input string) (T, string, bool) {
	return p(input)
}

// Parse runs p on the whole input.
func Parse[T any](p Parser[T], input string) (T, error) {
	v, rest, ok := p(input)
	if !ok {
		var zero T
		return zero, ErrNoMatch
	}
	if rest != "" {
		var zero T
		return zero, fmt.Errorf("%w at offset %d: %q", ErrTrailingInput, len(input)-len(rest), rest)
	}
	return v, nil
}

// EqualOn compares parsers by running both on each of the given inputs.
func EqualOn[T comparable](inputs ...string) monadfn.EqualFunc[Parser[T]] {
	return func(x, y Parser[T]) bool {
		for _, in := range inputs {
			xv, xrest, xok := x(in)
			yv, yrest, yok := y(in)
			if xok != yok {
				return false
			}
			if xok && (xv != yv || xrest != yrest) {
				return false
			}
		}
		return true
	}
}

// Pure succeeds with v without consuming input.
func Pure[T any](v T) Parser[T] {
	return func(input string) (T, string, bool) {
		return v, input, true
	}
}

// Fail never succeeds.
func Fail[T any]() Parser[T] {
	return func(input string) (T, string, bool) {
		var zero T
		return zero, input, false
	}
}

// Empty is the Alternative name for Fail.
func Empty[T any]() Parser[T] {
	return Fail[T]()
}

// Zero is the MonadPlus name for Fail.
func Zero[T any]() Parser[T] {
	return Fail[T]()
}

func Map[A, B any](p Parser[A], f func(A) B) Parser[B] {
	return func(input string) (B, string, bool) {
		a, rest, ok := p(input)
		if !ok {
			var zero B
			return zero, input, false
		}
		return f(a), rest, true
	}
}

// Apply runs pf, then pa on what pf left over.
func Apply[A, B any](pf Parser[func(A) B], pa Parser[A]) Parser[B] {
	return func(input string) (B, string, bool) {
		var zero B
		f, rest, ok := pf(input)
		if !ok {
			return zero, input, false
		}
		a, rest, ok := pa(rest)
		if !ok {
			return zero, input, false
		}
		return f(a), rest, true
	}
}

// Bind runs p and chooses the next parser from its result.
func Bind[A, B any](p Parser[A], k func(A) Parser[B]) Parser[B] {
	return func(input string) (B, string, bool) {
		a, rest, ok := p(input)
		if !ok {
			var zero B
			return zero, input, false
		}
		b, rest, ok := k(a)(rest)
		if !ok {
			var zero B
			return zero, input, false
		}
		return b, rest, true
	}
}

// Append is ordered choice: it runs x and, only if x fails, runs y on the
// same input.
func Append[T any](x, y Parser[T]) Parser[T] {
	return func(input string) (T, string, bool) {
		if v, rest, ok := x(input); ok {
			return v, rest, true
		}
		return y(input)
	}
}

// Plus is the MonadPlus name for Append.
func Plus[T any](x, y Parser[T]) Parser[T] {
	return Append(x, y)
}

// Choice tries each parser in order and returns the first success.
func Choice[T any](ps ...Parser[T]) Parser[T] {
	return monadfn.Asum(alternative[T](), ps...)
}

// Guard succeeds without consuming input when cond holds.
func Guard(cond bool) Parser[monadfn.Unit] {
	return monadfn.Guard(Zero[monadfn.Unit], Pure[monadfn.Unit], cond)
}

// Satisfy consumes one rune matching pred.
func Satisfy(pred func(rune) bool) Parser[rune] {
	return func(input string) (rune, string, bool) {
		r, size := utf8.DecodeRuneInString(input)
		if size == 0 || (r == utf8.RuneError && size == 1) || !pred(r) {
			return 0, input, false
		}
		return r, input[size:], true
	}
}

// AnyRune consumes any single rune.
func AnyRune() Parser[rune] {
	return Satisfy(func(rune) bool { return true })
}

// Rune consumes exactly r.
func Rune(r rune) Parser[rune] {
	return Satisfy(func(c rune) bool { return c == r })
}

func Digit() Parser[rune] {
	return Satisfy(unicode.IsDigit)
}

func Letter() Parser[rune] {
	return Satisfy(unicode.IsLetter)
}

func Space() Parser[rune] {
	return Satisfy(unicode.IsSpace)
}

// String consumes exactly s.
func String(s string) Parser[string] {
	return func(input string) (string, string, bool) {
		if !strings.HasPrefix(input, s) {
			return "", input, false
		}
		return s, input[len(s):], true
	}
}

// EOF succeeds only at the end of input.
func EOF() Parser[monadfn.Unit] {
	return func(input string) (monadfn.Unit, string, bool) {
		return monadfn.U, input, input == ""
	}
}

// Many applies p zero or more times and collects the results. It is
// iterative and always terminates: repetition stops at the first failure,
// and also at the first success that consumed nothing, since repeating such
// a success would yield the same value forever. That non-consuming value is
// not collected.
func Many[T any](p Parser[T]) Parser[[]T] {
	return func(input string) ([]T, string, bool) {
		out := make([]T, 0)
		rest := input
		for {
			v, next, ok := p(rest)
			if !ok || len(next) == len(rest) {
				return out, rest, true
			}
			out = append(out, v)
			rest = next
		}
	}
}

// Some applies p one or more times: some p = (:) <$> p <*> many p.
func Some[T any](p Parser[T]) Parser[[]T] {
	return LiftA2(func(v T, vs []T) []T {
		out := make([]T, 0, len(vs)+1)
		out = append(out, v)
		return append(out, vs...)
	})(p, Many(p))
}

// Optional always succeeds: Some(v) if p matched, None without consuming
// input otherwise.
func Optional[T any](p Parser[T]) Parser[option.Option[T]] {
	return monadfn.Optional(Map[T, option.Option[T]], Pure[option.Option[T]], alternative[option.Option[T]](),
		option.Some[T], option.None[T](), p)
}

// SepBy parses zero or more p separated by sep.
func SepBy[T, S any](p Parser[T], sep Parser[S]) Parser[[]T] {
	return Append(SepBy1(p, sep), Pure([]T{}))
}

// SepBy1 parses one or more p separated by sep.
func SepBy1[T, S any](p Parser[T], sep Parser[S]) Parser[[]T] {
	return LiftA2(func(first T, more []T) []T {
		out := make([]T, 0, len(more)+1)
		out = append(out, first)
		return append(out, more...)
	})(p, Many(Then(sep, p)))
}

// Between parses open, p, closing and keeps p's value.
func Between[O, T, C any](open Parser[O], p Parser[T], closing Parser[C]) Parser[T] {
	return Skip(Then(open, p), closing)
}

func LiftA2[A, B, C any](f func(A, B) C) func(Parser[A], Parser[B]) Parser[C] {
	return monadfn.LiftA2(Map[A, func(B) C], Apply[B, C], f)
}

// Then runs x then y and keeps y's value (*>).
func Then[A, B any](x Parser[A], y Parser[B]) Parser[B] {
	return monadfn.Then(Map[A, func(B) B], Apply[B, B], x, y)
}

// Skip runs x then y and keeps x's value (<*). Both must match.
func Skip[A, B any](x Parser[A], y Parser[B]) Parser[A] {
	return monadfn.Skip(Map[A, func(B) A], Apply[B, A], x, y)
}

func Join[T any](pp Parser[Parser[T]]) Parser[T] {
	return monadfn.Join(Bind[Parser[T], T], pp)
}

func ComposeK[A, B, C any](f func(A) Parser[B], g func(B) Parser[C]) func(A) Parser[C] {
	return monadfn.ComposeK(Bind[B, C], f, g)
}

func alternative[T any]() monadfn.Alternative[Parser[T]] {
	return monadfn.Alternative[Parser[T]]{
		Empty:  Empty[T],
		Append: Append[T],
	}
}

package monadfn_test

import (
	"fmt"
	"strconv"

	"github.com/KasperOmsK/monadfn"
	"github.com/KasperOmsK/monadfn/option"
	"github.com/KasperOmsK/monadfn/parser"
	"github.com/KasperOmsK/monadfn/seq"
	"github.com/KasperOmsK/monadfn/writer"
)

type Config struct {
	Host string
	Port int
}

func lookup(env map[string]string, key string) option.Option[string] {
	v, ok := env[key]
	return option.FromOk(v, ok)
}

func atoi(s string) option.Option[int] {
	n, err := strconv.Atoi(s)
	return option.FromOk(n, err == nil)
}

// Example builds a value from several optional inputs: it exists only when
// every input does.
func Example() {
	env := map[string]string{"HOST": "localhost", "PORT": "8080"}

	mk := monadfn.LiftA2(option.Map[string, func(int) Config], option.Apply[int, Config],
		func(host string, port int) Config { return Config{Host: host, Port: port} })

	port := option.Bind(lookup(env, "PORT"), atoi)
	fmt.Println(mk(lookup(env, "HOST"), port))

	delete(env, "PORT")
	fmt.Println(mk(lookup(env, "HOST"), option.Bind(lookup(env, "PORT"), atoi)))

	// Output:
	// Some({localhost 8080})
	// None
}

func ExampleTraverse() {
	parsed := monadfn.Traverse(option.Bind[int, []int], option.Bind[[]int, []int], option.Pure[[]int],
		atoi, []string{"1", "2", "3"})
	fmt.Println(parsed)

	parsed = option.Traverse([]string{"1", "two", "3"}, atoi)
	fmt.Println(parsed)

	// Output:
	// Some([1 2 3])
	// None
}

// ExampleThen shows that Then and Skip both keep the effects of both
// operands, left first.
func ExampleThen() {
	step := func(n int) writer.Writer[string, int] {
		return writer.New(n, "step "+strconv.Itoa(n))
	}

	v, log := writer.Run(writer.Then(step(1), step(2)))
	fmt.Println(v, log)

	v, log = writer.Run(writer.Skip(step(1), step(2)))
	fmt.Println(v, log)

	// Output:
	// 2 [step 1 step 2]
	// 1 [step 1 step 2]
}

func ExampleGuard() {
	// Pythagorean triples up to 13 with the list monad.
	upTo := func(lo, hi int) seq.Seq[int] {
		xs := make([]int, 0, hi-lo+1)
		for i := lo; i <= hi; i++ {
			xs = append(xs, i)
		}
		return seq.FromSlice(xs)
	}
	triples := seq.Bind(upTo(1, 13), func(a int) seq.Seq[[3]int] {
		return seq.Bind(upTo(a, 13), func(b int) seq.Seq[[3]int] {
			return seq.Bind(upTo(b, 13), func(c int) seq.Seq[[3]int] {
				return seq.Then(seq.Guard(a*a+b*b == c*c), seq.Pure([3]int{a, b, c}))
			})
		})
	})
	fmt.Println(seq.Collect(triples))

	// Output:
	// [[3 4 5] [5 12 13] [6 8 10]]
}

func ExampleSomeN() {
	fmt.Println(option.SomeN(option.Some(5), 3))
	fmt.Println(option.ManyN(option.None[int](), 3))

	// Output:
	// Some([5 5 5])
	// Some([])
}

func ExampleAsum() {
	keyword := parser.Choice(parser.String("let"), parser.String("lambda"), parser.String("in"))

	v, err := parser.Parse(keyword, "lambda")
	fmt.Println(v, err)

	_, err = parser.Parse(keyword, "where")
	fmt.Println(err)

	// Output:
	// lambda <nil>
	// parser: no match
}

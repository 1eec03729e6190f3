package seq_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/KasperOmsK/monadfn"
	"github.com/KasperOmsK/monadfn/internal/iterx"
	"github.com/KasperOmsK/monadfn/option"
	"github.com/KasperOmsK/monadfn/result"
	"github.com/KasperOmsK/monadfn/seq"
	"github.com/stretchr/testify/require"
)

func TestMap_TransformsValues(t *testing.T) {
	s := seq.Map(seq.Of(1, 2, 3), func(v int) int {
		return v * 2
	})

	require.Equal(t, []int{2, 4, 6}, seq.Collect(s))
}

func TestFilter_FiltersCorrectly(t *testing.T) {
	s := seq.Filter(seq.Of(1, 2, 3, 4, 5), func(v int) bool {
		return v%2 == 0
	})

	require.Equal(t, []int{2, 4}, seq.Collect(s))
}

func TestChunk_PanicInvalidChunkSize(t *testing.T) {
	src := seq.Of(1, 2, 3)

	require.Panics(t, func() {
		seq.Chunk(src, -1)
	})

	require.Panics(t, func() {
		seq.Chunk(src, 0)
	})
}

func TestChunk_GroupsCorrectly(t *testing.T) {
	s := seq.Chunk(seq.Of(1, 2, 3, 4, 5), 2)

	require.Equal(t, [][]int{
		{1, 2},
		{3, 4},
		{5},
	}, seq.Collect(s))
}

func TestChunk_ChunksDoNotAlias(t *testing.T) {
	chunks := seq.Collect(seq.Chunk(seq.Of(1, 2, 3, 4), 2))
	chunks[0][0] = 100

	require.Equal(t, []int{3, 4}, chunks[1])
}

func TestFlatMap_FlattensInOrder(t *testing.T) {
	s := seq.FlatMap(seq.Of(1, 2, 3), func(v int) []int {
		return []int{v, v * 10}
	})

	require.Equal(t, []int{
		1, 10,
		2, 20,
		3, 30,
	}, seq.Collect(s))
}

func TestFlatMap_EquivalentToFlattenMap(t *testing.T) {
	split := func(in string) []string { return strings.Split(in, ",") }

	v1 := seq.FlatMap(seq.Of("A,B,C", "D,E,F"), split)
	v2 := seq.Flatten(seq.Map(seq.Of("A,B,C", "D,E,F"), split))

	require.True(t, seq.Equal(v1, v2))
}

func TestBind_ConcatenatesBranches(t *testing.T) {
	s := seq.Bind(seq.Of(1, 2), func(v int) seq.Seq[int] {
		return seq.Of(v, -v)
	})

	require.Equal(t, []int{1, -1, 2, -2}, seq.Collect(s))
}

func TestApply_CartesianProduct(t *testing.T) {
	fs := seq.Of(
		func(v int) int { return v + 1 },
		func(v int) int { return v * 10 },
	)

	require.Equal(t, []int{2, 3, 10, 20}, seq.Collect(seq.Apply(fs, seq.Of(1, 2))))
}

func TestZip_Cartesian(t *testing.T) {
	got := seq.Collect(seq.Zip(seq.Of(1, 2), seq.Of("a")))

	require.Equal(t, []monadfn.Pair[int, string]{
		monadfn.MakePair(1, "a"),
		monadfn.MakePair(2, "a"),
	}, got)
}

func TestAppend_EmptyIsIdentity(t *testing.T) {
	xs := seq.Of(1, 2)

	require.True(t, seq.Equal(xs, seq.Append(seq.Empty[int](), xs)))
	require.True(t, seq.Equal(xs, seq.Append(xs, seq.Empty[int]())))
	require.Equal(t, []int{1, 2, 3}, seq.Collect(seq.Plus(xs, seq.Of(3))))
}

func TestGuard_PrunesBranches(t *testing.T) {
	// Pythagorean triples with sides up to 13.
	upTo := func(lo, hi int) seq.Seq[int] {
		out := make([]int, 0)
		for i := lo; i <= hi; i++ {
			out = append(out, i)
		}
		return seq.FromSlice(out)
	}

	triples := seq.Bind(upTo(1, 13), func(a int) seq.Seq[[3]int] {
		return seq.Bind(upTo(a, 13), func(b int) seq.Seq[[3]int] {
			return seq.Bind(upTo(b, 13), func(c int) seq.Seq[[3]int] {
				return seq.Bind(seq.Guard(a*a+b*b == c*c), func(monadfn.Unit) seq.Seq[[3]int] {
					return seq.Pure([3]int{a, b, c})
				})
			})
		})
	})

	require.Equal(t, [][3]int{{3, 4, 5}, {5, 12, 13}, {6, 8, 10}}, seq.Collect(triples))
}

func TestSequence_AllCombinations(t *testing.T) {
	got := seq.Collect(seq.Sequence([]seq.Seq[int]{seq.Of(1, 2), seq.Of(3, 4)}))

	require.Equal(t, [][]int{{1, 3}, {1, 4}, {2, 3}, {2, 4}}, got)
}

func TestSomeN_Bounded(t *testing.T) {
	got := seq.Collect(seq.SomeN(seq.Of(1, 2), 2))

	require.Equal(t, [][]int{
		{1, 1}, {1, 2}, {1},
		{2, 1}, {2, 2}, {2},
	}, got)
}

func TestManyN_EmptyInput(t *testing.T) {
	got := seq.Collect(seq.ManyN(seq.Empty[int](), 3))

	require.Equal(t, [][]int{{}}, got)
}

func TestOptional(t *testing.T) {
	got := seq.Collect(seq.Optional(seq.Of(7)))

	require.Equal(t, []option.Option[int]{option.Some(7), option.None[int]()}, got)
}

func TestTake_InfiniteSource(t *testing.T) {
	ones := seq.From(iterx.Repeat(1))
	doubled := seq.Map(ones, func(v int) int { return v * 2 })

	require.Equal(t, []int{2, 2, 2}, seq.Collect(seq.Take(doubled, 3)))
}

func TestComposeK(t *testing.T) {
	neighbours := func(v int) seq.Seq[int] { return seq.Of(v-1, v+1) }
	k := seq.ComposeK(neighbours, neighbours)

	require.Equal(t, []int{-1, 1, 1, 3}, seq.Collect(k(1)))
}

func TestFrom_NilPanics(t *testing.T) {
	require.Panics(t, func() {
		seq.From[int](nil)
	})
}

func TestThenSkip_Multiplicity(t *testing.T) {
	x, y := seq.Of(1, 2), seq.Of("a", "b", "c")

	require.Equal(t, []string{"a", "b", "c", "a", "b", "c"}, seq.Collect(seq.Then(x, y)))
	require.Equal(t, []int{1, 1, 1, 2, 2, 2}, seq.Collect(seq.Skip(x, y)))
	require.Empty(t, seq.Collect(seq.Skip(x, seq.Empty[string]())))
}

func TestTryMap_KeepsErrorsInPlace(t *testing.T) {
	src := seq.Of(1, 2, 3, 4)

	got := seq.Collect(seq.TryMap(src, func(v int) (int, error) {
		if v%2 == 0 {
			return 0, fmt.Errorf("even number: %d", v)
		}
		return v * 10, nil
	}))

	require.Len(t, got, 4)
	require.True(t, result.Equal(result.Ok(10), got[0]))
	require.EqualError(t, got[1].Error(), "even number: 2")
	require.True(t, result.Equal(result.Ok(30), got[2]))
	require.EqualError(t, got[3].Error(), "even number: 4")

	_, err := result.Validate(got, monadfn.Id[result.Result[int]]).Unwrap()
	require.EqualError(t, err, "even number: 2\neven number: 4")
}

func TestGroupBy_ConsecutiveKeys(t *testing.T) {
	src := seq.Of("a1", "a2", "b1", "b2", "a3")

	got := seq.Collect(seq.GroupBy(src, func(s string) byte { return s[0] }))

	require.Equal(t, [][]string{{"a1", "a2"}, {"b1", "b2"}, {"a3"}}, got)
	require.Empty(t, seq.Collect(seq.GroupBy(seq.Empty[string](), func(s string) byte { return s[0] })))
}

func TestGroupBy_KeysOnceAndGroupsDoNotAlias(t *testing.T) {
	calls := 0
	groups := seq.GroupBy(seq.Of(1, 1, 2, 3, 3), func(v int) int {
		calls++
		return v
	})

	got := seq.Collect(groups)
	require.Equal(t, [][]int{{1, 1}, {2}, {3, 3}}, got)
	require.Equal(t, 5, calls)

	got[0] = append(got[0][:1], 100)
	require.Equal(t, []int{2}, got[1])
}

func TestChunk_Reiterable(t *testing.T) {
	chunks := seq.Chunk(seq.Of(1, 2, 3), 2)

	require.Equal(t, seq.Collect(chunks), seq.Collect(chunks))
	require.Equal(t, [][]int{{1, 2}, {3}}, seq.Collect(chunks))
}

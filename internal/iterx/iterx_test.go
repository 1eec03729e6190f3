package iterx_test

import (
	"testing"

	"github.com/KasperOmsK/monadfn/internal/iterx"
	"github.com/stretchr/testify/require"
)

func TestTake_BoundsInfiniteRepeat(t *testing.T) {
	got := iterx.Collect(iterx.Take(iterx.Repeat(7), 3))
	require.Equal(t, []int{7, 7, 7}, got)
}

func TestTake_NonPositive(t *testing.T) {
	require.Empty(t, iterx.Collect(iterx.Take(iterx.Repeat(1), 0)))
	require.Empty(t, iterx.Collect(iterx.Take(iterx.Repeat(1), -2)))
}

func TestTake_ShorterInput(t *testing.T) {
	got := iterx.Collect(iterx.Take(iterx.FromSlice([]int{1, 2}), 5))
	require.Equal(t, []int{1, 2}, got)
}

func TestConcat_PreservesOrder(t *testing.T) {
	got := iterx.Collect(iterx.Concat(
		iterx.FromSlice([]int{1, 2}),
		iterx.Empty[int](),
		iterx.FromSlice([]int{3}),
	))
	require.Equal(t, []int{1, 2, 3}, got)
}

func TestConcat_StopsEarly(t *testing.T) {
	got := iterx.Collect(iterx.Take(iterx.Concat(iterx.Repeat(1), iterx.Repeat(2)), 4))
	require.Equal(t, []int{1, 1, 1, 1}, got)
}

func TestCollect_EmptyIsNonNil(t *testing.T) {
	got := iterx.Collect(iterx.Empty[string]())
	require.NotNil(t, got)
	require.Len(t, got, 0)
}

package beam_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvfst/beam"
	"github.com/katalvlaran/lvfst/builder"
	"github.com/katalvlaran/lvfst/core"
	"github.com/katalvlaran/lvfst/dfs"
	"github.com/katalvlaran/lvfst/viterbi"
)

// fan: 0 has out-edges to 1,2,3 weighing -3,-2,-1; each leaf goes to 4.
func fan(t *testing.T) *core.Store {
	t.Helper()
	s, err := builder.Build(nil,
		builder.Arcs(
			builder.Arc{Tail: 0, Head: 1, Label: "a", Weight: -3},
			builder.Arc{Tail: 0, Head: 2, Label: "b", Weight: -2},
			builder.Arc{Tail: 0, Head: 3, Label: "c", Weight: -1},
			builder.Arc{Tail: 1, Head: 4, Label: "x", Weight: 0},
			builder.Arc{Tail: 2, Head: 4, Label: "x", Weight: 0},
			builder.Arc{Tail: 3, Head: 4, Label: "x", Weight: -0.5},
			builder.Arc{Tail: 3, Head: 4, Label: "y", Weight: -4},
		),
		builder.Initials(0),
		builder.Finals(4),
	)
	require.NoError(t, err)

	return s
}

func order(s *core.Store) []int { return dfs.TopoOrder[int, int](s) }

func TestMerge_AlphaZeroDropsOnlyMinimum(t *testing.T) {
	s := fan(t)
	r, err := beam.Merge[int, int](s, order(s), 0)
	require.NoError(t, err)

	// at 0: -2,-1 > -3; at 1 and 2 the single edge equals both min and max
	// and is dropped; at 3 only -0.5 > -4.
	assert.ElementsMatch(t, []int{1, 2, 5}, r.Edges)
	assert.True(t, r.Kept(4))
	assert.False(t, r.Kept(1))
	assert.Equal(t, 0, r.Vertices[0], "initial first")
	assert.Nil(t, r.BestPath(s), "Merge tracks no values")
}

func TestMerge_AlphaOneKeepsNothing(t *testing.T) {
	s := fan(t)
	r, err := beam.Merge[int, int](s, order(s), 1)
	require.NoError(t, err)
	assert.Empty(t, r.Edges)
	assert.Equal(t, []int{0}, r.Vertices)
}

func TestMerge_MidAlpha(t *testing.T) {
	s := fan(t)
	// at 0: cutoff = -3 + 0.5*2 = -2, keeps only -1
	r, err := beam.Merge[int, int](s, order(s), 0.5)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 5}, r.Edges)
	assert.Equal(t, []int{0, 3, 4}, r.Vertices)

	sub := r.Automaton(s)
	assert.Equal(t, []int{0}, sub.Initials())
	assert.Equal(t, []int{4}, sub.Finals())
	assert.Equal(t, []int{5}, sub.OutEdges(3))
}

func TestMerge_BadAlpha(t *testing.T) {
	s := fan(t)
	for _, alpha := range []float64{-0.1, 1.1, math.NaN()} {
		_, err := beam.Merge[int, int](s, order(s), alpha)
		assert.ErrorIs(t, err, beam.ErrBadAlpha, "alpha=%v", alpha)
	}
}

func TestMerge_InfiniteWeightsNoNaN(t *testing.T) {
	s := builder.MustBuild(nil,
		builder.Arcs(
			builder.Arc{Tail: 0, Head: 1, Label: "a", Weight: math.Inf(-1)},
			builder.Arc{Tail: 0, Head: 2, Label: "b", Weight: -1},
		),
		builder.Initials(0),
	)
	r, err := beam.Merge[int, int](s, order(s), 0.3)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, r.Edges)
}

func TestSearch_TracksBestSurvivor(t *testing.T) {
	s := fan(t)
	r, err := beam.Search[int, int](s, order(s), 0)
	require.NoError(t, err)

	// the lone edge out of 2 is dropped, so 4 is reached only via 3
	path := r.BestPath(s)
	assert.Equal(t, []int{2, 5}, path)
	assert.InDelta(t, -1.5, r.Value(4), 1e-12)
	assert.InDelta(t, r.Value(4), core.PathWeight[int, int](s, path), 1e-12)
}

func TestSearch_NoSurvivingFinal(t *testing.T) {
	s := fan(t)
	r, err := beam.Search[int, int](s, order(s), 1)
	require.NoError(t, err)
	assert.Nil(t, r.BestPath(s))
	assert.True(t, math.IsInf(r.Value(4), -1))
}

func TestSearch_AgreesWithViterbiOnPrunedView(t *testing.T) {
	s := fan(t)
	r, err := beam.Search[int, int](s, order(s), 0.2)
	require.NoError(t, err)

	sub := r.Automaton(s)
	want := viterbi.ShortestPath[int, int](sub, dfs.TopoOrder[int, int](sub))
	assert.Equal(t, want, r.BestPath(s))
}

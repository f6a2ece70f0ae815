package viterbi_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvfst/builder"
	"github.com/katalvlaran/lvfst/core"
	"github.com/katalvlaran/lvfst/dfs"
	"github.com/katalvlaran/lvfst/viterbi"
)

func order(s *core.Store) []int { return dfs.TopoOrder[int, int](s) }

func TestShortestPath_SinglePath(t *testing.T) {
	s := builder.MustBuild(
		[]builder.Option{builder.WithWeightFn(builder.ConstantWeightFn(-0.25))},
		builder.Word("abcd"),
	)
	path := viterbi.ShortestPath[int, int](s, order(s))
	assert.Equal(t, []int{0, 1, 2, 3}, path)
	assert.InDelta(t, -1.0, core.PathWeight[int, int](s, path), 1e-12)
}

func TestShortestPath_PicksHeaviestBranch(t *testing.T) {
	s := builder.MustBuild(nil, builder.Diamond(-3, -1, -2))
	path := viterbi.ShortestPath[int, int](s, order(s))
	// branch 1: source→mid(2) is edge 2, mid→sink is edge 3
	assert.Equal(t, []int{2, 3}, path)
}

func TestShortestPath_NoFinalReachable(t *testing.T) {
	s := builder.MustBuild(nil,
		builder.Arcs(
			builder.Arc{Tail: 0, Head: 1, Label: "a"},
			builder.Arc{Tail: 2, Head: 3, Label: "b"},
		),
		builder.Initials(0),
		builder.Finals(3),
	)
	assert.Empty(t, viterbi.ShortestPath[int, int](s, order(s)))

	p := viterbi.NewForward[int, int]()
	p.Seed(0, 0)
	p.Merge(s, order(s))
	_, _, ok := p.Best(s)
	assert.False(t, ok)
	assert.True(t, math.IsInf(p.Value(3), -1))
}

func TestForward_TiesKeepEarliestEdge(t *testing.T) {
	s := builder.MustBuild(nil,
		builder.Arcs(
			builder.Arc{Tail: 0, Head: 1, Label: "a", Weight: -1},
			builder.Arc{Tail: 0, Head: 1, Label: "b", Weight: -1},
			builder.Arc{Tail: 0, Head: 1, Label: "c", Weight: -2},
		),
		builder.Initials(0),
		builder.Finals(1),
	)
	p := viterbi.NewForward[int, int]()
	p.Seed(0, 0)
	p.Merge(s, order(s))

	e, ok := p.Predecessor(1)
	require.True(t, ok)
	assert.Equal(t, 0, e)
	assert.Equal(t, -1.0, p.Value(1))

	_, ok = p.Predecessor(0)
	assert.False(t, ok, "seeded vertex has no predecessor")
}

func TestForward_NegInfWeightIsInert(t *testing.T) {
	s := builder.MustBuild(nil,
		builder.Arcs(
			builder.Arc{Tail: 0, Head: 1, Label: "a", Weight: math.Inf(-1)},
			builder.Arc{Tail: 1, Head: 2, Label: "b", Weight: 5},
		),
		builder.Initials(0),
		builder.Finals(2),
	)
	p := viterbi.NewForward[int, int]()
	p.Seed(0, 0)
	p.Merge(s, order(s))

	assert.False(t, math.IsNaN(p.Value(2)))
	assert.True(t, math.IsInf(p.Value(2), -1))
	assert.Empty(t, p.BestPath(s))
}

func TestBackward_MirrorsForward(t *testing.T) {
	s := builder.MustBuild(
		[]builder.Option{builder.WithSeed(3), builder.WithWeightFn(builder.LogProbWeightFn)},
		builder.Lattice(4, 3),
	)
	ord := order(s)

	fwd := viterbi.NewForward[int, int]()
	for _, v := range s.Initials() {
		fwd.Seed(v, 0)
	}
	fwd.Merge(s, ord)

	bwd := viterbi.NewBackward[int, int]()
	for _, v := range s.Finals() {
		bwd.Seed(v, 0)
	}
	bwd.Merge(s, ord)

	_, fv, ok := fwd.Best(s)
	require.True(t, ok)
	_, bv, ok := bwd.Best(s)
	require.True(t, ok)
	assert.InDelta(t, fv, bv, 1e-9)

	fp, bp := fwd.BestPath(s), bwd.BestPath(s)
	assert.InDelta(t, fv, core.PathWeight[int, int](s, fp), 1e-9)
	assert.InDelta(t, bv, core.PathWeight[int, int](s, bp), 1e-9)
	require.NotEmpty(t, bp)
	assert.Contains(t, s.Initials(), s.Tail(bp[0]), "backward path runs tail to head")
	assert.Contains(t, s.Finals(), s.Head(bp[len(bp)-1]))
}

func TestBest_PicksMaxFinal(t *testing.T) {
	s := builder.MustBuild(nil,
		builder.Arcs(
			builder.Arc{Tail: 0, Head: 1, Label: "a", Weight: -5},
			builder.Arc{Tail: 0, Head: 2, Label: "b", Weight: -1},
		),
		builder.Initials(0),
		builder.Finals(1, 2),
	)
	p := viterbi.NewForward[int, int]()
	p.Seed(0, 0)
	p.Merge(s, order(s))
	v, val, ok := p.Best(s)
	require.True(t, ok)
	assert.Equal(t, 2, v)
	assert.Equal(t, -1.0, val)
	assert.Equal(t, viterbi.Forward, p.Direction())
}

func BenchmarkShortestPath(b *testing.B) {
	s := builder.MustBuild(
		[]builder.Option{builder.WithSeed(1), builder.WithWeightFn(builder.LogProbWeightFn)},
		builder.Lattice(100, 6),
	)
	ord := order(s)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = viterbi.ShortestPath[int, int](s, ord)
	}
}

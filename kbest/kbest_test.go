package kbest_test

import (
	"sort"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvfst/builder"
	"github.com/katalvlaran/lvfst/core"
	"github.com/katalvlaran/lvfst/dfs"
	"github.com/katalvlaran/lvfst/kbest"
	"github.com/katalvlaran/lvfst/viterbi"
)

// allPathValues enumerates every initial→v path value by brute force,
// sorted in decreasing order.
func allPathValues(s *core.Store, v int) []float64 {
	initial := core.VertexSet(s.Initials())
	var out []float64
	var walk func(u int, acc float64)
	walk = func(u int, acc float64) {
		if _, ok := initial[u]; ok {
			out = append(out, acc)
			return
		}
		for _, e := range s.InEdges(u) {
			walk(s.Tail(e), acc+s.Weight(e))
		}
	}
	walk(v, 0)
	sort.Sort(sort.Reverse(sort.Float64Slice(out)))

	return out
}

func lattice(seed int64, frames, width int) *core.Store {
	return builder.MustBuild(
		[]builder.Option{builder.WithSeed(seed), builder.WithWeightFn(builder.UniformWeightFn(-5, 0))},
		builder.Lattice(frames, width),
	)
}

func newSession(s *core.Store) *kbest.Session[int, int] {
	sess := kbest.NewSession[int, int](s)
	sess.FirstBest(dfs.TopoOrder[int, int](s))

	return sess
}

func TestRankZeroMatchesOneBest(t *testing.T) {
	s := lattice(11, 4, 3)
	sess := newSession(s)
	final := s.Finals()[0]

	path, err := sess.BestPath(final, 0)
	require.NoError(t, err)
	want := viterbi.ShortestPath[int, int](s, dfs.TopoOrder[int, int](s))
	assert.Equal(t, want, path)

	v, err := sess.Value(final, 0)
	require.NoError(t, err)
	assert.InDelta(t, core.PathWeight[int, int](s, want), v, 1e-9)
}

func TestPaths_EnumeratesAllInOrder(t *testing.T) {
	s := lattice(5, 3, 3) // 27 paths
	sess := newSession(s)
	final := s.Finals()[0]
	want := allPathValues(s, final)
	require.Len(t, want, 27)

	paths, err := sess.Paths(final, 100)
	require.NoError(t, err)
	require.Len(t, paths, len(want))

	seen := make(map[string]bool)
	for k, p := range paths {
		assert.InDelta(t, want[k], core.PathWeight[int, int](s, p), 1e-9, "rank %d", k)
		v, err := sess.Value(final, k)
		require.NoError(t, err)
		assert.InDelta(t, want[k], v, 1e-9)

		key := ""
		for _, e := range p {
			key += string(rune('A' + e))
		}
		assert.False(t, seen[key], "rank %d repeats a path", k)
		seen[key] = true
	}
	assert.True(t, sess.Exhausted(final))
}

func TestNextBest_Errors(t *testing.T) {
	s := builder.MustBuild(nil, builder.Diamond(-1, -2))
	sess := newSession(s)
	final := s.Finals()[0]

	assert.ErrorIs(t, sess.NextBest(final, 5), kbest.ErrRankOutOfOrder)
	require.NoError(t, sess.NextBest(final, 0), "rank 0 already present")
	require.NoError(t, sess.NextBest(final, 1))
	assert.Equal(t, 2, sess.Size(final))
	assert.ErrorIs(t, sess.NextBest(final, 2), kbest.ErrRankNotFound)
	assert.ErrorIs(t, sess.NextBest(final, 2), kbest.ErrRankNotFound, "stays exhausted")

	_, err := sess.BestPath(final, 2)
	assert.ErrorIs(t, err, kbest.ErrRankNotFound)
	_, err = sess.Value(final, -1)
	assert.ErrorIs(t, err, kbest.ErrRankNotFound)

	// the initial holds only the empty path
	init := s.Initials()[0]
	p, err := sess.BestPath(init, 0)
	require.NoError(t, err)
	assert.Empty(t, p)
	assert.ErrorIs(t, sess.NextBest(init, 1), kbest.ErrRankNotFound)
}

func TestUnreachableVertex(t *testing.T) {
	s := builder.MustBuild(nil,
		builder.Arcs(
			builder.Arc{Tail: 0, Head: 1, Label: "a"},
			builder.Arc{Tail: 2, Head: 1, Label: "b"},
		),
		builder.Initials(0),
		builder.Finals(1),
	)
	sess := newSession(s)
	assert.ErrorIs(t, sess.NextBest(2, 0), kbest.ErrRankNotFound)

	paths, err := sess.Paths(1, 3)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0}}, paths, "the edge from 2 never contributes")
}

func TestSharedPrefixes(t *testing.T) {
	// Two ways into 1, then two ways from 1 to 2: four paths, best = -1-10.
	s := builder.MustBuild(nil,
		builder.Arcs(
			builder.Arc{Tail: 0, Head: 1, Label: "a", Weight: -1},
			builder.Arc{Tail: 0, Head: 1, Label: "b", Weight: -2},
			builder.Arc{Tail: 1, Head: 2, Label: "c", Weight: -10},
			builder.Arc{Tail: 1, Head: 2, Label: "d", Weight: -20},
		),
		builder.Initials(0),
		builder.Finals(2),
	)
	sess := newSession(s)
	paths, err := sess.Paths(2, 10)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 2}, {1, 2}, {0, 3}, {1, 3}}, paths)
}

func TestValuesNonIncreasing_Property(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 40

	properties := gopter.NewProperties(parameters)
	properties.Property("k-best equals sorted brute force", prop.ForAll(
		func(seed int64, frames, width int) bool {
			s := lattice(seed, frames, width)
			final := s.Finals()[0]
			want := allPathValues(s, final)
			sess := newSession(s)
			paths, err := sess.Paths(final, len(want)+1)
			if err != nil || len(paths) != len(want) {
				return false
			}
			prev := core.NegInf
			for k := range paths {
				v, _ := sess.Value(final, k)
				if k > 0 && v > prev+1e-9 {
					return false
				}
				if d := v - want[k]; d > 1e-9 || d < -1e-9 {
					return false
				}
				prev = v
			}
			return true
		},
		gen.Int64(),
		gen.IntRange(1, 4),
		gen.IntRange(1, 3),
	))
	properties.TestingRun(t)
}

func BenchmarkPaths(b *testing.B) {
	s := lattice(1, 30, 5)
	ord := dfs.TopoOrder[int, int](s)
	final := s.Finals()[0]
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sess := kbest.NewSession[int, int](s)
		sess.FirstBest(ord)
		_, _ = sess.Paths(final, 50)
	}
}

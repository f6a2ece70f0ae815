package logsum_test

import (
	"context"
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvfst/builder"
	"github.com/katalvlaran/lvfst/core"
	"github.com/katalvlaran/lvfst/dfs"
	"github.com/katalvlaran/lvfst/logsum"
	"github.com/katalvlaran/lvfst/viterbi"
)

const eps = 1e-9

func order(s *core.Store) []int { return dfs.TopoOrder[int, int](s) }

func lattice(seed int64, frames, width int) *core.Store {
	return builder.MustBuild(
		[]builder.Option{
			builder.WithSeed(seed),
			builder.WithWeightFn(builder.LogProbWeightFn),
			builder.WithAlphabet("a", "b", "c", "d"),
		},
		builder.Lattice(frames, width),
	)
}

func TestLogAdd(t *testing.T) {
	ninf := math.Inf(-1)
	assert.InDelta(t, math.Log(3), logsum.LogAdd(math.Log(1), math.Log(2)), eps)
	assert.Equal(t, 2.5, logsum.LogAdd(ninf, 2.5))
	assert.Equal(t, 2.5, logsum.LogAdd(2.5, ninf))
	assert.True(t, math.IsInf(logsum.LogAdd(ninf, ninf), -1))
	// no overflow for large magnitudes
	assert.InDelta(t, 1000+math.Log(2), logsum.LogAdd(1000, 1000), eps)
	assert.InDelta(t, -1000+math.Log(2), logsum.LogAdd(-1000, -1000), eps)
}

func TestLogAdd_Properties(t *testing.T) {
	properties := gopter.NewProperties(gopter.DefaultTestParameters())
	finite := gen.Float64Range(-500, 500)

	properties.Property("commutative", prop.ForAll(
		func(a, b float64) bool {
			return math.Abs(logsum.LogAdd(a, b)-logsum.LogAdd(b, a)) < eps
		},
		finite, finite,
	))
	properties.Property("bounded by max and max+log2", prop.ForAll(
		func(a, b float64) bool {
			r, m := logsum.LogAdd(a, b), math.Max(a, b)
			return r >= m && r <= m+math.Ln2+eps
		},
		finite, finite,
	))
	properties.TestingRun(t)
}

func TestForward_SinglePathMatchesOneBest(t *testing.T) {
	s := builder.MustBuild(
		[]builder.Option{builder.WithWeightFn(builder.ConstantWeightFn(-0.7))},
		builder.Word("abc"),
	)
	fwd := logsum.Forward[int, int](s, order(s))
	final := s.Finals()[0]

	path := viterbi.ShortestPath[int, int](s, order(s))
	assert.InDelta(t, core.PathWeight[int, int](s, path), fwd.Value(final), eps)
	assert.InDelta(t, -2.1, logsum.Total[int, int](s, fwd), eps)
}

func TestForward_TwoEqualPaths(t *testing.T) {
	s := builder.MustBuild(nil, builder.Diamond(-1.5, -1.5))
	fwd := logsum.Forward[int, int](s, order(s))
	assert.InDelta(t, -1.5+math.Log(2), fwd.Value(s.Finals()[0]), eps)

	bwd := logsum.Backward[int, int](s, order(s))
	assert.InDelta(t, -1.5+math.Log(2), bwd.Value(s.Initials()[0]), eps)
	assert.Equal(t, logsum.DirBackward, bwd.Direction())
}

func TestForward_NegInfIsInert(t *testing.T) {
	s := builder.MustBuild(nil,
		builder.Arcs(
			builder.Arc{Tail: 0, Head: 1, Label: "a", Weight: math.Inf(-1)},
			builder.Arc{Tail: 0, Head: 1, Label: "b", Weight: -2},
			builder.Arc{Tail: 2, Head: 1, Label: "c", Weight: 0},
		),
		builder.Initials(0),
		builder.Finals(1),
	)
	fwd := logsum.Forward[int, int](s, order(s))
	assert.InDelta(t, -2.0, fwd.Value(1), eps)
	assert.True(t, math.IsInf(fwd.Value(2), -1), "unseen vertex reads log 0")
}

func TestBackward_AgreesWithForwardTotal(t *testing.T) {
	s := lattice(9, 5, 3)
	ord := order(s)
	fwd := logsum.Forward[int, int](s, ord)
	bwd := logsum.Backward[int, int](s, ord)

	z := logsum.Total[int, int](s, fwd)
	assert.InDelta(t, z, bwd.Value(s.Initials()[0]), 1e-9)
	// every vertex of the lattice lies on a full path
	for _, v := range s.Vertices() {
		assert.LessOrEqual(t, fwd.Value(v)+bwd.Value(v), z+1e-9)
	}
}

func TestParallel_MatchesSequential(t *testing.T) {
	for _, workers := range []int{1, 2, 8} {
		s := lattice(int64(workers), 6, 4)
		ord := order(s)

		fwd := logsum.Forward[int, int](s, ord)
		bwd := logsum.Backward[int, int](s, ord)
		pf, err := logsum.ParallelForward[int, int](context.Background(), s, ord, logsum.WithWorkers(workers))
		require.NoError(t, err)
		pb, err := logsum.ParallelBackward[int, int](context.Background(), s, ord, logsum.WithWorkers(workers))
		require.NoError(t, err)

		for _, v := range s.Vertices() {
			assert.InDelta(t, fwd.Value(v), pf.Value(v), 1e-9, "forward v=%d workers=%d", v, workers)
			assert.InDelta(t, bwd.Value(v), pb.Value(v), 1e-9, "backward v=%d workers=%d", v, workers)
		}
	}
}

func TestParallel_SharedTargetWithinOneVertex(t *testing.T) {
	// four edges with distinct symbols leave 0 and all land on 1
	s := builder.MustBuild(nil,
		builder.Arcs(
			builder.Arc{Tail: 0, Head: 1, Label: "a", Weight: -1},
			builder.Arc{Tail: 0, Head: 1, Label: "b", Weight: -1},
			builder.Arc{Tail: 0, Head: 1, Label: "c", Weight: -1},
			builder.Arc{Tail: 0, Head: 1, Label: "d", Weight: -1},
		),
		builder.Initials(0),
		builder.Finals(1),
	)
	pf, err := logsum.ParallelForward[int, int](context.Background(), s, order(s), logsum.WithWorkers(4))
	require.NoError(t, err)
	assert.InDelta(t, -1+math.Log(4), pf.Value(1), eps)
}

func TestParallel_UnreachableTailsStayLogZero(t *testing.T) {
	// 3 -> 2 -> 1 hangs off the final but no initial reaches 2 or 3
	s := builder.MustBuild(nil,
		builder.Arcs(
			builder.Arc{Tail: 0, Head: 1, Label: "a", Weight: -1},
			builder.Arc{Tail: 2, Head: 1, Label: "b", Weight: -2},
			builder.Arc{Tail: 3, Head: 2, Label: "c", Weight: -3},
		),
		builder.Initials(0),
		builder.Finals(1),
	)
	ord := order(s)
	bwd := logsum.Backward[int, int](s, ord)
	pb, err := logsum.ParallelBackward[int, int](context.Background(), s, ord, logsum.WithWorkers(2))
	require.NoError(t, err)

	for _, v := range s.Vertices() {
		assert.Equal(t, bwd.Value(v), pb.Value(v), "v=%d", v)
	}
	assert.True(t, math.IsInf(pb.Value(2), -1))
	assert.True(t, math.IsInf(pb.Value(3), -1))
	assert.InDelta(t, -1.0, pb.Value(0), eps)
}

func TestParallel_Errors(t *testing.T) {
	s := lattice(1, 2, 2)
	_, err := logsum.ParallelForward[int, int](context.Background(), s, order(s), logsum.WithWorkers(0))
	assert.ErrorIs(t, err, logsum.ErrBadWorkers)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = logsum.ParallelBackward[int, int](ctx, s, order(s))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEdgePosteriors(t *testing.T) {
	s := builder.MustBuild(nil, builder.Diamond(math.Log(0.75), math.Log(0.25)))
	ord := order(s)
	fwd := logsum.Forward[int, int](s, ord)
	bwd := logsum.Backward[int, int](s, ord)

	post, err := logsum.EdgePosteriors[int, int](s, fwd, bwd)
	require.NoError(t, err)
	assert.InDelta(t, 0.75, math.Exp(post[0]), eps)
	assert.InDelta(t, 0.75, math.Exp(post[1]), eps)
	assert.InDelta(t, 0.25, math.Exp(post[2]), eps)
	assert.InDelta(t, 0.25, math.Exp(post[3]), eps)

	vp, err := logsum.VertexPosteriors[int, int](s, fwd, bwd)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, vp[0], eps, "source lies on every path")
	assert.InDelta(t, 0.25, math.Exp(vp[2]), eps)
}

func TestEdgePosteriors_NoPath(t *testing.T) {
	s := builder.MustBuild(nil,
		builder.Arcs(builder.Arc{Tail: 0, Head: 1, Label: "a"}, builder.Arc{Tail: 2, Head: 3, Label: "b"}),
		builder.Initials(0),
		builder.Finals(3),
	)
	ord := order(s)
	fwd := logsum.Forward[int, int](s, ord)
	bwd := logsum.Backward[int, int](s, ord)
	_, err := logsum.EdgePosteriors[int, int](s, fwd, bwd)
	assert.ErrorIs(t, err, logsum.ErrNoPath)
	_, err = logsum.VertexPosteriors[int, int](s, fwd, bwd)
	assert.ErrorIs(t, err, logsum.ErrNoPath)
}

func BenchmarkForward(b *testing.B) {
	s := lattice(1, 100, 8)
	ord := order(s)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = logsum.Forward[int, int](s, ord)
	}
}

func BenchmarkParallelForward(b *testing.B) {
	s := lattice(1, 100, 8)
	ord := order(s)
	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = logsum.ParallelForward[int, int](ctx, s, ord, logsum.WithWorkers(4))
	}
}

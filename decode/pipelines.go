// SPDX-License-Identifier: MIT
// Package decode: pipelines.

package decode

import (
	"context"
	"fmt"
	"slices"
	"sort"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvfst/beam"
	"github.com/katalvlaran/lvfst/bfs"
	"github.com/katalvlaran/lvfst/compose"
	"github.com/katalvlaran/lvfst/core"
	"github.com/katalvlaran/lvfst/dfs"
	"github.com/katalvlaran/lvfst/internal/metrics"
	"github.com/katalvlaran/lvfst/kbest"
	"github.com/katalvlaran/lvfst/logsum"
	"github.com/katalvlaran/lvfst/viterbi"
)

// Best returns the single best initial→final path of a.
func Best[V, E comparable](d *Decoder, a core.Automaton[V, E]) (Hypothesis[E], error) {
	r := d.begin(KindBest)

	order, err := dfs.TopoOrderStrict(a)
	if err != nil {
		return Hypothesis[E]{}, r.finish(err)
	}
	p := viterbi.NewForward[V, E]()
	for _, v := range a.Initials() {
		p.Seed(v, 0)
	}
	p.Merge(a, order)

	_, value, ok := p.Best(a)
	if !ok {
		return Hypothesis[E]{}, r.finish(ErrNoPath, zap.Int("vertices", len(order)))
	}
	path := p.BestPath(a)
	metrics.DecodePathLength.Observe(float64(len(path)))

	return Hypothesis[E]{Path: path, Value: value}, r.finish(nil,
		zap.Int("vertices", len(order)), zap.Int("edges", len(path)), zap.Float64("value", value))
}

// KBest returns up to n best paths over all finals, best first. n must not
// exceed the configured KBestMax.
func KBest[V, E comparable](d *Decoder, a core.Automaton[V, E], n int) ([]Hypothesis[E], error) {
	r := d.begin(KindKBest, zap.Int("n", n))
	switch {
	case n < 1:
		return nil, r.finish(fmt.Errorf("%w: n=%d", ErrBadPathCount, n))
	case n > d.cfg.KBestMax:
		return nil, r.finish(fmt.Errorf("%w: n=%d, max %d", ErrTooManyPaths, n, d.cfg.KBestMax))
	}

	order, err := dfs.TopoOrderStrict(a)
	if err != nil {
		return nil, r.finish(err)
	}
	sess := kbest.NewSession(a)
	sess.FirstBest(order)

	// The n best overall are among the n best into each final.
	var out []Hypothesis[E]
	for _, f := range a.Finals() {
		paths, err := sess.Paths(f, n)
		if err != nil {
			return nil, r.finish(err)
		}
		for k, p := range paths {
			v, err := sess.Value(f, k)
			if err != nil {
				return nil, r.finish(err)
			}
			out = append(out, Hypothesis[E]{Path: p, Value: v})
		}
	}
	if len(out) == 0 {
		return nil, r.finish(ErrNoPath)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Value > out[j].Value })
	if len(out) > n {
		out = out[:n]
	}
	for _, h := range out {
		metrics.DecodePathLength.Observe(float64(len(h.Path)))
	}

	return out, r.finish(nil, zap.Int("paths", len(out)), zap.Float64("best", out[0].Value))
}

// Posteriors returns the log posterior of every edge on some
// initial→final path of a. a is first trimmed to its useful region, so
// edges off every complete path are left out of the map. The log-sum
// passes run in parallel, bounded by LogsumWorkers.
func Posteriors[V, E comparable](ctx context.Context, d *Decoder, a core.Indexed[V, E]) (map[E]float64, error) {
	r := d.begin(KindPosteriors)

	order, err := dfs.TopoOrderStrict[V, E](a)
	if err != nil {
		return nil, r.finish(err)
	}
	useful := bfs.Trim[V, E](a)
	if len(useful.Finals()) == 0 {
		return nil, r.finish(ErrNoPath, zap.Int("vertices", len(order)))
	}
	keep := core.VertexSet(useful.Vertices())
	order = slices.DeleteFunc(order, func(v V) bool {
		_, ok := keep[v]
		return !ok
	})

	workers := logsum.WithWorkers(d.cfg.LogsumWorkers)
	fwd, err := logsum.ParallelForward[V, E](ctx, useful, order, workers)
	if err != nil {
		return nil, r.finish(err)
	}
	bwd, err := logsum.ParallelBackward[V, E](ctx, useful, order, workers)
	if err != nil {
		return nil, r.finish(err)
	}

	post, err := logsum.EdgePosteriors[V, E](useful, fwd, bwd)
	if err != nil {
		return nil, r.finish(fmt.Errorf("%w: %w", ErrNoPath, err))
	}

	return post, r.finish(nil,
		zap.Float64("total", logsum.Total[V, E](useful, fwd)),
		zap.Int("edges", len(post)),
		zap.Int("trimmed_edges", len(a.Edges())-len(post)))
}

// Prune runs beam search with the configured BeamAlpha and returns the
// pruned result; its BestPath is the best surviving path.
func Prune[V, E comparable](d *Decoder, a core.Automaton[V, E]) (*beam.Result[V, E], error) {
	r := d.begin(KindPrune, zap.Float64("alpha", d.cfg.BeamAlpha))

	order, err := dfs.TopoOrderStrict(a)
	if err != nil {
		return nil, r.finish(err)
	}
	res, err := beam.Search(a, order, d.cfg.BeamAlpha)
	if err != nil {
		return nil, r.finish(err)
	}
	if total := len(a.Edges()); total > 0 {
		metrics.BeamKeptRatio.Observe(float64(len(res.Edges)) / float64(total))
	}

	return res, r.finish(nil, zap.Int("kept_edges", len(res.Edges)), zap.Int("kept_vertices", len(res.Vertices)))
}

// Compose returns the lazy product of a1 and a2 with the configured mode.
func Compose[V1, E1, V2, E2 comparable](d *Decoder, a1 core.Indexed[V1, E1], a2 core.Indexed[V2, E2]) (*compose.Lazy[V1, E1, V2, E2], error) {
	mode := d.cfg.Mode()
	r := d.begin(KindCompose, zap.Stringer("mode", mode))

	c, err := compose.New(a1, a2, mode)
	if err != nil {
		return nil, r.finish(err)
	}

	return c, r.finish(nil, zap.Int("initials", len(c.Initials())))
}

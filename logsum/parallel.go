// SPDX-License-Identifier: MIT
// Package logsum: snapshot-then-scatter parallel accumulation.
//
// Phase 1 (snapshot): the source value of the current vertex is read once;
// each symbol group turns its edges into (target, contribution) pairs in
// its own slice. Nothing shared is written.
// Phase 2 (scatter): after every group finished, the pairs are folded into
// the target accumulators sequentially, in group-then-edge order.

package logsum

import (
	"context"
	"math"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvfst/core"
)

// contribution is one edge's share of a target accumulator.
type contribution[V comparable] struct {
	target V
	value  float64
}

// ParallelForward computes the same values as Forward by pushing each
// vertex's value along its out-edges, grouped by input symbol. Only
// vertices of order receive contributions.
func ParallelForward[V, E comparable](ctx context.Context, a core.Indexed[V, E], order []V, opts ...Option) (*Pass[V, E], error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	p := NewForward[V, E]()
	p.SeedEnds(a)
	member := core.VertexSet(order)

	for _, u := range order {
		if err = p.scatter(ctx, a, u, a.OutEdgesByInput(u), a.Head, member, o.workers); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// ParallelBackward computes the same values as Backward by pushing each
// vertex's value along its in-edges, in reverse order. Tails outside order
// (unreachable from every initial) stay at log 0, as in Backward.
func ParallelBackward[V, E comparable](ctx context.Context, a core.Indexed[V, E], order []V, opts ...Option) (*Pass[V, E], error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	p := NewBackward[V, E]()
	p.SeedEnds(a)
	member := core.VertexSet(order)

	for i := len(order) - 1; i >= 0; i-- {
		u := order[i]
		if err = p.scatter(ctx, a, u, a.InEdgesByInput(u), a.Tail, member, o.workers); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// scatter pushes Value(u) through every edge of groups to to(edge),
// skipping targets outside member.
func (p *Pass[V, E]) scatter(
	ctx context.Context,
	a core.Automaton[V, E],
	u V,
	groups map[core.Symbol][]E,
	to func(E) V,
	member map[V]struct{},
	workers int,
) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	src := p.Value(u)
	if math.IsInf(src, -1) || len(groups) == 0 {
		return nil
	}

	// Sorted symbols fix the fold order.
	syms := make([]core.Symbol, 0, len(groups))
	for sym := range groups {
		syms = append(syms, sym)
	}
	sort.Slice(syms, func(i, j int) bool { return syms[i] < syms[j] })

	// 1. Snapshot: one result slice per group, filled concurrently.
	results := make([][]contribution[V], len(syms))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, sym := range syms {
		edges := groups[sym]
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out := make([]contribution[V], 0, len(edges))
			for _, e := range edges {
				t := to(e)
				if _, ok := member[t]; !ok {
					continue
				}
				c := src + a.Weight(e)
				if math.IsInf(c, -1) {
					continue
				}
				out = append(out, contribution[V]{target: t, value: c})
			}
			results[i] = out

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	// 2. Scatter: sequential fold into the targets.
	for _, group := range results {
		for _, c := range group {
			p.values[c.target] = LogAdd(p.Value(c.target), c.value)
		}
	}

	return nil
}

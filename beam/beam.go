// SPDX-License-Identifier: MIT
// Package beam: relative-threshold pruning and beam search.

package beam

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/lvfst/core"
)

// ErrBadAlpha indicates a beam width outside [0, 1].
var ErrBadAlpha = errors.New("beam: alpha must lie in [0, 1]")

// Result is the outcome of Merge or Search.
type Result[V, E comparable] struct {
	// Edges kept, in discovery order.
	Edges []E
	// Vertices kept: initials first, then heads in discovery order.
	Vertices []V

	kept   map[V]struct{}
	track  bool
	values map[V]float64
	pred   map[V]E
}

// Kept reports whether v survived pruning.
func (r *Result[V, E]) Kept(v V) bool {
	_, ok := r.kept[v]

	return ok
}

// Value returns the best value of a kept path into v (Search only), or -Inf.
func (r *Result[V, E]) Value(v V) float64 {
	if x, ok := r.values[v]; ok {
		return x
	}

	return core.NegInf
}

// Automaton returns the pruned region of a as a read-only view.
func (r *Result[V, E]) Automaton(a core.Automaton[V, E]) *core.Sub[V, E] {
	return core.Restrict(a, r.Vertices, r.Edges)
}

// BestPath returns the best kept initial→final path in tail-to-head order,
// or nil when no final survived with a finite value. Merge results carry
// no values and always yield nil.
func (r *Result[V, E]) BestPath(a core.Automaton[V, E]) []E {
	if !r.track {
		return nil
	}

	var (
		end   V
		found bool
	)
	best := core.NegInf
	for _, f := range a.Finals() {
		if x := r.Value(f); !math.IsInf(x, -1) && (!found || x > best) {
			end, best, found = f, x, true
		}
	}
	if !found {
		return nil
	}

	initials := core.VertexSet(a.Initials())
	var path []E
	for u := end; ; {
		if _, ok := initials[u]; ok {
			break
		}
		e, ok := r.pred[u]
		if !ok {
			break
		}
		path = append(path, e)
		u = a.Tail(e)
	}
	slices.Reverse(path)

	return path
}

// Merge prunes a along order with beam width alpha.
func Merge[V, E comparable](a core.Automaton[V, E], order []V, alpha float64) (*Result[V, E], error) {
	return run(a, order, alpha, false)
}

// Search prunes a like Merge and tracks the best kept path.
func Search[V, E comparable](a core.Automaton[V, E], order []V, alpha float64) (*Result[V, E], error) {
	return run(a, order, alpha, true)
}

func run[V, E comparable](a core.Automaton[V, E], order []V, alpha float64, track bool) (*Result[V, E], error) {
	if math.IsNaN(alpha) || alpha < 0 || alpha > 1 {
		return nil, fmt.Errorf("%w: got %v", ErrBadAlpha, alpha)
	}

	r := &Result[V, E]{kept: make(map[V]struct{}), track: track}
	if track {
		r.values = make(map[V]float64)
		r.pred = make(map[V]E)
	}
	keep := func(v V) {
		if _, ok := r.kept[v]; !ok {
			r.kept[v] = struct{}{}
			r.Vertices = append(r.Vertices, v)
		}
	}

	// 1. Initials are always kept.
	for _, v := range a.Initials() {
		keep(v)
		if track {
			r.values[v] = 0
		}
	}

	// 2. Expand kept vertices in order.
	for _, u := range order {
		if !r.Kept(u) {
			continue
		}
		out := a.OutEdges(u)
		if len(out) == 0 {
			continue
		}

		lo, hi := math.Inf(1), math.Inf(-1)
		for _, e := range out {
			w := a.Weight(e)
			lo, hi = math.Min(lo, w), math.Max(hi, w)
		}
		cut := cutoff(lo, hi, alpha)

		for _, e := range out {
			w := a.Weight(e)
			if !(w > cut) {
				continue
			}
			r.Edges = append(r.Edges, e)
			h := a.Head(e)
			keep(h)
			if track {
				r.relax(u, h, e, w)
			}
		}
	}

	return r, nil
}

// relax offers the path through e to head.
func (r *Result[V, E]) relax(tail, head V, e E, w float64) {
	src := r.Value(tail)
	if math.IsInf(src, -1) {
		return
	}
	if cand := src + w; cand > r.Value(head) {
		r.values[head] = cand
		r.pred[head] = e
	}
}

// cutoff is lo + alpha·(hi−lo), with the endpoints returned exactly so
// infinite weights never produce a NaN threshold.
func cutoff(lo, hi, alpha float64) float64 {
	switch {
	case alpha == 0 || math.IsInf(lo, -1):
		return lo
	case alpha == 1:
		return hi
	}

	return lo + alpha*(hi-lo)
}

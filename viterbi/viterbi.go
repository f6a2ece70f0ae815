// SPDX-License-Identifier: MIT
// Package viterbi: forward/backward max-plus passes.

package viterbi

import (
	"math"
	"slices"

	"github.com/katalvlaran/lvfst/core"
)

// Direction tells a Pass which side it is seeded from.
type Direction uint8

const (
	// Forward passes are seeded at initials and relax in-edges.
	Forward Direction = iota
	// Backward passes are seeded at finals and relax out-edges.
	Backward
)

// record is the best-path state of one vertex.
type record[E comparable] struct {
	value   float64
	pred    E
	hasPred bool
}

// Pass is one max-plus accumulation over one automaton. It is owned by a
// single caller and must not be shared between concurrent runs.
type Pass[V, E comparable] struct {
	dir  Direction
	recs map[V]*record[E]
}

// NewForward returns an empty forward pass.
func NewForward[V, E comparable]() *Pass[V, E] {
	return &Pass[V, E]{dir: Forward, recs: make(map[V]*record[E])}
}

// NewBackward returns an empty backward pass.
func NewBackward[V, E comparable]() *Pass[V, E] {
	return &Pass[V, E]{dir: Backward, recs: make(map[V]*record[E])}
}

// Direction reports how the pass was created.
func (p *Pass[V, E]) Direction() Direction { return p.dir }

// Seed sets the value of v and clears its predecessor. Forward passes
// seed initials with 0; backward passes seed finals.
func (p *Pass[V, E]) Seed(v V, value float64) {
	p.recs[v] = &record[E]{value: value}
}

// Value returns the best value recorded at v, or -Inf.
func (p *Pass[V, E]) Value(v V) float64 {
	if r, ok := p.recs[v]; ok {
		return r.value
	}

	return core.NegInf
}

// Predecessor returns the edge that produced Value(v). ok is false for
// seeded vertices that were never improved and for unreached ones.
func (p *Pass[V, E]) Predecessor(v V) (E, bool) {
	if r, ok := p.recs[v]; ok && r.hasPred {
		return r.pred, true
	}
	var zero E

	return zero, false
}

// Merge relaxes every vertex of order. Forward passes walk order as given
// and scan in-edges; backward passes walk it reversed and scan out-edges.
func (p *Pass[V, E]) Merge(a core.Automaton[V, E], order []V) {
	if p.dir == Backward {
		for i := len(order) - 1; i >= 0; i-- {
			p.relax(a, order[i], a.OutEdges(order[i]), a.Head)
		}

		return
	}
	for _, u := range order {
		p.relax(a, u, a.InEdges(u), a.Tail)
	}
}

// relax folds the candidates of edges into u. from maps an edge to the
// neighbor whose value it extends.
func (p *Pass[V, E]) relax(a core.Automaton[V, E], u V, edges []E, from func(E) V) {
	// 1. Start from the current value so only strict improvements count.
	best := p.Value(u)
	var (
		arg   E
		found bool
	)

	// 2. Strict max over candidates; -Inf sources are skipped.
	for _, e := range edges {
		src := p.Value(from(e))
		if math.IsInf(src, -1) {
			continue
		}
		if cand := src + a.Weight(e); cand > best {
			best, arg, found = cand, e, true
		}
	}

	// 3. Commit.
	if found {
		p.recs[u] = &record[E]{value: best, pred: arg, hasPred: true}
	}
}

// Best returns the endpoint with the greatest finite value among the
// finals (Forward) or initials (Backward). ok is false when none is finite.
// Ties keep the earliest endpoint in list order.
func (p *Pass[V, E]) Best(a core.Automaton[V, E]) (v V, value float64, ok bool) {
	ends := a.Finals()
	if p.dir == Backward {
		ends = a.Initials()
	}

	value = core.NegInf
	for _, u := range ends {
		if x := p.Value(u); !math.IsInf(x, -1) && (!ok || x > value) {
			v, value, ok = u, x, true
		}
	}

	return v, value, ok
}

// BestPath returns the edges of the best path in tail-to-head order, or
// nil when no endpoint has a finite value.
func (p *Pass[V, E]) BestPath(a core.Automaton[V, E]) []E {
	u, _, ok := p.Best(a)
	if !ok {
		return nil
	}

	stop := core.VertexSet(a.Initials())
	step := a.Tail
	if p.dir == Backward {
		stop = core.VertexSet(a.Finals())
		step = a.Head
	}

	var path []E
	for {
		if _, done := stop[u]; done {
			break
		}
		e, ok := p.Predecessor(u)
		if !ok {
			break
		}
		path = append(path, e)
		u = step(e)
	}

	if p.dir == Forward {
		slices.Reverse(path)
	}

	return path
}

// ShortestPath seeds every initial with 0, runs a forward Merge along
// order and returns the best path to a final. An empty result means no
// final is reachable.
func ShortestPath[V, E comparable](a core.Automaton[V, E], order []V) []E {
	p := NewForward[V, E]()
	for _, v := range a.Initials() {
		p.Seed(v, 0)
	}
	p.Merge(a, order)

	return p.BestPath(a)
}

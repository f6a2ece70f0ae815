// SPDX-License-Identifier: MIT
// Package logsum: sequential forward/backward accumulation.

package logsum

import (
	"math"

	"github.com/katalvlaran/lvfst/core"
)

// LogAdd returns log(exp(a) + exp(b)) without leaving float range.
func LogAdd(a, b float64) float64 {
	if math.IsInf(a, -1) {
		return b
	}
	if math.IsInf(b, -1) {
		return a
	}
	if a < b {
		a, b = b, a
	}

	return a + math.Log1p(math.Exp(b-a))
}

// Direction tells a Pass which side it is seeded from.
type Direction uint8

const (
	// DirForward passes are seeded at initials.
	DirForward Direction = iota
	// DirBackward passes are seeded at finals.
	DirBackward
)

// Pass holds one log-semiring accumulator per vertex. It is owned by one
// caller and must not be shared between concurrent runs.
type Pass[V, E comparable] struct {
	dir    Direction
	values map[V]float64
}

// NewForward returns an empty forward pass.
func NewForward[V, E comparable]() *Pass[V, E] {
	return &Pass[V, E]{dir: DirForward, values: make(map[V]float64)}
}

// NewBackward returns an empty backward pass.
func NewBackward[V, E comparable]() *Pass[V, E] {
	return &Pass[V, E]{dir: DirBackward, values: make(map[V]float64)}
}

// Direction reports how the pass was created.
func (p *Pass[V, E]) Direction() Direction { return p.dir }

// Seed sets the accumulator of v.
func (p *Pass[V, E]) Seed(v V, value float64) { p.values[v] = value }

// SeedEnds seeds every initial (Forward) or final (Backward) with 0.
func (p *Pass[V, E]) SeedEnds(a core.Automaton[V, E]) {
	ends := a.Initials()
	if p.dir == DirBackward {
		ends = a.Finals()
	}
	for _, v := range ends {
		p.values[v] = 0
	}
}

// Value returns the accumulator of v, or -Inf (log 0) when unseen.
func (p *Pass[V, E]) Value(v V) float64 {
	if x, ok := p.values[v]; ok {
		return x
	}

	return core.NegInf
}

// Merge folds every vertex of order. Forward passes walk order and sum
// over in-edges; backward passes walk it reversed and sum over out-edges.
// Seeds are kept and added to.
func (p *Pass[V, E]) Merge(a core.Automaton[V, E], order []V) {
	if p.dir == DirBackward {
		for i := len(order) - 1; i >= 0; i-- {
			p.fold(a, order[i], a.OutEdges(order[i]), a.Head)
		}

		return
	}
	for _, u := range order {
		p.fold(a, u, a.InEdges(u), a.Tail)
	}
}

func (p *Pass[V, E]) fold(a core.Automaton[V, E], u V, edges []E, from func(E) V) {
	acc := p.Value(u)
	for _, e := range edges {
		src := p.Value(from(e))
		if math.IsInf(src, -1) {
			continue
		}
		c := src + a.Weight(e)
		if math.IsInf(c, -1) {
			continue
		}
		acc = LogAdd(acc, c)
	}
	p.values[u] = acc
}

// Forward runs a seeded forward Merge and returns the pass.
func Forward[V, E comparable](a core.Automaton[V, E], order []V) *Pass[V, E] {
	p := NewForward[V, E]()
	p.SeedEnds(a)
	p.Merge(a, order)

	return p
}

// Backward runs a seeded backward Merge and returns the pass.
func Backward[V, E comparable](a core.Automaton[V, E], order []V) *Pass[V, E] {
	p := NewBackward[V, E]()
	p.SeedEnds(a)
	p.Merge(a, order)

	return p
}

// SPDX-License-Identifier: MIT
// Package compose: lazy pair automaton.

package compose

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/lvfst/core"
	"github.com/katalvlaran/lvfst/internal/metrics"
)

// Lazy is the composition of a1 and a2. Build it with New.
type Lazy[V1, E1, V2, E2 comparable] struct {
	a1   core.Indexed[V1, E1]
	a2   core.Indexed[V2, E2]
	mode Mode

	verticesOnce sync.Once
	vertices     []Pair[V1, V2]
	edgesOnce    sync.Once
	edges        []Pair[E1, E2]
	initialsOnce sync.Once
	initials     []Pair[V1, V2]
	finalsOnce   sync.Once
	finals       []Pair[V1, V2]

	mu          sync.Mutex // guards the slots below
	in          slot[Pair[V1, V2], []Pair[E1, E2]]
	out         slot[Pair[V1, V2], []Pair[E1, E2]]
	inByInput   slot[Pair[V1, V2], map[core.Symbol][]Pair[E1, E2]]
	inByOutput  slot[Pair[V1, V2], map[core.Symbol][]Pair[E1, E2]]
	outByInput  slot[Pair[V1, V2], map[core.Symbol][]Pair[E1, E2]]
	outByOutput slot[Pair[V1, V2], map[core.Symbol][]Pair[E1, E2]]
}

var _ core.Indexed[Pair[int, int], Pair[int, int]] = (*Lazy[int, int, int, int])(nil)

// New composes a1 with a2 using the given matching mode. Both automata
// must intern symbols in the same table.
func New[V1, E1, V2, E2 comparable](a1 core.Indexed[V1, E1], a2 core.Indexed[V2, E2], mode Mode) (*Lazy[V1, E1, V2, E2], error) {
	switch mode {
	case Mode1, Mode2, Naive:
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, mode)
	}

	return &Lazy[V1, E1, V2, E2]{a1: a1, a2: a2, mode: mode}, nil
}

// Mode returns the matching strategy in use.
func (c *Lazy[V1, E1, V2, E2]) Mode() Mode { return c.mode }

// Vertices returns the cross product of both vertex sets, a1-major.
func (c *Lazy[V1, E1, V2, E2]) Vertices() []Pair[V1, V2] {
	c.verticesOnce.Do(func() {
		c.vertices = cross(c.a1.Vertices(), c.a2.Vertices())
	})

	return c.vertices
}

// Edges returns every matched edge pair, grouped by tail pair in Vertices
// order.
func (c *Lazy[V1, E1, V2, E2]) Edges() []Pair[E1, E2] {
	c.edgesOnce.Do(func() {
		for _, v := range c.Vertices() {
			c.edges = append(c.edges, c.matchOut(v)...)
		}
	})

	return c.edges
}

// Initials returns the cross product of both initial sets.
func (c *Lazy[V1, E1, V2, E2]) Initials() []Pair[V1, V2] {
	c.initialsOnce.Do(func() {
		c.initials = cross(c.a1.Initials(), c.a2.Initials())
	})

	return c.initials
}

// Finals returns the cross product of both final sets.
func (c *Lazy[V1, E1, V2, E2]) Finals() []Pair[V1, V2] {
	c.finalsOnce.Do(func() {
		c.finals = cross(c.a1.Finals(), c.a2.Finals())
	})

	return c.finals
}

func (c *Lazy[V1, E1, V2, E2]) Tail(e Pair[E1, E2]) Pair[V1, V2] {
	return Pair[V1, V2]{c.a1.Tail(e.First), c.a2.Tail(e.Second)}
}

func (c *Lazy[V1, E1, V2, E2]) Head(e Pair[E1, E2]) Pair[V1, V2] {
	return Pair[V1, V2]{c.a1.Head(e.First), c.a2.Head(e.Second)}
}

func (c *Lazy[V1, E1, V2, E2]) Weight(e Pair[E1, E2]) float64 {
	return c.a1.Weight(e.First) + c.a2.Weight(e.Second)
}

func (c *Lazy[V1, E1, V2, E2]) Input(e Pair[E1, E2]) core.Symbol { return c.a1.Input(e.First) }

func (c *Lazy[V1, E1, V2, E2]) Output(e Pair[E1, E2]) core.Symbol { return c.a2.Output(e.Second) }

// InEdges returns the composed edges entering v.
func (c *Lazy[V1, E1, V2, E2]) InEdges(v Pair[V1, V2]) []Pair[E1, E2] {
	return cached(c, &c.in, metrics.CacheInEdges, v, c.matchIn)
}

// OutEdges returns the composed edges leaving v.
func (c *Lazy[V1, E1, V2, E2]) OutEdges(v Pair[V1, V2]) []Pair[E1, E2] {
	return cached(c, &c.out, metrics.CacheOutEdges, v, c.matchOut)
}

func (c *Lazy[V1, E1, V2, E2]) InEdgesByInput(v Pair[V1, V2]) map[core.Symbol][]Pair[E1, E2] {
	return cached(c, &c.inByInput, metrics.CacheInEdgesByInput, v, func(v Pair[V1, V2]) map[core.Symbol][]Pair[E1, E2] {
		return group(c.matchIn(v), c.Input)
	})
}

func (c *Lazy[V1, E1, V2, E2]) InEdgesByOutput(v Pair[V1, V2]) map[core.Symbol][]Pair[E1, E2] {
	return cached(c, &c.inByOutput, metrics.CacheInEdgesByOutput, v, func(v Pair[V1, V2]) map[core.Symbol][]Pair[E1, E2] {
		return group(c.matchIn(v), c.Output)
	})
}

func (c *Lazy[V1, E1, V2, E2]) OutEdgesByInput(v Pair[V1, V2]) map[core.Symbol][]Pair[E1, E2] {
	return cached(c, &c.outByInput, metrics.CacheOutEdgesByInput, v, func(v Pair[V1, V2]) map[core.Symbol][]Pair[E1, E2] {
		return group(c.matchOut(v), c.Input)
	})
}

func (c *Lazy[V1, E1, V2, E2]) OutEdgesByOutput(v Pair[V1, V2]) map[core.Symbol][]Pair[E1, E2] {
	return cached(c, &c.outByOutput, metrics.CacheOutEdgesByOutput, v, func(v Pair[V1, V2]) map[core.Symbol][]Pair[E1, E2] {
		return group(c.matchOut(v), c.Output)
	})
}

// cached serves v from s or computes and stores it. The lock is not held
// while computing, so two goroutines missing together both compute; the
// results are identical.
func cached[V1, E1, V2, E2 comparable, T any](
	c *Lazy[V1, E1, V2, E2],
	s *slot[Pair[V1, V2], T],
	name string,
	v Pair[V1, V2],
	compute func(Pair[V1, V2]) T,
) T {
	c.mu.Lock()
	if val, ok := s.get(v); ok {
		c.mu.Unlock()
		metrics.ComposeCacheHits.WithLabelValues(name).Inc()

		return val
	}
	c.mu.Unlock()
	metrics.ComposeCacheMisses.WithLabelValues(name).Inc()

	val := compute(v)
	c.mu.Lock()
	s.put(v, val)
	c.mu.Unlock()

	return val
}

func cross[A, B comparable](as []A, bs []B) []Pair[A, B] {
	out := make([]Pair[A, B], 0, len(as)*len(bs))
	for _, a := range as {
		for _, b := range bs {
			out = append(out, Pair[A, B]{a, b})
		}
	}

	return out
}

func group[E comparable](edges []E, label func(E) core.Symbol) map[core.Symbol][]E {
	out := make(map[core.Symbol][]E)
	for _, e := range edges {
		out[label(e)] = append(out[label(e)], e)
	}

	return out
}

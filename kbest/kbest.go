// SPDX-License-Identifier: MIT
// Package kbest: lazy k-best session.

package kbest

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/lvfst/core"
)

// Session is one k-best enumeration over one automaton snapshot. It must
// not be shared between goroutines.
type Session[V, E comparable] struct {
	a         core.Automaton[V, E]
	initials  map[V]struct{}
	deck      map[V][]hypothesis[E]
	bottomOut map[V]bool
	top       map[E]int
}

// NewSession prepares an empty session over a. Call FirstBest before any
// other method.
func NewSession[V, E comparable](a core.Automaton[V, E]) *Session[V, E] {
	return &Session[V, E]{
		a:         a,
		initials:  core.VertexSet(a.Initials()),
		deck:      make(map[V][]hypothesis[E]),
		bottomOut: make(map[V]bool),
		top:       make(map[E]int),
	}
}

// topOf returns the largest tail rank already used through e, or -1.
func (s *Session[V, E]) topOf(e E) int {
	if r, ok := s.top[e]; ok {
		return r
	}

	return -1
}

// FirstBest computes the rank-0 hypothesis of every vertex in order.
// order must be topological (see dfs.TopoOrder).
func (s *Session[V, E]) FirstBest(order []V) {
	// 1. Initials: the empty path, nothing beyond it.
	for v := range s.initials {
		s.deck[v] = []hypothesis[E]{{rank: -1, value: 0}}
		s.bottomOut[v] = true
	}

	// 2. Everyone else: best single extension of a tail's rank 0.
	for _, v := range order {
		if _, ok := s.initials[v]; ok {
			continue
		}
		best := core.NegInf
		var (
			arg   E
			found bool
		)
		for _, e := range s.a.InEdges(v) {
			td := s.deck[s.a.Tail(e)]
			if len(td) == 0 {
				continue
			}
			if cand := s.a.Weight(e) + td[0].value; cand > best {
				best, arg, found = cand, e, true
			}
		}
		if !found {
			s.bottomOut[v] = true
			continue
		}
		s.deck[v] = append(s.deck[v], hypothesis[E]{edge: arg, hasEdge: true, rank: 0, value: best})
		s.top[arg] = 0
	}
}

// NextBest makes sure rank k of v is computed. It is a no-op when the deck
// already holds rank k, returns ErrRankOutOfOrder when rank k-1 is still
// missing and ErrRankNotFound when v has no (k+1)-th path.
func (s *Session[V, E]) NextBest(v V, k int) error {
	size := len(s.deck[v])
	switch {
	case k < size:
		return nil
	case k > size:
		return fmt.Errorf("%w: rank %d requested, %d computed at %v", ErrRankOutOfOrder, k, size, v)
	case size == 0 || s.bottomOut[v]:
		return fmt.Errorf("%w: rank %d at %v", ErrRankNotFound, k, v)
	}

	// 1. Walk the chain of last hypotheses while the tail lacks the next rank.
	var stack []V
	for u := v; ; {
		d := s.deck[u]
		h := d[len(d)-1]
		if !h.hasEdge {
			break
		}
		t := s.a.Tail(h.edge)
		td := s.deck[t]
		if len(td) == 0 {
			break
		}
		stack = append(stack, u)
		if h.rank < len(td)-1 || s.bottomOut[t] {
			break
		}
		u = t
	}

	// 2. Unwind: each visited vertex gains one rank (or bottoms out).
	for i := len(stack) - 1; i >= 0; i-- {
		s.extend(stack[i])
	}

	if len(s.deck[v]) <= k {
		return fmt.Errorf("%w: rank %d at %v", ErrRankNotFound, k, v)
	}

	return nil
}

// extend appends the best unused extension to the deck of u.
func (s *Session[V, E]) extend(u V) {
	best := core.NegInf
	var (
		arg   E
		found bool
	)
	for _, e := range s.a.InEdges(u) {
		td := s.deck[s.a.Tail(e)]
		next := s.topOf(e) + 1
		if next >= len(td) {
			continue
		}
		if cand := s.a.Weight(e) + td[next].value; cand > best {
			best, arg, found = cand, e, true
		}
	}
	if !found {
		s.bottomOut[u] = true
		return
	}

	s.top[arg] = s.topOf(arg) + 1
	s.deck[u] = append(s.deck[u], hypothesis[E]{edge: arg, hasEdge: true, rank: s.top[arg], value: best})
}

// Size returns how many ranks are currently computed at v.
func (s *Session[V, E]) Size(v V) int { return len(s.deck[v]) }

// Exhausted reports whether v is known to have no further paths.
func (s *Session[V, E]) Exhausted(v V) bool { return s.bottomOut[v] }

// Value returns the value of the rank-k path into v. The rank must
// already be computed.
func (s *Session[V, E]) Value(v V, k int) (float64, error) {
	d := s.deck[v]
	if k < 0 || k >= len(d) {
		return 0, fmt.Errorf("%w: rank %d at %v", ErrRankNotFound, k, v)
	}

	return d[k].value, nil
}

// BestPath returns the edges of the rank-k path into v in tail-to-head
// order. The rank must already be computed.
func (s *Session[V, E]) BestPath(v V, k int) ([]E, error) {
	if k < 0 || k >= len(s.deck[v]) {
		return nil, fmt.Errorf("%w: rank %d at %v", ErrRankNotFound, k, v)
	}

	var path []E
	for u, i := v, k; ; {
		h := s.deck[u][i]
		if !h.hasEdge {
			break // reached an initial
		}
		path = append(path, h.edge)
		u, i = s.a.Tail(h.edge), h.rank
	}
	slices.Reverse(path)

	return path, nil
}

// Paths returns up to n best paths into v, computing missing ranks as it
// goes. Fewer than n paths are returned without error when v runs out.
func (s *Session[V, E]) Paths(v V, n int) ([][]E, error) {
	out := make([][]E, 0, n)
	for k := 0; k < n; k++ {
		if err := s.NextBest(v, k); err != nil {
			if errors.Is(err, ErrRankNotFound) {
				break
			}
			return out, err
		}
		p, err := s.BestPath(v, k)
		if err != nil {
			return out, err
		}
		out = append(out, p)
	}

	return out, nil
}

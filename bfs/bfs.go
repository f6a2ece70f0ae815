// Package bfs provides breadth-first search over an automaton, returning
// edge-count distances, parent edges and visit order.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvfst/core"
)

// walker encapsulates mutable BFS state.
type walker[V, E comparable] struct {
	a     core.Automaton[V, E]
	opts  Options[V]
	ctx   context.Context
	queue []V
	res   *Result[V, E]
}

// BFS runs a multi-source breadth-first search over a. Forward searches
// start from a.Initials(), Backward ones from a.Finals(); every source has
// depth 0. Returns ErrOptionViolation for bad options, the context error on
// cancellation, or any OnVisit error.
func BFS[V, E comparable](a core.Automaton[V, E], opts ...Option[V]) (*Result[V, E], error) {
	o := DefaultOptions[V]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker[V, E]{
		a:    a,
		opts: o,
		ctx:  o.Ctx,
		res: &Result[V, E]{
			Depth:  make(map[V]int),
			Parent: make(map[V]E),
		},
	}

	sources := a.Initials()
	if o.Direction == Backward {
		sources = a.Finals()
	}
	for _, v := range sources {
		if _, seen := w.res.Depth[v]; !seen {
			w.res.Depth[v] = 0
			w.queue = append(w.queue, v)
		}
	}

	return w.res, w.loop()
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[V, E]) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		v := w.queue[0]
		w.queue = w.queue[1:]
		depth := w.res.Depth[v]

		w.res.Order = append(w.res.Order, v)
		if err := w.opts.OnVisit(v, depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %v: %w", v, err)
		}
		w.enqueueNeighbors(v, depth)
	}

	return nil
}

// enqueueNeighbors enqueues every unseen neighbor of v within MaxDepth.
func (w *walker[V, E]) enqueueNeighbors(v V, depth int) {
	next := depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}

	edges, endpoint := w.a.OutEdges(v), w.a.Head
	if w.opts.Direction == Backward {
		edges, endpoint = w.a.InEdges(v), w.a.Tail
	}
	for _, e := range edges {
		u := endpoint(e)
		if _, seen := w.res.Depth[u]; seen {
			continue
		}
		w.res.Depth[u] = next
		w.res.Parent[u] = e
		w.queue = append(w.queue, u)
	}
}

// PathTo returns the edges from the nearest source to v, in travel order.
// For a Backward search the edges run from v toward a final, which is
// again their natural order. Returns ErrNotReached if v was not visited.
func (r *Result[V, E]) PathTo(a core.Automaton[V, E], v V, dir Direction) ([]E, error) {
	if !r.Reached(v) {
		return nil, fmt.Errorf("%w: %v", ErrNotReached, v)
	}

	var path []E
	for cur := v; ; {
		e, ok := r.Parent[cur]
		if !ok {
			break
		}
		path = append(path, e)
		if dir == Backward {
			cur = a.Head(e)
		} else {
			cur = a.Tail(e)
		}
	}
	if dir == Forward {
		for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
			path[i], path[j] = path[j], path[i]
		}
	}

	return path, nil
}

// Package bfs provides tunable options and error definitions
// for breadth-first search over an automaton.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNotReached is returned by PathTo for a vertex the search never saw.
	ErrNotReached = errors.New("bfs: vertex not reached")
)

// Direction selects which way edges are followed.
type Direction uint8

const (
	// Forward starts from the initials and follows tail→head.
	Forward Direction = iota
	// Backward starts from the finals and follows head→tail.
	Backward
)

// Option configures BFS behavior via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation when BFS
// is invoked.
type Option[V comparable] func(*Options[V])

// Options holds parameters and callbacks to customize BFS execution.
type Options[V comparable] struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Direction of travel; Forward by default.
	Direction Direction

	// OnVisit is called when visiting a vertex. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(v V, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	MaxDepth int

	err error
}

// DefaultOptions returns background context, Forward, no depth limit and a
// no-op visit hook.
func DefaultOptions[V comparable]() Options[V] {
	return Options[V]{
		Ctx:     context.Background(),
		OnVisit: func(V, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext[V comparable](ctx context.Context) Option[V] {
	return func(o *Options[V]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithDirection selects Forward or Backward travel.
func WithDirection[V comparable](d Direction) Option[V] {
	return func(o *Options[V]) {
		if d != Forward && d != Backward {
			o.err = fmt.Errorf("%w: unknown direction %d", ErrOptionViolation, d)
			return
		}
		o.Direction = d
	}
}

// WithOnVisit registers a callback to run on visit.
func WithOnVisit[V comparable](fn func(v V, depth int) error) Option[V] {
	return func(o *Options[V]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search beyond depth d (d > 0); 0 disables the
// limit and a negative d is an ErrOptionViolation.
func WithMaxDepth[V comparable](d int) Option[V] {
	return func(o *Options[V]) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// Result holds the outcome of a BFS traversal:
//   - Order: vertices visited, in visit sequence.
//   - Depth: distance in edges from the nearest source.
//   - Parent: the edge through which each non-source vertex was reached.
type Result[V, E comparable] struct {
	Order  []V
	Depth  map[V]int
	Parent map[V]E
}

// Reached reports whether v was visited.
func (r *Result[V, E]) Reached(v V) bool {
	_, ok := r.Depth[v]

	return ok
}

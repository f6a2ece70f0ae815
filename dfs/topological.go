// Package dfs provides topological ordering and cycle detection over
// automata.
//
// TopoOrder computes a linear ordering of the vertices reachable from the
// initial set such that, for every edge tail→head between them, tail
// appears before head, provided the reachable region is acyclic.
//
// Complexity:
//
//   - Time:   O(V + E) (each vertex finishes once, each edge is scanned once)
//   - Memory: O(V + E) (explicit stack and visited set)
package dfs

import (
	"slices"

	"github.com/katalvlaran/lvfst/core"
)

// action is the phase marker pushed with each vertex.
type action uint8

const (
	discover action = iota // first pop: mark visited, schedule successors
	finish                 // second pop: emit into the finish order
)

// frame is one entry of the explicit DFS stack.
type frame[V comparable] struct {
	act action
	v   V
}

// TopoOrder returns the vertices reachable from a.Initials() in
// topological order. The reachable region must be acyclic; this is not
// checked (see TopoOrderStrict).
func TopoOrder[V, E comparable](a core.Automaton[V, E]) []V {
	order, _ := walk(a)

	return order
}

// TopoOrderStrict is TopoOrder with the acyclicity precondition enforced.
// Returns ErrCycleDetected if the reachable region is cyclic.
func TopoOrderStrict[V, E comparable](a core.Automaton[V, E]) ([]V, error) {
	order, cyclic := walk(a)
	if cyclic {
		return nil, ErrCycleDetected
	}

	return order, nil
}

// HasCycle reports whether the region reachable from a.Initials() contains
// a cycle (self-loops included).
func HasCycle[V, E comparable](a core.Automaton[V, E]) bool {
	_, cyclic := walk(a)

	return cyclic
}

// walk runs the two-phase DFS and returns the reversed finish order along
// with whether an edge into an unfinished (Gray) vertex was seen.
func walk[V, E comparable](a core.Automaton[V, E]) ([]V, bool) {
	// 1. Seed the stack with every initial vertex, in listed order.
	initials := a.Initials()
	stack := make([]frame[V], 0, len(initials))
	for _, v := range initials {
		stack = append(stack, frame[V]{act: discover, v: v})
	}

	// 2. Gray = discovered, finish pending; Black = finished.
	//    Pending finish markers are exactly the current DFS path, so an
	//    edge into a Gray vertex is a back-edge.
	state := make(map[V]int)
	order := make([]V, 0)
	cyclic := false

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch f.act {
		case discover:
			if state[f.v] != White {
				continue // already discovered through another path
			}
			state[f.v] = Gray
			stack = append(stack, frame[V]{act: finish, v: f.v})

			for _, e := range a.OutEdges(f.v) {
				u := a.Head(e)
				switch state[u] {
				case White:
					stack = append(stack, frame[V]{act: discover, v: u})
				case Gray:
					cyclic = true
				}
			}
		case finish:
			state[f.v] = Black
			order = append(order, f.v)
		}
	}

	// 3. Reverse the finish order to obtain the topological order.
	slices.Reverse(order)

	return order, cyclic
}

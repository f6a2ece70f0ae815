package bfs

import (
	"github.com/katalvlaran/lvfst/core"
)

// Accessible returns the vertices reachable from some initial vertex, in
// BFS visit order.
func Accessible[V, E comparable](a core.Automaton[V, E]) []V {
	res, _ := BFS(a) // no options, no hook: cannot fail

	return res.Order
}

// Coaccessible returns the vertices from which some final vertex is
// reachable, in backward BFS visit order.
func Coaccessible[V, E comparable](a core.Automaton[V, E]) []V {
	res, _ := BFS(a, WithDirection[V](Backward))

	return res.Order
}

// Useful returns the vertices that are both accessible and coaccessible,
// i.e. that lie on some initial→final path. Order follows Accessible.
func Useful[V, E comparable](a core.Automaton[V, E]) []V {
	co := core.VertexSet(Coaccessible(a))
	var out []V
	for _, v := range Accessible(a) {
		if _, ok := co[v]; ok {
			out = append(out, v)
		}
	}

	return out
}

// Trim returns the view of a restricted to its useful vertices and the
// edges between them. Every vertex and edge of the view lies on an
// initial→final path.
func Trim[V, E comparable](a core.Automaton[V, E]) *core.Sub[V, E] {
	useful := Useful(a)
	keep := core.VertexSet(useful)
	var edges []E
	for _, v := range useful {
		for _, e := range a.OutEdges(v) {
			if _, ok := keep[a.Head(e)]; ok {
				edges = append(edges, e)
			}
		}
	}

	return core.Restrict(a, useful, edges)
}

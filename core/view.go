// File: view.go
// Role: Non-mutating sub-automaton views.
// Determinism:
//   - Vertex and edge order follow the caller's slices; adjacency lists keep
//     the order of the source automaton.
// AI-HINT (file):
//   - Views do NOT copy edge records; Weight/Input/Output/Tail/Head delegate to the source.

package core

// Sub is a read-only restriction of an automaton to a vertex subset and an
// edge subset. It is produced by Restrict and satisfies Indexed; the
// symbol buckets are grouped from the kept adjacency on every call.
type Sub[V, E comparable] struct {
	src      Automaton[V, E]
	vertices []V
	edges    []E
	initials []V
	finals   []V
	in       map[V][]E
	out      map[V][]E
}

var _ Indexed[int, int] = (*Sub[int, int])(nil)

// Restrict returns the sub-automaton of a induced by the given vertices and
// edges: an edge is kept only if it is listed and both endpoints are listed.
// Initials and finals of a are kept when listed. The source is not mutated
// and must stay unchanged while the view is in use.
//
// Complexity: O(|vertices| + |edges| + Σ deg) to build the adjacency view.
func Restrict[V, E comparable](a Automaton[V, E], vertices []V, edges []E) *Sub[V, E] {
	keepV := VertexSet(vertices)
	keepE := make(map[E]struct{}, len(edges))

	sub := &Sub[V, E]{
		src:      a,
		vertices: append([]V(nil), vertices...),
		in:       make(map[V][]E, len(vertices)),
		out:      make(map[V][]E, len(vertices)),
	}

	// 1) Edge list: listed edges with both endpoints kept, first occurrence only.
	for _, e := range edges {
		if _, dup := keepE[e]; dup {
			continue
		}
		if _, ok := keepV[a.Tail(e)]; !ok {
			continue
		}
		if _, ok := keepV[a.Head(e)]; !ok {
			continue
		}
		keepE[e] = struct{}{}
		sub.edges = append(sub.edges, e)
	}

	// 2) Adjacency in source order.
	for _, v := range sub.vertices {
		for _, e := range a.InEdges(v) {
			if _, ok := keepE[e]; ok {
				sub.in[v] = append(sub.in[v], e)
			}
		}
		for _, e := range a.OutEdges(v) {
			if _, ok := keepE[e]; ok {
				sub.out[v] = append(sub.out[v], e)
			}
		}
	}

	// 3) Designated vertices that survived.
	for _, v := range a.Initials() {
		if _, ok := keepV[v]; ok {
			sub.initials = append(sub.initials, v)
		}
	}
	for _, v := range a.Finals() {
		if _, ok := keepV[v]; ok {
			sub.finals = append(sub.finals, v)
		}
	}

	return sub
}

func (s *Sub[V, E]) Vertices() []V { return s.vertices }
func (s *Sub[V, E]) Edges() []E { return s.edges }
func (s *Sub[V, E]) Initials() []V { return s.initials }
func (s *Sub[V, E]) Finals() []V { return s.finals }
func (s *Sub[V, E]) Tail(e E) V { return s.src.Tail(e) }
func (s *Sub[V, E]) Head(e E) V { return s.src.Head(e) }
func (s *Sub[V, E]) Weight(e E) float64 { return s.src.Weight(e) }
func (s *Sub[V, E]) Input(e E) Symbol { return s.src.Input(e) }
func (s *Sub[V, E]) Output(e E) Symbol { return s.src.Output(e) }
func (s *Sub[V, E]) InEdges(v V) []E { return s.in[v] }
func (s *Sub[V, E]) OutEdges(v V) []E { return s.out[v] }

func (s *Sub[V, E]) InEdgesByInput(v V) map[Symbol][]E { return bucket(s.in[v], s.src.Input) }
func (s *Sub[V, E]) InEdgesByOutput(v V) map[Symbol][]E { return bucket(s.in[v], s.src.Output) }
func (s *Sub[V, E]) OutEdgesByInput(v V) map[Symbol][]E { return bucket(s.out[v], s.src.Input) }
func (s *Sub[V, E]) OutEdgesByOutput(v V) map[Symbol][]E { return bucket(s.out[v], s.src.Output) }

// bucket groups edges by label, keeping their relative order. Returns nil
// for no edges.
func bucket[E comparable](edges []E, label func(E) Symbol) map[Symbol][]E {
	if len(edges) == 0 {
		return nil
	}
	out := make(map[Symbol][]E)
	for _, e := range edges {
		sym := label(e)
		out[sym] = append(out[sym], e)
	}

	return out
}

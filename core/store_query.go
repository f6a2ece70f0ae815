// File: store_query.go
// Role: Automaton / Indexed / Timed query surface of Store.
// Concurrency:
//   - Read lock per call. Returned slices and maps alias internal storage and
//     stay valid until the next builder call touching the same vertex.

package core

import "fmt"

// Vertices returns all present vertex ids in insertion order.
func (s *Store) Vertices() []int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.vertexIDs
}

// Edges returns all present edge ids in insertion order.
func (s *Store) Edges() []int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.edgeIDs
}

// Initials returns the initial vertex list.
func (s *Store) Initials() []int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.initials
}

// Finals returns the final vertex list.
func (s *Store) Finals() []int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.finals
}

// Tail returns the source vertex of edge e. Panics if e was never added.
func (s *Store) Tail(e int) int { return s.edge(e).Tail }

// Head returns the target vertex of edge e. Panics if e was never added.
func (s *Store) Head(e int) int { return s.edge(e).Head }

// Weight returns the weight of edge e. Panics if e was never added.
func (s *Store) Weight(e int) float64 { return s.edge(e).Weight }

// Input returns the input symbol of edge e. Panics if e was never added.
func (s *Store) Input(e int) Symbol { return s.edge(e).Input }

// Output returns the output symbol of edge e. Panics if e was never added.
func (s *Store) Output(e int) Symbol { return s.edge(e).Output }

// Time returns the time stamp of vertex v. Panics if v was never added.
func (s *Store) Time(v int) int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.hasVertex(v) {
		panic(fmt.Sprintf("core: vertex %d not found", v))
	}

	return s.vertices[v].Time
}

// InEdges returns the edges whose head is v (nil for unknown v).
func (s *Store) InEdges(v int) []int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.hasVertex(v) {
		return nil
	}

	return s.inEdges[v]
}

// OutEdges returns the edges whose tail is v (nil for unknown v).
func (s *Store) OutEdges(v int) []int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.hasVertex(v) {
		return nil
	}

	return s.outEdges[v]
}

// InEdgesByInput groups the in-edges of v by input symbol.
func (s *Store) InEdgesByInput(v int) map[Symbol][]int { return s.bucket(s.inByInput, v) }

// InEdgesByOutput groups the in-edges of v by output symbol.
func (s *Store) InEdgesByOutput(v int) map[Symbol][]int { return s.bucket(s.inByOutput, v) }

// OutEdgesByInput groups the out-edges of v by input symbol.
func (s *Store) OutEdgesByInput(v int) map[Symbol][]int { return s.bucket(s.outByInput, v) }

// OutEdgesByOutput groups the out-edges of v by output symbol.
func (s *Store) OutEdgesByOutput(v int) map[Symbol][]int { return s.bucket(s.outByOutput, v) }

func (s *Store) bucket(table []map[Symbol][]int, v int) map[Symbol][]int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.hasVertex(v) {
		return nil
	}

	return table[v]
}

func (s *Store) edge(e int) EdgeData {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.hasEdge(e) {
		panic(fmt.Sprintf("core: edge %d not found", e))
	}

	return s.edges[e]
}

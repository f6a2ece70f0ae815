// File: store_clone.go
// Role: Copying stores and the epsilon self-loop utility.
// Concurrency:
//   - Clone takes the source read lock; AddEpsLoops takes the write lock.

package core

// Clone returns a deep copy of the store. The symbol table is shared, since
// symbol ids must stay comparable between the original and the copy.
//
// Complexity: O(V + E).
func (s *Store) Clone() *Store {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := &Store{
		vertexIDs:     append([]int(nil), s.vertexIDs...),
		edgeIDs:       append([]int(nil), s.edgeIDs...),
		vertexPresent: append([]bool(nil), s.vertexPresent...),
		vertices:      append([]VertexData(nil), s.vertices...),
		edgePresent:   append([]bool(nil), s.edgePresent...),
		edges:         append([]EdgeData(nil), s.edges...),
		inEdges:       cloneLists(s.inEdges),
		outEdges:      cloneLists(s.outEdges),
		inByInput:     cloneBuckets(s.inByInput),
		inByOutput:    cloneBuckets(s.inByOutput),
		outByInput:    cloneBuckets(s.outByInput),
		outByOutput:   cloneBuckets(s.outByOutput),
		initials:      append([]int(nil), s.initials...),
		finals:        append([]int(nil), s.finals...),
		symbols:       s.symbols,
	}

	return out
}

func cloneLists(in [][]int) [][]int {
	out := make([][]int, len(in))
	for i, l := range in {
		if l != nil {
			out[i] = append([]int(nil), l...)
		}
	}

	return out
}

func cloneBuckets(in []map[Symbol][]int) []map[Symbol][]int {
	out := make([]map[Symbol][]int, len(in))
	for i, m := range in {
		if m == nil {
			continue
		}
		cp := make(map[Symbol][]int, len(m))
		for sym, l := range m {
			cp[sym] = append([]int(nil), l...)
		}
		out[i] = cp
	}

	return out
}

// AddEpsLoops appends one zero-weight self-loop label:label to every vertex
// of s, in vertex id order, with edge ids continuing after the largest edge
// id in use. It lets one automaton wait in place during composition while
// its partner advances. Pass Epsilon for the usual behavior.
//
// The store is modified in place and returned for chaining; use Clone first
// to keep the original intact.
//
// Complexity: O(V).
func AddEpsLoops(s *Store, label Symbol) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()

	for v := range s.vertexPresent {
		if !s.vertexPresent[v] {
			continue // hole in the id space
		}
		e := len(s.edgePresent)
		// Endpoints exist and e is fresh, so this cannot fail.
		_ = s.addEdgeLocked(e, EdgeData{Tail: v, Head: v, Weight: 0, Input: label, Output: label})
	}

	return s
}

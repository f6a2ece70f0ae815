// SPDX-License-Identifier: MIT
//
// File: store.go
// Role: Dense int-indexed automaton store with an idempotent builder.
// Determinism:
//   - Vertices()/Edges() return ids in insertion order.
//   - InEdges/OutEdges and the symbol buckets keep edge insertion order.
// Concurrency:
//   - mu guards every table; queries take the read lock, builders the write lock.

package core

import (
	"fmt"
	"sync"
)

// Store is the reference Indexed[int, int] automaton.
//
// Vertex and edge ids are dense non-negative integers chosen by the caller.
// Tables are sized to the largest id seen; holes are simply absent.
type Store struct {
	mu sync.RWMutex // guards everything below

	vertexIDs []int // insertion order
	edgeIDs   []int // insertion order

	vertexPresent []bool
	vertices      []VertexData
	edgePresent   []bool
	edges         []EdgeData

	inEdges  [][]int
	outEdges [][]int

	inByInput   []map[Symbol][]int
	inByOutput  []map[Symbol][]int
	outByInput  []map[Symbol][]int
	outByOutput []map[Symbol][]int

	initials []int
	finals   []int

	symbols *SymbolTable
}

// Compile-time capability checks.
var (
	_ Indexed[int, int] = (*Store)(nil)
	_ Timed[int]        = (*Store)(nil)
)

// NewStore creates an empty store with a fresh symbol table.
// Complexity: O(1).
func NewStore() *Store {
	return NewStoreWithSymbols(NewSymbolTable())
}

// NewStoreWithSymbols creates an empty store sharing the given symbol table,
// so that several automata agree on symbol ids (required for composition).
// A nil table is replaced by a fresh one.
func NewStoreWithSymbols(symbols *SymbolTable) *Store {
	if symbols == nil {
		symbols = NewSymbolTable()
	}

	return &Store{symbols: symbols}
}

// Symbols returns the symbol table used to intern labels for this store.
func (s *Store) Symbols() *SymbolTable {
	return s.symbols
}

// AddVertex inserts vertex id with data. Re-adding an existing id with
// identical data is a no-op; different data returns ErrVertexConflict.
//
// Complexity: O(1) amortized.
func (s *Store) AddVertex(id int, data VertexData) error {
	if id < 0 {
		return fmt.Errorf("%w: vertex %d", ErrBadID, id)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.hasVertex(id) {
		if s.vertices[id] != data {
			return fmt.Errorf("%w: vertex %d", ErrVertexConflict, id)
		}
		return nil // idempotent
	}

	s.growVertices(id + 1)
	s.vertexPresent[id] = true
	s.vertices[id] = data
	s.vertexIDs = append(s.vertexIDs, id)

	// Bootstrap symbol buckets so readers never see a nil map for a present vertex.
	s.inByInput[id] = make(map[Symbol][]int)
	s.inByOutput[id] = make(map[Symbol][]int)
	s.outByInput[id] = make(map[Symbol][]int)
	s.outByOutput[id] = make(map[Symbol][]int)

	return nil
}

// AddEdge inserts edge id with data. Both endpoints must already be present
// (ErrVertexNotFound). Re-adding an existing id with identical data is a
// no-op; different data returns ErrEdgeConflict.
//
// Complexity: O(1) amortized.
func (s *Store) AddEdge(id int, data EdgeData) error {
	if id < 0 {
		return fmt.Errorf("%w: edge %d", ErrBadID, id)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.addEdgeLocked(id, data)
}

// addEdgeLocked implements AddEdge; caller holds mu for writing.
func (s *Store) addEdgeLocked(id int, data EdgeData) error {
	// 1) Endpoints must exist before the edge.
	if !s.hasVertex(data.Tail) {
		return fmt.Errorf("%w: tail %d of edge %d", ErrVertexNotFound, data.Tail, id)
	}
	if !s.hasVertex(data.Head) {
		return fmt.Errorf("%w: head %d of edge %d", ErrVertexNotFound, data.Head, id)
	}

	// 2) Idempotent re-insertion.
	if s.hasEdge(id) {
		if !sameEdge(s.edges[id], data) {
			return fmt.Errorf("%w: edge %d", ErrEdgeConflict, id)
		}
		return nil
	}

	// 3) Register the record and every adjacency index.
	s.growEdges(id + 1)
	s.edgePresent[id] = true
	s.edges[id] = data
	s.edgeIDs = append(s.edgeIDs, id)

	s.inEdges[data.Head] = append(s.inEdges[data.Head], id)
	s.outEdges[data.Tail] = append(s.outEdges[data.Tail], id)
	s.inByInput[data.Head][data.Input] = append(s.inByInput[data.Head][data.Input], id)
	s.inByOutput[data.Head][data.Output] = append(s.inByOutput[data.Head][data.Output], id)
	s.outByInput[data.Tail][data.Input] = append(s.outByInput[data.Tail][data.Input], id)
	s.outByOutput[data.Tail][data.Output] = append(s.outByOutput[data.Tail][data.Output], id)

	return nil
}

// SetInitials replaces the initial vertex list. Every id must be present.
func (s *Store) SetInitials(ids ...int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkPresent(ids, "initial"); err != nil {
		return err
	}
	s.initials = append([]int(nil), ids...)

	return nil
}

// SetFinals replaces the final vertex list. Every id must be present.
func (s *Store) SetFinals(ids ...int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkPresent(ids, "final"); err != nil {
		return err
	}
	s.finals = append([]int(nil), ids...)

	return nil
}

func (s *Store) checkPresent(ids []int, role string) error {
	for _, v := range ids {
		if !s.hasVertex(v) {
			return fmt.Errorf("%w: %s vertex %d", ErrVertexNotFound, role, v)
		}
	}

	return nil
}

// HasVertex reports whether vertex id was added.
func (s *Store) HasVertex(id int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.hasVertex(id)
}

// HasEdge reports whether edge id was added.
func (s *Store) HasEdge(id int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.hasEdge(id)
}

// Vertex returns the record stored for vertex id.
func (s *Store) Vertex(id int) (VertexData, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.hasVertex(id) {
		return VertexData{}, false
	}

	return s.vertices[id], true
}

// Edge returns the record stored for edge id.
func (s *Store) Edge(id int) (EdgeData, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.hasEdge(id) {
		return EdgeData{}, false
	}

	return s.edges[id], true
}

// NumVertices returns the number of present vertices.
func (s *Store) NumVertices() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.vertexIDs)
}

// NumEdges returns the number of present edges.
func (s *Store) NumEdges() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.edgeIDs)
}

// NextVertexID returns one past the largest vertex id ever added, i.e. the
// smallest id guaranteed to be free.
func (s *Store) NextVertexID() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.vertexPresent)
}

// NextEdgeID returns one past the largest edge id ever added.
func (s *Store) NextEdgeID() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.edgePresent)
}

func (s *Store) hasVertex(id int) bool {
	return id >= 0 && id < len(s.vertexPresent) && s.vertexPresent[id]
}

func (s *Store) hasEdge(id int) bool {
	return id >= 0 && id < len(s.edgePresent) && s.edgePresent[id]
}

// growVertices extends every per-vertex table to at least n slots.
func (s *Store) growVertices(n int) {
	if n <= len(s.vertexPresent) {
		return
	}
	extra := n - len(s.vertexPresent)
	s.vertexPresent = append(s.vertexPresent, make([]bool, extra)...)
	s.vertices = append(s.vertices, make([]VertexData, extra)...)
	s.inEdges = append(s.inEdges, make([][]int, extra)...)
	s.outEdges = append(s.outEdges, make([][]int, extra)...)
	s.inByInput = append(s.inByInput, make([]map[Symbol][]int, extra)...)
	s.inByOutput = append(s.inByOutput, make([]map[Symbol][]int, extra)...)
	s.outByInput = append(s.outByInput, make([]map[Symbol][]int, extra)...)
	s.outByOutput = append(s.outByOutput, make([]map[Symbol][]int, extra)...)
}

// growEdges extends every per-edge table to at least n slots.
func (s *Store) growEdges(n int) {
	if n <= len(s.edgePresent) {
		return
	}
	extra := n - len(s.edgePresent)
	s.edgePresent = append(s.edgePresent, make([]bool, extra)...)
	s.edges = append(s.edges, make([]EdgeData, extra)...)
}

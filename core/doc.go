// Package core defines the automaton capability contract every lvfst
// algorithm programs against, together with a dense, thread-safe reference
// store that implements it.
//
// An automaton here is a weighted finite-state transducer: a directed graph
// whose edges carry a real weight and an input/output symbol pair, with
// designated initial and final vertex subsets.
//
// What:
//
//   - Automaton[V, E]: vertex/edge enumeration, Tail/Head, Weight, Input,
//     Output, InEdges/OutEdges, Initials/Finals.
//   - Indexed[V, E]: Automaton plus per-vertex edges bucketed by input or
//     output symbol (four maps per vertex), used by composition and the
//     parallel log-sum variant.
//   - Store: dense int-indexed implementation with an idempotent builder
//     (AddVertex / AddEdge), symbol-bucketed adjacency and per-vertex time.
//   - SymbolTable: string interning; Epsilon is always id 0.
//   - AddEpsLoops: one zero-weight label:label self-loop per vertex.
//   - Restrict: read-only sub-automaton view over a chosen edge set.
//
// Contract:
//
//   - Algorithms never mutate the automaton they traverse; slices and maps
//     returned by query methods are read-only views.
//   - Every vertex/edge id, once inserted, is immutable. Re-inserting an id
//     with identical data is a no-op; with different data it fails with
//     ErrVertexConflict / ErrEdgeConflict.
//   - An edge must reference vertices already present (ErrVertexNotFound).
//   - Weight math.Inf(-1) marks an edge as forbidden.
//
// Concurrency:
//
//	Store guards its tables with a sync.RWMutex, so concurrent readers are
//	safe and building from several goroutines is safe. Mutating a store
//	while a lazily composed automaton reads it is a caller error.
//
// Errors:
//
//   - ErrBadID            negative vertex or edge id
//   - ErrVertexNotFound   edge endpoint or initial/final vertex not present
//   - ErrVertexConflict   vertex re-added with different data
//   - ErrEdgeConflict     edge re-added with different data
package core

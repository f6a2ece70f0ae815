// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Capability contract (Automaton, Indexed), symbols and sentinel errors.

package core

import (
	"errors"
	"math"
)

// Sentinel errors for core store operations.
var (
	// ErrBadID indicates a negative vertex or edge id.
	ErrBadID = errors.New("core: negative id")

	// ErrVertexNotFound indicates an operation referenced a vertex that was never added.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrVertexConflict indicates a vertex id was re-added with different data.
	ErrVertexConflict = errors.New("core: vertex re-added with different data")

	// ErrEdgeConflict indicates an edge id was re-added with different data.
	ErrEdgeConflict = errors.New("core: edge re-added with different data")
)

// Symbol is an interned input/output label.
type Symbol int

// Epsilon is the empty symbol. SymbolTable always maps it to EpsilonName.
const Epsilon Symbol = 0

// EpsilonName is the textual form of Epsilon.
const EpsilonName = "<eps>"

// NegInf is the max-plus zero and the log-semiring zero: an unreachable value.
var NegInf = math.Inf(-1)

// Automaton is the read-only query surface every algorithm consumes.
//
// V and E are opaque handles; algorithms only compare and hash them.
// Slices returned by the enumeration methods must not be modified by callers.
type Automaton[V, E comparable] interface {
	Vertices() []V
	Edges() []E
	Initials() []V
	Finals() []V

	Tail(e E) V
	Head(e E) V
	Weight(e E) float64
	Input(e E) Symbol
	Output(e E) Symbol

	InEdges(v V) []E
	OutEdges(v V) []E
}

// Indexed extends Automaton with per-vertex adjacency bucketed by symbol.
// Used by composition matchers and by the parallel log-sum variant.
type Indexed[V, E comparable] interface {
	Automaton[V, E]

	InEdgesByInput(v V) map[Symbol][]E
	InEdgesByOutput(v V) map[Symbol][]E
	OutEdgesByInput(v V) map[Symbol][]E
	OutEdgesByOutput(v V) map[Symbol][]E
}

// Timed is implemented by automata whose vertices carry a time stamp
// (frame index of a lattice, for example).
type Timed[V comparable] interface {
	Time(v V) int64
}

// VertexData is the record stored per vertex in a Store.
type VertexData struct {
	// Time is an optional frame/time stamp; zero when unused.
	Time int64
}

// EdgeData is the record stored per edge in a Store.
type EdgeData struct {
	Tail   int
	Head   int
	Weight float64
	Input  Symbol
	Output Symbol
}

// sameEdge compares edge records field by field. Weights compare bitwise so
// that re-adding an edge with a NaN weight is still recognised as identical.
func sameEdge(a, b EdgeData) bool {
	return a.Tail == b.Tail && a.Head == b.Head &&
		math.Float64bits(a.Weight) == math.Float64bits(b.Weight) &&
		a.Input == b.Input && a.Output == b.Output
}

// VertexSet builds a membership set from a vertex slice.
func VertexSet[V comparable](vs []V) map[V]struct{} {
	set := make(map[V]struct{}, len(vs))
	for _, v := range vs {
		set[v] = struct{}{}
	}

	return set
}

// PathWeight sums the weights of the edges along a path.
func PathWeight[V, E comparable](a Automaton[V, E], path []E) float64 {
	var sum float64
	for _, e := range path {
		sum += a.Weight(e)
	}

	return sum
}

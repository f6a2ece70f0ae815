package kbest

import "errors"

// Sentinel errors.
var (
	// ErrRankOutOfOrder indicates a rank was requested before the one
	// preceding it was computed. Ranks must be requested in increasing
	// order (k ≤ current deck size).
	ErrRankOutOfOrder = errors.New("kbest: rank requested out of order")

	// ErrRankNotFound indicates the requested rank does not exist: fewer
	// distinct paths reach the vertex.
	ErrRankNotFound = errors.New("kbest: rank not found")
)

// hypothesis is one deck entry: the path made of edge appended to the
// rank-th best path into tail(edge). The initial sentinel has no edge.
type hypothesis[E comparable] struct {
	edge    E
	hasEdge bool
	rank    int
	value   float64
}

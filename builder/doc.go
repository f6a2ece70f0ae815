// Package builder assembles deterministic automaton fixtures on top of
// core.Store.
//
// What:
//
//   - Build(opts, cons...) creates a store, resolves the options and applies
//     each Constructor in order.
//   - Arcs, Initials, Finals: explicit edges and designated vertices.
//   - Chain, Word: linear transducers and acceptors.
//   - Lattice: a seeded random layered DAG with per-frame vertex times,
//     the usual shape of a recognition lattice.
//   - Diamond: two alternative branches between one source and one sink.
//
// Labels:
//
//	A label is written "in:out". A bare "a" means "a:a" and "<eps>" (or an
//	empty side) maps to core.Epsilon. Symbols are interned in the store's
//	symbol table, which WithSymbols can share between fixtures.
//
// Ids:
//
//	Generated vertices and edges take fresh ids starting at
//	Store.NextVertexID / Store.NextEdgeID, so constructors can be combined
//	freely. Arcs uses the caller's vertex ids as is.
//
// Errors:
//
//   - ErrTooFewVertices   size parameter below its minimum
//   - ErrNeedRandSource   Lattice without WithSeed/WithRand
//   - ErrConstructFailed  nil constructor or a rejected store mutation
//   - ErrBadLabel         label with more than one ':'
package builder

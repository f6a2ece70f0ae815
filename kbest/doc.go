// Package kbest enumerates the k best (max-plus) paths into a vertex of an
// acyclic automaton, lazily and in non-increasing order of value.
//
// What:
//
//   - Session owns the per-vertex decks (ranked hypotheses), the per-edge
//     top counters and the per-vertex bottom-out flags of one enumeration.
//   - FirstBest computes rank 0 for every reachable vertex in one
//     topological sweep.
//   - NextBest(v, k) extends the deck of v to rank k. Only the vertices on
//     the chain that produced the previous rank are revisited; each of
//     them gains exactly one rank.
//   - BestPath, Value and Paths read ranked results.
//
// How:
//
//	Every n-th best path into v is some in-edge e appended to the m-th best
//	path into tail(e). The top counter of e remembers the largest m already
//	used, so the next candidate through e is rank top(e)+1 of the tail.
//	After v takes a hypothesis through e, the tail of e must provide one
//	more rank before v can be extended again: NextBest walks down that
//	chain, stops where the tail already has the rank (or is exhausted),
//	and unwinds, appending one hypothesis per visited vertex.
//
// Initial vertices hold exactly one hypothesis, the empty path with value 0,
// and are never extended (even if they have in-edges).
//
// Errors:
//
//   - ErrRankOutOfOrder  NextBest(v, k) with k more than one past the deck
//   - ErrRankNotFound    no further path into v exists
//
// Complexity:
//
//   - FirstBest: O(V + E)
//   - NextBest: O(Σ in-degree) over the revisited chain, amortized per rank
//   - Memory: O(V·K + E) for K ranks computed
package kbest

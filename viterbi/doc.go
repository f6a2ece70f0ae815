// Package viterbi computes one-best (max-plus) paths over acyclic automata.
//
// What:
//
//   - Pass holds, per vertex, the best cumulative value and the edge that
//     achieved it. NewForward seeds initials and relaxes in-edges along a
//     topological order; NewBackward seeds finals and relaxes out-edges
//     along the reversed order.
//   - BestPath reads the winning endpoint (a final for Forward, an initial
//     for Backward) and follows predecessor edges back to the seeded side.
//   - ShortestPath is the single-best decoding driver: seed, merge, read.
//
// Semantics:
//
//   - Max-plus: candidate = value(tail) + weight(edge); unseeded vertices
//     read as -Inf and stay inert (no NaN is ever produced from -Inf).
//   - Only strict improvements overwrite; on ties the earliest edge in
//     adjacency order wins.
//   - The predecessor is an explicit optional (Predecessor returns ok=false
//     for seeded or unreached vertices); no sentinel edge value exists.
//
// Preconditions:
//
//	order must be topological over the reachable region (see dfs.TopoOrder);
//	on a cyclic region the values are meaningless.
//
// Complexity:
//
//   - Merge: Time O(V + E), Memory O(V).
//   - BestPath: O(path length + |finals|).
package viterbi

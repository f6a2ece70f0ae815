// Package dfs computes depth-first orderings of the region of an automaton
// reachable from its initial vertices.
//
// What:
//
//   - TopoOrder: iterative DFS with an explicit two-phase stack (discover,
//     finish). A vertex is emitted on its finish pop; the reversed finish
//     order is a topological order of the reachable region when that region
//     is acyclic. Vertices unreachable from every initial are excluded.
//   - HasCycle: reports whether the reachable region contains a cycle
//     (an edge into a vertex that is discovered but not yet finished).
//   - TopoOrderStrict: TopoOrder that returns ErrCycleDetected instead of a
//     silently invalid order.
//
// Why:
//
//	Best-path, k-best, log-sum and beam algorithms all consume a vertex
//	order and assume it is topological. TopoOrder does not check this
//	precondition: on a cyclic region it still terminates (each vertex
//	finishes once) but downstream values are then meaningless. Use
//	TopoOrderStrict when the input is not known to be acyclic.
//
// Complexity:
//
//   - TopoOrder, HasCycle, TopoOrderStrict: Time O(V+E), Memory O(V+E)
//     (every edge may push one discover marker).
//
// Errors:
//
//   - ErrCycleDetected  reachable region is cyclic (TopoOrderStrict only)
package dfs

// Package bfs runs breadth-first searches over automata and derives the
// reachability sets used to trim them.
//
// What
//
//   - BFS: multi-source search from the initials (Forward) or the finals
//     (Backward), returning visit Order, Depth in edges and the Parent edge
//     of every reached vertex.
//   - Accessible / Coaccessible / Useful: vertices reachable from an
//     initial, reaching a final, or both.
//   - Trim: a core.Sub view holding only useful vertices and edges. Beam
//     pruning and composition can leave dead branches; trimming them keeps
//     downstream passes small.
//
// Determinism
//
//	Sources are seeded in list order and neighbors are enqueued in the
//	automaton's adjacency order, so the visit sequence is reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Options
//
//   - WithContext(ctx)    cancellation, checked once per dequeued vertex
//   - WithDirection(d)    Forward (default) or Backward
//   - WithMaxDepth(d)     stop beyond depth d (>0)
//   - WithOnVisit(fn)     hook during visit; returning an error aborts BFS
//
// Errors
//
//   - ErrOptionViolation  invalid Option (negative MaxDepth, unknown direction)
//   - ErrNotReached       PathTo for a vertex that was not visited
//   - ctx.Err() on cancellation, wrapped OnVisit errors
package bfs

// Package beam prunes an acyclic automaton with a relative beam and, in
// the same pass, tracks the best surviving path.
//
// What:
//
//   - Merge keeps every initial vertex, then walks the kept vertices in
//     topological order. At each one it takes the min and max out-edge
//     weight, sets cutoff = min + alpha·(max−min) and keeps the out-edges
//     whose weight is strictly greater than cutoff, together with their
//     heads.
//   - Search does the same and also relaxes a max-plus value and
//     predecessor along every kept edge, so BestPath reads the best path
//     that survived pruning.
//   - Result.Automaton exposes the pruned region as a core.Sub view.
//
// alpha = 0 drops only the edges tied at the minimum; alpha = 1 drops all
// of them (the cutoff equals the maximum and the comparison is strict). A
// vertex whose out-edges all share one weight therefore keeps none of
// them for any alpha.
//
// Errors:
//
//   - ErrBadAlpha  alpha outside [0, 1] or NaN
//
// Complexity: O(V + E) time, O(V + E) memory.
package beam

// Package logsum accumulates path weights in the log semiring: forward and
// backward totals, their parallel variants and edge posteriors.
//
// What:
//
//   - LogAdd(a, b) = log(exp a + exp b), computed without overflow; -Inf is
//     the identity and never turns into NaN.
//   - Pass (NewForward / NewBackward) seeds initials (resp. finals) with 0
//     and folds in-edges along a topological order (resp. out-edges along
//     the reversed order).
//   - ParallelForward / ParallelBackward compute the same values over a
//     core.Indexed automaton. At each vertex the outgoing (resp. incoming)
//     edges are grouped by input symbol; the groups compute their
//     contributions concurrently from a fixed snapshot (phase 1) and the
//     contributions are then folded into their targets by one goroutine
//     (phase 2). No accumulator is written while any group is reading.
//   - Total, EdgePosteriors, VertexPosteriors derive marginals from a
//     forward and a backward pass.
//
// Options (parallel variants):
//
//   - WithWorkers(n)  at most n groups in flight (default 4)
//
// Errors:
//
//   - ErrBadWorkers  WithWorkers(n) with n < 1
//   - ErrNoPath      posteriors requested when no final is reachable
//   - ctx.Err()      the parallel variants stop between vertices on cancel
//
// Complexity:
//
//   - Merge and the parallel variants: O(V + E) time, O(V) memory.
package logsum

// Package compose builds the lazy synchronized product of two automata.
//
// What:
//
//   - Lazy[V1,E1,V2,E2] is an Indexed automaton whose vertices are pairs
//     (v1, v2) and whose edges are pairs (e1, e2) with output(e1) ==
//     input(e2). A composed edge weighs weight(e1)+weight(e2), reads
//     input(e1) and writes output(e2).
//   - Nothing is materialized up front. Vertices, Edges, Initials and
//     Finals are computed on first use and cached for the lifetime of the
//     value. Adjacency queries go through single-slot caches that remember
//     only the last vertex asked for.
//
// Matching modes (identical results, different cost):
//
//   - Mode1  index a1's edges by output symbol, scan a2's edges
//            (cheap when a2 has few edges per vertex)
//   - Mode2  index a2's edges by input symbol, scan a1's edges
//            (cheap when a1 has few edges per vertex)
//   - Naive  test every (e1, e2) pair; kept for cross-checking
//
// Epsilon gets no special treatment: an ε output only matches an ε input.
// Use core.AddEpsLoops on one side to let it wait while the other side
// consumes ε.
//
// Concurrency:
//
//	A Lazy value may be queried from several goroutines; one mutex guards
//	the single-slot caches and sync.Once guards the collection caches. The
//	inputs must not be mutated once composed.
//
// Metrics:
//
//	Cache hits and misses per adjacency cache, and matched edges per mode,
//	are exported through internal/metrics.
package compose

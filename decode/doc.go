// Package decode drives the algorithm packages as end-to-end pipelines:
// order the automaton, then run one-best, k-best, posteriors, beam
// pruning or composition on it.
//
// A Decoder carries the configuration and a zap logger. Every call is one
// run: it gets a fresh uuid, logs its outcome with that id, and records
// its latency and result in the prometheus collectors of internal/metrics.
//
// Posteriors trims its input to the useful region (bfs.Trim) before the
// log-sum passes, so a lazy product is only expanded where paths exist.
//
// The functions are generic over the automaton handles, so they accept a
// core.Store as well as a compose.Lazy product.
//
// Errors:
//
//   - ErrNoPath           no final vertex is reachable
//   - ErrTooManyPaths     KBest asked for more than KBestMax paths
//   - ErrBadPathCount     KBest asked for fewer than one path
//   - dfs.ErrCycleDetected the reachable region is cyclic
package decode

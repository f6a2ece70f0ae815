// Package lvfst is a toolkit of algorithms over weighted finite-state
// transducers: acyclic decoding lattices whose edges carry an input
// symbol, an output symbol and a log-domain weight.
//
// Every algorithm is written against the core.Automaton interface, so the
// dense core.Store and a lazily composed compose.Lazy product are
// interchangeable inputs, and a product can be fed back into any pass.
//
// Packages:
//
//	core/     Automaton and Indexed interfaces, the Store, symbol tables,
//	          eps self-loops and restricted views
//	builder/  functional-option fixtures: chains, explicit arcs, lattices
//	dfs/      topological order and cycle detection over the reachable region
//	bfs/      breadth-first reachability, accessible/coaccessible trimming
//	viterbi/  forward/backward max-plus passes and ShortestPath
//	kbest/    lazy rank-ordered path enumeration with memoized extension
//	logsum/   log-semiring forward/backward, parallel scatter, posteriors
//	beam/     relative-threshold pruning fused with best-path tracking
//	compose/  lazy synchronized product with cached adjacency
//	decode/   logged, metered end-to-end pipelines over the above
//	config/   environment configuration (prefix LVFST)
//
// Quick example: one source, three branches, best branch wins.
//
//	s := builder.MustBuild(nil, builder.Diamond(-1, -2, -3))
//	path := viterbi.ShortestPath[int, int](s, dfs.TopoOrder[int, int](s))
//	// path == []int{0, 1}
package lvfst

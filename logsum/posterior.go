package logsum

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvfst/core"
)

// Total returns the log of the summed weight of all initial→final paths:
// the forward values of the finals, log-added.
func Total[V, E comparable](a core.Automaton[V, E], fwd *Pass[V, E]) float64 {
	z := core.NegInf
	for _, f := range a.Finals() {
		z = LogAdd(z, fwd.Value(f))
	}

	return z
}

// EdgePosteriors returns, for every edge, the log share of total path
// weight that passes through it: fwd(tail) + w + bwd(head) - Z. Edges on
// no complete path get -Inf. Returns ErrNoPath when Z is -Inf.
func EdgePosteriors[V, E comparable](a core.Automaton[V, E], fwd, bwd *Pass[V, E]) (map[E]float64, error) {
	z := Total(a, fwd)
	if math.IsInf(z, -1) {
		return nil, fmt.Errorf("%w: total is log 0", ErrNoPath)
	}

	out := make(map[E]float64, len(a.Edges()))
	for _, e := range a.Edges() {
		f, b := fwd.Value(a.Tail(e)), bwd.Value(a.Head(e))
		if math.IsInf(f, -1) || math.IsInf(b, -1) {
			out[e] = core.NegInf
			continue
		}
		out[e] = f + a.Weight(e) + b - z
	}

	return out, nil
}

// VertexPosteriors returns fwd(v) + bwd(v) - Z for every vertex.
func VertexPosteriors[V, E comparable](a core.Automaton[V, E], fwd, bwd *Pass[V, E]) (map[V]float64, error) {
	z := Total(a, fwd)
	if math.IsInf(z, -1) {
		return nil, fmt.Errorf("%w: total is log 0", ErrNoPath)
	}

	out := make(map[V]float64, len(a.Vertices()))
	for _, v := range a.Vertices() {
		f, b := fwd.Value(v), bwd.Value(v)
		if math.IsInf(f, -1) || math.IsInf(b, -1) {
			out[v] = core.NegInf
			continue
		}
		out[v] = f + b - z
	}

	return out, nil
}

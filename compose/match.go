package compose

import (
	"github.com/katalvlaran/lvfst/core"
	"github.com/katalvlaran/lvfst/internal/metrics"
)

// matchOut pairs the out-edges of v.First and v.Second.
func (c *Lazy[V1, E1, V2, E2]) matchOut(v Pair[V1, V2]) []Pair[E1, E2] {
	var out []Pair[E1, E2]
	switch c.mode {
	case Mode1:
		out = byFirst(c.a1.OutEdgesByOutput(v.First), c.a2.OutEdges(v.Second), c.a2.Input)
	case Mode2:
		out = bySecond(c.a1.OutEdges(v.First), c.a2.OutEdgesByInput(v.Second), c.a1.Output)
	default:
		out = naive(c.a1.OutEdges(v.First), c.a2.OutEdges(v.Second), c.a1.Output, c.a2.Input)
	}
	metrics.ComposeMatchedEdges.WithLabelValues(c.mode.String()).Add(float64(len(out)))

	return out
}

// matchIn pairs the in-edges of v.First and v.Second.
func (c *Lazy[V1, E1, V2, E2]) matchIn(v Pair[V1, V2]) []Pair[E1, E2] {
	var out []Pair[E1, E2]
	switch c.mode {
	case Mode1:
		out = byFirst(c.a1.InEdgesByOutput(v.First), c.a2.InEdges(v.Second), c.a2.Input)
	case Mode2:
		out = bySecond(c.a1.InEdges(v.First), c.a2.InEdgesByInput(v.Second), c.a1.Output)
	default:
		out = naive(c.a1.InEdges(v.First), c.a2.InEdges(v.Second), c.a1.Output, c.a2.Input)
	}
	metrics.ComposeMatchedEdges.WithLabelValues(c.mode.String()).Add(float64(len(out)))

	return out
}

// byFirst scans es2 and looks each input symbol up in the output index
// of the first automaton.
func byFirst[E1, E2 comparable](idx1 map[core.Symbol][]E1, es2 []E2, in2 func(E2) core.Symbol) []Pair[E1, E2] {
	var out []Pair[E1, E2]
	for _, e2 := range es2 {
		for _, e1 := range idx1[in2(e2)] {
			out = append(out, Pair[E1, E2]{e1, e2})
		}
	}

	return out
}

// bySecond scans es1 and looks each output symbol up in the input index
// of the second automaton.
func bySecond[E1, E2 comparable](es1 []E1, idx2 map[core.Symbol][]E2, out1 func(E1) core.Symbol) []Pair[E1, E2] {
	var out []Pair[E1, E2]
	for _, e1 := range es1 {
		for _, e2 := range idx2[out1(e1)] {
			out = append(out, Pair[E1, E2]{e1, e2})
		}
	}

	return out
}

func naive[E1, E2 comparable](es1 []E1, es2 []E2, out1 func(E1) core.Symbol, in2 func(E2) core.Symbol) []Pair[E1, E2] {
	var out []Pair[E1, E2]
	for _, e1 := range es1 {
		for _, e2 := range es2 {
			if out1(e1) == in2(e2) {
				out = append(out, Pair[E1, E2]{e1, e2})
			}
		}
	}

	return out
}

// SPDX-License-Identifier: MIT
// Package: lvfst/builder
//
// impl_lattice.go: layered DAG fixtures.
//
// Lattice layout (frames=F, width=W):
//
//	start (Time 0) → layer 1 (W vertices, Time 1) → … → layer F (Time F) → end (Time F+1)
//
// Every vertex of layer t connects to every vertex of layer t+1, so the
// lattice holds W^F distinct start→end paths.

package builder

import (
	"strconv"

	"github.com/katalvlaran/lvfst/core"
)

// Lattice builds a seeded random layered DAG. Each edge draws its label
// uniformly from the configured alphabet (same symbol on both tapes) and
// its weight from the WeightFn. Requires frames ≥ 1, width ≥ 1 and an RNG.
//
// Complexity: O(F·W²) edges.
func Lattice(frames, width int) Constructor {
	return func(s *core.Store, cfg builderConfig) error {
		if frames < 1 || width < 1 {
			return builderErrorf(MethodLattice, "frames=%d width=%d: %w", frames, width, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return builderErrorf(MethodLattice, "%w", ErrNeedRandSource)
		}

		start, err := freshVertex(s, 0)
		if err != nil {
			return builderErrorf(MethodLattice, "%w", err)
		}
		prev := []int{start}

		// 1. Layers 1..F, fully connected to the previous layer.
		for t := 1; t <= frames; t++ {
			layer := make([]int, width)
			for i := range layer {
				if layer[i], err = freshVertex(s, int64(t)); err != nil {
					return builderErrorf(MethodLattice, "%w", err)
				}
			}
			if err = connect(s, cfg, prev, layer); err != nil {
				return builderErrorf(MethodLattice, "frame %d: %w", t, err)
			}
			prev = layer
		}

		// 2. Closing vertex.
		end, err := freshVertex(s, int64(frames+1))
		if err != nil {
			return builderErrorf(MethodLattice, "%w", err)
		}
		if err = connect(s, cfg, prev, []int{end}); err != nil {
			return builderErrorf(MethodLattice, "end: %w", err)
		}

		if err = appendInitial(s, start); err != nil {
			return builderErrorf(MethodLattice, "%w", err)
		}
		if err = appendFinal(s, end); err != nil {
			return builderErrorf(MethodLattice, "%w", err)
		}

		return nil
	}
}

func connect(s *core.Store, cfg builderConfig, from, to []int) error {
	for _, u := range from {
		for _, v := range to {
			label := cfg.alphabet[cfg.rng.Intn(len(cfg.alphabet))]
			if _, err := addEdge(s, u, v, label, cfg.weight()); err != nil {
				return err
			}
		}
	}

	return nil
}

// Diamond builds one source and one sink joined by len(weights) ≥ 1
// two-edge branches. Branch i is source -b<i>/weights[i]-> mid_i -<eps>/0-> sink,
// so the branches differ only in their first edge.
//
// Complexity: O(len(weights)).
func Diamond(weights ...float64) Constructor {
	return func(s *core.Store, _ builderConfig) error {
		if len(weights) < 1 {
			return builderErrorf(MethodDiamond, "need at least one branch: %w", ErrTooFewVertices)
		}
		src, err := freshVertex(s, 0)
		if err != nil {
			return builderErrorf(MethodDiamond, "%w", err)
		}
		mids := make([]int, len(weights))
		for i := range mids {
			if mids[i], err = freshVertex(s, 1); err != nil {
				return builderErrorf(MethodDiamond, "%w", err)
			}
		}
		sink, err := freshVertex(s, 2)
		if err != nil {
			return builderErrorf(MethodDiamond, "%w", err)
		}

		for i, w := range weights {
			if _, err = addEdge(s, src, mids[i], branchLabel(i), w); err != nil {
				return builderErrorf(MethodDiamond, "%w", err)
			}
			if _, err = addEdge(s, mids[i], sink, core.EpsilonName, 0); err != nil {
				return builderErrorf(MethodDiamond, "%w", err)
			}
		}

		if err = appendInitial(s, src); err != nil {
			return builderErrorf(MethodDiamond, "%w", err)
		}

		if err = appendFinal(s, sink); err != nil {
			return builderErrorf(MethodDiamond, "%w", err)
		}

		return nil
	}
}

func branchLabel(i int) string { return "b" + strconv.Itoa(i) }

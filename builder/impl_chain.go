// SPDX-License-Identifier: MIT
// Package: lvfst/builder
//
// impl_chain.go: linear transducers and acceptors.
//
// Vertex i of a chain has Time i; the first vertex is appended to the
// initials and the last to the finals.

package builder

import (
	"github.com/katalvlaran/lvfst/core"
)

// Chain builds a path with one edge per label (len(labels) ≥ 1). Edge
// weights come from the configured WeightFn.
//
// Complexity: O(len(labels)).
func Chain(labels ...string) Constructor {
	return func(s *core.Store, cfg builderConfig) error {
		if len(labels) < 1 {
			return builderErrorf(MethodChain, "need at least one label: %w", ErrTooFewVertices)
		}

		return buildChain(MethodChain, s, cfg, labels)
	}
}

// Word builds the linear acceptor of w: one edge per rune, labeled r:r.
func Word(w string) Constructor {
	return func(s *core.Store, cfg builderConfig) error {
		labels := make([]string, 0, len(w))
		for _, r := range w {
			labels = append(labels, string(r))
		}
		if len(labels) < 1 {
			return builderErrorf(MethodWord, "empty word: %w", ErrTooFewVertices)
		}

		return buildChain(MethodWord, s, cfg, labels)
	}
}

func buildChain(method string, s *core.Store, cfg builderConfig, labels []string) error {
	prev, err := freshVertex(s, 0)
	if err != nil {
		return builderErrorf(method, "%w", err)
	}
	if err = appendInitial(s, prev); err != nil {
		return builderErrorf(method, "%w", err)
	}

	for i, label := range labels {
		next, err := freshVertex(s, int64(i+1))
		if err != nil {
			return builderErrorf(method, "%w", err)
		}
		if _, err = addEdge(s, prev, next, label, cfg.weight()); err != nil {
			return builderErrorf(method, "edge %d: %w", i, err)
		}
		prev = next
	}

	if err = appendFinal(s, prev); err != nil {
		return builderErrorf(method, "%w", err)
	}

	return nil
}

// SPDX-License-Identifier: MIT
// Package: lvfst/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng      = nil              (pure unless seeded)
//   • weightFn = DefaultWeightFn  (every generated edge weighs 0)
//   • symbols  = nil              (Build creates a fresh table)
//   • alphabet = "a","b","c"      (Lattice labels)

package builder

import (
	"math/rand"

	"github.com/katalvlaran/lvfst/core"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Weight generator for generated edges.
	weightFn WeightFn
	// Shared symbol table; nil means a fresh one per store.
	symbols *core.SymbolTable
	// Labels drawn by Lattice.
	alphabet []string
}

var defaultAlphabet = []string{"a", "b", "c"}

// newBuilderConfig applies opts over the defaults; last wins.
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		weightFn: DefaultWeightFn,
		alphabet: defaultAlphabet,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// weight draws the next generated edge weight.
func (c builderConfig) weight() float64 {
	return c.weightFn(c.rng)
}

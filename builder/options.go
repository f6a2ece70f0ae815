// SPDX-License-Identifier: MIT
// Package: lvfst/builder
//
// options.go: functional options for Build.
//
// Options panic on meaningless values (nil rng, nil function, empty
// alphabet); constructors never panic.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/lvfst/core"
)

// Option customizes a builderConfig.
type Option func(*builderConfig)

// WithRand sets the RNG used by stochastic constructors and weight
// functions. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("WithRand: nil *rand.Rand")
	}

	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed is WithRand(rand.New(rand.NewSource(seed))).
func WithSeed(seed int64) Option {
	return WithRand(rand.New(rand.NewSource(seed)))
}

// WithWeightFn sets the weight generator for generated edges. Panics on nil.
func WithWeightFn(fn WeightFn) Option {
	if fn == nil {
		panic("WithWeightFn: nil WeightFn")
	}

	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithSymbols makes the built store intern labels in t. Fixtures meant
// to be composed must share one table.
func WithSymbols(t *core.SymbolTable) Option {
	if t == nil {
		panic("WithSymbols: nil table")
	}

	return func(c *builderConfig) {
		c.symbols = t
	}
}

// WithAlphabet sets the labels Lattice draws from. Panics if empty.
func WithAlphabet(labels ...string) Option {
	if len(labels) == 0 {
		panic("WithAlphabet: empty alphabet")
	}
	cp := append([]string(nil), labels...)

	return func(c *builderConfig) {
		c.alphabet = cp
	}
}

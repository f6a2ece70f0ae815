// SPDX-License-Identifier: MIT
// Package: lvfst/builder
//
// api.go - public entry point for the builder package.
//
// Design contract:
//   - One orchestrator: Build(opts, cons...). Creates the store, resolves
//     cfg, runs cons in order.
//   - Determinism: same options, seed and constructor order ⇒ identical
//     stores (ids, labels, weights).
//   - Constructors never panic; they return sentinel errors wrapped with
//     the constructor name.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvfst/core"
)

// Constructor applies a deterministic mutation to s using the resolved
// builderConfig.
type Constructor func(s *core.Store, cfg builderConfig) error

// Method names used as error prefixes.
const (
	MethodArcs     = "Arcs"
	MethodInitials = "Initials"
	MethodFinals   = "Finals"
	MethodChain    = "Chain"
	MethodWord     = "Word"
	MethodLattice  = "Lattice"
	MethodDiamond  = "Diamond"
)

// Build creates a store, resolves opts and applies every constructor in
// order. The first constructor error is returned wrapped as "Build: %w";
// no partial store is returned.
//
// Complexity: O(len(opts)) plus the cost of each constructor.
func Build(opts []Option, cons ...Constructor) (*core.Store, error) {
	cfg := newBuilderConfig(opts...)
	s := core.NewStoreWithSymbols(cfg.symbols)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(s, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return s, nil
}

// MustBuild is Build for test fixtures; it panics on error.
func MustBuild(opts []Option, cons ...Constructor) *core.Store {
	s, err := Build(opts, cons...)
	if err != nil {
		panic(err)
	}

	return s
}

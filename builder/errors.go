// SPDX-License-Identifier: MIT
// Package: lvfst/builder
//
// errors.go: sentinel errors for the builder package.
//
// Callers branch with errors.Is; constructors attach context with %w.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates that a size parameter (n, frames, width) is
// smaller than the constructor allows.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates that a stochastic constructor needs an RNG
// (WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor or a store mutation that
// was rejected (conflicting ids, unknown endpoints).
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrBadLabel indicates a malformed "in:out" label.
var ErrBadLabel = errors.New("builder: malformed label")

// builderErrorf prefixes a wrapped error with the constructor name.
func builderErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: "+format, append([]interface{}{method}, args...)...)
}

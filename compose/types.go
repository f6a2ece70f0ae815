package compose

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMode indicates an unsupported matching mode.
var ErrUnknownMode = errors.New("compose: unknown mode")

// Pair is both the vertex and the edge type of a composed automaton.
type Pair[A, B comparable] struct {
	First  A
	Second B
}

// Mode selects the matching strategy.
type Mode uint8

const (
	// Mode1 indexes the first automaton by output symbol.
	Mode1 Mode = iota + 1
	// Mode2 indexes the second automaton by input symbol.
	Mode2
	// Naive tests every edge pair.
	Naive
)

// String returns the config spelling of m.
func (m Mode) String() string {
	switch m {
	case Mode1:
		return "mode1"
	case Mode2:
		return "mode2"
	case Naive:
		return "naive"
	default:
		return fmt.Sprintf("mode(%d)", uint8(m))
	}
}

// ParseMode accepts "mode1", "mode2" or "naive" (case-insensitive).
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mode1":
		return Mode1, nil
	case "mode2":
		return Mode2, nil
	case "naive":
		return Naive, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// slot is a single-entry cache: it remembers the last key only.
type slot[K comparable, T any] struct {
	key K
	val T
	ok  bool
}

func (s *slot[K, T]) get(k K) (T, bool) {
	if s.ok && s.key == k {
		return s.val, true
	}
	var zero T

	return zero, false
}

func (s *slot[K, T]) put(k K, v T) {
	s.key, s.val, s.ok = k, v, true
}

package builder

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/lvfst/core"
)

func roundMilli(x float64) float64 { return math.Round(x*1000) / 1000 }

// parseLabel splits "in:out" and interns both sides. A label without ':'
// is used for both tapes.
func parseLabel(syms *core.SymbolTable, label string) (core.Symbol, core.Symbol, error) {
	in, out, found := strings.Cut(label, ":")
	if !found {
		out = in
	} else if strings.Contains(out, ":") {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadLabel, label)
	}

	return intern(syms, in), intern(syms, out), nil
}

func intern(syms *core.SymbolTable, name string) core.Symbol {
	if name == "" || name == core.EpsilonName {
		return core.Epsilon
	}

	return syms.Intern(name)
}

// appendInitial adds v to the initial list unless already present.
func appendInitial(s *core.Store, v int) error {
	cur := s.Initials()
	for _, u := range cur {
		if u == v {
			return nil
		}
	}

	if err := s.SetInitials(append(append([]int(nil), cur...), v)...); err != nil {
		return fmt.Errorf("%w: %w", ErrConstructFailed, err)
	}

	return nil
}

// appendFinal adds v to the final list unless already present.
func appendFinal(s *core.Store, v int) error {
	cur := s.Finals()
	for _, u := range cur {
		if u == v {
			return nil
		}
	}

	if err := s.SetFinals(append(append([]int(nil), cur...), v)...); err != nil {
		return fmt.Errorf("%w: %w", ErrConstructFailed, err)
	}

	return nil
}

// addEdge interns label and inserts a fresh edge tail→head.
func addEdge(s *core.Store, tail, head int, label string, w float64) (int, error) {
	in, out, err := parseLabel(s.Symbols(), label)
	if err != nil {
		return 0, err
	}
	id := s.NextEdgeID()
	if err = s.AddEdge(id, core.EdgeData{Tail: tail, Head: head, Weight: w, Input: in, Output: out}); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrConstructFailed, err)
	}

	return id, nil
}

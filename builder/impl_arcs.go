// SPDX-License-Identifier: MIT
// Package: lvfst/builder
//
// impl_arcs.go: explicit edges and designated vertices.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvfst/core"
)

// Arc is one explicit edge: Tail -Label/Weight-> Head.
type Arc struct {
	Tail, Head int
	Label      string // "in:out", "a" or "<eps>"
	Weight     float64
}

// Arcs inserts the given edges in order with fresh edge ids. Endpoints
// are created on first use (Time 0); existing vertices are left as is.
//
// Complexity: O(len(arcs)).
func Arcs(arcs ...Arc) Constructor {
	return func(s *core.Store, _ builderConfig) error {
		for i, a := range arcs {
			for _, v := range [2]int{a.Tail, a.Head} {
				if s.HasVertex(v) {
					continue
				}
				if err := s.AddVertex(v, core.VertexData{}); err != nil {
					return builderErrorf(MethodArcs, "arc %d: %w", i, err)
				}
			}
			if _, err := addEdge(s, a.Tail, a.Head, a.Label, a.Weight); err != nil {
				return builderErrorf(MethodArcs, "arc %d: %w", i, err)
			}
		}

		return nil
	}
}

// Initials appends ids to the initial list (duplicates are ignored).
func Initials(ids ...int) Constructor {
	return func(s *core.Store, _ builderConfig) error {
		for _, v := range ids {
			if err := appendInitial(s, v); err != nil {
				return builderErrorf(MethodInitials, "%w", err)
			}
		}

		return nil
	}
}

// Finals appends ids to the final list (duplicates are ignored).
func Finals(ids ...int) Constructor {
	return func(s *core.Store, _ builderConfig) error {
		for _, v := range ids {
			if err := appendFinal(s, v); err != nil {
				return builderErrorf(MethodFinals, "%w", err)
			}
		}

		return nil
	}
}

// freshVertex adds a new vertex with the given time and returns its id.
func freshVertex(s *core.Store, time int64) (int, error) {
	id := s.NextVertexID()
	if err := s.AddVertex(id, core.VertexData{Time: time}); err != nil {
		return 0, fmt.Errorf("%w", err)
	}

	return id, nil
}

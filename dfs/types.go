// Package dfs defines visitation states and sentinel errors shared by the
// ordering and cycle checks.
package dfs

import "errors"

// VertexState represents the DFS visitation state of a vertex.
const (
	White = iota // White: the vertex has not been discovered yet.
	Gray         // Gray: discovered, its finish marker is still on the stack.
	Black        // Black: the vertex and all its descendants are finished.
)

// ErrCycleDetected indicates that the region reachable from the initial
// vertices contains a cycle.
var ErrCycleDetected = errors.New("dfs: cycle detected")

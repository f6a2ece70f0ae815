package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/lvfst/builder"
	"github.com/katalvlaran/lvfst/dfs"
)

// ExampleTopoOrder orders a three-branch diamond: source first, sink last.
func ExampleTopoOrder() {
	s := builder.MustBuild(nil, builder.Diamond(-1, -2, -3))
	order := dfs.TopoOrder[int, int](s)
	fmt.Println(order[0], order[len(order)-1], len(order))
	// Output: 0 4 5
}

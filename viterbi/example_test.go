package viterbi_test

import (
	"fmt"

	"github.com/katalvlaran/lvfst/builder"
	"github.com/katalvlaran/lvfst/dfs"
	"github.com/katalvlaran/lvfst/viterbi"
)

func ExampleShortestPath() {
	s := builder.MustBuild(nil, builder.Diamond(-2.5, -0.5))
	path := viterbi.ShortestPath[int, int](s, dfs.TopoOrder[int, int](s))
	for _, e := range path {
		name, _ := s.Symbols().Name(s.Input(e))
		fmt.Printf("%d->%d %s %.1f\n", s.Tail(e), s.Head(e), name, s.Weight(e))
	}
	// Output:
	// 0->2 b1 -0.5
	// 2->3 <eps> 0.0
}

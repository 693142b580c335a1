package remove_test

import (
	"fmt"

	"github.com/katalvlaran/lvsynth/compose"
	"github.com/katalvlaran/lvsynth/motif"
	"github.com/katalvlaran/lvsynth/remove"
)

// ExampleRemove cuts a path at its most central node.
func ExampleRemove() {
	chain := motif.MustBuild(motif.Spec{Kind: motif.Chain, Size: 5})
	g, _, err := compose.Compose(compose.Plan{Requests: compose.Repeat(chain, 1, nil)}, nil)
	if err != nil {
		fmt.Println(err)
		return
	}

	_, rep, err := remove.Remove(g, remove.Policy{Kind: remove.Centrality, Count: 1}, nil, nil)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("removed:", rep.Removed)
	fmt.Printf("nodes %d -> %d, components %d -> %d, largest %d -> %d\n",
		rep.NodesBefore, rep.NodesAfter,
		rep.Before.Components, rep.After.Components,
		rep.Before.Largest, rep.After.Largest)

	// Output:
	// removed: [n2]
	// nodes 5 -> 4, components 1 -> 2, largest 5 -> 2
}

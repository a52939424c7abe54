package core_test

import (
	"fmt"

	"github.com/katalvlaran/lvlspread/core"
)

// ExampleGraph builds a small weighted graph and queries the read surface
// the diffusion engine uses.
func ExampleGraph() {
	g := core.NewGraph(core.WithWeighted())
	_ = g.AddEdge("alice", "bob", 0.4)
	_ = g.AddEdge("alice", "carol", 0.1)
	_ = g.AddEdge("bob", "carol", 0.9)

	nbrs, _ := g.OutNeighbors("alice")
	fmt.Println(nbrs)

	p, _ := g.ActProb("bob", "carol")
	fmt.Println(p)
	// Output:
	// [bob carol]
	// 0.9
}

// ExampleGraph_defaultMode shows edges without explicit probabilities
// resolving to the configured default.
func ExampleGraph_defaultMode() {
	g := core.NewGraph(core.WithDefaultProb(0.05))
	_ = g.AddDefaultEdge("u", "v")

	p, _ := g.ActProb("u", "v")
	fmt.Println(p)
	// Output:
	// 0.05
}

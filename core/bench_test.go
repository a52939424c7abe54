package core_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvlspread/core"
)

// BenchmarkOutNeighbors measures the sorted-neighbor read path the engine
// hits on every frontier vertex.
func BenchmarkOutNeighbors(b *testing.B) {
	const fanout = 100
	g := core.NewGraph(core.WithWeighted())
	for i := 0; i < fanout; i++ {
		if err := g.AddEdge("hub", fmt.Sprintf("v%d", i), 0.1); err != nil {
			b.Fatal(err)
		}
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.OutNeighbors("hub")
	}
}

// BenchmarkActProb measures the per-attempt probability lookup.
func BenchmarkActProb(b *testing.B) {
	g := core.NewGraph(core.WithWeighted())
	if err := g.AddEdge("u", "v", 0.1); err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.ActProb("u", "v")
	}
}

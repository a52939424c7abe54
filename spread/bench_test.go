package spread_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlspread/builder"
	"github.com/katalvlaran/lvlspread/spread"
)

// BenchmarkEstimate_Serial measures 100 trials on one goroutine.
func BenchmarkEstimate_Serial(b *testing.B) {
	g, err := builder.RandomSparse(300, 0.03, 0.1, rand.New(rand.NewSource(1)))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = spread.Estimate(g, []string{"v0"},
			spread.WithTrials(100), spread.WithSeed(int64(i)), spread.WithParallelism(1))
	}
}

// BenchmarkEstimate_Parallel measures the same workload fanned out.
func BenchmarkEstimate_Parallel(b *testing.B) {
	g, err := builder.RandomSparse(300, 0.03, 0.1, rand.New(rand.NewSource(1)))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = spread.Estimate(g, []string{"v0"},
			spread.WithTrials(100), spread.WithSeed(int64(i)))
	}
}

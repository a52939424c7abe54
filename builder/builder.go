// Package builder: synthetic graph constructors.
package builder

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lvlspread/core"
)

// Sentinel errors for constructor validation.
var (
	// ErrTooFewVertices indicates n < 1.
	ErrTooFewVertices = errors.New("builder: need at least one vertex")

	// ErrInvalidProbability indicates a probability outside [0,1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrNeedRandSource indicates a stochastic constructor was called
	// without a random source.
	ErrNeedRandSource = errors.New("builder: rand source required")
)

// vertexID returns the deterministic ID of vertex index i.
func vertexID(i int) string { return fmt.Sprintf("v%d", i) }

// validate checks the shared (n, probability) contract for one constructor.
func validate(method string, n int, probs ...float64) error {
	if n < 1 {
		return fmt.Errorf("%s: n=%d: %w", method, n, ErrTooFewVertices)
	}
	for _, p := range probs {
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%g not in [0,1]: %w", method, p, ErrInvalidProbability)
		}
	}

	return nil
}

// RandomSparse samples an Erdős–Rényi-like directed graph over n vertices:
// each ordered pair (i,j), i≠j, gets an edge independently with probability
// edgeProb, and every edge carries activation probability actProb.
//
// Trial order is i asc, j asc, so a fixed rng seed reproduces the graph.
// rng may be nil only when edgeProb is 0 or 1 (no sampling happens).
func RandomSparse(n int, edgeProb, actProb float64, rng *rand.Rand) (*core.Graph, error) {
	const method = "RandomSparse"
	if err := validate(method, n, edgeProb, actProb); err != nil {
		return nil, err
	}
	if rng == nil && edgeProb > 0 && edgeProb < 1 {
		return nil, fmt.Errorf("%s: %w", method, ErrNeedRandSource)
	}

	g := core.NewGraph(core.WithWeighted())
	for i := 0; i < n; i++ {
		if err := g.AddVertex(vertexID(i)); err != nil {
			return nil, fmt.Errorf("%s: %w", method, err)
		}
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if edgeProb < 1 && (edgeProb == 0 || rng.Float64() >= edgeProb) {
				continue
			}
			if err := g.AddEdge(vertexID(i), vertexID(j), actProb); err != nil {
				return nil, fmt.Errorf("%s: %w", method, err)
			}
		}
	}

	return g, nil
}

// Cycle builds the directed cycle v0→v1→…→v{n-1}→v0 with activation
// probability actProb on every edge. n=1 yields a single self-loop.
func Cycle(n int, actProb float64) (*core.Graph, error) {
	const method = "Cycle"
	if err := validate(method, n, actProb); err != nil {
		return nil, err
	}

	g := core.NewGraph(core.WithWeighted())
	for i := 0; i < n; i++ {
		if err := g.AddEdge(vertexID(i), vertexID((i+1)%n), actProb); err != nil {
			return nil, fmt.Errorf("%s: %w", method, err)
		}
	}

	return g, nil
}

// Star builds hub v0 with arcs to leaves v1..v{n-1}, each with activation
// probability actProb. n=1 yields a lone hub with no edges.
func Star(n int, actProb float64) (*core.Graph, error) {
	const method = "Star"
	if err := validate(method, n, actProb); err != nil {
		return nil, err
	}

	g := core.NewGraph(core.WithWeighted())
	if err := g.AddVertex(vertexID(0)); err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	for i := 1; i < n; i++ {
		if err := g.AddEdge(vertexID(0), vertexID(i), actProb); err != nil {
			return nil, fmt.Errorf("%s: %w", method, err)
		}
	}

	return g, nil
}

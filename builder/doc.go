// Package builder constructs deterministic synthetic graphs for tests,
// benchmarks, and examples: random sparse digraphs, directed cycles, and
// stars, all with a uniform activation probability per edge.
//
// Determinism
//
//	Vertices are added in ascending index order with IDs "v0".."v{n-1}",
//	and edge trials run in (i asc, j asc) order, so a fixed *rand.Rand
//	seed reproduces the same graph exactly.
//
// Contract
//
//   - n ≥ 1 (else ErrTooFewVertices).
//   - probabilities in [0,1] (else ErrInvalidProbability).
//   - RandomSparse requires a non-nil rng whenever 0 < edgeProb < 1
//     (else ErrNeedRandSource).
//   - Only sentinel errors; no panics at runtime.
//
// This package is test scaffolding, not a graph-loading layer: real
// experiment graphs are prepared by the caller.
package builder

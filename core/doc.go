// Package core provides the directed, probability-weighted graph that the
// diffusion engine reads: vertices with string IDs, and directed edges
// each carrying an activation probability in [0,1].
//
// What
//
//   - Build phase: AddVertex / AddEdge / AddDefaultEdge, guarded by a
//     sync.RWMutex so graphs can be assembled from multiple goroutines.
//   - Read phase: HasVertex, Vertices, OutNeighbors, ActProb — the only
//     surface the cascade engine touches. Readers never mutate, so any
//     number of concurrent trials can share one Graph.
//   - Two probability modes:
//   - default mode (NewGraph): edges may omit a probability
//     (AddDefaultEdge); reads resolve to the configured constant
//     (WithDefaultProb, 0.1 unless overridden).
//   - weighted mode (WithWeighted): every edge must carry an explicit
//     probability; AddDefaultEdge fails with ErrMissingProbability.
//
// Structural rules (validated at construction, never mid-simulation)
//
//   - Parallel directed edges between the same ordered pair are rejected
//     with ErrMultiEdge. The cascade semantics give each directed edge a
//     single activation attempt per trial; a multigraph has no meaningful
//     reading under that rule.
//   - Probabilities outside [0,1] (or NaN) are rejected with
//     ErrInvalidProbability.
//   - Self-loops are permitted; they contribute nothing to a cascade
//     because a vertex cannot activate itself.
//
// Determinism
//
//	Vertices() and OutNeighbors() return IDs sorted lexicographically
//	ascending, so every consumer that iterates the graph observes a stable
//	order and draws from its random stream in a reproducible sequence.
//
// Errors
//
//   - ErrEmptyVertexID       — vertex ID is "".
//   - ErrVertexNotFound      — queried vertex does not exist.
//   - ErrEdgeNotFound        — queried edge does not exist.
//   - ErrMultiEdge           — duplicate ordered pair on AddEdge.
//   - ErrInvalidProbability  — probability NaN or outside [0,1].
//   - ErrMissingProbability  — AddDefaultEdge on a weighted graph.
package core

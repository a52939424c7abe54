// Package matrix provides the dense activation-probability matrix backing
// the frontier (vectorized-style) cascade strategy.
//
// What
//
//   - Probability: a row-major n×n float64 matrix, rows = source vertices,
//     columns = targets, cell (i,j) = activation probability of the edge
//     IDs[i]→IDs[j], 0 where no edge exists.
//   - NewProbability(g) snapshots a core.Graph once into an engine-owned
//     table: later reads never touch the caller's graph, and the caller's
//     graph is never mutated to inject defaults — absent probabilities are
//     resolved through the graph's own mode at snapshot time.
//   - A deterministic vertex index: rows and columns follow the graph's
//     sorted vertex order, exposed via IndexOf / IDOf / IDs.
//
// When to use
//
//	Build one Probability per (graph, probability context) and hand it to
//	cascade.DiffuseDense for every trial; construction is O(V²) and meant
//	to be amortized over many trials.
//
// Errors
//
//   - ErrGraphNil         — NewProbability(nil).
//   - ErrEmptyGraph       — graph has no vertices.
//   - ErrIndexOutOfBounds — At/IDOf with an index outside [0,n).
package matrix

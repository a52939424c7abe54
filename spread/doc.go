// Package spread is the value oracle: it estimates expected influence
// spread by averaging many independent cascade trials.
//
// What
//
//   - Estimate runs N trials of cascade.Diffuse (or cascade.DiffuseDense
//     with WithDense) and returns the arithmetic mean of the per-trial
//     distinct-activation counts, plus the raw per-trial sizes and,
//     optionally, the full activation records.
//   - Seed-selection (submodular maximization) layers call it as a pure
//     function value(seedSet) → expected spread; nothing here persists or
//     optimizes.
//
// Concurrency & reproducibility
//
//	Trials are embarrassingly parallel: they share only the read-only
//	graph (or its matrix snapshot) and each one owns a private activation
//	state and random stream. Estimate fans trials out over a bounded
//	errgroup (WithParallelism); trial i always draws from substream
//	baseSeed+i and reduces into slot i, so for a fixed WithSeed the Mean
//	and Sizes are identical at any parallelism level.
//
// Failure model
//
//	All errors are deterministic properties of the inputs — unknown seeds
//	(cascade.ErrSeedNotFound) are rejected before the first trial, nil
//	graphs and invalid options immediately. Randomness never produces an
//	error, so callers never retry an estimate due to a transient fault.
//
// Errors
//
//   - ErrGraphNil               — nil graph.
//   - ErrEmptySeedSet           — empty seed set under WithRequireSeeds
//     (by default an empty seed set is legal and estimates zero spread).
//   - ErrOptionViolation        — trials < 1, parallelism < 1.
//   - cascade.ErrSeedNotFound   — a seed absent from the graph.
package spread

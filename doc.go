// Package lvlspread estimates influence spread through a directed network
// under the independent-cascade diffusion model — the stochastic value
// oracle used inside seed-selection (influence-maximization) algorithms.
//
// 🚀 What is lvlspread?
//
//	A small, deterministic-by-construction simulation library:
//		• core    — directed graphs with per-edge activation probabilities
//		• matrix  — dense probability matrices for vectorized-style rounds
//		• cascade — one stochastic cascade trial, two strategies behind
//		            one contract (edge enumeration / frontier states)
//		• spread  — Monte-Carlo trial aggregation into an expected-spread
//		            estimate, with independent per-trial random streams
//		• builder — deterministic synthetic graphs for tests & benchmarks
//
// ✨ Why choose lvlspread?
//
//   - Exact semantics — each directed edge gets at most one activation
//     attempt per trial, enforced and tested in both strategies
//   - Reproducible — explicit random-stream handles, sorted iteration
//     order, bit-identical layers under a fixed seed
//   - Safe to parallelize — trials share only the read-only graph view;
//     the aggregator fans out with independent substreams
//   - Pure Go — no cgo, minimal deps
//
// Quick ASCII example:
//
//	    6 ──▶ 4 ──▶ 2
//	    │     │
//	    ▼     ▼
//	    5 ──▶ 3
//
//	seed {6}, every edge p=0.2: one trial activates a random prefix of
//	the reachable set; spread.Estimate averages thousands of trials.
//
// Start with cascade.Diffuse for a single trial, spread.Estimate for the
// value-oracle mean. See each package's doc.go for contracts and errors.
package lvlspread

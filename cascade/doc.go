// Package cascade executes one stochastic trial of the independent-cascade
// diffusion model: starting from a seed set, newly activated vertices get a
// single chance to activate each out-neighbor, with per-edge probability,
// until a round activates nobody or the step budget runs out.
//
// What
//
//   - Diffuse: the edge-enumeration strategy. Walks the frontier round by
//     round over a Graph (adjacency view), drawing one uniform value per
//     attempted edge and recording attempts in a trial-scoped tried-edge
//     set so that every directed edge is attempted at most once per trial
//     — even if its source sits on the frontier when the target is still
//     inactive in a later round.
//   - DiffuseDense: the frontier strategy. Runs the same model over a
//     precomputed matrix.Probability using explicit per-vertex states
//     (unactivated → active → exhausted). Exhaustion replaces the
//     tried-edge set: a source spends all its out-edges in its single
//     active round and never attempts again.
//   - Both return a Result: Layers[0] is the deduplicated seed set, and
//     Layers[k] the vertices newly activated in round k. Rounds that
//     activate nobody are not recorded as layers.
//
// Semantics
//
//	Within one round, attempts are made toward every target that was
//	inactive when the round began; a target activated earlier in the same
//	round by another source still consumes the remaining sources' draws
//	(and their tried-edge entries), mirroring the batched-draw reading of
//	the model. An activation attempt on edge (u,v) succeeds iff p > 0 and
//	the drawn r ∈ [0,1) satisfies r ≤ p, so zero-probability edges never
//	fire and probability-one edges always do.
//
// Determinism
//
//	Frontier vertices are processed in ascending ID order and neighbors in
//	the order the Graph reports (sorted, for core.Graph), so the random
//	stream is consumed in a fixed sequence: with a fixed WithRand stream
//	and step budget, repeated runs produce bit-identical layers. The two
//	strategies consume their streams differently (DiffuseDense skips draws
//	for absent edges) and therefore match in distribution, not per-draw.
//
// Errors
//
//   - ErrGraphNil / ErrMatrixNil — nil input.
//   - ErrSeedNotFound            — a seed vertex absent from the view;
//     detected before any random draw.
//   - ErrOptionViolation         — invalid option (e.g. WithRand(nil)).
//   - ErrNeighbors               — the Graph failed mid-walk (only
//     possible with custom Graph implementations).
//
// Usage
//
//	rng := rand.New(rand.NewSource(42))
//	res, err := cascade.Diffuse(g, []string{"seed"},
//	    cascade.WithRand(rng),
//	    cascade.WithSteps(0), // run to quiescence
//	)
//	if err != nil { ... }
//	fmt.Println(res.Size(), res.Layers)
//
// One trial is a few microseconds on small graphs; the spread package
// aggregates many trials into an expected-spread estimate.
package cascade

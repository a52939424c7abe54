// Package spread: the Estimate entry point.
package spread

import (
	"fmt"
	"math/rand"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvlspread/cascade"
	"github.com/katalvlaran/lvlspread/core"
	"github.com/katalvlaran/lvlspread/matrix"
)

// Estimate runs opts.Trials independent cascade trials from seeds on g and
// returns the mean spread. Every deterministic precondition (graph, seeds,
// options) is checked before the first trial starts.
func Estimate(g *core.Graph, seeds []string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, err
	}
	if o.RequireSeeds && len(seeds) == 0 {
		return nil, ErrEmptySeedSet
	}
	// Fail fast on unknown seeds, once, not per trial.
	for _, s := range seeds {
		if !g.HasVertex(s) {
			return nil, fmt.Errorf("spread: %w: %q", cascade.ErrSeedNotFound, s)
		}
	}

	// One trial runner per strategy; the matrix snapshot is shared,
	// read-only, across all trials.
	var runTrial func(rng *rand.Rand) (*cascade.Result, error)
	if o.Dense {
		m, merr := matrix.NewProbability(g)
		if merr != nil {
			return nil, fmt.Errorf("spread: %w", merr)
		}
		runTrial = func(rng *rand.Rand) (*cascade.Result, error) {
			return cascade.DiffuseDense(m, seeds, cascade.WithRand(rng), cascade.WithSteps(o.Steps))
		}
	} else {
		runTrial = func(rng *rand.Rand) (*cascade.Result, error) {
			return cascade.Diffuse(g, seeds, cascade.WithRand(rng), cascade.WithSteps(o.Steps))
		}
	}

	res := &Result{Sizes: make([]int, o.Trials)}
	if o.KeepRecords {
		res.Records = make([]*cascade.Result, o.Trials)
	}

	// Trial i owns substream Seed+i and reduces into slot i, so the
	// estimate is identical at any parallelism level.
	var group errgroup.Group
	group.SetLimit(o.Parallelism)
	for i := 0; i < o.Trials; i++ {
		i := i // per-iteration copy: required for pre-1.22 loop semantics
		group.Go(func() error {
			rng := rand.New(rand.NewSource(o.Seed + int64(i)))
			rec, terr := runTrial(rng)
			if terr != nil {
				return terr
			}
			res.Sizes[i] = rec.Size()
			if o.KeepRecords {
				res.Records[i] = rec
			}

			return nil
		})
	}
	if err = group.Wait(); err != nil {
		return nil, fmt.Errorf("spread: trial failed: %w", err)
	}

	total := 0
	for _, n := range res.Sizes {
		total += n
	}
	res.Mean = float64(total) / float64(o.Trials)

	return res, nil
}

// Package spread: options, sentinel errors, and the estimate result.
package spread

import (
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/katalvlaran/lvlspread/cascade"
)

// DefaultTrials is the Monte-Carlo trial count used when WithTrials is not
// supplied.
const DefaultTrials = 100

// Sentinel errors for estimation.
var (
	// ErrGraphNil is returned if a nil graph is passed to Estimate.
	ErrGraphNil = errors.New("spread: graph is nil")

	// ErrEmptySeedSet is returned for an empty seed set when the caller
	// opted into WithRequireSeeds.
	ErrEmptySeedSet = errors.New("spread: empty seed set")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("spread: invalid option supplied")
)

// Option configures Estimate via functional arguments.
type Option func(*Options)

// Options holds the aggregator's tunable parameters.
type Options struct {
	// Trials is the number of independent cascade trials to average.
	Trials int

	// Steps caps rounds per trial; ≤ 0 runs each trial to quiescence.
	Steps int

	// Seed is the base of the per-trial substreams: trial i draws from
	// rand.NewSource(Seed + i). Fixing it makes the estimate reproducible.
	Seed int64

	// Parallelism bounds the number of concurrently running trials.
	Parallelism int

	// Dense selects the frontier strategy over a one-time matrix snapshot.
	Dense bool

	// KeepRecords retains every trial's full activation record.
	KeepRecords bool

	// RequireSeeds rejects an empty seed set with ErrEmptySeedSet.
	RequireSeeds bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with DefaultTrials trials, no step limit,
// a time-based seed, and parallelism equal to the number of CPUs.
func DefaultOptions() Options {
	return Options{
		Trials:      DefaultTrials,
		Steps:       0,
		Seed:        time.Now().UnixNano(),
		Parallelism: runtime.NumCPU(),
	}
}

// WithTrials sets the trial count; n < 1 is an option violation.
func WithTrials(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Trials must be ≥ 1 (%d)", ErrOptionViolation, n)

			return
		}
		o.Trials = n
	}
}

// WithSteps caps rounds per trial; n ≤ 0 means unbounded.
func WithSteps(n int) Option {
	return func(o *Options) { o.Steps = n }
}

// WithSeed fixes the base random seed for reproducible estimates.
func WithSeed(s int64) Option {
	return func(o *Options) { o.Seed = s }
}

// WithParallelism bounds concurrent trials; k < 1 is an option violation.
func WithParallelism(k int) Option {
	return func(o *Options) {
		if k < 1 {
			o.err = fmt.Errorf("%w: Parallelism must be ≥ 1 (%d)", ErrOptionViolation, k)

			return
		}
		o.Parallelism = k
	}
}

// WithDense runs trials on the frontier strategy over a dense probability
// snapshot built once up front.
func WithDense() Option {
	return func(o *Options) { o.Dense = true }
}

// WithRecords retains the per-trial activation records in Result.Records.
func WithRecords() Option {
	return func(o *Options) { o.KeepRecords = true }
}

// WithRequireSeeds makes an empty seed set an error instead of zero spread.
func WithRequireSeeds() Option {
	return func(o *Options) { o.RequireSeeds = true }
}

// gatherOptions folds opts over defaults.
func gatherOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}

	return o, nil
}

// Result is the outcome of one Estimate call.
type Result struct {
	// Mean is the expected spread: the average, over all trials, of the
	// number of distinct activated vertices (seeds included).
	Mean float64

	// Sizes holds each trial's distinct-activation count; index = trial.
	Sizes []int

	// Records holds each trial's full activation record when WithRecords
	// was supplied; nil otherwise.
	Records []*cascade.Result
}

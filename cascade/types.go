// Package cascade: the Graph capability contract, tunable options,
// sentinel errors, and the Result type shared by both strategies.
package cascade

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"time"
)

// Sentinel errors for cascade execution.
var (
	// ErrGraphNil is returned if a nil Graph is passed to Diffuse.
	ErrGraphNil = errors.New("cascade: graph is nil")

	// ErrMatrixNil is returned if a nil matrix is passed to DiffuseDense.
	ErrMatrixNil = errors.New("cascade: probability matrix is nil")

	// ErrSeedNotFound is returned when a seed vertex is absent from the
	// view; surfaced before any random draw.
	ErrSeedNotFound = errors.New("cascade: seed vertex not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("cascade: invalid option supplied")

	// ErrNeighbors is returned when the graph view fails mid-walk.
	ErrNeighbors = errors.New("cascade: neighbor iteration error")
)

// Graph is the read-only capability the edge-enumeration strategy needs.
// *core.Graph satisfies it. Implementations must be safe for concurrent
// readers and should report neighbors in a stable order — reproducibility
// of a seeded trial depends on a fixed draw-consumption sequence.
type Graph interface {
	// HasVertex reports whether id exists.
	HasVertex(id string) bool

	// OutNeighbors lists the targets of id's outgoing edges.
	OutNeighbors(id string) ([]string, error)

	// ActProb returns the activation probability of the edge from→to.
	ActProb(from, to string) (float64, error)
}

// Option configures a trial via functional arguments. An invalid Option is
// recorded internally and surfaced as ErrOptionViolation on execution.
type Option func(*Options)

// Options holds the tunable parameters of one trial.
type Options struct {
	// Steps caps the number of diffusion rounds; ≤ 0 runs to quiescence.
	Steps int

	// Rand is the trial's private random stream. Never a process-global
	// generator: concurrent trials must each own an independent stream.
	Rand *rand.Rand

	// OnRound is invoked after each round that activated at least one
	// vertex, with the round number (1-based) and the new layer.
	OnRound func(round int, newlyActive []string)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no step limit, a no-op round hook,
// and no stream (a fresh time-seeded private stream is created on run).
func DefaultOptions() Options {
	return Options{
		Steps:   0,
		Rand:    nil,
		OnRound: func(int, []string) {},
	}
}

// WithSteps caps the number of rounds; n ≤ 0 means unbounded.
func WithSteps(n int) Option {
	return func(o *Options) { o.Steps = n }
}

// WithRand sets the trial's random stream. Passing nil is an option
// violation: the caller either owns a stream or omits the option entirely.
func WithRand(rng *rand.Rand) Option {
	return func(o *Options) {
		if rng == nil {
			o.err = fmt.Errorf("%w: WithRand(nil)", ErrOptionViolation)

			return
		}
		o.Rand = rng
	}
}

// WithOnRound registers a per-round observation hook.
func WithOnRound(fn func(round int, newlyActive []string)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRound = fn
		}
	}
}

// gatherOptions folds opts over defaults and materializes the stream.
func gatherOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}
	if o.Rand == nil {
		// Private fallback stream; never the package-global source.
		o.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return o, nil
}

// Result is the activation record of one trial.
//
// Layers[0] is the deduplicated, sorted seed set; Layers[k] holds the
// vertices newly activated in round k, sorted ascending. A Result is
// immutable once returned.
type Result struct {
	Layers [][]string

	activated map[string]struct{}
}

// newResult seeds the record with layer 0.
func newResult(seedLayer []string) *Result {
	r := &Result{
		Layers:    [][]string{seedLayer},
		activated: make(map[string]struct{}, len(seedLayer)),
	}
	for _, id := range seedLayer {
		r.activated[id] = struct{}{}
	}

	return r
}

// addLayer appends one round's newly activated vertices.
func (r *Result) addLayer(ids []string) {
	r.Layers = append(r.Layers, ids)
	for _, id := range ids {
		r.activated[id] = struct{}{}
	}
}

// Activated returns the union of all layers, sorted ascending.
func (r *Result) Activated() []string {
	out := make([]string, 0, len(r.activated))
	for id := range r.activated {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// Size returns the number of distinct activated vertices, seeds included.
func (r *Result) Size() int { return len(r.activated) }

// Rounds returns the number of diffusion rounds that activated anyone.
func (r *Result) Rounds() int { return len(r.Layers) - 1 }

// Contains reports whether id was activated during the trial.
func (r *Result) Contains(id string) bool {
	_, ok := r.activated[id]

	return ok
}

// dedupSeeds validates, deduplicates, and sorts the seed set.
// exists is the membership test of the concrete view.
func dedupSeeds(seeds []string, exists func(string) bool) ([]string, error) {
	uniq := make(map[string]struct{}, len(seeds))
	out := make([]string, 0, len(seeds))
	for _, s := range seeds {
		if !exists(s) {
			return nil, fmt.Errorf("%w: %q", ErrSeedNotFound, s)
		}
		if _, dup := uniq[s]; dup {
			continue
		}
		uniq[s] = struct{}{}
		out = append(out, s)
	}
	sort.Strings(out)

	return out, nil
}

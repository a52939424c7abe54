// Package cascade: edge-enumeration strategy over a Graph view.
package cascade

import (
	"fmt"
	"sort"
)

// edgeKey identifies a directed edge in the tried-edge set.
type edgeKey struct {
	from, to string
}

// walker holds the mutable state of one edge-enumeration trial.
// All of it is trial-local; nothing escapes but the Result.
type walker struct {
	g    Graph
	opts Options

	// frontier holds the vertices activated in the previous round;
	// activated is everything active before the current round;
	// tried records directed edges already attempted this trial.
	frontier  []string
	activated map[string]struct{}
	tried     map[edgeKey]struct{}
	res       *Result
}

// Diffuse runs one independent-cascade trial on g from seeds.
//
// Seeds are validated (ErrSeedNotFound) and deduplicated before any random
// draw. An empty seed set is legal and yields a single empty layer 0 with
// zero spread. The graph is only read; a trial never mutates it.
func Diffuse(g Graph, seeds []string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, err
	}

	seedLayer, err := dedupSeeds(seeds, g.HasVertex)
	if err != nil {
		return nil, err
	}

	w := &walker{
		g:         g,
		opts:      o,
		frontier:  seedLayer,
		activated: make(map[string]struct{}, len(seedLayer)),
		tried:     make(map[edgeKey]struct{}),
		res:       newResult(seedLayer),
	}
	for _, s := range seedLayer {
		w.activated[s] = struct{}{}
	}

	return w.res, w.loop()
}

// loop advances rounds until quiescence or the step budget is spent.
func (w *walker) loop() error {
	for round := 1; len(w.frontier) > 0; round++ {
		if w.opts.Steps > 0 && round > w.opts.Steps {
			break
		}

		newly, err := w.round()
		if err != nil {
			return err
		}
		if len(newly) == 0 {
			break
		}

		w.res.addLayer(newly)
		w.opts.OnRound(round, newly)
		w.frontier = newly
		for _, id := range newly {
			w.activated[id] = struct{}{}
		}
	}

	return nil
}

// round gives every frontier vertex its single chance at each neighbor
// that was inactive when the round began, skipping edges already tried in
// any earlier round. Returns the new layer, sorted ascending.
func (w *walker) round() ([]string, error) {
	newly := make(map[string]struct{})
	for _, u := range w.frontier {
		nbrs, err := w.g.OutNeighbors(u)
		if err != nil {
			return nil, fmt.Errorf("%w: neighbors of %q: %v", ErrNeighbors, u, err)
		}
		for _, v := range nbrs {
			// already active before this round (covers self-loops)
			if _, act := w.activated[v]; act {
				continue
			}
			key := edgeKey{from: u, to: v}
			if _, seen := w.tried[key]; seen {
				continue
			}
			w.tried[key] = struct{}{}

			p, err := w.g.ActProb(u, v)
			if err != nil {
				return nil, fmt.Errorf("%w: probability of %q→%q: %v", ErrNeighbors, u, v, err)
			}
			if p > 0 && w.opts.Rand.Float64() <= p {
				newly[v] = struct{}{}
			}
		}
	}

	return sortedKeys(newly), nil
}

// sortedKeys flattens a set into a sorted slice.
func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

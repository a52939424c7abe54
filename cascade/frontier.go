// Package cascade: frontier strategy over a dense probability matrix.
package cascade

import (
	"sort"

	"github.com/katalvlaran/lvlspread/matrix"
)

// nodeState is the per-vertex lifecycle of the frontier strategy.
type nodeState uint8

const (
	// unactivated vertices may still be reached.
	unactivated nodeState = iota
	// active vertices attempt all their out-edges this round.
	active
	// exhausted vertices have spent their single active round; their
	// out-edges are never revisited — the state-machine analogue of the
	// edge-enumeration strategy's tried-edge set.
	exhausted
)

// DiffuseDense runs one independent-cascade trial over a precomputed
// probability matrix, using explicit per-vertex states instead of a
// tried-edge set. Functionally equivalent to Diffuse in distribution;
// prefer it when one matrix is amortized over many trials on graphs with
// large fan-out.
func DiffuseDense(m *matrix.Probability, seeds []string, opts ...Option) (*Result, error) {
	if m == nil {
		return nil, ErrMatrixNil
	}
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, err
	}

	exists := func(id string) bool {
		_, ok := m.IndexOf(id)

		return ok
	}
	seedLayer, err := dedupSeeds(seeds, exists)
	if err != nil {
		return nil, err
	}

	n := m.Order()
	states := make([]nodeState, n)
	frontier := make([]int, 0, len(seedLayer))
	for _, id := range seedLayer {
		i, _ := m.IndexOf(id)
		states[i] = active
		frontier = append(frontier, i)
	}
	// Vertex IDs are sorted ascending in the matrix index, so ascending
	// indices preserve the lexicographic layer order Diffuse reports.
	sort.Ints(frontier)

	res := newResult(seedLayer)
	reached := make([]bool, n)

	for round := 1; len(frontier) > 0; round++ {
		if o.Steps > 0 && round > o.Steps {
			break
		}

		// Batched draws: every active source tries each target that was
		// unactivated when the round began. Absent edges (p == 0) draw
		// nothing — a Bernoulli(0) can never fire.
		for _, u := range frontier {
			row, rerr := m.Row(u)
			if rerr != nil {
				return nil, rerr
			}
			for v, p := range row {
				if states[v] != unactivated || p == 0 {
					continue
				}
				if o.Rand.Float64() <= p {
					reached[v] = true
				}
			}
		}

		// Transition: sources are spent, reached targets join the frontier.
		for _, u := range frontier {
			states[u] = exhausted
		}
		frontier = frontier[:0]
		layer := make([]string, 0)
		for v := 0; v < n; v++ {
			if !reached[v] {
				continue
			}
			reached[v] = false
			states[v] = active
			frontier = append(frontier, v)
			id, ierr := m.IDOf(v)
			if ierr != nil {
				return nil, ierr
			}
			layer = append(layer, id)
		}
		if len(layer) == 0 {
			break
		}

		res.addLayer(layer)
		o.OnRound(round, layer)
	}

	return res, nil
}

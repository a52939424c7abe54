// Package matrix: Probability type, construction from core.Graph, and
// bounds-checked accessors.
package matrix

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlspread/core"
)

// Sentinel errors for matrix construction and access.
var (
	// ErrGraphNil is returned when NewProbability receives a nil graph.
	ErrGraphNil = errors.New("matrix: graph is nil")

	// ErrEmptyGraph is returned when the graph has no vertices.
	ErrEmptyGraph = errors.New("matrix: graph has no vertices")

	// ErrIndexOutOfBounds indicates a row or column index outside [0,n).
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")
)

// Probability is a dense row-major activation-probability matrix over a
// fixed vertex order. It is immutable after construction and safe for
// concurrent readers.
type Probability struct {
	n     int
	ids   []string       // row/column i → vertex ID, sorted ascending
	index map[string]int // vertex ID → row/column
	data  []float64      // flat row-major storage, length n*n
}

// NewProbability snapshots g into a dense probability matrix.
//
// The vertex order is g.Vertices() (sorted ascending), so the mapping is
// reproducible across calls. Cells without an edge hold 0; edges without
// an explicit probability resolve through the graph's default mode.
// Complexity: O(V² ) memory, O(V² + E) time.
func NewProbability(g *core.Graph) (*Probability, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	ids := g.Vertices()
	n := len(ids)
	if n == 0 {
		return nil, ErrEmptyGraph
	}

	m := &Probability{
		n:     n,
		ids:   ids,
		index: make(map[string]int, n),
		data:  make([]float64, n*n),
	}
	for i, id := range ids {
		m.index[id] = i
	}

	for i, from := range ids {
		nbrs, err := g.OutNeighbors(from)
		if err != nil {
			return nil, fmt.Errorf("matrix: snapshot of %q: %w", from, err)
		}
		row := i * n
		for _, to := range nbrs {
			p, perr := g.ActProb(from, to)
			if perr != nil {
				return nil, fmt.Errorf("matrix: snapshot of %q→%q: %w", from, to, perr)
			}
			m.data[row+m.index[to]] = p
		}
	}

	return m, nil
}

// Order returns n, the number of vertices (rows and columns).
func (m *Probability) Order() int { return m.n }

// At returns the activation probability of the edge IDs[i]→IDs[j],
// 0 if no such edge exists. Returns ErrIndexOutOfBounds on bad indices.
func (m *Probability) At(i, j int) (float64, error) {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return 0, fmt.Errorf("%w: At(%d,%d) with order %d", ErrIndexOutOfBounds, i, j, m.n)
	}

	return m.data[i*m.n+j], nil
}

// Row returns the probabilities of all edges out of source row i as a
// read-only slice view into the matrix. Callers must not modify it.
func (m *Probability) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.n {
		return nil, fmt.Errorf("%w: Row(%d) with order %d", ErrIndexOutOfBounds, i, m.n)
	}

	return m.data[i*m.n : (i+1)*m.n], nil
}

// IndexOf returns the row/column of a vertex ID and whether it exists.
func (m *Probability) IndexOf(id string) (int, bool) {
	i, ok := m.index[id]

	return i, ok
}

// IDOf returns the vertex ID at row/column i.
func (m *Probability) IDOf(i int) (string, error) {
	if i < 0 || i >= m.n {
		return "", fmt.Errorf("%w: IDOf(%d) with order %d", ErrIndexOutOfBounds, i, m.n)
	}

	return m.ids[i], nil
}

// IDs returns a copy of the vertex order.
func (m *Probability) IDs() []string {
	out := make([]string, m.n)
	copy(out, m.ids)

	return out
}

// Package core: mutating (build-phase) methods.
package core

import (
	"fmt"
	"math"
)

// AddVertex inserts a vertex if missing (idempotent).
// Returns ErrEmptyVertexID if id is "".
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.addVertexLocked(id)

	return nil
}

// addVertexLocked registers id in the vertex set; caller holds the write lock.
func (g *Graph) addVertexLocked(id string) {
	if _, ok := g.vertices[id]; ok {
		return
	}
	g.vertices[id] = struct{}{}
}

// AddEdge inserts the directed edge from→to with activation probability p,
// creating missing endpoints. Self-loops are permitted.
//
// Returns ErrEmptyVertexID on an empty endpoint, ErrInvalidProbability if
// p is NaN or outside [0,1], and ErrMultiEdge if the ordered pair already
// has an edge.
func (g *Graph) AddEdge(from, to string, p float64) error {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return fmt.Errorf("%w: p=%g on edge %q→%q", ErrInvalidProbability, p, from, to)
	}

	return g.addEdge(from, to, p)
}

// AddDefaultEdge inserts the directed edge from→to without an explicit
// probability. On a default-mode graph the edge reads back the configured
// default (see WithDefaultProb); on a weighted graph the call fails with
// ErrMissingProbability, so strict graphs are fully specified the moment
// construction succeeds.
func (g *Graph) AddDefaultEdge(from, to string) error {
	if g.Weighted() {
		return fmt.Errorf("%w: edge %q→%q", ErrMissingProbability, from, to)
	}

	return g.addEdge(from, to, probAbsent)
}

// addEdge performs the shared endpoint validation, multi-edge check, and
// adjacency insert for AddEdge and AddDefaultEdge.
func (g *Graph) addEdge(from, to string, p float64) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, dup := g.adj[from][to]; dup {
		return fmt.Errorf("%w: edge %q→%q", ErrMultiEdge, from, to)
	}

	g.addVertexLocked(from)
	g.addVertexLocked(to)
	if g.adj[from] == nil {
		g.adj[from] = make(map[string]float64)
	}
	g.adj[from][to] = p
	g.edgeCount++

	return nil
}

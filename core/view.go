// Package core: read-only query methods — the surface the diffusion
// engine consumes. All methods here take only the read lock and never
// mutate the graph, so concurrent trials may share one Graph freely.
package core

import (
	"fmt"
	"math"
	"sort"
)

// HasVertex reports whether id exists in the graph.
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.vertices[id]

	return ok
}

// Vertices returns all vertex IDs sorted lexicographically ascending.
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// OutNeighbors returns the targets of id's outgoing edges, sorted
// lexicographically ascending; empty if id has no outgoing edges.
// Returns ErrVertexNotFound if id is absent.
func (g *Graph) OutNeighbors(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	row := g.adj[id]
	out := make([]string, 0, len(row))
	for to := range row {
		out = append(out, to)
	}
	sort.Strings(out)

	return out, nil
}

// ActProb returns the activation probability of the directed edge
// from→to. Edges added without an explicit probability resolve to the
// graph's default. Returns ErrEdgeNotFound if the edge is absent.
func (g *Graph) ActProb(from, to string) (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	p, ok := g.adj[from][to]
	if !ok {
		return 0, fmt.Errorf("%w: edge %q→%q", ErrEdgeNotFound, from, to)
	}
	if math.IsNaN(p) {
		// Absent probabilities survive construction only in default mode.
		return g.defaultProb, nil
	}

	return p, nil
}

// HasEdge reports whether the directed edge from→to exists.
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adj[from][to]

	return ok
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns the number of directed edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

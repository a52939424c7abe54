// Package core: Graph type, construction options, and sentinel errors.
package core

import (
	"errors"
	"fmt"
	"math"
	"sync"
)

// DefaultActProb is the activation probability assigned to edges added
// without an explicit value on a default-mode graph.
const DefaultActProb = 0.1

// Sentinel errors for graph construction and queries.
var (
	// ErrEmptyVertexID indicates a vertex with an empty string ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrMultiEdge indicates an attempt to add a second edge between the
	// same ordered vertex pair.
	ErrMultiEdge = errors.New("core: parallel edges not allowed")

	// ErrInvalidProbability indicates an activation probability outside [0,1].
	ErrInvalidProbability = errors.New("core: activation probability out of range")

	// ErrMissingProbability indicates an edge without an explicit probability
	// on a graph built in weighted (strict) mode.
	ErrMissingProbability = errors.New("core: missing activation probability on weighted graph")
)

// GraphOption configures a Graph before first use.
type GraphOption func(*Graph)

// WithWeighted switches the graph to strict mode: every edge must carry an
// explicit activation probability, and AddDefaultEdge is rejected.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// WithDefaultProb sets the probability used for edges added via
// AddDefaultEdge on a default-mode graph. Panics if p is NaN or outside
// [0,1]; a nonsensical default is a programmer error, not runtime input.
func WithDefaultProb(p float64) GraphOption {
	if math.IsNaN(p) || p < 0 || p > 1 {
		panic(fmt.Sprintf("core: WithDefaultProb(%g): probability must be in [0,1]", p))
	}

	return func(g *Graph) { g.defaultProb = p }
}

// probAbsent marks an edge added without an explicit probability.
// NaN never validates as a real probability, so it cannot collide.
var probAbsent = math.NaN()

// Graph is a directed graph whose edges carry activation probabilities.
//
// The zero value is not usable; construct with NewGraph. All methods are
// safe for concurrent use: one RWMutex guards the vertex set and the
// adjacency structure, and the read API takes only the read lock.
type Graph struct {
	mu sync.RWMutex

	weighted    bool    // strict mode: explicit probability per edge
	defaultProb float64 // resolution for absent probabilities in default mode

	vertices  map[string]struct{}
	adj       map[string]map[string]float64 // from → to → probability (NaN = absent)
	edgeCount int
}

// NewGraph creates an empty directed graph. By default the graph runs in
// default-probability mode with DefaultActProb; see WithWeighted and
// WithDefaultProb.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		defaultProb: DefaultActProb,
		vertices:    make(map[string]struct{}),
		adj:         make(map[string]map[string]float64),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Weighted reports whether the graph requires explicit edge probabilities.
func (g *Graph) Weighted() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.weighted
}

// DefaultProb returns the probability assigned to edges without an
// explicit value in default mode.
func (g *Graph) DefaultProb() float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.defaultProb
}

// Package graph: central types, sentinel errors, and the New constructor.
//
// Errors:
//
//	ErrBadNodeCount   - negative node count at construction.
//	ErrNodeOutOfRange - node id outside [0, NumNodes).
//	ErrEdgeNotFound   - requested edge does not exist.
//	ErrWeightMismatch - edge and weight lists of different lengths.
package graph

import (
	"errors"
	"sync"
)

// Sentinel errors for graph operations. Match with errors.Is; messages carry
// the package prefix for grep-friendly logs.
var (
	// ErrBadNodeCount indicates a negative node count passed to New.
	ErrBadNodeCount = errors.New("graph: node count must be non-negative")

	// ErrNodeOutOfRange indicates a node id outside [0, NumNodes).
	// Negative ids are always out of range.
	ErrNodeOutOfRange = errors.New("graph: node id out of range")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("graph: edge not found")

	// ErrWeightMismatch indicates a non-empty weight list whose length differs
	// from the edge list it annotates.
	ErrWeightMismatch = errors.New("graph: edges and weights length mismatch")
)

// DefaultEdgeWeight is assigned to edges added without an explicit weight.
const DefaultEdgeWeight float64 = 1.0

// Edge is an endpoint pair used in edge lists and in the Edges export.
// For a directed graph it denotes the arc U→V; for an undirected graph the
// logical edge {U, V}.
type Edge struct {
	U int
	V int
}

// edgeKey keys the weight table by an ordered arc. A struct key hashes both
// fields independently, so distinct pairs never collide (unlike bit-packed
// composite keys).
type edgeKey struct {
	u int
	v int
}

// Option configures a Graph at construction time.
type Option func(*config)

// config collects construction parameters before allocation.
type config struct {
	directed bool
	weights  []float64
}

// WithUndirected builds an undirected graph: every logical edge is stored as
// two mirrored arcs sharing one weight. The default is directed.
func WithUndirected() Option {
	return func(c *config) { c.directed = false }
}

// WithWeights supplies one weight per edge in the construction edge list.
// A non-empty slice whose length differs from the edge list yields
// ErrWeightMismatch from New. Omitted or empty, every edge gets
// DefaultEdgeWeight.
func WithWeights(weights []float64) Option {
	return func(c *config) { c.weights = weights }
}

// Graph is the in-memory weighted graph over dense integer node ids.
//
// The node universe is fixed at construction; edges may be added, updated,
// and removed afterwards. mu guards adjacency and the weight table.
type Graph struct {
	mu sync.RWMutex

	directed bool
	numEdges int // logical edges, not mirrored arcs

	out []map[int]struct{} // out[u] = set of v with arc u→v
	in  []map[int]struct{} // in[v] = set of u with arc u→v; nil when undirected

	weights map[edgeKey]float64 // ordered arc → weight; mirrored when undirected
}

// New builds a Graph over numNodes nodes from an initial edge list.
// Weights default to DefaultEdgeWeight; see WithWeights and WithUndirected.
//
// Returns ErrBadNodeCount for a negative count, ErrWeightMismatch for a
// mismatched weight list, and ErrNodeOutOfRange if any endpoint falls outside
// [0, numNodes).
// Complexity: O(numNodes + len(edges)).
func New(numNodes int, edges []Edge, opts ...Option) (*Graph, error) {
	if numNodes < 0 {
		return nil, ErrBadNodeCount
	}
	cfg := config{directed: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	g := &Graph{
		directed: cfg.directed,
		out:      make([]map[int]struct{}, numNodes),
		weights:  make(map[edgeKey]float64, len(edges)),
	}
	for u := range g.out {
		g.out[u] = make(map[int]struct{})
	}
	if cfg.directed {
		g.in = make([]map[int]struct{}, numNodes)
		for v := range g.in {
			g.in[v] = make(map[int]struct{})
		}
	}

	if err := g.AddEdges(edges, cfg.weights); err != nil {
		return nil, err
	}

	return g, nil
}

// File: queries.go
// Role: Read-only queries: neighbors, degrees, edge lookups, exports, Clone.
// Determinism: every returned slice is a fresh copy with node ids sorted
// ascending, so callers can rely on stable iteration order.
// Concurrency: read lock only; no method here mutates the graph.
package graph

import (
	"fmt"
	"sort"
)

// NumNodes returns the size of the fixed node universe.
func (g *Graph) NumNodes() int {
	return len(g.out)
}

// NumEdges returns the count of logical edges: mirrored arcs of an undirected
// edge count once.
// Concurrency: read lock.
func (g *Graph) NumEdges() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.numEdges
}

// Directed reports whether the graph stores one-way arcs.
func (g *Graph) Directed() bool {
	return g.directed
}

// HasEdge reports whether the arc u→v exists. Out-of-range ids report false
// rather than an error, mirroring the membership-test idiom.
// Complexity: O(1). Concurrency: read lock.
func (g *Graph) HasEdge(u, v int) bool {
	if g.checkNode(u) != nil || g.checkNode(v) != nil {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.weights[edgeKey{u, v}]

	return ok
}

// Weight returns the weight of the arc u→v and whether the arc exists.
// Complexity: O(1). Concurrency: read lock.
func (g *Graph) Weight(u, v int) (float64, bool) {
	if g.checkNode(u) != nil || g.checkNode(v) != nil {
		return 0, false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	w, ok := g.weights[edgeKey{u, v}]

	return w, ok
}

// sortedSet copies a neighbor set into an ascending slice.
func sortedSet(set map[int]struct{}) []int {
	out := make([]int, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Ints(out)

	return out
}

// OutNeighbors returns the nodes reachable by one outgoing arc from u,
// sorted ascending, as a defensive copy.
// Complexity: O(d log d) for out-degree d. Concurrency: read lock.
func (g *Graph) OutNeighbors(u int) ([]int, error) {
	if err := g.checkNode(u); err != nil {
		return nil, err
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return sortedSet(g.out[u]), nil
}

// InNeighbors returns the nodes with an arc into u, sorted ascending, as a
// defensive copy. On an undirected graph in-neighbors equal out-neighbors.
// Complexity: O(d log d) for in-degree d. Concurrency: read lock.
func (g *Graph) InNeighbors(u int) ([]int, error) {
	if err := g.checkNode(u); err != nil {
		return nil, err
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.directed {
		return sortedSet(g.in[u]), nil
	}

	return sortedSet(g.out[u]), nil
}

// OutDegree returns the number of outgoing arcs of u.
// Complexity: O(1). Concurrency: read lock.
func (g *Graph) OutDegree(u int) (int, error) {
	if err := g.checkNode(u); err != nil {
		return 0, err
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.out[u]), nil
}

// InDegree returns the number of incoming arcs of u; on an undirected graph
// it equals OutDegree.
// Complexity: O(1). Concurrency: read lock.
func (g *Graph) InDegree(u int) (int, error) {
	if err := g.checkNode(u); err != nil {
		return 0, err
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.directed {
		return len(g.in[u]), nil
	}

	return len(g.out[u]), nil
}

// Degree is an alias for OutDegree.
func (g *Graph) Degree(u int) (int, error) {
	return g.OutDegree(u)
}

// Edges returns a copy of the full arc→weight mapping. An undirected graph
// contributes both orientations of each logical edge, with equal weights.
// Complexity: O(E). Concurrency: read lock.
func (g *Graph) Edges() map[Edge]float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make(map[Edge]float64, len(g.weights))
	for k, w := range g.weights {
		out[Edge{U: k.u, V: k.v}] = w
	}

	return out
}

// AdjacencyList returns the out-adjacency of every node as sorted copies,
// indexed by node id.
// Complexity: O(V + E log E). Concurrency: read lock.
func (g *Graph) AdjacencyList() [][]int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([][]int, len(g.out))
	for u := range g.out {
		out[u] = sortedSet(g.out[u])
	}

	return out
}

// Clone returns a deep copy: directedness, adjacency, and weights. Mutating
// either graph afterwards leaves the other untouched.
// Complexity: O(V + E). Concurrency: read lock on the source.
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph{
		directed: g.directed,
		numEdges: g.numEdges,
		out:      make([]map[int]struct{}, len(g.out)),
		weights:  make(map[edgeKey]float64, len(g.weights)),
	}
	for u, set := range g.out {
		clone.out[u] = make(map[int]struct{}, len(set))
		for v := range set {
			clone.out[u][v] = struct{}{}
		}
	}
	if g.directed {
		clone.in = make([]map[int]struct{}, len(g.in))
		for v, set := range g.in {
			clone.in[v] = make(map[int]struct{}, len(set))
			for u := range set {
				clone.in[v][u] = struct{}{}
			}
		}
	}
	for k, w := range g.weights {
		clone.weights[k] = w
	}

	return clone
}

// String reports directedness, node count, and logical edge count.
func (g *Graph) String() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	kind := "Undirected"
	if g.directed {
		kind = "Directed"
	}

	return fmt.Sprintf("%s graph with %d nodes and %d edges", kind, len(g.out), g.numEdges)
}

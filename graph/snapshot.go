// File: snapshot.go
// Role: Immutable CSR view of a Graph for lock-free concurrent reads.
// Determinism: per-row targets are sorted ascending, so walks over a Snapshot
// visit arcs in the same order on every run, independent of map iteration.
package graph

import "sort"

// Snapshot is a compact, immutable view of a Graph's out-adjacency in
// compressed-sparse-row form: the arcs of node u are
// targets[offsets[u]:offsets[u+1]] with aligned weights.
//
// A Snapshot shares nothing mutable with its source Graph: mutating the graph
// after the snapshot was taken does not affect it, and any number of
// goroutines may read one Snapshot concurrently without locking.
type Snapshot struct {
	directed bool
	offsets  []int
	targets  []int
	weights  []float64
}

// Snapshot captures the current out-adjacency and weights.
// Complexity: O(V + E log E). Concurrency: read lock on the source; the
// result needs no locking.
func (g *Graph) Snapshot() *Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := len(g.out)
	s := &Snapshot{
		directed: g.directed,
		offsets:  make([]int, n+1),
	}
	arcs := 0
	for u := range g.out {
		arcs += len(g.out[u])
	}
	s.targets = make([]int, 0, arcs)
	s.weights = make([]float64, 0, arcs)

	row := make([]int, 0, 16)
	for u := range g.out {
		s.offsets[u] = len(s.targets)
		row = row[:0]
		for v := range g.out[u] {
			row = append(row, v)
		}
		sort.Ints(row)
		for _, v := range row {
			s.targets = append(s.targets, v)
			s.weights = append(s.weights, g.weights[edgeKey{u, v}])
		}
	}
	s.offsets[n] = len(s.targets)

	return s
}

// NumNodes returns the node-universe size of the snapshot.
func (s *Snapshot) NumNodes() int {
	return len(s.offsets) - 1
}

// Directed reports the directedness of the source graph.
func (s *Snapshot) Directed() bool {
	return s.directed
}

// NumArcs returns the number of stored arcs (mirrored arcs count twice).
func (s *Snapshot) NumArcs() int {
	return len(s.targets)
}

// Arcs returns the out-arcs of u as aligned target and weight slices, sorted
// by target. The slices alias the snapshot's backing arrays and must not be
// modified. u must be in [0, NumNodes); callers validate ids at construction.
// Complexity: O(1).
func (s *Snapshot) Arcs(u int) (targets []int, weights []float64) {
	lo, hi := s.offsets[u], s.offsets[u+1]

	return s.targets[lo:hi], s.weights[lo:hi]
}

// File: matrix.go
// Role: Export adapters: dense adjacency matrix (gonum/mat) and gonum simple
// graphs. Inspection and interop only; the diffusion engines always read the
// sparse Snapshot.
package graph

import (
	"math"

	gonumgraph "gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/mat"
)

// AdjacencyMatrix materializes the weights as a dense NumNodes×NumNodes
// matrix: entry (u, v) is the weight of arc u→v, 0 where no arc exists.
// An undirected graph yields a symmetric matrix. An empty graph yields an
// empty matrix.
// Complexity: O(V² + E). Concurrency: read lock.
func (g *Graph) AdjacencyMatrix() *mat.Dense {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := len(g.out)
	if n == 0 {
		return &mat.Dense{}
	}
	m := mat.NewDense(n, n, nil)
	for k, w := range g.weights {
		m.Set(k.u, k.v, w)
	}

	return m
}

// ToGonum exports the graph as a gonum simple weighted graph:
// *simple.WeightedDirectedGraph when directed, *simple.WeightedUndirectedGraph
// otherwise. Every node in [0, NumNodes) is added, so isolated nodes survive
// the round trip. Self-loops are omitted: gonum's simple graphs reject them.
// Complexity: O(V + E). Concurrency: read lock.
func (g *Graph) ToGonum() gonumgraph.Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if g.directed {
		dst := simple.NewWeightedDirectedGraph(0, math.Inf(1))
		for u := 0; u < len(g.out); u++ {
			dst.AddNode(simple.Node(u))
		}
		for k, w := range g.weights {
			if k.u == k.v {
				continue
			}
			dst.SetWeightedEdge(simple.WeightedEdge{
				F: simple.Node(k.u),
				T: simple.Node(k.v),
				W: w,
			})
		}

		return dst
	}

	dst := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	for u := 0; u < len(g.out); u++ {
		dst.AddNode(simple.Node(u))
	}
	for k, w := range g.weights {
		// Mirrored arcs describe one logical edge; emit each pair once.
		if k.u >= k.v {
			continue
		}
		dst.SetWeightedEdge(simple.WeightedEdge{
			F: simple.Node(k.u),
			T: simple.Node(k.v),
			W: w,
		})
	}

	return dst
}

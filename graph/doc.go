// Package graph provides the weighted graph container that the diffusion
// models read: dense integer node ids in [0, NumNodes), out- and in-adjacency,
// and a per-arc weight table.
//
// Semantics:
//
//   - Nodes are implicit: a graph over n nodes addresses them as 0..n-1.
//     Every id passed to the API is validated against that range;
//     out-of-range (including negative) ids return ErrNodeOutOfRange.
//   - An undirected graph stores each logical edge as two mirrored arcs with
//     a shared weight, but NumEdges counts logical edges, not arcs.
//   - Adding an edge that already exists updates its weight in place and does
//     not change NumEdges or adjacency. Self-loops are permitted.
//   - Neighbor queries return sorted defensive copies; internal adjacency is
//     never handed out.
//
// All mutating and querying methods are safe for concurrent use (a single
// RWMutex guards adjacency and weights). Diffusion engines do not read the
// live maps: they take an immutable Snapshot, whose sorted arc order also
// makes randomized simulations reproducible run to run.
//
// Exports for inspection and interop: AdjacencyMatrix (gonum *mat.Dense),
// ToGonum (gonum simple graphs), AdjacencyList, Edges.
package graph

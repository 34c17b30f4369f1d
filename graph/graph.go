// File: graph.go
// Role: Edge lifecycle: AddEdge/AddEdges/UpdateEdgeWeight/RemoveEdge/RemoveEdges.
// Concurrency: mutations take the write lock; id validation happens first.
package graph

import "fmt"

// checkNode validates a single node id against the fixed node universe.
// Callers hold no particular lock; the universe size is immutable.
func (g *Graph) checkNode(id int) error {
	if id < 0 || id >= len(g.out) {
		return fmt.Errorf("%w: %d (nodes: %d)", ErrNodeOutOfRange, id, len(g.out))
	}

	return nil
}

// AddEdge inserts the arc u→v with weight w, or updates the weight in place
// when the arc already exists. An update changes neither NumEdges nor
// adjacency. On an undirected graph the mirror arc v→u is kept in sync.
// Self-loops are permitted and stored once.
//
// Returns ErrNodeOutOfRange for an invalid endpoint.
// Complexity: O(1) amortized. Concurrency: write lock.
func (g *Graph) AddEdge(u, v int, w float64) error {
	if err := g.checkNode(u); err != nil {
		return err
	}
	if err := g.checkNode(v); err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	return g.addEdgeLocked(u, v, w)
}

// addEdgeLocked is AddEdge after validation, with g.mu held.
func (g *Graph) addEdgeLocked(u, v int, w float64) error {
	key := edgeKey{u, v}
	if _, ok := g.weights[key]; ok {
		// Existing edge: weight update only.
		g.weights[key] = w
		if !g.directed {
			g.weights[edgeKey{v, u}] = w
		}

		return nil
	}

	g.out[u][v] = struct{}{}
	g.weights[key] = w
	g.numEdges++

	if g.directed {
		g.in[v][u] = struct{}{}
	} else if u != v {
		g.out[v][u] = struct{}{}
		g.weights[edgeKey{v, u}] = w
	}

	return nil
}

// AddEdges is the bulk form of AddEdge. weights may be nil or empty, in which
// case every edge receives DefaultEdgeWeight; otherwise its length must match
// edges (ErrWeightMismatch). All endpoints are validated before anything is
// applied, so a failed call leaves the graph unchanged.
// Complexity: O(len(edges)). Concurrency: one write lock for the whole batch.
func (g *Graph) AddEdges(edges []Edge, weights []float64) error {
	if len(weights) > 0 && len(weights) != len(edges) {
		return fmt.Errorf("%w: %d edges, %d weights", ErrWeightMismatch, len(edges), len(weights))
	}
	for _, e := range edges {
		if err := g.checkNode(e.U); err != nil {
			return err
		}
		if err := g.checkNode(e.V); err != nil {
			return err
		}
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	for i, e := range edges {
		w := DefaultEdgeWeight
		if len(weights) > 0 {
			w = weights[i]
		}
		if err := g.addEdgeLocked(e.U, e.V, w); err != nil {
			return err
		}
	}

	return nil
}

// UpdateEdgeWeight sets the weight of the existing arc u→v (and its mirror on
// an undirected graph). Unlike AddEdge it never creates the edge:
// a missing arc yields ErrEdgeNotFound.
// Complexity: O(1). Concurrency: write lock.
func (g *Graph) UpdateEdgeWeight(u, v int, w float64) error {
	if err := g.checkNode(u); err != nil {
		return err
	}
	if err := g.checkNode(v); err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	key := edgeKey{u, v}
	if _, ok := g.weights[key]; !ok {
		return fmt.Errorf("edge (%d, %d): %w", u, v, ErrEdgeNotFound)
	}
	g.weights[key] = w
	if !g.directed {
		g.weights[edgeKey{v, u}] = w
	}

	return nil
}

// RemoveEdge deletes the arc u→v, its mirror on an undirected graph, and the
// associated weight entries, and decrements NumEdges.
// Returns ErrEdgeNotFound for an absent arc.
// Complexity: O(1). Concurrency: write lock.
func (g *Graph) RemoveEdge(u, v int) error {
	if err := g.checkNode(u); err != nil {
		return err
	}
	if err := g.checkNode(v); err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	return g.removeEdgeLocked(u, v)
}

// removeEdgeLocked is RemoveEdge after validation, with g.mu held.
func (g *Graph) removeEdgeLocked(u, v int) error {
	key := edgeKey{u, v}
	if _, ok := g.weights[key]; !ok {
		return fmt.Errorf("edge (%d, %d): %w", u, v, ErrEdgeNotFound)
	}

	delete(g.out[u], v)
	if g.directed {
		delete(g.in[v], u)
	} else {
		delete(g.out[v], u)
		delete(g.weights, edgeKey{v, u})
	}
	delete(g.weights, key)
	g.numEdges--

	return nil
}

// RemoveEdges removes each listed edge in order, stopping at the first absent
// one with ErrEdgeNotFound. There is no rollback: removals before the failure
// point stay applied.
// Complexity: O(len(edges)). Concurrency: one write lock for the whole batch.
func (g *Graph) RemoveEdges(edges []Edge) error {
	for _, e := range edges {
		if err := g.checkNode(e.U); err != nil {
			return err
		}
		if err := g.checkNode(e.V); err != nil {
			return err
		}
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	for _, e := range edges {
		if err := g.removeEdgeLocked(e.U, e.V); err != nil {
			return err
		}
	}

	return nil
}

// File: weights.go
// Role: Edge-weight schemes used to parameterize diffusion models, plus the
// epidemic-threshold estimate derived from the degree sequence.
// Determinism: randomized schemes walk edges in sorted key order under a
// caller-provided seed, so reassignment is reproducible.
package graph

import (
	"math/rand"
	"sort"
)

// TrivalencyWeights are the candidate activation probabilities of the
// trivalency scheme; each arc draws one of them uniformly.
var TrivalencyWeights = []float64{0.001, 0.01, 0.1}

// sortedKeys returns the weight-table keys ordered by (u, v).
// Callers hold g.mu.
func (g *Graph) sortedKeys() []edgeKey {
	keys := make([]edgeKey, 0, len(g.weights))
	for k := range g.weights {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].u != keys[j].u {
			return keys[i].u < keys[j].u
		}

		return keys[i].v < keys[j].v
	})

	return keys
}

// AssignConstantWeights sets every edge weight to w.
// Complexity: O(E). Concurrency: write lock.
func (g *Graph) AssignConstantWeights(w float64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for k := range g.weights {
		g.weights[k] = w
	}
}

// AssignTrivalencyWeights gives every edge one of TrivalencyWeights, drawn
// uniformly from a generator seeded with seed. On an undirected graph the two
// mirrored arcs of a logical edge share one draw. Reassignment with the same
// seed reproduces the same weights.
// Complexity: O(E log E). Concurrency: write lock.
func (g *Graph) AssignTrivalencyWeights(seed int64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	rng := rand.New(rand.NewSource(seed))
	for _, k := range g.sortedKeys() {
		if !g.directed && k.u > k.v {
			continue // mirror; weight set with the (v, u) orientation
		}
		w := TrivalencyWeights[rng.Intn(len(TrivalencyWeights))]
		g.weights[k] = w
		if !g.directed && k.u != k.v {
			g.weights[edgeKey{k.v, k.u}] = w
		}
	}
}

// AssignWeightedCascadeWeights sets the weight of each arc u→v to
// 1/in-degree(v), the weighted-cascade parameterization of the independent
// cascade model. On an undirected graph the logical edge {u, v} with u < v
// gets 1/degree(v), shared by both mirrored arcs.
// Complexity: O(E log E). Concurrency: write lock.
func (g *Graph) AssignWeightedCascadeWeights() {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, k := range g.sortedKeys() {
		if g.directed {
			g.weights[k] = 1 / float64(len(g.in[k.v]))
			continue
		}
		if k.u > k.v {
			continue
		}
		w := 1 / float64(len(g.out[k.v]))
		g.weights[k] = w
		if k.u != k.v {
			g.weights[edgeKey{k.v, k.u}] = w
		}
	}
}

// InfectionThreshold estimates the epidemic threshold of the graph from its
// degree sequence as k/(k2-k), where k sums node degrees and k2 sums their
// squares. Directed graphs use total degree (in+out). Graphs whose degree
// moments give a non-positive denominator (every node of degree ≤ 1) report
// a threshold of 1.
// Complexity: O(V). Concurrency: read lock.
func (g *Graph) InfectionThreshold() float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var k, k2 float64
	for u := range g.out {
		d := len(g.out[u])
		if g.directed {
			d += len(g.in[u])
		}
		k += float64(d)
		k2 += float64(d) * float64(d)
	}
	if k2 <= k {
		return 1
	}

	return k / (k2 - k)
}

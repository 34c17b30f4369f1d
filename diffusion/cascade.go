// File: cascade.go
// Role: Independent Cascade model: construction, seed replacement, and the
// single-trial activation rule.
package diffusion

import (
	"math/rand"

	"github.com/mirovek/netspread/graph"
)

// IndependentCascade estimates spread under the independent cascade rule:
// when a node activates, it gets exactly one chance to activate each of its
// inactive out-neighbors, succeeding with probability equal to the arc
// weight. Activation is permanent within a trial.
//
// The model simulates against a snapshot taken at construction; mutating the
// source graph afterwards does not affect it.
type IndependentCascade struct {
	snap  *graph.Snapshot
	seeds []int
}

// NewIndependentCascade builds an IC model over g with the given seed set.
// Seeds are validated against the node range, deduplicated, and sorted.
// Returns ErrGraphNil or ErrSeedOutOfRange.
func NewIndependentCascade(g *graph.Graph, seeds []int) (*IndependentCascade, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	snap := g.Snapshot()
	norm, err := normalizeSeeds(seeds, snap.NumNodes())
	if err != nil {
		return nil, err
	}

	return &IndependentCascade{snap: snap, seeds: norm}, nil
}

// SetSeeds replaces the seed set without retaking the graph snapshot.
// Returns ErrSeedOutOfRange and leaves the current seeds untouched on failure.
func (m *IndependentCascade) SetSeeds(seeds []int) error {
	norm, err := normalizeSeeds(seeds, m.snap.NumNodes())
	if err != nil {
		return err
	}
	m.seeds = norm

	return nil
}

// Spread returns the mean number of activated nodes over rounds Monte Carlo
// trials. See WithSeed, WithParallel, and WithWorkers; rounds <= 0 yields 0.
// The call blocks until every trial has finished.
func (m *IndependentCascade) Spread(rounds int, opts ...RunOption) (float64, error) {
	return monteCarlo(rounds, m.runTrial, opts)
}

// runTrial executes one cascade to its fixed point and returns the number of
// active nodes. Each arc is attempted at most once: exactly when its source
// is popped from the frontier, and a node enters the frontier at most once.
// Weights outside [0,1] are not rejected; they saturate to never/always fire.
func (m *IndependentCascade) runTrial(rng *rand.Rand) int {
	n := m.snap.NumNodes()
	activated := make([]bool, n)
	frontier := make([]int, 0, n)
	for _, s := range m.seeds {
		activated[s] = true
		frontier = append(frontier, s)
	}

	for front := 0; front < len(frontier); front++ {
		u := frontier[front]
		targets, weights := m.snap.Arcs(u)
		for i, v := range targets {
			if !activated[v] && rng.Float64() < weights[i] {
				activated[v] = true
				frontier = append(frontier, v)
			}
		}
	}

	return len(frontier)
}

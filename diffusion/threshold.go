// File: threshold.go
// Role: Linear Threshold model: threshold-range validation, construction, and
// the single-trial accumulation rule.
package diffusion

import (
	"fmt"
	"math/rand"

	"github.com/mirovek/netspread/graph"
)

// Default threshold range: thresholds are drawn uniformly from [0, 1).
const (
	DefaultThresholdLow  = 0.0
	DefaultThresholdHigh = 1.0
)

// ThresholdOption configures a LinearThreshold at construction time.
type ThresholdOption func(*LinearThreshold)

// WithThresholdRange narrows the per-node threshold draw to [low, high).
// Both bounds must lie in [0,1] with low <= high; violations fail
// construction with ErrThresholdRange or ErrThresholdOrder.
func WithThresholdRange(low, high float64) ThresholdOption {
	return func(m *LinearThreshold) {
		m.thetaLow = low
		m.thetaHigh = high
	}
}

// LinearThreshold estimates spread under the linear threshold rule: every
// node draws a personal threshold per trial, and activates once the summed
// weight of arcs from activated in-neighbors reaches it.
//
// The model simulates against a snapshot taken at construction; mutating the
// source graph afterwards does not affect it.
type LinearThreshold struct {
	snap      *graph.Snapshot
	seeds     []int
	thetaLow  float64
	thetaHigh float64
}

// NewLinearThreshold builds an LT model over g with the given seed set.
// Seeds are validated, deduplicated, and sorted. Returns ErrGraphNil,
// ErrSeedOutOfRange, ErrThresholdRange, or ErrThresholdOrder.
func NewLinearThreshold(g *graph.Graph, seeds []int, opts ...ThresholdOption) (*LinearThreshold, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	m := &LinearThreshold{
		snap:      g.Snapshot(),
		thetaLow:  DefaultThresholdLow,
		thetaHigh: DefaultThresholdHigh,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.thetaLow < 0 || m.thetaLow > 1 {
		return nil, fmt.Errorf("%w: low %g", ErrThresholdRange, m.thetaLow)
	}
	if m.thetaHigh < 0 || m.thetaHigh > 1 {
		return nil, fmt.Errorf("%w: high %g", ErrThresholdRange, m.thetaHigh)
	}
	if m.thetaLow > m.thetaHigh {
		return nil, fmt.Errorf("%w: low %g > high %g", ErrThresholdOrder, m.thetaLow, m.thetaHigh)
	}

	norm, err := normalizeSeeds(seeds, m.snap.NumNodes())
	if err != nil {
		return nil, err
	}
	m.seeds = norm

	return m, nil
}

// SetSeeds replaces the seed set without retaking the graph snapshot.
// Returns ErrSeedOutOfRange and leaves the current seeds untouched on failure.
func (m *LinearThreshold) SetSeeds(seeds []int) error {
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
func (m *LinearThreshold) Spread(rounds int, opts ...RunOption) (float64, error) {
	return monteCarlo(rounds, m.runTrial, opts)
}

// runTrial draws every node's threshold up front, then propagates influence
// from the seed frontier to a fixed point and returns the active count.
// A node's accumulated influence only grows and is only consulted while the
// node is inactive.
func (m *LinearThreshold) runTrial(rng *rand.Rand) int {
	n := m.snap.NumNodes()
	span := m.thetaHigh - m.thetaLow

	// Thresholds are drawn for all nodes, seeds included, before the walk:
	// the trial's draw sequence depends only on the sub-seed, not on topology.
	thresholds := make([]float64, n)
	for i := range thresholds {
		thresholds[i] = m.thetaLow + rng.Float64()*span
	}

	activated := make([]bool, n)
	influence := make([]float64, n)
	frontier := make([]int, 0, n)
	for _, s := range m.seeds {
		activated[s] = true
		frontier = append(frontier, s)
	}

	for front := 0; front < len(frontier); front++ {
		u := frontier[front]
		targets, weights := m.snap.Arcs(u)
		for i, v := range targets {
			if activated[v] {
				continue
			}
			influence[v] += weights[i]
			if influence[v] >= thresholds[v] {
				activated[v] = true
				frontier = append(frontier, v)
			}
		}
	}

	return len(frontier)
}

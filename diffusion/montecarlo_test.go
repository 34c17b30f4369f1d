// Package diffusion_test verifies the Monte Carlo driver's degenerate inputs,
// option handling, and scheduling-independent determinism.
package diffusion_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mirovek/netspread/diffusion"
	"github.com/mirovek/netspread/graph"
)

// ladder builds a directed graph where spread outcomes are genuinely random:
// two parallel chains cross-linked with mid-range probabilities.
func ladder(t *testing.T) *graph.Graph {
	t.Helper()
	edges := make([]graph.Edge, 0, 16)
	weights := make([]float64, 0, 16)
	for i := 0; i < 6; i += 2 {
		edges = append(edges,
			graph.Edge{U: i, V: i + 2}, graph.Edge{U: i + 1, V: i + 3},
			graph.Edge{U: i, V: i + 1}, graph.Edge{U: i + 1, V: i})
		weights = append(weights, 0.6, 0.5, 0.3, 0.7)
	}
	g, err := graph.New(8, edges, graph.WithWeights(weights))
	require.NoError(t, err)

	return g
}

func TestSpread_NonPositiveRounds(t *testing.T) {
	m, err := diffusion.NewIndependentCascade(ladder(t), []int{0})
	require.NoError(t, err)

	for _, rounds := range []int{0, -1, -100} {
		got, err := m.Spread(rounds)
		require.NoError(t, err)
		require.Equal(t, 0.0, got)
	}
}

func TestSpread_InvalidWorkerCount(t *testing.T) {
	m, err := diffusion.NewIndependentCascade(ladder(t), []int{0})
	require.NoError(t, err)

	_, err = m.Spread(10, diffusion.WithParallel(), diffusion.WithWorkers(0))
	require.ErrorIs(t, err, diffusion.ErrOptionViolation)
	_, err = m.Spread(10, diffusion.WithWorkers(-3))
	require.ErrorIs(t, err, diffusion.ErrOptionViolation)
}

// TestSpread_SchedulingIndependence is the core reproducibility guarantee:
// for a fixed (rounds, seed), the sequential result and parallel results at
// several pool sizes are bit-identical.
func TestSpread_SchedulingIndependence(t *testing.T) {
	g := ladder(t)
	const rounds = 500

	models := map[string]interface {
		Spread(int, ...diffusion.RunOption) (float64, error)
	}{}
	ic, err := diffusion.NewIndependentCascade(g, []int{0, 1})
	require.NoError(t, err)
	models["independent cascade"] = ic
	lt, err := diffusion.NewLinearThreshold(g, []int{0, 1})
	require.NoError(t, err)
	models["linear threshold"] = lt
	si, err := diffusion.NewSusceptibleInfected(g, []int{0}, diffusion.WithBeta(0.4), diffusion.WithMaxSteps(5))
	require.NoError(t, err)
	models["susceptible infected"] = si
	sir, err := diffusion.NewSusceptibleInfectedRecovered(g, []int{0}, 0.3, diffusion.WithBeta(0.4))
	require.NoError(t, err)
	models["susceptible infected recovered"] = sir

	for name, m := range models {
		t.Run(name, func(t *testing.T) {
			sequential, err := m.Spread(rounds, diffusion.WithSeed(42))
			require.NoError(t, err)

			for _, workers := range []int{1, 2, 7} {
				parallel, err := m.Spread(rounds,
					diffusion.WithSeed(42), diffusion.WithParallel(), diffusion.WithWorkers(workers))
				require.NoError(t, err)
				require.Equal(t, sequential, parallel, "workers=%d", workers)
			}

			// More workers than rounds is legal; idle workers contribute zero.
			parallel, err := m.Spread(3,
				diffusion.WithSeed(42), diffusion.WithParallel(), diffusion.WithWorkers(16))
			require.NoError(t, err)
			small, err := m.Spread(3, diffusion.WithSeed(42))
			require.NoError(t, err)
			require.Equal(t, small, parallel)
		})
	}
}

// TestSpread_RunToRunDeterminism: identical inputs give identical floats on
// repeated invocations — trial order follows the snapshot, not map iteration.
func TestSpread_RunToRunDeterminism(t *testing.T) {
	m, err := diffusion.NewIndependentCascade(ladder(t), []int{0})
	require.NoError(t, err)

	first, err := m.Spread(200, diffusion.WithSeed(9))
	require.NoError(t, err)
	second, err := m.Spread(200, diffusion.WithSeed(9))
	require.NoError(t, err)
	require.Equal(t, first, second)
}

package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mirovek/netspread/graph"
)

func TestAssignConstantWeights(t *testing.T) {
	g, err := graph.New(3, []graph.Edge{{U: 0, V: 1}, {U: 1, V: 2}},
		graph.WithWeights([]float64{0.9, 0.1}))
	require.NoError(t, err)

	g.AssignConstantWeights(0.05)
	for _, w := range g.Edges() {
		require.Equal(t, 0.05, w)
	}
}

func TestAssignTrivalencyWeights(t *testing.T) {
	edges := []graph.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}, {U: 3, V: 0}}

	t.Run("draws from the candidate set, reproducibly", func(t *testing.T) {
		g, err := graph.New(4, edges)
		require.NoError(t, err)
		g.AssignTrivalencyWeights(7)
		first := g.Edges()
		for arc, w := range first {
			require.Contains(t, graph.TrivalencyWeights, w, "arc %v", arc)
		}

		// Same seed, same draws.
		g.AssignTrivalencyWeights(7)
		require.Equal(t, first, g.Edges())
	})

	t.Run("undirected mirrors share one draw", func(t *testing.T) {
		g, err := graph.New(4, edges, graph.WithUndirected())
		require.NoError(t, err)
		g.AssignTrivalencyWeights(3)
		for _, e := range edges {
			fw, _ := g.Weight(e.U, e.V)
			bw, _ := g.Weight(e.V, e.U)
			require.Equal(t, fw, bw)
		}
	})
}

func TestAssignWeightedCascadeWeights(t *testing.T) {
	t.Run("directed: arc weight is inverse in-degree", func(t *testing.T) {
		g, err := graph.New(3, []graph.Edge{{U: 0, V: 2}, {U: 1, V: 2}, {U: 2, V: 0}})
		require.NoError(t, err)
		g.AssignWeightedCascadeWeights()

		w, _ := g.Weight(0, 2) // node 2 has in-degree 2
		require.Equal(t, 0.5, w)
		w, _ = g.Weight(1, 2)
		require.Equal(t, 0.5, w)
		w, _ = g.Weight(2, 0) // node 0 has in-degree 1
		require.Equal(t, 1.0, w)
	})

	t.Run("undirected: logical edge weight is inverse degree of the higher endpoint", func(t *testing.T) {
		g, err := graph.New(3, []graph.Edge{{U: 0, V: 1}, {U: 1, V: 2}}, graph.WithUndirected())
		require.NoError(t, err)
		g.AssignWeightedCascadeWeights()

		w, _ := g.Weight(0, 1) // degree(1) == 2
		require.Equal(t, 0.5, w)
		bw, _ := g.Weight(1, 0)
		require.Equal(t, w, bw)
		w, _ = g.Weight(1, 2) // degree(2) == 1
		require.Equal(t, 1.0, w)
	})
}

func TestInfectionThreshold(t *testing.T) {
	// Undirected path 0-1-2: degrees 1, 2, 1 ⇒ k = 4, k2 = 6 ⇒ 4/(6-4) = 2.
	g, err := graph.New(3, []graph.Edge{{U: 0, V: 1}, {U: 1, V: 2}}, graph.WithUndirected())
	require.NoError(t, err)
	require.InDelta(t, 2.0, g.InfectionThreshold(), 1e-12)

	// Degenerate degree sequence falls back to 1.
	single, err := graph.New(2, []graph.Edge{{U: 0, V: 1}}, graph.WithUndirected())
	require.NoError(t, err)
	require.Equal(t, 1.0, single.InfectionThreshold())
}

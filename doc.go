// Package netspread estimates the expected spread of diffusion processes
// on weighted graphs via deterministic Monte Carlo simulation.
//
// 🚀 What is netspread?
//
//	A small, thread-safe library for influence-spread evaluation:
//		• graph:     weighted directed/undirected graph over dense integer ids,
//		             safe concurrent mutation under locks, dense matrix and
//		             gonum exports, and edge-weight schemes (constant,
//		             trivalency, weighted cascade)
//		• diffusion: Independent Cascade and Linear Threshold spread models,
//		             SI/SIR epidemic models, and a shared Monte Carlo driver
//		             whose results are bit-identical whether trials run on one
//		             goroutine or many
//
// ✨ Why choose netspread?
//
//   - Reproducible – every trial is seeded from a precomputed sub-seed, so a
//     fixed (rounds, seed) pair yields the same estimate regardless of the
//     worker count
//   - Isolated – models simulate against an immutable snapshot; mutating the
//     source graph never perturbs a constructed model
//   - Minimal API – build a graph, pick seeds, call Spread
//
// Quick example:
//
//	g, _ := graph.New(3, []graph.Edge{{U: 0, V: 1}, {U: 1, V: 2}})
//	m, _ := diffusion.NewIndependentCascade(g, []int{0})
//	avg, _ := m.Spread(10_000, diffusion.WithSeed(42), diffusion.WithParallel())
//
// Subpackages:
//
//	graph/     — the Graph container, snapshots, matrix/gonum exports, weights
//	diffusion/ — IC, LT, SI, SIR models and the Monte Carlo driver
package netspread

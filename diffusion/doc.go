// Package diffusion simulates stochastic spreading processes on a
// graph.Graph and estimates their expected reach by Monte Carlo averaging.
//
// Models:
//
//   - IndependentCascade: each newly activated node gets one independent
//     weighted chance to activate each inactive out-neighbor.
//   - LinearThreshold: a node activates once the summed weight of its
//     activated in-neighbors reaches a personal random threshold drawn from
//     a configurable range.
//   - SusceptibleInfected: synchronous-round epidemic where every infected
//     node tries each susceptible neighbor with a fixed rate; infection is
//     permanent.
//   - SusceptibleInfectedRecovered: as SI, with a per-round recovery rate;
//     the estimate counts recovered nodes.
//
// Every model exposes Spread(rounds, ...RunOption) → the mean activation
// count over that many randomized trials. The driver derives one sub-seed per
// trial from the master seed before any trial runs, so the estimate for a
// fixed (rounds, seed) pair is bit-identical whether trials execute
// sequentially or on a worker pool (WithParallel, WithWorkers).
//
// Models snapshot the graph at construction: later mutation of the source
// graph does not change a constructed model. SetSeeds replaces the seed set
// without rebuilding the snapshot. A Spread call is synchronous and
// uncancellable; it spawns workers for its own duration only.
package diffusion

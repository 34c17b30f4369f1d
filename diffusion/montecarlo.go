// File: montecarlo.go
// Role: The shared Monte Carlo driver: sub-seed derivation, sequential and
// worker-pool execution, sum-then-divide aggregation.
//
// Reproducibility contract: one master generator, seeded from the caller's
// seed, is advanced exactly rounds times before any trial runs, yielding one
// sub-seed per trial index. Trial i always runs on a fresh generator built
// from sub-seed i and touches no shared mutable state, so the aggregate —
// and therefore the returned average — does not depend on how trials are
// scheduled across goroutines.
package diffusion

import (
	"math/rand"
	"runtime"
	"sync"
)

// trialFunc runs one randomized trial on the given generator and returns the
// trial's activation count. Implementations must be pure apart from rng.
type trialFunc func(rng *rand.Rand) int

// monteCarlo estimates the expected activation count as the mean of rounds
// independent trials. rounds <= 0 yields 0 without running anything.
func monteCarlo(rounds int, trial trialFunc, opts []RunOption) (float64, error) {
	o := defaultRunOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return 0, o.err
	}
	if rounds <= 0 {
		return 0, nil
	}

	// Derive every trial's sub-seed up front; this list is the sole coupling
	// between the master seed and trial outcomes.
	subSeeds := make([]int64, rounds)
	master := rand.New(rand.NewSource(o.seed))
	for i := range subSeeds {
		subSeeds[i] = master.Int63()
	}

	if !o.parallel {
		var sum float64
		for i := 0; i < rounds; i++ {
			sum += float64(trial(rand.New(rand.NewSource(subSeeds[i]))))
		}

		return sum / float64(rounds), nil
	}

	workers := o.workers
	if workers < 1 {
		workers = runtime.NumCPU()
		if workers < 1 {
			workers = 1
		}
	}

	// Static round-robin partition: worker t owns trial indices t, t+W, ...
	// Each worker sums into its own slot; slots are combined after the join.
	partial := make([]float64, workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	for t := 0; t < workers; t++ {
		go func(t int) {
			defer wg.Done()
			var sum float64
			for i := t; i < rounds; i += workers {
				sum += float64(trial(rand.New(rand.NewSource(subSeeds[i]))))
			}
			partial[t] = sum
		}(t)
	}
	wg.Wait()

	var total float64
	for _, s := range partial {
		total += s
	}

	return total / float64(rounds), nil
}

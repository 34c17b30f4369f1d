// Package diffusion: sentinel errors, run options, and seed-set handling
// shared by all models.
package diffusion

import (
	"errors"
	"fmt"
	"sort"
)

// Sentinel errors for model construction and Spread options.
var (
	// ErrGraphNil is returned when a nil graph pointer is passed to a
	// model constructor.
	ErrGraphNil = errors.New("diffusion: graph is nil")

	// ErrSeedOutOfRange indicates a seed node id outside [0, NumNodes).
	ErrSeedOutOfRange = errors.New("diffusion: seed node out of range")

	// ErrThresholdRange indicates a Linear Threshold bound outside [0,1].
	ErrThresholdRange = errors.New("diffusion: threshold bound outside [0,1]")

	// ErrThresholdOrder indicates a lower threshold bound above the upper one.
	ErrThresholdOrder = errors.New("diffusion: lower threshold exceeds upper")

	// ErrRateRange indicates an infection or recovery rate outside [0,1].
	ErrRateRange = errors.New("diffusion: rate outside [0,1]")

	// ErrStepLimit indicates a non-positive synchronous-step limit.
	ErrStepLimit = errors.New("diffusion: step limit must be positive")

	// ErrOptionViolation is returned when an invalid RunOption is supplied.
	ErrOptionViolation = errors.New("diffusion: invalid option supplied")
)

// DefaultSeed is the master seed used when WithSeed is not supplied.
const DefaultSeed int64 = 0

// RunOption tunes a single Spread call. An invalid option is recorded and
// surfaced as ErrOptionViolation when Spread runs.
type RunOption func(*runOptions)

// runOptions holds per-call driver parameters.
type runOptions struct {
	seed     int64
	parallel bool
	workers  int // 0 = derive from runtime.NumCPU
	err      error
}

// defaultRunOptions returns the documented defaults: seed DefaultSeed,
// sequential execution, worker count derived from the host.
func defaultRunOptions() runOptions {
	return runOptions{seed: DefaultSeed}
}

// WithSeed sets the master seed from which every trial's sub-seed is derived.
func WithSeed(seed int64) RunOption {
	return func(o *runOptions) { o.seed = seed }
}

// WithParallel runs trials on a worker pool instead of the calling goroutine.
// The result is bit-identical to a sequential run with the same seed.
func WithParallel() RunOption {
	return func(o *runOptions) { o.parallel = true }
}

// WithWorkers pins the pool size for WithParallel. Without it the pool sizes
// itself to the host's logical CPUs (minimum 1). n < 1 is an option
// violation.
func WithWorkers(n int) RunOption {
	return func(o *runOptions) {
		if n < 1 {
			o.err = fmt.Errorf("%w: workers must be >= 1, got %d", ErrOptionViolation, n)
			return
		}
		o.workers = n
	}
}

// normalizeSeeds validates every seed against [0, numNodes), deduplicates,
// and returns an ascending copy. A sorted seed slice keeps trial frontiers
// deterministic regardless of the caller's ordering.
func normalizeSeeds(seeds []int, numNodes int) ([]int, error) {
	seen := make(map[int]struct{}, len(seeds))
	out := make([]int, 0, len(seeds))
	for _, s := range seeds {
		if s < 0 || s >= numNodes {
			return nil, fmt.Errorf("%w: %d (nodes: %d)", ErrSeedOutOfRange, s, numNodes)
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	sort.Ints(out)

	return out, nil
}

// File: epidemic.go
// Role: SI and SIR epidemic models over synchronous update rounds, sharing
// the Monte Carlo driver with the cascade models.
package diffusion

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/mirovek/netspread/graph"
)

// DefaultMaxSteps caps the synchronous rounds of a SusceptibleInfected trial
// when WithMaxSteps is not supplied. SI never goes extinct, so an explicit
// cap is what terminates trials on graphs the seeds cannot fully infect.
const DefaultMaxSteps = 100

// EpidemicOption configures SI and SIR models at construction time.
type EpidemicOption func(*epidemicConfig)

// epidemicConfig collects shared SI/SIR parameters before validation.
type epidemicConfig struct {
	beta     float64 // NaN = unset, default to the graph's infection threshold
	maxSteps int     // 0 = unset
	err      error
}

// WithBeta sets the per-contact infection probability. Must lie in [0,1];
// violations fail construction with ErrRateRange. Without it, models default
// to the graph's InfectionThreshold.
func WithBeta(beta float64) EpidemicOption {
	return func(c *epidemicConfig) {
		if beta < 0 || beta > 1 {
			c.err = fmt.Errorf("%w: beta %g", ErrRateRange, beta)
			return
		}
		c.beta = beta
	}
}

// WithMaxSteps caps the number of synchronous update rounds per trial.
// n must be >= 1 (ErrStepLimit). Defaults: DefaultMaxSteps for SI; unlimited
// for SIR, whose trials end on their own when no infected nodes remain.
func WithMaxSteps(n int) EpidemicOption {
	return func(c *epidemicConfig) {
		if n < 1 {
			c.err = fmt.Errorf("%w: got %d", ErrStepLimit, n)
			return
		}
		c.maxSteps = n
	}
}

// buildEpidemicConfig applies options and resolves the default beta from g.
func buildEpidemicConfig(g *graph.Graph, opts []EpidemicOption) (epidemicConfig, error) {
	cfg := epidemicConfig{beta: math.NaN()}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return cfg, cfg.err
	}
	if math.IsNaN(cfg.beta) {
		cfg.beta = g.InfectionThreshold()
	}

	return cfg, nil
}

// SusceptibleInfected estimates epidemic reach under the SI rule: nodes are
// susceptible or infected, infection is permanent, and every infected node
// tries each susceptible out-neighbor once per synchronous round with
// probability beta.
type SusceptibleInfected struct {
	snap     *graph.Snapshot
	seeds    []int
	beta     float64
	maxSteps int
}

// NewSusceptibleInfected builds an SI model over g with the given initially
// infected set. Beta defaults to g.InfectionThreshold(), the step cap to
// DefaultMaxSteps. Returns ErrGraphNil, ErrSeedOutOfRange, ErrRateRange, or
// ErrStepLimit.
func NewSusceptibleInfected(g *graph.Graph, seeds []int, opts ...EpidemicOption) (*SusceptibleInfected, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	cfg, err := buildEpidemicConfig(g, opts)
	if err != nil {
		return nil, err
	}
	if cfg.maxSteps == 0 {
		cfg.maxSteps = DefaultMaxSteps
	}
	snap := g.Snapshot()
	norm, err := normalizeSeeds(seeds, snap.NumNodes())
	if err != nil {
		return nil, err
	}

	return &SusceptibleInfected{
		snap:     snap,
		seeds:    norm,
		beta:     cfg.beta,
		maxSteps: cfg.maxSteps,
	}, nil
}

// SetSeeds replaces the initially infected set. Returns ErrSeedOutOfRange and
// leaves the current seeds untouched on failure.
func (m *SusceptibleInfected) SetSeeds(seeds []int) error {
	norm, err := normalizeSeeds(seeds, m.snap.NumNodes())
	if err != nil {
		return err
	}
	m.seeds = norm

	return nil
}

// Spread returns the mean number of infected nodes over rounds Monte Carlo
// trials. See WithSeed, WithParallel, and WithWorkers; rounds <= 0 yields 0.
func (m *SusceptibleInfected) Spread(rounds int, opts ...RunOption) (float64, error) {
	return monteCarlo(rounds, m.runTrial, opts)
}

// runTrial advances synchronous rounds until everyone is infected or the
// step cap is reached, and returns the infected count. Within a round every
// infected node draws once per susceptible out-neighbor, in ascending node
// and target order; infections land after the round completes.
func (m *SusceptibleInfected) runTrial(rng *rand.Rand) int {
	n := m.snap.NumNodes()
	infected := make([]bool, n)
	count := 0
	for _, s := range m.seeds {
		infected[s] = true
		count++
	}

	newly := make([]int, 0, n)
	marked := make([]bool, n)
	for step := 0; step < m.maxSteps && count < n; step++ {
		newly = newly[:0]
		for u := 0; u < n; u++ {
			if !infected[u] {
				continue
			}
			targets, _ := m.snap.Arcs(u)
			for _, v := range targets {
				// Draw per contact: a node facing several infected neighbors
				// faces several chances within one round.
				if !infected[v] && rng.Float64() < m.beta && !marked[v] {
					marked[v] = true
					newly = append(newly, v)
				}
			}
		}
		for _, v := range newly {
			infected[v] = true
			marked[v] = false
			count++
		}
	}

	return count
}

// SusceptibleInfectedRecovered estimates epidemic reach under the SIR rule:
// each round, every infected node first recovers with probability gamma
// (permanently immune), then the remaining infected nodes try each
// susceptible out-neighbor with probability beta. Trials end when no
// infected nodes remain; the result counts recovered nodes.
type SusceptibleInfectedRecovered struct {
	snap     *graph.Snapshot
	seeds    []int
	beta     float64
	gamma    float64
	maxSteps int // 0 = run until extinction
}

// NewSusceptibleInfectedRecovered builds an SIR model over g. gamma is the
// per-round recovery probability and must lie in [0,1]; beta defaults to
// g.InfectionThreshold(). Returns ErrGraphNil, ErrSeedOutOfRange,
// ErrRateRange, or ErrStepLimit.
//
// Without a step cap a trial runs until no infected nodes remain; with
// gamma == 0 that point is never reached on a graph with seeds, so supply
// WithMaxSteps in that case.
func NewSusceptibleInfectedRecovered(g *graph.Graph, seeds []int, gamma float64, opts ...EpidemicOption) (*SusceptibleInfectedRecovered, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if gamma < 0 || gamma > 1 {
		return nil, fmt.Errorf("%w: gamma %g", ErrRateRange, gamma)
	}
	cfg, err := buildEpidemicConfig(g, opts)
	if err != nil {
		return nil, err
	}
	snap := g.Snapshot()
	norm, err := normalizeSeeds(seeds, snap.NumNodes())
	if err != nil {
		return nil, err
	}

	return &SusceptibleInfectedRecovered{
		snap:     snap,
		seeds:    norm,
		beta:     cfg.beta,
		gamma:    gamma,
		maxSteps: cfg.maxSteps,
	}, nil
}

// SetSeeds replaces the initially infected set. Returns ErrSeedOutOfRange and
// leaves the current seeds untouched on failure.
func (m *SusceptibleInfectedRecovered) SetSeeds(seeds []int) error {
	norm, err := normalizeSeeds(seeds, m.snap.NumNodes())
	if err != nil {
		return err
	}
	m.seeds = norm

	return nil
}

// Spread returns the mean number of recovered nodes over rounds Monte Carlo
// trials. See WithSeed, WithParallel, and WithWorkers; rounds <= 0 yields 0.
func (m *SusceptibleInfectedRecovered) Spread(rounds int, opts ...RunOption) (float64, error) {
	return monteCarlo(rounds, m.runTrial, opts)
}

// runTrial advances rounds of recovery-then-infection until no infected
// nodes remain (or the optional step cap fires) and returns the recovered
// count. Draw order is ascending node and target order, recoveries first.
func (m *SusceptibleInfectedRecovered) runTrial(rng *rand.Rand) int {
	n := m.snap.NumNodes()
	infected := make([]bool, n)
	recovered := make([]bool, n)
	infectedCount, recoveredCount := 0, 0
	for _, s := range m.seeds {
		infected[s] = true
		infectedCount++
	}

	newly := make([]int, 0, n)
	marked := make([]bool, n)
	for step := 0; infectedCount > 0 && (m.maxSteps == 0 || step < m.maxSteps); step++ {
		// Recovery pass.
		for u := 0; u < n; u++ {
			if infected[u] && rng.Float64() < m.gamma {
				infected[u] = false
				recovered[u] = true
				infectedCount--
				recoveredCount++
			}
		}

		// Infection pass over the nodes still infected after recovery.
		newly = newly[:0]
		for u := 0; u < n; u++ {
			if !infected[u] {
				continue
			}
			targets, _ := m.snap.Arcs(u)
			for _, v := range targets {
				if !infected[v] && !recovered[v] && rng.Float64() < m.beta && !marked[v] {
					marked[v] = true
					newly = append(newly, v)
				}
			}
		}
		for _, v := range newly {
			infected[v] = true
			marked[v] = false
			infectedCount++
		}
	}

	return recoveredCount
}

package calmid

import "github.com/streamlearn/calmid/core"

// config collects every tunable of a CALMID instance. Defaults mirror
// the source's reference configuration; see individual With* docs for
// the bounds each option enforces.
type config struct {
	nModels         int
	theta           float64
	stepSize        float64
	epsilon         float64
	budget          float64
	sizeLab         int
	seed            int64
	detectorFactory func() core.DriftDetector
	singlePoisson   bool
}

func defaultConfig() config {
	return config{
		nModels:  10,
		theta:    0.1,
		stepSize: 0.1,
		epsilon:  0.01,
		budget:   0.1,
		sizeLab:  100,
		seed:     0,
	}
}

// Option configures a CALMID instance at construction. Each With*
// constructor validates and panics on a single meaningless input value
// (e.g. a non-positive size); cross-field preconditions such as
// budget > epsilon are checked by New, which returns
// ErrInvalidConfiguration rather than panicking, since they depend on
// the combination of options actually supplied.
type Option func(*config)

// WithNModels sets the ensemble size. Panics if n <= 0.
func WithNModels(n int) Option {
	if n <= 0 {
		panic("calmid: n_models must be > 0")
	}
	return func(c *config) { c.nModels = n }
}

// WithTheta sets the margin matrix's floor/initial threshold. Panics
// if theta <= 0.
func WithTheta(theta float64) Option {
	if theta <= 0 {
		panic("calmid: theta must be > 0")
	}
	return func(c *config) { c.theta = theta }
}

// WithStepSize sets the margin matrix's multiplicative adjustment
// rate. Panics if stepSize is not in (0, 1).
func WithStepSize(stepSize float64) Option {
	if stepSize <= 0 || stepSize >= 1 {
		panic("calmid: step_size must be in (0, 1)")
	}
	return func(c *config) { c.stepSize = stepSize }
}

// WithEpsilon sets the unconditional exploration probability. Panics
// if epsilon is outside [0, 1].
func WithEpsilon(epsilon float64) Option {
	if epsilon < 0 || epsilon > 1 {
		panic("calmid: epsilon must be in [0, 1]")
	}
	return func(c *config) { c.epsilon = epsilon }
}

// WithBudget sets the target label-query fraction. Panics if
// budget <= 0.
func WithBudget(budget float64) Option {
	if budget <= 0 {
		panic("calmid: budget must be > 0")
	}
	return func(c *config) { c.budget = budget }
}

// WithSizeLab sets the LabelWindow/ReplayBuffer recency horizon.
// Panics if sizeLab <= 0.
func WithSizeLab(sizeLab int) Option {
	if sizeLab <= 0 {
		panic("calmid: sizelab must be > 0")
	}
	return func(c *config) { c.sizeLab = sizeLab }
}

// WithSeed fixes the RNG seed; 0 maps to calmidrand's default seed
// rather than meaning "nondeterministic".
func WithSeed(seed int64) Option {
	return func(c *config) { c.seed = seed }
}

// WithDetectorFactory overrides the per-learner drift detector
// constructor (default: a fresh drift.DDM per learner). Panics if
// factory is nil.
func WithDetectorFactory(factory func() core.DriftDetector) Option {
	if factory == nil {
		panic("calmid: detector factory must not be nil")
	}
	return func(c *config) { c.detectorFactory = factory }
}

// WithSinglePoissonReplayMode collapses the reset procedure's double
// Poisson draw (SPEC §4.8) into a single draw. Off by default, which
// reproduces the source's compounding-variance behavior verbatim; on
// is for test harnesses that want the less noisy reset.
func WithSinglePoissonReplayMode() Option {
	return func(c *config) { c.singlePoisson = true }
}

package core

// Label identifies a class. The core treats labels as opaque comparable
// values and uses them as map keys; callers must only ever pass values
// that are valid map keys (strings, ints, and similar are the common
// case — the core never inspects a label's structure).
type Label = any

// Features is an opaque feature representation. The core never inspects
// it; it is threaded through unchanged to the configured BaseLearner.
type Features = any

// BaseLearner is the capability set an online classifier must expose to
// be used as a CALMID ensemble member. Implementations are owned
// exclusively by the façade; they must not retain references to x across
// calls (the façade may reuse or mutate caller-provided feature values).
type BaseLearner interface {
	// LearnOne presents one labeled instance for training.
	LearnOne(x Features, y Label)

	// PredictOne returns the single most likely label for x.
	PredictOne(x Features) Label

	// PredictProbaOne returns a per-label score. Scores need not be
	// normalized and may omit labels the learner has not yet observed.
	PredictProbaOne(x Features) map[Label]float64

	// Clone returns a pristine, untrained copy configured identically to
	// the receiver (same hyperparameters, no observed statistics).
	Clone() BaseLearner
}

// DriftDetector is the capability set a concept-drift detector must
// expose. It consumes a stream of correctness bits (true = the ensemble
// member classified the instance correctly) and maintains a running
// error estimate plus a drift flag.
type DriftDetector interface {
	// Update feeds one correctness bit and refreshes Estimation/DriftDetected.
	Update(correct bool)

	// DriftDetected reports whether the most recent Update triggered a
	// change signal.
	DriftDetected() bool

	// Estimation reports the detector's current error-rate estimate.
	Estimation() float64

	// Fresh returns a new detector of the same kind with cleared state.
	Fresh() DriftDetector
}

// RNG is the single seedable source of randomness threaded through the
// façade and every component it drives. All randomness in CALMID —
// uniform ζ draws, Poisson training counts, and the decayed-replay
// double-Poisson draw — flows through an RNG value.
type RNG interface {
	// Uniform draws a value in [0, 1).
	Uniform() float64

	// Poisson draws a non-negative integer from a Poisson distribution
	// with the given rate. Rates <= 0 deterministically yield 0.
	Poisson(lambda float64) int

	// Derive returns an independent RNG stream mixed from the receiver's
	// current state and key. Calling Derive advances the receiver (one
	// draw is consumed to decorrelate repeated derivations), so Derive
	// is itself part of the receiver's deterministic sequence.
	Derive(key uint64) RNG
}

// Package ensemble implements EnsembleTrainer: weighted online bagging
// over a fixed vector of base learners. For each learner it derives an
// independent RNG substream keyed by that learner's index, draws
// Poisson(w) from it, presents the instance that many times, then
// feeds the learner's correctness bit to that learner's drift
// detector, capturing the detector's pre-update estimate so
// DriftGovernor can compare it against the post-update one.
package ensemble

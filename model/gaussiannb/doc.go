// Package gaussiannb implements a streaming Gaussian Naive Bayes
// classifier satisfying core.BaseLearner, the bundled reference base
// learner. Per-feature, per-class mean and variance are tracked with
// Welford's online algorithm so LearnOne never revisits past data.
//
// Features must be supplied as map[string]float64; LearnOne and
// PredictOne panic on any other concrete type, matching the core's
// own policy of panicking on caller misuse rather than threading an
// error through every call (SPEC_FULL §7).
package gaussiannb

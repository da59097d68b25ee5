// Package calmidrand implements core.RNG: a deterministic, seedable
// source of uniform and Poisson draws, plus substream derivation for
// the per-learner randomness EnsembleTrainer needs (SPEC_FULL §5).
//
// Goals, carried over from the teacher's tsp/rng.go:
//   - Determinism: same seed => identical draw sequence on any platform.
//   - Encapsulation: one factory, no time-based source hidden anywhere.
//   - Safety: no panics; Poisson(lambda<=0) deterministically yields 0.
//
// Concurrency: *Source wraps a *math/rand.Rand, which is not
// goroutine-safe. Do not share a *Source across goroutines; call
// Derive to hand each goroutine its own independent stream.
package calmidrand

package calmidrand

import (
	"math"
	"math/rand"

	"github.com/streamlearn/calmid/core"
)

// defaultSeed is the fixed "zero" seed used when callers pass seed==0,
// so a zero-value Config never silently means "nondeterministic".
const defaultSeed int64 = 1

// Source is the concrete core.RNG implementation used throughout CALMID.
type Source struct {
	r *rand.Rand
}

// compile-time assertion that *Source satisfies core.RNG.
var _ core.RNG = (*Source)(nil)

// New returns a deterministic *Source. Policy: seed==0 => defaultSeed;
// otherwise seed is used verbatim.
//
// Complexity: O(1).
func New(seed int64) *Source {
	s := seed
	if s == 0 {
		s = defaultSeed
	}
	return &Source{r: rand.New(rand.NewSource(s))}
}

// Uniform draws a value in [0, 1).
//
// Complexity: O(1).
func (s *Source) Uniform() float64 {
	return s.r.Float64()
}

// Poisson draws a non-negative integer from a Poisson distribution with
// rate lambda, using Knuth's product-of-uniforms algorithm (Knuth,
// TAOCP vol. 2, 3.4.1). Rates <= 0 deterministically return 0 without
// consuming the underlying stream.
//
// Complexity: O(lambda) draws in expectation.
func (s *Source) Poisson(lambda float64) int {
	if lambda <= 0 {
		return 0
	}

	l := math.Exp(-lambda)
	k := 0
	p := 1.0
	for {
		k++
		p *= s.r.Float64()
		if p <= l {
			break
		}
	}

	return k - 1
}

// deriveSeed mixes a parent seed and a stream key into a new 64-bit
// seed via a SplitMix64-style avalanche finalizer (Vigna, 2014). Small
// changes in either input produce large, well-distributed output
// changes, so distinct keys derived from the same parent decorrelate
// cleanly.
func deriveSeed(parent int64, key uint64) int64 {
	x := uint64(parent) ^ (key + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// Derive returns an independent RNG stream mixed from the receiver's
// current state and key. One draw (Int63) is consumed from the receiver
// first so that calling Derive repeatedly with the same key on
// successive steps still yields decorrelated children — the same policy
// as the teacher's deriveRNG in tsp/rng.go.
//
// Complexity: O(1).
func (s *Source) Derive(key uint64) core.RNG {
	parent := s.r.Int63()

	return &Source{r: rand.New(rand.NewSource(deriveSeed(parent, key)))}
}

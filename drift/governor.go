package drift

import (
	"math"

	"github.com/streamlearn/calmid/core"
	"github.com/streamlearn/calmid/ensemble"
	"github.com/streamlearn/calmid/replay"
)

// Evaluate inspects one EnsembleTrainer pass's results and decides
// whether a change has occurred. A learner contributes a change only
// if its detector's drift flag fired AND its post-update estimate
// strictly exceeds its pre-update estimate (SPEC_FULL §4.8). If any
// learner contributes, kStar names the learner with the maximum
// post-update estimate, ties broken by the lowest index.
func (g *Governor) Evaluate(results []ensemble.LearnerResult) (changeDetected bool, kStar int) {
	best := -1
	bestEstimate := math.Inf(-1)

	for _, r := range results {
		if r.DriftDetected && r.PostEstimate > r.PreEstimate {
			changeDetected = true
		}
		if r.PostEstimate > bestEstimate {
			bestEstimate = r.PostEstimate
			best = r.Index
		}
	}

	if !changeDetected {
		return false, 0
	}
	return true, best
}

// Reset replaces learners[k] and detectors[k] in place: a pristine
// clone of template is trained on every sample in replaySamples (which
// MUST already be sorted ascending by Timestamp, e.g. via
// replay.Buffer.DrainSorted), weighted by exponential time decay and
// the reset procedure's double Poisson draw, and detectors[k] becomes
// a fresh instance of its own kind.
func (g *Governor) Reset(learners []core.BaseLearner, detectors []core.DriftDetector, k int, template core.BaseLearner, replaySamples []replay.Sample, now uint64, rng core.RNG) {
	fresh := template.Clone()

	for _, sample := range replaySamples {
		age := float64(now - sample.Timestamp)
		decay := math.Exp(-age / float64(g.SizeLab))
		wPrime := decay * sample.Weight

		wDoublePrime := rng.Poisson(wPrime)

		r := wDoublePrime
		if !g.SinglePoissonMode {
			r = rng.Poisson(float64(wDoublePrime))
		}

		for n := 0; n < r; n++ {
			fresh.LearnOne(sample.X, sample.Y)
		}
	}

	learners[k] = fresh
	detectors[k] = detectors[k].Fresh()
}

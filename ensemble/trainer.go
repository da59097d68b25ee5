package ensemble

import "github.com/streamlearn/calmid/core"

// TrainAll presents (x, y) to every learner Poisson(w) times, then
// updates that learner's drift detector with the post-training
// correctness bit. learners and detectors must be the same length;
// the result slice is indexed identically to both.
//
// Each learner's Poisson draw is taken from its own substream
// (t.RNG.Derive(uint64(k))) rather than the shared RNG directly, so a
// future per-learner-parallel implementation still reproduces the same
// trace regardless of scheduling order (SPEC_FULL §5).
//
// Complexity: O(n_models · r_avg) where r_avg is the mean Poisson
// draw, plus one PredictOne per learner.
func (t *Trainer) TrainAll(learners []core.BaseLearner, detectors []core.DriftDetector, x core.Features, y core.Label, w float64) []LearnerResult {
	results := make([]LearnerResult, len(learners))

	for k := range learners {
		sub := t.RNG.Derive(uint64(k))
		r := sub.Poisson(w)
		for n := 0; n < r; n++ {
			learners[k].LearnOne(x, y)
		}

		predicted := learners[k].PredictOne(x)
		correct := predicted == y

		detector := detectors[k]
		preEstimate := detector.Estimation()
		detector.Update(correct)

		results[k] = LearnerResult{
			Index:         k,
			Repeats:       r,
			Correct:       correct,
			PreEstimate:   preEstimate,
			PostEstimate:  detector.Estimation(),
			DriftDetected: detector.DriftDetected(),
		}
	}

	return results
}

package gaussiannb

import (
	"math"

	"github.com/streamlearn/calmid/core"
)

const varianceFloor = 1e-9

// classStats is the running Welford state for one class: sample
// count plus per-feature mean and sum-of-squared-deviations.
type classStats struct {
	count int
	mean  map[string]float64
	m2    map[string]float64
}

func newClassStats() *classStats {
	return &classStats{mean: map[string]float64{}, m2: map[string]float64{}}
}

func (s *classStats) observe(x map[string]float64) {
	s.count++
	n := float64(s.count)
	for feature, value := range x {
		delta := value - s.mean[feature]
		s.mean[feature] += delta / n
		s.m2[feature] += delta * (value - s.mean[feature])
	}
}

func (s *classStats) variance(feature string) float64 {
	if s.count < 2 {
		return varianceFloor
	}
	v := s.m2[feature] / float64(s.count-1)
	if v < varianceFloor {
		return varianceFloor
	}
	return v
}

// NaiveBayes is a streaming Gaussian Naive Bayes classifier.
type NaiveBayes struct {
	classes map[core.Label]*classStats
	order   []core.Label
	total   int
}

// New returns a pristine, untrained classifier.
func New() *NaiveBayes {
	return &NaiveBayes{classes: map[core.Label]*classStats{}}
}

var _ core.BaseLearner = (*NaiveBayes)(nil)

func asFeatures(x core.Features) map[string]float64 {
	f, ok := x.(map[string]float64)
	if !ok {
		panic("gaussiannb: features must be map[string]float64")
	}
	return f
}

// LearnOne updates the running per-class feature statistics.
func (nb *NaiveBayes) LearnOne(x core.Features, y core.Label) {
	features := asFeatures(x)

	stats, known := nb.classes[y]
	if !known {
		stats = newClassStats()
		nb.classes[y] = stats
		nb.order = append(nb.order, y)
	}
	stats.observe(features)
	nb.total++
}

// PredictProbaOne returns a normalized posterior over every class seen
// so far, assuming feature independence within each class. Classes
// with no observations contribute nothing. Returns an empty map if no
// class has ever been trained on.
func (nb *NaiveBayes) PredictProbaOne(x core.Features) map[core.Label]float64 {
	if nb.total == 0 {
		return map[core.Label]float64{}
	}
	features := asFeatures(x)

	scores := make(map[core.Label]float64, len(nb.order))
	sum := 0.0
	for _, label := range nb.order {
		stats := nb.classes[label]
		prior := float64(stats.count) / float64(nb.total)

		logLikelihood := math.Log(prior)
		for feature, value := range features {
			mean := stats.mean[feature]
			variance := stats.variance(feature)
			logLikelihood += gaussianLogPDF(value, mean, variance)
		}

		score := math.Exp(logLikelihood)
		scores[label] = score
		sum += score
	}

	if sum == 0 {
		return map[core.Label]float64{}
	}
	for label := range scores {
		scores[label] /= sum
	}
	return scores
}

// PredictOne returns the class with the highest posterior, breaking
// ties by class insertion order. Returns nil if no class has been
// trained on yet.
func (nb *NaiveBayes) PredictOne(x core.Features) core.Label {
	probs := nb.PredictProbaOne(x)
	if len(probs) == 0 {
		return nil
	}

	var best core.Label
	bestScore := -1.0
	for _, label := range nb.order {
		if score, ok := probs[label]; ok && score > bestScore {
			bestScore = score
			best = label
		}
	}
	return best
}

// Clone returns a pristine, untrained classifier. Gaussian Naive Bayes
// carries no hyperparameters to copy, so Clone is equivalent to New.
func (nb *NaiveBayes) Clone() core.BaseLearner {
	return New()
}

func gaussianLogPDF(x, mean, variance float64) float64 {
	return -0.5*math.Log(2*math.Pi*variance) - (x-mean)*(x-mean)/(2*variance)
}

package difficulty

import (
	"math"

	"github.com/streamlearn/calmid/core"
)

// TopTwo finds the top-two-probability labels in probs, breaking ties
// deterministically by order — the position of a label in order is the
// tie-break key (earlier wins), mirroring the façade's append-only
// label_to_index registry (SPEC_FULL §3). This is what makes
// QueryController's tie-breaking deterministic despite Go map iteration
// order being random (SPEC_FULL §4.6: "the core MUST NOT assume ties
// are rare").
//
// ok is false if order holds fewer than two labels (the learnt_classes < 2
// bootstrap case of SPEC_FULL §4.6); callers check ok before using the
// result. A label in order with no entry in probs counts as probability 0.
//
// Complexity: O(len(order)).
func TopTwo(probs map[core.Label]float64, order []core.Label) (margin float64, yc1, yc2 core.Label, ok bool) {
	if len(order) < 2 {
		return 0, nil, nil, false
	}

	bestIdx, secondIdx := -1, -1
	var best, second float64

	for i, label := range order {
		p := probs[label]
		if bestIdx == -1 || p > best {
			secondIdx, second = bestIdx, best
			bestIdx, best = i, p
		} else if secondIdx == -1 || p > second {
			secondIdx, second = i, p
		}
	}

	if bestIdx == -1 || secondIdx == -1 {
		return 0, nil, nil, false
	}

	return best - second, order[bestIdx], order[secondIdx], true
}

// Compute returns the difficulty score for an instance whose true label
// is y, given the top-two margin and top-two labels yc1/yc2 for that
// instance.
//
// Complexity: O(1).
func Compute(marginValue float64, yc1, yc2, y core.Label) float64 {
	var tf, s float64
	switch {
	case y == yc1:
		tf, s = 1, 0
	case y == yc2:
		tf, s = -1, 1
	default:
		tf, s = -1, 0
	}

	return (1 - tf*marginValue) * math.Exp(1-tf-s)
}

// Weight returns the online-bagging training weight for an instance
// given its difficulty score and the imbalance ratio of its true label.
// The max(1, imbalance) term keeps the reciprocal bounded above by 1 for
// majority classes (SPEC_FULL §4.5).
//
// Complexity: O(1).
func Weight(difficultyScore, imbalanceRatio float64) float64 {
	denom := math.Max(1, imbalanceRatio)

	return math.Log(1 + difficultyScore + 1/denom)
}

package query

import "github.com/streamlearn/calmid/core"

// Decide runs one USS step. marginValue/yc1/yc2 are the ensemble's
// current top-two margin and top-two predicted labels for the instance;
// y is its true label. learningStep is the façade's queried count
// *before* this instance is accounted for; timeStep already counts this
// instance. budget is the configured label budget. rng supplies the Case-B stochastic draw.
//
// Complexity: O(1).
func (c *Controller) Decide(idx Indexer, rng core.RNG, y, yc1, yc2 core.Label, marginValue float64, learningStep, timeStep int, budget float64) (Decision, error) {
	i, ok := idx.Index(yc1)
	if !ok {
		return Decision{}, core.ErrUnknownClass
	}
	j, ok := idx.Index(yc2)
	if !ok {
		return Decision{}, core.ErrUnknownClass
	}

	threshold := c.Matrix.Get(i, j)

	if marginValue <= threshold {
		// Case A: the ensemble is uncertain enough on its own terms;
		// always label.
		imb := c.Imbalance(y)

		if y == yc1 {
			c.Matrix.Decrease(i, j, c.StepSize)
			if imb > 0.5 {
				// Easy & majority: shrink the threshold again.
				c.Matrix.Decrease(i, j, c.StepSize)
			}
		} else if y == yc2 && imb > 0.5 {
			c.Matrix.Decrease(i, j, c.StepSize)
		}

		return Decision{Labeling: true}, nil
	}

	// Case B: stochastic second chance, scaled by the remaining budget.
	remaining := budget - float64(learningStep)/float64(timeStep)
	q := marginValue - threshold
	p := remaining / (remaining + q)

	labeling := rng.Uniform() < p
	if labeling && y == yc2 {
		c.Matrix.Increase(i, j, c.StepSize, c.Theta)
	}

	return Decision{Labeling: labeling}, nil
}

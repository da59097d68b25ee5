// Package difficulty implements DifficultyAndWeight (SPEC_FULL §4.5):
// given the ensemble's top-two margin for an instance and its true
// label, compute a difficulty score and the training weight derived
// from it and the label's imbalance.
//
//	if yc1 == y:            (tf, s) = (1, 0)
//	else if yc2 == y:        (tf, s) = (-1, 1)
//	else:                    (tf, s) = (-1, 0)
//
//	difficulty = (1 - tf*margin) * exp(1 - tf - s)
//	weight     = ln(1 + difficulty + 1/max(1, imbalance))
package difficulty

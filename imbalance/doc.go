// Package imbalance implements ImbalanceEstimator (SPEC_FULL §4.4):
// a label's share of recently queried instances, normalized to the
// share an evenly-balanced label set would have.
//
//	imbalance(y) = count_window(y) / ((length_window - count_window(sentinel)) / n_classes)
//
// Estimate returns core.ErrEmptyLabelWindow when no entries in the
// window have been queried yet. SPEC_FULL §7 notes this is
// unreachable through calmid.LearnOne, because every step before
// sizelab unconditionally queries — reaching this error means a caller
// invoked Estimate directly against an empty window.
package imbalance

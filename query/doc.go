// Package query implements QueryController, the uncertainty-selective
// strategy (USS) of SPEC_FULL §4.6: given the ensemble's current
// top-two margin for an instance, decide whether to spend a labeling
// query on it, and mutate the shared MarginMatrix accordingly.
//
// Case A (margin <= threshold): always label. If the true label is the
// top prediction, decrease the threshold once, twice if the label is
// also the current majority class (imbalance > 0.5). If the true label
// is only the runner-up and it is the majority class, decrease once.
// Otherwise the matrix is untouched.
//
// Case B (margin > threshold): a stochastic second chance scaled by
// the remaining label budget. If it fires and the true label is the
// runner-up, increase the threshold (floored at theta).
//
// Errors:
//
//	core.ErrUnknownClass - yc1 or yc2 is not yet registered in the
//	                       index lookup passed to Decide. Unreachable
//	                       via calmid.LearnOne's call order (§4.9
//	                       guards Decide behind learnt_classes >= 2,
//	                       which can only hold for already-registered
//	                       labels); reaching it means a caller invoked
//	                       Decide directly outside that guard.
package query

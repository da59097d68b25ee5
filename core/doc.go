// Package core defines the vocabulary shared by every CALMID subpackage:
// the Label and Features value types, the three external collaborator
// interfaces (BaseLearner, DriftDetector, RNG), and the sentinel errors
// that surface a programmer error inside the decision core.
//
// No other package should redeclare these types. labelwindow, replay,
// margin, imbalance, difficulty, query, ensemble, drift, and the calmid
// façade all import core instead.
//
// Errors:
//
//	ErrInvalidConfiguration - a façade constructor precondition was violated.
//	ErrUnknownClass         - a label's dense index was required before registration.
//	ErrEmptyLabelWindow     - an imbalance query hit a window with no queried entries.
package core

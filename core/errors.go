package core

import "errors"

// Sentinel errors shared across the CALMID subpackages.
var (
	// ErrInvalidConfiguration indicates a façade constructor precondition
	// was violated (budget <= epsilon, n_classes <= 0, or a nil model
	// template). An epsilon outside [0,1] or a non-positive size option is
	// not reported through this error: the With* option constructors
	// panic on those values before New runs.
	ErrInvalidConfiguration = errors.New("core: invalid configuration")

	// ErrUnknownClass indicates a label's dense index was requested
	// before the label was registered in label_to_index. Unreachable via
	// the façade's LearnOne call order; reaching it is a programmer error
	// in code that bypasses the façade.
	ErrUnknownClass = errors.New("core: unknown class label")

	// ErrEmptyLabelWindow indicates imbalance was computed against a
	// window with zero queried entries. Unreachable via LearnOne because
	// every step before sizelab unconditionally queries; reaching it is a
	// programmer error in code that bypasses the façade.
	ErrEmptyLabelWindow = errors.New("core: label window has no queried entries")
)

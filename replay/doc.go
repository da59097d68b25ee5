// Package replay implements the per-class bounded replay buffers of
// SPEC_FULL §4.2: one FIFO-bounded buffer of (features, label, weight,
// timestamp) samples per declared class, used to re-seed a freshly
// cloned base learner when DriftGovernor resets a slot.
//
// DrainSorted is the only cross-class operation: it collects every
// buffered sample across all classes and returns them sorted by
// ascending timestamp, independent of each buffer's internal iteration
// or insertion order (SPEC_FULL §9).
package replay

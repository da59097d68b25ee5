// Package margin implements MarginMatrix (SPEC_FULL §4.3): the
// n_classes x n_classes asymmetric margin threshold table indexed by
// (top-predicted class index, runner-up class index), stored row-major
// in a flat slice for cache-friendly access — the same storage shape
// the teacher's matrix.Dense uses for its dense linear-algebra type,
// repurposed here for a fixed-size threshold table instead of a
// general-purpose numeric matrix.
//
// Every entry starts at theta. Decrease multiplies an entry by
// (1 - step_size) with no floor. Increase multiplies by (1 + step_size)
// and clamps the result up to theta if the product would fall below
// it. This asymmetry — the floor applies only on increase — is
// reproduced verbatim from the source implementation per SPEC_FULL §9;
// it is flagged there as possibly unintentional but is not "fixed"
// here.
package margin

// Package drift provides the bundled reference DriftDetector (DDM,
// Gama et al. 2004) and DriftGovernor, which aggregates every
// learner's per-step drift signal and performs the replay-seeded
// reset of the worst learner (SPEC_FULL §4.8).
//
// DDM is a supplementary collaborator, not part of the decision core:
// any type satisfying core.DriftDetector may be substituted. It is
// included because the core ships with no detector of its own and
// DDM is simple enough to implement correctly without the complexity
// (and bug surface) of a full ADWIN.
package drift

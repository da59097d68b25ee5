// Package calmid implements CALMID, an online ensemble classifier for
// evolving data streams under a label-budget constraint with class
// imbalance. The façade orchestrates, per arriving instance:
//
//   - QueryController (package query), an uncertainty-selective
//     strategy deciding whether to spend a labeling query and mutating
//     an asymmetric per-class-pair margin threshold matrix (package
//     margin) accordingly;
//   - DifficultyAndWeight (package difficulty), turning the ensemble's
//     top-two margin into a per-sample training weight;
//   - a class-stratified replay buffer (package replay) used to
//     re-seed a reset learner;
//   - EnsembleTrainer (package ensemble), weighted online bagging
//     across a fixed vector of base learners;
//   - DriftGovernor (package drift), aggregating per-learner drift
//     signals and replacing the worst learner from replay on a
//     confirmed change.
//
// Base learners and drift detectors are supplied by the caller via the
// core.BaseLearner and core.DriftDetector interfaces; package
// model/gaussiannb and package drift's DDM are the bundled reference
// implementations used when no detector factory is configured.
//
// LearnOne and PredictProbaOne are the only two mutation/read entry
// points; both are synchronous and single-threaded. A *CALMID value
// must not be used from more than one goroutine at a time.
package calmid

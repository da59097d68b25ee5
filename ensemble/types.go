package ensemble

import "github.com/streamlearn/calmid/core"

// LearnerResult captures what happened to one base learner/detector
// pair during a single TrainAll call, the inputs DriftGovernor needs
// to decide whether that learner has drifted.
type LearnerResult struct {
	Index         int
	Repeats       int
	Correct       bool
	PreEstimate   float64
	PostEstimate  float64
	DriftDetected bool
}

// Trainer runs one weighted-bagging step across an ensemble's
// learners and detectors. It holds no learner state itself: the
// façade owns the learner and detector slices and passes them in,
// so a DriftGovernor reset that replaces a slot is immediately visible
// on the next TrainAll call.
type Trainer struct {
	RNG core.RNG
}

package drift

// Governor aggregates per-learner drift signals after one EnsembleTrainer
// pass and, if warranted, resets the worst learner from replay.
//
// SinglePoissonMode collapses the reset procedure's double Poisson draw
// (SPEC_FULL §4.8, which compounds variance) into a single draw, for test harnesses that
// want the less noisy behavior. Default false reproduces the source
// verbatim.
type Governor struct {
	SizeLab           int
	SinglePoissonMode bool
}

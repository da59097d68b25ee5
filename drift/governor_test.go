package drift_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/streamlearn/calmid/core"
	"github.com/streamlearn/calmid/drift"
	"github.com/streamlearn/calmid/ensemble"
	"github.com/streamlearn/calmid/replay"
)

func TestGovernor_Evaluate_NoDriftWhenNoLearnerQualifies(t *testing.T) {
	g := &drift.Governor{SizeLab: 100}
	results := []ensemble.LearnerResult{
		{Index: 0, PreEstimate: 0.1, PostEstimate: 0.05, DriftDetected: true}, // estimate fell: doesn't count
		{Index: 1, PreEstimate: 0.1, PostEstimate: 0.2, DriftDetected: false}, // rose but no flag
	}
	changed, _ := g.Evaluate(results)
	require.False(t, changed)
}

// Scenario 5: three learners with estimates (0.1, 0.4, 0.25); only the
// middle one (index 1) has its drift flag set with a rising estimate.
// Expect slot 1 selected, 0 and 2 untouched.
func TestGovernor_Evaluate_SelectsMaxEstimateLearner(t *testing.T) {
	g := &drift.Governor{SizeLab: 100}
	results := []ensemble.LearnerResult{
		{Index: 0, PreEstimate: 0.3, PostEstimate: 0.1, DriftDetected: false},
		{Index: 1, PreEstimate: 0.2, PostEstimate: 0.4, DriftDetected: true},
		{Index: 2, PreEstimate: 0.3, PostEstimate: 0.25, DriftDetected: false},
	}
	changed, k := g.Evaluate(results)
	require.True(t, changed)
	require.Equal(t, 1, k)
}

func TestGovernor_Evaluate_TiesBrokenByLowestIndex(t *testing.T) {
	g := &drift.Governor{SizeLab: 100}
	results := []ensemble.LearnerResult{
		{Index: 0, PreEstimate: 0.1, PostEstimate: 0.5, DriftDetected: true},
		{Index: 1, PreEstimate: 0.1, PostEstimate: 0.5, DriftDetected: false},
	}
	changed, k := g.Evaluate(results)
	require.True(t, changed)
	require.Equal(t, 0, k)
}

type stubLearner struct {
	id         int
	learnCalls []core.Label
}

func (s *stubLearner) LearnOne(_ core.Features, y core.Label) { s.learnCalls = append(s.learnCalls, y) }
func (s *stubLearner) PredictOne(core.Features) core.Label { return nil }
func (s *stubLearner) PredictProbaOne(core.Features) map[core.Label]float64 { return nil }
func (s *stubLearner) Clone() core.BaseLearner { return &stubLearner{id: s.id} }

type stubDetector struct {
	fresh bool
}

func (d *stubDetector) Update(bool) {}
func (d *stubDetector) DriftDetected() bool { return false }
func (d *stubDetector) Estimation() float64 { return 0 }
func (d *stubDetector) Fresh() core.DriftDetector { return &stubDetector{fresh: true} }

type sequenceRNG struct {
	draws []int
	i     int
}

func (r *sequenceRNG) Uniform() float64 { return 0 }
func (r *sequenceRNG) Poisson(lambda float64) int {
	if lambda <= 0 {
		return 0 // core.RNG contract: non-positive rates yield 0 without a draw
	}
	v := r.draws[r.i]
	r.i++
	return v
}
func (r *sequenceRNG) Derive(uint64) core.RNG { return r }

func TestGovernor_Reset_ReplacesOnlyTargetSlotAndTrainsFromReplay(t *testing.T) {
	learners := []core.BaseLearner{
		&stubLearner{id: 0},
		&stubLearner{id: 1},
		&stubLearner{id: 2},
	}
	detectors := []core.DriftDetector{&stubDetector{}, &stubDetector{}, &stubDetector{}}
	template := &stubLearner{id: -1}

	samples := []replay.Sample{
		{X: "xA", Y: "A", Weight: 1.0, Timestamp: 1},
		{X: "xB", Y: "B", Weight: 1.0, Timestamp: 2},
	}
	// draws consumed in order: (w'' for sample1, r for sample1), (w'' for sample2).
	// w''=0 for sample2 makes its second draw Poisson(0), which yields 0
	// without consuming the trailing 5.
	rng := &sequenceRNG{draws: []int{2, 3, 0, 5}}

	g := &drift.Governor{SizeLab: 10}
	g.Reset(learners, detectors, 1, template, samples, 2, rng)

	replaced, ok := learners[1].(*stubLearner)
	require.True(t, ok)
	require.Equal(t, -1, replaced.id)
	require.Equal(t, []core.Label{"A", "A", "A"}, replaced.learnCalls) // r=3 repeats of sample1, r=0 of sample2

	// untouched slots keep their original learners.
	require.Equal(t, 0, learners[0].(*stubLearner).id)
	require.Equal(t, 2, learners[2].(*stubLearner).id)

	require.True(t, detectors[1].(*stubDetector).fresh)
}

func TestGovernor_Reset_SinglePoissonModeSkipsSecondDraw(t *testing.T) {
	learners := []core.BaseLearner{&stubLearner{id: 0}}
	detectors := []core.DriftDetector{&stubDetector{}}
	template := &stubLearner{id: -1}

	samples := []replay.Sample{{X: "x", Y: "A", Weight: 1.0, Timestamp: 0}}
	rng := &sequenceRNG{draws: []int{4}} // only one draw consumed

	g := &drift.Governor{SizeLab: 10, SinglePoissonMode: true}
	g.Reset(learners, detectors, 0, template, samples, 0, rng)

	replaced := learners[0].(*stubLearner)
	require.Len(t, replaced.learnCalls, 4)
}

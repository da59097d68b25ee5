package calmid

import (
	"math"

	"github.com/streamlearn/calmid/calmidrand"
	"github.com/streamlearn/calmid/core"
	"github.com/streamlearn/calmid/difficulty"
	"github.com/streamlearn/calmid/drift"
	"github.com/streamlearn/calmid/ensemble"
	"github.com/streamlearn/calmid/imbalance"
	"github.com/streamlearn/calmid/labelwindow"
	"github.com/streamlearn/calmid/margin"
	"github.com/streamlearn/calmid/query"
	"github.com/streamlearn/calmid/replay"
)

// CALMID is an online ensemble classifier under a label-budget
// constraint. A zero-value CALMID is not usable; construct one with
// New. All exported methods are synchronous and must be called from a
// single goroutine at a time.
type CALMID struct {
	nClasses int
	template core.BaseLearner
	sizeLab  int
	epsilon  float64
	budget   float64

	rng          core.RNG
	window       *labelwindow.Window
	replayBuf    *replay.Buffer
	marginMatrix *margin.Matrix

	labelToIndex map[core.Label]int
	order        []core.Label // append-only, index i == labelToIndex[order[i]]

	timeStep     int
	learningStep int

	learners  []core.BaseLearner
	detectors []core.DriftDetector

	trainer  *ensemble.Trainer
	governor *drift.Governor
	query    *query.Controller
}

// New constructs a CALMID classifier for a declared class count of
// nClasses, using template as the base-learner prototype cloned into
// every ensemble slot and every drift-triggered reset. Returns
// ErrInvalidConfiguration if nClasses <= 0, template is nil, or
// budget <= epsilon (the cross-field precondition the source's
// constructor enforces; single-field bounds are enforced eagerly by
// the With* options themselves).
func New(nClasses int, template core.BaseLearner, opts ...Option) (*CALMID, error) {
	if nClasses <= 0 {
		return nil, invalidConfig("n_classes must be > 0")
	}
	if template == nil {
		return nil, invalidConfig("model template must not be nil")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.budget <= cfg.epsilon {
		return nil, invalidConfig("budget must be > epsilon")
	}

	detectorFactory := cfg.detectorFactory
	if detectorFactory == nil {
		detectorFactory = func() core.DriftDetector { return drift.NewDDM() }
	}

	sizesam := int(math.Ceil(float64(cfg.sizeLab) * cfg.epsilon / float64(nClasses)))
	if sizesam < 1 {
		sizesam = 1
	}

	window := labelwindow.New(cfg.sizeLab)
	rng := calmidrand.New(cfg.seed)

	learners := make([]core.BaseLearner, cfg.nModels)
	detectors := make([]core.DriftDetector, cfg.nModels)
	for i := range learners {
		learners[i] = template.Clone()
		detectors[i] = detectorFactory()
	}

	c := &CALMID{
		nClasses:     nClasses,
		template:     template,
		sizeLab:      cfg.sizeLab,
		epsilon:      cfg.epsilon,
		budget:       cfg.budget,
		rng:          rng,
		window:       window,
		replayBuf:    replay.New(nClasses, sizesam),
		marginMatrix: margin.New(nClasses, cfg.theta),
		labelToIndex: make(map[core.Label]int, nClasses),
		learners:     learners,
		detectors:    detectors,
		trainer:      &ensemble.Trainer{RNG: rng},
		governor:     &drift.Governor{SizeLab: cfg.sizeLab, SinglePoissonMode: cfg.singlePoisson},
	}
	c.query = &query.Controller{
		Matrix:   c.marginMatrix,
		Theta:    cfg.theta,
		StepSize: cfg.stepSize,
		Imbalance: func(label core.Label) float64 {
			return imbalance.MustEstimate(c.window, label, c.nClasses)
		},
	}

	return c, nil
}

// facadeIndex adapts CALMID's label_to_index map to query.Indexer.
type facadeIndex struct{ c *CALMID }

func (f facadeIndex) Index(label core.Label) (int, bool) {
	idx, ok := f.c.labelToIndex[label]
	return idx, ok
}

// LearnOne presents one labeled instance, following SPEC §4.9 exactly:
// the warmup/exploration branch always queries while the (already
// incremented) time step is below sizeLab, i.e. for the first sizeLab-1
// steps, or whenever a fresh uniform draw falls under epsilon; after
// that, QueryController decides, and — per the source's documented
// quirk — the not-queried sentinel is recorded in the LabelWindow even
// when that decision does result in a query.
func (c *CALMID) LearnOne(x core.Features, y core.Label) error {
	c.timeStep++

	predictions := c.PredictProbaOne(x)
	marginValue, yc1, yc2, ok := difficulty.TopTwo(predictions, c.order)

	zeta := c.rng.Uniform()
	labeling := false

	switch {
	case c.timeStep < c.sizeLab || zeta < c.epsilon:
		c.window.Add(labelwindow.LabelEntry(y))
		labeling = true

	case ok:
		decision, err := c.query.Decide(facadeIndex{c}, c.rng, y, yc1, yc2, marginValue, c.learningStep, c.timeStep, c.budget)
		if err != nil {
			return err
		}
		c.window.Add(labelwindow.SentinelEntry())
		if decision.Labeling && float64(c.learningStep)/float64(c.timeStep) < c.budget {
			labeling = true
		}

	default:
		c.window.Add(labelwindow.SentinelEntry())
	}

	if !labeling {
		return nil
	}

	idx, known := c.labelToIndex[y]
	if !known {
		idx = len(c.order)
		c.labelToIndex[y] = idx
		c.order = append(c.order, y)
	}
	c.learningStep++

	imb := imbalance.MustEstimate(c.window, y, c.nClasses)
	d := difficulty.Compute(marginValue, yc1, yc2, y)
	w := difficulty.Weight(d, imb)

	c.replayBuf.Add(idx, replay.Sample{X: x, Y: y, Weight: w, Timestamp: uint64(c.timeStep)})

	results := c.trainer.TrainAll(c.learners, c.detectors, x, y, w)

	if changed, kStar := c.governor.Evaluate(results); changed {
		samples := c.replayBuf.DrainSorted()
		c.governor.Reset(c.learners, c.detectors, kStar, c.template, samples, uint64(c.timeStep), c.rng)
	}

	return nil
}

// PredictProbaOne returns the ensemble's posterior over every label any
// learner currently returns a score for, summing each learner's
// PredictProbaOne and dividing by the total mass (not by the learner
// count, since a learner may return a partial distribution). Returns
// an empty map if every learner assigns zero mass everywhere.
func (c *CALMID) PredictProbaOne(x core.Features) map[core.Label]float64 {
	sum := make(map[core.Label]float64)
	total := 0.0

	for _, learner := range c.learners {
		for label, p := range learner.PredictProbaOne(x) {
			sum[label] += p
			total += p
		}
	}

	if total == 0 {
		return map[core.Label]float64{}
	}
	for label := range sum {
		sum[label] /= total
	}
	return sum
}

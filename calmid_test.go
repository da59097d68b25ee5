package calmid_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	calmid "github.com/streamlearn/calmid"
	"github.com/streamlearn/calmid/core"
	"github.com/streamlearn/calmid/model/gaussiannb"
)

func TestNew_RejectsNonPositiveClassCount(t *testing.T) {
	_, err := calmid.New(0, gaussiannb.New())
	require.ErrorIs(t, err, core.ErrInvalidConfiguration)
}

func TestNew_RejectsNilTemplate(t *testing.T) {
	_, err := calmid.New(2, nil)
	require.ErrorIs(t, err, core.ErrInvalidConfiguration)
}

func TestNew_RejectsBudgetNotExceedingEpsilon(t *testing.T) {
	_, err := calmid.New(2, gaussiannb.New(), calmid.WithBudget(0.05), calmid.WithEpsilon(0.1))
	require.ErrorIs(t, err, core.ErrInvalidConfiguration)
}

func TestNew_AcceptsValidConfiguration(t *testing.T) {
	c, err := calmid.New(2, gaussiannb.New(),
		calmid.WithBudget(0.2), calmid.WithEpsilon(0.05), calmid.WithSizeLab(10), calmid.WithSeed(42))
	require.NoError(t, err)
	require.NotNil(t, c)
}

func TestOptions_PanicOnMeaninglessSingleFieldInputs(t *testing.T) {
	require.Panics(t, func() { calmid.WithNModels(0) })
	require.Panics(t, func() { calmid.WithTheta(0) })
	require.Panics(t, func() { calmid.WithStepSize(1) })
	require.Panics(t, func() { calmid.WithStepSize(0) })
	require.Panics(t, func() { calmid.WithEpsilon(-0.1) })
	require.Panics(t, func() { calmid.WithEpsilon(1.1) })
	require.Panics(t, func() { calmid.WithBudget(0) })
	require.Panics(t, func() { calmid.WithSizeLab(0) })
	require.Panics(t, func() { calmid.WithDetectorFactory(nil) })
}

func TestPredictProbaOne_EmptyBeforeAnyTraining(t *testing.T) {
	c, err := calmid.New(2, gaussiannb.New(), calmid.WithBudget(0.2), calmid.WithEpsilon(0.05), calmid.WithSizeLab(5))
	require.NoError(t, err)

	require.Empty(t, c.PredictProbaOne(map[string]float64{"f": 0}))
}

func TestLearnOne_WarmupStepsNeverError(t *testing.T) {
	c, err := calmid.New(2, gaussiannb.New(),
		calmid.WithBudget(0.3), calmid.WithEpsilon(0.05), calmid.WithSizeLab(8), calmid.WithSeed(7))
	require.NoError(t, err)

	for i := 0; i < 8; i++ {
		label := "low"
		if i%2 == 1 {
			label = "high"
		}
		require.NoError(t, c.LearnOne(map[string]float64{"f": float64(i)}, label))
	}
}

func TestLearnOne_RunsPastWarmupWithoutErrorAndLearnsSeparableClasses(t *testing.T) {
	c, err := calmid.New(2, gaussiannb.New(),
		calmid.WithBudget(0.5), calmid.WithEpsilon(0.05), calmid.WithSizeLab(10),
		calmid.WithNModels(3), calmid.WithSeed(123))
	require.NoError(t, err)

	for i := 0; i < 400; i++ {
		label := core.Label("low")
		x := -10.0
		if i%2 == 1 {
			label = "high"
			x = 10.0
		}
		require.NoError(t, c.LearnOne(map[string]float64{"f": x}, label))
	}

	probs := c.PredictProbaOne(map[string]float64{"f": -9.5})
	require.NotEmpty(t, probs)

	sum := 0.0
	for _, p := range probs {
		require.GreaterOrEqual(t, p, 0.0)
		sum += p
	}
	require.InDelta(t, 1.0, sum, 1e-9)
	require.Greater(t, probs["low"], probs["high"])
}

func TestLearnOne_DeterministicGivenSameSeed(t *testing.T) {
	run := func() map[core.Label]float64 {
		c, err := calmid.New(2, gaussiannb.New(),
			calmid.WithBudget(0.4), calmid.WithEpsilon(0.1), calmid.WithSizeLab(10), calmid.WithSeed(99))
		require.NoError(t, err)

		for i := 0; i < 100; i++ {
			label := core.Label("low")
			x := -5.0
			if i%3 == 0 {
				label = "high"
				x = 5.0
			}
			require.NoError(t, c.LearnOne(map[string]float64{"f": x}, label))
		}
		return c.PredictProbaOne(map[string]float64{"f": 0})
	}

	a, b := run(), run()
	require.Equal(t, a, b)
}

package margin_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/streamlearn/calmid/margin"
)

func TestNew_PanicsOnBadDimensionsOrTheta(t *testing.T) {
	require.Panics(t, func() { margin.New(0, 0.1) })
	require.Panics(t, func() { margin.New(2, 0) })
	require.Panics(t, func() { margin.New(2, -1) })
}

func TestNew_InitializesEveryEntryToTheta(t *testing.T) {
	m := margin.New(3, 0.1)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			require.Equal(t, 0.1, m.Get(i, j))
		}
	}
}

func TestGet_PanicsOutOfRange(t *testing.T) {
	m := margin.New(2, 0.1)
	require.Panics(t, func() { m.Get(-1, 0) })
	require.Panics(t, func() { m.Get(0, 2) })
}

// Scenario 3 from SPEC_FULL §8: after one USS Case A call for an "easy
// majority" instance, M[A][·] was multiplied by (1 - step_size)^2.
func TestDecrease_DoubleApplicationMatchesEasyMajorityScenario(t *testing.T) {
	m := margin.New(2, 0.1)
	const stepSize = 0.1

	m.Decrease(0, 1, stepSize)
	m.Decrease(0, 1, stepSize)

	want := 0.1 * (1 - stepSize) * (1 - stepSize)
	require.InDelta(t, want, m.Get(0, 1), 1e-12)
}

// Decreases are not floored at theta: repeated decreases can push an
// entry below theta (SPEC_FULL §4.3/§9, reproduced verbatim).
func TestDecrease_NotFlooredAtTheta(t *testing.T) {
	m := margin.New(2, 0.1)
	for i := 0; i < 50; i++ {
		m.Decrease(0, 1, 0.5)
	}
	require.Less(t, m.Get(0, 1), 0.1)
}

// Scenario 4 from SPEC_FULL §8: after a Case-B labeling where y == yc2,
// M[yc1][yc2] >= theta and was multiplied by (1+step_size), floored at
// theta.
func TestIncrease_ClampsAtThetaFloor(t *testing.T) {
	m := margin.New(2, 0.1)
	const stepSize, theta = 0.1, 0.1

	// Manually depress the entry below theta first, as Decrease can.
	m.Decrease(0, 1, 0.9)
	require.Less(t, m.Get(0, 1), theta)

	m.Increase(0, 1, stepSize, theta)
	require.GreaterOrEqual(t, m.Get(0, 1), theta)
}

func TestIncrease_MultipliesWhenAboveFloor(t *testing.T) {
	m := margin.New(2, 0.1)
	const stepSize, theta = 0.1, 0.1

	m.Increase(0, 1, stepSize, theta)
	want := 0.1 * (1 + stepSize)
	require.InDelta(t, want, m.Get(0, 1), 1e-12)
}

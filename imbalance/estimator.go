package imbalance

import "github.com/streamlearn/calmid/core"

// window is the subset of labelwindow.Window's API Estimate needs. Kept
// narrow and local (rather than importing labelwindow directly) so this
// package stays a pure function over its inputs — the calmid façade
// already holds a *labelwindow.Window that satisfies this.
type window interface {
	CountLabel(label core.Label) int
	CountSentinel() int
	Length() int
}

// Estimate computes imbalance(y) over win for a declared class count of
// nClasses. Returns core.ErrEmptyLabelWindow if no entry in win has
// been queried (the denominator would divide by zero).
//
// Complexity: O(1).
func Estimate(win window, label core.Label, nClasses int) (float64, error) {
	queried := win.Length() - win.CountSentinel()
	if queried == 0 {
		return 0, core.ErrEmptyLabelWindow
	}

	denominator := float64(queried) / float64(nClasses)

	return float64(win.CountLabel(label)) / denominator, nil
}

// MustEstimate is Estimate without an error return, for call sites the
// façade's call order guarantees can never hit an empty window. It
// panics if that guarantee is violated, per SPEC_FULL §7's policy that
// arithmetic anomalies must abort loudly rather than be papered over.
//
// Complexity: O(1).
func MustEstimate(win window, label core.Label, nClasses int) float64 {
	v, err := Estimate(win, label, nClasses)
	if err != nil {
		panic("imbalance: " + err.Error())
	}

	return v
}

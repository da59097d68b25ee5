package drift

import (
	"math"

	"github.com/streamlearn/calmid/core"
)

// DDM is the Drift Detection Method of Gama, Medas, Castillo & Rodrigues
// (2004): it tracks the online error rate p and its standard deviation
// s over a stream of correctness bits, remembers the minimum p+s seen
// since the last reset, and signals drift once p+s climbs far enough
// above that minimum.
type DDM struct {
	n       int
	p       float64
	s       float64
	pMin    float64
	sMin    float64
	drift   bool
	warning bool

	warningLevel float64
	driftLevel   float64
	minInstances int
}

// NewDDM constructs a DDM detector with the thresholds from the 2004
// paper: a warning level of 2 standard deviations, a drift level of 3,
// and a 30-instance warmup before either can fire.
func NewDDM() *DDM {
	return &DDM{
		pMin:         math.MaxFloat64,
		sMin:         math.MaxFloat64,
		warningLevel: 2.0,
		driftLevel:   3.0,
		minInstances: 30,
	}
}

var _ core.DriftDetector = (*DDM)(nil)

// Update feeds one correctness bit (true = the base learner predicted
// correctly). It recomputes the running error rate and its deviation,
// tracks the (p, s) pair at the historical minimum of p+s, and sets the
// warning and drift flags once enough instances have been seen and the
// current p+s exceeds pMin+warningLevel·sMin, respectively
// pMin+driftLevel·sMin.
func (d *DDM) Update(correct bool) {
	d.n++

	errorBit := 0.0
	if !correct {
		errorBit = 1.0
	}
	d.p += (errorBit - d.p) / float64(d.n)
	d.s = math.Sqrt(d.p * (1 - d.p) / float64(d.n))

	if d.n < d.minInstances {
		d.drift = false
		d.warning = false
		return
	}

	if d.p+d.s <= d.pMin+d.sMin {
		d.pMin = d.p
		d.sMin = d.s
	}

	d.drift = d.p+d.s > d.pMin+d.driftLevel*d.sMin
	d.warning = !d.drift && d.p+d.s > d.pMin+d.warningLevel*d.sMin
}

// DriftDetected reports the flag computed by the most recent Update.
func (d *DDM) DriftDetected() bool { return d.drift }

// Warning reports whether the most recent Update crossed the 2-sigma
// warning band without yet crossing the 3-sigma drift band. A caller
// may use this to start buffering recent instances before a full reset
// is warranted; DriftGovernor itself only acts on DriftDetected.
func (d *DDM) Warning() bool { return d.warning }

// Estimation returns the current online error-rate estimate p.
func (d *DDM) Estimation() float64 { return d.p }

// Fresh returns a pristine DDM with the same configured thresholds.
func (d *DDM) Fresh() core.DriftDetector {
	return &DDM{
		pMin:         math.MaxFloat64,
		sMin:         math.MaxFloat64,
		warningLevel: d.warningLevel,
		driftLevel:   d.driftLevel,
		minInstances: d.minInstances,
	}
}

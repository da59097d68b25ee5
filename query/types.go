package query

import (
	"github.com/streamlearn/calmid/core"
	"github.com/streamlearn/calmid/margin"
)

// Indexer resolves a registered label to its dense row/column index in
// the shared MarginMatrix. The façade backs this with label_to_index.
type Indexer interface {
	Index(label core.Label) (idx int, ok bool)
}

// Controller holds the configuration USS needs across calls: the
// shared MarginMatrix it reads and mutates, and the fixed theta/step
// size parameters from the façade's Config.
type Controller struct {
	Matrix    *margin.Matrix
	Theta     float64
	StepSize  float64
	Imbalance func(label core.Label) float64 // ImbalanceEstimator bound to the façade's window
}

// Decision is the result of one USS call.
type Decision struct {
	Labeling bool
}

package replay

import "github.com/streamlearn/calmid/core"

// Sample is one buffered training example: the features and label that
// arrived, the training weight computed for it (SPEC_FULL §4.5), and
// the time_step at which it arrived.
type Sample struct {
	X         core.Features
	Y         core.Label
	Weight    float64
	Timestamp uint64
}

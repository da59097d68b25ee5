package labelwindow

import "github.com/streamlearn/calmid/core"

// Entry is one slot recorded in a Window: either a revealed label
// (Queried == true) or the not-queried sentinel (Queried == false, Label
// is meaningless and ignored).
type Entry struct {
	Label   core.Label
	Queried bool
}

// LabelEntry builds an Entry recording a revealed label.
func LabelEntry(label core.Label) Entry {
	return Entry{Label: label, Queried: true}
}

// SentinelEntry builds the not-queried Entry.
func SentinelEntry() Entry {
	return Entry{Queried: false}
}

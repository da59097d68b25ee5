// Package labelwindow implements the bounded recency window of SPEC_FULL
// §4.1: for the last sizelab instances, it records either the label
// that was revealed or a not-queried sentinel, and answers "how many
// times did entry e appear in the window" in O(1).
//
// Invariant: count(label) + count(Sentinel) == Length(), always, since
// every Add call appends exactly one entry and evicts at most one.
package labelwindow

package labelwindow

import "github.com/streamlearn/calmid/core"

// Window is a bounded FIFO of Entry values. Capacity is fixed at
// construction (sizelab in SPEC_FULL); Add evicts the oldest entry once
// the window is full. A zero-value Window is not usable; use New.
type Window struct {
	capacity      int
	entries       []Entry       // ring buffer, logical order oldest..newest via head
	head          int           // index of the oldest entry
	size          int           // number of live entries
	labelCounts   map[any]int   // Label -> count, label entries only
	sentinelCount int           // count of not-queried entries
}

// New returns an empty Window with the given capacity. Panics if
// capacity <= 0: a non-positive window size is a meaningless
// configuration, not a runtime condition callers should recover from.
//
// Complexity: O(capacity) to preallocate backing storage.
func New(capacity int) *Window {
	if capacity <= 0 {
		panic("labelwindow: capacity must be > 0")
	}

	return &Window{
		capacity:    capacity,
		entries:     make([]Entry, capacity),
		labelCounts: make(map[any]int),
	}
}

// Add appends entry, evicting the oldest entry if the window is already
// at capacity.
//
// Complexity: O(1) amortized.
func (w *Window) Add(entry Entry) {
	if w.size == w.capacity {
		w.evictOldest()
	}

	idx := (w.head + w.size) % w.capacity
	w.entries[idx] = entry
	w.size++

	if entry.Queried {
		w.labelCounts[entry.Label]++
	} else {
		w.sentinelCount++
	}
}

// evictOldest drops the single oldest entry, decrementing its counter.
func (w *Window) evictOldest() {
	oldest := w.entries[w.head]
	if oldest.Queried {
		w.labelCounts[oldest.Label]--
		if w.labelCounts[oldest.Label] == 0 {
			delete(w.labelCounts, oldest.Label)
		}
	} else {
		w.sentinelCount--
	}

	w.head = (w.head + 1) % w.capacity
	w.size--
}

// CountLabel returns how many times label occurs among the queried
// entries currently in the window.
//
// Complexity: O(1).
func (w *Window) CountLabel(label core.Label) int {
	return w.labelCounts[label]
}

// CountSentinel returns how many not-queried entries are currently in
// the window.
//
// Complexity: O(1).
func (w *Window) CountSentinel() int {
	return w.sentinelCount
}

// Length returns the current number of entries in the window
// (min(instances seen, capacity)).
//
// Complexity: O(1).
func (w *Window) Length() int {
	return w.size
}

// Capacity returns the configured sizelab.
//
// Complexity: O(1).
func (w *Window) Capacity() int {
	return w.capacity
}

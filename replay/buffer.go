package replay

import "sort"

// perClass is a bounded FIFO of Sample values for a single class.
type perClass struct {
	capacity int
	samples  []Sample
	head     int
	size     int
}

func newPerClass(capacity int) *perClass {
	return &perClass{capacity: capacity, samples: make([]Sample, capacity)}
}

func (b *perClass) add(s Sample) {
	if b.size == b.capacity {
		b.head = (b.head + 1) % b.capacity
		b.size--
	}

	idx := (b.head + b.size) % b.capacity
	b.samples[idx] = s
	b.size++
}

// all returns every live sample in this class's buffer, in FIFO
// (oldest-first) order. The caller must not retain the returned slice
// across subsequent add calls.
func (b *perClass) all() []Sample {
	out := make([]Sample, 0, b.size)
	for i := 0; i < b.size; i++ {
		out = append(out, b.samples[(b.head+i)%b.capacity])
	}

	return out
}

// Buffer holds one bounded per-class FIFO per declared class, indexed by
// the dense class index assigned in label_to_index.
type Buffer struct {
	capacity int
	byClass  []*perClass
}

// New returns a Buffer with nClasses per-class FIFOs, each bounded to
// capacity entries (sizesam in SPEC_FULL). Panics if nClasses <= 0 or
// capacity <= 0: both are structural configuration values, not runtime
// conditions.
//
// Complexity: O(nClasses * capacity) to preallocate backing storage.
func New(nClasses, capacity int) *Buffer {
	if nClasses <= 0 {
		panic("replay: nClasses must be > 0")
	}
	if capacity <= 0 {
		panic("replay: capacity must be > 0")
	}

	byClass := make([]*perClass, nClasses)
	for i := range byClass {
		byClass[i] = newPerClass(capacity)
	}

	return &Buffer{capacity: capacity, byClass: byClass}
}

// Add appends sample to the FIFO for classIndex, evicting the oldest
// sample in that class's buffer if it is already at capacity. Panics if
// classIndex is out of [0, nClasses) — an out-of-range class index is a
// programmer error upstream (label_to_index assignment), not a
// recoverable input condition.
//
// Complexity: O(1) amortized.
func (buf *Buffer) Add(classIndex int, sample Sample) {
	buf.byClass[classIndex].add(sample)
}

// Len returns the number of samples currently buffered for classIndex.
//
// Complexity: O(1).
func (buf *Buffer) Len(classIndex int) int {
	return buf.byClass[classIndex].size
}

// Capacity returns the configured per-class capacity (sizesam).
//
// Complexity: O(1).
func (buf *Buffer) Capacity() int {
	return buf.capacity
}

// DrainSorted returns every buffered sample across every class, sorted
// by ascending Timestamp. It does not mutate or clear any per-class
// buffer — "drain" names the reset-path use (consume everything to
// re-seed a learner), not a destructive read.
//
// Complexity: O(n log n) where n is the total number of buffered
// samples across all classes.
func (buf *Buffer) DrainSorted() []Sample {
	total := 0
	for _, c := range buf.byClass {
		total += c.size
	}

	all := make([]Sample, 0, total)
	for _, c := range buf.byClass {
		all = append(all, c.all()...)
	}

	sort.Slice(all, func(i, j int) bool {
		return all[i].Timestamp < all[j].Timestamp
	})

	return all
}

package holes

import (
	"container/heap"
	"slices"
)

type entry struct {
	value uint64
	key   uint64
}

// entryHeap is a minimum heap of (value, key) bindings.
type entryHeap []entry

func (h entryHeap) Len() int { return len(h) }
func (h entryHeap) Less(i, j int) bool {
	if h[i].value != h[j].value {
		return h[i].value < h[j].value
	}
	return h[i].key < h[j].key
}
func (h entryHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *entryHeap) Push(x any)   { *h = append(*h, x.(entry)) }
func (h *entryHeap) Pop() any {
	old := *h
	n := len(old) - 1
	e := old[n]
	*h = old[:n]
	return e
}

// Tracker is the baseline hole tracker. The heap holds exactly one entry
// per bound key; rebinding a key filters the old entry out by rebuilding
// the whole heap, which is O(size) per rebind. It is kept as the
// correctness baseline the indexed variant is benchmarked against.
type Tracker struct {
	bound   map[uint64]uint64
	entries entryHeap
	minHole uint64
}

// NewTracker returns an empty tracker whose hole starts at 1.
func NewTracker() *Tracker {
	return &Tracker{bound: make(map[uint64]uint64), minHole: 1}
}

func (t *Tracker) Add(key, value uint64) {
	if _, rebound := t.bound[key]; rebound {
		// no addressable delete: keep every entry for another key and
		// rebuild
		kept := t.entries[:0]
		for _, e := range t.entries {
			if e.key != key {
				kept = append(kept, e)
			}
		}
		t.entries = append(kept, entry{value, key})
		heap.Init(&t.entries)
	} else {
		heap.Push(&t.entries, entry{value, key})
	}
	t.bound[key] = value
	t.advanceHole(key)
}

// advanceHole moves the hole forward past consecutively bound keys. Only an
// Add landing exactly on the hole can move it.
func (t *Tracker) advanceHole(key uint64) {
	if key != t.minHole {
		return
	}
	for {
		t.minHole++
		if _, ok := t.bound[t.minHole]; !ok {
			return
		}
	}
}

func (t *Tracker) Get(key uint64) (uint64, bool) {
	v, ok := t.bound[key]
	return v, ok
}

func (t *Tracker) FindMin() Min {
	if len(t.entries) == 0 || t.minHole < t.entries[0].value {
		return Min{Key: t.minHole, Value: t.minHole, Present: false}
	}
	top := t.entries[0]
	return Min{Key: top.key, Value: top.value, Present: true}
}

func (t *Tracker) DoubleMin() {
	m := t.FindMin()
	t.Add(m.Key, 2*m.Value)
}

func (t *Tracker) Sorted(n uint64) []uint64 {
	return sortedEffective(t, n)
}

// sortedEffective materializes the effective values of keys 1..n for any
// tracker: the bound value where one exists, the key itself otherwise.
func sortedEffective(t Minimizer, n uint64) []uint64 {
	out := make([]uint64, 0, n)
	for k := uint64(1); k <= n; k++ {
		if v, ok := t.Get(k); ok {
			out = append(out, v)
		} else {
			out = append(out, k)
		}
	}
	slices.Sort(out)
	return out
}

package runs

import "sort"

// Binary search primitives over sorted spans of the backing array. These are
// the shared position arithmetic every representation builds on. The burden
// of knowledge is on the caller: the span [r.Start, r.End] must actually be
// sorted or the results are nonsense.

// LowerBound returns the first position p in [r.Start, r.End+1) with
// vals[p] >= v. When every value in the run is below v the result is
// r.End+1, one past the run.
func LowerBound(vals []uint64, r Run, v uint64) int {
	return r.Start + sort.Search(r.Len(), func(k int) bool {
		return vals[r.Start+k] >= v
	})
}

// UpperBound returns the first position p in [r.Start, r.End+1) with
// vals[p] > v. Values equal to v are kept to the left, which is what stops
// ties from forcing run splits.
func UpperBound(vals []uint64, r Run, v uint64) int {
	return r.Start + sort.Search(r.Len(), func(k int) bool {
		return vals[r.Start+k] > v
	})
}

// FindInRun locates a position within the sorted run holding exactly v.
func FindInRun(vals []uint64, r Run, v uint64) (int, bool) {
	p := LowerBound(vals, r, v)
	if p > r.End || vals[p] != v {
		return 0, false
	}
	return p, true
}

package redist

import (
	"github.com/equifact/go-equifact/holes"
	"github.com/equifact/go-equifact/runs"
)

// Algorithm is a complete size-to-sorted-sequence implementation: it builds
// the identity sequence 1..n in one of the competing representations, runs
// the redistribution walk over it and returns the final sorted multiset.
type Algorithm func(n uint64) []uint64

// Algorithms returns every competing representation keyed by the name the
// benchmark table reports. All of them must produce identical output for
// identical n; only their repair costs differ.
func Algorithms() map[string]Algorithm {
	return map[string]Algorithm{
		"rangelist": func(n uint64) []uint64 {
			return Balanced(n, func(n int) runs.Sequence { return runs.NewRangeList(n) })
		},
		"linked": func(n uint64) []uint64 {
			return Balanced(n, func(n int) runs.Sequence { return runs.NewLinkedRuns(n) })
		},
		"btree": func(n uint64) []uint64 {
			return Balanced(n, func(n int) runs.Sequence { return runs.NewTreeRuns(n) })
		},
		"shift": func(n uint64) []uint64 {
			return Balanced(n, func(n int) runs.Sequence { return runs.NewShiftSeq(n) })
		},
		"holes": func(n uint64) []uint64 {
			tr := holes.NewTracker()
			BalanceSparse(tr, n)
			return tr.Sorted(n)
		},
		"holes-indexed": func(n uint64) []uint64 {
			tr := holes.NewIndexedTracker()
			BalanceSparse(tr, n)
			return tr.Sorted(n)
		},
	}
}

// AlgorithmNames lists the algorithm keys in the order the benchmark table
// prints them.
func AlgorithmNames() []string {
	return []string{"rangelist", "linked", "btree", "shift", "holes", "holes-indexed"}
}

// Package redist redistributes factors of two among the integers 1..n so
// that their product, which is n!, becomes a product of large, closely
// sized factors.
//
// The walk itself is simple: for every even value v above a threshold,
// halve the slot holding v and double whichever slot currently holds the
// smallest value, repeating the halve-and-double once more if the halved
// value is still even and still above the threshold. Halve one slot, double
// another: the product is untouched, so the final multiset still multiplies
// out to n! exactly, which Product and Factorial let callers verify.
//
// All the interesting work happens in the runs and holes packages the walk
// drives; this package only encodes the canonical rule.
package redist

import (
	"github.com/equifact/go-equifact/holes"
	"github.com/equifact/go-equifact/runs"
)

// Threshold returns the smallest value the walk will process: ceil(3n/8)
// rounded up to the next even integer. Values at or above it are halved,
// and a halved value must stay strictly above it to be halved again.
func Threshold(n uint64) uint64 {
	t := (3*n + 7) / 8
	return t + t%2
}

// Balance runs the redistribution walk over a dense sequence, mutating it
// in place. Slots are located by value rather than by position so the same
// walk drives both the run representations, where positions are stable, and
// the shift representation, where they are not.
func Balance(seq runs.Sequence) {
	n := uint64(seq.Len())
	t := Threshold(n)
	for v := t; v <= n; v += 2 {
		i, ok := seq.Find(v)
		if !ok {
			continue
		}
		half := v / 2
		if !seq.Modify(i, v, half) {
			continue
		}
		doubleMin(seq)
		if half%2 == 0 && half > t {
			// the halved value is still even and still above the
			// threshold: process it once more
			j, ok := seq.Find(half)
			if !ok {
				continue
			}
			if !seq.Modify(j, half, half/2) {
				continue
			}
			doubleMin(seq)
		}
	}
}

// doubleMin doubles the smallest value in place. The stale guard cannot
// fire here: the position and the value are read back to back with no
// intervening mutation.
func doubleMin(seq runs.Sequence) {
	i := seq.MinIndex()
	if i < 0 {
		return
	}
	m := seq.Value(i)
	seq.Modify(i, m, 2*m)
}

// BalanceSparse runs the same walk against a sparse tracker over the keys
// 1..n, where an unbound key implicitly holds its own value. The re-read
// before the second halving mirrors the dense walk's stale guard.
func BalanceSparse(tr holes.Minimizer, n uint64) {
	t := Threshold(n)
	for v := t; v <= n; v += 2 {
		cur, ok := tr.Get(v)
		if !ok {
			cur = v
		}
		if cur != v {
			continue
		}
		half := v / 2
		tr.Add(v, half)
		tr.DoubleMin()
		if half%2 == 0 && half > t {
			if got, ok := tr.Get(v); ok && got == half {
				tr.Add(v, half/2)
				tr.DoubleMin()
			}
		}
	}
}

// Balanced is the side-effect-free form: size in, sorted balanced multiset
// out, using whichever representation newSeq constructs.
func Balanced(n uint64, newSeq func(n int) runs.Sequence) []uint64 {
	seq := newSeq(int(n))
	Balance(seq)
	return seq.Sorted()
}

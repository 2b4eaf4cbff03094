package runs

import "iter"

// Run is an inclusive index interval [Start, End] over the backing array
// whose values are non-decreasing in array order.
type Run struct {
	Start int
	End   int
}

// Len returns the number of positions the run covers.
func (r Run) Len() int { return r.End - r.Start + 1 }

// Sequence is the contract shared by every representation. The driver and
// the benchmark harness are written once against this interface.
//
// Positions returned by MinIndex and Find are invalidated by any mutating
// call. Modify guards against that with the expected-old-value check.
type Sequence interface {
	// Len returns the number of elements.
	Len() int

	// Value returns the current value at position i.
	Value(i int) uint64

	// MinIndex returns the position holding the smallest value, or -1 if
	// the sequence is empty.
	MinIndex() int

	// Find returns a position currently holding v. When duplicates of v
	// exist any one of them may be returned.
	Find(v uint64) (int, bool)

	// Modify overwrites position i with new, provided the value there
	// still equals old. A mismatch mutates nothing and returns false.
	Modify(i int, old, new uint64) bool

	// Ascending yields the current values in ascending order. The
	// projection is lazy, restartable and does not mutate the sequence.
	Ascending() iter.Seq[uint64]

	// Sorted materializes Ascending into a new slice.
	Sorted() []uint64
}

// identity fills a fresh backing array with the values 1..n.
func identity(n int) []uint64 {
	vals := make([]uint64, n)
	for i := range vals {
		vals[i] = uint64(i + 1)
	}
	return vals
}

func collect(n int, seq iter.Seq[uint64]) []uint64 {
	out := make([]uint64, 0, n)
	for v := range seq {
		out = append(out, v)
	}
	return out
}

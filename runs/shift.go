package runs

import "iter"

// ShiftSeq is the baseline representation with no run bookkeeping at all.
// The backing array is kept fully sorted; every overwrite binary-searches
// the correct slot for the new value and shifts the intervening block to
// open or close the gap. Repair cost is the span of the shift, worst case
// the whole array, versus the typically sub-linear run repair.
//
// Elements move between positions, so positions are only meaningful until
// the next Modify. Callers locate elements by value.
type ShiftSeq struct {
	vals []uint64
}

// NewShiftSeq returns the identity sequence 1..n, which starts sorted.
func NewShiftSeq(n int) *ShiftSeq {
	return &ShiftSeq{vals: identity(n)}
}

func (s *ShiftSeq) Len() int           { return len(s.vals) }
func (s *ShiftSeq) Value(i int) uint64 { return s.vals[i] }

func (s *ShiftSeq) MinIndex() int {
	if len(s.vals) == 0 {
		return -1
	}
	return 0
}

func (s *ShiftSeq) Find(v uint64) (int, bool) {
	if len(s.vals) == 0 {
		return 0, false
	}
	return FindInRun(s.vals, Run{0, len(s.vals) - 1}, v)
}

func (s *ShiftSeq) Modify(i int, old, new uint64) bool {
	if i < 0 || i >= len(s.vals) || s.vals[i] != old {
		return false
	}
	if new == old {
		return true
	}
	whole := Run{0, len(s.vals) - 1}
	if new > old {
		// the slot for new is at or right of i, under the values > new
		j := UpperBound(s.vals, whole, new)
		copy(s.vals[i:j-1], s.vals[i+1:j])
		s.vals[j-1] = new
	} else {
		// the slot for new is at or left of i, above the values < new
		j := LowerBound(s.vals, whole, new)
		copy(s.vals[j+1:i+1], s.vals[j:i])
		s.vals[j] = new
	}
	return true
}

func (s *ShiftSeq) Ascending() iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		for _, v := range s.vals {
			if !yield(v) {
				return
			}
		}
	}
}

func (s *ShiftSeq) Sorted() []uint64 { return append([]uint64(nil), s.vals...) }

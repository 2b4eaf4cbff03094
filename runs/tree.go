package runs

import (
	"iter"

	"github.com/google/btree"
)

// TreeRuns keeps the run partition in a B-tree ordered by the runs' live
// boundary values, so locating a run by value is O(log k) in the run count
// instead of the slice scan RangeList pays.
//
// The ordering function reads the backing array at comparison time. That
// only stays sound because any write that can change a stored run's
// boundary values removes the run from the tree first and re-inserts it
// afterwards; interior writes cannot re-key a run.
//
// Value searches descend from a probe pseudo-run whose compare value is
// staged in probeV, so even read-only queries write the receiver. No
// TreeRuns method is safe for concurrent use.
type TreeRuns struct {
	vals   []uint64
	tree   *btree.BTreeG[Run]
	probeV uint64
}

// Probe pseudo-indices. A probe run carries no real positions; it compares
// as (probeV, maxValue) and therefore sorts after every stored run whose
// first value does not exceed probeV.
const (
	probeLo = -1
	probeHi = -2
)

// NewTreeRuns returns the identity sequence 1..n as a single tree item.
func NewTreeRuns(n int) *TreeRuns {
	s := &TreeRuns{vals: identity(n)}
	s.tree = btree.NewG(8, s.runLess)
	if n > 0 {
		s.tree.ReplaceOrInsert(Run{0, n - 1})
	}
	return s
}

func (s *TreeRuns) val(i int) uint64 {
	switch i {
	case probeLo:
		return s.probeV
	case probeHi:
		return ^uint64(0)
	}
	return s.vals[i]
}

// runLess orders runs by (first value, last value, start index). Because
// run value spans never interleave, this agrees with the sorted
// concatenation order; equal-valued runs commute and the start index only
// settles which of them ascends first.
func (s *TreeRuns) runLess(a, b Run) bool {
	if s.val(a.Start) != s.val(b.Start) {
		return s.val(a.Start) < s.val(b.Start)
	}
	if s.val(a.End) != s.val(b.End) {
		return s.val(a.End) < s.val(b.End)
	}
	return a.Start < b.Start
}

func (s *TreeRuns) Len() int           { return len(s.vals) }
func (s *TreeRuns) Value(i int) uint64 { return s.vals[i] }

func (s *TreeRuns) MinIndex() int {
	r, ok := s.tree.Min()
	if !ok {
		return -1
	}
	return r.Start
}

func (s *TreeRuns) Find(v uint64) (int, bool) {
	t, ok := s.lastAtOrBelow(v)
	if !ok {
		return 0, false
	}
	return FindInRun(s.vals, t, v)
}

func (s *TreeRuns) Modify(i int, old, new uint64) bool {
	if i < 0 || i >= len(s.vals) || s.vals[i] != old {
		return false
	}
	if old == new {
		return true
	}
	r, ok := s.containing(i, old)
	if !ok {
		return false
	}

	leftOK := true
	if i > r.Start {
		leftOK = s.vals[i-1] <= new
	} else if prev, ok := s.below(r); ok {
		leftOK = s.vals[prev.End] <= new
	}
	rightOK := true
	if i < r.End {
		rightOK = new <= s.vals[i+1]
	} else if next, ok := s.above(r); ok {
		rightOK = new <= s.vals[next.Start]
	}
	if leftOK && rightOK {
		if i == r.Start || i == r.End {
			// a boundary write re-keys the run
			s.tree.Delete(r)
			s.vals[i] = new
			s.tree.ReplaceOrInsert(r)
		} else {
			s.vals[i] = new
		}
		return true
	}

	// Same repair as RangeList: carve i out of its run, re-insert the
	// dislodged value as a singleton, splitting the one straddled run.
	s.tree.Delete(r)
	s.vals[i] = new
	if i > r.Start {
		s.tree.ReplaceOrInsert(Run{r.Start, i - 1})
	}
	if i < r.End {
		s.tree.ReplaceOrInsert(Run{i + 1, r.End})
	}
	if t, ok := s.lastAtOrBelow(new); ok && s.vals[t.End] > new {
		s.tree.Delete(t)
		cut := UpperBound(s.vals, t, new)
		s.tree.ReplaceOrInsert(Run{t.Start, cut - 1})
		s.tree.ReplaceOrInsert(Run{cut, t.End})
	}
	single := Run{i, i}
	s.tree.ReplaceOrInsert(single)
	s.coalesce(single)
	return true
}

// containing locates the stored run covering index i, whose value there is
// old. Only runs tied at value old need to be scanned: the run's span must
// include old, and span maxima are monotone along the tree order.
func (s *TreeRuns) containing(i int, old uint64) (Run, bool) {
	s.probeV = old
	var out Run
	found := false
	s.tree.DescendLessOrEqual(Run{probeLo, probeHi}, func(item Run) bool {
		if item.Start <= i && i <= item.End {
			out, found = item, true
			return false
		}
		return s.vals[item.End] >= old
	})
	return out, found
}

// lastAtOrBelow returns the last stored run whose first value is <= v.
func (s *TreeRuns) lastAtOrBelow(v uint64) (Run, bool) {
	s.probeV = v
	var out Run
	found := false
	s.tree.DescendLessOrEqual(Run{probeLo, probeHi}, func(item Run) bool {
		out, found = item, true
		return false
	})
	return out, found
}

func (s *TreeRuns) below(r Run) (Run, bool) {
	var out Run
	found := false
	s.tree.DescendLessOrEqual(r, func(item Run) bool {
		if item == r {
			return true
		}
		out, found = item, true
		return false
	})
	return out, found
}

func (s *TreeRuns) above(r Run) (Run, bool) {
	var out Run
	found := false
	s.tree.AscendGreaterOrEqual(r, func(item Run) bool {
		if item == r {
			return true
		}
		out, found = item, true
		return false
	})
	return out, found
}

// coalesce merges r with its tree neighbours when they are adjacent in both
// index space and value order. Merging re-keys, so delete then re-insert.
func (s *TreeRuns) coalesce(r Run) {
	if prev, ok := s.below(r); ok && prev.End+1 == r.Start && s.vals[prev.End] <= s.vals[r.Start] {
		s.tree.Delete(prev)
		s.tree.Delete(r)
		r = Run{prev.Start, r.End}
		s.tree.ReplaceOrInsert(r)
	}
	if next, ok := s.above(r); ok && r.End+1 == next.Start && s.vals[r.End] <= s.vals[next.Start] {
		s.tree.Delete(r)
		s.tree.Delete(next)
		s.tree.ReplaceOrInsert(Run{r.Start, next.End})
	}
}

func (s *TreeRuns) Ascending() iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		s.tree.Ascend(func(r Run) bool {
			for i := r.Start; i <= r.End; i++ {
				if !yield(s.vals[i]) {
					return false
				}
			}
			return true
		})
	}
}

func (s *TreeRuns) Sorted() []uint64 { return collect(len(s.vals), s.Ascending()) }

package runs

import (
	"iter"
	"sort"
)

// RangeList keeps the run partition in an ordered slice of run records. The
// slice order is the sorted order: concatenating the runs front to back
// yields the ascending value sequence.
type RangeList struct {
	vals []uint64
	list []Run
}

// NewRangeList returns the identity sequence 1..n as a single run.
func NewRangeList(n int) *RangeList {
	s := &RangeList{vals: identity(n)}
	if n > 0 {
		s.list = []Run{{0, n - 1}}
	}
	return s
}

func (s *RangeList) Len() int           { return len(s.vals) }
func (s *RangeList) Value(i int) uint64 { return s.vals[i] }

// Runs returns a copy of the current run partition in collection order.
func (s *RangeList) Runs() []Run { return append([]Run(nil), s.list...) }

func (s *RangeList) first(r Run) uint64 { return s.vals[r.Start] }
func (s *RangeList) last(r Run) uint64  { return s.vals[r.End] }

func (s *RangeList) MinIndex() int {
	if len(s.list) == 0 {
		return -1
	}
	return s.list[0].Start
}

func (s *RangeList) Find(v uint64) (int, bool) {
	// If v is present at all it is present in the last run whose first
	// value does not exceed v: everything before that run is <= its first
	// value, everything after starts above v.
	p := sort.Search(len(s.list), func(k int) bool { return s.first(s.list[k]) > v })
	if p == 0 {
		return 0, false
	}
	return FindInRun(s.vals, s.list[p-1], v)
}

func (s *RangeList) Modify(i int, old, new uint64) bool {
	if i < 0 || i >= len(s.vals) || s.vals[i] != old {
		return false
	}
	if old == new {
		return true
	}
	p := s.locate(i)
	r := s.list[p]

	// Fast path: the new value is still consistent with both neighbours,
	// whether those sit inside the run or across a run boundary.
	if s.fitsLeft(p, r, i, new) && s.fitsRight(p, r, i, new) {
		s.vals[i] = new
		return true
	}

	s.vals[i] = new
	s.restructure(p, i)
	return true
}

// locate returns the collection position of the run containing index i.
func (s *RangeList) locate(i int) int {
	for p, r := range s.list {
		if r.Start <= i && i <= r.End {
			return p
		}
	}
	return -1
}

func (s *RangeList) fitsLeft(p int, r Run, i int, v uint64) bool {
	if i > r.Start {
		return s.vals[i-1] <= v
	}
	if p > 0 {
		return s.last(s.list[p-1]) <= v
	}
	return true
}

func (s *RangeList) fitsRight(p int, r Run, i int, v uint64) bool {
	if i < r.End {
		return v <= s.vals[i+1]
	}
	if p < len(s.list)-1 {
		return v <= s.first(s.list[p+1])
	}
	return true
}

// restructure repairs the partition after the value at i was rewritten in a
// way that broke local order. The run containing i is carved up around i,
// the dislodged value becomes a singleton run, and the singleton is
// re-inserted by value, splitting at most one straddled run.
func (s *RangeList) restructure(p, i int) {
	r := s.list[p]

	// The surviving left and right pieces keep the slot the old run
	// occupied: their value spans only shrank, so they still fit between
	// the old neighbours. They stay separate runs because index i sits
	// between them.
	var pieces []Run
	if i > r.Start {
		pieces = append(pieces, Run{r.Start, i - 1})
	}
	if i < r.End {
		pieces = append(pieces, Run{i + 1, r.End})
	}
	s.list = splice(s.list, p, 1, pieces...)

	// Insert the singleton by value. When the value lands strictly inside
	// an existing run, that run is split at the upper bound so equal
	// values stay together on its left half and no tie forces a split.
	v := s.vals[i]
	q := sort.Search(len(s.list), func(k int) bool { return s.first(s.list[k]) > v })
	if q > 0 && s.last(s.list[q-1]) > v {
		t := s.list[q-1]
		cut := UpperBound(s.vals, t, v)
		s.list = splice(s.list, q-1, 1, Run{t.Start, cut - 1}, Run{cut, t.End})
	}
	s.list = splice(s.list, q, 0, Run{i, i})
	s.coalesce()
}

// coalesce merges every pair of collection neighbours that are adjacent in
// both index space and value order, keeping the partition maximal. Removing
// a singleton can expose a merge anywhere, so the whole list is swept; the
// walk is no worse than the locate scan Modify already paid.
func (s *RangeList) coalesce() {
	if len(s.list) < 2 {
		return
	}
	merged := s.list[:1]
	for _, r := range s.list[1:] {
		top := &merged[len(merged)-1]
		if top.End+1 == r.Start && s.vals[top.End] <= s.first(r) {
			top.End = r.End
		} else {
			merged = append(merged, r)
		}
	}
	s.list = merged
}

func (s *RangeList) Ascending() iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		for _, r := range s.list {
			for i := r.Start; i <= r.End; i++ {
				if !yield(s.vals[i]) {
					return
				}
			}
		}
	}
}

func (s *RangeList) Sorted() []uint64 { return collect(len(s.vals), s.Ascending()) }

func splice(list []Run, at, del int, ins ...Run) []Run {
	out := make([]Run, 0, len(list)-del+len(ins))
	out = append(out, list[:at]...)
	out = append(out, ins...)
	out = append(out, list[at+del:]...)
	return out
}

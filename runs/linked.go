package runs

import (
	"container/list"
	"iter"
)

// LinkedRuns keeps the run partition in a doubly linked list of run nodes.
// Splits and merges are pointer operations instead of slice splices, at the
// cost of walking the list to locate a run.
type LinkedRuns struct {
	vals []uint64
	list *list.List // of Run
}

// NewLinkedRuns returns the identity sequence 1..n as a single run node.
func NewLinkedRuns(n int) *LinkedRuns {
	s := &LinkedRuns{vals: identity(n), list: list.New()}
	if n > 0 {
		s.list.PushBack(Run{0, n - 1})
	}
	return s
}

func (s *LinkedRuns) Len() int           { return len(s.vals) }
func (s *LinkedRuns) Value(i int) uint64 { return s.vals[i] }

func (s *LinkedRuns) first(e *list.Element) uint64 { return s.vals[e.Value.(Run).Start] }
func (s *LinkedRuns) last(e *list.Element) uint64  { return s.vals[e.Value.(Run).End] }

func (s *LinkedRuns) MinIndex() int {
	e := s.list.Front()
	if e == nil {
		return -1
	}
	return e.Value.(Run).Start
}

func (s *LinkedRuns) Find(v uint64) (int, bool) {
	// walk to the last node whose first value does not exceed v
	var cand *list.Element
	for e := s.list.Front(); e != nil && s.first(e) <= v; e = e.Next() {
		cand = e
	}
	if cand == nil {
		return 0, false
	}
	return FindInRun(s.vals, cand.Value.(Run), v)
}

func (s *LinkedRuns) Modify(i int, old, new uint64) bool {
	if i < 0 || i >= len(s.vals) || s.vals[i] != old {
		return false
	}
	if old == new {
		return true
	}
	e := s.locate(i)
	r := e.Value.(Run)

	leftOK := true
	switch {
	case i > r.Start:
		leftOK = s.vals[i-1] <= new
	case e.Prev() != nil:
		leftOK = s.last(e.Prev()) <= new
	}
	rightOK := true
	switch {
	case i < r.End:
		rightOK = new <= s.vals[i+1]
	case e.Next() != nil:
		rightOK = new <= s.first(e.Next())
	}
	if leftOK && rightOK {
		s.vals[i] = new
		return true
	}

	s.vals[i] = new
	s.restructure(e, i)
	return true
}

func (s *LinkedRuns) locate(i int) *list.Element {
	for e := s.list.Front(); e != nil; e = e.Next() {
		if r := e.Value.(Run); r.Start <= i && i <= r.End {
			return e
		}
	}
	return nil
}

func (s *LinkedRuns) restructure(e *list.Element, i int) {
	r := e.Value.(Run)

	// Carve index i out of its node. The left and right pieces inherit the
	// node's place in the list; their spans only shrank.
	if i > r.Start && i < r.End {
		s.list.InsertAfter(Run{i + 1, r.End}, e)
		e.Value = Run{r.Start, i - 1}
	} else if i > r.Start {
		e.Value = Run{r.Start, i - 1}
	} else if i < r.End {
		e.Value = Run{i + 1, r.End}
	} else {
		s.list.Remove(e)
	}

	// Re-insert the dislodged value as a singleton node, splitting the one
	// run it straddles if there is one.
	v := s.vals[i]
	var prev *list.Element
	for f := s.list.Front(); f != nil && s.first(f) <= v; f = f.Next() {
		prev = f
	}
	var node *list.Element
	switch {
	case prev == nil:
		node = s.list.PushFront(Run{i, i})
	case s.last(prev) > v:
		t := prev.Value.(Run)
		cut := UpperBound(s.vals, t, v)
		prev.Value = Run{t.Start, cut - 1}
		node = s.list.InsertAfter(Run{i, i}, prev)
		s.list.InsertAfter(Run{cut, t.End}, node)
	default:
		node = s.list.InsertAfter(Run{i, i}, prev)
	}
	s.coalesce()
}

// coalesce merges every pair of list neighbours that are adjacent in both
// index space and value order, keeping the partition maximal. Removing a
// singleton can expose a merge anywhere, so the whole list is swept.
func (s *LinkedRuns) coalesce() {
	e := s.list.Front()
	if e == nil {
		return
	}
	for next := e.Next(); next != nil; next = e.Next() {
		r, rn := e.Value.(Run), next.Value.(Run)
		if r.End+1 == rn.Start && s.last(e) <= s.first(next) {
			e.Value = Run{r.Start, rn.End}
			s.list.Remove(next)
		} else {
			e = next
		}
	}
}

func (s *LinkedRuns) Ascending() iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		for e := s.list.Front(); e != nil; e = e.Next() {
			r := e.Value.(Run)
			for i := r.Start; i <= r.End; i++ {
				if !yield(s.vals[i]) {
					return
				}
			}
		}
	}
}

func (s *LinkedRuns) Sorted() []uint64 { return collect(len(s.vals), s.Ascending()) }

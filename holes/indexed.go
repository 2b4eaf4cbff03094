package holes

// IndexedTracker replaces the rebuild-by-drain rebind with an addressable
// heap: a key-to-slot lookup lets an existing key's entry be updated in
// place and sifted, making rebinds O(log n) instead of O(n).
type IndexedTracker struct {
	bound   map[uint64]uint64
	data    []entry
	slot    map[uint64]int
	minHole uint64
}

// NewIndexedTracker returns an empty tracker whose hole starts at 1.
func NewIndexedTracker() *IndexedTracker {
	return &IndexedTracker{
		bound:   make(map[uint64]uint64),
		slot:    make(map[uint64]int),
		minHole: 1,
	}
}

func (t *IndexedTracker) Add(key, value uint64) {
	if j, ok := t.slot[key]; ok {
		t.data[j].value = value
		if !t.down(j) {
			t.up(j)
		}
	} else {
		t.data = append(t.data, entry{value, key})
		j := len(t.data) - 1
		t.slot[key] = j
		t.up(j)
	}
	t.bound[key] = value
	if key == t.minHole {
		for {
			t.minHole++
			if _, ok := t.bound[t.minHole]; !ok {
				break
			}
		}
	}
}

func (t *IndexedTracker) Get(key uint64) (uint64, bool) {
	v, ok := t.bound[key]
	return v, ok
}

func (t *IndexedTracker) FindMin() Min {
	if len(t.data) == 0 || t.minHole < t.data[0].value {
		return Min{Key: t.minHole, Value: t.minHole, Present: false}
	}
	top := t.data[0]
	return Min{Key: top.key, Value: top.value, Present: true}
}

func (t *IndexedTracker) DoubleMin() {
	m := t.FindMin()
	t.Add(m.Key, 2*m.Value)
}

func (t *IndexedTracker) Sorted(n uint64) []uint64 {
	return sortedEffective(t, n)
}

func (t *IndexedTracker) less(i, j int) bool {
	if t.data[i].value != t.data[j].value {
		return t.data[i].value < t.data[j].value
	}
	return t.data[i].key < t.data[j].key
}

// swap keeps the slot lookup in step with the heap slice.
func (t *IndexedTracker) swap(i, j int) {
	t.data[i], t.data[j] = t.data[j], t.data[i]
	t.slot[t.data[i].key] = i
	t.slot[t.data[j].key] = j
}

func (t *IndexedTracker) up(j int) {
	for {
		i := (j - 1) / 2
		if i == j || !t.less(j, i) {
			return
		}
		t.swap(i, j)
		j = i
	}
}

// down sifts slot i towards the leaves, reporting whether it moved at all
// so Add can fall back to sifting up.
func (t *IndexedTracker) down(i int) bool {
	moved := false
	n := len(t.data)
	for {
		left := 2*i + 1
		if left >= n {
			return moved
		}
		j := left
		if right := left + 1; right < n && t.less(right, left) {
			j = right
		}
		if !t.less(j, i) {
			return moved
		}
		t.swap(i, j)
		i = j
		moved = true
	}
}

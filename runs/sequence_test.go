package runs

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

// every representation under its registry name
func testSequences(n int) map[string]Sequence {
	return map[string]Sequence{
		"rangelist": NewRangeList(n),
		"linked":    NewLinkedRuns(n),
		"btree":     NewTreeRuns(n),
		"shift":     NewShiftSeq(n),
	}
}

func TestSequenceIdentityState(t *testing.T) {
	for name, seq := range testSequences(8) {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, 8, seq.Len())
			require.Equal(t, []uint64{1, 2, 3, 4, 5, 6, 7, 8}, seq.Sorted())
			mi := seq.MinIndex()
			require.Equal(t, uint64(1), seq.Value(mi))
			i, ok := seq.Find(5)
			require.True(t, ok)
			require.Equal(t, uint64(5), seq.Value(i))
			_, ok = seq.Find(9)
			require.False(t, ok)
		})
	}
}

func TestSequenceEmpty(t *testing.T) {
	for name, seq := range testSequences(0) {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, 0, seq.Len())
			require.Equal(t, -1, seq.MinIndex())
			require.Empty(t, seq.Sorted())
			require.False(t, seq.Modify(0, 1, 2))
		})
	}
}

func TestSequenceStaleWriteRejected(t *testing.T) {
	for name, seq := range testSequences(6) {
		t.Run(name, func(t *testing.T) {
			before := seq.Sorted()
			require.False(t, seq.Modify(3, 99, 1), "mismatched old value must be rejected")
			require.False(t, seq.Modify(-1, 1, 1))
			require.False(t, seq.Modify(6, 7, 1))
			require.Equal(t, before, seq.Sorted(), "a rejected write must not mutate state")
		})
	}
}

// TestSequenceRandomOverwrites drives each representation through a long
// random overwrite stream and checks the full contract at every step
// against a naive multiset: the sorted projection matches, the projection
// is idempotent, and the minimum is the true minimum.
func TestSequenceRandomOverwrites(t *testing.T) {
	const (
		n   = 64
		ops = 800
	)
	for name, seq := range testSequences(n) {
		t.Run(name, func(t *testing.T) {
			rng := rand.New(rand.NewSource(1))
			ref := make([]uint64, n)
			for i := range ref {
				ref[i] = uint64(i + 1)
			}
			for op := 0; op < ops; op++ {
				i := rng.Intn(n)
				old := seq.Value(i)
				val := uint64(1 + rng.Intn(2*n))
				require.True(t, seq.Modify(i, old, val))

				// apply the same replacement to the reference multiset
				j := slices.Index(ref, old)
				require.GreaterOrEqual(t, j, 0)
				ref[j] = val

				want := slices.Clone(ref)
				slices.Sort(want)
				got := seq.Sorted()
				require.Equal(t, want, got, "op %d: overwrite %d: %d -> %d", op, i, old, val)
				require.Equal(t, got, seq.Sorted(), "projection must be idempotent")
				require.Equal(t, want[0], seq.Value(seq.MinIndex()))

				// any value in the multiset must be findable
				probe := ref[rng.Intn(n)]
				k, ok := seq.Find(probe)
				require.True(t, ok)
				require.Equal(t, probe, seq.Value(k))
			}
		})
	}
}

// TestSequenceHalveDoublePattern exercises the exact perturbation shape the
// structures are built for: halve a large slot, double the minimum.
func TestSequenceHalveDoublePattern(t *testing.T) {
	const n = 128
	for name, seq := range testSequences(n) {
		t.Run(name, func(t *testing.T) {
			ref := make([]uint64, n)
			for i := range ref {
				ref[i] = uint64(i + 1)
			}
			for v := uint64(n); v > uint64(n)/2; v -= 2 {
				i, ok := seq.Find(v)
				require.True(t, ok)
				require.True(t, seq.Modify(i, v, v/2))
				ref[slices.Index(ref, v)] = v / 2

				m := seq.MinIndex()
				mv := seq.Value(m)
				require.True(t, seq.Modify(m, mv, 2*mv))
				ref[slices.Index(ref, mv)] = 2 * mv

				want := slices.Clone(ref)
				slices.Sort(want)
				require.Equal(t, want, seq.Sorted())
			}
		})
	}
}

func TestAscendingRestartable(t *testing.T) {
	seq := NewRangeList(10)
	require.True(t, seq.Modify(7, 8, 3))
	it := seq.Ascending()

	first := collect(10, it)
	second := collect(10, it)
	require.Equal(t, first, second)

	// early break must not disturb later passes
	count := 0
	for range it {
		count++
		if count == 3 {
			break
		}
	}
	require.Equal(t, first, collect(10, it))
}

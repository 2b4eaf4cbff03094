package redist_test

import (
	"fmt"
	"testing"

	"gotest.tools/v3/assert"

	"github.com/equifact/go-equifact/redist"
)

// Known answer vectors for the redistribution walk. Every representation
// must reproduce these exactly; they pin down the canonical threshold and
// repeat rule.
var balancedVectors = []struct {
	n    uint64
	want []uint64
}{
	{
		n:    15,
		want: []uint64{4, 4, 4, 4, 5, 5, 6, 6, 6, 7, 7, 9, 11, 13, 15},
	},
	{
		n: 33,
		want: []uint64{
			7, 8, 8, 8, 8, 8, 8, 9, 9, 10, 10, 10, 11, 11, 12, 12, 12,
			12, 13, 13, 14, 14, 15, 15, 17, 19, 21, 23, 25, 27, 29, 31, 33,
		},
	},
	{
		n: 65,
		want: []uint64{
			13, 14, 14, 14, 14, 15, 15, 15, 16, 16, 16, 16, 16, 16, 16,
			17, 17, 18, 18, 18, 19, 19, 20, 20, 20, 20, 21, 21, 22, 22,
			22, 23, 23, 24, 24, 24, 24, 24, 25, 25, 26, 26, 27, 27, 29,
			29, 31, 31, 33, 35, 37, 39, 41, 43, 45, 47, 49, 51, 53, 55,
			57, 59, 61, 63, 65,
		},
	},
}

func TestBalancedVectors(t *testing.T) {
	for name, fn := range redist.Algorithms() {
		for _, tt := range balancedVectors {
			t.Run(fmt.Sprintf("%s/n=%d", name, tt.n), func(t *testing.T) {
				assert.DeepEqual(t, tt.want, fn(tt.n))
			})
		}
	}
}

// TestBalancedProductIsFactorial checks the end product identity: the walk
// only moves factors of two between slots, so the balanced multiset still
// multiplies out to n!.
func TestBalancedProductIsFactorial(t *testing.T) {
	fn := redist.Algorithms()["rangelist"]
	for _, n := range []uint64{1, 2, 15, 33, 65, 100, 257} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			got := redist.Product(fn(n))
			assert.Assert(t, got.Cmp(redist.Factorial(n)) == 0,
				"product at n=%d diverged from n!", n)
		})
	}
}

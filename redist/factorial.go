package redist

import "math/big"

// Factorial computes n! iteratively. 0! and 1! are 1.
func Factorial(n uint64) *big.Int {
	f := big.NewInt(1)
	for k := uint64(2); k <= n; k++ {
		f.Mul(f, new(big.Int).SetUint64(k))
	}
	return f
}

// Product multiplies out a value multiset. The redistribution walk only
// ever moves factors of two between slots, so for a balanced sequence of
// size n this equals Factorial(n).
func Product(values []uint64) *big.Int {
	p := big.NewInt(1)
	for _, v := range values {
		p.Mul(p, new(big.Int).SetUint64(v))
	}
	return p
}

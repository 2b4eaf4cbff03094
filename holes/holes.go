// Package holes tracks, over a universe of small positive integer keys, the
// smallest key not yet bound to a value (the "hole") and the smallest bound
// value, under a stream of insert and overwrite operations.
//
// This is the sparse rendering of the balanced sequence: a key with no
// binding implicitly holds its own value, so only perturbed slots cost any
// memory. The hole advances monotonically and each integer is skipped past
// at most once, which makes hole maintenance amortized O(1) over a whole
// run.
//
// Two tracker variants share the contract. Tracker backs the minimum with a
// plain heap and pays a full drain-and-rebuild whenever an existing key is
// rebound, because the heap has no addressable delete. IndexedTracker keys
// heap slots by a lookup map and updates in place.
package holes

// Min is the result of a minimum query. When Present is false the smallest
// effective value in the universe is the hole itself: Key and Value both
// report the smallest unbound key. When Present is true the smallest bound
// value wins and Key reports where it is stored.
//
// Either way, binding Key to 2*Value doubles the current minimum.
type Min struct {
	Key     uint64
	Value   uint64
	Present bool
}

// Minimizer is the tracker contract the driver consumes.
type Minimizer interface {
	// Add binds key to value, overwriting any previous binding.
	Add(key, value uint64)

	// Get reports the value bound to key, if any.
	Get(key uint64) (uint64, bool)

	// FindMin reports the hole when it is numerically smaller than every
	// bound value (or when nothing is bound), and the smallest bound
	// value otherwise.
	FindMin() Min

	// DoubleMin applies FindMin and doubles the winner in place.
	DoubleMin()

	// Sorted returns the effective values of keys 1..n in ascending
	// order, where an unbound key's effective value is the key itself.
	Sorted(n uint64) []uint64
}

package runs

/*

# Incrementally re-sorted sequences

This package maintains a dense array of positive integers under a stream of
single-position overwrites, and keeps a cheap answer to two questions at all
times: "which position holds the smallest value?" and "what is the fully
sorted sequence of current values?". The perturbation pattern it is built for
is narrow: one element is overwritten downward (halved), then the current
minimum is overwritten upward (doubled). There is no insertion or deletion,
only value overwrites at fixed positions.

The central idea is the *run partition*. A run is a maximal contiguous index
interval whose values, read in array order, are already non-decreasing. The
partition is kept as an ordered collection of runs such that concatenating
the runs in collection order yields the globally sorted sequence:

	values  1  2  3 10  5  6
	index   0  1  2  3  4  5

	runs    [0..2] [4..5] [3..3]
	sorted   1 2 3  5 6    10

The invariant is stronger than "each run is sorted": for consecutive runs A
then B in collection order, the last (largest) value of A must not exceed the
first (smallest) value of B. Equal values at a boundary are legal and never
force a split. The array starts as the identity sequence 1..n, so the initial
partition is a single run covering everything.

After an overwrite the partition is repaired locally rather than by
re-sorting. In the common case the new value is still consistent with its
neighbours and nothing structural happens at all. Otherwise the run
containing the written position is split around that position, the dislodged
value becomes a singleton run, and the singleton is re-inserted by value,
splitting at most one straddled run at a binary-searched boundary. Every
split strictly increases the run count, which is bounded by the array length,
so repair always terminates.

Four representations of the same contract live here, because the project
benchmarks which one scales best:

  - RangeList: the run collection is a plain ordered slice of run records.
  - LinkedRuns: the run collection is a doubly linked list of run nodes.
  - TreeRuns: the run collection is a B-tree ordered by live boundary values.
  - ShiftSeq: no runs at all; the backing array is kept fully sorted and
    every overwrite is repaired by a binary search plus a block shift. This
    is the O(n)-per-repair baseline the others are measured against.

Positions handed out by queries (MinIndex, Find) are valid only until the
next mutating call. Modify takes the expected current value and rejects the
write when it does not match, so a caller holding a stale position cannot
corrupt the structure.

ShiftSeq moves elements between positions, the run representations never do.
Callers that need identical position behaviour across representations must
locate elements by value (Find) rather than assuming stable indices.

*/

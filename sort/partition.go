package sort

import (
	"sort"

	"github.com/exascience/oddeven"
)

/*
A Partition is the half-open index range [Low, High) assigned to the
worker with the given ID.

The partitions of one sort are contiguous and cover [0, n) exactly
once. All partitions have size n / threads, except the last one, which
also absorbs the remainder. A partition may be empty when there are
more threads than elements.
*/
type Partition struct {
	ID, Low, High int
}

// Len returns the number of indices assigned to the partition.
func (p Partition) Len() int {
	return p.High - p.Low
}

/*
First returns the index at which the partition's sweeps start: Low,
advanced by one if it is even.

Every sweep visits odd indices only. In an even phase the odd index i
stands for the pair (i-1, i), in an odd phase for the pair (i, i+1).
Skipping an even Low therefore loses no pair, and every pair is owned
by the partition that contains its odd index.
*/
func (p Partition) First() int {
	if p.Low%2 == 0 {
		return p.Low + 1
	}
	return p.Low
}

/*
Bound returns the exclusive upper limit for the odd indices the
partition visits in the given phase of a sort of n elements.

In an even phase the pair (i-1, i) is always in range, so the bound is
High. In an odd phase the pair (i, i+1) needs i < n-1, which only
restricts the last partition, whose High is n.
*/
func (p Partition) Bound(phase, n int) int {
	if phase%2 != 0 && p.High > n-1 {
		return n - 1
	}
	return p.High
}

/*
Partitions divides [0, n) into one partition per thread.

Partitions returns an error wrapping oddeven.ErrInvalidDimension if
n <= 0 or threads <= 0.
*/
func Partitions(n, threads int) ([]Partition, error) {
	if err := oddeven.CheckDimensions(n, threads); err != nil {
		return nil, err
	}
	base := n / threads
	parts := make([]Partition, threads)
	for id := range parts {
		parts[id] = Partition{ID: id, Low: id * base, High: (id + 1) * base}
	}
	parts[threads-1].High = n
	return parts, nil
}

// sweep performs the compare-swaps of one phase for the odd indices in
// [first, bound), and returns the number of swaps.
func sweep(data sort.Interface, phase, first, bound int) (swaps int) {
	if phase%2 == 0 {
		for i := first; i < bound; i += 2 {
			if data.Less(i, i-1) {
				data.Swap(i-1, i)
				swaps++
			}
		}
		return
	}
	for i := first; i < bound; i += 2 {
		if data.Less(i+1, i) {
			data.Swap(i, i+1)
			swaps++
		}
	}
	return
}

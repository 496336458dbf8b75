package sort

import (
	"sort"

	"github.com/exascience/oddeven"
	"github.com/exascience/oddeven/parallel"
	"github.com/exascience/oddeven/sequential"
)

/*
ForkJoin sorts data in place with an odd-even transposition sort that
forks a parallel loop for every phase and joins it before the next
phase starts, instead of keeping a pool of workers in lock-step with a
barrier. The pairs of each phase are divided into the given number of
batches.

ForkJoin returns an error wrapping oddeven.ErrInvalidDimension if data
is empty or threads <= 0.
*/
func ForkJoin(data sort.Interface, threads int) error {
	return phased(data, threads, parallel.Range)
}

/*
Sequential sorts data in place with an odd-even transposition sort on
the calling goroutine. It performs the same compare-swaps as Sorter
and ForkJoin, and is meant as a reference for testing them.

Sequential returns an error wrapping oddeven.ErrInvalidDimension if
data is empty.
*/
func Sequential(data sort.Interface) error {
	return phased(data, 1, sequential.Range)
}

func phased(data sort.Interface, threads int, ranger func(low, high, n int, f func(low, high int))) error {
	n := data.Len()
	if err := oddeven.CheckDimensions(n, threads); err != nil {
		return err
	}
	for phase := 0; phase < n; phase++ {
		bound := n
		if phase%2 != 0 {
			bound = n - 1
		}
		// the odd indices below bound are 2k+1 for k in [0, bound/2)
		ranger(0, bound/2, threads, func(low, high int) {
			sweep(data, phase, 2*low+1, 2*high)
		})
	}
	return nil
}

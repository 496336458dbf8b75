/*
Package sort provides a parallel odd-even transposition sort.

The sort works on any sort.Interface in place. A fixed pool of
goroutines is started once per sort; each goroutine owns one contiguous
partition of the collection and all of them step through the phases of
the algorithm in lock-step, separated by a barrier. See Sorter for the
details, and ForkJoin and Sequential for variants that do not use a
barrier.
*/
package sort

import (
	"sort"

	"github.com/exascience/oddeven/parallel"
)

const isSortedGrainSize = 0x500

/*
IsSorted determines in parallel whether data is already sorted in
increasing order.

The Less method of data is invoked concurrently from several
goroutines, so it must not mutate shared state.
*/
func IsSorted(data sort.Interface) bool {
	size := data.Len()
	if size < isSortedGrainSize {
		return sort.IsSorted(data)
	}
	return parallel.RangeAnd(1, size, 0, func(low, high int) bool {
		for i := low; i < high; i++ {
			if data.Less(i, i-1) {
				return false
			}
		}
		return true
	})
}

/*
IntSlice attaches the methods of sort.Interface to []int, sorting in
increasing order.
*/
type IntSlice []int

func (s IntSlice) Len() int {
	return len(s)
}

func (s IntSlice) Less(i, j int) bool {
	return s[i] < s[j]
}

func (s IntSlice) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
}

/*
IntsAreSorted determines in parallel whether a slice of ints is
already sorted in increasing order.
*/
func IntsAreSorted(a []int) bool {
	return IsSorted(IntSlice(a))
}

/*
Float64Slice attaches the methods of sort.Interface to []float64,
sorting in increasing order.
*/
type Float64Slice []float64

func (s Float64Slice) Len() int {
	return len(s)
}

func (s Float64Slice) Less(i, j int) bool {
	return s[i] < s[j]
}

func (s Float64Slice) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
}

/*
Float64sAreSorted determines in parallel whether a slice of float64s
is already sorted in increasing order.
*/
func Float64sAreSorted(a []float64) bool {
	return IsSorted(Float64Slice(a))
}

/*
StringSlice attaches the methods of sort.Interface to []string,
sorting in increasing order.
*/
type StringSlice []string

func (s StringSlice) Len() int {
	return len(s)
}

func (s StringSlice) Less(i, j int) bool {
	return s[i] < s[j]
}

func (s StringSlice) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
}

/*
StringsAreSorted determines in parallel whether a slice of strings is
already sorted in increasing order.
*/
func StringsAreSorted(a []string) bool {
	return IsSorted(StringSlice(a))
}

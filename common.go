package oddeven

import (
	"errors"
	"fmt"
	"runtime"
)

// ErrInvalidDimension is returned when a list length or a thread count is
// not positive. It is always reported before any goroutine is started.
var ErrInvalidDimension = errors.New("invalid dimension")

/*
CheckDimensions verifies that a list of length n can be sorted by the
given number of threads.

Both n and threads must be >= 1. A thread count larger than n is
permitted: the surplus threads receive empty partitions and only take
part in the barrier. The returned error wraps ErrInvalidDimension.
*/
func CheckDimensions(n, threads int) error {
	switch {
	case n <= 0:
		return fmt.Errorf("%w: list length %v must be positive", ErrInvalidDimension, n)
	case threads <= 0:
		return fmt.Errorf("%w: thread count %v must be positive", ErrInvalidDimension, threads)
	}
	return nil
}

/*
DefaultThreads returns the thread count used when none is specified,
which is runtime.GOMAXPROCS(0).
*/
func DefaultThreads() int {
	return runtime.GOMAXPROCS(0)
}

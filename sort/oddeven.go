package sort

import (
	"sort"
	"sync"

	"github.com/rs/zerolog"

	"github.com/exascience/oddeven/internal"
	psync "github.com/exascience/oddeven/sync"
)

// An Option configures a Sorter.
type Option func(*Sorter)

// WithLogger sets the logger a Sorter reports each run to, at debug level.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Sorter) {
		s.logger = logger
	}
}

/*
A Sorter sorts collections with a parallel odd-even transposition sort
on a fixed number of threads.

For a collection of n elements, Run starts exactly one goroutine per
thread, assigns each the partition computed by Partitions, and runs n
phases. In each phase every worker performs the compare-swaps of its
partition and then enters a shared barrier. The barrier's generation
is the phase counter: the last worker to arrive advances it, and every
worker starts the next sweep with the same phase value. No worker
starts phase p+1 before all workers have finished phase p. After n
phases the collection is sorted.

Workers modify data concurrently, but never the same index within one
phase, so the Less and Swap methods of data need no locking as long as
they only touch the elements at the given indices.

The zero Sorter is not valid; use New.
*/
type Sorter struct {
	threads int
	logger  zerolog.Logger
}

// New returns a Sorter that uses the given number of threads. The thread
// count is validated when sorting.
func New(threads int, options ...Option) *Sorter {
	s := &Sorter{threads: threads, logger: zerolog.Nop()}
	for _, option := range options {
		option(s)
	}
	return s
}

// Threads returns the number of threads the sorter starts per run.
func (s *Sorter) Threads() int {
	return s.threads
}

// Stats describes a completed run.
type Stats struct {
	// Phases is the number of phases executed, which equals the number
	// of elements.
	Phases int
	// Swaps is the total number of swaps performed by all workers.
	Swaps int
	// Partitions lists the partition of each worker.
	Partitions []Partition
}

// worker is the state handed to one goroutine of a run.
type worker struct {
	Partition
	n       int
	data    sort.Interface
	barrier *psync.Barrier
	swaps   int
}

func (w *worker) run() {
	phase, ok := w.barrier.Generation(), true
	for ok && phase < uint64(w.n) {
		p := int(phase)
		w.swaps += sweep(w.data, p, w.First(), w.Bound(p, w.n))
		phase, ok = w.barrier.Enter()
	}
}

/*
Run sorts data in place and reports statistics about the run.

Run returns an error wrapping oddeven.ErrInvalidDimension, without
starting any goroutine, if data is empty or the sorter's thread count
is not positive.

If Less or Swap panics in one of the workers, the barrier is broken so
that the other workers stop at their next phase boundary, all workers
are joined, and Run panics with the left-most recovered panic value.
data is left in an unspecified order in that case.
*/
func (s *Sorter) Run(data sort.Interface) (Stats, error) {
	n := data.Len()
	parts, err := Partitions(n, s.threads)
	if err != nil {
		return Stats{}, err
	}
	s.logger.Debug().
		Int("n", n).
		Int("threads", len(parts)).
		Interface("partitions", parts).
		Msg("odd-even sort started")

	barrier := psync.NewBarrier(len(parts))
	workers := make([]worker, len(parts))
	panics := make([]interface{}, len(parts))
	var wg sync.WaitGroup
	wg.Add(len(parts))
	for i, part := range parts {
		workers[i] = worker{Partition: part, n: n, data: data, barrier: barrier}
		go func(w *worker, p *interface{}) {
			defer func() {
				if r := recover(); r != nil {
					*p = internal.WrapPanic(r)
					barrier.Break()
				}
				wg.Done()
			}()
			w.run()
		}(&workers[i], &panics[i])
	}
	wg.Wait()
	if p := internal.FirstPanic(panics); p != nil {
		panic(p)
	}

	stats := Stats{Phases: int(barrier.Generation()), Partitions: parts}
	for i := range workers {
		stats.Swaps += workers[i].swaps
	}
	s.logger.Debug().
		Int("phases", stats.Phases).
		Int("swaps", stats.Swaps).
		Msg("odd-even sort finished")
	return stats, nil
}

// Sort sorts data in place. See Run.
func (s *Sorter) Sort(data sort.Interface) error {
	_, err := s.Run(data)
	return err
}

/*
Sort sorts data in place with a parallel odd-even transposition sort
on the given number of threads.

It returns an error wrapping oddeven.ErrInvalidDimension if data is
empty or threads <= 0.
*/
func Sort(data sort.Interface, threads int) error {
	return New(threads).Sort(data)
}

// Ints sorts a slice of ints in increasing order. See Sort.
func Ints(a []int, threads int) error {
	return Sort(IntSlice(a), threads)
}

// Float64s sorts a slice of float64s in increasing order. See Sort.
func Float64s(a []float64, threads int) error {
	return Sort(Float64Slice(a), threads)
}

// Strings sorts a slice of strings in increasing order. See Sort.
func Strings(a []string, threads int) error {
	return Sort(StringSlice(a), threads)
}

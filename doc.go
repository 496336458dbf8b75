// Package oddeven provides a shared-memory parallel odd-even transposition
// sort. A fixed pool of goroutines sorts one slice in place, each goroutine
// owning a contiguous partition, and all of them advance in lock-step from
// one phase to the next through a reusable barrier.
//
// Oddeven provides the following subpackages:
//
// oddeven/sort provides the partitioner, the barrier-driven sort engine, a
// fork/join variant that joins after every phase instead of using a barrier,
// and a sequential reference implementation.
//
// oddeven/sync provides the generation-counting barrier the engine uses to
// keep its workers in phase.
//
// oddeven/parallel provides fork/join helpers for executing range functions
// and range predicates in parallel, and oddeven/sequential provides their
// sequential counterparts for testing and debugging.
//
// oddeven/list provides the input and output collaborators of the command
// line tool: list generation, reading, and printing.
//
// The command in cmd/oddeven sorts a generated or user-supplied list and
// reports the time taken.
package oddeven

/*
Package sync provides synchronization primitives for groups of
goroutines that cooperate on a parallel algorithm in lock-step, as a
complement to the sync package of Go's standard library. So far, this
package only provides a reusable barrier.
*/
package sync

import (
	"fmt"
	"sync"
)

/*
A Barrier is a reusable rendezvous point for a fixed number of
parties.

Each call to Enter blocks until all parties have called Enter for the
current generation, and then releases all of them together. The last
party to arrive resets the arrival count and advances the generation,
which starts at 0. Waiters compare the generation they arrived in
against the current one, so a party that arrives after a reset belongs
to the next generation and is not released by the previous broadcast.

Exactly Parties() goroutines must call Enter once per generation. If a
party stops calling Enter, the remaining parties block forever; this is
a contract violation of the caller and is not detected. A party that
has to leave early, for example because it panicked, should call Break
instead, so that the other parties are released.

A Barrier must be created with NewBarrier and must not be copied after
first use.
*/
type Barrier struct {
	mu   sync.Mutex
	cond *sync.Cond

	parties    int
	arrived    int
	generation uint64
	broken     bool
}

// NewBarrier creates a barrier for the given number of parties.
//
// NewBarrier panics if parties < 1.
func NewBarrier(parties int) *Barrier {
	if parties < 1 {
		panic(fmt.Sprintf("invalid number of barrier parties: %v", parties))
	}
	b := &Barrier{parties: parties}
	b.cond = sync.NewCond(&b.mu)
	return b
}

// Parties returns the number of parties the barrier waits for.
func (b *Barrier) Parties() int {
	return b.parties
}

// Generation returns the number of times the barrier has released its
// parties so far.
func (b *Barrier) Generation() uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.generation
}

/*
Enter blocks until all parties have entered the barrier for the
current generation.

On release, Enter returns the new generation, which is the same value
for every party of a rendezvous, and ok == true. If the barrier is or
becomes broken before the current generation is released, Enter
returns the generation the caller arrived in and ok == false.
*/
func (b *Barrier) Enter() (generation uint64, ok bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	arrival := b.generation
	if b.broken {
		return arrival, false
	}
	b.arrived++
	if b.arrived == b.parties {
		b.arrived = 0
		b.generation++
		b.cond.Broadcast()
		return b.generation, true
	}
	for b.generation == arrival && !b.broken {
		b.cond.Wait()
	}
	if b.generation == arrival {
		return arrival, false
	}
	return arrival + 1, true
}

/*
Break marks the barrier as broken and releases all parties currently
blocked in Enter. Subsequent calls to Enter return immediately with
ok == false. A rendezvous that was already released before Break is
not affected.
*/
func (b *Barrier) Break() {
	b.mu.Lock()
	b.broken = true
	b.mu.Unlock()
	b.cond.Broadcast()
}

// Broken reports whether Break has been called.
func (b *Barrier) Broken() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.broken
}

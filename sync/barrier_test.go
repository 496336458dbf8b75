package sync

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBarrierPanics(t *testing.T) {
	require.Panics(t, func() { NewBarrier(0) })
	require.Panics(t, func() { NewBarrier(-2) })
}

func TestBarrierSingleParty(t *testing.T) {
	b := NewBarrier(1)
	for want := uint64(1); want <= 5; want++ {
		gen, ok := b.Enter()
		require.True(t, ok)
		require.Equal(t, want, gen)
	}
	assert.Equal(t, uint64(5), b.Generation())
}

func TestBarrierLockStep(t *testing.T) {
	const (
		parties = 8
		rounds  = 200
	)
	b := NewBarrier(parties)
	var arrivals int64
	var wg sync.WaitGroup
	errs := make(chan string, parties*rounds)
	wg.Add(parties)
	for p := 0; p < parties; p++ {
		go func() {
			defer wg.Done()
			for round := 1; round <= rounds; round++ {
				atomic.AddInt64(&arrivals, 1)
				gen, ok := b.Enter()
				if !ok {
					errs <- "barrier broken"
					return
				}
				if gen != uint64(2*round-1) {
					errs <- "party released into the wrong generation"
				}
				// no party may be released before every party has arrived
				if got := atomic.LoadInt64(&arrivals); got < int64(round*parties) {
					errs <- "party released early"
				}
				// and no party may run ahead into the round after next
				b.Enter()
			}
		}()
	}
	wg.Wait()
	close(errs)
	for e := range errs {
		t.Fatal(e)
	}
	assert.Equal(t, uint64(2*rounds), b.Generation())
}

func TestBarrierBlocksUntilAllArrive(t *testing.T) {
	b := NewBarrier(2)
	released := make(chan uint64)
	go func() {
		gen, _ := b.Enter()
		released <- gen
	}()
	select {
	case <-released:
		t.Fatal("barrier released with one of two parties")
	case <-time.After(20 * time.Millisecond):
	}
	gen, ok := b.Enter()
	require.True(t, ok)
	assert.Equal(t, uint64(1), gen)
	assert.Equal(t, uint64(1), <-released)
}

func TestBarrierBreak(t *testing.T) {
	b := NewBarrier(3)
	results := make(chan bool, 2)
	for i := 0; i < 2; i++ {
		go func() {
			_, ok := b.Enter()
			results <- ok
		}()
	}
	// wait for both parties to block
	require.Eventually(t, func() bool {
		b.mu.Lock()
		defer b.mu.Unlock()
		return b.arrived == 2
	}, time.Second, time.Millisecond)

	b.Break()
	assert.False(t, <-results)
	assert.False(t, <-results)
	assert.True(t, b.Broken())

	gen, ok := b.Enter()
	assert.False(t, ok)
	assert.Equal(t, uint64(0), gen)
}

func TestBarrierBreakAfterRelease(t *testing.T) {
	b := NewBarrier(2)
	done := make(chan bool)
	go func() {
		_, ok := b.Enter()
		done <- ok
	}()
	_, ok := b.Enter()
	require.True(t, ok)
	b.Break()
	assert.True(t, <-done, "a released rendezvous must not be reported as broken")
}

func BenchmarkBarrier(b *testing.B) {
	for _, parties := range []int{2, 4, 8} {
		b.Run(fmt.Sprintf("parties=%d", parties), func(b *testing.B) {
			bar := NewBarrier(parties)
			var wg sync.WaitGroup
			wg.Add(parties)
			b.ResetTimer()
			for p := 0; p < parties; p++ {
				go func() {
					defer wg.Done()
					for i := 0; i < b.N; i++ {
						bar.Enter()
					}
				}()
			}
			wg.Wait()
		})
	}
}

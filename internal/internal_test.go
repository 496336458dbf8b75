package internal

import (
	"errors"
	"runtime"
	"strings"
	"testing"
)

func TestComputeNofBatches(t *testing.T) {
	for _, tc := range []struct {
		low, high, n, want int
	}{
		{0, 0, 4, 1},
		{0, 10, 4, 4},
		{0, 3, 8, 3},
		{5, 6, 2, 1},
	} {
		if got := ComputeNofBatches(tc.low, tc.high, tc.n); got != tc.want {
			t.Errorf("ComputeNofBatches(%v, %v, %v) = %v, want %v", tc.low, tc.high, tc.n, got, tc.want)
		}
	}
	if got := ComputeNofBatches(0, 1<<20, 0); got != 2*runtime.GOMAXPROCS(0) {
		t.Errorf("default batch count = %v, want %v", got, 2*runtime.GOMAXPROCS(0))
	}
}

func TestComputeNofBatchesPanics(t *testing.T) {
	for _, tc := range []struct{ low, high, n int }{
		{4, 2, 1},
		{0, 10, -1},
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("ComputeNofBatches(%v, %v, %v) did not panic", tc.low, tc.high, tc.n)
				}
			}()
			ComputeNofBatches(tc.low, tc.high, tc.n)
		}()
	}
}

func TestWrapPanic(t *testing.T) {
	if WrapPanic(nil) != nil {
		t.Error("WrapPanic(nil) should be nil")
	}
	s, ok := WrapPanic("boom").(string)
	if !ok || !strings.HasPrefix(s, "boom\n") {
		t.Errorf("unexpected wrapped string panic %q", s)
	}
	err, ok := WrapPanic(errors.New("bad")).(error)
	if !ok || !strings.HasPrefix(err.Error(), "bad\n") {
		t.Errorf("unexpected wrapped error panic %v", err)
	}
	var rerr runtime.Error
	func() {
		defer func() {
			rerr, _ = WrapPanic(recover()).(runtime.Error)
		}()
		var a []int
		_ = a[len(a)]
	}()
	if rerr == nil {
		t.Error("wrapped runtime error lost its runtime.Error type")
	}
}

func TestFirstPanic(t *testing.T) {
	if FirstPanic(nil) != nil {
		t.Error("FirstPanic(nil) should be nil")
	}
	if p := FirstPanic([]interface{}{nil, "a", "b"}); p != "a" {
		t.Errorf("FirstPanic = %v, want a", p)
	}
}

package nav

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestDebouncerFiresAfterDelay(t *testing.T) {
	d := NewDebouncer(30 * time.Millisecond)
	defer d.Stop()

	var fired atomic.Int32
	d.Call(func() { fired.Add(1) })

	if got := fired.Load(); got != 0 {
		t.Fatalf("fired %d times immediately, want 0", got)
	}

	time.Sleep(100 * time.Millisecond)
	if got := fired.Load(); got != 1 {
		t.Errorf("fired %d times after delay, want 1", got)
	}
}

func TestDebouncerReplacesPending(t *testing.T) {
	d := NewDebouncer(40 * time.Millisecond)
	defer d.Stop()

	var first, second atomic.Int32
	d.Call(func() { first.Add(1) })
	time.Sleep(10 * time.Millisecond)
	d.Call(func() { second.Add(1) })

	time.Sleep(120 * time.Millisecond)

	if got := first.Load(); got != 0 {
		t.Errorf("replaced call fired %d times, want 0", got)
	}
	if got := second.Load(); got != 1 {
		t.Errorf("latest call fired %d times, want 1", got)
	}
}

func TestDebouncerStop(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)

	var fired atomic.Int32
	d.Call(func() { fired.Add(1) })
	d.Stop()

	time.Sleep(80 * time.Millisecond)
	if got := fired.Load(); got != 0 {
		t.Errorf("fired %d times after Stop, want 0", got)
	}

	// Stop with nothing pending is harmless.
	d.Stop()
}

package effect

import (
	"testing"
	"time"
)

func TestTimelineFiresInTimeOrder(t *testing.T) {
	tl := NewTimeline()
	var order []string
	tl.After(30*time.Millisecond, func() { order = append(order, "c") })
	tl.After(10*time.Millisecond, func() { order = append(order, "a") })
	tl.After(20*time.Millisecond, func() { order = append(order, "b") })

	tl.Advance(50 * time.Millisecond)

	if got := len(order); got != 3 {
		t.Fatalf("expected 3 events, got %d", got)
	}
	if order[0] != "a" || order[1] != "b" || order[2] != "c" {
		t.Fatalf("events fired out of order: %v", order)
	}
}

func TestTimelineChainedSchedulingDoesNotDrift(t *testing.T) {
	tl := NewTimeline()
	var fired time.Duration
	tl.After(10*time.Millisecond, func() {
		tl.After(10*time.Millisecond, func() {
			fired = tl.Now()
		})
	})

	tl.Advance(100 * time.Millisecond)

	if fired != 20*time.Millisecond {
		t.Fatalf("chained event fired at %v, want 20ms", fired)
	}
}

func TestTimelineEqualDueFiresInSchedulingOrder(t *testing.T) {
	tl := NewTimeline()
	var order []int
	for i := 0; i < 5; i++ {
		n := i
		tl.After(10*time.Millisecond, func() { order = append(order, n) })
	}
	tl.Advance(10 * time.Millisecond)
	for i, n := range order {
		if n != i {
			t.Fatalf("tie-break broken: %v", order)
		}
	}
}

func TestTickerStops(t *testing.T) {
	tl := NewTimeline()
	count := 0
	tk := tl.Every(10*time.Millisecond, func() { count++ })

	tl.Advance(35 * time.Millisecond)
	if count != 3 {
		t.Fatalf("expected 3 ticks, got %d", count)
	}

	tk.Stop()
	tl.Advance(100 * time.Millisecond)
	if count != 3 {
		t.Fatalf("ticker fired after Stop: %d", count)
	}
}

func TestAnimateCompletesOnce(t *testing.T) {
	tl := NewTimeline()
	var last float64
	doneCount := 0
	tl.Animate(40*time.Millisecond, Linear, func(p float64) { last = p }, func() { doneCount++ })

	tl.Advance(20 * time.Millisecond)
	if last != 0.5 {
		t.Fatalf("expected progress 0.5 mid-tween, got %v", last)
	}
	tl.Advance(40 * time.Millisecond)
	tl.Advance(40 * time.Millisecond)
	if last != 1 {
		t.Fatalf("expected final progress 1, got %v", last)
	}
	if doneCount != 1 {
		t.Fatalf("done fired %d times, want exactly once", doneCount)
	}
}

func TestAnimateZeroDurationAppliesImmediately(t *testing.T) {
	tl := NewTimeline()
	var last float64
	done := false
	tl.Animate(0, nil, func(p float64) { last = p }, func() { done = true })
	if last != 1 || !done {
		t.Fatalf("zero-duration tween should complete synchronously (p=%v done=%v)", last, done)
	}
}

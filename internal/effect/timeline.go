// Package effect implements the text animation engine: splitting text into
// character cells, shine pulses, and scramble reveal/sweep sessions. All
// timing runs on a single Timeline owned by the composition root; nothing in
// this package starts goroutines or OS timers.
package effect

import (
	"math"
	"sort"
	"time"
)

// Timeline is a deterministic scheduler. One-shot events, repeating tickers
// and tweens are all driven by Advance, which the UI calls once per frame.
type Timeline struct {
	now    time.Duration
	seq    int
	events []*event
	tweens []*tween
}

type event struct {
	due time.Duration
	seq int
	fn  func()
}

type tween struct {
	start    time.Duration
	duration time.Duration
	ease     Easing
	apply    func(progress float64)
	done     func()
}

// Easing maps linear progress (0..1) to eased progress.
type Easing func(p float64) float64

// Linear is the identity easing.
func Linear(p float64) float64 { return p }

// EaseOutCubic decelerates toward the end of the animation.
func EaseOutCubic(p float64) float64 {
	q := 1 - p
	return 1 - q*q*q
}

// EaseInOutSine accelerates then decelerates symmetrically.
func EaseInOutSine(p float64) float64 {
	return -(math.Cos(math.Pi*p) - 1) / 2
}

// NewTimeline returns an empty timeline positioned at zero.
func NewTimeline() *Timeline {
	return &Timeline{}
}

// Now returns the timeline's current position.
func (t *Timeline) Now() time.Duration { return t.now }

// After schedules fn once, d after the timeline's current position.
// Non-positive delays fire on the next Advance. Events scheduled with equal
// due times fire in scheduling order.
func (t *Timeline) After(d time.Duration, fn func()) {
	t.seq++
	t.events = append(t.events, &event{due: t.now + d, seq: t.seq, fn: fn})
}

// Ticker is the cancel handle for a repeating event.
type Ticker struct {
	stopped bool
}

// Stop cancels all future firings. Safe to call more than once.
func (tk *Ticker) Stop() { tk.stopped = true }

// Every schedules fn to run repeatedly, first firing interval from now.
// The returned Ticker stops the repetition.
func (t *Timeline) Every(interval time.Duration, fn func()) *Ticker {
	tk := &Ticker{}
	var loop func()
	loop = func() {
		if tk.stopped {
			return
		}
		fn()
		t.After(interval, loop)
	}
	t.After(interval, loop)
	return tk
}

// Animate starts a tween from the timeline's current position. apply is
// called with eased progress on every Advance that overlaps the tween's
// window, always ending with progress 1. done, if non-nil, fires exactly
// once after the final apply.
func (t *Timeline) Animate(duration time.Duration, ease Easing, apply func(progress float64), done func()) {
	if ease == nil {
		ease = Linear
	}
	if duration <= 0 {
		apply(1)
		if done != nil {
			done()
		}
		return
	}
	t.tweens = append(t.tweens, &tween{
		start:    t.now,
		duration: duration,
		ease:     ease,
		apply:    apply,
		done:     done,
	})
}

// Advance moves the timeline forward by dt, firing due events in time order.
// Callbacks that schedule further work observe the timeline positioned at
// their own due time, so relative delays chain without drift.
func (t *Timeline) Advance(dt time.Duration) {
	target := t.now + dt
	for {
		next := t.nextDue(target)
		if next == nil {
			break
		}
		t.now = next.due
		if t.now < target {
			// keep tweens in step with mid-frame events
			t.stepTweens()
		}
		next.fn()
	}
	t.now = target
	t.stepTweens()
}

// nextDue removes and returns the earliest pending event due at or before
// limit, preferring scheduling order on ties.
func (t *Timeline) nextDue(limit time.Duration) *event {
	best := -1
	for i, e := range t.events {
		if e.due > limit {
			continue
		}
		if best == -1 || e.due < t.events[best].due ||
			(e.due == t.events[best].due && e.seq < t.events[best].seq) {
			best = i
		}
	}
	if best == -1 {
		return nil
	}
	e := t.events[best]
	t.events = append(t.events[:best], t.events[best+1:]...)
	return e
}

func (t *Timeline) stepTweens() {
	var finished []*tween
	remaining := t.tweens[:0]
	for _, tw := range t.tweens {
		elapsed := t.now - tw.start
		if elapsed >= tw.duration {
			tw.apply(tw.ease(1))
			finished = append(finished, tw)
			continue
		}
		p := float64(elapsed) / float64(tw.duration)
		if p < 0 {
			p = 0
		}
		tw.apply(tw.ease(p))
		remaining = append(remaining, tw)
	}
	t.tweens = remaining
	sort.SliceStable(finished, func(i, j int) bool { return finished[i].start < finished[j].start })
	for _, tw := range finished {
		if tw.done != nil {
			tw.done()
		}
	}
}

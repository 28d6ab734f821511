package effect

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// decoyGlyphs is the fixed set decoy runes are drawn from. A glyph is
// chosen per show event, not per prepare, so decoys re-randomize on every
// sweep pass.
const decoyGlyphs = "##·$%&/=€|()@+09*+]}{["

var decoyRunes = []rune(decoyGlyphs)

func randomDecoy() rune {
	return decoyRunes[rand.Intn(len(decoyRunes))]
}

// Prepare deals fakeCount decoy slots to every cell of the fragment. Cells
// keep their real rune and stay revealed until a reveal or sweep session
// starts. Calling Prepare again simply re-deals the decoys.
func Prepare(f *Fragment, fakeCount int) {
	for _, c := range f.cells {
		c.Fakes = make([]rune, fakeCount)
		for i := range c.Fakes {
			c.Fakes[i] = randomDecoy()
		}
		c.FakeOn = -1
	}
}

// RevealOptions times a left-to-right scramble reveal. No bounds are
// enforced; zero and negative durations pass straight to the timeline.
type RevealOptions struct {
	StartDelay     time.Duration
	CharStagger    time.Duration // per-cell delay increment
	FakeDuration   time.Duration // how long each decoy stays visible
	FakeStagger    time.Duration // delay between decoys within a cell
	RevealDuration time.Duration // fade of the real rune
}

// Reveal hides every cell immediately, then runs a staggered decoy cycle
// per cell and fades the real rune in. Cell i's cycle starts at
// StartDelay + i*CharStagger, so start offsets never decrease across the
// fragment.
func Reveal(tl *Timeline, f *Fragment, opts RevealOptions) {
	for i, c := range f.cells {
		c.State = StateHidden
		c.Opacity = 0
		base := opts.StartDelay + time.Duration(i)*opts.CharStagger
		scheduleCycle(tl, c, base, opts.FakeDuration, opts.FakeStagger, nil, nil)
		fadeAt := base + cycleLength(len(c.Fakes), opts.FakeDuration, opts.FakeStagger)
		cell := c
		tl.After(fadeAt, func() {
			cell.State = StateRevealed
			tl.Animate(opts.RevealDuration, EaseOutCubic, func(p float64) {
				cell.Opacity = p
			}, nil)
		})
	}
}

// SweepOptions times a sweep pass. The shape matches RevealOptions minus
// the fade: sweeps restore the real rune at full opacity.
type SweepOptions struct {
	StartDelay   time.Duration
	CharStagger  time.Duration
	FakeDuration time.Duration
	FakeStagger  time.Duration
}

// Session identifies one in-flight sweep. Cancel suppresses the transform
// callbacks on events that have not fired yet; the visibility toggles are
// already on the timeline and still run to completion.
type Session struct {
	ID       string
	canceled *bool
}

// Cancel stops future transform callbacks for this session.
func (s *Session) Cancel() {
	*s.canceled = true
}

// Canceled reports whether Cancel has been called.
func (s *Session) Canceled() bool { return *s.canceled }

// Sweep runs a decoy cycle over every cell in order, swapping in the
// corresponding rune of newChars (when provided) while the cell is hidden.
// Every cell is re-swept even when its rune is unchanged. transform, if
// non-nil, runs against each cell after its real rune is restored, unless
// the session has been canceled by then.
func Sweep(tl *Timeline, f *Fragment, newChars []rune, opts SweepOptions, transform func(*Cell)) *Session {
	canceled := false
	s := &Session{ID: uuid.NewString(), canceled: &canceled}
	for i, c := range f.cells {
		base := opts.StartDelay + time.Duration(i)*opts.CharStagger
		cell := c
		var next rune
		if i < len(newChars) {
			next = newChars[i]
		}
		tl.After(base, func() {
			cell.State = StateHidden
			if next != 0 {
				cell.Real = next
			}
		})
		scheduleCycle(tl, cell, base, opts.FakeDuration, opts.FakeStagger, s, transform)
		restoreAt := base + cycleLength(len(c.Fakes), opts.FakeDuration, opts.FakeStagger)
		tl.After(restoreAt, func() {
			cell.State = StateRevealed
			cell.Opacity = 1
			if transform != nil && !canceled {
				transform(cell)
			}
		})
	}
	return s
}

// scheduleCycle flashes each decoy of the cell in turn starting at base.
// Decoy runes are re-dealt at show time. During a sweep the session's
// transform also styles each freshly dealt decoy, subject to cancellation.
func scheduleCycle(tl *Timeline, c *Cell, base, fakeDuration, fakeStagger time.Duration, s *Session, transform func(*Cell)) {
	for j := range c.Fakes {
		idx := j
		showAt := base + time.Duration(j)*fakeStagger
		tl.After(showAt, func() {
			c.Fakes[idx] = randomDecoy()
			c.State = StateCycling
			c.FakeOn = idx
			c.Opacity = 1
			if transform != nil && s != nil && !s.Canceled() {
				transform(c)
			}
		})
		tl.After(showAt+fakeDuration, func() {
			if c.FakeOn == idx {
				c.FakeOn = -1
				if c.State == StateCycling {
					c.State = StateHidden
				}
			}
		})
	}
}

// cycleLength is the span of a full decoy cycle for n fakes.
func cycleLength(n int, fakeDuration, fakeStagger time.Duration) time.Duration {
	if n == 0 {
		return fakeDuration
	}
	return time.Duration(n-1)*fakeStagger + fakeDuration
}

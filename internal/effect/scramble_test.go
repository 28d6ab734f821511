package effect

import (
	"strings"
	"testing"
	"time"
)

var testReveal = RevealOptions{
	StartDelay:     50 * time.Millisecond,
	CharStagger:    20 * time.Millisecond,
	FakeDuration:   30 * time.Millisecond,
	FakeStagger:    40 * time.Millisecond,
	RevealDuration: 100 * time.Millisecond,
}

var testSweep = SweepOptions{
	CharStagger:  20 * time.Millisecond,
	FakeDuration: 30 * time.Millisecond,
	FakeStagger:  40 * time.Millisecond,
}

// long enough for any session built from the options above to finish
const settle = 5 * time.Second

func TestPrepareDealsFakes(t *testing.T) {
	f := Split("hello world")
	Prepare(f, 3)
	for i, c := range f.Cells() {
		if len(c.Fakes) != 3 {
			t.Fatalf("cell %d has %d fakes, want 3", i, len(c.Fakes))
		}
		if c.Real == 0 {
			t.Fatalf("cell %d lost its real rune", i)
		}
	}
	if f.Chars() != "helloworld" {
		t.Fatalf("prepare must preserve content, got %q", f.Chars())
	}
}

func TestDecoysComeFromFixedSet(t *testing.T) {
	f := Split("portfolio")
	Prepare(f, 2)
	tl := NewTimeline()
	Sweep(tl, f, nil, testSweep, nil)
	for step := 0; step < 500; step++ {
		tl.Advance(10 * time.Millisecond)
		for _, c := range f.Cells() {
			for _, fake := range c.Fakes {
				if !strings.ContainsRune(decoyGlyphs, fake) {
					t.Fatalf("decoy %q not in glyph set", fake)
				}
			}
		}
	}
}

func TestRevealRestoresOriginalText(t *testing.T) {
	f := Split("jordan baker")
	Prepare(f, 2)
	tl := NewTimeline()
	Reveal(tl, f, testReveal)

	// mid-flight the real runes are hidden or cycling
	tl.Advance(60 * time.Millisecond)
	if f.Cells()[0].State == StateRevealed && f.Cells()[0].Opacity == 1 {
		t.Fatalf("first cell fully revealed too early")
	}

	tl.Advance(settle)
	if f.Chars() != "jordanbaker" {
		t.Fatalf("Chars() after reveal = %q, want %q", f.Chars(), "jordanbaker")
	}
	for i, c := range f.Cells() {
		if c.State != StateRevealed {
			t.Fatalf("cell %d stuck in state %d", i, c.State)
		}
		if c.Opacity != 1 {
			t.Fatalf("cell %d opacity %v, want 1", i, c.Opacity)
		}
	}
}

func TestRevealStartOffsetsNonDecreasing(t *testing.T) {
	f := Split("abc")
	Prepare(f, 1)
	tl := NewTimeline()
	Reveal(tl, f, testReveal)

	var revealedAt []time.Duration
	for tl.Now() < settle {
		tl.Advance(5 * time.Millisecond)
		for i, c := range f.Cells() {
			if len(revealedAt) == i && c.State == StateRevealed {
				revealedAt = append(revealedAt, tl.Now())
			}
		}
	}
	if len(revealedAt) != 3 {
		t.Fatalf("not all cells revealed: %v", revealedAt)
	}
	for i := 1; i < len(revealedAt); i++ {
		if revealedAt[i] < revealedAt[i-1] {
			t.Fatalf("cell %d revealed before cell %d: %v", i, i-1, revealedAt)
		}
	}
}

func TestSweepSwapsCharacters(t *testing.T) {
	f := Split("15:04:05")
	Prepare(f, 2)
	tl := NewTimeline()
	Sweep(tl, f, []rune("150406"), testSweep, nil)

	tl.Advance(settle)
	if f.Chars() != "150406" {
		t.Fatalf("Chars() after sweep = %q, want %q", f.Chars(), "150406")
	}
}

func TestSweepAlwaysResweepsUnchangedCells(t *testing.T) {
	f := Split("aa")
	Prepare(f, 1)
	tl := NewTimeline()
	Sweep(tl, f, []rune("aa"), testSweep, nil)

	cycled := false
	for tl.Now() < settle {
		tl.Advance(5 * time.Millisecond)
		if f.Cells()[1].State == StateCycling {
			cycled = true
		}
	}
	if !cycled {
		t.Fatalf("unchanged cell was skipped; every cell must re-sweep")
	}
}

func TestSweepCancelSuppressesTransformNotVisibility(t *testing.T) {
	f := Split("ab")
	Prepare(f, 1)
	tl := NewTimeline()

	transformed := 0
	s := Sweep(tl, f, nil, SweepOptions{
		CharStagger:  500 * time.Millisecond,
		FakeDuration: 30 * time.Millisecond,
		FakeStagger:  40 * time.Millisecond,
	}, func(c *Cell) {
		c.Color = "#ff0000"
		transformed++
	})

	// let the first cell finish, then cancel before the second starts
	tl.Advance(200 * time.Millisecond)
	firstTransforms := transformed
	if firstTransforms == 0 {
		t.Fatalf("first cell's transform should have fired before cancel")
	}
	s.Cancel()

	tl.Advance(settle)
	second := f.Cells()[1]
	if second.State != StateRevealed || second.Opacity != 1 {
		t.Fatalf("cancel must not retract visibility: state=%d opacity=%v", second.State, second.Opacity)
	}
	if transformed != firstTransforms {
		t.Fatalf("transform fired after cancel (%d -> %d)", firstTransforms, transformed)
	}
	if second.Color == "#ff0000" {
		t.Fatalf("canceled cell still got the transform color")
	}
}

func TestSweepSessionsHaveDistinctIDs(t *testing.T) {
	f := Split("ab")
	Prepare(f, 1)
	tl := NewTimeline()
	a := Sweep(tl, f, nil, testSweep, nil)
	b := Sweep(tl, f, nil, testSweep, nil)
	if a.ID == "" || a.ID == b.ID {
		t.Fatalf("sessions must carry distinct ids: %q vs %q", a.ID, b.ID)
	}
}

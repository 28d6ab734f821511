package effect

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// CellState tracks where a character cell sits in the scramble lifecycle.
// State lives here, in memory; rendering is a pure function of it.
type CellState int

const (
	// StateRevealed shows the real rune. Terminal state until a new
	// session restarts the cycle.
	StateRevealed CellState = iota
	// StateHidden shows nothing: real invisible, no fake visible.
	StateHidden
	// StateCycling flashes decoys while the real rune stays hidden. The
	// real rune may be swapped while in this state.
	StateCycling
)

// Cell is one animated character: a single real rune plus a fixed number of
// decoy runes that overlay it during scramble cycles. At most one decoy is
// visible at a time; the real rune shows only in StateRevealed.
type Cell struct {
	Real    rune
	Fakes   []rune
	State   CellState
	FakeOn  int     // index into Fakes, -1 when none is visible
	Opacity float64 // 0..1, applies to whichever rune is showing
	Color   string  // hex override for the visible rune, "" for palette text
}

// Palette carries the colors a fragment renders against. Opacity is a
// linear blend from Background toward the rune's color.
type Palette struct {
	Text       string // hex, e.g. "#f2f2f2"
	Background string // hex
}

func (c *Cell) render(pal Palette) string {
	var r rune
	switch c.State {
	case StateRevealed:
		r = c.Real
	case StateCycling:
		if c.FakeOn < 0 || c.FakeOn >= len(c.Fakes) {
			return " "
		}
		r = c.Fakes[c.FakeOn]
	default:
		return " "
	}
	fg := pal.Text
	if c.Color != "" {
		fg = c.Color
	}
	fg = BlendHex(pal.Background, fg, c.Opacity)
	return lipgloss.NewStyle().Foreground(lipgloss.Color(fg)).Render(string(r))
}

// BlendHex linearly interpolates two #rrggbb colors. t is clamped to 0..1;
// unparseable input falls back to the target color.
func BlendHex(from, to string, t float64) string {
	if t <= 0 {
		return from
	}
	if t >= 1 {
		return to
	}
	fr, fg, fb, okF := parseHex(from)
	tr, tg, tb, okT := parseHex(to)
	if !okF || !okT {
		return to
	}
	lerp := func(a, b int) int { return a + int(float64(b-a)*t) }
	return fmt.Sprintf("#%02x%02x%02x", lerp(fr, tr), lerp(fg, tg), lerp(fb, tb))
}

func parseHex(s string) (r, g, b int, ok bool) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return 0, 0, 0, false
	}
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil {
		return 0, 0, 0, false
	}
	return r, g, b, true
}

package effect

import (
	"strings"
	"unicode"
)

// Fragment is a run of text split into one Cell per non-whitespace rune.
// Whitespace is kept for layout but never gets a cell, so Chars on a
// fragment of "the work" yields "thework"; callers reconstructing the full
// string account for spaces themselves.
type Fragment struct {
	text  string
	cells []*Cell
}

// Split breaks text into character cells. Every cell starts revealed at
// full opacity.
func Split(text string) *Fragment {
	f := &Fragment{text: text}
	for _, r := range text {
		if unicode.IsSpace(r) {
			continue
		}
		f.cells = append(f.cells, &Cell{Real: r, FakeOn: -1, Opacity: 1})
	}
	return f
}

// Cells returns the fragment's cells in document order.
func (f *Fragment) Cells() []*Cell { return f.cells }

// Chars returns the currently displayed logical string: each cell's real
// rune in order, whitespace excluded.
func (f *Fragment) Chars() string {
	var b strings.Builder
	for _, c := range f.cells {
		b.WriteRune(c.Real)
	}
	return b.String()
}

// SetColor overrides the render color of every cell. An empty string resets
// to the palette text color.
func (f *Fragment) SetColor(hex string) {
	for _, c := range f.cells {
		c.Color = hex
	}
}

// SetOpacity sets every cell's opacity.
func (f *Fragment) SetOpacity(o float64) {
	for _, c := range f.cells {
		c.Opacity = o
	}
}

// Render walks the original text, emitting whitespace verbatim and the
// current cell render for everything else.
func (f *Fragment) Render(pal Palette) string {
	var b strings.Builder
	i := 0
	for _, r := range f.text {
		if unicode.IsSpace(r) {
			b.WriteRune(r)
			continue
		}
		if i < len(f.cells) {
			b.WriteString(f.cells[i].render(pal))
			i++
		}
	}
	return b.String()
}

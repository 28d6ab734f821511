package ui

import (
	"time"

	"github.com/charmbracelet/lipgloss"

	"folio/internal/effect"
)

const (
	showDuration = 400 * time.Millisecond
	hideDuration = 300 * time.Millisecond
)

// Page owns the content area's markup for one navigation. It is created
// per navigation and discarded on the next; its only state is the rendered
// markup and the current fade opacity.
//
// A page keeps two renders of the same markup: the fully styled one shown
// at rest, and a plain render used mid-fade, where the whole block is tinted
// by blending the foreground toward the background. Terminal cells have no
// alpha channel, so the fade approximates opacity with color.
type Page struct {
	styled  string
	plain   string
	opacity float64
}

// NewPage returns an empty, invisible page.
func NewPage() *Page {
	return &Page{}
}

// Create replaces the page's markup synchronously. No diffing: the old
// content is simply gone.
func (p *Page) Create(styled, plain string) {
	p.styled = styled
	p.plain = plain
}

// Show fades the page in over 0.4s, eased. done fires exactly once when
// the fade completes.
func (p *Page) Show(tl *effect.Timeline, done func()) {
	p.opacity = 0
	tl.Animate(showDuration, effect.EaseOutCubic, func(prog float64) {
		p.opacity = prog
	}, done)
}

// Hide fades the page out over 0.3s. done fires exactly once.
func (p *Page) Hide(tl *effect.Timeline, done func()) {
	start := p.opacity
	tl.Animate(hideDuration, effect.EaseOutCubic, func(prog float64) {
		p.opacity = start * (1 - prog)
	}, done)
}

// Opacity reports the current fade position.
func (p *Page) Opacity() float64 { return p.opacity }

// View renders the page at its current opacity.
func (p *Page) View(pal effect.Palette) string {
	switch {
	case p.opacity <= 0.001:
		return ""
	case p.opacity >= 0.999:
		return p.styled
	default:
		fg := effect.BlendHex(pal.Background, pal.Text, p.opacity)
		return lipgloss.NewStyle().Foreground(lipgloss.Color(fg)).Render(p.plain)
	}
}

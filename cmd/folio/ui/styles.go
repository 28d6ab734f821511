// Package ui implements the folio terminal front-end: navigation chrome,
// animated text, and page transitions on top of bubbletea.
package ui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"folio/internal/effect"
)

// Theme colors are plain hex strings so the effect engine can blend them
// for opacity; lipgloss wraps them at render time.
type Theme struct {
	Background string
	Foreground string
	Primary    string
	Accent     string
	Muted      string
	Border     string
	IsDark     bool
}

// LightTheme returns the light color scheme.
func LightTheme() Theme {
	return Theme{
		Background: "#f4f5f6",
		Foreground: "#101f38",
		Primary:    "#101f38",
		Accent:     "#e4572e",
		Muted:      "#8a8f98",
		Border:     "#dce0e5",
		IsDark:     false,
	}
}

// DarkTheme returns the dark color scheme.
func DarkTheme() Theme {
	return Theme{
		Background: "#141d2b",
		Foreground: "#f2f2f2",
		Primary:    "#f2f2f2",
		Accent:     "#ff6b35",
		Muted:      "#6b7280",
		Border:     "#2a3850",
		IsDark:     true,
	}
}

// DetectTheme picks a theme from the terminal environment. COLORFGBG is
// the usual "foreground;background" pair; low background indices mean a
// dark terminal. FOLIO_DARK_MODE=1 forces dark.
func DetectTheme() Theme {
	if colorTerm := os.Getenv("COLORFGBG"); colorTerm != "" {
		parts := strings.Split(colorTerm, ";")
		if len(parts) == 2 {
			if bgIdx, err := strconv.Atoi(parts[1]); err == nil {
				if (bgIdx >= 0 && bgIdx <= 6) || bgIdx == 8 {
					return DarkTheme()
				}
			}
		}
	}
	if os.Getenv("FOLIO_DARK_MODE") == "1" {
		return DarkTheme()
	}
	return LightTheme()
}

// ThemeByName resolves a configured theme name, falling back to detection.
func ThemeByName(name string) Theme {
	switch name {
	case "light":
		return LightTheme()
	case "dark":
		return DarkTheme()
	default:
		return DetectTheme()
	}
}

// Styles holds the styled components of the chrome.
type Styles struct {
	Theme Theme

	Nav        lipgloss.Style
	Brand      lipgloss.Style
	NavLink    lipgloss.Style
	NavFocused lipgloss.Style
	DateTime   lipgloss.Style
	Content    lipgloss.Style
	Footer     lipgloss.Style
	Quote      lipgloss.Style
	Hint       lipgloss.Style
	Divider    lipgloss.Style
}

// NewStyles builds the style set for a theme.
func NewStyles(theme Theme) Styles {
	return Styles{
		Theme: theme,

		Nav: lipgloss.NewStyle().
			Padding(0, 2),

		Brand: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Primary)).
			Bold(true),

		NavLink: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Muted)),

		NavFocused: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Accent)).
			Bold(true),

		DateTime: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Muted)),

		Content: lipgloss.NewStyle().
			Padding(1, 2),

		Footer: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Muted)).
			Padding(0, 2),

		Quote: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Muted)).
			Italic(true),

		Hint: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Muted)),

		Divider: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Border)),
	}
}

// DefaultStyles returns styles for the detected theme.
func DefaultStyles() Styles {
	return NewStyles(DetectTheme())
}

// Palette is the color pair animated fragments blend against.
func (s Styles) Palette() effect.Palette {
	return effect.Palette{
		Text:       s.Theme.Foreground,
		Background: s.Theme.Background,
	}
}

// RenderDivider returns a horizontal rule of the given width.
func (s Styles) RenderDivider(width int) string {
	if width <= 0 {
		return ""
	}
	return s.Divider.Render(strings.Repeat("─", width))
}

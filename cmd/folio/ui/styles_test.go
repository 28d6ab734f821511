package ui

import (
	"strings"
	"testing"
)

func TestThemeByName(t *testing.T) {
	if !ThemeByName("dark").IsDark {
		t.Fatalf("dark theme should be dark")
	}
	if ThemeByName("light").IsDark {
		t.Fatalf("light theme should not be dark")
	}
}

func TestDetectThemeHonorsColorFGBG(t *testing.T) {
	t.Setenv("FOLIO_DARK_MODE", "")
	t.Setenv("COLORFGBG", "15;0")
	if !DetectTheme().IsDark {
		t.Fatalf("background index 0 should detect dark")
	}
	t.Setenv("COLORFGBG", "0;15")
	if DetectTheme().IsDark {
		t.Fatalf("background index 15 should detect light")
	}
}

func TestPaletteComesFromTheme(t *testing.T) {
	s := NewStyles(DarkTheme())
	pal := s.Palette()
	if pal.Text != DarkTheme().Foreground || pal.Background != DarkTheme().Background {
		t.Fatalf("palette must mirror the theme colors: %+v", pal)
	}
}

func TestRenderDivider(t *testing.T) {
	s := NewStyles(LightTheme())
	if s.RenderDivider(0) != "" {
		t.Fatalf("zero-width divider should be empty")
	}
	if !strings.Contains(s.RenderDivider(4), "────") {
		t.Fatalf("divider should repeat the rule glyph")
	}
}

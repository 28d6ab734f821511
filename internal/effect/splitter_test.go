package effect

import (
	"strings"
	"testing"
)

func TestSplitSkipsWhitespace(t *testing.T) {
	f := Split("the work")
	if got := len(f.Cells()); got != 7 {
		t.Fatalf("expected 7 cells for %q, got %d", "the work", got)
	}
	if f.Chars() != "thework" {
		t.Fatalf("Chars() = %q, want %q", f.Chars(), "thework")
	}
}

func TestRenderPreservesLayout(t *testing.T) {
	f := Split("a b")
	pal := Palette{Text: "#ffffff", Background: "#000000"}
	out := f.Render(pal)
	if !strings.Contains(out, " ") {
		t.Fatalf("expected whitespace preserved in render: %q", out)
	}
	if !strings.Contains(out, "a") || !strings.Contains(out, "b") {
		t.Fatalf("expected both runes rendered: %q", out)
	}
}

func TestRenderHiddenCellIsBlank(t *testing.T) {
	f := Split("x")
	f.Cells()[0].State = StateHidden
	pal := Palette{Text: "#ffffff", Background: "#000000"}
	if out := f.Render(pal); strings.Contains(out, "x") {
		t.Fatalf("hidden cell leaked its rune: %q", out)
	}
}

func TestBlendHex(t *testing.T) {
	if got := BlendHex("#000000", "#ffffff", 0); got != "#000000" {
		t.Fatalf("t=0 should return from color, got %s", got)
	}
	if got := BlendHex("#000000", "#ffffff", 1); got != "#ffffff" {
		t.Fatalf("t=1 should return to color, got %s", got)
	}
	if got := BlendHex("#000000", "#ffffff", 0.5); got != "#7f7f7f" {
		t.Fatalf("midpoint blend wrong: %s", got)
	}
	if got := BlendHex("#000000", "not-a-color", 0.5); got != "not-a-color" {
		t.Fatalf("unparseable input should fall back to target, got %s", got)
	}
}

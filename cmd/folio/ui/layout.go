// Package ui layout constants for consistent spacing and dimensions.
package ui

// Layout constants for the chrome and content area.
const (
	NavHeight    = 2
	FooterHeight = 3

	ContentHorizontalPadding = 4
	ContentVerticalPadding   = 2

	// Parallax shift never exceeds this many cells in either axis.
	MaxParallaxShift = 2

	MinimumTerminalWidth  = 60
	MinimumTerminalHeight = 16
)

// ContentWidth returns the usable width for page content.
func ContentWidth(terminalWidth int) int {
	w := terminalWidth - ContentHorizontalPadding - 2*MaxParallaxShift
	if w < 1 {
		w = 1
	}
	return w
}

// ContentHeight returns the usable height for page content.
func ContentHeight(terminalHeight int) int {
	h := terminalHeight - NavHeight - FooterHeight - ContentVerticalPadding - 2*MaxParallaxShift
	if h < 1 {
		h = 1
	}
	return h
}

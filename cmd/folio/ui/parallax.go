package ui

import "math"

// Parallax tracks a target offset set by pointer movement and a current
// offset eased toward it every frame. The shift is bounded by
// MaxParallaxShift in both axes.
type Parallax struct {
	targetX, targetY float64
	curX, curY       float64
}

// SetTarget maps a pointer position inside a w x h area to a bounded
// offset around the center.
func (p *Parallax) SetTarget(x, y, w, h int) {
	if w <= 1 || h <= 1 {
		return
	}
	nx := float64(x)/float64(w-1)*2 - 1 // -1 .. 1
	ny := float64(y)/float64(h-1)*2 - 1
	p.targetX = clampShift(nx * MaxParallaxShift)
	p.targetY = clampShift(ny * MaxParallaxShift)
}

// Step eases the current offset toward the target. Called once per frame.
func (p *Parallax) Step() {
	const ease = 0.12
	p.curX += (p.targetX - p.curX) * ease
	p.curY += (p.targetY - p.curY) * ease
}

// Offset returns the current shift in whole cells.
func (p *Parallax) Offset() (dx, dy int) {
	return int(math.Round(p.curX)), int(math.Round(p.curY))
}

func clampShift(v float64) float64 {
	if v > MaxParallaxShift {
		return MaxParallaxShift
	}
	if v < -MaxParallaxShift {
		return -MaxParallaxShift
	}
	return v
}

package effect

import (
	"math"
	"time"
)

// ShineOptions configures a repeating opacity pulse across a fragment.
type ShineOptions struct {
	BaseOpacity  float64
	ShineOpacity float64
	Duration     time.Duration // length of one cell's pulse
	StaggerDelay time.Duration // per-cell start offset within a pass
	Interval     time.Duration // gap between passes
	InitialDelay time.Duration
}

// Shine drops the fragment to BaseOpacity, then after InitialDelay pulses
// each cell base -> shine -> base, staggered per cell, repeating every
// Interval until the ticker is stopped. The fragment is returned so callers
// can chain another pass with different timing over the same cells.
func Shine(tl *Timeline, f *Fragment, opts ShineOptions) (*Fragment, *Ticker) {
	f.SetOpacity(opts.BaseOpacity)
	span := opts.ShineOpacity - opts.BaseOpacity
	pass := func() {
		for i, c := range f.cells {
			cell := c
			tl.After(time.Duration(i)*opts.StaggerDelay, func() {
				tl.Animate(opts.Duration, Linear, func(p float64) {
					cell.Opacity = opts.BaseOpacity + span*math.Sin(math.Pi*p)
				}, nil)
			})
		}
	}
	tk := &Ticker{}
	tl.After(opts.InitialDelay, func() {
		if tk.stopped {
			return
		}
		pass()
		var loop func()
		loop = func() {
			if tk.stopped {
				return
			}
			pass()
			tl.After(opts.Interval, loop)
		}
		tl.After(opts.Interval, loop)
	})
	return f, tk
}

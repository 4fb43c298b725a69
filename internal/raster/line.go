// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

import (
	"github.com/gogpu/r3d/geom"
	"github.com/gogpu/r3d/internal/color"
)

// Line draws the segment a→b with the midpoint algorithm and returns the
// number of pixels it visited.
//
// The endpoint with the smaller x is drawn first. The major axis advances
// by one pixel per step; the minor axis follows the integer error term,
// stepping down for descending lines. Color moves linearly from a's color
// to b's across the steps and is written unrounded. Endpoints with a NaN
// or infinite coordinate draw nothing.
func Line(dst Pixmap, pal Palette, a, b geom.Vec4) int {
	if !a.IsFinite() || !b.IsFinite() {
		return 0
	}
	if a.X > b.X {
		a, b = b, a
	}
	x0, y0 := round(a.X), round(a.Y)
	x1, y1 := round(b.X), round(b.Y)

	run, rise := x1-x0, y1-y0
	ystep := 1
	if rise < 0 {
		ystep = -1
		rise = -rise
	}
	steep := rise > run
	if steep {
		run, rise = rise, run
	}

	c := pal.At(a.Color)
	var dc color.Color
	if run > 0 {
		dc = pal.At(b.Color).Sub(c).Scale(1 / float64(run))
	}

	x, y := x0, y0
	d := 2*rise - run
	for i := 0; i <= run; i++ {
		dst.SetPixel(x, y, c)

		if d > 0 {
			if steep {
				x++
			} else {
				y += ystep
			}
			d += 2*rise - 2*run
		} else {
			d += 2 * rise
		}
		if steep {
			y += ystep
		} else {
			x++
		}
		c = c.Add(dc)
	}
	return run + 1
}

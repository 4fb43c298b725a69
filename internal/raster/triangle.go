// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

import "github.com/gogpu/r3d/geom"

// Degenerate reports whether abc has zero area, in which case its
// barycentric weights are undefined and Triangle draws nothing.
func Degenerate(a, b, c geom.Vec4) bool {
	return edge(a, b, c.X, c.Y) == 0
}

// Triangle fills abc and returns the number of pixels written.
//
// Every pixel of the rounded bounding box (clamped to dst) gets barycentric
// weights from the edge functions; pixels with all weights >= 0 are covered,
// so edges shared by two triangles are drawn by both. Vertices with a NaN
// or infinite coordinate draw nothing. The covered pixel
// gets the weighted blend of the vertex colors, rounded per channel.
func Triangle(dst Pixmap, pal Palette, a, b, c geom.Vec4) int {
	if !a.IsFinite() || !b.IsFinite() || !c.IsFinite() {
		return 0
	}
	fa := edge(b, c, a.X, a.Y)
	fb := edge(c, a, b.X, b.Y)
	fc := edge(a, b, c.X, c.Y)
	if fa == 0 || fb == 0 || fc == 0 {
		return 0
	}

	minX := max(min(round(a.X), round(b.X), round(c.X)), 0)
	maxX := min(max(round(a.X), round(b.X), round(c.X)), dst.Width()-1)
	minY := max(min(round(a.Y), round(b.Y), round(c.Y)), 0)
	maxY := min(max(round(a.Y), round(b.Y), round(c.Y)), dst.Height()-1)

	ca, cb, cc := pal.At(a.Color), pal.At(b.Color), pal.At(c.Color)

	n := 0
	for y := minY; y <= maxY; y++ {
		py := float64(y)
		for x := minX; x <= maxX; x++ {
			px := float64(x)
			alpha := edge(b, c, px, py) / fa
			beta := edge(c, a, px, py) / fb
			gamma := edge(a, b, px, py) / fc
			if alpha < 0 || beta < 0 || gamma < 0 {
				continue
			}
			col := ca.Scale(alpha).Add(cb.Scale(beta)).Add(cc.Scale(gamma))
			dst.SetPixel(x, y, col.Round())
			n++
		}
	}
	return n
}

// edge evaluates the implicit line through p and q at (x, y). It is zero on
// the line and changes sign across it.
func edge(p, q geom.Vec4, x, y float64) float64 {
	return x*(p.Y-q.Y) + y*(q.X-p.X) + p.X*q.Y - p.Y*q.X
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

import (
	"math"
	"testing"

	"github.com/gogpu/r3d/geom"
	"github.com/gogpu/r3d/internal/color"
)

type write struct {
	x, y int
	c    color.Color
}

// recorder is a Pixmap that remembers every write in order.
type recorder struct {
	t      *testing.T
	w, h   int
	writes []write
}

func newRecorder(t *testing.T, w, h int) *recorder {
	return &recorder{t: t, w: w, h: h}
}

func (r *recorder) Width() int  { return r.w }
func (r *recorder) Height() int { return r.h }

func (r *recorder) SetPixel(x, y int, c color.Color) {
	r.writes = append(r.writes, write{x: x, y: y, c: c})
}

func (r *recorder) pixels() map[[2]int]color.Color {
	m := make(map[[2]int]color.Color, len(r.writes))
	for _, w := range r.writes {
		m[[2]int{w.x, w.y}] = w.c
	}
	return m
}

func vtx(x, y float64, ref int) geom.Vec4 {
	return geom.Vec4{X: x, Y: y, W: 1, Color: ref}
}

var (
	red   = color.RGB(255, 0, 0)
	blue  = color.RGB(0, 0, 255)
	green = color.RGB(0, 255, 0)
)

func testPalette() *color.Table {
	return color.NewTable([]color.Color{red, blue, green, color.RGB(10, 200, 30)})
}

func near(a, b color.Color) bool {
	const eps = 1e-9
	return math.Abs(a.R-b.R) < eps && math.Abs(a.G-b.G) < eps && math.Abs(a.B-b.B) < eps
}

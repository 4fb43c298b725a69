// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package raster converts viewport-space lines and triangles into pixel
// writes on a Pixmap.
//
// Vertex coordinates are pixel coordinates with pixel centers on integers.
// Colors are looked up through a Palette by each vertex's color reference.
package raster

import (
	"math"

	"github.com/gogpu/r3d/internal/color"
)

// Pixmap is an interface for writing pixels (avoids import cycle).
// Writes outside [0,Width)×[0,Height) must be ignored.
type Pixmap interface {
	Width() int
	Height() int
	SetPixel(x, y int, c color.Color)
}

// Palette resolves 1-based color references.
type Palette interface {
	At(ref int) color.Color
}

func round(v float64) int {
	return int(math.Round(v))
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package clip

import (
	"math"

	"github.com/gogpu/r3d/geom"
)

// Side selects which half-space of a plane is kept.
type Side uint8

const (
	// Low keeps coordinates at or above the boundary.
	Low Side = iota
	// High keeps coordinates below the boundary.
	High
)

// Plane is one face of the view volume: coordinate Axis (0=x, 1=y, 2=z)
// compared against Boundary.
type Plane struct {
	Axis     int
	Boundary float64
	Side     Side
}

// Planes are the six faces of [-1,1]^3, low side first on each axis.
var Planes = [6]Plane{
	{Axis: 0, Boundary: -1, Side: Low},
	{Axis: 0, Boundary: 1, Side: High},
	{Axis: 1, Boundary: -1, Side: Low},
	{Axis: 1, Boundary: 1, Side: High},
	{Axis: 2, Boundary: -1, Side: Low},
	{Axis: 2, Boundary: 1, Side: High},
}

// Inside reports whether v lies in the kept half-space of p.
func (p Plane) Inside(v geom.Vec4) bool {
	below := v.Axis(p.Axis) < p.Boundary
	return below != (p.Side == Low)
}

// crossing returns the parameter along a→b at which the segment meets p.
// The endpoints are expected to lie on opposite sides.
func (p Plane) crossing(a, b geom.Vec4) float64 {
	da := math.Abs(a.Axis(p.Axis) - p.Boundary)
	db := math.Abs(b.Axis(p.Axis) - p.Boundary)
	if da+db == 0 {
		return 0
	}
	return da / (da + db)
}

// bound returns the Liang-Barsky denominator and numerator of p for the
// segment a→b. A positive denominator means the segment may enter the kept
// half-space at t = num/den, a negative one that it may leave there.
func (p Plane) bound(a, b geom.Vec4) (den, num float64) {
	d := b.Axis(p.Axis) - a.Axis(p.Axis)
	if p.Side == Low {
		return d, p.Boundary - a.Axis(p.Axis)
	}
	return -d, a.Axis(p.Axis) - p.Boundary
}

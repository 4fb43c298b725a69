// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package clip clips lines and triangles against the canonical view volume,
// the cube [-1,1]^3 in clip space.
//
// Both clippers walk the same six planes. Lines use the parametric
// Liang-Barsky test; triangles use a Sutherland-Hodgman polygon walk
// followed by fan triangulation. Every vertex created by a cut gets a fresh
// color from the Palette; input colors are never modified.
package clip

import "github.com/gogpu/r3d/geom"

// Palette receives the colors created when a primitive is cut.
type Palette interface {
	// Lerp appends the blend of the colors referenced by from and to at t
	// and returns the reference of the new entry.
	Lerp(from, to int, t float64) int
}

// Clip clips a primitive given by its points: two points are a line
// segment, three a triangle. Lines return zero or two points, triangles a
// multiple of three. Other point counts return nil.
func Clip(pal Palette, pts ...geom.Vec4) []geom.Vec4 {
	switch len(pts) {
	case 2:
		return ClipLine(pal, pts[0], pts[1])
	case 3:
		return ClipTriangle(pal, pts[0], pts[1], pts[2])
	}
	return nil
}

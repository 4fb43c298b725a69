// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package clip

import "github.com/gogpu/r3d/geom"

// ClipTriangle clips the triangle abc and returns the visible part as a
// flat list of triangles, three points each. A triangle entirely inside
// the volume comes back as a, b, c unchanged; one that loses all area
// comes back empty.
func ClipTriangle(pal Palette, a, b, c geom.Vec4) []geom.Vec4 {
	poly := make([]geom.Vec4, 3, 9)
	poly[0], poly[1], poly[2] = a, b, c
	next := make([]geom.Vec4, 0, 9)

	for _, p := range Planes {
		next = clipPolygon(pal, p, poly, next[:0])
		if len(next) < 3 {
			return nil
		}
		poly, next = next, poly
	}
	return fan(poly)
}

// clipPolygon walks the edges of a convex polygon against one plane and
// appends the surviving vertices to out. For every edge prev→cur a crossing
// point is emitted when the endpoints are on different sides, then cur
// when it is inside. Starting from the closing edge keeps the first vertex
// first when it is inside.
func clipPolygon(pal Palette, p Plane, in, out []geom.Vec4) []geom.Vec4 {
	prev := in[len(in)-1]
	prevIn := p.Inside(prev)
	for _, cur := range in {
		curIn := p.Inside(cur)
		if prevIn != curIn {
			out = append(out, cut(pal, prev, cur, p.crossing(prev, cur)))
		}
		if curIn {
			out = append(out, cur)
		}
		prev, prevIn = cur, curIn
	}
	return out
}

// fan splits a convex polygon into triangles sharing vertex 0.
func fan(poly []geom.Vec4) []geom.Vec4 {
	out := make([]geom.Vec4, 0, 3*(len(poly)-2))
	for i := 1; i+1 < len(poly); i++ {
		out = append(out, poly[0], poly[i], poly[i+1])
	}
	return out
}

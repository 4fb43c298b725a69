// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package clip

import "github.com/gogpu/r3d/geom"

// Epsilon moves a cut endpoint slightly toward the inside of the segment so
// that it maps strictly inside the viewport.
const Epsilon = 1e-7

// ClipLine clips the segment a→b. It returns nil when nothing is visible,
// otherwise the two endpoints of the visible part. Endpoints inside the
// volume are returned unchanged; replaced ones carry new palette entries
// blended at the same parameter as their position.
func ClipLine(pal Palette, a, b geom.Vec4) []geom.Vec4 {
	tE, tL := 0.0, 1.0
	for _, p := range Planes {
		den, num := p.bound(a, b)
		var ok bool
		if tE, tL, ok = visible(den, num, tE, tL); !ok {
			return nil
		}
	}

	start, end := a, b
	if tL < 1 {
		end = cut(pal, a, b, tL-Epsilon)
	}
	if tE > 0 {
		start = cut(pal, a, b, tE+Epsilon)
	}
	return []geom.Vec4{start, end}
}

// visible narrows [tE, tL] by one plane and reports whether any of the
// segment is left.
func visible(den, num, tE, tL float64) (float64, float64, bool) {
	switch {
	case den > 0: // potentially entering
		t := num / den
		if t > tL {
			return tE, tL, false
		}
		tE = max(tE, t)
	case den < 0: // potentially leaving
		t := num / den
		if t < tE {
			return tE, tL, false
		}
		tL = min(tL, t)
	case num > 0: // parallel and outside
		return tE, tL, false
	}
	return tE, tL, true
}

func cut(pal Palette, a, b geom.Vec4, t float64) geom.Vec4 {
	v := a.Lerp(b, t)
	v.Color = pal.Lerp(a.Color, b.Color, t)
	return v
}

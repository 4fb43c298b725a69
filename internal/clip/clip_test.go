// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package clip

import (
	"math"
	"testing"

	"github.com/gogpu/r3d/geom"
	"github.com/gogpu/r3d/internal/color"
)

func newPalette() *color.Table {
	return color.NewTable([]color.Color{
		color.RGB(255, 0, 0),
		color.RGB(0, 0, 255),
		color.RGB(0, 255, 0),
	})
}

func pt(x, y, z float64, ref int) geom.Vec4 {
	return geom.Vec4{X: x, Y: y, Z: z, W: 1, Color: ref}
}

func assertInsideVolume(t *testing.T, pts []geom.Vec4) {
	t.Helper()
	const tol = 1e-6
	for i, p := range pts {
		for axis := 0; axis < 3; axis++ {
			if v := p.Axis(axis); v < -1-tol || v > 1+tol {
				t.Errorf("point %d axis %d = %v outside [-1,1]", i, axis, v)
			}
		}
	}
}

func TestPlaneInside(t *testing.T) {
	tests := []struct {
		name  string
		plane Plane
		x     float64
		want  bool
	}{
		{"low inside", Planes[0], 0, true},
		{"low on boundary", Planes[0], -1, true},
		{"low outside", Planes[0], -1.5, false},
		{"high inside", Planes[1], 0.999, true},
		{"high on boundary", Planes[1], 1, false},
		{"high outside", Planes[1], 2, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.plane.Inside(pt(tt.x, 0, 0, 1)); got != tt.want {
				t.Errorf("Inside(x=%v) = %v, want %v", tt.x, got, tt.want)
			}
		})
	}
}

func TestClipLineFullyInside(t *testing.T) {
	pal := newPalette()
	a, b := pt(-0.5, 0.2, 0.1, 1), pt(0.7, -0.3, -0.9, 2)

	got := ClipLine(pal, a, b)
	if len(got) != 2 {
		t.Fatalf("expected 2 points, got %d", len(got))
	}
	if got[0] != a || got[1] != b {
		t.Errorf("ClipLine changed an inside segment: %+v", got)
	}
	if pal.Appended() != 0 {
		t.Errorf("inside segment appended %d colors", pal.Appended())
	}
}

func TestClipLineFullyOutside(t *testing.T) {
	tests := []struct {
		name string
		a, b geom.Vec4
	}{
		{"both at x=+2", pt(2, 0, 0, 1), pt(2, 0.5, 0.5, 2)},
		{"both below y", pt(0, -3, 0, 1), pt(0.5, -1.5, 0, 2)},
		{"beyond far", pt(0, 0, 1.5, 1), pt(0, 0, 4, 2)},
		{"misses corner", pt(0.5, 2, 0, 1), pt(2, 0.5, 0, 2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pal := newPalette()
			if got := ClipLine(pal, tt.a, tt.b); len(got) != 0 {
				t.Errorf("expected no points, got %+v", got)
			}
			if pal.Appended() != 0 {
				t.Errorf("rejected segment appended %d colors", pal.Appended())
			}
		})
	}
}

func TestClipLineCrossingHigh(t *testing.T) {
	pal := newPalette()
	a, b := pt(0, 0, 0, 1), pt(2, 0, 0, 2)

	got := ClipLine(pal, a, b)
	if len(got) != 2 {
		t.Fatalf("expected 2 points, got %d", len(got))
	}
	if got[0] != a {
		t.Errorf("start changed: %+v", got[0])
	}

	tcut := 0.5 - Epsilon
	if want := 2 * tcut; math.Abs(got[1].X-want) > 1e-12 {
		t.Errorf("end x = %v, want %v", got[1].X, want)
	}
	if got[1].Color != 4 {
		t.Errorf("end color ref = %d, want 4", got[1].Color)
	}
	want := color.RGB(255, 0, 0).Lerp(color.RGB(0, 0, 255), tcut)
	if c := pal.At(got[1].Color); c != want {
		t.Errorf("end color = %+v, want %+v", c, want)
	}
	assertInsideVolume(t, got)
}

func TestClipLineCrossingBothSides(t *testing.T) {
	pal := newPalette()
	got := ClipLine(pal, pt(-3, 0, 0, 1), pt(3, 0, 0, 2))
	if len(got) != 2 {
		t.Fatalf("expected 2 points, got %d", len(got))
	}
	if pal.Appended() != 2 {
		t.Errorf("appended %d colors, want 2", pal.Appended())
	}
	if got[0].X <= -1 || got[0].X > -0.999 {
		t.Errorf("start x = %v, want just inside -1", got[0].X)
	}
	if got[1].X >= 1 || got[1].X < 0.999 {
		t.Errorf("end x = %v, want just inside 1", got[1].X)
	}
}

func TestClipLineParallelInside(t *testing.T) {
	pal := newPalette()
	// Parallel to every x plane, inside on x; crosses y.
	got := ClipLine(pal, pt(0.5, -2, 0, 1), pt(0.5, 2, 0, 2))
	if len(got) != 2 {
		t.Fatalf("expected 2 points, got %d", len(got))
	}
	for _, p := range got {
		if p.X != 0.5 {
			t.Errorf("x = %v, want 0.5", p.X)
		}
	}
	assertInsideVolume(t, got)
}

func TestClipTriangleFullyInside(t *testing.T) {
	pal := newPalette()
	a, b, c := pt(-0.5, -0.5, 0, 1), pt(0.5, -0.5, 0, 2), pt(0, 0.5, 0, 3)

	got := ClipTriangle(pal, a, b, c)
	if len(got) != 3 {
		t.Fatalf("expected 3 points, got %d", len(got))
	}
	if got[0] != a || got[1] != b || got[2] != c {
		t.Errorf("ClipTriangle changed an inside triangle: %+v", got)
	}
	if pal.Appended() != 0 {
		t.Errorf("inside triangle appended %d colors", pal.Appended())
	}
}

func TestClipTriangleFullyOutside(t *testing.T) {
	pal := newPalette()
	got := ClipTriangle(pal, pt(2, 0, 0, 1), pt(3, 0, 0, 2), pt(2, 1, 0, 3))
	if len(got) != 0 {
		t.Errorf("expected no points, got %d", len(got))
	}
}

func TestClipTrianglePartial(t *testing.T) {
	pal := newPalette()
	before := pal.Len()

	// Right triangle with legs of 2; only the unit square [0,1]^2 remains.
	got := ClipTriangle(pal, pt(0, 0, 0, 1), pt(2, 0, 0, 2), pt(0, 2, 0, 3))
	if len(got) == 0 || len(got)%3 != 0 {
		t.Fatalf("expected a multiple of 3 points, got %d", len(got))
	}
	assertInsideVolume(t, got)

	var area float64
	for i := 0; i < len(got); i += 3 {
		a, b, c := got[i], got[i+1], got[i+2]
		area += math.Abs((b.X-a.X)*(c.Y-a.Y)-(c.X-a.X)*(b.Y-a.Y)) / 2
	}
	if math.Abs(area-1) > 1e-9 {
		t.Errorf("clipped area = %v, want 1", area)
	}

	if pal.Len() <= before {
		t.Errorf("palette did not grow: %d -> %d", before, pal.Len())
	}
	for _, p := range got {
		if p.Color < 1 || p.Color > pal.Len() {
			t.Errorf("color ref %d out of range", p.Color)
		}
	}
}

func TestClipPaletteGrowsMonotonically(t *testing.T) {
	pal := newPalette()
	base := []color.Color{pal.At(1), pal.At(2), pal.At(3)}

	prims := [][]geom.Vec4{
		{pt(-2, 0, 0, 1), pt(2, 0, 0, 2)},
		{pt(0, 0, 0, 1), pt(2, 2, 2, 3)},
		{pt(-3, -3, 0, 1), pt(3, -3, 0, 2), pt(0, 3, 0, 3)},
		{pt(0, 0, -5, 1), pt(0.5, 0, 5, 2), pt(0, 0.5, 5, 3)},
	}
	for i, prim := range prims {
		before := pal.Len()
		Clip(pal, prim...)
		if pal.Len() < before {
			t.Errorf("primitive %d: palette shrank %d -> %d", i, before, pal.Len())
		}
	}
	for i, c := range base {
		if got := pal.At(i + 1); got != c {
			t.Errorf("entry %d changed: %+v -> %+v", i+1, c, got)
		}
	}
}

func TestClipDispatch(t *testing.T) {
	pal := newPalette()
	if got := Clip(pal, pt(0, 0, 0, 1), pt(0.5, 0, 0, 2)); len(got) != 2 {
		t.Errorf("line: got %d points, want 2", len(got))
	}
	if got := Clip(pal, pt(0, 0, 0, 1), pt(0.5, 0, 0, 2), pt(0, 0.5, 0, 3)); len(got) != 3 {
		t.Errorf("triangle: got %d points, want 3", len(got))
	}
	if got := Clip(pal, pt(0, 0, 0, 1)); got != nil {
		t.Errorf("single point: got %+v, want nil", got)
	}
}

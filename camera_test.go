package r3d

import (
	"errors"
	"math"
	"testing"

	"github.com/gogpu/r3d/geom"
)

func TestNewCameraBasis(t *testing.T) {
	c, err := NewCamera(1, Perspective, geom.V3(1, 2, 3), geom.V3(0, 0, -4), geom.V3(0, 3, 0),
		Volume{Left: -1, Right: 1, Bottom: -1, Top: 1, Near: 1, Far: 10}, 64, 48, "a.ppm")
	if err != nil {
		t.Fatalf("NewCamera() = %v", err)
	}

	checks := []struct {
		name      string
		got, want geom.Vec3
	}{
		{"gaze", c.Gaze, geom.V3(0, 0, -1)},
		{"u", c.U, geom.V3(1, 0, 0)},
		{"v", c.V, geom.V3(0, 1, 0)},
		{"w", c.W, geom.V3(0, 0, 1)},
	}
	for _, ck := range checks {
		if ck.got.Sub(ck.want).Len() > 1e-12 {
			t.Errorf("%s = %v, want %v", ck.name, ck.got, ck.want)
		}
	}
}

func TestNewCameraSkewedUp(t *testing.T) {
	// An up hint that is not perpendicular to the gaze still yields an
	// orthonormal basis.
	c, err := NewCamera(1, Orthographic, geom.V3(0, 0, 0), geom.V3(1, -1, 0), geom.V3(0, 1, 0.5),
		Volume{Left: -1, Right: 1, Bottom: -1, Top: 1, Near: 1, Far: 10}, 8, 8, "b")
	if err != nil {
		t.Fatalf("NewCamera() = %v", err)
	}
	for _, v := range []geom.Vec3{c.U, c.V, c.W} {
		if math.Abs(v.Len()-1) > 1e-12 {
			t.Errorf("basis vector %v is not unit length", v)
		}
	}
	for _, d := range []float64{c.U.Dot(c.V), c.V.Dot(c.W), c.W.Dot(c.U)} {
		if math.Abs(d) > 1e-12 {
			t.Errorf("basis is not orthogonal: dot = %v", d)
		}
	}
	if c.U.Cross(c.V).Sub(c.W).Len() > 1e-12 {
		t.Errorf("basis is not right-handed: u×v = %v, w = %v", c.U.Cross(c.V), c.W)
	}
}

func TestCameraMatrixMapsVolume(t *testing.T) {
	c, err := NewCamera(1, Orthographic, geom.V3(0, 0, 10), geom.V3(0, 0, -1), geom.V3(0, 1, 0),
		Volume{Left: -2, Right: 2, Bottom: -1, Top: 1, Near: 1, Far: 21}, 4, 2, "c")
	if err != nil {
		t.Fatalf("NewCamera() = %v", err)
	}
	tests := []struct {
		world geom.Vec3
		want  geom.Vec3
	}{
		{geom.V3(0, 0, 9), geom.V3(0, 0, -1)},
		{geom.V3(2, 1, -11), geom.V3(1, 1, 1)},
		{geom.V3(-2, -1, 9), geom.V3(-1, -1, -1)},
	}
	for _, tt := range tests {
		got := c.Matrix().MulPoint(tt.world)
		if got.Sub(tt.want).Len() > 1e-12 {
			t.Errorf("Matrix() * %v = %v, want %v", tt.world, got, tt.want)
		}
	}

	px := c.Viewport().MulPoint(geom.V3(-1, -1, 0))
	if px.X != -0.5 || px.Y != -0.5 {
		t.Errorf("Viewport() * (-1,-1) = %v, want (-0.5,-0.5)", px)
	}
}

func TestNewCameraErrors(t *testing.T) {
	vol := Volume{Left: -1, Right: 1, Bottom: -1, Top: 1, Near: 1, Far: 10}
	tests := []struct {
		name     string
		proj     Projection
		gaze, up geom.Vec3
		vol      Volume
		w, h     int
	}{
		{"unknown projection", Projection(9), geom.V3(0, 0, -1), geom.V3(0, 1, 0), vol, 8, 8},
		{"zero gaze", Orthographic, geom.V3(0, 0, 0), geom.V3(0, 1, 0), vol, 8, 8},
		{"up parallel to gaze", Orthographic, geom.V3(0, 0, -1), geom.V3(0, 0, 2), vol, 8, 8},
		{"zero up", Orthographic, geom.V3(0, 0, -1), geom.V3(0, 0, 0), vol, 8, 8},
		{"flat volume", Orthographic, geom.V3(0, 0, -1), geom.V3(0, 1, 0), Volume{Left: 1, Right: 1, Bottom: -1, Top: 1, Near: 1, Far: 10}, 8, 8},
		{"near equals far", Orthographic, geom.V3(0, 0, -1), geom.V3(0, 1, 0), Volume{Left: -1, Right: 1, Bottom: -1, Top: 1, Near: 5, Far: 5}, 8, 8},
		{"perspective zero near", Perspective, geom.V3(0, 0, -1), geom.V3(0, 1, 0), Volume{Left: -1, Right: 1, Bottom: -1, Top: 1, Near: 0, Far: 10}, 8, 8},
		{"zero width", Orthographic, geom.V3(0, 0, -1), geom.V3(0, 1, 0), vol, 0, 8},
		{"negative height", Orthographic, geom.V3(0, 0, -1), geom.V3(0, 1, 0), vol, 8, -1},
		{"NaN gaze", Orthographic, geom.V3(math.NaN(), 0, -1), geom.V3(0, 1, 0), vol, 8, 8},
		{"infinite up", Orthographic, geom.V3(0, 0, -1), geom.V3(0, math.Inf(1), 0), vol, 8, 8},
		{"infinite far", Perspective, geom.V3(0, 0, -1), geom.V3(0, 1, 0), Volume{Left: -1, Right: 1, Bottom: -1, Top: 1, Near: 1, Far: math.Inf(1)}, 8, 8},
		{"too many pixels", Orthographic, geom.V3(0, 0, -1), geom.V3(0, 1, 0), vol, 4097, 4096},
		{"overflowing resolution", Orthographic, geom.V3(0, 0, -1), geom.V3(0, 1, 0), vol, math.MaxInt / 2, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewCamera(3, tt.proj, geom.V3(0, 0, 0), tt.gaze, tt.up, tt.vol, tt.w, tt.h, "x")
			if !errors.Is(err, ErrMalformedScene) {
				t.Errorf("NewCamera() error = %v, want ErrMalformedScene", err)
			}
			if c != nil {
				t.Error("NewCamera() returned a camera with an error")
			}
		})
	}
}

func TestNewCameraMaxResolution(t *testing.T) {
	c, err := NewCamera(1, Orthographic, geom.V3(0, 0, 0), geom.V3(0, 0, -1), geom.V3(0, 1, 0),
		Volume{Left: -1, Right: 1, Bottom: -1, Top: 1, Near: 1, Far: 10}, 4096, 4096, "big")
	if err != nil {
		t.Fatalf("NewCamera(4096x4096) = %v", err)
	}
	if c.Width*c.Height != MaxPixels {
		t.Errorf("pixels = %d, want %d", c.Width*c.Height, MaxPixels)
	}
}

func TestNewCameraNonFinitePosition(t *testing.T) {
	_, err := NewCamera(1, Perspective, geom.V3(0, math.NaN(), 0), geom.V3(0, 0, -1), geom.V3(0, 1, 0),
		Volume{Left: -1, Right: 1, Bottom: -1, Top: 1, Near: 1, Far: 10}, 8, 8, "nan")
	if !errors.Is(err, ErrMalformedScene) {
		t.Errorf("NewCamera() error = %v, want ErrMalformedScene", err)
	}
}

func TestParseProjection(t *testing.T) {
	for _, p := range []Projection{Orthographic, Perspective} {
		got, err := ParseProjection(p.String())
		if err != nil || got != p {
			t.Errorf("ParseProjection(%q) = %v, %v", p.String(), got, err)
		}
	}
	if _, err := ParseProjection("fisheye"); !errors.Is(err, ErrMalformedScene) {
		t.Errorf("ParseProjection(fisheye) error = %v", err)
	}
}

package r3d

import (
	"testing"

	"github.com/gogpu/r3d/geom"
)

// mustCamera creates an orthographic or perspective camera with a 2×2
// image plane, near 1 and far 100.
func mustCamera(t testing.TB, id int, proj Projection, pos, gaze geom.Vec3, w, h int) *Camera {
	t.Helper()
	c, err := NewCamera(id, proj, pos, gaze, geom.V3(0, 1, 0),
		Volume{Left: -1, Right: 1, Bottom: -1, Top: 1, Near: 1, Far: 100},
		w, h, "out")
	if err != nil {
		t.Fatalf("NewCamera() = %v", err)
	}
	return c
}

// quadScene is a red square covering [-0.5,0.5]² at z=0, facing +z, seen
// by an orthographic 10×10 camera at (0,0,10) looking down -z. On screen
// the square spans pixels 2..7 on both axes.
func quadScene(mode RenderMode) *Scene {
	cam, err := NewCamera(1, Orthographic, geom.V3(0, 0, 10), geom.V3(0, 0, -1), geom.V3(0, 1, 0),
		Volume{Left: -1, Right: 1, Bottom: -1, Top: 1, Near: 1, Far: 100},
		10, 10, "quad")
	if err != nil {
		panic(err)
	}
	s := &Scene{Background: Black, Cameras: []*Camera{cam}}
	s.AddVertex(geom.V3(-0.5, -0.5, 0), Red)
	s.AddVertex(geom.V3(0.5, -0.5, 0), Red)
	s.AddVertex(geom.V3(0.5, 0.5, 0), Red)
	s.AddVertex(geom.V3(-0.5, 0.5, 0), Red)
	s.Meshes = []*Mesh{{
		ID:        1,
		Mode:      mode,
		Triangles: []Triangle{{1, 2, 3}, {1, 3, 4}},
	}}
	return s
}

func countColor(fb *Framebuffer, c Color) int {
	n := 0
	for y := 0; y < fb.Height(); y++ {
		for x := 0; x < fb.Width(); x++ {
			if fb.At(x, y) == c {
				n++
			}
		}
	}
	return n
}

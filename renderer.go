package r3d

// Renderer turns a scene into one frame per camera.
type Renderer interface {
	// Render validates the scene and renders every camera. Frames are
	// returned in camera order. A scene that fails validation returns an
	// error wrapping ErrMalformedScene and no frames.
	Render(scene *Scene) ([]Frame, error)
}

// Frame is the result of one camera pass.
type Frame struct {
	Camera *Camera
	Buffer *Framebuffer
	Stats  Stats
}

// Stats counts what happened to the primitives of one camera pass.
type Stats struct {
	// Triangles is the number of mesh triangles processed.
	Triangles int
	// Culled triangles faced away from the camera.
	Culled int
	// Clipped triangles had nothing left inside the view volume.
	Clipped int
	// Degenerate counts primitives skipped for numeric reasons: a zero w
	// at the perspective divide or a zero-area triangle on screen.
	Degenerate int
	// Pixels is the number of framebuffer writes, overdraw included.
	Pixels int
	// ColorsAppended is the number of colors created by clipping.
	ColorsAppended int
}

// Add accumulates o into s.
func (s *Stats) Add(o Stats) {
	s.Triangles += o.Triangles
	s.Culled += o.Culled
	s.Clipped += o.Clipped
	s.Degenerate += o.Degenerate
	s.Pixels += o.Pixels
	s.ColorsAppended += o.ColorsAppended
}

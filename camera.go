package r3d

import (
	"fmt"

	"github.com/gogpu/r3d/geom"
)

// Projection selects how a camera maps camera space onto the view volume.
type Projection uint8

const (
	// Orthographic keeps parallel lines parallel.
	Orthographic Projection = iota
	// Perspective shrinks distant geometry and needs a perspective divide.
	Perspective
)

// String returns the projection name as used in scene files.
func (p Projection) String() string {
	switch p {
	case Orthographic:
		return "orthographic"
	case Perspective:
		return "perspective"
	}
	return fmt.Sprintf("Projection(%d)", uint8(p))
}

// ParseProjection accepts "orthographic" and "perspective".
func ParseProjection(s string) (Projection, error) {
	switch s {
	case "orthographic":
		return Orthographic, nil
	case "perspective":
		return Perspective, nil
	}
	return 0, malformed("unknown projection %q", s)
}

// MaxPixels bounds Width*Height of a camera so a framebuffer allocation
// stays reasonable.
const MaxPixels = 1 << 24 // 4096x4096

// Volume is the view volume of a camera in camera space. Left, Right, Bottom
// and Top bound the image plane; Near and Far are positive distances along
// the gaze.
type Volume struct {
	Left, Right, Bottom, Top float64
	Near, Far                float64
}

// Camera is a pinhole or orthographic camera with a fixed resolution.
//
// The fields describe the camera as loaded; the orthonormal basis and the
// combined view and projection matrix are derived once by NewCamera.
// Changing fields afterwards does not update the matrix.
type Camera struct {
	ID         int
	Projection Projection

	Position geom.Vec3
	Gaze     geom.Vec3 // normalized
	Up       geom.Vec3 // hint as given

	// U, V, W form a right-handed orthonormal basis: U points right, V up
	// and W backwards (W = -Gaze).
	U, V, W geom.Vec3

	Volume
	Width, Height int

	// Output names the image this camera's framebuffer is written to.
	Output string

	matrix   geom.Matrix4
	viewport geom.Matrix4
}

// NewCamera derives the camera basis from gaze and up and precomputes the
// view, projection and viewport matrices. It returns an error wrapping
// ErrMalformedScene when a parameter is NaN or infinite, gaze is zero or
// parallel to up, the volume is empty, or the resolution is not positive or
// exceeds MaxPixels.
func NewCamera(id int, proj Projection, position, gaze, up geom.Vec3, vol Volume, width, height int, output string) (*Camera, error) {
	c := &Camera{
		ID:         id,
		Projection: proj,
		Position:   position,
		Gaze:       gaze.Normalize(),
		Up:         up,
		Volume:     vol,
		Width:      width,
		Height:     height,
		Output:     output,
	}
	if err := c.validate(); err != nil {
		return nil, err
	}

	c.U = c.Gaze.Cross(up).Normalize()
	c.W = c.Gaze.Neg()
	c.V = c.U.Cross(c.Gaze).Normalize()

	c.matrix = c.projection().Mul(geom.Basis(c.U, c.V, c.W, c.Position))
	c.viewport = geom.Viewport(width, height)
	return c, nil
}

func (c *Camera) validate() error {
	switch {
	case c.Projection != Orthographic && c.Projection != Perspective:
		return malformed("camera %d: unknown projection %d", c.ID, c.Projection)
	case !c.Position.IsFinite() || !c.Gaze.IsFinite() || !c.Up.IsFinite():
		return malformed("camera %d: non-finite position, gaze or up", c.ID)
	case !finite(c.Left, c.Right, c.Bottom, c.Top, c.Near, c.Far):
		return malformed("camera %d: non-finite view volume %+v", c.ID, c.Volume)
	case c.Gaze.IsZero():
		return malformed("camera %d: zero gaze direction", c.ID)
	case c.Gaze.Cross(c.Up).IsZero():
		return malformed("camera %d: up %+v is zero or parallel to gaze", c.ID, c.Up)
	case c.Right == c.Left || c.Top == c.Bottom || c.Far == c.Near:
		return malformed("camera %d: empty view volume %+v", c.ID, c.Volume)
	case c.Projection == Perspective && c.Near <= 0:
		return malformed("camera %d: perspective near distance %v must be positive", c.ID, c.Near)
	case c.Width <= 0 || c.Height <= 0:
		return malformed("camera %d: resolution %dx%d must be positive", c.ID, c.Width, c.Height)
	case c.Width > MaxPixels/c.Height:
		return malformed("camera %d: resolution %dx%d exceeds %d pixels", c.ID, c.Width, c.Height, MaxPixels)
	}
	return nil
}

// projection returns the matrix taking camera space to clip space.
func (c *Camera) projection() geom.Matrix4 {
	v := c.Volume
	m := geom.Orthographic(v.Left, v.Right, v.Bottom, v.Top, v.Near, v.Far)
	if c.Projection == Perspective {
		m = m.Mul(geom.Perspective(v.Near, v.Far))
	}
	return m
}

// Matrix returns the combined matrix taking world space to clip space.
func (c *Camera) Matrix() geom.Matrix4 {
	return c.matrix
}

// Viewport returns the matrix taking the [-1,1] square to pixel coordinates.
func (c *Camera) Viewport() geom.Matrix4 {
	return c.viewport
}

// String describes the camera for logs.
func (c *Camera) String() string {
	return fmt.Sprintf("camera %d (%s %dx%d -> %s)", c.ID, c.Projection, c.Width, c.Height, c.Output)
}

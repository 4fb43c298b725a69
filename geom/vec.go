// Package geom provides the vector and matrix types that carry vertices
// through the r3d pipeline, from model space down to viewport coordinates.
//
// Matrices are stored as github.com/go-gl/mathgl/mgl64 matrices, so values
// can be handed to mgl64 directly when a caller needs more than the pipeline
// exposes.
package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec3 is a 3D vector used for positions, directions and normals.
type Vec3 struct {
	X, Y, Z float64
}

// V3 is shorthand for Vec3{x, y, z}.
func V3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

func fromMGL3(v mgl64.Vec3) Vec3 {
	return Vec3{X: v[0], Y: v[1], Z: v[2]}
}

// MGL returns v as an mgl64 vector.
func (v Vec3) MGL() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

// Scale returns v * s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Neg returns -v.
func (v Vec3) Neg() Vec3 {
	return Vec3{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// Dot returns the dot product of v and o.
func (v Vec3) Dot(o Vec3) float64 {
	return v.MGL().Dot(o.MGL())
}

// Cross returns the cross product v × o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return fromMGL3(v.MGL().Cross(o.MGL()))
}

// Len returns the Euclidean length of v.
func (v Vec3) Len() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalize returns v scaled to unit length.
// The zero vector is returned unchanged.
func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l == 0 {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

// IsZero reports whether all components are zero.
func (v Vec3) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// IsFinite reports whether no component is NaN or infinite.
func (v Vec3) IsFinite() bool {
	return finite(v.X) && finite(v.Y) && finite(v.Z)
}

// Homogeneous promotes v to a point (w = 1) carrying the given color reference.
func (v Vec3) Homogeneous(color int) Vec4 {
	return Vec4{X: v.X, Y: v.Y, Z: v.Z, W: 1, Color: color}
}

// Vec4 is a homogeneous vertex. Color is a 1-based reference into the
// color table of the render pass that owns the vertex.
type Vec4 struct {
	X, Y, Z, W float64
	Color      int
}

// Vec3 drops the w component.
func (v Vec4) Vec3() Vec3 {
	return Vec3{X: v.X, Y: v.Y, Z: v.Z}
}

// Axis returns component i, where 0, 1, 2, 3 select x, y, z, w.
func (v Vec4) Axis(i int) float64 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	case 3:
		return v.W
	}
	panic("geom: axis out of range")
}

// Lerp interpolates the coordinates of v and o at t (t=0 gives v).
// The color reference of v is kept; callers that blend colors assign
// the new reference themselves.
func (v Vec4) Lerp(o Vec4, t float64) Vec4 {
	return Vec4{
		X:     v.X + (o.X-v.X)*t,
		Y:     v.Y + (o.Y-v.Y)*t,
		Z:     v.Z + (o.Z-v.Z)*t,
		W:     v.W + (o.W-v.W)*t,
		Color: v.Color,
	}
}

// IsFinite reports whether no component is NaN or infinite.
func (v Vec4) IsFinite() bool {
	return finite(v.X) && finite(v.Y) && finite(v.Z) && finite(v.W)
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// PerspectiveDivide divides x, y, z by w and sets w to 1.
// It reports false, leaving v untouched, when w is zero.
func (v Vec4) PerspectiveDivide() (Vec4, bool) {
	if v.W == 0 {
		return v, false
	}
	inv := 1 / v.W
	return Vec4{X: v.X * inv, Y: v.Y * inv, Z: v.Z * inv, W: 1, Color: v.Color}, true
}

package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Matrix4 is a 4x4 transformation matrix in mgl64's column-major layout.
// Use At for row/column access.
//
// Composition is left multiplication: a.Mul(b) applies b first, then a.
type Matrix4 mgl64.Mat4

// Identity returns the identity matrix.
func Identity() Matrix4 {
	return Matrix4(mgl64.Ident4())
}

// FromRows builds a matrix from four rows.
func FromRows(r0, r1, r2, r3 [4]float64) Matrix4 {
	return Matrix4(mgl64.Mat4FromRows(r0, r1, r2, r3))
}

// At returns the entry at row, col.
func (m Matrix4) At(row, col int) float64 {
	return mgl64.Mat4(m).At(row, col)
}

// Row returns row i.
func (m Matrix4) Row(i int) [4]float64 {
	return mgl64.Mat4(m).Row(i)
}

// Mul returns m × o.
func (m Matrix4) Mul(o Matrix4) Matrix4 {
	return Matrix4(mgl64.Mat4(m).Mul4(mgl64.Mat4(o)))
}

// MulVec4 returns m × v. The color reference of v is carried through.
func (m Matrix4) MulVec4(v Vec4) Vec4 {
	r := mgl64.Mat4(m).Mul4x1(mgl64.Vec4{v.X, v.Y, v.Z, v.W})
	return Vec4{X: r[0], Y: r[1], Z: r[2], W: r[3], Color: v.Color}
}

// MulPoint transforms p as a point (w = 1) and drops the resulting w.
func (m Matrix4) MulPoint(p Vec3) Vec3 {
	return m.MulVec4(p.Homogeneous(0)).Vec3()
}

// MulDir transforms d as a direction (w = 0).
func (m Matrix4) MulDir(d Vec3) Vec3 {
	return m.MulVec4(Vec4{X: d.X, Y: d.Y, Z: d.Z}).Vec3()
}

// ApproxEqual reports whether every entry of m and o differs by at most eps.
func (m Matrix4) ApproxEqual(o Matrix4, eps float64) bool {
	for i := range m {
		if math.Abs(m[i]-o[i]) > eps {
			return false
		}
	}
	return true
}

// IsIdentity reports whether m is exactly the identity matrix.
func (m Matrix4) IsIdentity() bool {
	return m == Identity()
}

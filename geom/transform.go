package geom

import "github.com/go-gl/mathgl/mgl64"

// Translate returns a translation by (tx, ty, tz).
func Translate(tx, ty, tz float64) Matrix4 {
	return Matrix4(mgl64.Translate3D(tx, ty, tz))
}

// Scale returns a scaling by (sx, sy, sz) about the origin.
func Scale(sx, sy, sz float64) Matrix4 {
	return Matrix4(mgl64.Scale3D(sx, sy, sz))
}

// Rotate returns a counter-clockwise rotation of angle degrees about axis,
// following the right-hand rule. A zero axis yields the identity.
func Rotate(angle float64, axis Vec3) Matrix4 {
	if axis.IsZero() {
		return Identity()
	}
	return Matrix4(mgl64.HomogRotate3D(mgl64.DegToRad(angle), axis.Normalize().MGL()))
}

// Basis returns the change of basis that maps world axes onto u, v, w
// followed by a translation moving eye to the origin.
func Basis(u, v, w, eye Vec3) Matrix4 {
	r := FromRows(
		[4]float64{u.X, u.Y, u.Z, 0},
		[4]float64{v.X, v.Y, v.Z, 0},
		[4]float64{w.X, w.Y, w.Z, 0},
		[4]float64{0, 0, 0, 1},
	)
	return r.Mul(Translate(-eye.X, -eye.Y, -eye.Z))
}

// Orthographic maps the box [l,r]×[b,t]×[-n,-f] of camera space onto the
// canonical view volume [-1,1]^3.
func Orthographic(l, r, b, t, n, f float64) Matrix4 {
	return FromRows(
		[4]float64{2 / (r - l), 0, 0, -(r + l) / (r - l)},
		[4]float64{0, 2 / (t - b), 0, -(t + b) / (t - b)},
		[4]float64{0, 0, -2 / (f - n), -(f + n) / (f - n)},
		[4]float64{0, 0, 0, 1},
	)
}

// Perspective squeezes the view frustum with near distance n and far
// distance f into the box that Orthographic expects. The result must be
// followed by a perspective divide.
func Perspective(n, f float64) Matrix4 {
	return FromRows(
		[4]float64{n, 0, 0, 0},
		[4]float64{0, n, 0, 0},
		[4]float64{0, 0, f + n, f * n},
		[4]float64{0, 0, -1, 0},
	)
}

// Viewport maps the [-1,1] square onto an nx by ny pixel grid whose pixel
// centers sit at integer coordinates, and z from [-1,1] onto [0,1].
func Viewport(nx, ny int) Matrix4 {
	w, h := float64(nx), float64(ny)
	return FromRows(
		[4]float64{w / 2, 0, 0, (w - 1) / 2},
		[4]float64{0, h / 2, 0, (h - 1) / 2},
		[4]float64{0, 0, 0.5, 0.5},
		[4]float64{0, 0, 0, 1},
	)
}

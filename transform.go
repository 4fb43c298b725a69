package r3d

import (
	"fmt"

	"github.com/gogpu/r3d/geom"
)

// TransformKind tags the three transform tables of a scene.
type TransformKind byte

const (
	// KindTranslation refers to Scene.Translations.
	KindTranslation TransformKind = 't'
	// KindScaling refers to Scene.Scalings.
	KindScaling TransformKind = 's'
	// KindRotation refers to Scene.Rotations.
	KindRotation TransformKind = 'r'
)

// String returns the kind name.
func (k TransformKind) String() string {
	switch k {
	case KindTranslation:
		return "translation"
	case KindScaling:
		return "scaling"
	case KindRotation:
		return "rotation"
	}
	return fmt.Sprintf("TransformKind(%q)", byte(k))
}

// ParseTransformKind accepts the one-letter tags "t", "s" and "r".
func ParseTransformKind(s string) (TransformKind, error) {
	if len(s) == 1 {
		switch k := TransformKind(s[0]); k {
		case KindTranslation, KindScaling, KindRotation:
			return k, nil
		}
	}
	return 0, malformed("unknown transform kind %q", s)
}

// Transform is an affine transform whose matrix was computed when it was
// created. Translation, Scaling and Rotation implement it.
type Transform interface {
	Kind() TransformKind
	Matrix() geom.Matrix4
}

// TransformRef names one entry of a scene's transform tables by kind and
// 1-based index.
type TransformRef struct {
	Kind TransformKind
	ID   int
}

// String formats r as it appears in scene files, e.g. "r 2".
func (r TransformRef) String() string {
	return fmt.Sprintf("%c %d", byte(r.Kind), r.ID)
}

// Translation moves points by (TX, TY, TZ).
type Translation struct {
	ID         int
	TX, TY, TZ float64

	matrix geom.Matrix4
}

// NewTranslation creates a translation and computes its matrix.
func NewTranslation(id int, tx, ty, tz float64) *Translation {
	return &Translation{ID: id, TX: tx, TY: ty, TZ: tz, matrix: geom.Translate(tx, ty, tz)}
}

// Kind implements Transform.
func (*Translation) Kind() TransformKind { return KindTranslation }

// Matrix implements Transform.
func (t *Translation) Matrix() geom.Matrix4 { return t.matrix }

// Scaling scales points by (SX, SY, SZ) about the origin.
type Scaling struct {
	ID         int
	SX, SY, SZ float64

	matrix geom.Matrix4
}

// NewScaling creates a scaling and computes its matrix.
func NewScaling(id int, sx, sy, sz float64) *Scaling {
	return &Scaling{ID: id, SX: sx, SY: sy, SZ: sz, matrix: geom.Scale(sx, sy, sz)}
}

// Kind implements Transform.
func (*Scaling) Kind() TransformKind { return KindScaling }

// Matrix implements Transform.
func (s *Scaling) Matrix() geom.Matrix4 { return s.matrix }

// Rotation turns points counter-clockwise by Angle degrees about Axis,
// which passes through the origin.
type Rotation struct {
	ID    int
	Angle float64
	Axis  geom.Vec3

	matrix geom.Matrix4
}

// NewRotation creates a rotation and computes its matrix. The axis need not
// be normalized; a zero axis is reported by Scene.Validate.
func NewRotation(id int, angle float64, axis geom.Vec3) *Rotation {
	return &Rotation{ID: id, Angle: angle, Axis: axis, matrix: geom.Rotate(angle, axis)}
}

// Kind implements Transform.
func (*Rotation) Kind() TransformKind { return KindRotation }

// Matrix implements Transform.
func (r *Rotation) Matrix() geom.Matrix4 { return r.matrix }

package r3d

import (
	"math"

	"github.com/gogpu/r3d/geom"
)

// Scene is everything needed to render: geometry, transforms and cameras.
//
// Vertices and Colors are parallel: vertex i (1-based) uses Colors[i-1],
// and its color reference in the pipeline is i. Transform references index
// the tables of their kind, also 1-based.
type Scene struct {
	Background Color
	Culling    bool

	Cameras  []*Camera
	Vertices []geom.Vec3
	Colors   []Color

	Translations []*Translation
	Scalings     []*Scaling
	Rotations    []*Rotation

	Meshes []*Mesh
}

// AddVertex appends a vertex with its color and returns its 1-based index.
func (s *Scene) AddVertex(p geom.Vec3, c Color) int {
	s.Vertices = append(s.Vertices, p)
	s.Colors = append(s.Colors, c)
	return len(s.Vertices)
}

// AddTranslation appends a translation and returns a reference to it.
func (s *Scene) AddTranslation(tx, ty, tz float64) TransformRef {
	id := len(s.Translations) + 1
	s.Translations = append(s.Translations, NewTranslation(id, tx, ty, tz))
	return TransformRef{Kind: KindTranslation, ID: id}
}

// AddScaling appends a scaling and returns a reference to it.
func (s *Scene) AddScaling(sx, sy, sz float64) TransformRef {
	id := len(s.Scalings) + 1
	s.Scalings = append(s.Scalings, NewScaling(id, sx, sy, sz))
	return TransformRef{Kind: KindScaling, ID: id}
}

// AddRotation appends a rotation and returns a reference to it.
func (s *Scene) AddRotation(angle float64, axis geom.Vec3) TransformRef {
	id := len(s.Rotations) + 1
	s.Rotations = append(s.Rotations, NewRotation(id, angle, axis))
	return TransformRef{Kind: KindRotation, ID: id}
}

// Transform resolves a reference to its table entry.
func (s *Scene) Transform(ref TransformRef) (Transform, error) {
	var t Transform
	switch ref.Kind {
	case KindTranslation:
		if ref.ID >= 1 && ref.ID <= len(s.Translations) && s.Translations[ref.ID-1] != nil {
			t = s.Translations[ref.ID-1]
		}
	case KindScaling:
		if ref.ID >= 1 && ref.ID <= len(s.Scalings) && s.Scalings[ref.ID-1] != nil {
			t = s.Scalings[ref.ID-1]
		}
	case KindRotation:
		if ref.ID >= 1 && ref.ID <= len(s.Rotations) && s.Rotations[ref.ID-1] != nil {
			t = s.Rotations[ref.ID-1]
		}
	default:
		return nil, malformed("unknown transform kind in reference %q", ref)
	}
	if t == nil {
		return nil, malformed("unresolved %s reference %q", ref.Kind, ref)
	}
	return t, nil
}

// ModelMatrix composes a mesh's transforms in declared order: starting from
// the identity, each transform's matrix is multiplied on the left.
func (s *Scene) ModelMatrix(m *Mesh) (geom.Matrix4, error) {
	model := geom.Identity()
	for _, ref := range m.Transforms {
		t, err := s.Transform(ref)
		if err != nil {
			return geom.Matrix4{}, malformed("mesh %d: unresolved %s reference %q", m.ID, ref.Kind, ref)
		}
		model = t.Matrix().Mul(model)
	}
	return model, nil
}

// Validate reports the first problem that would make the scene unrenderable.
// Every returned error wraps ErrMalformedScene.
func (s *Scene) Validate() error {
	if len(s.Cameras) == 0 {
		return malformed("no cameras")
	}
	for i, c := range s.Cameras {
		if c == nil {
			return malformed("camera #%d is nil", i+1)
		}
		if err := c.validate(); err != nil {
			return err
		}
		if c.matrix == (geom.Matrix4{}) {
			return malformed("camera %d: not created with NewCamera", c.ID)
		}
	}

	if len(s.Colors) != len(s.Vertices) {
		return malformed("%d vertices but %d vertex colors", len(s.Vertices), len(s.Colors))
	}
	for i, v := range s.Vertices {
		if !v.IsFinite() {
			return malformed("vertex %d: non-finite position %+v", i+1, v)
		}
	}
	for i, r := range s.Rotations {
		if r == nil {
			return malformed("rotation #%d is nil", i+1)
		}
		if !finite(r.Angle) || !r.Axis.IsFinite() {
			return malformed("rotation %d: non-finite parameters", r.ID)
		}
		if r.Axis.IsZero() {
			return malformed("rotation %d: zero axis", r.ID)
		}
	}
	for i, t := range s.Translations {
		if t == nil {
			return malformed("translation #%d is nil", i+1)
		}
		if !geom.V3(t.TX, t.TY, t.TZ).IsFinite() {
			return malformed("translation %d: non-finite parameters", t.ID)
		}
	}
	for i, sc := range s.Scalings {
		if sc == nil {
			return malformed("scaling #%d is nil", i+1)
		}
		if !geom.V3(sc.SX, sc.SY, sc.SZ).IsFinite() {
			return malformed("scaling %d: non-finite parameters", sc.ID)
		}
	}

	for i, m := range s.Meshes {
		if m == nil {
			return malformed("mesh #%d is nil", i+1)
		}
		if m.Mode != Wireframe && m.Mode != Solid {
			return malformed("mesh %d: unknown render mode %d", m.ID, m.Mode)
		}
		if _, err := s.ModelMatrix(m); err != nil {
			return err
		}
		for j, tri := range m.Triangles {
			for _, idx := range tri {
				if idx < 1 || idx > len(s.Vertices) {
					return malformed("mesh %d: triangle %d: vertex index %d out of range [1,%d]",
						m.ID, j+1, idx, len(s.Vertices))
				}
			}
		}
	}
	return nil
}

func finite(fs ...float64) bool {
	for _, f := range fs {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}

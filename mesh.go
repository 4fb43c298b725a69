package r3d

import "fmt"

// RenderMode selects how a mesh's triangles are drawn.
type RenderMode uint8

const (
	// Wireframe draws the three edges of every triangle.
	Wireframe RenderMode = iota
	// Solid fills every triangle.
	Solid
)

// String returns the mode name as used in scene files.
func (m RenderMode) String() string {
	switch m {
	case Wireframe:
		return "wireframe"
	case Solid:
		return "solid"
	}
	return fmt.Sprintf("RenderMode(%d)", uint8(m))
}

// ParseRenderMode accepts "wireframe" and "solid".
func ParseRenderMode(s string) (RenderMode, error) {
	switch s {
	case "wireframe":
		return Wireframe, nil
	case "solid":
		return Solid, nil
	}
	return 0, malformed("unknown render mode %q", s)
}

// Triangle holds three 1-based indices into Scene.Vertices.
type Triangle [3]int

// Mesh is a list of triangles drawn with one model transform.
type Mesh struct {
	ID   int
	Mode RenderMode

	// Transforms are applied in order: the first one acts on the vertices
	// first.
	Transforms []TransformRef
	Triangles  []Triangle
}

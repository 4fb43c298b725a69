// Package scenefile reads scenes from their XML description.
//
// A scene file looks like this (sections may be empty or missing, except
// BackgroundColor and Cameras):
//
//	<Scene>
//	    <BackgroundColor>0 0 0</BackgroundColor>
//	    <Culling>enabled</Culling>
//	    <Cameras>
//	        <Camera id="1" type="perspective">
//	            <Position>0 0 10</Position>
//	            <Gaze>0 0 -1</Gaze>
//	            <Up>0 1 0</Up>
//	            <ImagePlane>-1 1 -1 1 1 100 640 480</ImagePlane>
//	            <OutputName>front.ppm</OutputName>
//	        </Camera>
//	    </Cameras>
//	    <Vertices>
//	        <Vertex id="1" position="0 0 0" color="255 0 0"/>
//	    </Vertices>
//	    <Translations>
//	        <Translation id="1" value="1 0 0"/>
//	    </Translations>
//	    <Scalings>
//	        <Scaling id="1" value="2 2 2"/>
//	    </Scalings>
//	    <Rotations>
//	        <Rotation id="1" value="45 0 1 0"/>
//	    </Rotations>
//	    <Meshes>
//	        <Mesh id="1" type="solid">
//	            <Transformations>
//	                <Transformation>s 1</Transformation>
//	                <Transformation>r 1</Transformation>
//	            </Transformations>
//	            <Faces>
//	                1 2 3
//	                1 3 4
//	            </Faces>
//	        </Mesh>
//	    </Meshes>
//	</Scene>
//
// Vertices and transforms are referenced by their 1-based position in
// their section; id attributes are kept for diagnostics.
//
// Syntax and validation errors wrap [r3d.ErrMalformedScene]; I/O errors
// are returned as they are.
package scenefile

import (
	"encoding/xml"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/gogpu/r3d"
	"github.com/gogpu/r3d/geom"
)

type document struct {
	Background   *string         `xml:"BackgroundColor"`
	Culling      *string         `xml:"Culling"`
	Cameras      []cameraElem    `xml:"Cameras>Camera"`
	Vertices     []vertexElem    `xml:"Vertices>Vertex"`
	Translations []transformElem `xml:"Translations>Translation"`
	Scalings     []transformElem `xml:"Scalings>Scaling"`
	Rotations    []transformElem `xml:"Rotations>Rotation"`
	Meshes       []meshElem      `xml:"Meshes>Mesh"`
}

type cameraElem struct {
	ID         int    `xml:"id,attr"`
	Type       string `xml:"type,attr"`
	Position   string `xml:"Position"`
	Gaze       string `xml:"Gaze"`
	Up         string `xml:"Up"`
	ImagePlane string `xml:"ImagePlane"`
	OutputName string `xml:"OutputName"`
}

type vertexElem struct {
	ID       int    `xml:"id,attr"`
	Position string `xml:"position,attr"`
	Color    string `xml:"color,attr"`
}

type transformElem struct {
	ID    int    `xml:"id,attr"`
	Value string `xml:"value,attr"`
}

type meshElem struct {
	ID              int      `xml:"id,attr"`
	Type            string   `xml:"type,attr"`
	Transformations []string `xml:"Transformations>Transformation"`
	Faces           string   `xml:"Faces"`
}

// Load reads and validates the scene file at path.
func Load(path string) (*r3d.Scene, error) {
	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	s, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	r3d.Logger().Debug("scene loaded",
		"path", path,
		"cameras", len(s.Cameras),
		"vertices", len(s.Vertices),
		"meshes", len(s.Meshes))
	return s, nil
}

// Decode reads one scene from r and validates it.
func Decode(r io.Reader) (*r3d.Scene, error) {
	var doc document
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, malformed("xml: %v", err)
	}

	s, err := doc.scene()
	if err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (d *document) scene() (*r3d.Scene, error) {
	s := &r3d.Scene{}

	if d.Background == nil {
		return nil, malformed("missing BackgroundColor")
	}
	bg, err := parseColor(*d.Background)
	if err != nil {
		return nil, fmt.Errorf("BackgroundColor: %w", err)
	}
	s.Background = bg

	if d.Culling != nil {
		switch c := strings.TrimSpace(*d.Culling); c {
		case "enabled":
			s.Culling = true
		case "disabled":
		default:
			return nil, malformed("Culling: want enabled or disabled, got %q", c)
		}
	}

	for _, ce := range d.Cameras {
		c, err := ce.camera()
		if err != nil {
			return nil, fmt.Errorf("camera %d: %w", ce.ID, err)
		}
		s.Cameras = append(s.Cameras, c)
	}

	for i, ve := range d.Vertices {
		p, err := parseVec3(ve.Position)
		if err != nil {
			return nil, fmt.Errorf("vertex #%d position: %w", i+1, err)
		}
		c, err := parseColor(ve.Color)
		if err != nil {
			return nil, fmt.Errorf("vertex #%d color: %w", i+1, err)
		}
		s.AddVertex(p, c)
	}

	for _, te := range d.Translations {
		v, err := parseFloats(te.Value, 3)
		if err != nil {
			return nil, fmt.Errorf("translation %d: %w", te.ID, err)
		}
		s.Translations = append(s.Translations, r3d.NewTranslation(te.ID, v[0], v[1], v[2]))
	}
	for _, te := range d.Scalings {
		v, err := parseFloats(te.Value, 3)
		if err != nil {
			return nil, fmt.Errorf("scaling %d: %w", te.ID, err)
		}
		s.Scalings = append(s.Scalings, r3d.NewScaling(te.ID, v[0], v[1], v[2]))
	}
	for _, te := range d.Rotations {
		v, err := parseFloats(te.Value, 4)
		if err != nil {
			return nil, fmt.Errorf("rotation %d: %w", te.ID, err)
		}
		s.Rotations = append(s.Rotations, r3d.NewRotation(te.ID, v[0], geom.V3(v[1], v[2], v[3])))
	}

	for _, me := range d.Meshes {
		m, err := me.mesh()
		if err != nil {
			return nil, fmt.Errorf("mesh %d: %w", me.ID, err)
		}
		s.Meshes = append(s.Meshes, m)
	}
	return s, nil
}

func (ce *cameraElem) camera() (*r3d.Camera, error) {
	proj, err := r3d.ParseProjection(strings.TrimSpace(ce.Type))
	if err != nil {
		return nil, err
	}
	pos, err := parseVec3(ce.Position)
	if err != nil {
		return nil, fmt.Errorf("Position: %w", err)
	}
	gaze, err := parseVec3(ce.Gaze)
	if err != nil {
		return nil, fmt.Errorf("Gaze: %w", err)
	}
	up, err := parseVec3(ce.Up)
	if err != nil {
		return nil, fmt.Errorf("Up: %w", err)
	}

	fields := strings.Fields(ce.ImagePlane)
	if len(fields) != 8 {
		return nil, malformed("ImagePlane: want 8 values, got %d", len(fields))
	}
	v, err := parseFloats(strings.Join(fields[:6], " "), 6)
	if err != nil {
		return nil, fmt.Errorf("ImagePlane: %w", err)
	}
	w, err := parseInt(fields[6])
	if err != nil {
		return nil, fmt.Errorf("ImagePlane width: %w", err)
	}
	h, err := parseInt(fields[7])
	if err != nil {
		return nil, fmt.Errorf("ImagePlane height: %w", err)
	}

	output := strings.TrimSpace(ce.OutputName)
	if output == "" {
		return nil, malformed("missing OutputName")
	}

	vol := r3d.Volume{Left: v[0], Right: v[1], Bottom: v[2], Top: v[3], Near: v[4], Far: v[5]}
	return r3d.NewCamera(ce.ID, proj, pos, gaze, up, vol, w, h, output)
}

func (me *meshElem) mesh() (*r3d.Mesh, error) {
	mode, err := r3d.ParseRenderMode(strings.TrimSpace(me.Type))
	if err != nil {
		return nil, err
	}
	m := &r3d.Mesh{ID: me.ID, Mode: mode}

	for i, text := range me.Transformations {
		ref, err := parseRef(text)
		if err != nil {
			return nil, fmt.Errorf("transformation #%d: %w", i+1, err)
		}
		m.Transforms = append(m.Transforms, ref)
	}

	for n, line := range strings.Split(me.Faces, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		tri, err := parseTriangle(line)
		if err != nil {
			return nil, fmt.Errorf("faces line %d: %w", n+1, err)
		}
		m.Triangles = append(m.Triangles, tri)
	}
	return m, nil
}

func parseRef(s string) (r3d.TransformRef, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return r3d.TransformRef{}, malformed("want \"<kind> <index>\", got %q", s)
	}
	kind, err := r3d.ParseTransformKind(fields[0])
	if err != nil {
		return r3d.TransformRef{}, err
	}
	id, err := parseInt(fields[1])
	if err != nil {
		return r3d.TransformRef{}, err
	}
	return r3d.TransformRef{Kind: kind, ID: id}, nil
}

func parseTriangle(s string) (r3d.Triangle, error) {
	var tri r3d.Triangle
	fields := strings.Fields(s)
	if len(fields) != len(tri) {
		return tri, malformed("want 3 vertex indices, got %q", strings.TrimSpace(s))
	}
	for i, f := range fields {
		v, err := parseInt(f)
		if err != nil {
			return tri, err
		}
		tri[i] = v
	}
	return tri, nil
}

func parseVec3(s string) (geom.Vec3, error) {
	v, err := parseFloats(s, 3)
	if err != nil {
		return geom.Vec3{}, err
	}
	return geom.V3(v[0], v[1], v[2]), nil
}

func parseColor(s string) (r3d.Color, error) {
	v, err := parseFloats(s, 3)
	if err != nil {
		return r3d.Color{}, err
	}
	return r3d.RGB(v[0], v[1], v[2]), nil
}

// parseFloats parses exactly n whitespace-separated finite numbers.
func parseFloats(s string, n int) ([]float64, error) {
	fields := strings.Fields(s)
	if len(fields) != n {
		return nil, malformed("want %d numbers, got %q", n, strings.TrimSpace(s))
	}
	out := make([]float64, n)
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, malformed("bad number %q", f)
		}
		out[i] = v
	}
	return out, nil
}

func parseInt(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, malformed("bad integer %q", s)
	}
	return v, nil
}

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", r3d.ErrMalformedScene, fmt.Sprintf(format, args...))
}

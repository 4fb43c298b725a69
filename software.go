package r3d

import (
	"golang.org/x/sync/errgroup"

	"github.com/gogpu/r3d/geom"
	"github.com/gogpu/r3d/internal/clip"
	"github.com/gogpu/r3d/internal/color"
	"github.com/gogpu/r3d/internal/raster"
)

// SoftwareRenderer is a CPU forward renderer. It is safe for concurrent
// use; each camera pass owns its framebuffer and color table.
type SoftwareRenderer struct {
	opts renderOptions
}

// NewSoftwareRenderer creates a new software renderer.
func NewSoftwareRenderer(opts ...RenderOption) *SoftwareRenderer {
	o := defaultRenderOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &SoftwareRenderer{opts: o}
}

// Render implements Renderer.
func (r *SoftwareRenderer) Render(scene *Scene) ([]Frame, error) {
	if err := scene.Validate(); err != nil {
		return nil, err
	}

	frames := make([]Frame, len(scene.Cameras))
	var g errgroup.Group
	g.SetLimit(r.opts.workers)
	for i, cam := range scene.Cameras {
		g.Go(func() error {
			f, err := r.renderCamera(scene, cam)
			if err != nil {
				return err
			}
			frames[i] = f
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var total Stats
	for _, f := range frames {
		total.Add(f.Stats)
	}
	Logger().Info("scene rendered",
		"cameras", len(frames),
		"meshes", len(scene.Meshes),
		"triangles", total.Triangles,
		"pixels", total.Pixels)
	return frames, nil
}

// RenderCamera validates the scene and renders it through a single camera,
// which need not be one of the scene's cameras.
func (r *SoftwareRenderer) RenderCamera(scene *Scene, cam *Camera) (Frame, error) {
	if err := scene.Validate(); err != nil {
		return Frame{}, err
	}
	if cam == nil {
		return Frame{}, malformed("nil camera")
	}
	if err := cam.validate(); err != nil {
		return Frame{}, err
	}
	return r.renderCamera(scene, cam)
}

func (r *SoftwareRenderer) renderCamera(scene *Scene, cam *Camera) (Frame, error) {
	culling := scene.Culling
	if r.opts.culling != nil {
		culling = *r.opts.culling
	}

	p := &pass{
		scene:   scene,
		cam:     cam,
		culling: culling,
		colors:  color.NewTable(scene.Colors),
		fb:      NewFramebuffer(cam.Width, cam.Height, scene.Background),
	}
	for _, m := range scene.Meshes {
		if err := p.drawMesh(m); err != nil {
			return Frame{}, err
		}
	}
	p.stats.ColorsAppended = p.colors.Appended()

	Logger().Debug("camera pass",
		"camera", cam.ID,
		"triangles", p.stats.Triangles,
		"culled", p.stats.Culled,
		"clipped", p.stats.Clipped,
		"degenerate", p.stats.Degenerate,
		"pixels", p.stats.Pixels,
		"colors", p.stats.ColorsAppended)

	return Frame{Camera: cam, Buffer: p.fb, Stats: p.stats}, nil
}

// pass holds the state of one camera rendering one scene. The color table
// starts as a read-only view of the scene colors; colors created by
// clipping are appended to it and dropped with the pass.
type pass struct {
	scene   *Scene
	cam     *Camera
	culling bool
	colors  *color.Table
	fb      *Framebuffer
	stats   Stats
}

func (p *pass) drawMesh(m *Mesh) error {
	model, err := p.scene.ModelMatrix(m)
	if err != nil {
		return err
	}
	view := p.cam.Matrix()

	for _, tri := range m.Triangles {
		p.stats.Triangles++

		var world [3]geom.Vec3
		var v [3]geom.Vec4
		for k, idx := range tri {
			world[k] = model.MulPoint(p.scene.Vertices[idx-1])
			v[k] = view.MulVec4(world[k].Homogeneous(idx))
		}

		if p.culling && p.backFacing(world) {
			p.stats.Culled++
			continue
		}

		if !p.project(&v) {
			p.stats.Degenerate++
			continue
		}

		switch m.Mode {
		case Wireframe:
			p.wireframe(v)
		case Solid:
			p.solid(v)
		}
	}
	return nil
}

// project applies the perspective divide for perspective cameras. It
// reports false when a vertex has w == 0 or ends up with a NaN or infinite
// coordinate, which a tiny w or huge model coordinates can produce.
func (p *pass) project(v *[3]geom.Vec4) bool {
	for k := range v {
		if p.cam.Projection == Perspective {
			var ok bool
			if v[k], ok = v[k].PerspectiveDivide(); !ok {
				return false
			}
		}
		if !v[k].IsFinite() {
			return false
		}
	}
	return true
}

// backFacing reports whether the world-space triangle faces away from the
// camera.
func (p *pass) backFacing(w [3]geom.Vec3) bool {
	n := w[1].Sub(w[0]).Cross(w[2].Sub(w[0])).Normalize()
	eye := p.cam.W
	if p.cam.Projection == Perspective {
		eye = p.cam.Position.Sub(w[0]).Normalize()
	}
	return n.Dot(eye) < 0
}

func (p *pass) wireframe(v [3]geom.Vec4) {
	visible := false
	for k := range v {
		seg := clip.ClipLine(p.colors, v[k], v[(k+1)%3])
		if seg == nil {
			continue
		}
		visible = true
		p.stats.Pixels += raster.Line(p.fb, p.colors, p.toScreen(seg[0]), p.toScreen(seg[1]))
	}
	if !visible {
		p.stats.Clipped++
	}
}

func (p *pass) solid(v [3]geom.Vec4) {
	tris := clip.ClipTriangle(p.colors, v[0], v[1], v[2])
	if len(tris) == 0 {
		p.stats.Clipped++
		return
	}
	for i := 0; i+2 < len(tris); i += 3 {
		a, b, c := p.toScreen(tris[i]), p.toScreen(tris[i+1]), p.toScreen(tris[i+2])
		if raster.Degenerate(a, b, c) {
			p.stats.Degenerate++
			continue
		}
		p.stats.Pixels += raster.Triangle(p.fb, p.colors, a, b, c)
	}
}

func (p *pass) toScreen(v geom.Vec4) geom.Vec4 {
	return p.cam.Viewport().MulVec4(v)
}

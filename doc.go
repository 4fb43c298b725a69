// Package r3d renders static 3D scenes into 2D raster images on the CPU.
//
// # Overview
//
// A Scene holds a global vertex list with one color per vertex, tables of
// translations, scalings and rotations, meshes that reference those tables,
// and one or more cameras. Rendering produces one Framebuffer per camera.
//
//	scene, err := scenefile.Load("scene.xml")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	frames, err := r3d.NewSoftwareRenderer().Render(scene)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, f := range frames {
//		_ = output.WriteFile(f.Camera.Output, f.Buffer.Image(), output.PNG)
//	}
//
// # Pipeline
//
// For every camera, every mesh and every triangle, in that order:
//
//	model → world → camera → clip → cull → divide → clip → viewport → raster
//
// The model matrix is the product of the mesh's transforms in declared
// order. Culling (when enabled) is decided in world space. Perspective
// cameras divide by w before clipping against the cube [-1,1]^3. Wireframe
// meshes draw their three edges with the line rasterizer, solid meshes are
// filled with barycentric color interpolation.
//
// # Coordinate System
//
// World space is right-handed. A camera looks along its gaze direction;
// its w axis points backwards. Framebuffer pixel (0,0) is the bottom-left
// corner; Framebuffer.Image flips rows so image row 0 is the top.
//
// # Colors
//
// Colors use float64 channels on the 0..255 scale. Lines store interpolated
// colors as they are; filled triangles round each channel. Both are clamped
// and truncated to 8 bits when an image is produced.
//
// # Errors
//
// Scenes are validated before rendering; every problem is reported as an
// error wrapping ErrMalformedScene. Degenerate geometry met during a pass is
// skipped silently and only counted in the frame's Stats.
package r3d

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)

package r3d

import "runtime"

// RenderOption configures a SoftwareRenderer during creation.
//
// Example:
//
//	// Render all cameras concurrently, ignoring the scene's culling flag.
//	r := r3d.NewSoftwareRenderer(
//	    r3d.WithParallelCameras(0),
//	    r3d.WithCulling(false),
//	)
type RenderOption func(*renderOptions)

// renderOptions holds optional configuration for SoftwareRenderer.
type renderOptions struct {
	culling *bool // nil: use Scene.Culling
	workers int   // camera passes run at once; 1 is sequential
}

// defaultRenderOptions returns the default renderer options.
func defaultRenderOptions() renderOptions {
	return renderOptions{workers: 1}
}

// WithCulling overrides the scene's back-face culling flag.
func WithCulling(enabled bool) RenderOption {
	return func(o *renderOptions) {
		o.culling = &enabled
	}
}

// WithParallelCameras renders up to workers cameras at the same time.
// Passes share only read-only scene data. A value <= 0 uses GOMAXPROCS.
func WithParallelCameras(workers int) RenderOption {
	return func(o *renderOptions) {
		if workers <= 0 {
			workers = runtime.GOMAXPROCS(0)
		}
		o.workers = workers
	}
}

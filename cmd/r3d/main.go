// Command r3d renders XML scene files to images, one image per camera.
//
// Usage:
//
//	r3d [flags] scene.xml...
//
// Settings come from an optional TOML file (-config) and are overridden
// by flags given on the command line.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/r3d"
	"github.com/gogpu/r3d/internal/config"
	"github.com/gogpu/r3d/output"
	"github.com/gogpu/r3d/scenefile"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("r3d", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: r3d [flags] scene.xml...\n\nflags:\n")
		fs.PrintDefaults()
	}

	def := config.Default()
	var (
		configPath  = fs.String("config", "", "TOML configuration file")
		outDir      = fs.String("out", def.OutputDir, "output directory")
		format      = fs.String("format", def.Format, "image format: ppm, png, bmp or tiff")
		logLevel    = fs.String("log-level", def.LogLevel, "log level: debug, info, warn or error")
		caption     = fs.Bool("caption", def.Caption, "stamp the camera id into each image")
		scale       = fs.Int("scale", def.Scale, "enlarge images by this integer factor")
		workers     = fs.Int("workers", def.Workers, "camera passes rendered at once (0: all CPUs)")
		culling     = fs.String("culling", def.Culling, "back-face culling: scene, enabled or disabled")
		lang        = fs.String("lang", "en", "language tag for the summary's number format")
		printConfig = fs.Bool("print-config", false, "print the effective configuration and exit")
	)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	cfg := def
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			fmt.Fprintf(stderr, "r3d: %v\n", err)
			return exitUsage
		}
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "out":
			cfg.OutputDir = *outDir
		case "format":
			cfg.Format = *format
		case "log-level":
			cfg.LogLevel = *logLevel
		case "caption":
			cfg.Caption = *caption
		case "scale":
			cfg.Scale = *scale
		case "workers":
			cfg.Workers = *workers
		case "culling":
			cfg.Culling = *culling
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "r3d: %v\n", err)
		return exitUsage
	}

	tag, err := language.Parse(*lang)
	if err != nil {
		fmt.Fprintf(stderr, "r3d: -lang: %v\n", err)
		return exitUsage
	}

	if *printConfig {
		if err := cfg.Write(stdout); err != nil {
			fmt.Fprintf(stderr, "r3d: %v\n", err)
			return exitError
		}
		return exitOK
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return exitUsage
	}

	level, _ := cfg.Level()
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	r3d.SetLogger(logger)
	defer r3d.SetLogger(nil)

	app := &app{
		cfg:     cfg,
		format:  cfg.OutputFormat(),
		printer: message.NewPrinter(tag),
		stdout:  stdout,
		written: make(map[string]string),
	}
	app.renderer = r3d.NewSoftwareRenderer(app.renderOptions()...)

	status := exitOK
	for _, path := range fs.Args() {
		if err := app.renderFile(path); err != nil {
			logger.Error("render failed", "scene", path, "err", err)
			status = exitError
		}
	}
	return status
}

type app struct {
	cfg      config.Config
	format   output.Format
	renderer *r3d.SoftwareRenderer
	printer  *message.Printer
	stdout   io.Writer

	// written maps output paths to the scene that produced them.
	written map[string]string
}

func (a *app) renderOptions() []r3d.RenderOption {
	opts := []r3d.RenderOption{r3d.WithParallelCameras(a.cfg.Workers)}
	if enabled, forced := a.cfg.CullingOverride(); forced {
		opts = append(opts, r3d.WithCulling(enabled))
	}
	return opts
}

// renderFile renders one scene and writes an image per camera.
func (a *app) renderFile(path string) error {
	scene, err := scenefile.Load(path)
	if err != nil {
		return err
	}

	// Outputs are claimed only once the scene has rendered, so a scene that
	// fails leaves its names free for later scenes.
	paths := make([]string, len(scene.Cameras))
	owner := make(map[string]int, len(scene.Cameras))
	for i, cam := range scene.Cameras {
		p := filepath.Join(a.cfg.OutputDir, output.ReplaceExt(cam.Output, a.format))
		if prev, ok := a.written[p]; ok {
			return fmt.Errorf("camera %d: output %s already written by %s", cam.ID, p, prev)
		}
		if id, ok := owner[p]; ok {
			return fmt.Errorf("camera %d: output %s already used by camera %d", cam.ID, p, id)
		}
		owner[p] = cam.ID
		paths[i] = p
	}

	frames, err := a.renderer.Render(scene)
	if err != nil {
		return err
	}
	for _, p := range paths {
		a.written[p] = path
	}

	var g errgroup.Group
	g.SetLimit(max(a.cfg.Workers, 1))
	var total r3d.Stats
	for i, f := range frames {
		total.Add(f.Stats)
		g.Go(func() error {
			return a.writeFrame(paths[i], f)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	a.printer.Fprintf(a.stdout, "%s: %d cameras, %d triangles, %d pixels, %d culled, %d clipped\n",
		path, len(frames), total.Triangles, total.Pixels, total.Culled, total.Clipped)
	return nil
}

func (a *app) writeFrame(path string, f r3d.Frame) error {
	img := f.Buffer.Image()
	if a.cfg.Scale > 1 {
		img = output.Upscale(img, a.cfg.Scale)
	}
	if a.cfg.Caption {
		if err := output.Caption(img, "camera "+strconv.Itoa(f.Camera.ID)); err != nil {
			return err
		}
	}
	return output.WriteFile(path, img, a.format)
}

package r3d

import (
	"image"
	stdcolor "image/color"
)

// Framebuffer is a width×height grid of colors. Row 0 is the bottom row of
// the image, matching viewport coordinates; Image flips it.
type Framebuffer struct {
	width  int
	height int
	pix    []Color
}

// NewFramebuffer creates a framebuffer filled with bg.
func NewFramebuffer(width, height int, bg Color) *Framebuffer {
	fb := &Framebuffer{
		width:  width,
		height: height,
		pix:    make([]Color, width*height),
	}
	fb.Clear(bg)
	return fb
}

// Width returns the width of the framebuffer.
func (fb *Framebuffer) Width() int {
	return fb.width
}

// Height returns the height of the framebuffer.
func (fb *Framebuffer) Height() int {
	return fb.height
}

// SetPixel sets the color of a single pixel. Writes outside the
// framebuffer are ignored.
func (fb *Framebuffer) SetPixel(x, y int, c Color) {
	if x < 0 || x >= fb.width || y < 0 || y >= fb.height {
		return
	}
	fb.pix[y*fb.width+x] = c
}

// At returns the color of a single pixel, or Black outside the framebuffer.
func (fb *Framebuffer) At(x, y int) Color {
	if x < 0 || x >= fb.width || y < 0 || y >= fb.height {
		return Black
	}
	return fb.pix[y*fb.width+x]
}

// Clear fills the entire framebuffer with a color.
func (fb *Framebuffer) Clear(c Color) {
	for i := range fb.pix {
		fb.pix[i] = c
	}
}

// Image converts the framebuffer to an opaque image.RGBA with the top row
// first. Channels are converted with Clamp255.
func (fb *Framebuffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
	for y := 0; y < fb.height; y++ {
		row := fb.pix[y*fb.width : (y+1)*fb.width]
		top := fb.height - 1 - y
		for x, c := range row {
			img.SetRGBA(x, top, stdcolor.RGBA{
				R: Clamp255(c.R),
				G: Clamp255(c.G),
				B: Clamp255(c.B),
				A: 255,
			})
		}
	}
	return img
}

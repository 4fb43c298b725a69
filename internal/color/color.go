// Package color provides the floating-point RGB color used by the render
// pipeline and the append-only table that vertices reference by index.
//
// Channels are kept on the 0..255 scale as float64 so that interpolated
// values survive until a framebuffer is converted to 8-bit pixels.
package color

import "math"

// Color is an RGB triple on the 0..255 scale. Values outside the range are
// allowed while blending and are clamped only on output.
type Color struct {
	R, G, B float64
}

// RGB creates a Color.
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Add returns c + o.
func (c Color) Add(o Color) Color {
	return Color{R: c.R + o.R, G: c.G + o.G, B: c.B + o.B}
}

// Sub returns c - o.
func (c Color) Sub(o Color) Color {
	return Color{R: c.R - o.R, G: c.G - o.G, B: c.B - o.B}
}

// Scale returns c * k.
func (c Color) Scale(k float64) Color {
	return Color{R: c.R * k, G: c.G * k, B: c.B * k}
}

// Lerp blends c toward o: t=0 gives c, t=1 gives o.
func (c Color) Lerp(o Color, t float64) Color {
	return c.Add(o.Sub(c).Scale(t))
}

// Round rounds every channel to the nearest integer, halves away from zero.
func (c Color) Round() Color {
	return Color{R: math.Round(c.R), G: math.Round(c.G), B: math.Round(c.B)}
}

// RGB8 converts c to 8-bit channels with Clamp255.
func (c Color) RGB8() (r, g, b uint8) {
	return Clamp255(c.R), Clamp255(c.G), Clamp255(c.B)
}

// Clamp255 converts a channel value to 8 bits: negative values become 0,
// values above 255 become 255, anything else is truncated toward zero.
func Clamp255(v float64) uint8 {
	switch {
	case v >= 255:
		return 255
	case v <= 0 || math.IsNaN(v):
		return 0
	}
	return uint8(v)
}

package r3d

import "github.com/gogpu/r3d/internal/color"

// Color is an RGB color with float64 channels on the 0..255 scale.
// Channels may leave the range while blending; they are clamped when an
// image is produced (see Clamp255).
type Color = color.Color

// RGB creates a Color from channel values on the 0..255 scale.
func RGB(r, g, b float64) Color {
	return color.RGB(r, g, b)
}

// Clamp255 converts a channel value to 8 bits: negative values become 0,
// values above 255 become 255 and anything else is truncated toward zero.
func Clamp255(v float64) uint8 {
	return color.Clamp255(v)
}

// Common colors.
var (
	Black = RGB(0, 0, 0)
	White = RGB(255, 255, 255)
	Red   = RGB(255, 0, 0)
	Green = RGB(0, 255, 0)
	Blue  = RGB(0, 0, 255)
)

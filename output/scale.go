package output

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// Upscale enlarges img by an integer factor with nearest-neighbor
// sampling, so every framebuffer pixel becomes a factor×factor block.
// A factor below 2 returns a copy of img.
func Upscale(img image.Image, factor int) *image.RGBA {
	factor = max(factor, 1)
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst
}

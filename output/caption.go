package output

import (
	"image"
	"image/color"
	"image/draw"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// captionFont is parsed on first use.
var captionFont = sync.OnceValues(func() (*opentype.Font, error) {
	return opentype.Parse(gomono.TTF)
})

// CaptionSize is the font size of captions in pixels.
const CaptionSize = 12

// Caption stamps text into the top-left corner of img on a dark backdrop.
// Text that does not fit is clipped at the image border.
func Caption(img draw.Image, text string) error {
	if text == "" {
		return nil
	}
	f, err := captionFont()
	if err != nil {
		return err
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    CaptionSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return err
	}
	defer func() {
		_ = face.Close()
	}()

	const pad = 2
	m := face.Metrics()
	ascent := m.Ascent.Ceil()
	width := font.MeasureString(face, text).Ceil()
	height := ascent + m.Descent.Ceil()

	b := img.Bounds()
	backdrop := image.Rect(b.Min.X, b.Min.Y, b.Min.X+width+2*pad, b.Min.Y+height+2*pad).Intersect(b)
	draw.Draw(img, backdrop, image.NewUniform(color.RGBA{A: 255}), image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.White,
		Face: face,
		Dot:  fixed.P(b.Min.X+pad, b.Min.Y+pad+ascent),
	}
	d.DrawString(text)
	return nil
}

package output

import (
	"bufio"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/gogpu/r3d"
)

// Encode writes img to w in format f. For PPM, a non-empty name is written
// as a comment line after the magic number; other formats ignore it.
func Encode(w io.Writer, img image.Image, f Format, name string) error {
	switch f {
	case PPM:
		return encodePPM(w, img, name)
	case PNG:
		return png.Encode(w, img)
	case BMP:
		return bmp.Encode(w, img)
	case TIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	}
	return fmt.Errorf("%w: %v", ErrUnknownFormat, f)
}

// encodePPM writes a plain P3 pixmap, one image row per line.
func encodePPM(w io.Writer, img image.Image, name string) error {
	b := img.Bounds()
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "P3")
	if name != "" {
		fmt.Fprintf(bw, "# %s\n", name)
	}
	fmt.Fprintf(bw, "%d %d\n255\n", b.Dx(), b.Dy())

	buf := make([]byte, 0, 12)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			buf = buf[:0]
			buf = strconv.AppendUint(buf, uint64(r>>8), 10)
			buf = append(buf, ' ')
			buf = strconv.AppendUint(buf, uint64(g>>8), 10)
			buf = append(buf, ' ')
			buf = strconv.AppendUint(buf, uint64(bl>>8), 10)
			if x+1 < b.Max.X {
				buf = append(buf, ' ')
			}
			if _, err := bw.Write(buf); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteFile encodes img into a new file at path, creating parent
// directories as needed. The file is written under a temporary name and
// renamed into place, so readers never see a partial image.
func WriteFile(path string, img image.Image, f Format) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer func() {
		_ = os.Remove(tmp.Name())
	}()

	if err := tmp.Chmod(0o644); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := Encode(tmp, img, f, filepath.Base(path)); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return err
	}

	b := img.Bounds()
	r3d.Logger().Info("image written", "path", path, "format", f, "width", b.Dx(), "height", b.Dy())
	return nil
}

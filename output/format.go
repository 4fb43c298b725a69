// Package output writes rendered frames as image files.
//
// Plain PPM (P3) is the native format of the renderer; PNG, BMP and TIFF
// are provided for convenience. Images are expected top row first, as
// returned by r3d.Framebuffer.Image.
package output

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrUnknownFormat is returned for format names and file extensions that
// have no encoder.
var ErrUnknownFormat = errors.New("output: unknown image format")

// Format selects an image encoding.
type Format uint8

const (
	// PPM is the plain-text portable pixmap format (P3).
	PPM Format = iota
	// PNG is lossless PNG via image/png.
	PNG
	// BMP is an uncompressed bitmap.
	BMP
	// TIFF is a deflate-compressed TIFF.
	TIFF
)

var formatNames = [...]string{
	PPM:  "ppm",
	PNG:  "png",
	BMP:  "bmp",
	TIFF: "tiff",
}

// String returns the lower-case format name.
func (f Format) String() string {
	if int(f) < len(formatNames) {
		return formatNames[f]
	}
	return fmt.Sprintf("Format(%d)", uint8(f))
}

// Ext returns the file extension for f, including the dot.
func (f Format) Ext() string {
	if f == TIFF {
		return ".tif"
	}
	return "." + f.String()
}

// ParseFormat accepts a format name, case-insensitively. "tif" is an alias
// for TIFF.
func ParseFormat(s string) (Format, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "tif" {
		return TIFF, nil
	}
	for f, n := range formatNames {
		if n == name {
			return Format(f), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// FormatOf guesses the format from a file name's extension.
func FormatOf(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return 0, fmt.Errorf("%w: %q has no extension", ErrUnknownFormat, path)
	}
	return ParseFormat(ext[1:])
}

// ReplaceExt returns path with its extension replaced by f's.
func ReplaceExt(path string, f Format) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + f.Ext()
}

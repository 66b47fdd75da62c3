package image

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when the image format is not supported.
	ErrUnsupportedFormat = errors.New("image: unsupported format")

	// ErrEmptyImage is returned when an image has no pixels.
	ErrEmptyImage = errors.New("image: empty image")
)

// JPEGQuality is the quality used for FormatJPEG.
const JPEGQuality = 95

// Encode writes img to w in format f.
func Encode(w io.Writer, img *image.Gray, f Format) error {
	if img == nil || img.Rect.Empty() {
		return ErrEmptyImage
	}

	var err error
	switch f {
	case FormatPNG:
		err = png.Encode(w, img)
	case FormatJPEG:
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: JPEGQuality})
	case FormatTIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Uncompressed})
	case FormatBMP:
		err = bmp.Encode(w, img)
	default:
		return fmt.Errorf("%w: %v", ErrUnsupportedFormat, f)
	}
	if err != nil {
		return fmt.Errorf("image: encode %v: %w", f, err)
	}
	return nil
}

// Save writes img to path, choosing the format from the file extension.
// The file is not created when the extension is unsupported.
func Save(path string, img *image.Gray) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	out, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("image: create file: %w", err)
	}

	if err := Encode(out, img, f); err != nil {
		_ = out.Close()
		return err
	}

	return out.Close()
}

// Decode reads an image in any supported format and converts it to gray.
// It is the inverse of Encode for the lossless formats.
func Decode(r io.Reader) (*image.Gray, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("image: decode: %w", err)
	}

	if g, ok := img.(*image.Gray); ok {
		return g, nil
	}

	b := img.Bounds()
	gray := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := range b.Dy() {
		for x := range b.Dx() {
			gray.Set(x, y, img.At(b.Min.X+x, b.Min.Y+y))
		}
	}
	return gray, nil
}

package mandelbrot

import intImage "github.com/gogpu/mandelbrot/internal/image"

// Format identifies an image container format for Pixmap.Encode.
type Format = intImage.Format

// Supported container formats.
const (
	FormatPNG  = intImage.FormatPNG
	FormatJPEG = intImage.FormatJPEG
	FormatTIFF = intImage.FormatTIFF
	FormatBMP  = intImage.FormatBMP
)

// ErrUnsupportedFormat is returned for file extensions no encoder handles.
var ErrUnsupportedFormat = intImage.ErrUnsupportedFormat

// FormatFromPath picks the container format from the extension of path,
// the same way Pixmap.Save does.
func FormatFromPath(path string) (Format, error) {
	return intImage.FormatFromPath(path)
}
